package service

import (
	"math"

	"loan-calculator/domain"
)

// Amortize builds the fixed-payment schedule for a loan of amount at
// ratePercent nominal annual interest over the given number of years.
//
// Inputs are trusted; LoanService validates them first. A zero rate pays
// the principal down in equal instalments. The residual balance after the
// last month is left as floating-point arithmetic produces it.
func Amortize(amount, ratePercent float64, years int) domain.LoanSchedule {
	months := years * monthsPerYear
	if months <= 0 {
		return domain.LoanSchedule{Data: []domain.MonthlyRecord{}}
	}

	monthlyRate := ratePercent / 100 / monthsPerYear
	payment := monthlyPayment(amount, monthlyRate, months)

	data := make([]domain.MonthlyRecord, 0, months)
	balance := amount
	for month := 1; month <= months; month++ {
		interest := balance * monthlyRate
		principal := payment - interest
		balance -= principal

		data = append(data, domain.MonthlyRecord{
			Month:     month,
			Principal: principal,
			Interest:  interest,
		})
	}

	return domain.LoanSchedule{
		MonthlyPayment: payment,
		TotalPayment:   payment * float64(months),
		Data:           data,
	}
}

// monthlyPayment evaluates the annuity formula with (1+r)^n - 1 computed
// as expm1(n*log1p(r)), which stays accurate for rates near zero.
func monthlyPayment(amount, monthlyRate float64, months int) float64 {
	if monthlyRate == 0 {
		return amount / float64(months)
	}

	growthMinusOne := math.Expm1(float64(months) * math.Log1p(monthlyRate))
	if growthMinusOne == 0 {
		return amount / float64(months)
	}
	return amount * monthlyRate * (growthMinusOne + 1) / growthMinusOne
}
