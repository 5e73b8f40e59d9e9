package domain

type LoanInput struct {
	Amount float64
	Rate   float64 // nominal annual percentage, 5.0 means 5%
	Years  int
}

type MonthlyRecord struct {
	Month     int     `json:"month" yaml:"month"`
	Principal float64 `json:"principal" yaml:"principal"`
	Interest  float64 `json:"interest" yaml:"interest"`
}

type LoanSchedule struct {
	MonthlyPayment float64         `json:"monthly_payment" yaml:"monthly_payment"`
	TotalPayment   float64         `json:"total_payment" yaml:"total_payment"`
	Data           []MonthlyRecord `json:"data" yaml:"data"`
}

