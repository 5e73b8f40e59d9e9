package service

const (
	MaxLoanAmount   = 1_000_000_000.0 // one billion
	MaxInterestRate = 1000.0          // 1000% annual
	MaxTermYears    = 50
	MinTermYears    = 1

	monthsPerYear = 12

	cacheKeyPrefix = "loan:schedule:"
)
