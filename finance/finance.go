// Package finance implements personal finance formulas.
package finance

import (
	"math"

	"github.com/fwojciec/toolbox"
)

// DefaultPeriodsPerYear is the compounding frequency used when none is given.
const DefaultPeriodsPerYear = 12

// DefaultAnnualReturn is the expected return used for retirement projections.
const DefaultAnnualReturn = 0.07

// TaxResult is the outcome of a flat tax calculation.
type TaxResult struct {
	TaxAmount float64 `json:"tax_amount"`
	NetIncome float64 `json:"net_income"`
}

// CalculateTax applies a flat rate to income.
func CalculateTax(income, rate float64) TaxResult {
	return TaxResult{
		TaxAmount: income * rate,
		NetIncome: income * (1 - rate),
	}
}

// CompoundResult is the outcome of a compound interest calculation.
type CompoundResult struct {
	Principal   float64 `json:"principal"`
	Interest    float64 `json:"interest"`
	TotalAmount float64 `json:"total_amount"`
}

// CompoundInterest grows principal at an annual rate compounded
// periodsPerYear times a year for the given number of years.
func CompoundInterest(principal, rate, years float64, periodsPerYear int) (*CompoundResult, error) {
	if periodsPerYear <= 0 {
		return nil, toolbox.Errorf(toolbox.EINVALID, "compounding periods per year must be positive")
	}
	n := float64(periodsPerYear)
	amount := principal * math.Pow(1+rate/n, n*years)
	return &CompoundResult{
		Principal:   principal,
		Interest:    round2(amount - principal),
		TotalAmount: round2(amount),
	}, nil
}

// LoanResult is the outcome of an amortized loan calculation.
type LoanResult struct {
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalPayment   float64 `json:"total_payment"`
	TotalInterest  float64 `json:"total_interest"`
}

// LoanPayment computes the fixed monthly payment that repays principal at
// an annual rate over the given number of months.
func LoanPayment(principal, rate float64, months int) (*LoanResult, error) {
	if months <= 0 {
		return nil, toolbox.Errorf(toolbox.EINVALID, "loan term must be at least one month")
	}
	m := float64(months)
	monthlyRate := rate / 12

	var payment float64
	if monthlyRate == 0 {
		payment = principal / m
	} else {
		growth := math.Pow(1+monthlyRate, m)
		payment = principal * (monthlyRate * growth) / (growth - 1)
	}

	return &LoanResult{
		MonthlyPayment: round2(payment),
		TotalPayment:   round2(payment * m),
		TotalInterest:  round2(payment*m - principal),
	}, nil
}

// RetirementResult is a retirement savings projection.
type RetirementResult struct {
	YearsToRetirement  int     `json:"years_to_retirement"`
	TotalContributions float64 `json:"total_contributions"`
	ProjectedTotal     float64 `json:"projected_total"`
	ProjectedGrowth    float64 `json:"projected_growth"`
}

// RetirementSavings projects the value of fixed monthly contributions
// compounded monthly until retirement.
func RetirementSavings(currentAge, retirementAge int, monthlyContribution, annualReturn float64) RetirementResult {
	years := retirementAge - currentAge
	months := float64(years * 12)
	monthlyReturn := annualReturn / 12
	contributions := monthlyContribution * months

	total := contributions
	if monthlyReturn != 0 {
		total = monthlyContribution * (math.Pow(1+monthlyReturn, months) - 1) / monthlyReturn
	}

	return RetirementResult{
		YearsToRetirement:  years,
		TotalContributions: contributions,
		ProjectedTotal:     round2(total),
		ProjectedGrowth:    round2(total - contributions),
	}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
