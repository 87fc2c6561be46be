package report

import "math"

// bracket is one row of the progressive income-tax schedule. BaseTax is
// the cumulative tax owed at the bracket's lower bound; Rate applies to
// the slice of income above it.
type bracket struct {
	UpperBound float64
	BaseTax    float64
	Rate       float64
}

// The seven-bracket schedule the payroll report applies to each
// approved claim's gross amount.
var taxBrackets = []bracket{
	{237100, 0, 0.18},
	{370500, 42678, 0.26},
	{512800, 77362, 0.31},
	{673000, 121475, 0.36},
	{857900, 179147, 0.39},
	{1817000, 251258, 0.41},
	{math.MaxFloat64, 644489, 0.45},
}

// CalculateTax evaluates the progressive schedule for a gross amount:
// the owning bracket's base tax plus its marginal rate applied to the
// amount above the previous bracket's upper bound. The system this
// replaces carried a self-cancelling variant that collapsed to the base
// tax alone for every bracket past the first; that was a defect, not a
// rule, and is not reproduced.
func CalculateTax(amount float64) float64 {
	if amount <= 0 {
		return 0
	}
	lower := 0.0
	for _, b := range taxBrackets {
		if amount <= b.UpperBound {
			return b.BaseTax + b.Rate*(amount-lower)
		}
		lower = b.UpperBound
	}
	return 0 // unreachable: the last bracket is unbounded
}

// NetPay is gross minus computed tax.
func NetPay(gross float64) float64 {
	return gross - CalculateTax(gross)
}
