package models

// Share is one flatmate's calculated part of a bill.
type Share struct {
	// Name is the flatmate's name.
	Name string

	// DaysInHouse is the number of days the share was weighted by.
	DaysInHouse int

	// Amount is what the flatmate owes, at full precision.
	// Rounding happens only when the share is displayed.
	Amount float64
}

// Split is the result of prorating one bill between two flatmates.
// It is the output of the split calculation and is never stored.
type Split struct {
	Bill   Bill
	Shares [2]Share
}

// Total returns the sum of both shares. It equals Bill.Amount() up to
// floating point rounding.
func (s *Split) Total() float64 {
	return s.Shares[0].Amount + s.Shares[1].Amount
}
