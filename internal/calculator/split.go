package calculator

import (
	"fmt"

	"github.com/mmynk/flatmates/internal/models"
)

// Prorate returns the part of amount owed by someone present for days,
// when the other flatmate was present for otherDays.
// Based on the formula: share = amount × (days / (days + otherDays))
func Prorate(amount float64, days, otherDays int) (float64, error) {
	if days < 0 || otherDays < 0 {
		return 0, fmt.Errorf("%w: days in house cannot be negative (%d, %d)", models.ErrInvalidInput, days, otherDays)
	}
	// Summed as floats so huge day counts cannot overflow int.
	totalDays := float64(days) + float64(otherDays)
	if totalDays == 0 {
		return 0, fmt.Errorf("%w: total days in house is zero, share is undefined", models.ErrInvalidState)
	}
	weight := float64(days) / totalDays
	return amount * weight, nil
}

// ShareOf computes how much flatmate owes of bill when sharing it with other.
func ShareOf(bill models.Bill, flatmate, other models.Flatmate) (float64, error) {
	return Prorate(bill.Amount(), flatmate.DaysInHouse(), other.DaysInHouse())
}

// CalculateSplit computes both flatmates' shares of bill.
// The shares are returned in argument order.
func CalculateSplit(bill models.Bill, flatmate1, flatmate2 models.Flatmate) (*models.Split, error) {
	amount1, err := ShareOf(bill, flatmate1, flatmate2)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate share for %s: %w", flatmate1.Name(), err)
	}
	amount2, err := ShareOf(bill, flatmate2, flatmate1)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate share for %s: %w", flatmate2.Name(), err)
	}

	return &models.Split{
		Bill: bill,
		Shares: [2]models.Share{
			{Name: flatmate1.Name(), DaysInHouse: flatmate1.DaysInHouse(), Amount: amount1},
			{Name: flatmate2.Name(), DaysInHouse: flatmate2.DaysInHouse(), Amount: amount2},
		},
	}, nil
}
