package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Flatmate represents a person who lives in the flat and pays a share of a bill.
type Flatmate struct {
	name        string
	daysInHouse int
}

// NewFlatmate validates name and days and returns a Flatmate.
func NewFlatmate(name string, daysInHouse int) (Flatmate, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Flatmate{}, fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}
	if daysInHouse < 0 {
		return Flatmate{}, fmt.Errorf("%w: days in house must be a non-negative integer, got %d", ErrInvalidInput, daysInHouse)
	}
	return Flatmate{name: name, daysInHouse: daysInHouse}, nil
}

// Name is the display name of the flatmate.
func (f Flatmate) Name() string { return f.name }

// DaysInHouse is the number of days the flatmate stayed during the period.
func (f Flatmate) DaysInHouse() int { return f.daysInHouse }

func (f Flatmate) String() string {
	return fmt.Sprintf("Flatmate(name=%q, days_in_house=%d)", f.name, f.daysInHouse)
}

// ParseDays parses a day count typed by a user.
func ParseDays(s string) (int, error) {
	s = strings.TrimSpace(s)
	days, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: days in house must be an integer, got %q", ErrInvalidInput, s)
	}
	return days, nil
}
