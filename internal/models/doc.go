// Package models defines the core domain models for flatmates.
//
// # Models
//
//   - Bill: a shared household bill for one billing period
//   - Flatmate: a person who lived in the flat for part of that period
//   - Share, Split: the prorated result for a pair of flatmates
//
// Bill and Flatmate are immutable values. They can only be built through
// NewBill and NewFlatmate, which reject invalid input with ErrInvalidInput.
// Calculations live in the calculator package; models only hold data.
package models
