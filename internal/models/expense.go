package models

import "github.com/shopspring/decimal"

// Expense is a shared cost paid by one member of a household.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// HouseholdID is the household that owns this expense.
	HouseholdID string

	// Title is the human-readable description (e.g., "Pizza Night").
	Title string

	// Amount is the total paid, quantized to two decimal places.
	Amount decimal.Decimal

	// PaidBy is the user ID of the payer.
	PaidBy string

	// PaidAt is the Unix timestamp the expense was paid (its creation time).
	PaidAt int64

	// CreatedAt is the Unix timestamp when the record was created.
	CreatedAt int64
}

// Split is one participant's share of an Expense.
//
// A split moves from unsettled to settled exactly once and never back.
type Split struct {
	// ID is the unique identifier for the split (UUID format).
	ID string

	// ExpenseID is the expense this split belongs to.
	ExpenseID string

	// OwedBy is the user ID of the participant who owes this share.
	OwedBy string

	// AmountOwed is the participant's share, quantized to two decimal places.
	AmountOwed decimal.Decimal

	// IsSettled is true once the ower or payer has marked the share paid.
	IsSettled bool

	// SettledAt is the Unix timestamp of settlement. Zero while unsettled.
	SettledAt int64

	// SettledBy is the user ID who settled the split. Empty while unsettled.
	SettledBy string
}

// SplitLine is a split joined with the expense fields needed to show it and to
// aggregate balances.
type SplitLine struct {
	Split

	// HouseholdID is the household of the parent expense.
	HouseholdID string

	// ExpenseTitle is the title of the parent expense.
	ExpenseTitle string

	// PaidBy is the payer of the parent expense.
	PaidBy string

	// PaidAt is the paid date of the parent expense.
	PaidAt int64
}
