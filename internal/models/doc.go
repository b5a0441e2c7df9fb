// Package models defines the core domain models for dormshare.
//
// # Household
//
// A Household is the tenant boundary: every expense, chore, grocery item,
// guest log and announcement belongs to exactly one household. A User joins at
// most one household at a time; membership is the nullable HouseholdID on the
// user record.
//
// # Ledger
//
// An Expense is paid by one member and split among selected members. Each
// Split records what one participant owes the payer and whether it has been
// settled. Money is carried as decimal.Decimal quantized to two places, never
// as float64.
//
// # Design Principles
//
//  1. Relationships are ID strings, not pointers.
//  2. Timestamps are Unix seconds.
//  3. Models hold data only; rules live in the household and ledger packages.
package models
