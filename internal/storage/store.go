// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/dormshare/internal/models"
)

var (
	// ErrNotFound is returned when a lookup by ID or unique key matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert violates a uniqueness constraint.
	ErrDuplicate = errors.New("duplicate record")
	// ErrAlreadyInTx is returned by WithTx and Close on a transactional handle.
	ErrAlreadyInTx = errors.New("already in tx")
)

// UserStorage persists user accounts and household membership.
type UserStorage interface {
	CreateUser(ctx context.Context, user *models.User) error
	// GetUserByID returns ErrNotFound when no user has the ID.
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	// GetUserByEmail returns ErrNotFound when no user has the email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUserProfile(ctx context.Context, id, displayName string) error
	// SetUserHousehold sets or, with an empty householdID, clears membership.
	SetUserHousehold(ctx context.Context, userID, householdID string) error
	// ListHouseholdMembers returns members ordered by display name.
	ListHouseholdMembers(ctx context.Context, householdID string) ([]*models.User, error)
}

// HouseholdStorage persists households.
type HouseholdStorage interface {
	CreateHousehold(ctx context.Context, household *models.Household) error
	GetHousehold(ctx context.Context, id string) (*models.Household, error)
	GetHouseholdByInviteCode(ctx context.Context, code string) (*models.Household, error)
	RenameHousehold(ctx context.Context, id, name string) error
}

// SplitFilter narrows ListSplitLines. Zero-valued fields do not filter.
type SplitFilter struct {
	HouseholdID   string
	OwedBy        string
	PaidBy        string
	ExcludeOwedBy string
	ExcludePaidBy string
	// Settled filters on the settled flag when non-nil.
	Settled *bool
	// Involving matches splits where the user is either the ower or the payer.
	Involving string
}

// LedgerStorage persists expenses and splits.
type LedgerStorage interface {
	CreateExpense(ctx context.Context, expense *models.Expense) error
	GetExpense(ctx context.Context, id string) (*models.Expense, error)
	// ListExpenses returns household expenses, newest first. limit <= 0 means all.
	ListExpenses(ctx context.Context, householdID string, limit int) ([]*models.Expense, error)
	// ListExpensesPaidBy returns the expenses a user paid within a household.
	ListExpensesPaidBy(ctx context.Context, householdID, userID string) ([]*models.Expense, error)

	// CreateSplits inserts splits. A second split for the same (expense, user)
	// fails with ErrDuplicate.
	CreateSplits(ctx context.Context, splits []*models.Split) error
	GetSplit(ctx context.Context, id string) (*models.Split, error)
	ListSplitsByExpense(ctx context.Context, expenseID string) ([]*models.Split, error)
	// ListSplitLines returns splits joined with their expense, newest expense first.
	ListSplitLines(ctx context.Context, filter SplitFilter) ([]*models.SplitLine, error)
	// MarkSplitSettled settles an unsettled split. It reports false when the
	// split was already settled, leaving it untouched.
	MarkSplitSettled(ctx context.Context, id, settledBy string, settledAt int64) (bool, error)
}

// ChoreFilter narrows ListChores.
type ChoreFilter struct {
	AssignedTo  string
	OnlyPending bool
	Limit       int
}

// BoardStorage persists the household board: chores, groceries, guests and
// announcements.
type BoardStorage interface {
	CreateChore(ctx context.Context, chore *models.Chore) error
	GetChore(ctx context.Context, householdID, id string) (*models.Chore, error)
	// ListChores returns household chores ordered by due date.
	ListChores(ctx context.Context, householdID string, filter ChoreFilter) ([]*models.Chore, error)
	CompleteChore(ctx context.Context, householdID, id string) error

	CreateGroceryItem(ctx context.Context, item *models.GroceryItem) error
	GetGroceryItem(ctx context.Context, householdID, id string) (*models.GroceryItem, error)
	// ListGroceryItems returns unpurchased items, newest first.
	ListGroceryItems(ctx context.Context, householdID string) ([]*models.GroceryItem, error)
	MarkGroceryPurchased(ctx context.Context, householdID, id string) error
	DeleteGroceryItem(ctx context.Context, householdID, id string) error

	CreateGuestLog(ctx context.Context, guest *models.GuestLog) error
	GetGuestLog(ctx context.Context, householdID, id string) (*models.GuestLog, error)
	// ListUpcomingGuests returns guests departing at or after since, by arrival.
	ListUpcomingGuests(ctx context.Context, householdID string, since int64) ([]*models.GuestLog, error)
	UpdateGuestLog(ctx context.Context, guest *models.GuestLog) error

	CreateAnnouncement(ctx context.Context, a *models.Announcement) error
	GetAnnouncement(ctx context.Context, householdID, id string) (*models.Announcement, error)
	// ListAnnouncements returns announcements newest first. limit <= 0 means all.
	ListAnnouncements(ctx context.Context, householdID string, limit int) ([]*models.Announcement, error)
	UpdateAnnouncement(ctx context.Context, a *models.Announcement) error
	DeleteAnnouncement(ctx context.Context, householdID, id string) error
}

// AllStorage is every domain capability, usable inside or outside a transaction.
type AllStorage interface {
	UserStorage
	HouseholdStorage
	LedgerStorage
	BoardStorage
}

// Store is a non-transactional handle that can start transactions.
// This abstraction allows swapping storage backends without changing the
// domain packages.
type Store interface {
	AllStorage

	// WithTx runs cb inside a transaction. It commits when cb returns nil and
	// rolls back otherwise.
	WithTx(ctx context.Context, cb func(tx AllStorage) error) error

	// Close releases any resources held by the store.
	Close() error
}
