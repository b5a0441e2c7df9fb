// Package ledger records shared expenses, splits them among household
// members, settles splits and computes balances.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/dormshare/internal/apperr"
	"github.com/mmynk/dormshare/internal/calculator"
	"github.com/mmynk/dormshare/internal/household"
	"github.com/mmynk/dormshare/internal/models"
	"github.com/mmynk/dormshare/internal/storage"
	"github.com/mmynk/dormshare/internal/validate"
)

const maxTitleLen = 200

// maxAmount is the first value that no longer fits 10 digits with 2 decimals.
var maxAmount = decimal.NewFromInt(100_000_000)

// Recorder observes ledger activity.
type Recorder interface {
	ExpenseRecorded(splits int)
	SplitsAllocated(splits int)
	SplitSettled(transitioned bool)
}

type nopRecorder struct{}

func (nopRecorder) ExpenseRecorded(int) {}
func (nopRecorder) SplitsAllocated(int) {}
func (nopRecorder) SplitSettled(bool)   {}

// Option configures a Ledger.
type Option func(*Ledger)

// WithRemainderPolicy sets who absorbs the rounding remainder of a split.
func WithRemainderPolicy(p calculator.RemainderPolicy) Option {
	return func(l *Ledger) { l.policy = p }
}

// WithRecorder sets the activity recorder.
func WithRecorder(r Recorder) Option {
	return func(l *Ledger) { l.rec = r }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// Ledger is the expense ledger.
type Ledger struct {
	store  storage.Store
	policy calculator.RemainderPolicy
	rec    Recorder
	now    func() time.Time
}

// New creates a Ledger backed by store.
func New(store storage.Store, opts ...Option) *Ledger {
	l := &Ledger{
		store:  store,
		policy: calculator.RemainderToPayer,
		rec:    nopRecorder{},
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// ExpenseInput is a request to record an expense.
type ExpenseInput struct {
	Title string
	// Amount is the decimal string entered by the user, e.g. "900.00".
	Amount       string
	Participants []string
}

// ParseAmount parses a money amount. It must be positive, have at most two
// decimal places and be below 100,000,000.
func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, apperr.Validation("amount %q is not a number", s)
	}
	if !amount.IsPositive() {
		return decimal.Zero, apperr.Validation("amount must be positive")
	}
	if !amount.Equal(amount.Round(2)) {
		return decimal.Zero, apperr.Validation("amount must have at most 2 decimal places")
	}
	if amount.GreaterThanOrEqual(maxAmount) {
		return decimal.Zero, apperr.Validation("amount must be less than %s", maxAmount.StringFixed(2))
	}
	return amount.Round(2), nil
}

// RecordExpense creates an expense paid by the caller and one split per
// participant. Either everything is written or nothing is.
func (l *Ledger) RecordExpense(ctx context.Context, access household.Access, in ExpenseInput) (*models.Expense, []*models.Split, error) {
	title, err := validate.Text("title", in.Title, maxTitleLen)
	if err != nil {
		return nil, nil, err
	}
	amount, err := ParseAmount(in.Amount)
	if err != nil {
		return nil, nil, err
	}
	if len(calculator.Unique(in.Participants)) == 0 {
		return nil, nil, apperr.Validation("at least one participant is required")
	}

	now := l.now().Unix()
	expense := &models.Expense{
		ID:          uuid.NewString(),
		HouseholdID: access.HouseholdID(),
		Title:       title,
		Amount:      amount,
		PaidBy:      access.UserID(),
		PaidAt:      now,
		CreatedAt:   now,
	}

	var splits []*models.Split
	err = l.store.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := tx.CreateExpense(ctx, expense); err != nil {
			return err
		}
		var err error
		splits, err = l.allocate(ctx, tx, expense, in.Participants)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	l.rec.ExpenseRecorded(len(splits))
	slog.Debug("Expense recorded",
		"expense_id", expense.ID,
		"household_id", expense.HouseholdID,
		"amount", expense.Amount.StringFixed(2),
		"splits", len(splits),
	)
	return expense, splits, nil
}

// Allocate splits an expense that has no splits yet among participants.
// Only the payer may allocate. An expense is split once: if any split
// exists the call fails with apperr.ErrDuplicateSplit and nothing is written.
func (l *Ledger) Allocate(ctx context.Context, access household.Access, expenseID string, participants []string) ([]*models.Split, error) {
	var splits []*models.Split
	err := l.store.WithTx(ctx, func(tx storage.AllStorage) error {
		expense, err := getExpense(ctx, tx, access, expenseID)
		if err != nil {
			return err
		}
		if expense.PaidBy != access.UserID() {
			return apperr.Permission("only the payer can split expense %s", expenseID)
		}
		splits, err = l.allocate(ctx, tx, expense, participants)
		return err
	})
	if err != nil {
		return nil, err
	}

	l.rec.SplitsAllocated(len(splits))
	return splits, nil
}

func (l *Ledger) allocate(ctx context.Context, tx storage.AllStorage, expense *models.Expense, participants []string) ([]*models.Split, error) {
	users := calculator.Unique(participants)
	if len(users) == 0 {
		return nil, apperr.Validation("at least one participant is required")
	}

	members, err := tx.ListHouseholdMembers(ctx, expense.HouseholdID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	isMember := make(map[string]bool, len(members))
	for _, m := range members {
		isMember[m.ID] = true
	}
	for _, u := range users {
		if !isMember[u] {
			return nil, apperr.Validation("participant %s is not a member of the household", u)
		}
	}

	existing, err := tx.ListSplitsByExpense(ctx, expense.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list splits: %w", err)
	}
	if len(existing) > 0 {
		return nil, apperr.New(apperr.ErrDuplicateSplit, "expense %s is already split", expense.ID)
	}

	shares, err := calculator.Allocate(expense.Amount, users, expense.PaidBy, l.policy)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrValidation, err, "cannot split expense")
	}

	splits := make([]*models.Split, len(shares))
	for i, share := range shares {
		splits[i] = &models.Split{
			ID:         uuid.NewString(),
			ExpenseID:  expense.ID,
			OwedBy:     share.UserID,
			AmountOwed: share.Amount,
		}
	}
	if err := tx.CreateSplits(ctx, splits); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, apperr.Wrap(apperr.ErrDuplicateSplit, err, "split already exists on expense %s", expense.ID)
		}
		return nil, err
	}
	return splits, nil
}

// GetExpense returns an expense of the caller's household and its splits.
func (l *Ledger) GetExpense(ctx context.Context, access household.Access, expenseID string) (*models.Expense, []*models.Split, error) {
	expense, err := getExpense(ctx, l.store, access, expenseID)
	if err != nil {
		return nil, nil, err
	}
	splits, err := l.store.ListSplitsByExpense(ctx, expense.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list splits: %w", err)
	}
	return expense, splits, nil
}

// ListExpenses returns the household's expenses, newest first.
func (l *Ledger) ListExpenses(ctx context.Context, access household.Access, limit int) ([]*models.Expense, error) {
	return l.store.ListExpenses(ctx, access.HouseholdID(), limit)
}

func getExpense(ctx context.Context, s storage.AllStorage, access household.Access, id string) (*models.Expense, error) {
	expense, err := s.GetExpense(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, apperr.NotFound("expense %s not found", id)
	}
	if err != nil {
		return nil, err
	}
	if expense.HouseholdID != access.HouseholdID() {
		return nil, apperr.NotFound("expense %s not found", id)
	}
	return expense, nil
}
