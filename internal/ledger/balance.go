package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/mmynk/dormshare/internal/apperr"
	"github.com/mmynk/dormshare/internal/calculator"
	"github.com/mmynk/dormshare/internal/household"
	"github.com/mmynk/dormshare/internal/models"
	"github.com/mmynk/dormshare/internal/storage"
)

// NetBalance computes what others owe userID minus what userID owes others,
// across all unsettled splits. It is derived on every call.
func (l *Ledger) NetBalance(ctx context.Context, userID string) (calculator.Balance, error) {
	unsettled := false
	lines, err := l.store.ListSplitLines(ctx, storage.SplitFilter{
		Involving: userID,
		Settled:   &unsettled,
	})
	if err != nil {
		return calculator.Balance{}, fmt.Errorf("failed to load splits: %w", err)
	}
	return calculator.NetBalance(userID, entries(lines)), nil
}

func entries(lines []*models.SplitLine) []calculator.Entry {
	out := make([]calculator.Entry, len(lines))
	for i, line := range lines {
		out[i] = calculator.Entry{
			PaidBy:    line.PaidBy,
			OwedBy:    line.OwedBy,
			Amount:    line.AmountOwed,
			IsSettled: line.IsSettled,
		}
	}
	return out
}

// Settle marks a split as paid. Only the ower or the payer of the parent
// expense may settle it. Settling an already settled split returns it
// unchanged.
func (l *Ledger) Settle(ctx context.Context, actorID, splitID string) (*models.Split, error) {
	var (
		split        *models.Split
		transitioned bool
	)
	err := l.store.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		split, err = tx.GetSplit(ctx, splitID)
		if errors.Is(err, storage.ErrNotFound) {
			return apperr.NotFound("split %s not found", splitID)
		}
		if err != nil {
			return err
		}

		expense, err := tx.GetExpense(ctx, split.ExpenseID)
		if err != nil {
			return fmt.Errorf("failed to load expense of split %s: %w", splitID, err)
		}
		if actorID != split.OwedBy && actorID != expense.PaidBy {
			return apperr.Permission("only the ower or the payer can settle split %s", splitID)
		}

		if split.IsSettled {
			return nil
		}

		at := l.now().Unix()
		transitioned, err = tx.MarkSplitSettled(ctx, splitID, actorID, at)
		if err != nil {
			return err
		}
		if transitioned {
			split.IsSettled = true
			split.SettledAt = at
			split.SettledBy = actorID
			return nil
		}

		split, err = tx.GetSplit(ctx, splitID)
		return err
	})
	if err != nil {
		return nil, err
	}

	l.rec.SplitSettled(transitioned)
	slog.Debug("Split settled", "split_id", splitID, "actor", actorID, "transitioned", transitioned)
	return split, nil
}

// Overview is the caller's view of the ledger.
type Overview struct {
	Balance calculator.Balance

	// TotalPaid is the sum of expenses the user paid in the household.
	TotalPaid decimal.Decimal

	// Debts are unsettled splits the user owes to other payers.
	Debts []*models.SplitLine

	// Credits are unsettled splits others owe on expenses the user paid.
	Credits []*models.SplitLine

	// Settled are settled splits where the user was either side.
	Settled []*models.SplitLine
}

// Overview assembles the caller's balance, totals and split lists. Lists are
// ordered by paid date, newest first.
func (l *Ledger) Overview(ctx context.Context, access household.Access) (*Overview, error) {
	userID := access.UserID()

	balance, err := l.NetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}

	paid, err := l.store.ListExpensesPaidBy(ctx, access.HouseholdID(), userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load paid expenses: %w", err)
	}
	total := decimal.Zero
	for _, e := range paid {
		total = total.Add(e.Amount)
	}

	debts, err := l.Debts(ctx, userID)
	if err != nil {
		return nil, err
	}

	unsettled, settled := false, true
	credits, err := l.store.ListSplitLines(ctx, storage.SplitFilter{
		PaidBy:        userID,
		ExcludeOwedBy: userID,
		Settled:       &unsettled,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load credits: %w", err)
	}

	history, err := l.store.ListSplitLines(ctx, storage.SplitFilter{
		Involving: userID,
		Settled:   &settled,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load settled history: %w", err)
	}

	return &Overview{
		Balance:   balance,
		TotalPaid: total,
		Debts:     debts,
		Credits:   credits,
		Settled:   history,
	}, nil
}

// Debts returns the unsettled splits userID owes on expenses others paid,
// newest first.
func (l *Ledger) Debts(ctx context.Context, userID string) ([]*models.SplitLine, error) {
	unsettled := false
	lines, err := l.store.ListSplitLines(ctx, storage.SplitFilter{
		OwedBy:        userID,
		ExcludePaidBy: userID,
		Settled:       &unsettled,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load debts: %w", err)
	}
	return lines, nil
}

// BalanceMessage renders a net balance for people.
func BalanceMessage(net decimal.Decimal) string {
	switch net.Sign() {
	case 1:
		return "You are owed ₹" + net.Abs().StringFixed(2)
	case -1:
		return "You owe ₹" + net.Abs().StringFixed(2)
	default:
		return "You are all settled up"
	}
}
