package sqlite

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"

	"github.com/mmynk/dormshare/internal/models"
	"github.com/mmynk/dormshare/internal/storage"
)

// CreateExpense persists a new expense. Splits are written separately.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	_, err := s.builder.Insert(expensesTable).
		Rows(expenseToRow(expense)).
		Executor().ExecContext(ctx)
	if err != nil {
		return translate(err, "insert expense")
	}
	return nil
}

// GetExpense retrieves an expense by ID.
func (s *SQLiteStore) GetExpense(ctx context.Context, id string) (*models.Expense, error) {
	var row expenseRow
	found, err := s.builder.From(expensesTable).
		Where(goqu.C("id").Eq(id)).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	if !found {
		return nil, storage.ErrNotFound
	}
	return row.toModel()
}

// ListExpenses returns a household's expenses, newest first.
func (s *SQLiteStore) ListExpenses(ctx context.Context, householdID string, limit int) ([]*models.Expense, error) {
	ds := s.builder.From(expensesTable).
		Where(goqu.C("household_id").Eq(householdID)).
		Order(goqu.C("paid_at").Desc(), goqu.C("created_at").Desc(), goqu.C("id").Asc())
	if limit > 0 {
		ds = ds.Limit(uint(limit))
	}
	return s.scanExpenses(ctx, ds)
}

// ListExpensesPaidBy returns the expenses userID paid within a household.
func (s *SQLiteStore) ListExpensesPaidBy(ctx context.Context, householdID, userID string) ([]*models.Expense, error) {
	ds := s.builder.From(expensesTable).
		Where(
			goqu.C("household_id").Eq(householdID),
			goqu.C("paid_by").Eq(userID),
		).
		Order(goqu.C("paid_at").Desc(), goqu.C("id").Asc())
	return s.scanExpenses(ctx, ds)
}

func (s *SQLiteStore) scanExpenses(ctx context.Context, ds *goqu.SelectDataset) ([]*models.Expense, error) {
	var rows []expenseRow
	if err := ds.ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	expenses := make([]*models.Expense, 0, len(rows))
	for _, row := range rows {
		e, err := row.toModel()
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, nil
}

// CreateSplits inserts splits in one statement.
func (s *SQLiteStore) CreateSplits(ctx context.Context, splits []*models.Split) error {
	if len(splits) == 0 {
		return nil
	}

	rows := make([]splitRow, len(splits))
	for i, split := range splits {
		rows[i] = splitToRow(split)
	}

	_, err := s.builder.Insert(splitsTable).
		Rows(rows).
		Executor().ExecContext(ctx)
	if err != nil {
		return translate(err, "insert splits")
	}
	return nil
}

// GetSplit retrieves a split by ID.
func (s *SQLiteStore) GetSplit(ctx context.Context, id string) (*models.Split, error) {
	var row splitRow
	found, err := s.builder.From(splitsTable).
		Where(goqu.C("id").Eq(id)).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("failed to get split: %w", err)
	}
	if !found {
		return nil, storage.ErrNotFound
	}
	return row.toModel()
}

// ListSplitsByExpense returns every split of an expense.
func (s *SQLiteStore) ListSplitsByExpense(ctx context.Context, expenseID string) ([]*models.Split, error) {
	var rows []splitRow
	err := s.builder.From(splitsTable).
		Where(goqu.C("expense_id").Eq(expenseID)).
		Order(goqu.C("id").Asc()).
		ScanStructsContext(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list splits: %w", err)
	}

	splits := make([]*models.Split, 0, len(rows))
	for _, row := range rows {
		split, err := row.toModel()
		if err != nil {
			return nil, err
		}
		splits = append(splits, split)
	}
	return splits, nil
}

// ListSplitLines returns splits joined with their parent expense.
func (s *SQLiteStore) ListSplitLines(ctx context.Context, filter storage.SplitFilter) ([]*models.SplitLine, error) {
	ds := s.builder.From(goqu.T(splitsTable).As("s")).
		InnerJoin(goqu.T(expensesTable).As("e"), goqu.On(goqu.I("s.expense_id").Eq(goqu.I("e.id")))).
		Select(
			goqu.I("s.id").As("id"),
			goqu.I("s.expense_id").As("expense_id"),
			goqu.I("s.owed_by").As("owed_by"),
			goqu.I("s.amount_owed").As("amount_owed"),
			goqu.I("s.is_settled").As("is_settled"),
			goqu.I("s.settled_at").As("settled_at"),
			goqu.I("s.settled_by").As("settled_by"),
			goqu.I("e.household_id").As("household_id"),
			goqu.I("e.title").As("expense_title"),
			goqu.I("e.paid_by").As("paid_by"),
			goqu.I("e.paid_at").As("paid_at"),
		).
		Where(splitConditions(filter)...).
		Order(goqu.I("e.paid_at").Desc(), goqu.I("e.created_at").Desc(), goqu.I("s.id").Asc())

	var rows []splitLineRow
	if err := ds.ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to list split lines: %w", err)
	}

	lines := make([]*models.SplitLine, 0, len(rows))
	for _, row := range rows {
		line, err := row.toModel()
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func splitConditions(f storage.SplitFilter) []exp.Expression {
	var conds []exp.Expression
	if f.HouseholdID != "" {
		conds = append(conds, goqu.I("e.household_id").Eq(f.HouseholdID))
	}
	if f.OwedBy != "" {
		conds = append(conds, goqu.I("s.owed_by").Eq(f.OwedBy))
	}
	if f.PaidBy != "" {
		conds = append(conds, goqu.I("e.paid_by").Eq(f.PaidBy))
	}
	if f.ExcludeOwedBy != "" {
		conds = append(conds, goqu.I("s.owed_by").Neq(f.ExcludeOwedBy))
	}
	if f.ExcludePaidBy != "" {
		conds = append(conds, goqu.I("e.paid_by").Neq(f.ExcludePaidBy))
	}
	if f.Settled != nil {
		conds = append(conds, goqu.I("s.is_settled").Eq(*f.Settled))
	}
	if f.Involving != "" {
		conds = append(conds, goqu.Or(
			goqu.I("s.owed_by").Eq(f.Involving),
			goqu.I("e.paid_by").Eq(f.Involving),
		))
	}
	return conds
}

// MarkSplitSettled flips an unsettled split to settled. The WHERE clause on
// is_settled makes the transition happen at most once.
func (s *SQLiteStore) MarkSplitSettled(ctx context.Context, id, settledBy string, settledAt int64) (bool, error) {
	res, err := s.builder.Update(splitsTable).
		Set(goqu.Record{
			"is_settled": true,
			"settled_at": settledAt,
			"settled_by": nullString(settledBy),
		}).
		Where(
			goqu.C("id").Eq(id),
			goqu.C("is_settled").Eq(false),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, translate(err, "settle split")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to settle split: %w", err)
	}
	return n == 1, nil
}
