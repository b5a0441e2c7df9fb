package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/dormshare/internal/household"
	"github.com/mmynk/dormshare/internal/ledger"
	"github.com/mmynk/dormshare/pkg/api"
	"github.com/mmynk/dormshare/pkg/api/apiconnect"
)

// LedgerService implements the Connect LedgerService.
type LedgerService struct {
	apiconnect.UnimplementedLedgerServiceHandler
	dir    *household.Directory
	ledger *ledger.Ledger
}

// NewLedgerService creates a LedgerService.
func NewLedgerService(dir *household.Directory, l *ledger.Ledger) *LedgerService {
	return &LedgerService{dir: dir, ledger: l}
}

// RecordExpense records an expense paid by the caller and splits it.
func (s *LedgerService) RecordExpense(ctx context.Context, req *connect.Request[api.RecordExpenseRequest]) (*connect.Response[api.RecordExpenseResponse], error) {
	access, err := member(ctx, s.dir)
	if err != nil {
		return nil, err
	}

	slog.Info("RecordExpense request received",
		"household_id", access.HouseholdID(),
		"title", req.Msg.Title,
		"amount", req.Msg.Amount,
		"participants_count", len(req.Msg.ParticipantIDs),
	)

	expense, splits, err := s.ledger.RecordExpense(ctx, access, ledger.ExpenseInput{
		Title:        req.Msg.Title,
		Amount:       req.Msg.Amount,
		Participants: req.Msg.ParticipantIDs,
	})
	if err != nil {
		return nil, connectError(err)
	}

	slog.Info("Expense recorded", "expense_id", expense.ID, "splits", len(splits))
	return connect.NewResponse(&api.RecordExpenseResponse{
		Expense: toExpense(expense),
		Splits:  toSplits(splits),
	}), nil
}

// GetExpense returns an expense of the caller's household with its splits.
func (s *LedgerService) GetExpense(ctx context.Context, req *connect.Request[api.GetExpenseRequest]) (*connect.Response[api.GetExpenseResponse], error) {
	access, err := member(ctx, s.dir)
	if err != nil {
		return nil, err
	}

	expense, splits, err := s.ledger.GetExpense(ctx, access, req.Msg.ExpenseID)
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&api.GetExpenseResponse{
		Expense: toExpense(expense),
		Splits:  toSplits(splits),
	}), nil
}

// ListExpenses lists the household's expenses, newest first.
func (s *LedgerService) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	access, err := member(ctx, s.dir)
	if err != nil {
		return nil, err
	}

	expenses, err := s.ledger.ListExpenses(ctx, access, req.Msg.Limit)
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&api.ListExpensesResponse{Expenses: toExpenses(expenses)}), nil
}

// SettleSplit marks a split paid. It does not require a household so that a
// member who has left can still settle what they owe.
func (s *LedgerService) SettleSplit(ctx context.Context, req *connect.Request[api.SettleSplitRequest]) (*connect.Response[api.SettleSplitResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("SettleSplit request received", "split_id", req.Msg.SplitID, "user_id", userID)

	split, err := s.ledger.Settle(ctx, userID, req.Msg.SplitID)
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&api.SettleSplitResponse{Split: toSplit(split)}), nil
}

// GetBalance returns the caller's net balance across all unsettled splits.
func (s *LedgerService) GetBalance(ctx context.Context, req *connect.Request[api.GetBalanceRequest]) (*connect.Response[api.GetBalanceResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	balance, err := s.ledger.NetBalance(ctx, userID)
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&api.GetBalanceResponse{Balance: toBalance(balance)}), nil
}

// GetOverview returns the caller's balance, total paid and split lists.
func (s *LedgerService) GetOverview(ctx context.Context, req *connect.Request[api.GetOverviewRequest]) (*connect.Response[api.GetOverviewResponse], error) {
	access, err := member(ctx, s.dir)
	if err != nil {
		return nil, err
	}

	o, err := s.ledger.Overview(ctx, access)
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&api.GetOverviewResponse{
		Balance:   toBalance(o.Balance),
		TotalPaid: o.TotalPaid.StringFixed(2),
		Debts:     toSplitLines(o.Debts),
		Credits:   toSplitLines(o.Credits),
		Settled:   toSplitLines(o.Settled),
	}), nil
}
