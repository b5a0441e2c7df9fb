package service

import (
	"context"
	"log/slog"
	"slices"

	"connectrpc.com/connect"

	"github.com/mmynk/dormshare/internal/board"
	"github.com/mmynk/dormshare/internal/household"
	"github.com/mmynk/dormshare/internal/ledger"
	"github.com/mmynk/dormshare/pkg/api"
	"github.com/mmynk/dormshare/pkg/api/apiconnect"
)

const (
	dashboardUpcomingChores = 2
	dashboardRecentExpenses = 2
)

// HouseholdService implements the Connect HouseholdService.
type HouseholdService struct {
	apiconnect.UnimplementedHouseholdServiceHandler
	dir    *household.Directory
	ledger *ledger.Ledger
	board  *board.Board
}

// NewHouseholdService creates a HouseholdService. The ledger and board feed
// the dashboard.
func NewHouseholdService(dir *household.Directory, l *ledger.Ledger, b *board.Board) *HouseholdService {
	return &HouseholdService{dir: dir, ledger: l, board: b}
}

// CreateHousehold creates a household and makes the caller its first member.
func (s *HouseholdService) CreateHousehold(ctx context.Context, req *connect.Request[api.CreateHouseholdRequest]) (*connect.Response[api.CreateHouseholdResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("CreateHousehold request received", "user_id", userID, "name", req.Msg.Name)

	h, err := s.dir.Create(ctx, userID, req.Msg.Name)
	if err != nil {
		return nil, connectError(err)
	}

	slog.Info("Household created", "household_id", h.ID, "user_id", userID)
	return connect.NewResponse(&api.CreateHouseholdResponse{Household: toHousehold(h)}), nil
}

// JoinHousehold adds the caller to the household named by an invite code.
func (s *HouseholdService) JoinHousehold(ctx context.Context, req *connect.Request[api.JoinHouseholdRequest]) (*connect.Response[api.JoinHouseholdResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("JoinHousehold request received", "user_id", userID)

	h, err := s.dir.Join(ctx, userID, req.Msg.InviteCode)
	if err != nil {
		return nil, connectError(err)
	}

	slog.Info("Household joined", "household_id", h.ID, "user_id", userID)
	return connect.NewResponse(&api.JoinHouseholdResponse{Household: toHousehold(h)}), nil
}

// LeaveHousehold removes the caller from their household.
func (s *HouseholdService) LeaveHousehold(ctx context.Context, req *connect.Request[api.LeaveHouseholdRequest]) (*connect.Response[api.LeaveHouseholdResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.dir.Leave(ctx, userID); err != nil {
		return nil, connectError(err)
	}

	slog.Info("Household left", "user_id", userID)
	return connect.NewResponse(&api.LeaveHouseholdResponse{}), nil
}

// GetHousehold returns the caller's household and its members. Callers
// without a household get an empty response rather than an error.
func (s *HouseholdService) GetHousehold(ctx context.Context, req *connect.Request[api.GetHouseholdRequest]) (*connect.Response[api.GetHouseholdResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	h, found, err := s.dir.Lookup(ctx, userID)
	if err != nil {
		return nil, connectError(err)
	}
	if !found {
		return connect.NewResponse(&api.GetHouseholdResponse{Members: []*api.User{}}), nil
	}

	members, err := s.dir.Members(ctx, h.ID)
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&api.GetHouseholdResponse{
		Household: toHousehold(h),
		Members:   toUsers(members),
	}), nil
}

// RenameHousehold changes the name of the caller's household.
func (s *HouseholdService) RenameHousehold(ctx context.Context, req *connect.Request[api.RenameHouseholdRequest]) (*connect.Response[api.RenameHouseholdResponse], error) {
	access, err := member(ctx, s.dir)
	if err != nil {
		return nil, err
	}

	h, err := s.dir.Rename(ctx, access, req.Msg.Name)
	if err != nil {
		return nil, connectError(err)
	}

	slog.Info("Household renamed", "household_id", h.ID, "name", h.Name)
	return connect.NewResponse(&api.RenameHouseholdResponse{Household: toHousehold(h)}), nil
}

// GetDashboard assembles the caller's home screen.
func (s *HouseholdService) GetDashboard(ctx context.Context, req *connect.Request[api.GetDashboardRequest]) (*connect.Response[api.GetDashboardResponse], error) {
	access, err := member(ctx, s.dir)
	if err != nil {
		return nil, err
	}

	mine, err := s.board.ListChores(ctx, access, true)
	if err != nil {
		return nil, connectError(err)
	}
	pending, err := s.board.ListChores(ctx, access, false)
	if err != nil {
		return nil, connectError(err)
	}
	groceries, err := s.board.ListGroceryItems(ctx, access)
	if err != nil {
		return nil, connectError(err)
	}
	announcements, err := s.board.ListAnnouncements(ctx, access, 1)
	if err != nil {
		return nil, connectError(err)
	}

	debts, err := s.ledger.Debts(ctx, access.UserID())
	if err != nil {
		return nil, connectError(err)
	}
	// Oldest debts first on the home screen.
	slices.Reverse(debts)
	expenses, err := s.ledger.ListExpenses(ctx, access, dashboardRecentExpenses)
	if err != nil {
		return nil, connectError(err)
	}
	balance, err := s.ledger.NetBalance(ctx, access.UserID())
	if err != nil {
		return nil, connectError(err)
	}

	resp := &api.GetDashboardResponse{
		MyPendingChores:   toChores(mine),
		MyUnsettledDebts:  toSplitLines(debts),
		PendingChoreCount: len(pending),
		GroceryItemCount:  len(groceries),
		UpcomingChores:    toChores(pending[:min(len(pending), dashboardUpcomingChores)]),
		RecentExpenses:    toExpenses(expenses),
		Balance:           toBalance(balance),
	}
	if len(announcements) > 0 {
		resp.LatestAnnouncement = toAnnouncement(announcements[0])
	}
	return connect.NewResponse(resp), nil
}
