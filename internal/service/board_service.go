package service

import (
	"context"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/dormshare/internal/board"
	"github.com/mmynk/dormshare/internal/household"
	"github.com/mmynk/dormshare/pkg/api"
	"github.com/mmynk/dormshare/pkg/api/apiconnect"
)

// BoardService implements the Connect BoardService: chores, groceries,
// guests and announcements.
type BoardService struct {
	apiconnect.UnimplementedBoardServiceHandler
	dir   *household.Directory
	board *board.Board
}

// NewBoardService creates a BoardService.
func NewBoardService(dir *household.Directory, b *board.Board) *BoardService {
	return &BoardService{dir: dir, board: b}
}

// unixTime converts wire seconds to a time. Zero stays the zero time.
func unixTime(sec int64) time.Time {
	if sec == 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0).UTC()
}

func (s *BoardService) CreateChore(ctx context.Context, req *connect.Request[api.CreateChoreRequest]) (*connect.Response[api.CreateChoreResponse], error) {
	access, err := member(ctx, s.dir)
	if err != nil {
		return nil, err
	}

	chore, err := s.board.CreateChore(ctx, access, board.ChoreInput{
		Title:       req.Msg.Title,
		Description: req.Msg.Description,
		AssignedTo:  req.Msg.AssignedTo,
		DueDate:     unixTime(req.Msg.DueDate),
	})
	if err != nil {
		return nil, connectError(err)
	}

	slog.Info("Chore created", "chore_id", chore.ID, "household_id", access.HouseholdID())
	return connect.NewResponse(&api.CreateChoreResponse{Chore: toChore(chore)}), nil
}

func (s *BoardService) ListChores(ctx context.Context, req *connect.Request[api.ListChoresRequest]) (*connect.Response[api.ListChoresResponse], error) {
	access, err := member(ctx, s.dir)
	if err != nil {
		return nil, err
	}

	chores, err := s.board.ListChores(ctx, access, req.Msg.Mine)
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&api.ListChoresResponse{Chores: toChores(chores)}), nil
}

func (s *BoardService) CompleteChore(ctx context.Context, req *connect.Request[api.CompleteChoreRequest]) (*connect.Response[api.CompleteChoreResponse], error) {
	access, err := member(ctx, s.dir)
	if err != nil {
		return nil, err
	}

	chore, err := s.board.CompleteChore(ctx, access, req.Msg.ChoreID)
	if err != nil {
		return nil, connectError(err)
	}

	slog.Info("Chore completed", "chore_id", chore.ID, "user_id", access.UserID())
	return connect.NewResponse(&api.CompleteChoreResponse{Chore: toChore(chore)}), nil
}

func (s *BoardService) AddGroceryItem(ctx context.Context, req *connect.Request[api.AddGroceryItemRequest]) (*connect.Response[api.AddGroceryItemResponse], error) {
	access, err := member(ctx, s.dir)
	if err != nil {
		return nil, err
	}

	item, err := s.board.AddGroceryItem(ctx, access, req.Msg.ItemName, req.Msg.Quantity)
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&api.AddGroceryItemResponse{Item: toGroceryItem(item)}), nil
}

func (s *BoardService) ListGroceryItems(ctx context.Context, req *connect.Request[api.ListGroceryItemsRequest]) (*connect.Response[api.ListGroceryItemsResponse], error) {
	access, err := member(ctx, s.dir)
	if err != nil {
		return nil, err
	}

	items, err := s.board.ListGroceryItems(ctx, access)
	if err != nil {
		return nil, connectError(err)
	}

	out := make([]*api.GroceryItem, len(items))
	for i, item := range items {
		out[i] = toGroceryItem(item)
	}
	return connect.NewResponse(&api.ListGroceryItemsResponse{Items: out}), nil
}

func (s *BoardService) MarkGroceryPurchased(ctx context.Context, req *connect.Request[api.MarkGroceryPurchasedRequest]) (*connect.Response[api.MarkGroceryPurchasedResponse], error) {
	access, err := member(ctx, s.dir)
	if err != nil {
		return nil, err
	}

	if err := s.board.MarkGroceryPurchased(ctx, access, req.Msg.ItemID); err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&api.MarkGroceryPurchasedResponse{}), nil
}

func (s *BoardService) RemoveGroceryItem(ctx context.Context, req *connect.Request[api.RemoveGroceryItemRequest]) (*connect.Response[api.RemoveGroceryItemResponse], error) {
	access, err := member(ctx, s.dir)
	if err != nil {
		return nil, err
	}

	if err := s.board.RemoveGroceryItem(ctx, access, req.Msg.ItemID); err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&api.RemoveGroceryItemResponse{}), nil
}

func (s *BoardService) LogGuest(ctx context.Context, req *connect.Request[api.LogGuestRequest]) (*connect.Response[api.LogGuestResponse], error) {
	access, err := member(ctx, s.dir)
	if err != nil {
		return nil, err
	}

	guest, err := s.board.LogGuest(ctx, access, board.GuestInput{
		GuestName: req.Msg.GuestName,
		Arrival:   unixTime(req.Msg.ArrivalAt),
		Departure: unixTime(req.Msg.DepartureAt),
	})
	if err != nil {
		return nil, connectError(err)
	}

	slog.Info("Guest logged", "guest_id", guest.ID, "host", access.UserID())
	return connect.NewResponse(&api.LogGuestResponse{Guest: toGuest(guest)}), nil
}

func (s *BoardService) ListUpcomingGuests(ctx context.Context, req *connect.Request[api.ListUpcomingGuestsRequest]) (*connect.Response[api.ListUpcomingGuestsResponse], error) {
	access, err := member(ctx, s.dir)
	if err != nil {
		return nil, err
	}

	guests, err := s.board.ListUpcomingGuests(ctx, access)
	if err != nil {
		return nil, connectError(err)
	}

	out := make([]*api.Guest, len(guests))
	for i, g := range guests {
		out[i] = toGuest(g)
	}
	return connect.NewResponse(&api.ListUpcomingGuestsResponse{Guests: out}), nil
}

func (s *BoardService) UpdateGuest(ctx context.Context, req *connect.Request[api.UpdateGuestRequest]) (*connect.Response[api.UpdateGuestResponse], error) {
	access, err := member(ctx, s.dir)
	if err != nil {
		return nil, err
	}

	guest, err := s.board.UpdateGuest(ctx, access, req.Msg.GuestID, board.GuestInput{
		GuestName: req.Msg.GuestName,
		Arrival:   unixTime(req.Msg.ArrivalAt),
		Departure: unixTime(req.Msg.DepartureAt),
	})
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&api.UpdateGuestResponse{Guest: toGuest(guest)}), nil
}

func (s *BoardService) PostAnnouncement(ctx context.Context, req *connect.Request[api.PostAnnouncementRequest]) (*connect.Response[api.PostAnnouncementResponse], error) {
	access, err := member(ctx, s.dir)
	if err != nil {
		return nil, err
	}

	a, err := s.board.PostAnnouncement(ctx, access, req.Msg.Title, req.Msg.Message)
	if err != nil {
		return nil, connectError(err)
	}

	slog.Info("Announcement posted", "announcement_id", a.ID, "household_id", access.HouseholdID())
	return connect.NewResponse(&api.PostAnnouncementResponse{Announcement: toAnnouncement(a)}), nil
}

func (s *BoardService) ListAnnouncements(ctx context.Context, req *connect.Request[api.ListAnnouncementsRequest]) (*connect.Response[api.ListAnnouncementsResponse], error) {
	access, err := member(ctx, s.dir)
	if err != nil {
		return nil, err
	}

	list, err := s.board.ListAnnouncements(ctx, access, req.Msg.Limit)
	if err != nil {
		return nil, connectError(err)
	}

	out := make([]*api.Announcement, len(list))
	for i, a := range list {
		out[i] = toAnnouncement(a)
	}
	return connect.NewResponse(&api.ListAnnouncementsResponse{Announcements: out}), nil
}

func (s *BoardService) UpdateAnnouncement(ctx context.Context, req *connect.Request[api.UpdateAnnouncementRequest]) (*connect.Response[api.UpdateAnnouncementResponse], error) {
	access, err := member(ctx, s.dir)
	if err != nil {
		return nil, err
	}

	a, err := s.board.UpdateAnnouncement(ctx, access, req.Msg.AnnouncementID, req.Msg.Title, req.Msg.Message)
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&api.UpdateAnnouncementResponse{Announcement: toAnnouncement(a)}), nil
}

func (s *BoardService) DeleteAnnouncement(ctx context.Context, req *connect.Request[api.DeleteAnnouncementRequest]) (*connect.Response[api.DeleteAnnouncementResponse], error) {
	access, err := member(ctx, s.dir)
	if err != nil {
		return nil, err
	}

	if err := s.board.DeleteAnnouncement(ctx, access, req.Msg.AnnouncementID); err != nil {
		return nil, connectError(err)
	}

	slog.Info("Announcement deleted", "announcement_id", req.Msg.AnnouncementID)
	return connect.NewResponse(&api.DeleteAnnouncementResponse{}), nil
}
