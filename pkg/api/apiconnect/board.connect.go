package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/dormshare/pkg/api"
)

// BoardServiceName is the fully-qualified name of the BoardService service.
const BoardServiceName = "dormshare.v1.BoardService"

// Procedure paths of the BoardService RPCs.
const (
	BoardServiceCreateChoreProcedure          = "/" + BoardServiceName + "/CreateChore"
	BoardServiceListChoresProcedure           = "/" + BoardServiceName + "/ListChores"
	BoardServiceCompleteChoreProcedure        = "/" + BoardServiceName + "/CompleteChore"
	BoardServiceAddGroceryItemProcedure       = "/" + BoardServiceName + "/AddGroceryItem"
	BoardServiceListGroceryItemsProcedure     = "/" + BoardServiceName + "/ListGroceryItems"
	BoardServiceMarkGroceryPurchasedProcedure = "/" + BoardServiceName + "/MarkGroceryPurchased"
	BoardServiceRemoveGroceryItemProcedure    = "/" + BoardServiceName + "/RemoveGroceryItem"
	BoardServiceLogGuestProcedure             = "/" + BoardServiceName + "/LogGuest"
	BoardServiceListUpcomingGuestsProcedure   = "/" + BoardServiceName + "/ListUpcomingGuests"
	BoardServiceUpdateGuestProcedure          = "/" + BoardServiceName + "/UpdateGuest"
	BoardServicePostAnnouncementProcedure     = "/" + BoardServiceName + "/PostAnnouncement"
	BoardServiceListAnnouncementsProcedure    = "/" + BoardServiceName + "/ListAnnouncements"
	BoardServiceUpdateAnnouncementProcedure   = "/" + BoardServiceName + "/UpdateAnnouncement"
	BoardServiceDeleteAnnouncementProcedure   = "/" + BoardServiceName + "/DeleteAnnouncement"
)

// BoardServiceClient is a client for the dormshare.v1.BoardService service.
type BoardServiceClient interface {
	CreateChore(context.Context, *connect.Request[api.CreateChoreRequest]) (*connect.Response[api.CreateChoreResponse], error)
	ListChores(context.Context, *connect.Request[api.ListChoresRequest]) (*connect.Response[api.ListChoresResponse], error)
	CompleteChore(context.Context, *connect.Request[api.CompleteChoreRequest]) (*connect.Response[api.CompleteChoreResponse], error)
	AddGroceryItem(context.Context, *connect.Request[api.AddGroceryItemRequest]) (*connect.Response[api.AddGroceryItemResponse], error)
	ListGroceryItems(context.Context, *connect.Request[api.ListGroceryItemsRequest]) (*connect.Response[api.ListGroceryItemsResponse], error)
	MarkGroceryPurchased(context.Context, *connect.Request[api.MarkGroceryPurchasedRequest]) (*connect.Response[api.MarkGroceryPurchasedResponse], error)
	RemoveGroceryItem(context.Context, *connect.Request[api.RemoveGroceryItemRequest]) (*connect.Response[api.RemoveGroceryItemResponse], error)
	LogGuest(context.Context, *connect.Request[api.LogGuestRequest]) (*connect.Response[api.LogGuestResponse], error)
	ListUpcomingGuests(context.Context, *connect.Request[api.ListUpcomingGuestsRequest]) (*connect.Response[api.ListUpcomingGuestsResponse], error)
	UpdateGuest(context.Context, *connect.Request[api.UpdateGuestRequest]) (*connect.Response[api.UpdateGuestResponse], error)
	PostAnnouncement(context.Context, *connect.Request[api.PostAnnouncementRequest]) (*connect.Response[api.PostAnnouncementResponse], error)
	ListAnnouncements(context.Context, *connect.Request[api.ListAnnouncementsRequest]) (*connect.Response[api.ListAnnouncementsResponse], error)
	UpdateAnnouncement(context.Context, *connect.Request[api.UpdateAnnouncementRequest]) (*connect.Response[api.UpdateAnnouncementResponse], error)
	DeleteAnnouncement(context.Context, *connect.Request[api.DeleteAnnouncementRequest]) (*connect.Response[api.DeleteAnnouncementResponse], error)
}

// NewBoardServiceClient constructs a client for the dormshare.v1.BoardService service.
// baseURL is the server root, e.g. http://localhost:8080.
func NewBoardServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) BoardServiceClient {
	return &boardServiceClient{
		createChore:          newClient[api.CreateChoreRequest, api.CreateChoreResponse](httpClient, baseURL, BoardServiceCreateChoreProcedure, opts),
		listChores:           newClient[api.ListChoresRequest, api.ListChoresResponse](httpClient, baseURL, BoardServiceListChoresProcedure, opts),
		completeChore:        newClient[api.CompleteChoreRequest, api.CompleteChoreResponse](httpClient, baseURL, BoardServiceCompleteChoreProcedure, opts),
		addGroceryItem:       newClient[api.AddGroceryItemRequest, api.AddGroceryItemResponse](httpClient, baseURL, BoardServiceAddGroceryItemProcedure, opts),
		listGroceryItems:     newClient[api.ListGroceryItemsRequest, api.ListGroceryItemsResponse](httpClient, baseURL, BoardServiceListGroceryItemsProcedure, opts),
		markGroceryPurchased: newClient[api.MarkGroceryPurchasedRequest, api.MarkGroceryPurchasedResponse](httpClient, baseURL, BoardServiceMarkGroceryPurchasedProcedure, opts),
		removeGroceryItem:    newClient[api.RemoveGroceryItemRequest, api.RemoveGroceryItemResponse](httpClient, baseURL, BoardServiceRemoveGroceryItemProcedure, opts),
		logGuest:             newClient[api.LogGuestRequest, api.LogGuestResponse](httpClient, baseURL, BoardServiceLogGuestProcedure, opts),
		listUpcomingGuests:   newClient[api.ListUpcomingGuestsRequest, api.ListUpcomingGuestsResponse](httpClient, baseURL, BoardServiceListUpcomingGuestsProcedure, opts),
		updateGuest:          newClient[api.UpdateGuestRequest, api.UpdateGuestResponse](httpClient, baseURL, BoardServiceUpdateGuestProcedure, opts),
		postAnnouncement:     newClient[api.PostAnnouncementRequest, api.PostAnnouncementResponse](httpClient, baseURL, BoardServicePostAnnouncementProcedure, opts),
		listAnnouncements:    newClient[api.ListAnnouncementsRequest, api.ListAnnouncementsResponse](httpClient, baseURL, BoardServiceListAnnouncementsProcedure, opts),
		updateAnnouncement:   newClient[api.UpdateAnnouncementRequest, api.UpdateAnnouncementResponse](httpClient, baseURL, BoardServiceUpdateAnnouncementProcedure, opts),
		deleteAnnouncement:   newClient[api.DeleteAnnouncementRequest, api.DeleteAnnouncementResponse](httpClient, baseURL, BoardServiceDeleteAnnouncementProcedure, opts),
	}
}

type boardServiceClient struct {
	createChore          *connect.Client[api.CreateChoreRequest, api.CreateChoreResponse]
	listChores           *connect.Client[api.ListChoresRequest, api.ListChoresResponse]
	completeChore        *connect.Client[api.CompleteChoreRequest, api.CompleteChoreResponse]
	addGroceryItem       *connect.Client[api.AddGroceryItemRequest, api.AddGroceryItemResponse]
	listGroceryItems     *connect.Client[api.ListGroceryItemsRequest, api.ListGroceryItemsResponse]
	markGroceryPurchased *connect.Client[api.MarkGroceryPurchasedRequest, api.MarkGroceryPurchasedResponse]
	removeGroceryItem    *connect.Client[api.RemoveGroceryItemRequest, api.RemoveGroceryItemResponse]
	logGuest             *connect.Client[api.LogGuestRequest, api.LogGuestResponse]
	listUpcomingGuests   *connect.Client[api.ListUpcomingGuestsRequest, api.ListUpcomingGuestsResponse]
	updateGuest          *connect.Client[api.UpdateGuestRequest, api.UpdateGuestResponse]
	postAnnouncement     *connect.Client[api.PostAnnouncementRequest, api.PostAnnouncementResponse]
	listAnnouncements    *connect.Client[api.ListAnnouncementsRequest, api.ListAnnouncementsResponse]
	updateAnnouncement   *connect.Client[api.UpdateAnnouncementRequest, api.UpdateAnnouncementResponse]
	deleteAnnouncement   *connect.Client[api.DeleteAnnouncementRequest, api.DeleteAnnouncementResponse]
}

func (c *boardServiceClient) CreateChore(ctx context.Context, req *connect.Request[api.CreateChoreRequest]) (*connect.Response[api.CreateChoreResponse], error) {
	return c.createChore.CallUnary(ctx, req)
}

func (c *boardServiceClient) ListChores(ctx context.Context, req *connect.Request[api.ListChoresRequest]) (*connect.Response[api.ListChoresResponse], error) {
	return c.listChores.CallUnary(ctx, req)
}

func (c *boardServiceClient) CompleteChore(ctx context.Context, req *connect.Request[api.CompleteChoreRequest]) (*connect.Response[api.CompleteChoreResponse], error) {
	return c.completeChore.CallUnary(ctx, req)
}

func (c *boardServiceClient) AddGroceryItem(ctx context.Context, req *connect.Request[api.AddGroceryItemRequest]) (*connect.Response[api.AddGroceryItemResponse], error) {
	return c.addGroceryItem.CallUnary(ctx, req)
}

func (c *boardServiceClient) ListGroceryItems(ctx context.Context, req *connect.Request[api.ListGroceryItemsRequest]) (*connect.Response[api.ListGroceryItemsResponse], error) {
	return c.listGroceryItems.CallUnary(ctx, req)
}

func (c *boardServiceClient) MarkGroceryPurchased(ctx context.Context, req *connect.Request[api.MarkGroceryPurchasedRequest]) (*connect.Response[api.MarkGroceryPurchasedResponse], error) {
	return c.markGroceryPurchased.CallUnary(ctx, req)
}

func (c *boardServiceClient) RemoveGroceryItem(ctx context.Context, req *connect.Request[api.RemoveGroceryItemRequest]) (*connect.Response[api.RemoveGroceryItemResponse], error) {
	return c.removeGroceryItem.CallUnary(ctx, req)
}

func (c *boardServiceClient) LogGuest(ctx context.Context, req *connect.Request[api.LogGuestRequest]) (*connect.Response[api.LogGuestResponse], error) {
	return c.logGuest.CallUnary(ctx, req)
}

func (c *boardServiceClient) ListUpcomingGuests(ctx context.Context, req *connect.Request[api.ListUpcomingGuestsRequest]) (*connect.Response[api.ListUpcomingGuestsResponse], error) {
	return c.listUpcomingGuests.CallUnary(ctx, req)
}

func (c *boardServiceClient) UpdateGuest(ctx context.Context, req *connect.Request[api.UpdateGuestRequest]) (*connect.Response[api.UpdateGuestResponse], error) {
	return c.updateGuest.CallUnary(ctx, req)
}

func (c *boardServiceClient) PostAnnouncement(ctx context.Context, req *connect.Request[api.PostAnnouncementRequest]) (*connect.Response[api.PostAnnouncementResponse], error) {
	return c.postAnnouncement.CallUnary(ctx, req)
}

func (c *boardServiceClient) ListAnnouncements(ctx context.Context, req *connect.Request[api.ListAnnouncementsRequest]) (*connect.Response[api.ListAnnouncementsResponse], error) {
	return c.listAnnouncements.CallUnary(ctx, req)
}

func (c *boardServiceClient) UpdateAnnouncement(ctx context.Context, req *connect.Request[api.UpdateAnnouncementRequest]) (*connect.Response[api.UpdateAnnouncementResponse], error) {
	return c.updateAnnouncement.CallUnary(ctx, req)
}

func (c *boardServiceClient) DeleteAnnouncement(ctx context.Context, req *connect.Request[api.DeleteAnnouncementRequest]) (*connect.Response[api.DeleteAnnouncementResponse], error) {
	return c.deleteAnnouncement.CallUnary(ctx, req)
}

// BoardServiceHandler is implemented by the server side of dormshare.v1.BoardService, which serves chores, groceries, guests and announcements.
type BoardServiceHandler interface {
	CreateChore(context.Context, *connect.Request[api.CreateChoreRequest]) (*connect.Response[api.CreateChoreResponse], error)
	ListChores(context.Context, *connect.Request[api.ListChoresRequest]) (*connect.Response[api.ListChoresResponse], error)
	CompleteChore(context.Context, *connect.Request[api.CompleteChoreRequest]) (*connect.Response[api.CompleteChoreResponse], error)
	AddGroceryItem(context.Context, *connect.Request[api.AddGroceryItemRequest]) (*connect.Response[api.AddGroceryItemResponse], error)
	ListGroceryItems(context.Context, *connect.Request[api.ListGroceryItemsRequest]) (*connect.Response[api.ListGroceryItemsResponse], error)
	MarkGroceryPurchased(context.Context, *connect.Request[api.MarkGroceryPurchasedRequest]) (*connect.Response[api.MarkGroceryPurchasedResponse], error)
	RemoveGroceryItem(context.Context, *connect.Request[api.RemoveGroceryItemRequest]) (*connect.Response[api.RemoveGroceryItemResponse], error)
	LogGuest(context.Context, *connect.Request[api.LogGuestRequest]) (*connect.Response[api.LogGuestResponse], error)
	ListUpcomingGuests(context.Context, *connect.Request[api.ListUpcomingGuestsRequest]) (*connect.Response[api.ListUpcomingGuestsResponse], error)
	UpdateGuest(context.Context, *connect.Request[api.UpdateGuestRequest]) (*connect.Response[api.UpdateGuestResponse], error)
	PostAnnouncement(context.Context, *connect.Request[api.PostAnnouncementRequest]) (*connect.Response[api.PostAnnouncementResponse], error)
	ListAnnouncements(context.Context, *connect.Request[api.ListAnnouncementsRequest]) (*connect.Response[api.ListAnnouncementsResponse], error)
	UpdateAnnouncement(context.Context, *connect.Request[api.UpdateAnnouncementRequest]) (*connect.Response[api.UpdateAnnouncementResponse], error)
	DeleteAnnouncement(context.Context, *connect.Request[api.DeleteAnnouncementRequest]) (*connect.Response[api.DeleteAnnouncementResponse], error)
}

// NewBoardServiceHandler builds an HTTP handler from svc. It returns the path to
// mount the handler on.
func NewBoardServiceHandler(svc BoardServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	return "/" + BoardServiceName + "/", route(map[string]http.Handler{
		BoardServiceCreateChoreProcedure:          newHandler(BoardServiceCreateChoreProcedure, svc.CreateChore, opts),
		BoardServiceListChoresProcedure:           newHandler(BoardServiceListChoresProcedure, svc.ListChores, opts),
		BoardServiceCompleteChoreProcedure:        newHandler(BoardServiceCompleteChoreProcedure, svc.CompleteChore, opts),
		BoardServiceAddGroceryItemProcedure:       newHandler(BoardServiceAddGroceryItemProcedure, svc.AddGroceryItem, opts),
		BoardServiceListGroceryItemsProcedure:     newHandler(BoardServiceListGroceryItemsProcedure, svc.ListGroceryItems, opts),
		BoardServiceMarkGroceryPurchasedProcedure: newHandler(BoardServiceMarkGroceryPurchasedProcedure, svc.MarkGroceryPurchased, opts),
		BoardServiceRemoveGroceryItemProcedure:    newHandler(BoardServiceRemoveGroceryItemProcedure, svc.RemoveGroceryItem, opts),
		BoardServiceLogGuestProcedure:             newHandler(BoardServiceLogGuestProcedure, svc.LogGuest, opts),
		BoardServiceListUpcomingGuestsProcedure:   newHandler(BoardServiceListUpcomingGuestsProcedure, svc.ListUpcomingGuests, opts),
		BoardServiceUpdateGuestProcedure:          newHandler(BoardServiceUpdateGuestProcedure, svc.UpdateGuest, opts),
		BoardServicePostAnnouncementProcedure:     newHandler(BoardServicePostAnnouncementProcedure, svc.PostAnnouncement, opts),
		BoardServiceListAnnouncementsProcedure:    newHandler(BoardServiceListAnnouncementsProcedure, svc.ListAnnouncements, opts),
		BoardServiceUpdateAnnouncementProcedure:   newHandler(BoardServiceUpdateAnnouncementProcedure, svc.UpdateAnnouncement, opts),
		BoardServiceDeleteAnnouncementProcedure:   newHandler(BoardServiceDeleteAnnouncementProcedure, svc.DeleteAnnouncement, opts),
	})
}

// UnimplementedBoardServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedBoardServiceHandler struct{}

func (UnimplementedBoardServiceHandler) CreateChore(context.Context, *connect.Request[api.CreateChoreRequest]) (*connect.Response[api.CreateChoreResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(BoardServiceCreateChoreProcedure))
}

func (UnimplementedBoardServiceHandler) ListChores(context.Context, *connect.Request[api.ListChoresRequest]) (*connect.Response[api.ListChoresResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(BoardServiceListChoresProcedure))
}

func (UnimplementedBoardServiceHandler) CompleteChore(context.Context, *connect.Request[api.CompleteChoreRequest]) (*connect.Response[api.CompleteChoreResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(BoardServiceCompleteChoreProcedure))
}

func (UnimplementedBoardServiceHandler) AddGroceryItem(context.Context, *connect.Request[api.AddGroceryItemRequest]) (*connect.Response[api.AddGroceryItemResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(BoardServiceAddGroceryItemProcedure))
}

func (UnimplementedBoardServiceHandler) ListGroceryItems(context.Context, *connect.Request[api.ListGroceryItemsRequest]) (*connect.Response[api.ListGroceryItemsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(BoardServiceListGroceryItemsProcedure))
}

func (UnimplementedBoardServiceHandler) MarkGroceryPurchased(context.Context, *connect.Request[api.MarkGroceryPurchasedRequest]) (*connect.Response[api.MarkGroceryPurchasedResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(BoardServiceMarkGroceryPurchasedProcedure))
}

func (UnimplementedBoardServiceHandler) RemoveGroceryItem(context.Context, *connect.Request[api.RemoveGroceryItemRequest]) (*connect.Response[api.RemoveGroceryItemResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(BoardServiceRemoveGroceryItemProcedure))
}

func (UnimplementedBoardServiceHandler) LogGuest(context.Context, *connect.Request[api.LogGuestRequest]) (*connect.Response[api.LogGuestResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(BoardServiceLogGuestProcedure))
}

func (UnimplementedBoardServiceHandler) ListUpcomingGuests(context.Context, *connect.Request[api.ListUpcomingGuestsRequest]) (*connect.Response[api.ListUpcomingGuestsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(BoardServiceListUpcomingGuestsProcedure))
}

func (UnimplementedBoardServiceHandler) UpdateGuest(context.Context, *connect.Request[api.UpdateGuestRequest]) (*connect.Response[api.UpdateGuestResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(BoardServiceUpdateGuestProcedure))
}

func (UnimplementedBoardServiceHandler) PostAnnouncement(context.Context, *connect.Request[api.PostAnnouncementRequest]) (*connect.Response[api.PostAnnouncementResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(BoardServicePostAnnouncementProcedure))
}

func (UnimplementedBoardServiceHandler) ListAnnouncements(context.Context, *connect.Request[api.ListAnnouncementsRequest]) (*connect.Response[api.ListAnnouncementsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(BoardServiceListAnnouncementsProcedure))
}

func (UnimplementedBoardServiceHandler) UpdateAnnouncement(context.Context, *connect.Request[api.UpdateAnnouncementRequest]) (*connect.Response[api.UpdateAnnouncementResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(BoardServiceUpdateAnnouncementProcedure))
}

func (UnimplementedBoardServiceHandler) DeleteAnnouncement(context.Context, *connect.Request[api.DeleteAnnouncementRequest]) (*connect.Response[api.DeleteAnnouncementResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(BoardServiceDeleteAnnouncementProcedure))
}
