package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/dormshare/pkg/api"
)

// HouseholdServiceName is the fully-qualified name of the HouseholdService service.
const HouseholdServiceName = "dormshare.v1.HouseholdService"

// Procedure paths of the HouseholdService RPCs.
const (
	HouseholdServiceCreateHouseholdProcedure = "/" + HouseholdServiceName + "/CreateHousehold"
	HouseholdServiceJoinHouseholdProcedure   = "/" + HouseholdServiceName + "/JoinHousehold"
	HouseholdServiceLeaveHouseholdProcedure  = "/" + HouseholdServiceName + "/LeaveHousehold"
	HouseholdServiceGetHouseholdProcedure    = "/" + HouseholdServiceName + "/GetHousehold"
	HouseholdServiceRenameHouseholdProcedure = "/" + HouseholdServiceName + "/RenameHousehold"
	HouseholdServiceGetDashboardProcedure    = "/" + HouseholdServiceName + "/GetDashboard"
)

// HouseholdServiceClient is a client for the dormshare.v1.HouseholdService service.
type HouseholdServiceClient interface {
	CreateHousehold(context.Context, *connect.Request[api.CreateHouseholdRequest]) (*connect.Response[api.CreateHouseholdResponse], error)
	JoinHousehold(context.Context, *connect.Request[api.JoinHouseholdRequest]) (*connect.Response[api.JoinHouseholdResponse], error)
	LeaveHousehold(context.Context, *connect.Request[api.LeaveHouseholdRequest]) (*connect.Response[api.LeaveHouseholdResponse], error)
	GetHousehold(context.Context, *connect.Request[api.GetHouseholdRequest]) (*connect.Response[api.GetHouseholdResponse], error)
	RenameHousehold(context.Context, *connect.Request[api.RenameHouseholdRequest]) (*connect.Response[api.RenameHouseholdResponse], error)
	GetDashboard(context.Context, *connect.Request[api.GetDashboardRequest]) (*connect.Response[api.GetDashboardResponse], error)
}

// NewHouseholdServiceClient constructs a client for the dormshare.v1.HouseholdService service.
// baseURL is the server root, e.g. http://localhost:8080.
func NewHouseholdServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) HouseholdServiceClient {
	return &householdServiceClient{
		createHousehold: newClient[api.CreateHouseholdRequest, api.CreateHouseholdResponse](httpClient, baseURL, HouseholdServiceCreateHouseholdProcedure, opts),
		joinHousehold:   newClient[api.JoinHouseholdRequest, api.JoinHouseholdResponse](httpClient, baseURL, HouseholdServiceJoinHouseholdProcedure, opts),
		leaveHousehold:  newClient[api.LeaveHouseholdRequest, api.LeaveHouseholdResponse](httpClient, baseURL, HouseholdServiceLeaveHouseholdProcedure, opts),
		getHousehold:    newClient[api.GetHouseholdRequest, api.GetHouseholdResponse](httpClient, baseURL, HouseholdServiceGetHouseholdProcedure, opts),
		renameHousehold: newClient[api.RenameHouseholdRequest, api.RenameHouseholdResponse](httpClient, baseURL, HouseholdServiceRenameHouseholdProcedure, opts),
		getDashboard:    newClient[api.GetDashboardRequest, api.GetDashboardResponse](httpClient, baseURL, HouseholdServiceGetDashboardProcedure, opts),
	}
}

type householdServiceClient struct {
	createHousehold *connect.Client[api.CreateHouseholdRequest, api.CreateHouseholdResponse]
	joinHousehold   *connect.Client[api.JoinHouseholdRequest, api.JoinHouseholdResponse]
	leaveHousehold  *connect.Client[api.LeaveHouseholdRequest, api.LeaveHouseholdResponse]
	getHousehold    *connect.Client[api.GetHouseholdRequest, api.GetHouseholdResponse]
	renameHousehold *connect.Client[api.RenameHouseholdRequest, api.RenameHouseholdResponse]
	getDashboard    *connect.Client[api.GetDashboardRequest, api.GetDashboardResponse]
}

func (c *householdServiceClient) CreateHousehold(ctx context.Context, req *connect.Request[api.CreateHouseholdRequest]) (*connect.Response[api.CreateHouseholdResponse], error) {
	return c.createHousehold.CallUnary(ctx, req)
}

func (c *householdServiceClient) JoinHousehold(ctx context.Context, req *connect.Request[api.JoinHouseholdRequest]) (*connect.Response[api.JoinHouseholdResponse], error) {
	return c.joinHousehold.CallUnary(ctx, req)
}

func (c *householdServiceClient) LeaveHousehold(ctx context.Context, req *connect.Request[api.LeaveHouseholdRequest]) (*connect.Response[api.LeaveHouseholdResponse], error) {
	return c.leaveHousehold.CallUnary(ctx, req)
}

func (c *householdServiceClient) GetHousehold(ctx context.Context, req *connect.Request[api.GetHouseholdRequest]) (*connect.Response[api.GetHouseholdResponse], error) {
	return c.getHousehold.CallUnary(ctx, req)
}

func (c *householdServiceClient) RenameHousehold(ctx context.Context, req *connect.Request[api.RenameHouseholdRequest]) (*connect.Response[api.RenameHouseholdResponse], error) {
	return c.renameHousehold.CallUnary(ctx, req)
}

func (c *householdServiceClient) GetDashboard(ctx context.Context, req *connect.Request[api.GetDashboardRequest]) (*connect.Response[api.GetDashboardResponse], error) {
	return c.getDashboard.CallUnary(ctx, req)
}

// HouseholdServiceHandler is implemented by the server side of dormshare.v1.HouseholdService, which manages household membership and the dashboard.
type HouseholdServiceHandler interface {
	CreateHousehold(context.Context, *connect.Request[api.CreateHouseholdRequest]) (*connect.Response[api.CreateHouseholdResponse], error)
	JoinHousehold(context.Context, *connect.Request[api.JoinHouseholdRequest]) (*connect.Response[api.JoinHouseholdResponse], error)
	LeaveHousehold(context.Context, *connect.Request[api.LeaveHouseholdRequest]) (*connect.Response[api.LeaveHouseholdResponse], error)
	GetHousehold(context.Context, *connect.Request[api.GetHouseholdRequest]) (*connect.Response[api.GetHouseholdResponse], error)
	RenameHousehold(context.Context, *connect.Request[api.RenameHouseholdRequest]) (*connect.Response[api.RenameHouseholdResponse], error)
	GetDashboard(context.Context, *connect.Request[api.GetDashboardRequest]) (*connect.Response[api.GetDashboardResponse], error)
}

// NewHouseholdServiceHandler builds an HTTP handler from svc. It returns the path to
// mount the handler on.
func NewHouseholdServiceHandler(svc HouseholdServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	return "/" + HouseholdServiceName + "/", route(map[string]http.Handler{
		HouseholdServiceCreateHouseholdProcedure: newHandler(HouseholdServiceCreateHouseholdProcedure, svc.CreateHousehold, opts),
		HouseholdServiceJoinHouseholdProcedure:   newHandler(HouseholdServiceJoinHouseholdProcedure, svc.JoinHousehold, opts),
		HouseholdServiceLeaveHouseholdProcedure:  newHandler(HouseholdServiceLeaveHouseholdProcedure, svc.LeaveHousehold, opts),
		HouseholdServiceGetHouseholdProcedure:    newHandler(HouseholdServiceGetHouseholdProcedure, svc.GetHousehold, opts),
		HouseholdServiceRenameHouseholdProcedure: newHandler(HouseholdServiceRenameHouseholdProcedure, svc.RenameHousehold, opts),
		HouseholdServiceGetDashboardProcedure:    newHandler(HouseholdServiceGetDashboardProcedure, svc.GetDashboard, opts),
	})
}

// UnimplementedHouseholdServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedHouseholdServiceHandler struct{}

func (UnimplementedHouseholdServiceHandler) CreateHousehold(context.Context, *connect.Request[api.CreateHouseholdRequest]) (*connect.Response[api.CreateHouseholdResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(HouseholdServiceCreateHouseholdProcedure))
}

func (UnimplementedHouseholdServiceHandler) JoinHousehold(context.Context, *connect.Request[api.JoinHouseholdRequest]) (*connect.Response[api.JoinHouseholdResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(HouseholdServiceJoinHouseholdProcedure))
}

func (UnimplementedHouseholdServiceHandler) LeaveHousehold(context.Context, *connect.Request[api.LeaveHouseholdRequest]) (*connect.Response[api.LeaveHouseholdResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(HouseholdServiceLeaveHouseholdProcedure))
}

func (UnimplementedHouseholdServiceHandler) GetHousehold(context.Context, *connect.Request[api.GetHouseholdRequest]) (*connect.Response[api.GetHouseholdResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(HouseholdServiceGetHouseholdProcedure))
}

func (UnimplementedHouseholdServiceHandler) RenameHousehold(context.Context, *connect.Request[api.RenameHouseholdRequest]) (*connect.Response[api.RenameHouseholdResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(HouseholdServiceRenameHouseholdProcedure))
}

func (UnimplementedHouseholdServiceHandler) GetDashboard(context.Context, *connect.Request[api.GetDashboardRequest]) (*connect.Response[api.GetDashboardResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(HouseholdServiceGetDashboardProcedure))
}
