package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/dormshare/pkg/api"
)

// LedgerServiceName is the fully-qualified name of the LedgerService service.
const LedgerServiceName = "dormshare.v1.LedgerService"

// Procedure paths of the LedgerService RPCs.
const (
	LedgerServiceRecordExpenseProcedure = "/" + LedgerServiceName + "/RecordExpense"
	LedgerServiceGetExpenseProcedure    = "/" + LedgerServiceName + "/GetExpense"
	LedgerServiceListExpensesProcedure  = "/" + LedgerServiceName + "/ListExpenses"
	LedgerServiceSettleSplitProcedure   = "/" + LedgerServiceName + "/SettleSplit"
	LedgerServiceGetBalanceProcedure    = "/" + LedgerServiceName + "/GetBalance"
	LedgerServiceGetOverviewProcedure   = "/" + LedgerServiceName + "/GetOverview"
)

// LedgerServiceClient is a client for the dormshare.v1.LedgerService service.
type LedgerServiceClient interface {
	RecordExpense(context.Context, *connect.Request[api.RecordExpenseRequest]) (*connect.Response[api.RecordExpenseResponse], error)
	GetExpense(context.Context, *connect.Request[api.GetExpenseRequest]) (*connect.Response[api.GetExpenseResponse], error)
	ListExpenses(context.Context, *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error)
	SettleSplit(context.Context, *connect.Request[api.SettleSplitRequest]) (*connect.Response[api.SettleSplitResponse], error)
	GetBalance(context.Context, *connect.Request[api.GetBalanceRequest]) (*connect.Response[api.GetBalanceResponse], error)
	GetOverview(context.Context, *connect.Request[api.GetOverviewRequest]) (*connect.Response[api.GetOverviewResponse], error)
}

// NewLedgerServiceClient constructs a client for the dormshare.v1.LedgerService service.
// baseURL is the server root, e.g. http://localhost:8080.
func NewLedgerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) LedgerServiceClient {
	return &ledgerServiceClient{
		recordExpense: newClient[api.RecordExpenseRequest, api.RecordExpenseResponse](httpClient, baseURL, LedgerServiceRecordExpenseProcedure, opts),
		getExpense:    newClient[api.GetExpenseRequest, api.GetExpenseResponse](httpClient, baseURL, LedgerServiceGetExpenseProcedure, opts),
		listExpenses:  newClient[api.ListExpensesRequest, api.ListExpensesResponse](httpClient, baseURL, LedgerServiceListExpensesProcedure, opts),
		settleSplit:   newClient[api.SettleSplitRequest, api.SettleSplitResponse](httpClient, baseURL, LedgerServiceSettleSplitProcedure, opts),
		getBalance:    newClient[api.GetBalanceRequest, api.GetBalanceResponse](httpClient, baseURL, LedgerServiceGetBalanceProcedure, opts),
		getOverview:   newClient[api.GetOverviewRequest, api.GetOverviewResponse](httpClient, baseURL, LedgerServiceGetOverviewProcedure, opts),
	}
}

type ledgerServiceClient struct {
	recordExpense *connect.Client[api.RecordExpenseRequest, api.RecordExpenseResponse]
	getExpense    *connect.Client[api.GetExpenseRequest, api.GetExpenseResponse]
	listExpenses  *connect.Client[api.ListExpensesRequest, api.ListExpensesResponse]
	settleSplit   *connect.Client[api.SettleSplitRequest, api.SettleSplitResponse]
	getBalance    *connect.Client[api.GetBalanceRequest, api.GetBalanceResponse]
	getOverview   *connect.Client[api.GetOverviewRequest, api.GetOverviewResponse]
}

func (c *ledgerServiceClient) RecordExpense(ctx context.Context, req *connect.Request[api.RecordExpenseRequest]) (*connect.Response[api.RecordExpenseResponse], error) {
	return c.recordExpense.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetExpense(ctx context.Context, req *connect.Request[api.GetExpenseRequest]) (*connect.Response[api.GetExpenseResponse], error) {
	return c.getExpense.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	return c.listExpenses.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) SettleSplit(ctx context.Context, req *connect.Request[api.SettleSplitRequest]) (*connect.Response[api.SettleSplitResponse], error) {
	return c.settleSplit.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetBalance(ctx context.Context, req *connect.Request[api.GetBalanceRequest]) (*connect.Response[api.GetBalanceResponse], error) {
	return c.getBalance.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetOverview(ctx context.Context, req *connect.Request[api.GetOverviewRequest]) (*connect.Response[api.GetOverviewResponse], error) {
	return c.getOverview.CallUnary(ctx, req)
}

// LedgerServiceHandler is implemented by the server side of dormshare.v1.LedgerService, which records expenses, settles splits and reports balances.
type LedgerServiceHandler interface {
	RecordExpense(context.Context, *connect.Request[api.RecordExpenseRequest]) (*connect.Response[api.RecordExpenseResponse], error)
	GetExpense(context.Context, *connect.Request[api.GetExpenseRequest]) (*connect.Response[api.GetExpenseResponse], error)
	ListExpenses(context.Context, *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error)
	SettleSplit(context.Context, *connect.Request[api.SettleSplitRequest]) (*connect.Response[api.SettleSplitResponse], error)
	GetBalance(context.Context, *connect.Request[api.GetBalanceRequest]) (*connect.Response[api.GetBalanceResponse], error)
	GetOverview(context.Context, *connect.Request[api.GetOverviewRequest]) (*connect.Response[api.GetOverviewResponse], error)
}

// NewLedgerServiceHandler builds an HTTP handler from svc. It returns the path to
// mount the handler on.
func NewLedgerServiceHandler(svc LedgerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	return "/" + LedgerServiceName + "/", route(map[string]http.Handler{
		LedgerServiceRecordExpenseProcedure: newHandler(LedgerServiceRecordExpenseProcedure, svc.RecordExpense, opts),
		LedgerServiceGetExpenseProcedure:    newHandler(LedgerServiceGetExpenseProcedure, svc.GetExpense, opts),
		LedgerServiceListExpensesProcedure:  newHandler(LedgerServiceListExpensesProcedure, svc.ListExpenses, opts),
		LedgerServiceSettleSplitProcedure:   newHandler(LedgerServiceSettleSplitProcedure, svc.SettleSplit, opts),
		LedgerServiceGetBalanceProcedure:    newHandler(LedgerServiceGetBalanceProcedure, svc.GetBalance, opts),
		LedgerServiceGetOverviewProcedure:   newHandler(LedgerServiceGetOverviewProcedure, svc.GetOverview, opts),
	})
}

// UnimplementedLedgerServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedLedgerServiceHandler struct{}

func (UnimplementedLedgerServiceHandler) RecordExpense(context.Context, *connect.Request[api.RecordExpenseRequest]) (*connect.Response[api.RecordExpenseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(LedgerServiceRecordExpenseProcedure))
}

func (UnimplementedLedgerServiceHandler) GetExpense(context.Context, *connect.Request[api.GetExpenseRequest]) (*connect.Response[api.GetExpenseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(LedgerServiceGetExpenseProcedure))
}

func (UnimplementedLedgerServiceHandler) ListExpenses(context.Context, *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(LedgerServiceListExpensesProcedure))
}

func (UnimplementedLedgerServiceHandler) SettleSplit(context.Context, *connect.Request[api.SettleSplitRequest]) (*connect.Response[api.SettleSplitResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(LedgerServiceSettleSplitProcedure))
}

func (UnimplementedLedgerServiceHandler) GetBalance(context.Context, *connect.Request[api.GetBalanceRequest]) (*connect.Response[api.GetBalanceResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(LedgerServiceGetBalanceProcedure))
}

func (UnimplementedLedgerServiceHandler) GetOverview(context.Context, *connect.Request[api.GetOverviewRequest]) (*connect.Response[api.GetOverviewResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errUnimplemented(LedgerServiceGetOverviewProcedure))
}
