package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/dormshare/internal/auth"
	"github.com/mmynk/dormshare/internal/metrics"
	"github.com/mmynk/dormshare/internal/models"
	"github.com/mmynk/dormshare/pkg/api"
	"github.com/mmynk/dormshare/pkg/api/apiconnect"
)

// whoami reports the caller seen by the handler in the balance message.
type whoami struct {
	apiconnect.UnimplementedLedgerServiceHandler
}

func (whoami) GetBalance(ctx context.Context, _ *connect.Request[api.GetBalanceRequest]) (*connect.Response[api.GetBalanceResponse], error) {
	return connect.NewResponse(&api.GetBalanceResponse{
		Balance: &api.Balance{Message: GetUserID(ctx) + "|" + GetEmail(ctx)},
	}), nil
}

func newLedgerClient(t *testing.T, interceptors ...connect.Interceptor) apiconnect.LedgerServiceClient {
	t.Helper()
	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewLedgerServiceHandler(whoami{}, connect.WithInterceptors(interceptors...)))
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return apiconnect.NewLedgerServiceClient(http.DefaultClient, server.URL)
}

func withToken[T any](msg *T, token string) *connect.Request[T] {
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+token)
	return req
}

func TestRequireAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("secret", time.Hour)
	token, err := jwtManager.Generate(&models.User{ID: "u1", Email: "u1@example.com"})
	require.NoError(t, err)

	client := newLedgerClient(t,
		RequireAuth(jwtManager, apiconnect.LedgerServiceListExpensesProcedure),
		LoggingInterceptor(),
	)
	ctx := context.Background()

	_, err = client.GetBalance(ctx, connect.NewRequest(&api.GetBalanceRequest{}))
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

	_, err = client.GetBalance(ctx, withToken(&api.GetBalanceRequest{}, "garbage"))
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

	resp, err := client.GetBalance(ctx, withToken(&api.GetBalanceRequest{}, token))
	require.NoError(t, err)
	assert.Equal(t, "u1|u1@example.com", resp.Msg.Balance.Message)

	// Public procedures pass through to the handler without a token.
	_, err = client.ListExpenses(ctx, connect.NewRequest(&api.ListExpensesRequest{}))
	assert.Equal(t, connect.CodeUnimplemented, connect.CodeOf(err))
}

func TestOptionalAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("secret", time.Hour)
	token, err := jwtManager.Generate(&models.User{ID: "u2", Email: "u2@example.com"})
	require.NoError(t, err)

	client := newLedgerClient(t, OptionalAuth(jwtManager))
	ctx := context.Background()

	resp, err := client.GetBalance(ctx, connect.NewRequest(&api.GetBalanceRequest{}))
	require.NoError(t, err)
	assert.Equal(t, "|", resp.Msg.Balance.Message)

	resp, err = client.GetBalance(ctx, withToken(&api.GetBalanceRequest{}, token))
	require.NoError(t, err)
	assert.Equal(t, "u2|u2@example.com", resp.Msg.Balance.Message)
}

func TestMetricsInterceptor(t *testing.T) {
	jwtManager := auth.NewJWTManager("secret", time.Hour)
	token, err := jwtManager.Generate(&models.User{ID: "u3", Email: "u3@example.com"})
	require.NoError(t, err)

	m := metrics.New(prometheus.NewRegistry())
	client := newLedgerClient(t, MetricsInterceptor(m), RequireAuth(jwtManager))
	ctx := context.Background()

	_, err = client.GetBalance(ctx, connect.NewRequest(&api.GetBalanceRequest{}))
	require.Error(t, err)
	_, err = client.GetBalance(ctx, withToken(&api.GetBalanceRequest{}, token))
	require.NoError(t, err)
	_, err = client.GetOverview(ctx, withToken(&api.GetOverviewRequest{}, token))
	require.Error(t, err)

	balance := apiconnect.LedgerServiceGetBalanceProcedure
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RPCRequests.WithLabelValues(balance, "unauthenticated")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RPCRequests.WithLabelValues(balance, "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RPCRequests.WithLabelValues(apiconnect.LedgerServiceGetOverviewProcedure, "unimplemented")))
}
