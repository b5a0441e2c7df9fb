// Package apiconnect binds the dormshare services to Connect handlers and
// clients. Every handler and client speaks the JSON codec from package api.
package apiconnect

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/dormshare/pkg/api"
)

func newHandler[Req, Res any](
	procedure string,
	fn func(context.Context, *connect.Request[Req]) (*connect.Response[Res], error),
	opts []connect.HandlerOption,
) http.Handler {
	opts = append([]connect.HandlerOption{connect.WithCodec(api.Codec{})}, opts...)
	return connect.NewUnaryHandler(procedure, fn, opts...)
}

func newClient[Req, Res any](httpClient connect.HTTPClient, baseURL, procedure string, opts []connect.ClientOption) *connect.Client[Req, Res] {
	opts = append([]connect.ClientOption{connect.WithCodec(api.Codec{})}, opts...)
	return connect.NewClient[Req, Res](httpClient, strings.TrimRight(baseURL, "/")+procedure, opts...)
}

// route dispatches on the exact procedure path.
func route(handlers map[string]http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		h.ServeHTTP(w, r)
	})
}

func errUnimplemented(procedure string) error {
	return fmt.Errorf("%s is not implemented", procedure)
}
