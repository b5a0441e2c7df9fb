package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
)

// LoggingInterceptor logs every RPC with its procedure, caller and duration.
// Caller mistakes log at WARN; server faults log at ERROR with the full error.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)

			attrs := []slog.Attr{
				slog.String("procedure", req.Spec().Procedure),
				slog.String("user_id", GetUserID(ctx)), // empty on public procedures
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
			}
			if err == nil {
				slog.LogAttrs(ctx, slog.LevelInfo, "RPC ok", attrs...)
				return resp, nil
			}

			code := connect.CodeOf(err)
			attrs = append(attrs, slog.String("code", code.String()))
			if callerFault(code) {
				attrs = append(attrs, slog.String("error", errorMessage(err)))
				slog.LogAttrs(ctx, slog.LevelWarn, "RPC rejected", attrs...)
			} else {
				attrs = append(attrs, slog.Any("error", err))
				slog.LogAttrs(ctx, slog.LevelError, "RPC failed", attrs...)
			}
			return resp, err
		}
	}
}

func callerFault(code connect.Code) bool {
	switch code {
	case connect.CodeInvalidArgument, connect.CodeNotFound, connect.CodeAlreadyExists,
		connect.CodePermissionDenied, connect.CodeUnauthenticated, connect.CodeFailedPrecondition,
		connect.CodeUnimplemented, connect.CodeCanceled:
		return true
	}
	return false
}

func errorMessage(err error) string {
	var ce *connect.Error
	if errors.As(err, &ce) {
		return ce.Message()
	}
	return err.Error()
}
