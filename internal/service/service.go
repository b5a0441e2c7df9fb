// Package service implements the dormshare Connect services. Handlers pull
// the caller from the context, delegate to the domain packages and map their
// errors onto Connect codes.
package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/dormshare/internal/apperr"
	"github.com/mmynk/dormshare/internal/auth"
	"github.com/mmynk/dormshare/internal/household"
	"github.com/mmynk/dormshare/internal/middleware"
)

// connectError maps a domain error to a Connect error. Unknown errors become
// CodeInternal and are logged, since their message never reaches the client.
func connectError(err error) error {
	var ce *connect.Error
	if errors.As(err, &ce) {
		return ce
	}

	switch {
	case errors.Is(err, apperr.ErrValidation):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, apperr.ErrPermission):
		return connect.NewError(connect.CodePermissionDenied, err)
	case errors.Is(err, apperr.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, apperr.ErrDuplicateSplit), errors.Is(err, apperr.ErrConflict):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, auth.ErrEmailExists):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, auth.ErrInvalidEmail), errors.Is(err, auth.ErrWeakPassword):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrMissingToken):
		return connect.NewError(connect.CodeUnauthenticated, err)
	}

	slog.Error("Unexpected error", "error", err)
	return connect.NewError(connect.CodeInternal, errors.New("internal error"))
}

// callerID returns the authenticated user ID or an Unauthenticated error.
func callerID(ctx context.Context) (string, error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	return userID, nil
}

// member resolves the caller's household membership.
func member(ctx context.Context, dir *household.Directory) (household.Access, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return household.Access{}, err
	}
	access, err := dir.Guard(ctx, userID)
	if err != nil {
		return household.Access{}, connectError(err)
	}
	return access, nil
}
