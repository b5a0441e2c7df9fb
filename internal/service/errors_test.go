package service

import (
	"errors"
	"fmt"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"

	"github.com/mmynk/dormshare/internal/apperr"
	"github.com/mmynk/dormshare/internal/auth"
	"github.com/mmynk/dormshare/internal/household"
)

func TestConnectError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want connect.Code
	}{
		{"validation", apperr.Validation("bad"), connect.CodeInvalidArgument},
		{"permission", apperr.Permission("no"), connect.CodePermissionDenied},
		{"no household", household.ErrNoHousehold, connect.CodePermissionDenied},
		{"not found", apperr.NotFound("missing"), connect.CodeNotFound},
		{"wrapped not found", fmt.Errorf("load: %w", apperr.NotFound("missing")), connect.CodeNotFound},
		{"duplicate split", apperr.New(apperr.ErrDuplicateSplit, "dup"), connect.CodeAlreadyExists},
		{"conflict", apperr.New(apperr.ErrConflict, "taken"), connect.CodeAlreadyExists},
		{"email exists", auth.ErrEmailExists, connect.CodeAlreadyExists},
		{"bad credentials", auth.ErrInvalidCredentials, connect.CodeUnauthenticated},
		{"passthrough", connect.NewError(connect.CodeUnavailable, errors.New("down")), connect.CodeUnavailable},
		{"unknown", errors.New("disk on fire"), connect.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, connect.CodeOf(connectError(tt.err)))
		})
	}
}

func TestConnectErrorHidesInternalDetails(t *testing.T) {
	err := connectError(errors.New("sql: connection refused at 10.0.0.1"))

	var ce *connect.Error
	if assert.ErrorAs(t, err, &ce) {
		assert.Equal(t, "internal error", ce.Message())
	}
}
