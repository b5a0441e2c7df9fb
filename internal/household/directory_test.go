package household

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/dormshare/internal/apperr"
	"github.com/mmynk/dormshare/internal/models"
	"github.com/mmynk/dormshare/internal/storage"
	"github.com/mmynk/dormshare/internal/storage/sqlite"
)

func newTestDirectory(t *testing.T) (*Directory, storage.Store) {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"), sqlite.Options{})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return NewDirectory(store), store
}

func newUser(t *testing.T, store storage.Store, email, name string) *models.User {
	t.Helper()
	u := models.NewUser(email, name, "hash")
	require.NoError(t, store.CreateUser(context.Background(), u))
	return u
}

func TestCreateAndJoin(t *testing.T) {
	dir, store := newTestDirectory(t)
	ctx := context.Background()
	alice := newUser(t, store, "alice@example.com", "Alice")
	bob := newUser(t, store, "bob@example.com", "Bob")

	h, err := dir.Create(ctx, alice.ID, "  Flat 4B ")
	require.NoError(t, err)
	assert.Equal(t, "Flat 4B", h.Name)
	_, err = uuid.Parse(h.InviteCode)
	assert.NoError(t, err)

	joined, err := dir.Join(ctx, bob.ID, strings.ToUpper(h.InviteCode))
	require.NoError(t, err)
	assert.Equal(t, h.ID, joined.ID)

	members, err := dir.Members(ctx, h.ID)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "Alice", members[0].DisplayName)
	assert.Equal(t, "Bob", members[1].DisplayName)

	t.Run("create while in a household", func(t *testing.T) {
		_, err := dir.Create(ctx, alice.ID, "Second")
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("join while in a household", func(t *testing.T) {
		_, err := dir.Join(ctx, bob.ID, h.InviteCode)
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})
}

func TestJoinErrors(t *testing.T) {
	dir, store := newTestDirectory(t)
	ctx := context.Background()
	carol := newUser(t, store, "carol@example.com", "")

	tests := []struct {
		name string
		code string
		msg  string
	}{
		{"malformed code", "not-a-uuid", "invalid format"},
		{"empty code", "", "invalid format"},
		{"unknown code", uuid.NewString(), "invalid invite code"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dir.Join(ctx, carol.ID, tt.code)
			require.ErrorIs(t, err, apperr.ErrValidation)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}

	_, err := dir.Join(ctx, "missing-user", uuid.NewString())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCreateValidatesName(t *testing.T) {
	dir, store := newTestDirectory(t)
	ctx := context.Background()
	u := newUser(t, store, "dan@example.com", "")

	_, err := dir.Create(ctx, u.ID, "   ")
	assert.ErrorIs(t, err, apperr.ErrValidation)
	_, err = dir.Create(ctx, u.ID, strings.Repeat("x", 101))
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, found, err := dir.Lookup(ctx, u.ID)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestGuard(t *testing.T) {
	dir, store := newTestDirectory(t)
	ctx := context.Background()
	alice := newUser(t, store, "alice@example.com", "")

	_, err := dir.Guard(ctx, alice.ID)
	assert.ErrorIs(t, err, ErrNoHousehold)
	assert.ErrorIs(t, err, apperr.ErrPermission)

	h, err := dir.Create(ctx, alice.ID, "Flat")
	require.NoError(t, err)

	access, err := dir.Guard(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, access.UserID())
	assert.Equal(t, h.ID, access.HouseholdID())

	got, found, err := dir.Lookup(ctx, alice.ID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, h.ID, got.ID)

	_, err = dir.Guard(ctx, "missing-user")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestLeaveAndRename(t *testing.T) {
	dir, store := newTestDirectory(t)
	ctx := context.Background()
	alice := newUser(t, store, "alice@example.com", "")

	h, err := dir.Create(ctx, alice.ID, "Flat")
	require.NoError(t, err)

	access, err := dir.Guard(ctx, alice.ID)
	require.NoError(t, err)

	renamed, err := dir.Rename(ctx, access, "Flat 5C")
	require.NoError(t, err)
	assert.Equal(t, "Flat 5C", renamed.Name)
	assert.Equal(t, h.InviteCode, renamed.InviteCode)

	_, err = dir.Rename(ctx, access, "")
	assert.ErrorIs(t, err, apperr.ErrValidation)

	require.NoError(t, dir.Leave(ctx, alice.ID))
	_, err = dir.Guard(ctx, alice.ID)
	assert.ErrorIs(t, err, ErrNoHousehold)

	assert.ErrorIs(t, dir.Leave(ctx, alice.ID), ErrNoHousehold)

	// The household survives and can be rejoined.
	_, err = dir.Join(ctx, alice.ID, h.InviteCode)
	require.NoError(t, err)
}

func TestUpdateProfile(t *testing.T) {
	dir, store := newTestDirectory(t)
	ctx := context.Background()
	u := newUser(t, store, "erin@example.com", "")

	got, err := dir.UpdateProfile(ctx, u.ID, " Erin ")
	require.NoError(t, err)
	assert.Equal(t, "Erin", got.DisplayName)

	_, err = dir.UpdateProfile(ctx, "missing", "x")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
