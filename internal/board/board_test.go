package board

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/dormshare/internal/apperr"
	"github.com/mmynk/dormshare/internal/household"
	"github.com/mmynk/dormshare/internal/models"
	"github.com/mmynk/dormshare/internal/storage/sqlite"
)

var testNow = time.Date(2025, 9, 15, 12, 0, 0, 0, time.UTC)

type fixture struct {
	board *Board
	dir   *household.Directory

	alice, bob, outsider household.Access
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"), sqlite.Options{})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	b := New(store)
	b.now = func() time.Time { return testNow }
	dir := household.NewDirectory(store)

	newMember := func(email string) *models.User {
		u := models.NewUser(email, "", "hash")
		require.NoError(t, store.CreateUser(ctx, u))
		return u
	}
	alice, bob, dave := newMember("alice@example.com"), newMember("bob@example.com"), newMember("dave@example.com")

	h, err := dir.Create(ctx, alice.ID, "Flat")
	require.NoError(t, err)
	_, err = dir.Join(ctx, bob.ID, h.InviteCode)
	require.NoError(t, err)
	_, err = dir.Create(ctx, dave.ID, "Elsewhere")
	require.NoError(t, err)

	guard := func(id string) household.Access {
		a, err := dir.Guard(ctx, id)
		require.NoError(t, err)
		return a
	}
	return &fixture{
		board:    b,
		dir:      dir,
		alice:    guard(alice.ID),
		bob:      guard(bob.ID),
		outsider: guard(dave.ID),
	}
}

func TestChores(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	dishes, err := f.board.CreateChore(ctx, f.alice, ChoreInput{
		Title:      "Dishes",
		AssignedTo: f.bob.UserID(),
		DueDate:    testNow.Add(48 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 9, 17, 0, 0, 0, 0, time.UTC).Unix(), dishes.DueDate)
	assert.Equal(t, f.alice.UserID(), dishes.CreatedBy)

	_, err = f.board.CreateChore(ctx, f.alice, ChoreInput{Title: "Bins", DueDate: testNow})
	require.NoError(t, err)

	t.Run("validation", func(t *testing.T) {
		_, err := f.board.CreateChore(ctx, f.alice, ChoreInput{Title: "", DueDate: testNow})
		assert.ErrorIs(t, err, apperr.ErrValidation)
		_, err = f.board.CreateChore(ctx, f.alice, ChoreInput{Title: "x"})
		assert.ErrorIs(t, err, apperr.ErrValidation)
		_, err = f.board.CreateChore(ctx, f.alice, ChoreInput{Title: "x", DueDate: testNow, AssignedTo: f.outsider.UserID()})
		assert.ErrorIs(t, err, apperr.ErrValidation)
		_, err = f.board.CreateChore(ctx, f.alice, ChoreInput{Title: "x", DueDate: testNow, AssignedTo: "ghost"})
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	all, err := f.board.ListChores(ctx, f.bob, false)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Bins", all[0].Title)

	mine, err := f.board.ListChores(ctx, f.bob, true)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, dishes.ID, mine[0].ID)

	t.Run("outsider cannot see the chore", func(t *testing.T) {
		_, err := f.board.CompleteChore(ctx, f.outsider, dishes.ID)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("assignee completes", func(t *testing.T) {
		done, err := f.board.CompleteChore(ctx, f.bob, dishes.ID)
		require.NoError(t, err)
		assert.True(t, done.IsCompleted)

		mine, err := f.board.ListChores(ctx, f.bob, true)
		require.NoError(t, err)
		assert.Empty(t, mine)
	})
}

func TestCompleteChorePermission(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	chore, err := f.board.CreateChore(ctx, f.alice, ChoreInput{Title: "Mop", AssignedTo: f.alice.UserID(), DueDate: testNow})
	require.NoError(t, err)

	_, err = f.board.CompleteChore(ctx, f.bob, chore.ID)
	assert.ErrorIs(t, err, apperr.ErrPermission)

	unassigned, err := f.board.CreateChore(ctx, f.alice, ChoreInput{Title: "Fix tap", DueDate: testNow})
	require.NoError(t, err)
	done, err := f.board.CompleteChore(ctx, f.alice, unassigned.ID)
	require.NoError(t, err)
	assert.True(t, done.IsCompleted)
}

func TestGroceries(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	milk, err := f.board.AddGroceryItem(ctx, f.alice, "Milk", "1L")
	require.NoError(t, err)
	assert.Equal(t, f.alice.UserID(), milk.AddedBy)

	_, err = f.board.AddGroceryItem(ctx, f.alice, "", "")
	assert.ErrorIs(t, err, apperr.ErrValidation)

	items, err := f.board.ListGroceryItems(ctx, f.bob)
	require.NoError(t, err)
	require.Len(t, items, 1)

	other, err := f.board.ListGroceryItems(ctx, f.outsider)
	require.NoError(t, err)
	assert.Empty(t, other)

	assert.ErrorIs(t, f.board.RemoveGroceryItem(ctx, f.outsider, milk.ID), apperr.ErrNotFound)

	require.NoError(t, f.board.MarkGroceryPurchased(ctx, f.bob, milk.ID))
	items, err = f.board.ListGroceryItems(ctx, f.bob)
	require.NoError(t, err)
	assert.Empty(t, items)

	require.NoError(t, f.board.RemoveGroceryItem(ctx, f.bob, milk.ID))
	assert.ErrorIs(t, f.board.RemoveGroceryItem(ctx, f.bob, milk.ID), apperr.ErrNotFound)
}

func TestGuests(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	guest, err := f.board.LogGuest(ctx, f.alice, GuestInput{
		GuestName: "Sam",
		Arrival:   testNow.Add(time.Hour),
		Departure: testNow.Add(26 * time.Hour),
	})
	require.NoError(t, err)

	_, err = f.board.LogGuest(ctx, f.alice, GuestInput{
		GuestName: "Past",
		Arrival:   testNow.Add(-48 * time.Hour),
		Departure: testNow.Add(-24 * time.Hour),
	})
	require.NoError(t, err)

	_, err = f.board.LogGuest(ctx, f.alice, GuestInput{
		GuestName: "Backwards",
		Arrival:   testNow,
		Departure: testNow.Add(-time.Hour),
	})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	upcoming, err := f.board.ListUpcomingGuests(ctx, f.bob)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "Sam", upcoming[0].GuestName)

	in := GuestInput{GuestName: "Samantha", Arrival: testNow, Departure: testNow.Add(time.Hour)}
	_, err = f.board.UpdateGuest(ctx, f.bob, guest.ID, in)
	assert.ErrorIs(t, err, apperr.ErrPermission)

	updated, err := f.board.UpdateGuest(ctx, f.alice, guest.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Samantha", updated.GuestName)
	assert.Equal(t, testNow.Unix(), updated.ArrivalAt)
}

func TestAnnouncements(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a, err := f.board.PostAnnouncement(ctx, f.alice, "Water cutoff", "Maintenance on Sept 15")
	require.NoError(t, err)

	_, err = f.board.PostAnnouncement(ctx, f.alice, "No message", " ")
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = f.board.UpdateAnnouncement(ctx, f.bob, a.ID, "Hijack", "x")
	assert.ErrorIs(t, err, apperr.ErrPermission)
	assert.ErrorIs(t, f.board.DeleteAnnouncement(ctx, f.bob, a.ID), apperr.ErrPermission)
	assert.ErrorIs(t, f.board.DeleteAnnouncement(ctx, f.outsider, a.ID), apperr.ErrNotFound)

	updated, err := f.board.UpdateAnnouncement(ctx, f.alice, a.ID, "Water cutoff", "Moved to Sept 16")
	require.NoError(t, err)
	assert.Equal(t, "Moved to Sept 16", updated.Message)

	list, err := f.board.ListAnnouncements(ctx, f.bob, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Moved to Sept 16", list[0].Message)

	require.NoError(t, f.board.DeleteAnnouncement(ctx, f.alice, a.ID))
	list, err = f.board.ListAnnouncements(ctx, f.bob, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}
