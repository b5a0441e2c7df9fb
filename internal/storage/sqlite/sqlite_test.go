package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/dormshare/internal/models"
	"github.com/mmynk/dormshare/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "test.db"), Options{})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func seedHousehold(t *testing.T, store *SQLiteStore, name string) *models.Household {
	t.Helper()
	h := &models.Household{
		ID:         uuid.NewString(),
		Name:       name,
		InviteCode: uuid.NewString(),
		CreatedAt:  time.Now().Unix(),
	}
	require.NoError(t, store.CreateHousehold(context.Background(), h))
	return h
}

func seedUser(t *testing.T, store *SQLiteStore, email, householdID string) *models.User {
	t.Helper()
	u := models.NewUser(email, "", "hash")
	u.HouseholdID = householdID
	require.NoError(t, store.CreateUser(context.Background(), u))
	return u
}

func TestUsersAndHouseholds(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	h := seedHousehold(t, store, "Flat 4B")

	t.Run("user round trip", func(t *testing.T) {
		u := seedUser(t, store, "alice@example.com", "")

		got, err := store.GetUserByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, u.ID, got.ID)
		assert.Empty(t, got.HouseholdID)

		got, err = store.GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", got.Email)
	})

	t.Run("missing user is ErrNotFound", func(t *testing.T) {
		_, err := store.GetUserByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, storage.ErrNotFound)
		_, err = store.GetUserByID(ctx, "nope")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("duplicate email is ErrDuplicate", func(t *testing.T) {
		seedUser(t, store, "dup@example.com", "")
		err := store.CreateUser(ctx, models.NewUser("dup@example.com", "", "hash"))
		assert.ErrorIs(t, err, storage.ErrDuplicate)
	})

	t.Run("join and leave household", func(t *testing.T) {
		u := seedUser(t, store, "bob@example.com", "")
		require.NoError(t, store.SetUserHousehold(ctx, u.ID, h.ID))

		members, err := store.ListHouseholdMembers(ctx, h.ID)
		require.NoError(t, err)
		require.Len(t, members, 1)
		assert.Equal(t, u.ID, members[0].ID)

		require.NoError(t, store.SetUserHousehold(ctx, u.ID, ""))
		members, err = store.ListHouseholdMembers(ctx, h.ID)
		require.NoError(t, err)
		assert.Empty(t, members)
	})

	t.Run("update profile", func(t *testing.T) {
		u := seedUser(t, store, "carol@example.com", "")
		require.NoError(t, store.UpdateUserProfile(ctx, u.ID, "Carol"))
		got, err := store.GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, "Carol", got.DisplayName)

		assert.ErrorIs(t, store.UpdateUserProfile(ctx, "nope", "x"), storage.ErrNotFound)
	})

	t.Run("household lookup and rename", func(t *testing.T) {
		got, err := store.GetHouseholdByInviteCode(ctx, h.InviteCode)
		require.NoError(t, err)
		assert.Equal(t, h.ID, got.ID)

		require.NoError(t, store.RenameHousehold(ctx, h.ID, "Flat 5C"))
		got, err = store.GetHousehold(ctx, h.ID)
		require.NoError(t, err)
		assert.Equal(t, "Flat 5C", got.Name)

		_, err = store.GetHouseholdByInviteCode(ctx, uuid.NewString())
		assert.ErrorIs(t, err, storage.ErrNotFound)
		assert.ErrorIs(t, store.RenameHousehold(ctx, "nope", "x"), storage.ErrNotFound)
	})
}

func TestLedgerStorage(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	h := seedHousehold(t, store, "Flat")
	alice := seedUser(t, store, "alice@example.com", h.ID)
	bob := seedUser(t, store, "bob@example.com", h.ID)

	expense := &models.Expense{
		ID:          uuid.NewString(),
		HouseholdID: h.ID,
		Title:       "Pizza Night",
		Amount:      decimal.RequireFromString("600.00"),
		PaidBy:      alice.ID,
		PaidAt:      time.Now().Unix(),
		CreatedAt:   time.Now().Unix(),
	}
	require.NoError(t, store.CreateExpense(ctx, expense))

	splits := []*models.Split{
		{ID: uuid.NewString(), ExpenseID: expense.ID, OwedBy: alice.ID, AmountOwed: decimal.RequireFromString("300.00")},
		{ID: uuid.NewString(), ExpenseID: expense.ID, OwedBy: bob.ID, AmountOwed: decimal.RequireFromString("300.00")},
	}
	require.NoError(t, store.CreateSplits(ctx, splits))

	t.Run("expense keeps exact amount", func(t *testing.T) {
		got, err := store.GetExpense(ctx, expense.ID)
		require.NoError(t, err)
		assert.True(t, got.Amount.Equal(expense.Amount), "amount %s", got.Amount)
		assert.Equal(t, "Pizza Night", got.Title)
	})

	t.Run("list expenses", func(t *testing.T) {
		all, err := store.ListExpenses(ctx, h.ID, 0)
		require.NoError(t, err)
		assert.Len(t, all, 1)

		paid, err := store.ListExpensesPaidBy(ctx, h.ID, bob.ID)
		require.NoError(t, err)
		assert.Empty(t, paid)
	})

	t.Run("second split for the same user is ErrDuplicate", func(t *testing.T) {
		err := store.CreateSplits(ctx, []*models.Split{
			{ID: uuid.NewString(), ExpenseID: expense.ID, OwedBy: bob.ID, AmountOwed: decimal.RequireFromString("1.00")},
		})
		assert.ErrorIs(t, err, storage.ErrDuplicate)

		got, err := store.ListSplitsByExpense(ctx, expense.ID)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("split lines filter", func(t *testing.T) {
		unsettled := false
		lines, err := store.ListSplitLines(ctx, storage.SplitFilter{
			HouseholdID:   h.ID,
			PaidBy:        alice.ID,
			ExcludeOwedBy: alice.ID,
			Settled:       &unsettled,
		})
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, bob.ID, lines[0].OwedBy)
		assert.Equal(t, "Pizza Night", lines[0].ExpenseTitle)
		assert.Equal(t, alice.ID, lines[0].PaidBy)
		assert.True(t, lines[0].AmountOwed.Equal(decimal.RequireFromString("300")))

		lines, err = store.ListSplitLines(ctx, storage.SplitFilter{Involving: bob.ID})
		require.NoError(t, err)
		assert.Len(t, lines, 1)
	})

	t.Run("settle happens once", func(t *testing.T) {
		bobSplit := splits[1]
		ok, err := store.MarkSplitSettled(ctx, bobSplit.ID, bob.ID, 1700000000)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.MarkSplitSettled(ctx, bobSplit.ID, alice.ID, 1800000000)
		require.NoError(t, err)
		assert.False(t, ok)

		got, err := store.GetSplit(ctx, bobSplit.ID)
		require.NoError(t, err)
		assert.True(t, got.IsSettled)
		assert.Equal(t, int64(1700000000), got.SettledAt)
		assert.Equal(t, bob.ID, got.SettledBy)
	})

	t.Run("missing split", func(t *testing.T) {
		_, err := store.GetSplit(ctx, "nope")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestWithTx(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("rolls back on error", func(t *testing.T) {
		boom := errors.New("boom")
		err := store.WithTx(ctx, func(tx storage.AllStorage) error {
			if err := tx.CreateHousehold(ctx, &models.Household{
				ID:         "h-rollback",
				Name:       "Gone",
				InviteCode: uuid.NewString(),
			}); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		_, err = store.GetHousehold(ctx, "h-rollback")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("commits on success", func(t *testing.T) {
		err := store.WithTx(ctx, func(tx storage.AllStorage) error {
			return tx.CreateHousehold(ctx, &models.Household{
				ID:         "h-commit",
				Name:       "Kept",
				InviteCode: uuid.NewString(),
			})
		})
		require.NoError(t, err)

		got, err := store.GetHousehold(ctx, "h-commit")
		require.NoError(t, err)
		assert.Equal(t, "Kept", got.Name)
	})

	t.Run("nested tx is rejected", func(t *testing.T) {
		err := store.WithTx(ctx, func(tx storage.AllStorage) error {
			return tx.(storage.Store).WithTx(ctx, func(storage.AllStorage) error { return nil })
		})
		assert.ErrorIs(t, err, storage.ErrAlreadyInTx)
	})

	t.Run("close inside tx is rejected", func(t *testing.T) {
		err := store.WithTx(ctx, func(tx storage.AllStorage) error {
			return tx.(storage.Store).Close()
		})
		assert.ErrorIs(t, err, storage.ErrAlreadyInTx)
	})
}

func TestBoardStorage(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	h := seedHousehold(t, store, "Flat")
	other := seedHousehold(t, store, "Other")
	alice := seedUser(t, store, "alice@example.com", h.ID)

	t.Run("chores", func(t *testing.T) {
		day := int64(1700006400)
		later := &models.Chore{ID: uuid.NewString(), HouseholdID: h.ID, Title: "Bins", DueDate: day + 86400, CreatedBy: alice.ID}
		sooner := &models.Chore{ID: uuid.NewString(), HouseholdID: h.ID, Title: "Dishes", DueDate: day, AssignedTo: alice.ID}
		require.NoError(t, store.CreateChore(ctx, later))
		require.NoError(t, store.CreateChore(ctx, sooner))

		chores, err := store.ListChores(ctx, h.ID, storage.ChoreFilter{})
		require.NoError(t, err)
		require.Len(t, chores, 2)
		assert.Equal(t, "Dishes", chores[0].Title)

		mine, err := store.ListChores(ctx, h.ID, storage.ChoreFilter{AssignedTo: alice.ID})
		require.NoError(t, err)
		assert.Len(t, mine, 1)

		require.NoError(t, store.CompleteChore(ctx, h.ID, sooner.ID))
		pending, err := store.ListChores(ctx, h.ID, storage.ChoreFilter{OnlyPending: true})
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, "Bins", pending[0].Title)

		assert.ErrorIs(t, store.CompleteChore(ctx, other.ID, later.ID), storage.ErrNotFound)
		_, err = store.GetChore(ctx, other.ID, later.ID)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("groceries", func(t *testing.T) {
		milk := &models.GroceryItem{ID: uuid.NewString(), HouseholdID: h.ID, ItemName: "Milk", Quantity: "1L", AddedBy: alice.ID, CreatedAt: 1}
		eggs := &models.GroceryItem{ID: uuid.NewString(), HouseholdID: h.ID, ItemName: "Eggs", CreatedAt: 2}
		require.NoError(t, store.CreateGroceryItem(ctx, milk))
		require.NoError(t, store.CreateGroceryItem(ctx, eggs))

		items, err := store.ListGroceryItems(ctx, h.ID)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Eggs", items[0].ItemName)

		require.NoError(t, store.MarkGroceryPurchased(ctx, h.ID, eggs.ID))
		require.NoError(t, store.DeleteGroceryItem(ctx, h.ID, milk.ID))

		items, err = store.ListGroceryItems(ctx, h.ID)
		require.NoError(t, err)
		assert.Empty(t, items)

		assert.ErrorIs(t, store.DeleteGroceryItem(ctx, h.ID, milk.ID), storage.ErrNotFound)
	})

	t.Run("guests", func(t *testing.T) {
		past := &models.GuestLog{ID: uuid.NewString(), HouseholdID: h.ID, GuestName: "Old", HostedBy: alice.ID, ArrivalAt: 100, DepartureAt: 200}
		next := &models.GuestLog{ID: uuid.NewString(), HouseholdID: h.ID, GuestName: "Sam", HostedBy: alice.ID, ArrivalAt: 1000, DepartureAt: 2000}
		require.NoError(t, store.CreateGuestLog(ctx, past))
		require.NoError(t, store.CreateGuestLog(ctx, next))

		guests, err := store.ListUpcomingGuests(ctx, h.ID, 500)
		require.NoError(t, err)
		require.Len(t, guests, 1)
		assert.Equal(t, "Sam", guests[0].GuestName)

		next.GuestName = "Samantha"
		require.NoError(t, store.UpdateGuestLog(ctx, next))
		got, err := store.GetGuestLog(ctx, h.ID, next.ID)
		require.NoError(t, err)
		assert.Equal(t, "Samantha", got.GuestName)
	})

	t.Run("announcements", func(t *testing.T) {
		a := &models.Announcement{ID: uuid.NewString(), HouseholdID: h.ID, Title: "Rent", Message: "Due Friday", PostedBy: alice.ID, CreatedAt: 10, UpdatedAt: 10}
		require.NoError(t, store.CreateAnnouncement(ctx, a))

		a.Message = "Due Saturday"
		a.UpdatedAt = 20
		require.NoError(t, store.UpdateAnnouncement(ctx, a))

		list, err := store.ListAnnouncements(ctx, h.ID, 5)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Due Saturday", list[0].Message)
		assert.Equal(t, alice.ID, list[0].PostedBy)

		require.NoError(t, store.DeleteAnnouncement(ctx, h.ID, a.ID))
		_, err = store.GetAnnouncement(ctx, h.ID, a.ID)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}
