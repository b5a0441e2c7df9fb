package sqlite

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/mmynk/dormshare/internal/models"
	"github.com/mmynk/dormshare/internal/storage"
)

// Every board query is scoped by household_id so a caller can never reach
// another household's rows by guessing an ID.

// CreateChore persists a new chore.
func (s *SQLiteStore) CreateChore(ctx context.Context, chore *models.Chore) error {
	_, err := s.builder.Insert(choresTable).
		Rows(choreToRow(chore)).
		Executor().ExecContext(ctx)
	if err != nil {
		return translate(err, "create chore")
	}
	return nil
}

// GetChore retrieves a chore of a household.
func (s *SQLiteStore) GetChore(ctx context.Context, householdID, id string) (*models.Chore, error) {
	var row choreRow
	found, err := s.builder.From(choresTable).
		Where(goqu.C("household_id").Eq(householdID), goqu.C("id").Eq(id)).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("failed to get chore: %w", err)
	}
	if !found {
		return nil, storage.ErrNotFound
	}
	return row.toModel(), nil
}

// ListChores returns household chores ordered by due date.
func (s *SQLiteStore) ListChores(ctx context.Context, householdID string, filter storage.ChoreFilter) ([]*models.Chore, error) {
	ds := s.builder.From(choresTable).
		Where(goqu.C("household_id").Eq(householdID))
	if filter.AssignedTo != "" {
		ds = ds.Where(goqu.C("assigned_to").Eq(filter.AssignedTo))
	}
	if filter.OnlyPending {
		ds = ds.Where(goqu.C("is_completed").Eq(false))
	}
	ds = ds.Order(goqu.C("due_date").Asc(), goqu.C("created_at").Asc())
	if filter.Limit > 0 {
		ds = ds.Limit(uint(filter.Limit))
	}

	var rows []choreRow
	if err := ds.ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to list chores: %w", err)
	}

	chores := make([]*models.Chore, len(rows))
	for i, row := range rows {
		chores[i] = row.toModel()
	}
	return chores, nil
}

// CompleteChore marks a chore done.
func (s *SQLiteStore) CompleteChore(ctx context.Context, householdID, id string) error {
	res, err := s.builder.Update(choresTable).
		Set(goqu.Record{"is_completed": true}).
		Where(goqu.C("household_id").Eq(householdID), goqu.C("id").Eq(id)).
		Executor().ExecContext(ctx)
	if err != nil {
		return translate(err, "complete chore")
	}
	return mustAffect(res, "complete chore")
}

// CreateGroceryItem adds an item to the shopping list.
func (s *SQLiteStore) CreateGroceryItem(ctx context.Context, item *models.GroceryItem) error {
	_, err := s.builder.Insert(groceryItemsTable).
		Rows(groceryItemToRow(item)).
		Executor().ExecContext(ctx)
	if err != nil {
		return translate(err, "create grocery item")
	}
	return nil
}

// GetGroceryItem retrieves a shopping list item.
func (s *SQLiteStore) GetGroceryItem(ctx context.Context, householdID, id string) (*models.GroceryItem, error) {
	var row groceryItemRow
	found, err := s.builder.From(groceryItemsTable).
		Where(goqu.C("household_id").Eq(householdID), goqu.C("id").Eq(id)).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("failed to get grocery item: %w", err)
	}
	if !found {
		return nil, storage.ErrNotFound
	}
	return row.toModel(), nil
}

// ListGroceryItems returns unpurchased items, newest first.
func (s *SQLiteStore) ListGroceryItems(ctx context.Context, householdID string) ([]*models.GroceryItem, error) {
	var rows []groceryItemRow
	err := s.builder.From(groceryItemsTable).
		Where(goqu.C("household_id").Eq(householdID), goqu.C("is_purchased").Eq(false)).
		Order(goqu.C("created_at").Desc(), goqu.C("id").Asc()).
		ScanStructsContext(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list grocery items: %w", err)
	}

	items := make([]*models.GroceryItem, len(rows))
	for i, row := range rows {
		items[i] = row.toModel()
	}
	return items, nil
}

// MarkGroceryPurchased takes an item off the active list.
func (s *SQLiteStore) MarkGroceryPurchased(ctx context.Context, householdID, id string) error {
	res, err := s.builder.Update(groceryItemsTable).
		Set(goqu.Record{"is_purchased": true}).
		Where(goqu.C("household_id").Eq(householdID), goqu.C("id").Eq(id)).
		Executor().ExecContext(ctx)
	if err != nil {
		return translate(err, "mark grocery purchased")
	}
	return mustAffect(res, "mark grocery purchased")
}

// DeleteGroceryItem removes an item from the list.
func (s *SQLiteStore) DeleteGroceryItem(ctx context.Context, householdID, id string) error {
	res, err := s.builder.Delete(groceryItemsTable).
		Where(goqu.C("household_id").Eq(householdID), goqu.C("id").Eq(id)).
		Executor().ExecContext(ctx)
	if err != nil {
		return translate(err, "delete grocery item")
	}
	return mustAffect(res, "delete grocery item")
}

// CreateGuestLog records a visit.
func (s *SQLiteStore) CreateGuestLog(ctx context.Context, guest *models.GuestLog) error {
	_, err := s.builder.Insert(guestLogsTable).
		Rows(guestLogRow{
			ID:          guest.ID,
			HouseholdID: guest.HouseholdID,
			GuestName:   guest.GuestName,
			HostedBy:    guest.HostedBy,
			ArrivalAt:   guest.ArrivalAt,
			DepartureAt: guest.DepartureAt,
		}).
		Executor().ExecContext(ctx)
	if err != nil {
		return translate(err, "create guest log")
	}
	return nil
}

// GetGuestLog retrieves a visit.
func (s *SQLiteStore) GetGuestLog(ctx context.Context, householdID, id string) (*models.GuestLog, error) {
	var row guestLogRow
	found, err := s.builder.From(guestLogsTable).
		Where(goqu.C("household_id").Eq(householdID), goqu.C("id").Eq(id)).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("failed to get guest log: %w", err)
	}
	if !found {
		return nil, storage.ErrNotFound
	}
	return row.toModel(), nil
}

// ListUpcomingGuests returns visits that have not ended before since,
// earliest arrival first.
func (s *SQLiteStore) ListUpcomingGuests(ctx context.Context, householdID string, since int64) ([]*models.GuestLog, error) {
	var rows []guestLogRow
	err := s.builder.From(guestLogsTable).
		Where(goqu.C("household_id").Eq(householdID), goqu.C("departure_at").Gte(since)).
		Order(goqu.C("arrival_at").Asc(), goqu.C("id").Asc()).
		ScanStructsContext(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list guests: %w", err)
	}

	guests := make([]*models.GuestLog, len(rows))
	for i, row := range rows {
		guests[i] = row.toModel()
	}
	return guests, nil
}

// UpdateGuestLog rewrites a visit's name and dates.
func (s *SQLiteStore) UpdateGuestLog(ctx context.Context, guest *models.GuestLog) error {
	res, err := s.builder.Update(guestLogsTable).
		Set(goqu.Record{
			"guest_name":   guest.GuestName,
			"arrival_at":   guest.ArrivalAt,
			"departure_at": guest.DepartureAt,
		}).
		Where(goqu.C("household_id").Eq(guest.HouseholdID), goqu.C("id").Eq(guest.ID)).
		Executor().ExecContext(ctx)
	if err != nil {
		return translate(err, "update guest log")
	}
	return mustAffect(res, "update guest log")
}

// CreateAnnouncement posts an announcement.
func (s *SQLiteStore) CreateAnnouncement(ctx context.Context, a *models.Announcement) error {
	_, err := s.builder.Insert(announcementsTable).
		Rows(announcementRow{
			ID:          a.ID,
			HouseholdID: a.HouseholdID,
			Title:       a.Title,
			Message:     a.Message,
			PostedBy:    nullString(a.PostedBy),
			CreatedAt:   a.CreatedAt,
			UpdatedAt:   a.UpdatedAt,
		}).
		Executor().ExecContext(ctx)
	if err != nil {
		return translate(err, "create announcement")
	}
	return nil
}

// GetAnnouncement retrieves an announcement.
func (s *SQLiteStore) GetAnnouncement(ctx context.Context, householdID, id string) (*models.Announcement, error) {
	var row announcementRow
	found, err := s.builder.From(announcementsTable).
		Where(goqu.C("household_id").Eq(householdID), goqu.C("id").Eq(id)).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("failed to get announcement: %w", err)
	}
	if !found {
		return nil, storage.ErrNotFound
	}
	return row.toModel(), nil
}

// ListAnnouncements returns announcements newest first.
func (s *SQLiteStore) ListAnnouncements(ctx context.Context, householdID string, limit int) ([]*models.Announcement, error) {
	ds := s.builder.From(announcementsTable).
		Where(goqu.C("household_id").Eq(householdID)).
		Order(goqu.C("created_at").Desc(), goqu.C("id").Asc())
	if limit > 0 {
		ds = ds.Limit(uint(limit))
	}

	var rows []announcementRow
	if err := ds.ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}

	out := make([]*models.Announcement, len(rows))
	for i, row := range rows {
		out[i] = row.toModel()
	}
	return out, nil
}

// UpdateAnnouncement rewrites an announcement's title and message.
func (s *SQLiteStore) UpdateAnnouncement(ctx context.Context, a *models.Announcement) error {
	res, err := s.builder.Update(announcementsTable).
		Set(goqu.Record{
			"title":      a.Title,
			"message":    a.Message,
			"updated_at": a.UpdatedAt,
		}).
		Where(goqu.C("household_id").Eq(a.HouseholdID), goqu.C("id").Eq(a.ID)).
		Executor().ExecContext(ctx)
	if err != nil {
		return translate(err, "update announcement")
	}
	return mustAffect(res, "update announcement")
}

// DeleteAnnouncement removes an announcement.
func (s *SQLiteStore) DeleteAnnouncement(ctx context.Context, householdID, id string) error {
	res, err := s.builder.Delete(announcementsTable).
		Where(goqu.C("household_id").Eq(householdID), goqu.C("id").Eq(id)).
		Executor().ExecContext(ctx)
	if err != nil {
		return translate(err, "delete announcement")
	}
	return mustAffect(res, "delete announcement")
}
