package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"

	"github.com/mmynk/dormshare/internal/models"
	"github.com/mmynk/dormshare/internal/storage"
)

// CreateUser inserts a new user into the database.
func (s *SQLiteStore) CreateUser(ctx context.Context, user *models.User) error {
	_, err := s.builder.Insert(usersTable).
		Rows(userToRow(user)).
		Executor().ExecContext(ctx)
	if err != nil {
		return translate(err, "create user")
	}
	return nil
}

// GetUserByEmail retrieves a user by their email address.
func (s *SQLiteStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getUser(ctx, goqu.C("email").Eq(email), "get user by email")
}

// GetUserByID retrieves a user by their ID.
func (s *SQLiteStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.getUser(ctx, goqu.C("id").Eq(id), "get user by ID")
}

func (s *SQLiteStore) getUser(ctx context.Context, where exp.Expression, what string) (*models.User, error) {
	var row userRow
	found, err := s.builder.From(usersTable).Where(where).ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", what, err)
	}
	if !found {
		return nil, storage.ErrNotFound
	}
	return row.toModel(), nil
}

// UpdateUserProfile changes the user's display name.
func (s *SQLiteStore) UpdateUserProfile(ctx context.Context, id, displayName string) error {
	res, err := s.builder.Update(usersTable).
		Set(goqu.Record{
			"display_name": displayName,
			"updated_at":   time.Now().Unix(),
		}).
		Where(goqu.C("id").Eq(id)).
		Executor().ExecContext(ctx)
	if err != nil {
		return translate(err, "update user profile")
	}
	return mustAffect(res, "update user profile")
}

// SetUserHousehold sets the user's household, or clears it when householdID is empty.
func (s *SQLiteStore) SetUserHousehold(ctx context.Context, userID, householdID string) error {
	res, err := s.builder.Update(usersTable).
		Set(goqu.Record{
			"household_id": nullString(householdID),
			"updated_at":   time.Now().Unix(),
		}).
		Where(goqu.C("id").Eq(userID)).
		Executor().ExecContext(ctx)
	if err != nil {
		return translate(err, "set user household")
	}
	return mustAffect(res, "set user household")
}

// ListHouseholdMembers returns the users belonging to a household.
func (s *SQLiteStore) ListHouseholdMembers(ctx context.Context, householdID string) ([]*models.User, error) {
	var rows []userRow
	err := s.builder.From(usersTable).
		Where(goqu.C("household_id").Eq(householdID)).
		Order(goqu.C("display_name").Asc(), goqu.C("email").Asc()).
		ScanStructsContext(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list household members: %w", err)
	}

	users := make([]*models.User, len(rows))
	for i, row := range rows {
		users[i] = row.toModel()
	}
	return users, nil
}
