package sqlite

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"

	"github.com/mmynk/dormshare/internal/models"
	"github.com/mmynk/dormshare/internal/storage"
)

// CreateHousehold persists a new household.
func (s *SQLiteStore) CreateHousehold(ctx context.Context, household *models.Household) error {
	_, err := s.builder.Insert(householdsTable).
		Rows(householdRow{
			ID:         household.ID,
			Name:       household.Name,
			InviteCode: household.InviteCode,
			CreatedAt:  household.CreatedAt,
		}).
		Executor().ExecContext(ctx)
	if err != nil {
		return translate(err, "create household")
	}
	return nil
}

// GetHousehold retrieves a household by ID.
func (s *SQLiteStore) GetHousehold(ctx context.Context, id string) (*models.Household, error) {
	return s.getHousehold(ctx, goqu.C("id").Eq(id))
}

// GetHouseholdByInviteCode retrieves the household owning an invite code.
func (s *SQLiteStore) GetHouseholdByInviteCode(ctx context.Context, code string) (*models.Household, error) {
	return s.getHousehold(ctx, goqu.C("invite_code").Eq(code))
}

func (s *SQLiteStore) getHousehold(ctx context.Context, where exp.Expression) (*models.Household, error) {
	var row householdRow
	found, err := s.builder.From(householdsTable).Where(where).ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("failed to get household: %w", err)
	}
	if !found {
		return nil, storage.ErrNotFound
	}
	return row.toModel(), nil
}

// RenameHousehold updates a household's name.
func (s *SQLiteStore) RenameHousehold(ctx context.Context, id, name string) error {
	res, err := s.builder.Update(householdsTable).
		Set(goqu.Record{"name": name}).
		Where(goqu.C("id").Eq(id)).
		Executor().ExecContext(ctx)
	if err != nil {
		return translate(err, "rename household")
	}
	return mustAffect(res, "rename household")
}
