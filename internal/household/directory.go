// Package household manages households and membership, and provides the
// membership guard every household-scoped operation goes through.
package household

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/dormshare/internal/apperr"
	"github.com/mmynk/dormshare/internal/models"
	"github.com/mmynk/dormshare/internal/storage"
	"github.com/mmynk/dormshare/internal/validate"
)

const (
	maxNameLen        = 100
	maxDisplayNameLen = 150
)

// ErrNoHousehold is returned by Guard when the user has not joined a household.
var ErrNoHousehold = apperr.New(apperr.ErrPermission, "user does not belong to a household")

// Access is proof that User is a member of Household. Only Guard builds one.
type Access struct {
	User      *models.User
	Household *models.Household
}

// UserID returns the member's user ID.
func (a Access) UserID() string { return a.User.ID }

// HouseholdID returns the household's ID.
func (a Access) HouseholdID() string { return a.Household.ID }

// Directory creates, joins and leaves households.
type Directory struct {
	store storage.Store
	now   func() time.Time
}

// NewDirectory creates a Directory backed by store.
func NewDirectory(store storage.Store) *Directory {
	return &Directory{store: store, now: time.Now}
}

// Guard loads the user and their household. It fails with ErrNoHousehold
// when the user is not a member of any household.
func (d *Directory) Guard(ctx context.Context, userID string) (Access, error) {
	return guard(ctx, d.store, userID)
}

func guard(ctx context.Context, s storage.AllStorage, userID string) (Access, error) {
	user, err := getUser(ctx, s, userID)
	if err != nil {
		return Access{}, err
	}
	if !user.InHousehold() {
		return Access{}, ErrNoHousehold
	}

	h, err := s.GetHousehold(ctx, user.HouseholdID)
	if errors.Is(err, storage.ErrNotFound) {
		return Access{}, ErrNoHousehold
	}
	if err != nil {
		return Access{}, fmt.Errorf("failed to load household: %w", err)
	}
	return Access{User: user, Household: h}, nil
}

// Lookup returns the user's household, if any.
func (d *Directory) Lookup(ctx context.Context, userID string) (*models.Household, bool, error) {
	access, err := d.Guard(ctx, userID)
	if errors.Is(err, ErrNoHousehold) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return access.Household, true, nil
}

// Create makes a new household with a fresh invite code and joins userID to it.
func (d *Directory) Create(ctx context.Context, userID, name string) (*models.Household, error) {
	name, err := validate.Text("household name", name, maxNameLen)
	if err != nil {
		return nil, err
	}

	h := &models.Household{
		ID:         uuid.NewString(),
		Name:       name,
		InviteCode: uuid.NewString(),
		CreatedAt:  d.now().Unix(),
	}

	err = d.store.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := requireNoHousehold(ctx, tx, userID); err != nil {
			return err
		}
		if err := tx.CreateHousehold(ctx, h); err != nil {
			if errors.Is(err, storage.ErrDuplicate) {
				return apperr.Wrap(apperr.ErrConflict, err, "invite code collision")
			}
			return err
		}
		return tx.SetUserHousehold(ctx, userID, h.ID)
	})
	if err != nil {
		return nil, err
	}
	return h, nil
}

// Join adds userID to the household owning inviteCode.
func (d *Directory) Join(ctx context.Context, userID, inviteCode string) (*models.Household, error) {
	code, err := uuid.Parse(inviteCode)
	if err != nil {
		return nil, apperr.Validation("invalid format")
	}

	var h *models.Household
	err = d.store.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := requireNoHousehold(ctx, tx, userID); err != nil {
			return err
		}

		var err error
		h, err = tx.GetHouseholdByInviteCode(ctx, code.String())
		if errors.Is(err, storage.ErrNotFound) {
			return apperr.Validation("invalid invite code")
		}
		if err != nil {
			return fmt.Errorf("failed to look up invite code: %w", err)
		}
		return tx.SetUserHousehold(ctx, userID, h.ID)
	})
	if err != nil {
		return nil, err
	}
	return h, nil
}

// Leave clears the user's membership. Their splits are left as they are.
func (d *Directory) Leave(ctx context.Context, userID string) error {
	return d.store.WithTx(ctx, func(tx storage.AllStorage) error {
		if _, err := guard(ctx, tx, userID); err != nil {
			return err
		}
		return tx.SetUserHousehold(ctx, userID, "")
	})
}

// Rename changes the household's name.
func (d *Directory) Rename(ctx context.Context, access Access, name string) (*models.Household, error) {
	name, err := validate.Text("household name", name, maxNameLen)
	if err != nil {
		return nil, err
	}
	if err := d.store.RenameHousehold(ctx, access.HouseholdID(), name); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.NotFound("household %s not found", access.HouseholdID())
		}
		return nil, err
	}

	renamed := *access.Household
	renamed.Name = name
	return &renamed, nil
}

// User returns the account with the given ID.
func (d *Directory) User(ctx context.Context, userID string) (*models.User, error) {
	return getUser(ctx, d.store, userID)
}

// Members lists the household's members ordered by display name.
func (d *Directory) Members(ctx context.Context, householdID string) ([]*models.User, error) {
	return d.store.ListHouseholdMembers(ctx, householdID)
}

// UpdateProfile changes the user's display name.
func (d *Directory) UpdateProfile(ctx context.Context, userID, displayName string) (*models.User, error) {
	displayName, err := validate.OptionalText("display name", displayName, maxDisplayNameLen)
	if err != nil {
		return nil, err
	}
	if err := d.store.UpdateUserProfile(ctx, userID, displayName); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.NotFound("user %s not found", userID)
		}
		return nil, err
	}
	return getUser(ctx, d.store, userID)
}

func requireNoHousehold(ctx context.Context, s storage.AllStorage, userID string) error {
	user, err := getUser(ctx, s, userID)
	if err != nil {
		return err
	}
	if user.InHousehold() {
		return apperr.Validation("already a member of a household")
	}
	return nil
}

func getUser(ctx context.Context, s storage.AllStorage, userID string) (*models.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, apperr.NotFound("user %s not found", userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}
