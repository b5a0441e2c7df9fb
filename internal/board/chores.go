package board

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/dormshare/internal/apperr"
	"github.com/mmynk/dormshare/internal/household"
	"github.com/mmynk/dormshare/internal/models"
	"github.com/mmynk/dormshare/internal/storage"
	"github.com/mmynk/dormshare/internal/validate"
)

// ChoreInput describes a new chore.
type ChoreInput struct {
	Title       string
	Description string
	// AssignedTo is optional. When set it must be a household member.
	AssignedTo string
	// DueDate is any instant on the due day; it is truncated to midnight UTC.
	DueDate time.Time
}

// CreateChore adds a chore to the household.
func (b *Board) CreateChore(ctx context.Context, access household.Access, in ChoreInput) (*models.Chore, error) {
	title, err := validate.Text("title", in.Title, maxTitleLen)
	if err != nil {
		return nil, err
	}
	desc, err := validate.OptionalText("description", in.Description, 0)
	if err != nil {
		return nil, err
	}
	if in.DueDate.IsZero() {
		return nil, apperr.Validation("due date is required")
	}
	if in.AssignedTo != "" {
		if err := b.requireMember(ctx, access, in.AssignedTo); err != nil {
			return nil, err
		}
	}

	chore := &models.Chore{
		ID:          uuid.NewString(),
		HouseholdID: access.HouseholdID(),
		Title:       title,
		Description: desc,
		AssignedTo:  in.AssignedTo,
		CreatedBy:   access.UserID(),
		DueDate:     in.DueDate.UTC().Truncate(24 * time.Hour).Unix(),
		CreatedAt:   b.now().Unix(),
	}
	if err := b.store.CreateChore(ctx, chore); err != nil {
		return nil, err
	}
	return chore, nil
}

// ListChores returns pending chores by due date. With mine set, only chores
// assigned to the caller are returned.
func (b *Board) ListChores(ctx context.Context, access household.Access, mine bool) ([]*models.Chore, error) {
	filter := storage.ChoreFilter{OnlyPending: true}
	if mine {
		filter.AssignedTo = access.UserID()
	}
	return b.store.ListChores(ctx, access.HouseholdID(), filter)
}

// CompleteChore marks a chore done. Only the assignee or the creator may do
// so; the creator is allowed too so that unassigned chores can be closed.
func (b *Board) CompleteChore(ctx context.Context, access household.Access, choreID string) (*models.Chore, error) {
	chore, err := b.store.GetChore(ctx, access.HouseholdID(), choreID)
	if err != nil {
		return nil, notFound(err, "chore", choreID)
	}
	if access.UserID() != chore.AssignedTo && access.UserID() != chore.CreatedBy {
		return nil, apperr.Permission("only the assignee or creator can complete chore %s", choreID)
	}
	if chore.IsCompleted {
		return chore, nil
	}

	if err := b.store.CompleteChore(ctx, access.HouseholdID(), choreID); err != nil {
		return nil, notFound(err, "chore", choreID)
	}
	chore.IsCompleted = true
	return chore, nil
}

func (b *Board) requireMember(ctx context.Context, access household.Access, userID string) error {
	user, err := b.store.GetUserByID(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) || (err == nil && user.HouseholdID != access.HouseholdID()) {
		return apperr.Validation("assignee %s is not a member of the household", userID)
	}
	if err != nil {
		return fmt.Errorf("failed to load assignee: %w", err)
	}
	return nil
}
