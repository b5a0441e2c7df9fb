package board

import (
	"context"

	"github.com/google/uuid"

	"github.com/mmynk/dormshare/internal/apperr"
	"github.com/mmynk/dormshare/internal/household"
	"github.com/mmynk/dormshare/internal/models"
	"github.com/mmynk/dormshare/internal/validate"
)

// PostAnnouncement publishes a message to the household.
func (b *Board) PostAnnouncement(ctx context.Context, access household.Access, title, message string) (*models.Announcement, error) {
	title, message, err := announcementText(title, message)
	if err != nil {
		return nil, err
	}

	now := b.now().Unix()
	a := &models.Announcement{
		ID:          uuid.NewString(),
		HouseholdID: access.HouseholdID(),
		Title:       title,
		Message:     message,
		PostedBy:    access.UserID(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := b.store.CreateAnnouncement(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// ListAnnouncements returns announcements newest first. limit <= 0 means all.
func (b *Board) ListAnnouncements(ctx context.Context, access household.Access, limit int) ([]*models.Announcement, error) {
	return b.store.ListAnnouncements(ctx, access.HouseholdID(), limit)
}

// UpdateAnnouncement edits an announcement. Only its poster may do so.
func (b *Board) UpdateAnnouncement(ctx context.Context, access household.Access, id, title, message string) (*models.Announcement, error) {
	title, message, err := announcementText(title, message)
	if err != nil {
		return nil, err
	}

	a, err := b.ownAnnouncement(ctx, access, id)
	if err != nil {
		return nil, err
	}
	a.Title = title
	a.Message = message
	a.UpdatedAt = b.now().Unix()
	if err := b.store.UpdateAnnouncement(ctx, a); err != nil {
		return nil, notFound(err, "announcement", id)
	}
	return a, nil
}

// DeleteAnnouncement removes an announcement. Only its poster may do so.
func (b *Board) DeleteAnnouncement(ctx context.Context, access household.Access, id string) error {
	if _, err := b.ownAnnouncement(ctx, access, id); err != nil {
		return err
	}
	return notFound(b.store.DeleteAnnouncement(ctx, access.HouseholdID(), id), "announcement", id)
}

func (b *Board) ownAnnouncement(ctx context.Context, access household.Access, id string) (*models.Announcement, error) {
	a, err := b.store.GetAnnouncement(ctx, access.HouseholdID(), id)
	if err != nil {
		return nil, notFound(err, "announcement", id)
	}
	if a.PostedBy != access.UserID() {
		return nil, apperr.Permission("only the poster can change announcement %s", id)
	}
	return a, nil
}

func announcementText(title, message string) (string, string, error) {
	title, err := validate.Text("title", title, maxTitleLen)
	if err != nil {
		return "", "", err
	}
	message, err = validate.Text("message", message, 0)
	if err != nil {
		return "", "", err
	}
	return title, message, nil
}
