package board

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/dormshare/internal/apperr"
	"github.com/mmynk/dormshare/internal/household"
	"github.com/mmynk/dormshare/internal/models"
	"github.com/mmynk/dormshare/internal/validate"
)

// GuestInput describes a visit.
type GuestInput struct {
	GuestName string
	Arrival   time.Time
	Departure time.Time
}

func (in GuestInput) validate() (string, error) {
	name, err := validate.Text("guest name", in.GuestName, maxGuestNameLen)
	if err != nil {
		return "", err
	}
	if in.Arrival.IsZero() || in.Departure.IsZero() {
		return "", apperr.Validation("arrival and departure times are required")
	}
	if in.Departure.Before(in.Arrival) {
		return "", apperr.Validation("departure must not be before arrival")
	}
	return name, nil
}

// LogGuest records a visit hosted by the caller.
func (b *Board) LogGuest(ctx context.Context, access household.Access, in GuestInput) (*models.GuestLog, error) {
	name, err := in.validate()
	if err != nil {
		return nil, err
	}

	guest := &models.GuestLog{
		ID:          uuid.NewString(),
		HouseholdID: access.HouseholdID(),
		GuestName:   name,
		HostedBy:    access.UserID(),
		ArrivalAt:   in.Arrival.Unix(),
		DepartureAt: in.Departure.Unix(),
	}
	if err := b.store.CreateGuestLog(ctx, guest); err != nil {
		return nil, err
	}
	return guest, nil
}

// ListUpcomingGuests returns visits that have not ended yet, by arrival.
func (b *Board) ListUpcomingGuests(ctx context.Context, access household.Access) ([]*models.GuestLog, error) {
	return b.store.ListUpcomingGuests(ctx, access.HouseholdID(), b.now().Unix())
}

// UpdateGuest changes a visit. Only its host may do so.
func (b *Board) UpdateGuest(ctx context.Context, access household.Access, guestID string, in GuestInput) (*models.GuestLog, error) {
	name, err := in.validate()
	if err != nil {
		return nil, err
	}

	guest, err := b.store.GetGuestLog(ctx, access.HouseholdID(), guestID)
	if err != nil {
		return nil, notFound(err, "guest", guestID)
	}
	if guest.HostedBy != access.UserID() {
		return nil, apperr.Permission("only the host can edit guest %s", guestID)
	}

	guest.GuestName = name
	guest.ArrivalAt = in.Arrival.Unix()
	guest.DepartureAt = in.Departure.Unix()
	if err := b.store.UpdateGuestLog(ctx, guest); err != nil {
		return nil, notFound(err, "guest", guestID)
	}
	return guest, nil
}
