package models

// GuestLog records a visitor hosted by a household member.
type GuestLog struct {
	ID          string
	HouseholdID string
	GuestName   string
	HostedBy    string
	ArrivalAt   int64
	DepartureAt int64
}
