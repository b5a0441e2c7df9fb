package models

// Announcement is a message posted to the whole household.
type Announcement struct {
	ID          string
	HouseholdID string
	Title       string
	Message     string
	PostedBy    string
	CreatedAt   int64
	UpdatedAt   int64
}
