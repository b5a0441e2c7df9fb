package models

// Household is a group of co-residing users sharing expenses and chores.
type Household struct {
	// ID is the unique identifier for the household (UUID format).
	ID string

	// Name is the display name (e.g., "Flat 4B"). The only mutable field.
	Name string

	// InviteCode is the unique UUID other users present to join.
	InviteCode string

	// CreatedAt is the Unix timestamp when the household was created.
	CreatedAt int64
}
