package models

// Chore is a household task, optionally assigned to one member.
type Chore struct {
	ID          string
	HouseholdID string
	Title       string
	Description string

	// AssignedTo is the responsible member's user ID. Empty when unassigned.
	AssignedTo string

	// CreatedBy is the user ID who created the chore.
	CreatedBy string

	// DueDate is the Unix timestamp of the due day (midnight UTC).
	DueDate int64

	IsCompleted bool
	CreatedAt   int64
}
