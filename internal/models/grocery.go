package models

// GroceryItem is an entry on the household's shared shopping list.
type GroceryItem struct {
	ID          string
	HouseholdID string
	ItemName    string

	// Quantity is free text such as "1L" or "x12". Optional.
	Quantity string

	AddedBy     string
	IsPurchased bool
	CreatedAt   int64
}
