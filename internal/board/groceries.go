package board

import (
	"context"

	"github.com/google/uuid"

	"github.com/mmynk/dormshare/internal/household"
	"github.com/mmynk/dormshare/internal/models"
	"github.com/mmynk/dormshare/internal/validate"
)

// AddGroceryItem puts an item on the shopping list.
func (b *Board) AddGroceryItem(ctx context.Context, access household.Access, itemName, quantity string) (*models.GroceryItem, error) {
	name, err := validate.Text("item name", itemName, maxItemNameLen)
	if err != nil {
		return nil, err
	}
	qty, err := validate.OptionalText("quantity", quantity, maxQuantityLen)
	if err != nil {
		return nil, err
	}

	item := &models.GroceryItem{
		ID:          uuid.NewString(),
		HouseholdID: access.HouseholdID(),
		ItemName:    name,
		Quantity:    qty,
		AddedBy:     access.UserID(),
		CreatedAt:   b.now().Unix(),
	}
	if err := b.store.CreateGroceryItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// ListGroceryItems returns the items still to buy, newest first.
func (b *Board) ListGroceryItems(ctx context.Context, access household.Access) ([]*models.GroceryItem, error) {
	return b.store.ListGroceryItems(ctx, access.HouseholdID())
}

// MarkGroceryPurchased takes an item off the list. Any member may do it.
func (b *Board) MarkGroceryPurchased(ctx context.Context, access household.Access, itemID string) error {
	return notFound(b.store.MarkGroceryPurchased(ctx, access.HouseholdID(), itemID), "grocery item", itemID)
}

// RemoveGroceryItem deletes an item. Any member may do it.
func (b *Board) RemoveGroceryItem(ctx context.Context, access household.Access, itemID string) error {
	return notFound(b.store.DeleteGroceryItem(ctx, access.HouseholdID(), itemID), "grocery item", itemID)
}
