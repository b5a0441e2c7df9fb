// Package board implements the household notice board: chores, the grocery
// list, guest visits and announcements.
//
// Every method takes a household.Access and only ever touches rows of that
// household. An ID that belongs to another household reads as not found.
package board

import (
	"errors"
	"time"

	"github.com/mmynk/dormshare/internal/apperr"
	"github.com/mmynk/dormshare/internal/storage"
)

const (
	maxTitleLen     = 200
	maxItemNameLen  = 100
	maxQuantityLen  = 50
	maxGuestNameLen = 100
)

// Board serves the household board.
type Board struct {
	store storage.Store
	now   func() time.Time
}

// New creates a Board backed by store.
func New(store storage.Store) *Board {
	return &Board{store: store, now: time.Now}
}

// notFound converts storage.ErrNotFound into an apperr not-found error.
func notFound(err error, what, id string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return apperr.NotFound("%s %s not found", what, id)
	}
	return err
}
