package domain

import "errors"

var (
	// ErrNotFound is wrapped by repositories when a lookup matches nothing.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a transaction loses to a concurrent
	// writer. Lane-advance callers treat it as a no-op.
	ErrConflict = errors.New("transaction conflict")

	// ErrDuplicate is wrapped by repositories when an insert hits a
	// unique index. The event worker uses it to drop redeliveries.
	ErrDuplicate = errors.New("duplicate record")

	// ErrMenuItemUnavailable rejects cart lines referencing deactivated
	// menu items.
	ErrMenuItemUnavailable = errors.New("menu item is not available")
)
