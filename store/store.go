package store

import (
	"context"

	"zadachnik/models"
)

// TaskStore is the storage contract the bot depends on. Every read and
// write is scoped by (id, user): a task that exists but belongs to a
// different user is indistinguishable from one that does not exist.
type TaskStore interface {
	// Add inserts a task and returns the store-assigned id. CreatedAt
	// is set at insertion time, in UTC.
	Add(ctx context.Context, text string, user int64, status, category string) (int64, error)

	// List returns the user's tasks in insertion order (ascending id).
	// A user with no tasks gets an empty slice, not an error.
	List(ctx context.Context, user int64) ([]models.Task, error)

	// Get returns the task and true, or false when the id is unknown or
	// owned by someone else.
	Get(ctx context.Context, id, user int64) (models.Task, bool, error)

	// Update changes only the supplied fields. Passing neither field is
	// a no-op; a mismatched (id, user) pair silently affects no rows.
	Update(ctx context.Context, id, user int64, status, category *string) error
}
