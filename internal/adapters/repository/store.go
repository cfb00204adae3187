// Package repository defines the activity directory store interface and errors.
package repository

import (
	"context"

	"github.com/mergington/activities/internal/domain/model"
)

// Store provides read/write access to the activity directory.
// All implementations must keep the directory invariants: unique activity
// names, at-most-once roster membership per email, and participant
// insertion order.
type Store interface {
	// Seed replaces the directory contents. It is called once at startup;
	// the activity set is fixed afterwards.
	Seed(ctx context.Context, activities []model.Activity) error

	// List returns a snapshot of every activity in seed order.
	List(ctx context.Context) ([]model.Activity, error)

	// Get returns a snapshot of one activity.
	// Returns ErrNotFound if the name is unknown.
	Get(ctx context.Context, name string) (model.Activity, error)

	// Signup appends email to the activity's roster.
	// Returns ErrNotFound, ErrEmptyEmail, ErrAlreadyRegistered, or
	// ErrActivityFull (capacity enforcement enabled only).
	Signup(ctx context.Context, name, email string) error

	// Unregister removes email from the activity's roster.
	// Returns ErrNotFound, ErrEmptyEmail, or ErrNotRegistered.
	Unregister(ctx context.Context, name, email string) error

	// Count returns the number of activities in the directory.
	Count(ctx context.Context) int

	// ParticipantCount returns the total roster size across all activities.
	ParticipantCount(ctx context.Context) int
}
