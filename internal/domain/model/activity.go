// Package model contains domain models passed between layers.
package model

import (
	"errors"
	"fmt"
)

// Sentinel kinds for model validation errors.
var (
	ErrInvalidActivity = errors.New("invalid activity")
)

// Activity represents a school extracurricular offering and its roster.
// The directory keys activities by Name, so Name must be unique.
type Activity struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"` // emails, insertion order preserved
}

// Validate checks the structural invariants of an activity record:
// non-empty name, non-negative capacity, and no duplicate participant emails.
func (a Activity) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidActivity)
	}
	if a.MaxParticipants < 0 {
		return fmt.Errorf("%w: %s: negative max_participants", ErrInvalidActivity, a.Name)
	}
	seen := make(map[string]struct{}, len(a.Participants))
	for _, email := range a.Participants {
		if email == "" {
			return fmt.Errorf("%w: %s: empty participant email", ErrInvalidActivity, a.Name)
		}
		if _, dup := seen[email]; dup {
			return fmt.Errorf("%w: %s: duplicate participant %s", ErrInvalidActivity, a.Name, email)
		}
		seen[email] = struct{}{}
	}
	return nil
}

// HasParticipant reports whether email is already on the roster.
func (a Activity) HasParticipant(email string) bool {
	for _, e := range a.Participants {
		if e == email {
			return true
		}
	}
	return false
}

// IsFull reports whether the roster has reached MaxParticipants.
// A zero capacity means no seats at all.
func (a Activity) IsFull() bool {
	return len(a.Participants) >= a.MaxParticipants
}

// Clone returns a deep copy so callers cannot mutate the directory's record.
func (a Activity) Clone() Activity {
	out := a
	out.Participants = make([]string, len(a.Participants))
	copy(out.Participants, a.Participants)
	return out
}
