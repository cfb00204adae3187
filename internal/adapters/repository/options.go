// Package repository defines the activity directory store interface and errors.
package repository

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithEnforceCapacity makes Signup reject rosters at max_participants.
// Capacity is advisory when disabled, matching the reference behavior.
func WithEnforceCapacity(enforce bool) Option {
	return func(s *MemStore) {
		s.enforceCapacity = enforce
	}
}
