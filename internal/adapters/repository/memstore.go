// Package repository defines the activity directory store interface and errors.
package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mergington/activities/internal/domain/model"
	"github.com/mergington/activities/pkg/metrics"
)

// Mutex-guarded, in-memory Store implementation.
//
// The directory is a name-keyed map plus a slice preserving seed order so
// List returns activities the way the catalogue declares them. Every
// mutation is a single read-modify-write under the write lock, which keeps
// the roster invariants intact under concurrent handlers.

// MemStore is the in-memory activity directory.
type MemStore struct {
	mu              sync.RWMutex
	byName          map[string]*model.Activity
	names           []string // seed order
	enforceCapacity bool
}

// NewMemStore creates an empty in-memory directory.
func NewMemStore(_ context.Context, opts ...Option) *MemStore {
	s := &MemStore{
		byName: make(map[string]*model.Activity),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Seed replaces the directory contents with the given activities.
func (s *MemStore) Seed(_ context.Context, activities []model.Activity) error {
	byName := make(map[string]*model.Activity, len(activities))
	names := make([]string, 0, len(activities))

	for _, a := range activities {
		if err := a.Validate(); err != nil {
			return err
		}
		if _, exists := byName[a.Name]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateActivity, a.Name)
		}
		record := a.Clone()
		byName[a.Name] = &record
		names = append(names, a.Name)
	}

	s.mu.Lock()
	s.byName = byName
	s.names = names
	s.mu.Unlock()

	s.publishGauges()
	return nil
}

// List returns a snapshot of all activities in seed order.
func (s *MemStore) List(_ context.Context) ([]model.Activity, error) {
	start := time.Now()
	defer func() {
		metrics.RecordStoreQueryLatency(float64(time.Since(start).Nanoseconds()) / 1e6)
	}()

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Activity, 0, len(s.names))
	for _, name := range s.names {
		out = append(out, s.byName[name].Clone())
	}
	return out, nil
}

// Get returns a snapshot of one activity.
func (s *MemStore) Get(_ context.Context, name string) (model.Activity, error) {
	start := time.Now()
	defer func() {
		metrics.RecordStoreQueryLatency(float64(time.Since(start).Nanoseconds()) / 1e6)
	}()

	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.byName[name]
	if !ok {
		return model.Activity{}, ErrNotFound
	}
	return a.Clone(), nil
}

// Signup appends email to the named activity's roster.
func (s *MemStore) Signup(_ context.Context, name, email string) error {
	start := time.Now()
	defer func() {
		metrics.RecordStoreUpdateLatency(float64(time.Since(start).Nanoseconds()) / 1e6)
	}()

	if email == "" {
		return ErrEmptyEmail
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.byName[name]
	if !ok {
		return ErrNotFound
	}
	if a.HasParticipant(email) {
		return fmt.Errorf("%w: %s in %s", ErrAlreadyRegistered, email, name)
	}
	if s.enforceCapacity && a.IsFull() {
		return fmt.Errorf("%w: %s", ErrActivityFull, name)
	}

	a.Participants = append(a.Participants, email)
	s.updateRosterGauges(a)
	return nil
}

// Unregister removes email from the named activity's roster.
func (s *MemStore) Unregister(_ context.Context, name, email string) error {
	start := time.Now()
	defer func() {
		metrics.RecordStoreUpdateLatency(float64(time.Since(start).Nanoseconds()) / 1e6)
	}()

	if email == "" {
		return ErrEmptyEmail
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.byName[name]
	if !ok {
		return ErrNotFound
	}

	for i, e := range a.Participants {
		if e == email {
			a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
			s.updateRosterGauges(a)
			return nil
		}
	}
	return fmt.Errorf("%w: %s in %s", ErrNotRegistered, email, name)
}

// Count returns the number of activities in the directory.
func (s *MemStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byName)
}

// ParticipantCount returns the total roster size across all activities.
func (s *MemStore) ParticipantCount(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, a := range s.byName {
		total += len(a.Participants)
	}
	return total
}

// updateRosterGauges refreshes the per-activity gauges for one record.
// Callers must hold the lock.
func (s *MemStore) updateRosterGauges(a *model.Activity) {
	metrics.UpdateRosterSize(a.Name, len(a.Participants))
	if a.MaxParticipants > 0 {
		metrics.UpdateRosterUtilization(a.Name, float64(len(a.Participants))/float64(a.MaxParticipants))
	}
}

// publishGauges refreshes the directory-wide gauges after seeding.
func (s *MemStore) publishGauges() {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, a := range s.byName {
		total += len(a.Participants)
		s.updateRosterGauges(a)
	}
	metrics.UpdateActivitiesTotal(len(s.byName))
	metrics.UpdateParticipantsTotal(total)
}
