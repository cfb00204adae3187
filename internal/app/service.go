// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"sync"

	repository "github.com/mergington/activities/internal/adapters/repository"
	"github.com/mergington/activities/internal/domain/model"
	"github.com/mergington/activities/internal/seed"
	"github.com/mergington/activities/pkg/logger"
	"github.com/mergington/activities/pkg/metrics"
)

// Service implements the API dependencies for the activities directory.
type Service struct {
	mu sync.RWMutex

	// Core components
	directory repository.Store

	// Configuration
	enforceCapacity bool
	seedFile        string
	catalogue       []model.Activity // direct seed override; wins over seedFile

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithEnforceCapacity makes signup reject rosters at max_participants.
func WithEnforceCapacity(enforce bool) Option {
	return func(s *Service) {
		s.enforceCapacity = enforce
	}
}

// WithSeedFile points the service at an activity catalogue file.
// Empty means the embedded catalogue.
func WithSeedFile(path string) Option {
	return func(s *Service) {
		s.seedFile = path
	}
}

// WithActivities seeds the directory directly, bypassing catalogue loading.
func WithActivities(activities []model.Activity) Option {
	return func(s *Service) {
		s.catalogue = activities
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		logger: nil, // Will be replaced when service starts
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start loads the activity catalogue and seeds the directory.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	// Initialize logger if not already set
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting activities directory service...")

	catalogue := s.catalogue
	if catalogue == nil {
		loaded, err := seed.Load(ctx, s.seedFile)
		if err != nil {
			return err
		}
		catalogue = loaded
	}

	s.directory = repository.NewMemStore(ctx,
		repository.WithEnforceCapacity(s.enforceCapacity),
	)
	if err := s.directory.Seed(ctx, catalogue); err != nil {
		return err
	}

	s.started = true
	s.logger.Info(ctx, "activities directory service started",
		logger.Int("activities", s.directory.Count(ctx)),
		logger.Int("participants", s.directory.ParticipantCount(ctx)),
		logger.Bool("enforceCapacity", s.enforceCapacity),
	)

	return nil
}

// Stop shuts down the service. The directory is in-memory only; nothing
// needs flushing beyond flipping the started flag.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping activities directory service...")
	s.started = false
	s.logger.Info(context.Background(), "activities directory service stopped")
}

// List returns a snapshot of every activity in the directory.
func (s *Service) List(ctx context.Context) ([]model.Activity, error) {
	return s.store().List(ctx)
}

// Signup registers email for the named activity.
func (s *Service) Signup(ctx context.Context, name, email string) error {
	err := s.store().Signup(ctx, name, email)
	if err != nil {
		reason := rejectionReason(err)
		metrics.RecordSignupRejection(reason)
		s.log().Debug(ctx, "signup rejected",
			logger.String("activity", name),
			logger.String("email", email),
			logger.String("reason", reason),
		)
		return err
	}

	metrics.RecordSignup()
	metrics.UpdateParticipantsTotal(s.store().ParticipantCount(ctx))
	s.log().Info(ctx, "participant signed up",
		logger.String("activity", name),
		logger.String("email", email),
	)
	return nil
}

// Unregister removes email from the named activity.
func (s *Service) Unregister(ctx context.Context, name, email string) error {
	err := s.store().Unregister(ctx, name, email)
	if err != nil {
		reason := rejectionReason(err)
		metrics.RecordUnregisterRejection(reason)
		s.log().Debug(ctx, "unregister rejected",
			logger.String("activity", name),
			logger.String("email", email),
			logger.String("reason", reason),
		)
		return err
	}

	metrics.RecordUnregister()
	metrics.UpdateParticipantsTotal(s.store().ParticipantCount(ctx))
	s.log().Info(ctx, "participant unregistered",
		logger.String("activity", name),
		logger.String("email", email),
	)
	return nil
}

// GetStats returns current service statistics.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	started := s.started
	directory := s.directory
	enforce := s.enforceCapacity
	s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":         started,
		"enforceCapacity": enforce,
		"activities":      0,
		"participants":    0,
	}
	if directory != nil {
		ctx := context.Background()
		stats["activities"] = directory.Count(ctx)
		stats["participants"] = directory.ParticipantCount(ctx)
	}
	return stats
}

// log returns the configured logger, falling back to the global one.
func (s *Service) log() logger.Logger {
	s.mu.RLock()
	l := s.logger
	s.mu.RUnlock()

	if l == nil {
		return logger.Get()
	}
	return l
}

// store returns the directory, falling back to an empty one before Start.
func (s *Service) store() repository.Store {
	s.mu.RLock()
	directory := s.directory
	s.mu.RUnlock()

	if directory == nil {
		return repository.NewMemStore(context.Background())
	}
	return directory
}

// rejectionReason maps directory errors to metric label values.
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return "not_found"
	case errors.Is(err, repository.ErrAlreadyRegistered):
		return "already_registered"
	case errors.Is(err, repository.ErrNotRegistered):
		return "not_registered"
	case errors.Is(err, repository.ErrActivityFull):
		return "activity_full"
	case errors.Is(err, repository.ErrEmptyEmail):
		return "missing_email"
	default:
		return "unknown"
	}
}
