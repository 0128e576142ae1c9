// Package desk owns the current Store for one running application. Every
// mutation goes through a pure function in internal/store, is saved, and
// only then becomes the current state.
//
// A Service is not safe for concurrent use.
package desk

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/printmax/enquiry-desk/internal/domain"
	"github.com/printmax/enquiry-desk/pkg/ctxutil"
)

type storeRepo interface {
	Load(ctx context.Context) domain.Store
	Save(ctx context.Context, s domain.Store) error
}

// Service is the state container used by the presentation layer.
type Service struct {
	repo    storeRepo
	log     *slog.Logger
	clock   func() time.Time
	newID   func() string
	loc     *time.Location
	current domain.Store
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces time.Now.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) { s.clock = clock }
}

// WithIDGenerator replaces uuid.NewString for new enquiries and users.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

// WithLocation sets the zone that decides where "today" ends.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// NewService loads the persisted store and returns a Service holding it.
func NewService(ctx context.Context, log *slog.Logger, repo storeRepo, opts ...Option) *Service {
	s := &Service{
		repo:  repo,
		log:   log.With("service", "desk"),
		clock: time.Now,
		newID: uuid.NewString,
		loc:   time.Local,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.current = repo.Load(ctx)
	return s
}

// Snapshot returns a copy of the current store. Changing it does not
// change the service.
func (s *Service) Snapshot() domain.Store {
	return s.current.Clone()
}

// Now returns the service clock in the configured location.
func (s *Service) Now() time.Time {
	return s.clock().In(s.loc)
}

// commit saves next and makes it current. On failure the current store is
// left as it was.
func (s *Service) commit(ctx context.Context, next domain.Store) error {
	if err := s.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("save store: %w", err)
	}
	s.current = next
	return nil
}

// actor returns the acting user id for log records: the context value if
// set, else the logged-in user.
func (s *Service) actor(ctx context.Context) string {
	if id, ok := ctxutil.ActorFromCtx(ctx); ok {
		return id
	}
	if u, ok := s.current.CurrentUser(); ok {
		return u.ID
	}
	return "anonymous"
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
