package desk

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/printmax/enquiry-desk/internal/domain"
	"github.com/printmax/enquiry-desk/internal/store"
)

// Users returns a copy of the user list in insertion order.
func (s *Service) Users() []domain.User {
	return slices.Clone(s.current.Users)
}

// AddUser creates a user with a generated id.
func (s *Service) AddUser(ctx context.Context, input AddUserInput) (domain.User, error) {
	if err := input.Validate(); err != nil {
		return domain.User{}, err
	}
	in := input.normalize()

	id := s.newID()
	next := store.AddUser(s.current, id, in.Name, in.Role)
	if err := s.commit(ctx, next); err != nil {
		return domain.User{}, fmt.Errorf("add user: %w", err)
	}

	u, _ := next.FindUser(id)

	s.log.InfoContext(ctx, "user added",
		slog.String("actor", s.actor(ctx)),
		slog.String("user_id", u.ID),
		slog.String("role", u.Role.String()),
	)
	return *u, nil
}

// RemoveUser deletes a user. Enquiries assigned to them keep the id and
// show as unassigned. Removing the logged-in user logs them out implicitly.
func (s *Service) RemoveUser(ctx context.Context, id string) error {
	if _, ok := s.current.FindUser(id); !ok {
		return nil
	}

	if err := s.commit(ctx, store.RemoveUser(s.current, id)); err != nil {
		return fmt.Errorf("remove user: %w", err)
	}

	s.log.InfoContext(ctx, "user removed",
		slog.String("actor", s.actor(ctx)),
		slog.String("user_id", id),
	)
	return nil
}

// CurrentUser returns the logged-in user, if any.
func (s *Service) CurrentUser() (domain.User, bool) {
	u, ok := s.current.CurrentUser()
	if !ok {
		return domain.User{}, false
	}
	return *u, true
}

// Login makes userID the current user. Returns ErrNotFound for an unknown
// user so the caller can report it.
func (s *Service) Login(ctx context.Context, userID string) (domain.User, error) {
	u, ok := s.current.FindUser(userID)
	if !ok {
		return domain.User{}, fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}
	user := *u

	if err := s.commit(ctx, store.Login(s.current, userID)); err != nil {
		return domain.User{}, fmt.Errorf("login: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.String("user_id", user.ID))
	return user, nil
}

// Logout clears the current user.
func (s *Service) Logout(ctx context.Context) error {
	if s.current.CurrentUserID == nil {
		return nil
	}
	actor := s.actor(ctx)

	if err := s.commit(ctx, store.Logout(s.current)); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	s.log.InfoContext(ctx, "user logged out", slog.String("actor", actor))
	return nil
}
