package desk

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/printmax/enquiry-desk/internal/domain"
	"github.com/printmax/enquiry-desk/internal/store"
)

// Categories returns a copy of the category set in insertion order.
func (s *Service) Categories() []string {
	return slices.Clone(s.current.Categories)
}

// AddCategory adds a title-cased category and returns the stored name.
// Adding a name that is already present is not an error and does not save.
func (s *Service) AddCategory(ctx context.Context, name string) (string, error) {
	normalized := domain.TitleCase(name)
	if normalized == "" {
		return "", domain.NewValidationError("name", "name is a required field")
	}
	if s.current.HasCategory(normalized) {
		return normalized, nil
	}

	if err := s.commit(ctx, store.AddCategory(s.current, normalized)); err != nil {
		return "", fmt.Errorf("add category: %w", err)
	}

	s.log.InfoContext(ctx, "category added",
		slog.String("actor", s.actor(ctx)),
		slog.String("category", normalized),
	)
	return normalized, nil
}

// RemoveCategory removes the exact category name. Enquiries keep it.
func (s *Service) RemoveCategory(ctx context.Context, name string) error {
	if !s.current.HasCategory(name) {
		return nil
	}

	if err := s.commit(ctx, store.RemoveCategory(s.current, name)); err != nil {
		return fmt.Errorf("remove category: %w", err)
	}

	s.log.InfoContext(ctx, "category removed",
		slog.String("actor", s.actor(ctx)),
		slog.String("category", name),
	)
	return nil
}
