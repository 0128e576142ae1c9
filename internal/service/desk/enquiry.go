package desk

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/printmax/enquiry-desk/internal/domain"
	"github.com/printmax/enquiry-desk/internal/store"
)

// CreateEnquiry validates input, assigns an id and createdAt, prepends the
// enquiry and saves.
func (s *Service) CreateEnquiry(ctx context.Context, input CreateEnquiryInput) (domain.Enquiry, error) {
	if err := input.Validate(); err != nil {
		return domain.Enquiry{}, err
	}
	in := input.normalize()

	e := domain.Enquiry{
		ID:           s.newID(),
		Title:        in.Title,
		Category:     in.Category,
		CustomerName: in.CustomerName,
		Phone:        in.Phone,
		Channel:      in.Channel,
		Status:       in.Status,
		CreatedAt:    s.clock().UTC(),
		Notes:        in.Notes,
		AssignedTo:   in.AssignedTo,
	}
	if in.DueAt != nil {
		due := in.DueAt.UTC()
		e.DueAt = &due
	}

	if err := s.commit(ctx, store.UpsertEnquiry(s.current, e)); err != nil {
		return domain.Enquiry{}, fmt.Errorf("create enquiry: %w", err)
	}

	s.log.InfoContext(ctx, "enquiry created",
		slog.String("actor", s.actor(ctx)),
		slog.String("enquiry_id", e.ID),
		slog.String("category", e.Category),
		slog.String("channel", e.Channel.String()),
	)

	return e, nil
}

// Enquiry returns the enquiry with the given id.
func (s *Service) Enquiry(id string) (domain.Enquiry, error) {
	e, ok := s.current.FindEnquiry(id)
	if !ok {
		return domain.Enquiry{}, fmt.Errorf("enquiry %s: %w", id, domain.ErrNotFound)
	}
	return *e, nil
}

// UpdateEnquiry applies the non-nil fields of input to an existing enquiry.
// id and createdAt never change. Returns ErrNotFound for an unknown id.
func (s *Service) UpdateEnquiry(ctx context.Context, input UpdateEnquiryInput) (domain.Enquiry, error) {
	if err := input.Validate(); err != nil {
		return domain.Enquiry{}, err
	}
	in := input.normalize()

	existing, err := s.Enquiry(in.ID)
	if err != nil {
		return domain.Enquiry{}, err
	}
	e := applyUpdate(existing, in)

	if err := s.commit(ctx, store.UpsertEnquiry(s.current, e)); err != nil {
		return domain.Enquiry{}, fmt.Errorf("update enquiry: %w", err)
	}

	s.log.InfoContext(ctx, "enquiry updated",
		slog.String("actor", s.actor(ctx)),
		slog.String("enquiry_id", e.ID),
		slog.String("status", e.Status.String()),
	)

	return e, nil
}

func applyUpdate(e domain.Enquiry, in UpdateEnquiryInput) domain.Enquiry {
	if in.Title != nil {
		e.Title = *in.Title
	}
	if in.Category != nil {
		e.Category = *in.Category
	}
	if in.CustomerName != nil {
		e.CustomerName = *in.CustomerName
	}
	if in.Phone != nil {
		e.Phone = trimOrNil(in.Phone)
	}
	if in.Channel != nil {
		e.Channel = *in.Channel
	}
	if in.Status != nil {
		e.Status = *in.Status
	}
	if in.ClearDueAt {
		e.DueAt = nil
	} else if in.DueAt != nil {
		due := in.DueAt.UTC()
		e.DueAt = &due
	}
	if in.Notes != nil {
		e.Notes = trimOrNil(in.Notes)
	}
	if in.AssignedTo != nil {
		e.AssignedTo = trimOrNil(in.AssignedTo)
	}
	return e
}

// SetStatus changes only the status of an enquiry.
func (s *Service) SetStatus(ctx context.Context, id string, status domain.Status) (domain.Enquiry, error) {
	return s.UpdateEnquiry(ctx, UpdateEnquiryInput{ID: id, Status: &status})
}

// DeleteEnquiry removes an enquiry. Deleting an unknown id does nothing and
// does not save.
func (s *Service) DeleteEnquiry(ctx context.Context, id string) error {
	if _, ok := s.current.FindEnquiry(id); !ok {
		s.log.DebugContext(ctx, "delete of unknown enquiry ignored", slog.String("enquiry_id", id))
		return nil
	}

	if err := s.commit(ctx, store.DeleteEnquiry(s.current, id)); err != nil {
		return fmt.Errorf("delete enquiry: %w", err)
	}

	s.log.InfoContext(ctx, "enquiry deleted",
		slog.String("actor", s.actor(ctx)),
		slog.String("enquiry_id", id),
	)
	return nil
}

// PurgeClosed deletes the Completed and Cancelled enquiries created before
// cutoff and returns how many were removed. Nothing is saved when none match.
func (s *Service) PurgeClosed(ctx context.Context, cutoff time.Time) (int, error) {
	next, n := store.PurgeClosed(s.current, cutoff)
	if n == 0 {
		return 0, nil
	}

	if err := s.commit(ctx, next); err != nil {
		return 0, fmt.Errorf("purge closed enquiries: %w", err)
	}

	s.log.InfoContext(ctx, "closed enquiries purged",
		slog.String("actor", s.actor(ctx)),
		slog.Int("deleted", n),
		slog.Time("cutoff", cutoff),
	)
	return n, nil
}
