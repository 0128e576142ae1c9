package desk

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/printmax/enquiry-desk/internal/persistence"
)

// Export returns the current store as a pretty-printed backup and the file
// name to save it under.
func (s *Service) Export(ctx context.Context) ([]byte, string, error) {
	data, err := persistence.ExportBytes(s.current)
	if err != nil {
		return nil, "", fmt.Errorf("export: %w", err)
	}
	name := persistence.BackupFilename(s.Now())

	s.log.InfoContext(ctx, "store exported",
		slog.String("actor", s.actor(ctx)),
		slog.String("file", name),
		slog.Int("enquiries", len(s.current.Enquiries)),
	)
	return data, name, nil
}

// Import replaces the whole store with the backup in data. Nothing is merged:
// users, categories, enquiries and the logged-in user all come from the
// backup. A malformed backup returns an error matching
// domain.ErrInvalidBackupFormat and leaves the current store untouched.
func (s *Service) Import(ctx context.Context, data []byte) error {
	next, err := persistence.ImportBytes(data)
	if err != nil {
		return err
	}
	actor := s.actor(ctx)

	if err := s.commit(ctx, next); err != nil {
		return fmt.Errorf("import: %w", err)
	}

	s.log.InfoContext(ctx, "store imported",
		slog.String("actor", actor),
		slog.Int("users", len(next.Users)),
		slog.Int("enquiries", len(next.Enquiries)),
	)
	return nil
}
