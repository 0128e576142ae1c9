// Package persistence reads and writes the whole domain.Store as a single
// JSON document under one key of a key-value backend.
package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/printmax/enquiry-desk/internal/domain"
)

// DefaultKey is the document key used when none is configured.
const DefaultKey = "printmax_store_v1"

// kvStore is the backend contract. Get reports found=false for a missing key.
type kvStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Repository loads and saves the store document.
type Repository struct {
	kv  kvStore
	key string
	log *slog.Logger
	now func() time.Time
}

// New creates a Repository over kv. An empty key falls back to DefaultKey.
func New(kv kvStore, key string, logger *slog.Logger) *Repository {
	if key == "" {
		key = DefaultKey
	}
	return &Repository{
		kv:  kv,
		key: key,
		log: logger.With("component", "persistence"),
		now: time.Now,
	}
}

// Key returns the document key.
func (r *Repository) Key() string { return r.key }

// Load returns the persisted store. A missing, unreadable or unparseable
// document yields domain.DefaultStore(); the reason is logged and never
// returned. An unparseable document is first copied to CorruptKey so the
// next save does not destroy it. A document that parses but breaks a store
// invariant is loaded as is, with a warning.
func (r *Repository) Load(ctx context.Context) domain.Store {
	data, found, err := r.kv.Get(ctx, r.key)
	if err != nil {
		r.log.WarnContext(ctx, "read store document, using defaults",
			slog.String("key", r.key),
			slog.String("error", err.Error()),
		)
		return domain.DefaultStore()
	}
	if !found {
		r.log.InfoContext(ctx, "no store document, seeding defaults", slog.String("key", r.key))
		return domain.DefaultStore()
	}

	s, err := parseStore(data)
	if err != nil {
		r.log.WarnContext(ctx, "unparseable store document, using defaults",
			slog.String("key", r.key),
			slog.String("error", err.Error()),
		)
		r.keepCorrupt(ctx, data)
		return domain.DefaultStore()
	}
	if err := s.Validate(); err != nil {
		r.log.WarnContext(ctx, "store document has invalid fields, loaded as is",
			slog.String("key", r.key),
			slog.String("error", err.Error()),
		)
	}

	r.log.DebugContext(ctx, "store loaded",
		slog.String("key", r.key),
		slog.Int("users", len(s.Users)),
		slog.Int("enquiries", len(s.Enquiries)),
	)
	return s
}

// CorruptKey is the key an unparseable document found at load time is
// copied to.
func (r *Repository) CorruptKey(at time.Time) string {
	return r.key + ".corrupt-" + at.UTC().Format("20060102T150405Z")
}

func (r *Repository) keepCorrupt(ctx context.Context, data []byte) {
	key := r.CorruptKey(r.now())
	if err := r.kv.Set(ctx, key, data); err != nil {
		r.log.ErrorContext(ctx, "keep unparseable store document",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return
	}
	r.log.WarnContext(ctx, "unparseable store document kept", slog.String("key", key))
}

// Save serializes s and overwrites the document.
func (r *Repository) Save(ctx context.Context, s domain.Store) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	if err := r.kv.Set(ctx, r.key, data); err != nil {
		return fmt.Errorf("write store %s: %w", r.key, err)
	}
	return nil
}
