package persistence

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/printmax/enquiry-desk/internal/domain"
)

const backupDateLayout = "2006-01-02"

// ExportBytes renders s as indented JSON for a backup file.
func ExportBytes(s domain.Store) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode backup: %w", err)
	}
	return append(data, '\n'), nil
}

// BackupFilename returns printmax_backup_<YYYY-MM-DD>.json for now's date.
func BackupFilename(now time.Time) string {
	return "printmax_backup_" + now.Format(backupDateLayout) + ".json"
}

// ImportBytes parses and validates a backup. The result is meant to
// replace the current store wholesale: nothing is merged. Any failure
// matches domain.ErrInvalidBackupFormat.
func ImportBytes(data []byte) (domain.Store, error) {
	s, err := parseStore(data)
	if err == nil {
		err = s.Validate()
	}
	if err != nil {
		return domain.Store{}, fmt.Errorf("%w: %w", domain.ErrInvalidBackupFormat, err)
	}
	return s, nil
}

var errNotObject = errors.New("document is not a JSON object")

// parseStore decodes a store document without checking its contents.
func parseStore(data []byte) (domain.Store, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return domain.Store{}, errNotObject
	}

	var s domain.Store
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return domain.Store{}, err
	}
	return s, nil
}
