package backup

import (
	"encoding/json"
	"fmt"
	"time"
)

// ExportJSON renders d with two-space indentation.
func ExportJSON(d *Data) ([]byte, error) {
	b, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode backup: %w", err)
	}
	return b, nil
}

// ImportJSON parses and validates a bundle. Every failure wraps ErrInvalidBackup.
func ImportJSON(raw []byte) (*Data, error) {
	if err := Validate(raw); err != nil {
		return nil, err
	}
	var d Data
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	if err := ValidateData(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

// Filename is the suggested download name for a bundle created at t.
func Filename(t time.Time) string {
	return "js-accounting-bd-backup-" + t.UTC().Format("2006-01-02") + ".json"
}
