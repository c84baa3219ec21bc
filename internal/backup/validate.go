package backup

import (
	"bytes"
	"encoding/json"
	"fmt"
)

var (
	requiredFields = []string{"version", "createdAt", "appName", "transactions", "laborPayments", "workers", "plugins"}
	arrayFields    = []string{"transactions", "laborPayments", "workers", "plugins"}
)

// Validate is a structural check of a raw bundle: required fields present
// and the four core collections are arrays. Records are not inspected.
func Validate(raw []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return fmt.Errorf("%w: not a JSON object", ErrInvalidBackup)
	}
	for _, f := range requiredFields {
		if _, ok := fields[f]; !ok {
			return fmt.Errorf("%w: missing %q", ErrInvalidBackup, f)
		}
	}
	for _, f := range arrayFields {
		if v := bytes.TrimSpace(fields[f]); len(v) == 0 || v[0] != '[' {
			return fmt.Errorf("%w: %q is not an array", ErrInvalidBackup, f)
		}
	}
	return nil
}

// ValidateData applies the same check to a decoded bundle.
func ValidateData(d *Data) error {
	switch {
	case d == nil:
		return fmt.Errorf("%w: empty bundle", ErrInvalidBackup)
	case d.Version == "":
		return fmt.Errorf("%w: missing %q", ErrInvalidBackup, "version")
	case d.CreatedAt.IsZero():
		return fmt.Errorf("%w: missing %q", ErrInvalidBackup, "createdAt")
	case d.AppName == "":
		return fmt.Errorf("%w: missing %q", ErrInvalidBackup, "appName")
	case d.Transactions == nil:
		return fmt.Errorf("%w: %q is not an array", ErrInvalidBackup, "transactions")
	case d.LaborPayments == nil:
		return fmt.Errorf("%w: %q is not an array", ErrInvalidBackup, "laborPayments")
	case d.Workers == nil:
		return fmt.Errorf("%w: %q is not an array", ErrInvalidBackup, "workers")
	case d.Plugins == nil:
		return fmt.Errorf("%w: %q is not an array", ErrInvalidBackup, "plugins")
	}
	return nil
}
