package core

import "github.com/google/uuid"

// NewID returns a time-ordered opaque identifier (UUIDv7). Ids sort by
// creation time, matching the timestamp-prefixed ids older backups carry.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
