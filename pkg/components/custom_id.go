package components

import "github.com/google/uuid"

// NewCustomID returns a unique custom_id of the form "prefix:uuid", or just
// the uuid when prefix is empty.
func NewCustomID(prefix string) string {
	id := uuid.New().String()
	if prefix == "" {
		return id
	}
	return prefix + ":" + id
}
