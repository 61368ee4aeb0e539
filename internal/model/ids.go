package model

import "github.com/google/uuid"

// NewID returns a prefixed, time-ordered identifier. UUIDv7 values generated
// by one process sort in creation order, which keeps message ids ordered
// within a chat.
func NewID(prefix string) string {
	id, err := uuid.NewV7()
	if err != nil {
		// Only fails if the system random source is broken.
		return prefix + "-" + uuid.NewString()
	}
	return prefix + "-" + id.String()
}
