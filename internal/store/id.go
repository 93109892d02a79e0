package store

import "github.com/google/uuid"

// newID generates a UUID v7 for entity IDs, falling back to v4 if v7
// generation fails.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
