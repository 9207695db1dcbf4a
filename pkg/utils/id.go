package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// GenerateID generates a unique identifier for an entity, backed
// by a random UUID rather than a hand-rolled timestamp/counter scheme.
func GenerateID() string {
	return uuid.NewString()
}

// GenerateRunID generates a run identifier with a human-readable prefix,
// still unique across processes via its UUID suffix.
func GenerateRunID() string {
	return fmt.Sprintf("run-%s", uuid.NewString())
}
