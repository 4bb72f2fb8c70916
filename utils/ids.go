package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns a 16-char hex id for entities. Short enough for URLs,
// random enough that collisions are handled by the unique index, not here.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
}

// NewShortCode returns a short-link code of n hex chars. Callers retry on
// index collision and widen n, matching how short links have always been
// issued.
func NewShortCode(n int) string {
	s := strings.ReplaceAll(uuid.NewString(), "-", "")
	if n > len(s) {
		n = len(s)
	}
	return s[:n]
}
