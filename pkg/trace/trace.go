// Package trace provides request trace identifiers and the nightly
// trace quality evaluation.
package trace

import "github.com/google/uuid"

// NewID returns a fresh trace identifier. One trace spans a whole
// chat request, including delegated agent work.
func NewID() string {
	return "tr-" + uuid.New().String()
}
