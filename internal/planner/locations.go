package planner

import (
	"errors"
	"fmt"
	"strings"
)

// MaxLocations is the size of the delivery roster a session plans against.
const MaxLocations = 4

var (
	// ErrTooManyLocations is returned when more than MaxLocations names are supplied.
	ErrTooManyLocations = errors.New("a plan supports at most four locations")
	// ErrDuplicateLocation is returned when two roster slots share a name.
	ErrDuplicateLocation = errors.New("location names must be unique")
)

// DefaultLocationName returns the fallback name for roster slot n (1-based).
func DefaultLocationName(n int) string {
	return fmt.Sprintf("Location %d", n)
}

// NormalizeLocations trims the supplied names, substitutes "Location N" for
// blank slots, and pads the roster out to MaxLocations entries. Supplying
// more than MaxLocations names or the same name twice is an error.
func NormalizeLocations(names []string) ([]string, error) {
	if len(names) > MaxLocations {
		return nil, ErrTooManyLocations
	}

	out := make([]string, MaxLocations)
	seen := make(map[string]struct{}, MaxLocations)
	for i := 0; i < MaxLocations; i++ {
		name := ""
		if i < len(names) {
			name = strings.TrimSpace(names[i])
		}
		if name == "" {
			name = DefaultLocationName(i + 1)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLocation, name)
		}
		seen[name] = struct{}{}
		out[i] = name
	}

	return out, nil
}
