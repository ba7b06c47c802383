package dutop

import (
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// excluder reports whether an entry should be skipped. Matching is
// against the final path component only, never the full path.
//
// A nil excluder matches nothing, giving the empty pattern list a fast
// path with no per-entry work.
type excluder struct {
	patterns []string
}

// newExcluder validates the glob patterns up front so that a malformed
// pattern fails the run before any traversal starts.
func newExcluder(patterns []string) (*excluder, error) {
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid exclude pattern %q", pattern)
		}
	}

	if len(patterns) == 0 {
		return nil, nil
	}

	return &excluder{patterns: patterns}, nil
}

// matches reports whether the base name of path matches any pattern.
func (e *excluder) matches(path string) bool {
	if e == nil {
		return false
	}

	name := filepath.Base(path)
	for _, pattern := range e.patterns {
		// Patterns were validated in newExcluder.
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}

	return false
}
