package dirtree

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// matcher holds doublestar patterns matched against slash separated paths relative
// to the snapshot root.
type matcher []string

// newMatcher validates patterns and strips surrounding quotes.
func newMatcher(patterns []string) (matcher, error) {
	m := make(matcher, 0, len(patterns))

	for _, p := range patterns {
		p = strings.Trim(p, "'\"")

		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid match pattern %q", p)
		}

		m = append(m, p)
	}

	return m, nil
}

// match reports whether rel matches any pattern.
func (m matcher) match(rel string) bool {
	for _, p := range m {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
	}

	return false
}
