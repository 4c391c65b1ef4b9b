package folder

import (
	"fmt"
	"strings"
)

// Strategy selects how cursors split their work.
type Strategy int

const (
	// Recursive splits along sub-folder boundaries without copying the tree.
	Recursive Strategy = iota
	// Batch flattens the tree into a slice once and splits index ranges evenly.
	Batch
)

// String returns the string representation of the strategy.
func (s Strategy) String() string {
	switch s {
	case Recursive:
		return "recursive"
	case Batch:
		return "batch"
	default:
		return "unknown"
	}
}

// ParseStrategy parses a strategy name, case-insensitively.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "recursive", "rec":
		return Recursive, nil
	case "batch":
		return Batch, nil
	default:
		return Recursive, fmt.Errorf("invalid strategy: %q (valid: recursive, batch)", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}

	*s = parsed

	return nil
}
