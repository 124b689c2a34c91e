// Package object provides object-ID validation and the loose-object path layout.
package object

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrInvalidID is returned when an object ID is not a valid hex name.
var ErrInvalidID = errors.New("object: invalid object id")

// IDLength is the length of a hex object name (SHA-1 based stores).
const IDLength = 40

// ParseID validates and normalizes a hex object name.
// Input is lowercased; anything that is not 40 hex characters is rejected.
func ParseID(s string) (string, error) {
	id := strings.ToLower(strings.TrimSpace(s))
	if len(id) != IDLength {
		return "", fmt.Errorf("%w: %q has length %d, want %d", ErrInvalidID, s, len(id), IDLength)
	}
	for _, r := range id {
		if !isHex(r) {
			return "", fmt.Errorf("%w: %q contains non-hex character %q", ErrInvalidID, s, r)
		}
	}
	return id, nil
}

// LoosePath returns the path of a loose object relative to the object
// directory: the first two hex characters name the fan-out directory, the
// remaining 38 the file.
func LoosePath(id string) string {
	return filepath.Join(id[:2], id[2:])
}

// IDFromLoosePath reassembles an object ID from a fan-out directory name and
// a file name, returning false if the pair does not form a valid ID.
func IDFromLoosePath(dir, file string) (string, bool) {
	id, err := ParseID(dir + file)
	if err != nil {
		return "", false
	}
	return id, true
}

func isHex(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f')
}
