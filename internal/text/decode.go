// Package text provides lossy UTF-8 decoding of object content.
//
// Object payloads can mix text with binary metadata, so decoding never
// fails: invalid sequences are either substituted with U+FFFD or dropped,
// depending on policy.
package text

import (
	"strings"
	"unicode/utf8"
)

// Policy selects how invalid UTF-8 sequences are handled.
type Policy int

const (
	// PolicyReplace substitutes each invalid sequence with U+FFFD.
	PolicyReplace Policy = iota
	// PolicyDrop omits invalid sequences from the output.
	PolicyDrop
)

// String returns the flag-friendly name of the policy.
func (p Policy) String() string {
	switch p {
	case PolicyDrop:
		return "drop"
	default:
		return "replace"
	}
}

// ParsePolicy maps a flag value to a Policy. Unknown values report false.
func ParsePolicy(s string) (Policy, bool) {
	switch s {
	case "replace":
		return PolicyReplace, true
	case "drop":
		return PolicyDrop, true
	default:
		return PolicyReplace, false
	}
}

// Decode converts b to a string under the given policy.
func Decode(b []byte, p Policy) string {
	if utf8.Valid(b) {
		return string(b)
	}
	return rebuild(b, p == PolicyReplace)
}

// rebuild re-decodes b rune by rune. Each invalid byte is substituted with
// U+FFFD or omitted, so a run of invalid bytes yields one substitution per
// byte, not one per run.
func rebuild(b []byte, substitute bool) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError && size == 1 {
			if substitute {
				sb.WriteRune(utf8.RuneError)
			}
		} else {
			sb.WriteRune(r)
		}
		b = b[size:]
	}
	return sb.String()
}
