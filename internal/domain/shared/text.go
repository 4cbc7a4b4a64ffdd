package shared

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeText trims surrounding whitespace and converts s to NFC so that
// visually identical accented input is stored and compared identically.
func NormalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// NormalizeOptional applies NormalizeText to a non-nil pointer and maps blank
// input to nil.
func NormalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	n := NormalizeText(*s)
	if n == "" {
		return nil
	}
	return &n
}
