// Package cell holds the text helpers shared by every stage that reads raw
// table cells: normalization, row concatenation and digit tests.
package cell

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// digitRun matches whitespace-separated digit groups such as "3 4 12".
var digitRun = regexp.MustCompile(`^\d+(\s+\d+)*$`)

// Clean normalizes a raw cell for field extraction. Text is composed to NFC
// so that Hangul decoded as conjoining jamo compares equal to precomposed
// syllables, embedded newlines become spaces and the result is trimmed.
func Clean(s string) string {
	if s == "" {
		return ""
	}
	s = norm.NFC.String(s)
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}

// Compact removes every space from s after NFC composition. Header cells
// such as "공 정 명" are matched in this form.
func Compact(s string) string {
	return strings.ReplaceAll(norm.NFC.String(s), " ", "")
}

// Join concatenates the non-empty cells of a row without a separator. Noise
// and header filters run against this form.
func Join(row []string) string {
	var sb strings.Builder
	for _, c := range row {
		if c == "" {
			continue
		}
		sb.WriteString(norm.NFC.String(c))
	}
	return sb.String()
}

// At returns the cleaned cell at idx, or "" when the row is too short.
func At(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return Clean(row[idx])
}

// IsDigits reports whether s is non-empty and made only of decimal digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// IsDigitRun reports whether s is a single number or a whitespace-separated
// run of numbers.
func IsDigitRun(s string) bool {
	return IsDigits(s) || digitRun.MatchString(s)
}
