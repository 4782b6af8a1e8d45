package utils

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ConcatMode selects how ProcessString accumulates characters
type ConcatMode string

const (
	// ConcatBuilder appends into a single buffer sized once
	ConcatBuilder ConcatMode = "builder"
	// ConcatNaive reallocates the accumulator on every character
	ConcatNaive ConcatMode = "naive"
)

// ParseConcatMode validates a mode name; an empty name selects ConcatBuilder
func ParseConcatMode(name string) (ConcatMode, error) {
	switch mode := ConcatMode(strings.ToLower(strings.TrimSpace(name))); mode {
	case "":
		return ConcatBuilder, nil
	case ConcatBuilder, ConcatNaive:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown concat mode %q (want %q or %q)", name, ConcatBuilder, ConcatNaive)
	}
}

// Divide returns a / b truncated toward zero.
// A zero divisor is not checked and panics with a runtime error.
func Divide(a, b int) int {
	return a / b
}

// ProcessString upper-cases input using the builder strategy.
// A nil input is dereferenced and panics.
func ProcessString(input *string) string {
	return ProcessStringMode(input, ConcatBuilder)
}

// ProcessStringMode copies input character by character with the given
// strategy, then applies a full Unicode upper-case mapping.
func ProcessStringMode(input *string, mode ConcatMode) string {
	s := *input

	var accumulated string
	if mode == ConcatNaive {
		result := ""
		for _, r := range s {
			result += string(r)
		}
		accumulated = result
	} else {
		var b strings.Builder
		b.Grow(len(s))
		for _, r := range s {
			b.WriteRune(r)
		}
		accumulated = b.String()
	}

	// Casers carry state and are not shared between calls
	return cases.Upper(language.Und).String(accumulated)
}

// IsValid reports whether value is non-nil and non-empty
func IsValid(value *string) bool {
	if value == nil {
		return false
	}
	return len(*value) > 0
}
