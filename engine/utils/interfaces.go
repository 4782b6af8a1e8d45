package utils

import (
	"context"
)

// Operations defines the contract for the utility operations at a call boundary.
// Runtime faults inside an operation are reported as *core.Error values.
type Operations interface {
	// Divide returns the truncated quotient, or DIVISION_BY_ZERO when b is zero
	Divide(ctx context.Context, a, b int) (int, error)

	// ProcessString returns the upper-cased input, or NULL_REFERENCE when input is nil
	ProcessString(ctx context.Context, input *string) (string, error)

	// IsValid reports whether value is non-nil and non-empty
	IsValid(ctx context.Context, value *string) bool
}

// Config holds the service configuration
type Config struct {
	ConcatMode ConcatMode // Accumulation strategy used by ProcessString
}

// DefaultConfig returns the default service configuration
func DefaultConfig() *Config {
	return &Config{
		ConcatMode: ConcatBuilder,
	}
}
