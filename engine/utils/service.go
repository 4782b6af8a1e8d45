package utils

import (
	"context"
	"errors"
	"maps"
	"runtime"
	"strings"

	"github.com/compozy/utildemo/engine/core"
	errs "github.com/compozy/utildemo/pkg/errors"
	"github.com/compozy/utildemo/pkg/logger"
)

// service implements the Operations interface
type service struct {
	config *Config
}

// NewService creates a new operations service
func NewService(config *Config) Operations {
	if config == nil {
		config = DefaultConfig()
	}
	return &service{config: config}
}

// Divide runs the unchecked division and classifies a zero-divisor fault
func (s *service) Divide(_ context.Context, a, b int) (int, error) {
	logger.Debug("divide", "a", a, "b", b)
	quotient, err := errs.WithRecoverTyped("divide", func() (int, error) {
		return Divide(a, b), nil
	})
	if err != nil {
		return 0, classify(err, "divide by zero", core.ErrorCodeDivisionByZero, map[string]any{
			"dividend": a,
			"divisor":  b,
		})
	}
	return quotient, nil
}

// ProcessString runs the configured transform and classifies a nil dereference
func (s *service) ProcessString(_ context.Context, input *string) (string, error) {
	logger.Debug("process string", "mode", s.config.ConcatMode, "null", input == nil)
	result, err := errs.WithRecoverTyped("process_string", func() (string, error) {
		return ProcessStringMode(input, s.config.ConcatMode), nil
	})
	if err != nil {
		return "", classify(err, "nil pointer dereference", core.ErrorCodeNullReference, nil)
	}
	return result, nil
}

// IsValid delegates to IsValid; it cannot fault
func (s *service) IsValid(_ context.Context, value *string) bool {
	valid := IsValid(value)
	logger.Debug("is valid", "null", value == nil, "valid", valid)
	return valid
}

// classify recodes a recovered runtime fault whose message contains marker.
// Anything else keeps the PANIC_RECOVERED code.
func classify(err error, marker string, code core.ErrorCode, metadata map[string]any) error {
	var coreErr *core.Error
	var rtErr runtime.Error
	if !errors.As(err, &coreErr) || !errors.As(err, &rtErr) || !strings.Contains(rtErr.Error(), marker) {
		return err
	}

	classified := coreErr.WithCode(code)
	if len(metadata) > 0 {
		merged := make(map[string]any, len(classified.Metadata)+len(metadata))
		maps.Copy(merged, classified.Metadata)
		maps.Copy(merged, metadata)
		classified.Metadata = merged
	}
	return classified
}
