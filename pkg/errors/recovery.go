package errors

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/compozy/utildemo/engine/core"
	"github.com/compozy/utildemo/pkg/logger"
)

// -----
// Recovery Functions
// -----

// WithRecover executes a function with panic recovery
func WithRecover(operation string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recovered(operation, r)
		}
	}()

	return fn()
}

// WithRecoverTyped executes a function with panic recovery and returns its result.
// On panic the zero value of T is returned alongside the recovered error.
func WithRecoverTyped[T any](operation string, fn func() (T, error)) (result T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			result = zero
			err = recovered(operation, r)
		}
	}()

	return fn()
}

// recovered logs a panic value and converts it into a structured error
func recovered(operation string, r any) *core.Error {
	logger.Debug("panic recovered",
		"operation", operation,
		"panic", r,
		"stack", string(debug.Stack()),
	)

	// Convert panic to error
	var err error
	switch v := r.(type) {
	case error:
		err = v
	case string:
		err = errors.New(v)
	default:
		err = fmt.Errorf("panic: %v", v)
	}

	return core.NewError(err, core.ErrorCodePanicRecovered, map[string]any{
		"operation": operation,
	})
}
