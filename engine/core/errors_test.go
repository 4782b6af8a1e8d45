package core_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/compozy/utildemo/engine/core"
	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	t.Run("Should format code and wrapped error", func(t *testing.T) {
		err := core.NewError(errors.New("boom"), core.ErrorCodeInvalidInput, nil)

		assert.Equal(t, "[INVALID_INPUT] boom", err.Error())
	})

	t.Run("Should include metadata when present", func(t *testing.T) {
		err := core.NewError(errors.New("boom"), core.ErrorCodeDivisionByZero, map[string]any{"a": 1})

		assert.Contains(t, err.Error(), "[DIVISION_BY_ZERO] boom")
		assert.Contains(t, err.Error(), "metadata: map[a:1]")
	})

	t.Run("Should match sentinels by code through wrapping", func(t *testing.T) {
		err := fmt.Errorf("demo: %w", core.NewError(errors.New("x"), core.ErrorCodeNullReference, nil))

		assert.ErrorIs(t, err, core.ErrNullReference)
		assert.NotErrorIs(t, err, core.ErrDivisionByZero)
	})

	t.Run("Should unwrap to the cause", func(t *testing.T) {
		cause := errors.New("cause")
		err := core.NewError(cause, core.ErrorCodePanicRecovered, nil)

		assert.ErrorIs(t, err, cause)
	})

	t.Run("Should keep cause and metadata when recoded", func(t *testing.T) {
		cause := errors.New("cause")
		err := core.NewError(cause, core.ErrorCodePanicRecovered, map[string]any{"k": "v"}).
			WithCode(core.ErrorCodeDivisionByZero)

		assert.Equal(t, core.ErrorCodeDivisionByZero, err.Code)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, "v", err.Metadata["k"])
	})
}
