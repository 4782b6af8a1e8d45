package utils_test

import (
	"context"
	"sync"
	"testing"

	"github.com/compozy/utildemo/engine/core"
	"github.com/compozy/utildemo/engine/utils"
	"github.com/compozy/utildemo/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Divide(t *testing.T) {
	logger.Disable()
	t.Cleanup(logger.Enable)
	ctx := context.Background()
	service := utils.NewService(nil)

	t.Run("Should return the quotient", func(t *testing.T) {
		got, err := service.Divide(ctx, 10, 2)

		require.NoError(t, err)
		assert.Equal(t, 5, got)
	})

	t.Run("Should report division by zero", func(t *testing.T) {
		got, err := service.Divide(ctx, 10, 0)

		require.Error(t, err)
		assert.Zero(t, got)
		assert.ErrorIs(t, err, core.ErrDivisionByZero)
		assert.NotErrorIs(t, err, core.ErrPanicRecovered)
		assert.Contains(t, err.Error(), "integer divide by zero")

		var coreErr *core.Error
		require.ErrorAs(t, err, &coreErr)
		assert.Equal(t, 10, coreErr.Metadata["dividend"])
		assert.Equal(t, 0, coreErr.Metadata["divisor"])
		assert.Equal(t, "divide", coreErr.Metadata["operation"])
	})
}

func TestService_ProcessString(t *testing.T) {
	logger.Disable()
	t.Cleanup(logger.Enable)
	ctx := context.Background()

	t.Run("Should upper-case with the default mode", func(t *testing.T) {
		got, err := utils.NewService(nil).ProcessString(ctx, ptr("hello"))

		require.NoError(t, err)
		assert.Equal(t, "HELLO", got)
	})

	t.Run("Should upper-case with the naive mode", func(t *testing.T) {
		service := utils.NewService(&utils.Config{ConcatMode: utils.ConcatNaive})

		got, err := service.ProcessString(ctx, ptr("hello"))

		require.NoError(t, err)
		assert.Equal(t, "HELLO", got)
	})

	t.Run("Should report a null reference", func(t *testing.T) {
		got, err := utils.NewService(nil).ProcessString(ctx, nil)

		require.Error(t, err)
		assert.Empty(t, got)
		assert.ErrorIs(t, err, core.ErrNullReference)
	})
}

func TestService_IsValid(t *testing.T) {
	logger.Disable()
	t.Cleanup(logger.Enable)
	ctx := context.Background()
	service := utils.NewService(nil)

	assert.False(t, service.IsValid(ctx, nil))
	assert.False(t, service.IsValid(ctx, ptr("")))
	assert.True(t, service.IsValid(ctx, ptr("test")))
}

func TestService_Concurrent(t *testing.T) {
	t.Run("Should be safe for concurrent callers", func(t *testing.T) {
		logger.Disable()
		t.Cleanup(logger.Enable)
		ctx := context.Background()
		service := utils.NewService(nil)

		var wg sync.WaitGroup
		for i := 1; i <= 16; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				q, err := service.Divide(ctx, n*4, 4)
				assert.NoError(t, err)
				assert.Equal(t, n, q)

				_, err = service.Divide(ctx, n, 0)
				assert.ErrorIs(t, err, core.ErrDivisionByZero)

				s, err := service.ProcessString(ctx, ptr("été"))
				assert.NoError(t, err)
				assert.Equal(t, "ÉTÉ", s)
			}(i)
		}
		wg.Wait()
	})
}
