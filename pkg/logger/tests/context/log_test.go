package context_test

import (
	"context"
	"testing"

	"github.com/TimShare/SkillMap/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog(t *testing.T) {
	logger.SetGlobalLogger(nil)
	defer logger.SetGlobalLogger(nil)

	t.Run("prefers logger from context", func(t *testing.T) {
		contextLogger, err := logger.NewLogger(logger.Development, "debug")
		require.NoError(t, err)

		globalLogger, err := logger.NewLogger(logger.Production, "error")
		require.NoError(t, err)
		logger.SetGlobalLogger(globalLogger)

		ctx := logger.NewContext(context.Background(), contextLogger)

		result := logger.Log(ctx)
		assert.Same(t, contextLogger, result)
	})

	t.Run("falls back to global logger", func(t *testing.T) {
		globalLogger, err := logger.NewLogger(logger.Development, "info")
		require.NoError(t, err)
		logger.SetGlobalLogger(globalLogger)

		result := logger.Log(context.Background())
		assert.Same(t, globalLogger, result)
	})

	t.Run("falls back to package-level logger when nothing is set", func(t *testing.T) {
		logger.SetGlobalLogger(nil)

		result := logger.Log(context.Background())
		assert.NotNil(t, result)

		again := logger.Log(context.Background())
		assert.Same(t, result, again)
	})
}

func TestFromContext(t *testing.T) {
	t.Run("returns logger stored in context", func(t *testing.T) {
		stored, err := logger.NewLogger(logger.Development, "info")
		require.NoError(t, err)

		ctx := logger.NewContext(context.Background(), stored)

		got, err := logger.FromContext(ctx)
		require.NoError(t, err)
		assert.Same(t, stored, got)
	})

	t.Run("returns error for plain context", func(t *testing.T) {
		got, err := logger.FromContext(context.Background())

		assert.Nil(t, got)
		assert.ErrorIs(t, err, logger.ErrLoggerNotFound)
	})
}

func TestInitGlobalLogger(t *testing.T) {
	logger.SetGlobalLogger(nil)
	defer logger.SetGlobalLogger(nil)

	t.Run("initializes global logger once", func(t *testing.T) {
		require.NoError(t, logger.InitGlobalLogger(logger.Development, "info"))

		first := logger.Log(context.Background())

		require.NoError(t, logger.InitGlobalLogger(logger.Production, "error"))

		second := logger.Log(context.Background())
		assert.Same(t, first, second, "repeated init should not replace the logger")
	})

	t.Run("rejects invalid level", func(t *testing.T) {
		logger.SetGlobalLogger(nil)

		err := logger.InitGlobalLogger(logger.Development, "not-a-level")
		assert.Error(t, err)
	})
}
