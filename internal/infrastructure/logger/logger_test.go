package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	t.Run("should parse known levels", func(t *testing.T) {
		cases := map[string]zapcore.Level{
			"debug":   zapcore.DebugLevel,
			"info":    zapcore.InfoLevel,
			"warn":    zapcore.WarnLevel,
			"warning": zapcore.WarnLevel,
			"error":   zapcore.ErrorLevel,
			"INFO":    zapcore.InfoLevel,
			"":        zapcore.InfoLevel,
		}
		for input, want := range cases {
			got, err := parseLevel(input)
			require.NoError(t, err, input)
			assert.Equal(t, want, got, input)
		}
	})

	t.Run("should reject unknown level", func(t *testing.T) {
		_, err := parseLevel("verbose")
		assert.Error(t, err)
	})
}

func TestNew(t *testing.T) {
	t.Run("should build logger from default config", func(t *testing.T) {
		l, err := New(DefaultConfig())
		require.NoError(t, err)
		require.NotNil(t, l)
		l.Debug("logger works")
	})

	t.Run("should build json logger for production", func(t *testing.T) {
		l, err := New(ProductionConfig())
		require.NoError(t, err)
		require.NotNil(t, l)
	})

	t.Run("should reject invalid format", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Format = "xml"
		_, err := New(cfg)
		assert.Error(t, err)
	})
}

func TestNewForEnvironment(t *testing.T) {
	t.Run("should not error for known environments", func(t *testing.T) {
		for _, env := range []string{"development", "production", "test"} {
			l, err := NewForEnvironment(env)
			require.NoError(t, err, env)
			require.NotNil(t, l, env)
		}
	})
}
