package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
logger:
  log_level: debug
vector:
  memory_limit: 4096
  elements: 50
  workers: 2
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logger.LogLevel)
	assert.Equal(t, 4096, cfg.Vector.MemoryLimit)
	assert.Equal(t, 50, cfg.Vector.Elements)
	assert.Equal(t, 2, cfg.Vector.Workers)
	// Unset fields keep their defaults.
	assert.Equal(t, 100, cfg.Logger.MaxSize)
	assert.Equal(t, 1_000, cfg.Vector.Inserts)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"zero_workers", "vector:\n  workers: 0\n  removes: 0\n", "Workers"},
		{"negative_limit", "vector:\n  memory_limit: -1\n", "MemoryLimit"},
		{"unknown_level", "logger:\n  log_level: loud\n", "LogLevel"},
		{"removes_exceed_elements", "vector:\n  elements: 10\n  removes: 11\n", "Removes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)

			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			assert.Equal(t, tt.field, verrs[0].Field())
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, "vector: [1, 2"))
	assert.ErrorContains(t, err, "parse config")
}
