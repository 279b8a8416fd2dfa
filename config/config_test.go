// SPDX-License-Identifier: MIT

package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kosmos/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, config.DefaultChecks, cfg.Checks)
	assert.Equal(t, config.DefaultParallel, cfg.Parallel)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
	assert.False(t, cfg.Full)
	assert.False(t, cfg.FailFile)
}

func TestParse_OverlaysDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte("checks: 25\nfull: true\nsuites: [Field, lattice]\nlog_level: debug\n"))
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Checks)
	assert.True(t, cfg.Full)
	assert.Equal(t, config.DefaultParallel, cfg.Parallel) // untouched
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.True(t, cfg.Selects("ℤ/5: Field (+, ·)"))
	assert.True(t, cfg.Selects("bool: BooleanAlgebra / Lattice"))
	assert.False(t, cfg.Selects("ℤ/6: CommutativeRing (+, ·)"))
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.True(t, cfg.Selects("anything"))
}

func TestParse_Rejects(t *testing.T) {
	for name, doc := range map[string]string{
		"zero checks":    "checks: 0",
		"negative tol":   "tolerance: -1",
		"zero parallel":  "parallel: 0",
		"bad level":      "log_level: loud",
		"unknown field":  "chekcs: 10",
		"malformed yaml": "checks: [",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestLoad(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	path := filepath.Join(t.TempDir(), "laws.yaml")
	require.NoError(t, os.WriteFile(path, []byte("parallel: 2\nfailfile: true\n"), 0o600))
	cfg, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Parallel)
	assert.True(t, cfg.FailFile)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
