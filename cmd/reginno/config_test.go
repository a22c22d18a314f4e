package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/reginno/internal/config"
)

func TestConfigInit(t *testing.T) {
	resetFlags()
	path := filepath.Join(t.TempDir(), "reginno.toml")

	output, err := captureOutput(t, func() error {
		return runConfigInit([]string{path})
	})
	require.NoError(t, err)
	assert.Contains(t, output, "Wrote sample configuration")

	// The written file loads back to the defaults.
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), *cfg)

	// A second run refuses to clobber it.
	err = runConfigInit([]string{path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	configInitForce = true
	_, err = captureOutput(t, func() error {
		return runConfigInit([]string{path})
	})
	require.NoError(t, err)
}

func TestConfigShow(t *testing.T) {
	resetFlags()
	configPath = filepath.Join(t.TempDir(), "reginno.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("[substitution]\nplaceholder = \"{pf}\"\n"), 0o644))

	output, err := captureOutput(t, func() error {
		return runConfigShow()
	})
	require.NoError(t, err)
	assert.Contains(t, output, "[substitution]")
	assert.Contains(t, output, "{pf}")
	assert.Contains(t, output, "line_ending")
	assert.Contains(t, output, "crlf")
}

func TestConfigShow_BadFile(t *testing.T) {
	resetFlags()
	configPath = filepath.Join(t.TempDir(), "reginno.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("[unknown]\nx = 1\n"), 0o644))

	err := runConfigShow()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}
