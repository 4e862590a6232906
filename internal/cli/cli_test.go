package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePositionalPath(t *testing.T) {
	cfg, exit, err := Parse([]string{"login.wire"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, exit)

	assert.Equal(t, "login.wire", cfg.WireframePath)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParseAllFlags(t *testing.T) {
	cfg, exit, err := Parse([]string{
		"-wireframe", "ui/",
		"-interactions", "ui.dsl",
		"-options", "wiregrid.hcl",
		"-output", "summary",
		"-log-format", "text",
		"-log-level", "debug",
	}, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, exit)

	assert.Equal(t, "ui/", cfg.WireframePath)
	assert.Equal(t, "ui.dsl", cfg.InteractionsPath)
	assert.Equal(t, "wiregrid.hcl", cfg.OptionsPath)
	assert.Equal(t, "summary", cfg.OutputFormat)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestShorthandFlag(t *testing.T) {
	cfg, _, err := Parse([]string{"-w", "a.wire"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "a.wire", cfg.WireframePath)
}

func TestNoPathPrintsUsage(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse(nil, &out)
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestInvalidOutputFormat(t *testing.T) {
	_, _, err := Parse([]string{"-output", "xml", "a.wire"}, &bytes.Buffer{})
	require.Error(t, err)

	exitErr, ok := err.(*ExitError)
	require.True(t, ok)
	assert.Equal(t, 2, exitErr.Code)
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := Parse([]string{"-log-level", "loud", "a.wire"}, &bytes.Buffer{})
	require.Error(t, err)
}
