package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupText(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	l, err := Setup("info", "text", &buf)
	require.NoError(t, err)
	l.Debug("hidden")
	slog.Info("shown", "file", "a.zn")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown file=a.zn")
}

func TestSetupJSON(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	_, err := Setup("debug", "json", &buf)
	require.NoError(t, err)
	slog.Debug("cache miss")
	assert.Contains(t, buf.String(), `"msg":"cache miss"`)
}

func TestSetupOff(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	_, err := Setup("off", "text", &buf)
	require.NoError(t, err)
	slog.Error("nope")
	assert.Zero(t, buf.Len())
}

func TestSetupErrors(t *testing.T) {
	var buf bytes.Buffer
	_, err := Setup("loud", "text", &buf)
	require.Error(t, err)
	_, err = Setup("info", "xml", &buf)
	require.Error(t, err)
}
