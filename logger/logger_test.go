package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewWithWriter(&buf, "test", Config{Level: "debug"})
	require.NoError(t, err)

	l.Infow("solved", map[string]any{"pressure": 1651})
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "test", line["component"])
	assert.Equal(t, "solved", line["message"])
	assert.Equal(t, "info", line["level"])
	assert.EqualValues(t, 1651, line["pressure"])
}

func TestZerologLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewWithWriter(&buf, "test", Config{Level: "WARN"})
	require.NoError(t, err)

	l.Debugf("debug %d", 1)
	l.Debugw("debug", map[string]any{"k": 1})
	l.Infof("info %s", "x")
	assert.Empty(t, buf.String())

	l.Warnf("warn")
	l.Errorf("error")
	assert.Equal(t, 2, strings.Count(buf.String(), "\n"))
}

func TestZerologLogger_Console(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewWithWriter(&buf, "cli", Config{Format: "console"})
	require.NoError(t, err)
	l.Infof("hello")
	assert.Contains(t, buf.String(), "hello")
}

func TestNew_BadConfig(t *testing.T) {
	_, err := New("x", Config{Level: "loud"})
	assert.Error(t, err)
	_, err = New("x", Config{Format: "xml"})
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	var l Logger = Nop{}
	l.Debugf("x")
	l.Debugw("x", nil)
	l.Infof("x")
	l.Infow("x", nil)
	l.Warnf("x")
	l.Errorf("x")
}
