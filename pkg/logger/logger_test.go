package logger_test

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rakeshkoyya/skillverse/pkg/logger"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(&buf, "skillverse")

	l.Info().Str("form", "webinar").Msg("submission received")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "skillverse", entry["service"])
	assert.Equal(t, "webinar", entry["form"])
	assert.Equal(t, "submission received", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "caller")
}

func TestNewLogger_Level(t *testing.T) {
	dir := t.TempDir()

	l, err := logger.NewLogger(filepath.Join(dir, "app.log"), "skillverse", "warn")
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, l.GetLevel())

	l, err = logger.NewLogger(filepath.Join(dir, "app.log"), "skillverse", "loud")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, l.GetLevel())
}
