package providers

import (
	"bytes"
	"os"
	"path/filepath"
	"movie-alert/internal/structures"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeEnum_String(t *testing.T) {
	assert.Equal(t, "app", TypeApp.String())
	assert.Equal(t, "tmdb", TypeTmdb.String())
	assert.Equal(t, "store", TypeStore.String())
	assert.Equal(t, "notify", TypeNotify.String())
}

func TestNewLogProvider_CreatesLogFile(t *testing.T) {
	dir := t.TempDir()
	conf := &structures.Config{
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   dir,
		},
	}

	logger, err := NewLogProvider(conf)
	require.NoError(t, err)

	logger.Infof(TypeApp, "test message %d", 1)
	logger.Debugf(TypeTmdb, "hidden message")
	logger.Warnf(TypeStore, "store message")
	logger.Close()

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "test message 1")
	assert.Contains(t, string(data), `"type":"store"`)
	assert.NotContains(t, string(data), "hidden message")
}

func TestNewLogProvider_InvalidDir(t *testing.T) {
	conf := &structures.Config{
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   "/nonexistent/directory/path",
		},
	}

	_, err := NewLogProvider(conf)
	assert.Error(t, err)
}

func TestNewLogProvider_InvalidLevel(t *testing.T) {
	conf := &structures.Config{
		Logger: structures.LoggerConfig{Level: "verbose"},
	}

	_, err := NewLogProvider(conf)
	assert.Error(t, err)
}

func TestLogProvider_DebugFlagLowersLevel(t *testing.T) {
	var buf bytes.Buffer
	conf := &structures.Config{
		Debug:  true,
		Logger: structures.LoggerConfig{Level: "error"},
	}

	logger, err := newLogProvider(conf, &buf)
	require.NoError(t, err)

	logger.Debugf(TypeApp, "debug visible")
	assert.Contains(t, buf.String(), "debug visible")
}

func TestLogProvider_WithAddsField(t *testing.T) {
	var buf bytes.Buffer
	conf := &structures.Config{
		Logger: structures.LoggerConfig{Level: "info"},
	}

	logger, err := newLogProvider(conf, &buf)
	require.NoError(t, err)

	logger.With("run_id", "abc").Infof(TypeNotify, "hello")
	assert.Contains(t, buf.String(), "run_id=abc")
	assert.Contains(t, buf.String(), "hello")
}
