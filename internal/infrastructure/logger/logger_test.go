package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/library/internal/infrastructure/config"
)

func TestNewHandlerJSON(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewHandler(&buf, "json", slog.LevelInfo, false))

	log.Debug("不输出")
	log.Info("图书已添加", "book_id", "1")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "图书已添加", entry["msg"])
	assert.Equal(t, "1", entry["book_id"])
}

func TestNewHandlerConsole(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewHandler(&buf, "console", slog.LevelInfo, false))

	log.Warn("目录操作失败", "operation", "delete", "book_id", "")

	out := buf.String()
	assert.Contains(t, out, "目录操作失败")
	assert.Contains(t, out, "operation=delete")
	assert.NotContains(t, out, "book_id", "空字符串属性不输出")
	assert.NotContains(t, out, "\x1b[", "NoColor时不输出转义序列")
}

func TestNewToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.log")
	cfg := &config.Config{Log: config.LogConfig{Level: "debug", Format: "json", Output: path}}

	log, cleanup, err := New(cfg)
	require.NoError(t, err)
	log.Debug("hello")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}

func TestNewInvalidLevel(t *testing.T) {
	_, _, err := New(&config.Config{Log: config.LogConfig{Level: "verbose"}})
	assert.Error(t, err)
}
