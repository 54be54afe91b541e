package applog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
)

func TestNewWritesPrefixedEntries(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "snake-test", log.InfoLevel)

	logger.Info("game over", "ticks", 42)
	logger.Debug("hidden")

	out := buf.String()
	if !strings.Contains(out, "snake-test") || !strings.Contains(out, "game over") || !strings.Contains(out, "ticks=42") {
		t.Errorf("unexpected log output: %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Error("debug entry should be filtered at info level")
	}
}

func TestForPlayWritesFile(t *testing.T) {
	cfg := config.Default()
	cfg.Log.File = filepath.Join(t.TempDir(), "logs", "snake.log")

	logger, closer, err := ForPlay(cfg)
	if err != nil {
		t.Fatalf("ForPlay() failed: %v", err)
	}
	logger.Info("started")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	data, err := os.ReadFile(cfg.Log.File)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "started") {
		t.Errorf("log file content = %q", data)
	}
}

func TestForPlayRejectsBadLevel(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Level = "chatty"

	if _, _, err := ForPlay(cfg); err == nil {
		t.Error("ForPlay() should fail for an invalid level")
	}
}
