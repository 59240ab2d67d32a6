package logger

import (
	"os"
	"path/filepath"
	"testing"

	"practicecoach/internal/config"
)

func TestNewWritesRotatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	cfg := &config.Config{
		Server: config.ServerConfig{Mode: "debug"},
		Log:    config.LogConfig{File: path},
	}

	log := New(cfg)
	log.Debug("corpus loaded")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected log file: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected debug entry in log file")
	}
}
