package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"switchsprint/internal/platform/config"
)

func TestDefaultsWithoutFile(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.StatePath != filepath.Join(dir, config.StateFileName) {
		t.Fatalf("unexpected state path %s", cfg.StatePath)
	}
	if cfg.BackupDebounce != 2*time.Second || cfg.TickInterval != time.Second {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestFileAndEnvLayers(t *testing.T) {
	dir := t.TempDir()
	yamlBody := "log_level: debug\nbackup_debounce: 5s\nbackup_report: true\n"
	if err := os.WriteFile(filepath.Join(dir, config.FileName), []byte(yamlBody), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("SWITCHSPRINT_TICK_INTERVAL", "250ms")

	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.LogLevel != "debug" || cfg.BackupDebounce != 5*time.Second || !cfg.BackupReport {
		t.Fatalf("file layer not applied: %+v", cfg)
	}
	if cfg.TickInterval != 250*time.Millisecond {
		t.Fatalf("env layer not applied: %s", cfg.TickInterval)
	}
}

func TestRejectsBadValues(t *testing.T) {
	if _, err := config.New(""); err == nil {
		t.Fatalf("empty data dir must fail")
	}
	dir := t.TempDir()
	t.Setenv("SWITCHSPRINT_BACKUP_DEBOUNCE", "soon")
	if _, err := config.New(dir); err == nil {
		t.Fatalf("unparseable duration must fail")
	}
	t.Setenv("SWITCHSPRINT_BACKUP_DEBOUNCE", "0s")
	if _, err := config.New(dir); err == nil {
		t.Fatalf("zero debounce must fail")
	}
}
