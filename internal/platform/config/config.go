// Package config resolves runtime settings: defaults, then the YAML file in the
// data directory, then .env files, then SWITCHSPRINT_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// FileName is the optional YAML config file inside the data directory.
	FileName = "switchsprint.yaml"
	// StateFileName is the primary persisted document.
	StateFileName = "switch-sprint-data-v1.json"
	metaDir       = ".switchsprint"
)

type Config struct {
	DataDir   string `yaml:"-"`
	StatePath string `yaml:"-"`
	DBPath    string `yaml:"-"`
	GrantPath string `yaml:"-"`

	LogLevel       string        `yaml:"log_level"`
	BackupDebounce time.Duration `yaml:"backup_debounce"`
	TickInterval   time.Duration `yaml:"tick_interval"`
	MetricsAddr    string        `yaml:"metrics_addr"`
	// BackupReport also writes the xlsx report into the backup folder.
	BackupReport bool `yaml:"backup_report"`
}

func Default(dataDir string) Config {
	return Config{
		DataDir:        dataDir,
		StatePath:      filepath.Join(dataDir, StateFileName),
		DBPath:         filepath.Join(dataDir, metaDir, "history.db"),
		GrantPath:      filepath.Join(dataDir, metaDir, "backup-grant.json"),
		LogLevel:       "warn",
		BackupDebounce: 2 * time.Second,
		TickInterval:   time.Second,
	}
}

// New loads the layered configuration for dataDir.
func New(dataDir string) (Config, error) {
	if dataDir == "" {
		return Config{}, fmt.Errorf("data directory is required")
	}
	cfg := Default(dataDir)

	path := filepath.Join(dataDir, FileName)
	if raw, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	// .env files are optional; existing environment variables win.
	_ = godotenv.Load(filepath.Join(dataDir, ".env"))
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("SWITCHSPRINT_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("SWITCHSPRINT_METRICS_ADDR"); v != "" {
		c.MetricsAddr = v
	}
	if v := os.Getenv("SWITCHSPRINT_BACKUP_DEBOUNCE"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("SWITCHSPRINT_BACKUP_DEBOUNCE: %w", err)
		}
		c.BackupDebounce = d
	}
	if v := os.Getenv("SWITCHSPRINT_TICK_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("SWITCHSPRINT_TICK_INTERVAL: %w", err)
		}
		c.TickInterval = d
	}
	return nil
}

func (c Config) Validate() error {
	if c.BackupDebounce <= 0 {
		return fmt.Errorf("backup_debounce must be positive")
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick_interval must be positive")
	}
	return nil
}
