package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds everything the server needs. Values come from an optional
// YAML file first, then environment variables override field by field.
type Config struct {
	Port      int    `yaml:"port"`
	TodoFile  string `yaml:"todo_file"`
	BackupDir string `yaml:"backup_dir"`
	DBPath    string `yaml:"db_path"`
	// Timezone anchors the daily energy reset. One fixed zone for the whole
	// process; per-request local time is never consulted.
	Timezone string `yaml:"timezone"`
	LogLevel string `yaml:"log_level"`
}

// Load builds the config from defaults, the YAML file named by
// QUESTLOG_CONFIG (default questlog.yml, silently skipped when absent), and
// environment variables, in that order.
func Load() (*Config, error) {
	cfg := &Config{
		Port:      8000,
		TodoFile:  "todos.md",
		BackupDir: "backups",
		DBPath:    "questlog.db",
		Timezone:  "Local",
		LogLevel:  "info",
	}

	path := envStr("QUESTLOG_CONFIG", "questlog.yml")
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg.Port = envInt("PORT", cfg.Port)
	cfg.TodoFile = envStr("TODO_FILE", cfg.TodoFile)
	cfg.BackupDir = envStr("BACKUP_DIR", cfg.BackupDir)
	cfg.DBPath = envStr("QUESTLOG_DB_PATH", cfg.DBPath)
	cfg.Timezone = envStr("TIMEZONE", cfg.Timezone)
	cfg.LogLevel = envStr("LOG_LEVEL", cfg.LogLevel)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	if c.TodoFile == "" {
		return fmt.Errorf("TODO_FILE must not be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("QUESTLOG_DB_PATH must not be empty")
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("TIMEZONE: %w", err)
	}
	return nil
}

// Location resolves the configured reset timezone.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
