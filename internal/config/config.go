package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/existflow/mergeflow/internal/model"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Image storage backends
const (
	ImagesSQLite = "sqlite"
	ImagesRedis  = "redis"
	ImagesNone   = "none"
)

// Config holds user preferences
type Config struct {
	DBPath        string `yaml:"db_path" json:"db_path"`               // SQLite database path
	ConfirmDelete bool   `yaml:"confirm_delete" json:"confirm_delete"` // Require confirmation for delete and reset

	// Logging configuration
	LogLevel   string `yaml:"log_level" json:"log_level"`     // Log level: DEBUG, INFO, WARN, ERROR
	LogFile    string `yaml:"log_file" json:"log_file"`       // Path to log file
	LogConsole bool   `yaml:"log_console" json:"log_console"` // Enable console logging

	// Who is using the dashboard
	Identity model.Identity `yaml:"identity" json:"identity"`

	Images  ImagesConfig  `yaml:"images" json:"images"`
	Storage StorageConfig `yaml:"storage" json:"storage"`
}

// ImagesConfig selects where inline project images are kept
type ImagesConfig struct {
	Backend       string        `yaml:"backend" json:"backend"` // sqlite, redis or none
	RedisAddr     string        `yaml:"redis_addr" json:"redis_addr"`
	RedisPassword string        `yaml:"redis_password,omitempty" json:"-"`
	TTL           time.Duration `yaml:"ttl" json:"ttl"` // Redis expiry, 0 keeps images forever
}

// StorageConfig limits how much the local store may write
type StorageConfig struct {
	MaxSnapshotBytes int `yaml:"max_snapshot_bytes" json:"max_snapshot_bytes"` // 0 = unlimited
	MaxImageBytes    int `yaml:"max_image_bytes" json:"max_image_bytes"`       // 0 = unlimited
}

// Dir returns the mergeflow home directory (~/.mergeflow)
func Dir() string {
	home, _ := os.UserHomeDir()
	if home == "" {
		return ".mergeflow"
	}
	return filepath.Join(home, ".mergeflow")
}

// Path returns the config file location, overridable with MERGEFLOW_CONFIG
func Path() string {
	if p := os.Getenv("MERGEFLOW_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(Dir(), "config.yaml")
}

// DefaultConfig returns default settings
func DefaultConfig() *Config {
	dir := Dir()
	return &Config{
		DBPath:        filepath.Join(dir, "mergeflow.db"),
		ConfirmDelete: true,
		LogLevel:      "INFO",
		LogFile:       filepath.Join(dir, "logs", "mergeflow.log"),
		LogConsole:    false,
		Identity:      model.Identity{Role: model.RoleTeamLeader},
		Images: ImagesConfig{
			Backend:   ImagesSQLite,
			RedisAddr: "localhost:6379",
			TTL:       30 * 24 * time.Hour,
		},
		Storage: StorageConfig{
			MaxSnapshotBytes: 5 * 1024 * 1024,
			MaxImageBytes:    2 * 1024 * 1024,
		},
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Load reads the config file, then applies MERGEFLOW_* environment
// overrides. Variables may also come from ~/.mergeflow/.env.
func Load() (*Config, error) {
	if err := godotenv.Load(filepath.Join(Dir(), ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Defaults if no config
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.DBPath = getEnv("MERGEFLOW_DB_PATH", c.DBPath)
	c.LogLevel = getEnv("MERGEFLOW_LOG_LEVEL", c.LogLevel)
	c.LogFile = getEnv("MERGEFLOW_LOG_FILE", c.LogFile)
	c.LogConsole = getEnv("MERGEFLOW_LOG_CONSOLE", strconv.FormatBool(c.LogConsole)) == "true"
	c.Images.Backend = getEnv("MERGEFLOW_IMAGES_BACKEND", c.Images.Backend)
	c.Images.RedisAddr = getEnv("MERGEFLOW_REDIS_ADDR", c.Images.RedisAddr)
	c.Images.RedisPassword = getEnv("MERGEFLOW_REDIS_PASSWORD", c.Images.RedisPassword)

	if v := os.Getenv("MERGEFLOW_ROLE"); v != "" {
		role, err := model.ParseRole(v)
		if err != nil {
			return fmt.Errorf("MERGEFLOW_ROLE: %w", err)
		}
		c.Identity.Role = role
		if role != model.RoleEditor {
			c.Identity.EditorID = ""
		}
	}
	c.Identity.EditorID = getEnv("MERGEFLOW_EDITOR_ID", c.Identity.EditorID)
	return nil
}

// Validate checks values the rest of the program relies on
func (c *Config) Validate() error {
	switch c.Images.Backend {
	case ImagesSQLite, ImagesNone:
	case ImagesRedis:
		if strings.TrimSpace(c.Images.RedisAddr) == "" {
			return fmt.Errorf("images.redis_addr is required for the redis backend")
		}
	default:
		return fmt.Errorf("invalid images.backend %q (want sqlite, redis or none)", c.Images.Backend)
	}

	switch c.Identity.Role {
	case model.RoleTeamLeader, "":
	case model.RoleEditor:
		if c.Identity.EditorID == "" {
			return fmt.Errorf("identity.editor_id is required for the Editor role")
		}
	default:
		return fmt.Errorf("invalid identity.role %q", c.Identity.Role)
	}

	if c.Storage.MaxSnapshotBytes < 0 || c.Storage.MaxImageBytes < 0 {
		return fmt.Errorf("storage limits must not be negative")
	}
	return nil
}

// Save saves config to its file
func (c *Config) Save() error {
	configPath := Path()
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
