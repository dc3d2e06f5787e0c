package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen   string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout  time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
		BasePath string        `yaml:"base_path" json:"base_path" jsonschema:"default=/,description=App scope used to match client sessions"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Upstream struct {
		URL     string        `yaml:"url" json:"url" jsonschema:"required,description=Base URL of the origin serving the app shell and content"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Upstream request timeout"`
	} `yaml:"upstream" json:"upstream" jsonschema:"description=Upstream origin configuration"`

	Cache struct {
		Version   string   `yaml:"version" json:"version" jsonschema:"default=meditations-v1,description=Cache version tag; bump on every deploy that changes cached assets"`
		Resources []string `yaml:"resources" json:"resources" jsonschema:"description=Critical resources precached on install"`
	} `yaml:"cache" json:"cache" jsonschema:"description=Offline cache configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:meditations.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Notifications NotificationsConfig `yaml:"notifications" json:"notifications" jsonschema:"description=Daily notification configuration"`

	ImageGen ImageGenConfig `yaml:"imagegen" json:"imagegen" jsonschema:"description=Optional decorative image generation"`
}

// NotificationsConfig holds the fixed notification surface and bridge tuning
type NotificationsConfig struct {
	Title       string        `yaml:"title" json:"title" jsonschema:"default=Meditation of the Day,description=Notification title"`
	Icon        string        `yaml:"icon" json:"icon" jsonschema:"default=/icons/icon-192.png,description=Notification icon asset path"`
	Badge       string        `yaml:"badge" json:"badge" jsonschema:"default=/icons/icon-72.png,description=Notification badge asset path"`
	DeepLink    string        `yaml:"deep_link" json:"deep_link" jsonschema:"description=URL carried in the notification payload; base path when empty"`
	ContentPath string        `yaml:"content_path" json:"content_path" jsonschema:"default=/data/meditations.json,description=Path of the collection document on the origin"`
	AckTimeout  time.Duration `yaml:"ack_timeout" json:"ack_timeout" jsonschema:"default=5s,description=Cross-context acknowledgment timeout"`
}

// ImageGenConfig holds the decorative image collaborator settings; the
// feature stays off unless a model is configured
type ImageGenConfig struct {
	Endpoint string `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible images API endpoint"`
	APIKey   string `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model    string `yaml:"model" json:"model" jsonschema:"description=Image model name; empty disables the feature"`
	Size     string `yaml:"size" json:"size" jsonschema:"default=1024x1024,description=Generated image size"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}
	if cfg.Server.BasePath == "" {
		cfg.Server.BasePath = "/"
	}

	// set defaults for upstream
	if cfg.Upstream.Timeout == 0 {
		cfg.Upstream.Timeout = 30 * time.Second
	}

	// set defaults for cache
	if cfg.Cache.Version == "" {
		cfg.Cache.Version = "meditations-v1"
	}
	if len(cfg.Cache.Resources) == 0 {
		cfg.Cache.Resources = []string{"/", "/index.html", "/manifest.json"}
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:meditations.db?cache=shared&mode=rwc"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for notifications
	if cfg.Notifications.Title == "" {
		cfg.Notifications.Title = "Meditation of the Day"
	}
	if cfg.Notifications.Icon == "" {
		cfg.Notifications.Icon = "/icons/icon-192.png"
	}
	if cfg.Notifications.Badge == "" {
		cfg.Notifications.Badge = "/icons/icon-72.png"
	}
	if cfg.Notifications.ContentPath == "" {
		cfg.Notifications.ContentPath = "/data/meditations.json"
	}
	if cfg.Notifications.AckTimeout == 0 {
		cfg.Notifications.AckTimeout = 5 * time.Second
	}

	// set defaults for image generation
	if cfg.ImageGen.Size == "" {
		cfg.ImageGen.Size = "1024x1024"
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate upstream config
	if cfg.Upstream.URL == "" {
		return fmt.Errorf("upstream.url is required")
	}
	if cfg.Upstream.Timeout < time.Second {
		return fmt.Errorf("upstream timeout must be at least 1 second")
	}

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	// validate notification config
	if cfg.Notifications.AckTimeout < 100*time.Millisecond {
		return fmt.Errorf("notifications.ack_timeout must be at least 100ms")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetNotificationsConfig returns notification configuration
func (c *Config) GetNotificationsConfig() NotificationsConfig {
	return c.Notifications
}

// GetImageGenConfig returns image generation configuration
func (c *Config) GetImageGenConfig() ImageGenConfig {
	return c.ImageGen
}
