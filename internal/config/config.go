// Package config loads process-wide settings. An optional YAML file is
// layered over the defaults, then the environment over both.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/annotationhq/internal/slack"
)

// Config is the complete application configuration.
type Config struct {
	DatabasePath string      `yaml:"database_path"`
	TaskTypes    []string    `yaml:"task_types"`
	Statuses     []string    `yaml:"statuses"`
	Slack        SlackConfig `yaml:"slack"`
	HTTP         HTTPConfig  `yaml:"http"`
	LogCalls     bool        `yaml:"log_calls"`
}

// SlackConfig configures the chat webhook.
type SlackConfig struct {
	WebhookURL string `yaml:"webhook_url"`
}

// HTTPConfig configures the serve command.
type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

// DefaultTaskTypes are offered by the submission form.
var DefaultTaskTypes = []string{"Bounding Boxes", "Segmentation", "Classification", "QA / Review", "Other"}

// DefaultStatuses are offered by the submission form.
var DefaultStatuses = []string{"Completed", "Partially completed", "Blocked"}

// DefaultConfig returns a Config with the built-in choices. DatabasePath is
// resolved against the home directory by Load.
func DefaultConfig() *Config {
	return &Config{
		TaskTypes: append([]string(nil), DefaultTaskTypes...),
		Statuses:  append([]string(nil), DefaultStatuses...),
		HTTP:      HTTPConfig{Addr: "127.0.0.1:8000"},
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if len(c.TaskTypes) == 0 {
		return fmt.Errorf("task_types must not be empty")
	}
	if len(c.Statuses) == 0 {
		return fmt.Errorf("statuses must not be empty")
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database_path is required")
	}
	return nil
}

// SlackSettings converts the webhook section for the notifier. The delivery
// timeout is always slack.DefaultTimeout.
func (c *Config) SlackSettings() slack.Config {
	cfg := slack.DefaultConfig()
	cfg.WebhookURL = c.Slack.WebhookURL
	return cfg
}

// LoadFromFile reads a YAML file over the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultPath returns $ANNOTATIONHQ_CONFIG or ~/.annotationhq/config.yaml.
func DefaultPath() (string, error) {
	if p := os.Getenv("ANNOTATIONHQ_CONFIG"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".annotationhq", "config.yaml"), nil
}

// Load layers defaults, the YAML file at path (a missing file is fine) and
// the environment, then validates. An empty path uses DefaultPath.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg, err := LoadFromFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg, err = DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	applyEnv(cfg)

	if cfg.DatabasePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DatabasePath = filepath.Join(home, ".annotationhq", "annotation_hq.db")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("ANNOTATIONHQ_DB"); v != "" {
		cfg.DatabasePath = v
	}
	for _, name := range []string{"ANNOTATIONHQ_SLACK_WEBHOOK_URL", "SLACK_WEBHOOK_URL"} {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			cfg.Slack.WebhookURL = v
			break
		}
	}
	if v := os.Getenv("ANNOTATIONHQ_HTTP_ADDR"); v != "" {
		cfg.HTTP.Addr = v
	}
	if v := os.Getenv("ANNOTATIONHQ_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
}
