package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	GitLab GitLabConfig `yaml:"gitlab"`
	Report ReportConfig `yaml:"report"`
	Output OutputConfig `yaml:"output"`
	Author string       `yaml:"author"`
}

type GitLabConfig struct {
	BaseURL string `yaml:"base_url"`
	Token   string `yaml:"token"`
}

type ReportConfig struct {
	Date      string `yaml:"date"`       // YYYY-MM-DD; empty means today
	UTCOffset string `yaml:"utc_offset"` // e.g. +05:30
}

type OutputConfig struct {
	Directory string   `yaml:"directory"`
	Formats   []string `yaml:"formats"` // csv, json, html, xlsx
}

// Load builds the configuration from the environment, then overlays the
// optional YAML file at path.
func Load(path string) (*Config, error) {
	cfg := LoadFromEnv()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	return cfg, nil
}

func LoadFromEnv() *Config {
	cfg := &Config{
		GitLab: GitLabConfig{
			BaseURL: getEnvOrDefault("GITLAB_URL", "https://gitlab.com/api/v4"),
			Token:   os.Getenv("GITLAB_TOKEN"),
		},
		Report: ReportConfig{
			UTCOffset: getEnvOrDefault("REPORT_UTC_OFFSET", "+05:30"),
		},
		Output: OutputConfig{
			Directory: getEnvOrDefault("OUTPUT_DIR", "reports"),
			Formats:   strings.Split(getEnvOrDefault("OUTPUT_FORMAT", "csv,json"), ","),
		},
	}

	for i := range cfg.Output.Formats {
		cfg.Output.Formats[i] = strings.TrimSpace(cfg.Output.Formats[i])
	}

	return cfg
}

func (c *Config) Validate() error {
	if c.GitLab.Token == "" {
		return fmt.Errorf("no GitLab token configured (set GITLAB_TOKEN or gitlab.token)")
	}

	for _, format := range c.Output.Formats {
		switch format {
		case "csv", "json", "html", "xlsx", "":
		default:
			return fmt.Errorf("unknown output format %q", format)
		}
	}

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
