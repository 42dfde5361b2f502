package config

// Configuration loading and validation for catview

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tonylturner/catview/internal/errors"
)

// DefaultPath is the config file used when --config is not given.
const DefaultPath = "catview.yaml"

// Defaults recovered from the published spreadsheet deployment.
const (
	DefaultBaseURL       = "https://script.google.com/macros/s/AKfycbzAaTE6x0ZwxrpOG_U3gsHirnwGAeGD6-LpeMq6Jp1DeVtJnb0ROjqGIKwU0erY8agnQQ/exec"
	DefaultSheetParam    = "sheet"
	DefaultChatBaseURL   = "https://wa.me"
	DefaultChatPhone     = "917986297302"
	DefaultChatGreeting  = "Hi, I’m interested in this tool:"
	DefaultItemImage     = "default.jpg"
	DefaultCategoryImage = "default-category.jpg"
)

// SourceType selects the driver used to fetch sheets.
type SourceType string

const (
	SourceHTTP SourceType = "http"
	SourceFile SourceType = "file"
	SourceS3   SourceType = "s3"
)

// SourceConfig describes where the three sheets are fetched from.
type SourceConfig struct {
	Type SourceType `yaml:"type"`

	// http
	BaseURL    string `yaml:"base_url,omitempty"`
	SheetParam string `yaml:"sheet_param,omitempty"`
	TimeoutMs  int    `yaml:"timeout_ms,omitempty"` // 0 = no timeout

	// file
	Dir string `yaml:"dir,omitempty"`

	// s3
	Bucket    string `yaml:"bucket,omitempty"`
	Prefix    string `yaml:"prefix,omitempty"`
	Region    string `yaml:"region,omitempty"`
	Endpoint  string `yaml:"endpoint,omitempty"` // S3-compatible endpoint (path-style)
	AccessKey string `yaml:"access_key,omitempty"`
	SecretKey string `yaml:"secret_key,omitempty"`
}

// SheetsConfig names the three tabs of the spreadsheet.
type SheetsConfig struct {
	Items      string `yaml:"items"`
	Images     string `yaml:"images"`
	Categories string `yaml:"categories"`
}

// ChatConfig controls the pre-filled chat deep link on variant rows.
type ChatConfig struct {
	BaseURL  string `yaml:"base_url"`
	Phone    string `yaml:"phone"`
	Greeting string `yaml:"greeting"`
}

// PlaceholderConfig holds the image identifiers used when a sheet has no entry.
type PlaceholderConfig struct {
	Item     string `yaml:"item"`
	Category string `yaml:"category"`
}

// LoggingConfig controls log verbosity and an optional log file.
type LoggingConfig struct {
	Level string `yaml:"level,omitempty"` // silent, error, info, verbose, debug
	File  string `yaml:"file,omitempty"`
}

// Config represents the catview configuration
type Config struct {
	Source       SourceConfig      `yaml:"source"`
	Sheets       SheetsConfig      `yaml:"sheets"`
	Chat         ChatConfig        `yaml:"chat"`
	Placeholders PlaceholderConfig `yaml:"placeholders"`
	Logging      LoggingConfig     `yaml:"logging,omitempty"`
}

// CreateDefaultConfig creates a default configuration pointing at the
// published spreadsheet endpoint.
func CreateDefaultConfig() *Config {
	cfg := &Config{
		Source: SourceConfig{
			Type:       SourceHTTP,
			BaseURL:    DefaultBaseURL,
			SheetParam: DefaultSheetParam,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills every unset field with its default.
func ApplyDefaults(cfg *Config) {
	if cfg.Source.Type == "" {
		cfg.Source.Type = SourceHTTP
	}
	if cfg.Source.Type == SourceHTTP && cfg.Source.SheetParam == "" {
		cfg.Source.SheetParam = DefaultSheetParam
	}
	if cfg.Sheets.Items == "" {
		cfg.Sheets.Items = "Data"
	}
	if cfg.Sheets.Images == "" {
		cfg.Sheets.Images = "Images"
	}
	if cfg.Sheets.Categories == "" {
		cfg.Sheets.Categories = "Categories"
	}
	if cfg.Chat.BaseURL == "" {
		cfg.Chat.BaseURL = DefaultChatBaseURL
	}
	if cfg.Chat.Phone == "" {
		cfg.Chat.Phone = DefaultChatPhone
	}
	if cfg.Chat.Greeting == "" {
		cfg.Chat.Greeting = DefaultChatGreeting
	}
	if cfg.Placeholders.Item == "" {
		cfg.Placeholders.Item = DefaultItemImage
	}
	if cfg.Placeholders.Category == "" {
		cfg.Placeholders.Category = DefaultCategoryImage
	}
}

// WriteConfig writes cfg to path as YAML.
func WriteConfig(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// WriteDefaultConfig writes a default configuration to a file
func WriteDefaultConfig(path string) error {
	return WriteConfig(path, CreateDefaultConfig())
}

// LoadConfig loads a configuration from a YAML file.
// If the file doesn't exist and autoCreate is true, the defaults are returned
// without touching the filesystem.
func LoadConfig(path string, autoCreate bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if autoCreate {
				return CreateDefaultConfig(), nil
			}
			return nil, errors.WrapConfigError(
				fmt.Errorf("config file not found: %s", path),
				path,
			)
		}
		return nil, errors.WrapConfigError(
			fmt.Errorf("read config file: %w", err),
			path,
		)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.WrapConfigError(fmt.Errorf("parse YAML: %w", err), path)
	}

	ApplyDefaults(&cfg)

	if err := ValidateConfig(&cfg); err != nil {
		return nil, errors.WrapConfigError(fmt.Errorf("validate config: %w", err), path)
	}

	return &cfg, nil
}

// ValidateConfig validates a configuration
func ValidateConfig(cfg *Config) error {
	if err := validateSource(cfg.Source); err != nil {
		return err
	}

	names := map[string]string{
		"sheets.items":      cfg.Sheets.Items,
		"sheets.images":     cfg.Sheets.Images,
		"sheets.categories": cfg.Sheets.Categories,
	}
	for field, name := range names {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%s is required", field)
		}
		if strings.ContainsAny(name, "/\\") {
			return fmt.Errorf("%s must not contain path separators", field)
		}
	}

	if err := validateURL(cfg.Chat.BaseURL, "chat.base_url"); err != nil {
		return err
	}
	if cfg.Chat.Phone == "" {
		return fmt.Errorf("chat.phone is required")
	}
	for _, r := range cfg.Chat.Phone {
		if r < '0' || r > '9' {
			return fmt.Errorf("chat.phone must contain digits only (international format without '+')")
		}
	}

	return nil
}

func validateSource(src SourceConfig) error {
	switch src.Type {
	case SourceHTTP:
		if err := validateURL(src.BaseURL, "source.base_url"); err != nil {
			return err
		}
		if src.SheetParam == "" {
			return fmt.Errorf("source.sheet_param is required for http sources")
		}
		if src.TimeoutMs < 0 {
			return fmt.Errorf("source.timeout_ms must be >= 0")
		}
	case SourceFile:
		if src.Dir == "" {
			return fmt.Errorf("source.dir is required for file sources")
		}
	case SourceS3:
		if src.Bucket == "" {
			return fmt.Errorf("source.bucket is required for s3 sources")
		}
		if src.Region == "" {
			return fmt.Errorf("source.region is required for s3 sources")
		}
		if (src.AccessKey == "") != (src.SecretKey == "") {
			return fmt.Errorf("source.access_key and source.secret_key must be set together")
		}
		if src.Endpoint != "" {
			if err := validateURL(src.Endpoint, "source.endpoint"); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("invalid source.type %q (expected http, file, or s3)", src.Type)
	}
	return nil
}

func validateURL(raw, field string) error {
	if raw == "" {
		return fmt.Errorf("%s is required", field)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must be an http(s) URL", field)
	}
	if u.Host == "" {
		return fmt.Errorf("%s is missing a host", field)
	}
	return nil
}

// Describe returns a short human-readable description of the source.
func (s SourceConfig) Describe() string {
	switch s.Type {
	case SourceFile:
		return "dir " + s.Dir
	case SourceS3:
		return "s3://" + s.Bucket + "/" + s.Prefix
	default:
		return s.BaseURL
	}
}
