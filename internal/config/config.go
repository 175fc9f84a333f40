// Package config handles configuration for seodraft.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MarkdownConfig configures terminal preview rendering
type MarkdownConfig struct {
	Style            string `json:"style"`              // "dark", "light", "dracula", "notty" or path to JSON theme
	EnableEmoji      bool   `json:"enable_emoji"`       // Convert :emoji: to unicode
	PreserveNewLines bool   `json:"preserve_newlines"`  // Preserve original line breaks
	TableWrap        bool   `json:"table_wrap"`         // Enable word wrap in table cells
	InlineTableLinks bool   `json:"inline_table_links"` // Render links inline in tables
}

// ExportConfig configures document export
type ExportConfig struct {
	// Format is the default export format: "html" (print-to-PDF) or "doc".
	Format string `json:"format"`
	// Directory receives exports when no explicit output path is given.
	Directory string `json:"directory,omitempty"`
	// EmbedImage inlines remote header images as data URLs.
	EmbedImage bool `json:"embed_image"`
	// ImageTimeout is the header image download timeout in seconds.
	ImageTimeout int `json:"image_timeout"`
}

// LogConfig configures go-logger output
type LogConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

// Config represents the user configuration
type Config struct {
	CopyToClipboard bool           `json:"copy_to_clipboard"`
	PreviewWidth    int            `json:"preview_width,omitempty"` // 0 means terminal width
	PreviewTheme    string         `json:"preview_theme"`           // TUI palette: tokyonight, nord, dracula
	Markdown        MarkdownConfig `json:"markdown"`
	Export          ExportConfig   `json:"export"`
	Log             LogConfig      `json:"log"`
}

// DefaultMarkdownConfig returns the default markdown configuration
func DefaultMarkdownConfig() MarkdownConfig {
	return MarkdownConfig{
		Style:            "dark",
		EnableEmoji:      true,
		PreserveNewLines: true,
		TableWrap:        true,
		InlineTableLinks: false,
	}
}

// DefaultExportConfig returns the default export configuration
func DefaultExportConfig() ExportConfig {
	homeDir, _ := os.UserHomeDir()
	return ExportConfig{
		Format:       "html",
		Directory:    filepath.Join(homeDir, ".seodraft", "exports"),
		EmbedImage:   false,
		ImageTimeout: 30,
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		CopyToClipboard: false,
		PreviewWidth:    0,
		PreviewTheme:    "tokyonight",
		Markdown:        DefaultMarkdownConfig(),
		Export:          DefaultExportConfig(),
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(home, ".seodraft"), nil
}

// EnsureConfigDir creates the configuration directory if it doesn't exist
func EnsureConfigDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// GetExportDir returns the export directory from config, creating it if necessary
func GetExportDir(cfg Config) (string, error) {
	dir := cfg.Export.Directory
	if dir == "" {
		configDir, err := GetConfigDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(configDir, "exports")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	return dir, nil
}

// LoadConfig loads the configuration from disk
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	configPath, err := GetConfigPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults if config doesn't exist
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Export.Format = NormalizeFormat(cfg.Export.Format)
	return cfg, nil
}

// SaveConfig saves the configuration to disk
func SaveConfig(cfg Config) error {
	configDir, err := EnsureConfigDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(configDir, "config.json")

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// NormalizeFormat lowercases an export format and maps aliases; unknown
// names fall back to "html".
func NormalizeFormat(format string) string {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "doc", "word", "msword":
		return "doc"
	default:
		return "html"
	}
}

// AvailableFormats returns the supported export formats
func AvailableFormats() []string {
	return []string{
		"html",
		"doc",
	}
}
