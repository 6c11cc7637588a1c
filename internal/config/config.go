package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// Config represents the specsum configuration.
type Config struct {
	Provider      string        `json:"provider"`
	Model         string        `json:"model"`
	Format        string        `json:"format"`
	SpecPath      string        `json:"specPath"`
	SpecCache     string        `json:"specCache,omitempty"`
	ExcerptLines  int           `json:"excerptLines"`
	MaxPatchBytes int           `json:"maxPatchBytes"`
	CodeOnly      bool          `json:"codeOnly"`
	Exclude       []string      `json:"exclude,omitempty"`
	Cache         CacheConfig   `json:"cache"`
	Privacy       PrivacyConfig `json:"privacy"`
}

// CacheConfig controls LLM response caching.
type CacheConfig struct {
	Enabled    bool   `json:"enabled"`
	Dir        string `json:"dir,omitempty"`
	TTLSeconds int    `json:"ttlSeconds"`
}

// PrivacyConfig controls redaction of patches before they leave the machine.
type PrivacyConfig struct {
	RedactSecrets bool     `json:"redactSecrets"`
	RedactPaths   []string `json:"redactPaths,omitempty"`
}

// Default returns a Config with all defaults applied. Provider and model
// match the Groq setup the tool was originally tuned for.
func Default() Config {
	return Config{
		Provider:      "groq",
		Model:         "llama3-8b-8192",
		Format:        "text",
		ExcerptLines:  10,
		MaxPatchBytes: 65536,
		Cache: CacheConfig{
			Enabled:    true,
			TTLSeconds: 86400,
		},
		Privacy: PrivacyConfig{
			RedactSecrets: true,
			RedactPaths:   []string{"**/.env", "**/*secrets*"},
		},
	}
}

// EffectiveSpecCache returns the text cache path, deriving it from SpecPath
// ("spec.pdf" -> "spec.txt") when not set explicitly.
func (c Config) EffectiveSpecCache() string {
	if c.SpecCache != "" {
		return c.SpecCache
	}
	if c.SpecPath == "" {
		return ""
	}
	return strings.TrimSuffix(c.SpecPath, filepath.Ext(c.SpecPath)) + ".txt"
}

// ConfigDir returns the platform-appropriate config directory for specsum.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "specsum"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "specsum"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "specsum"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "specsum"), nil
	default:
		return filepath.Join(home, ".config", "specsum"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil
// error if the file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags (only non-zero values should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.Provider != "" {
		dst.Provider = src.Provider
	}
	if src.Model != "" {
		dst.Model = src.Model
	}
	if src.Format != "" {
		dst.Format = src.Format
	}
	if src.SpecPath != "" {
		dst.SpecPath = src.SpecPath
	}
	if src.SpecCache != "" {
		dst.SpecCache = src.SpecCache
	}
	if src.ExcerptLines > 0 {
		dst.ExcerptLines = src.ExcerptLines
	}
	if src.MaxPatchBytes > 0 {
		dst.MaxPatchBytes = src.MaxPatchBytes
	}
	if src.CodeOnly {
		dst.CodeOnly = true
	}
	if len(src.Exclude) > 0 {
		dst.Exclude = src.Exclude
	}
	if src.Cache.Dir != "" {
		dst.Cache.Dir = src.Cache.Dir
	}
	if src.Cache.TTLSeconds > 0 {
		dst.Cache.TTLSeconds = src.Cache.TTLSeconds
	}
	dst.Cache.Enabled = src.Cache.Enabled || dst.Cache.Enabled
	if len(src.Privacy.RedactPaths) > 0 {
		dst.Privacy.RedactPaths = src.Privacy.RedactPaths
	}
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("SPECSUM_PROVIDER"); v != "" {
		cfg.Provider = v
	}
	if v := os.Getenv("SPECSUM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("SPECSUM_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("SPECSUM_SPEC_PATH"); v != "" {
		cfg.SpecPath = v
	}
	if v := os.Getenv("SPECSUM_SPEC_CACHE"); v != "" {
		cfg.SpecCache = v
	}
	if v := os.Getenv("SPECSUM_MAX_PATCH_BYTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxPatchBytes = n
		}
	}
	if v := os.Getenv("SPECSUM_EXCERPT_LINES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.ExcerptLines = n
		}
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["provider"]; ok && v != "" {
		cfg.Provider = v
	}
	if v, ok := overrides["model"]; ok && v != "" {
		cfg.Model = v
	}
	if v, ok := overrides["format"]; ok && v != "" {
		cfg.Format = v
	}
	if v, ok := overrides["specPath"]; ok && v != "" {
		cfg.SpecPath = v
	}
	if v, ok := overrides["specCache"]; ok && v != "" {
		cfg.SpecCache = v
	}
	if v, ok := overrides["maxPatchBytes"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxPatchBytes = n
		}
	}
	if v, ok := overrides["excerptLines"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.ExcerptLines = n
		}
	}
	if v, ok := overrides["codeOnly"]; ok && v == "true" {
		cfg.CodeOnly = true
	}
}

// SetField sets a single config field by key name. Returns error if key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "provider":
		cfg.Provider = value
	case "model":
		cfg.Model = value
	case "format":
		cfg.Format = value
	case "specPath":
		cfg.SpecPath = value
	case "specCache":
		cfg.SpecCache = value
	case "excerptLines":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("excerptLines must be an integer: %w", err)
		}
		cfg.ExcerptLines = n
	case "maxPatchBytes":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("maxPatchBytes must be an integer: %w", err)
		}
		cfg.MaxPatchBytes = n
	case "codeOnly":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("codeOnly must be a boolean: %w", err)
		}
		cfg.CodeOnly = b
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
