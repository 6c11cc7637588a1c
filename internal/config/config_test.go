package config

import (
	"os"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Provider != "groq" {
		t.Errorf("Default provider = %q, want %q", cfg.Provider, "groq")
	}
	if cfg.Model != "llama3-8b-8192" {
		t.Errorf("Default model = %q, want %q", cfg.Model, "llama3-8b-8192")
	}
	if cfg.Format != "text" {
		t.Errorf("Default format = %q, want %q", cfg.Format, "text")
	}
	if cfg.ExcerptLines != 10 {
		t.Errorf("Default excerptLines = %d, want 10", cfg.ExcerptLines)
	}
	if cfg.MaxPatchBytes != 65536 {
		t.Errorf("Default maxPatchBytes = %d, want 65536", cfg.MaxPatchBytes)
	}
	if !cfg.Privacy.RedactSecrets {
		t.Error("Default redactSecrets should be true")
	}
	if !cfg.Cache.Enabled {
		t.Error("Default cache should be enabled")
	}
}

func TestEffectiveSpecCache(t *testing.T) {
	tests := []struct {
		name      string
		specPath  string
		specCache string
		want      string
	}{
		{"explicit wins", "spec.pdf", "custom.txt", "custom.txt"},
		{"derived from pdf", "docs/openmp-6.0.pdf", "", "docs/openmp-6.0.txt"},
		{"no extension", "docs/spec", "", "docs/spec.txt"},
		{"unset", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{SpecPath: tt.specPath, SpecCache: tt.specCache}
			if got := cfg.EffectiveSpecCache(); got != tt.want {
				t.Errorf("EffectiveSpecCache() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMergeEnv(t *testing.T) {
	envKeys := []string{
		"SPECSUM_PROVIDER", "SPECSUM_MODEL", "SPECSUM_FORMAT",
		"SPECSUM_SPEC_PATH", "SPECSUM_SPEC_CACHE", "SPECSUM_MAX_PATCH_BYTES",
	}
	orig := map[string]string{}
	for _, k := range envKeys {
		orig[k] = os.Getenv(k)
	}
	defer func() {
		for k, v := range orig {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	os.Setenv("SPECSUM_PROVIDER", "ollama")
	os.Setenv("SPECSUM_MODEL", "llama3.3")
	os.Setenv("SPECSUM_FORMAT", "json")
	os.Setenv("SPECSUM_SPEC_PATH", "/tmp/spec.pdf")
	os.Setenv("SPECSUM_SPEC_CACHE", "/tmp/spec.txt")
	os.Setenv("SPECSUM_MAX_PATCH_BYTES", "1024")

	cfg := Default()
	mergeEnv(&cfg)

	if cfg.Provider != "ollama" {
		t.Errorf("Provider = %q, want ollama", cfg.Provider)
	}
	if cfg.Model != "llama3.3" {
		t.Errorf("Model = %q, want llama3.3", cfg.Model)
	}
	if cfg.Format != "json" {
		t.Errorf("Format = %q, want json", cfg.Format)
	}
	if cfg.SpecPath != "/tmp/spec.pdf" {
		t.Errorf("SpecPath = %q", cfg.SpecPath)
	}
	if cfg.SpecCache != "/tmp/spec.txt" {
		t.Errorf("SpecCache = %q", cfg.SpecCache)
	}
	if cfg.MaxPatchBytes != 1024 {
		t.Errorf("MaxPatchBytes = %d, want 1024", cfg.MaxPatchBytes)
	}
}

func TestMergeOverrides(t *testing.T) {
	cfg := Default()
	mergeOverrides(&cfg, map[string]string{
		"provider":     "anthropic",
		"model":        "claude-haiku-4-5",
		"specPath":     "spec.pdf",
		"excerptLines": "5",
		"codeOnly":     "true",
	})
	if cfg.Provider != "anthropic" || cfg.Model != "claude-haiku-4-5" {
		t.Errorf("provider/model = %q/%q", cfg.Provider, cfg.Model)
	}
	if cfg.SpecPath != "spec.pdf" {
		t.Errorf("SpecPath = %q", cfg.SpecPath)
	}
	if cfg.ExcerptLines != 5 {
		t.Errorf("ExcerptLines = %d, want 5", cfg.ExcerptLines)
	}
	if !cfg.CodeOnly {
		t.Error("CodeOnly should be true")
	}
}

func TestSetField(t *testing.T) {
	cfg := Default()
	if err := SetField(&cfg, "specPath", "openmp.pdf"); err != nil {
		t.Fatalf("SetField error: %v", err)
	}
	if cfg.SpecPath != "openmp.pdf" {
		t.Errorf("SpecPath = %q", cfg.SpecPath)
	}

	if err := SetField(&cfg, "excerptLines", "abc"); err == nil {
		t.Error("expected error for non-integer excerptLines")
	}
	if err := SetField(&cfg, "bogus", "x"); err == nil {
		t.Error("expected error for unknown key")
	}
}
