package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.BaseURL != defaultBaseURL {
		t.Errorf("BaseURL = %q, want default %q", cfg.Server.BaseURL, defaultBaseURL)
	}
	if cfg.KeyMappings.AddTodo != "a" {
		t.Errorf("AddTodo = %q, want %q", cfg.KeyMappings.AddTodo, "a")
	}
	if cfg.Theme.Accent == "" {
		t.Error("expected default theme accent to be set")
	}
}

func TestLoadPartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  base_url: http://example.test:9000
key_mappings:
  delete_todo: x
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.BaseURL != "http://example.test:9000" {
		t.Errorf("BaseURL = %q, want value from file", cfg.Server.BaseURL)
	}
	if cfg.Server.Timeout() != time.Duration(defaultTimeoutSeconds)*time.Second {
		t.Errorf("Timeout = %v, want default", cfg.Server.Timeout())
	}
	if cfg.KeyMappings.DeleteTodo != "x" {
		t.Errorf("DeleteTodo = %q, want override %q", cfg.KeyMappings.DeleteTodo, "x")
	}
	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Quit = %q, want default %q", cfg.KeyMappings.Quit, "q")
	}
}

func TestEnvOverridesBaseURL(t *testing.T) {
	t.Setenv("TODOTUI_SERVER", "http://env.test:7777")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.BaseURL != "http://env.test:7777" {
		t.Errorf("BaseURL = %q, want env override", cfg.Server.BaseURL)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [not a map"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
