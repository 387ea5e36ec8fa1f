package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFromFile(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	content := `{
  "openai_api_key": "sk-test-key",
  "model": "gpt-4",
  "defaults": {
    "output_dir": "/tmp/sites"
  }
}`

	err := os.WriteFile(path, []byte(content), 0600)
	if err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.OpenAIAPIKey != "sk-test-key" {
		t.Errorf("expected api key sk-test-key, got %q", cfg.OpenAIAPIKey)
	}

	if cfg.GetModel() != "gpt-4" {
		t.Errorf("expected model gpt-4, got %q", cfg.GetModel())
	}

	if cfg.Defaults.OutputDir != "/tmp/sites" {
		t.Errorf("expected output dir /tmp/sites, got %q", cfg.Defaults.OutputDir)
	}
}

func TestLoadMissingFileWithEnvKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-env-key")

	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.json")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should tolerate a missing config file, got: %v", err)
	}

	if cfg.OpenAIAPIKey != "sk-env-key" {
		t.Errorf("expected api key from environment, got %q", cfg.OpenAIAPIKey)
	}

	if cfg.Defaults.OutputDir != "." {
		t.Errorf("expected default output dir \".\", got %q", cfg.Defaults.OutputDir)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-env-wins")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	content := `{"openai_api_key": "sk-file-key"}`

	err := os.WriteFile(path, []byte(content), 0600)
	if err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.OpenAIAPIKey != "sk-env-wins" {
		t.Errorf("environment variable should override file, got %q", cfg.OpenAIAPIKey)
	}
}

func TestLoadMissingAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.json")

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error when no api key is configured")
	}

	if !strings.Contains(err.Error(), "openai_api_key") {
		t.Errorf("expected error to mention openai_api_key, got %q", err.Error())
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	err := os.WriteFile(path, []byte("not json"), 0600)
	if err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	_, err = Load(path)
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}

	if !strings.Contains(err.Error(), "failed to parse config file") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestInitConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "subdir", "config.json")

	err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read created config: %v", err)
	}

	if !strings.Contains(string(data), "openai_api_key") {
		t.Error("created config should contain openai_api_key field")
	}

	// Second call should refuse to overwrite
	err = InitConfig(path)
	if err == nil {
		t.Fatal("expected error when config file already exists")
	}
}
