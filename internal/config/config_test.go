package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"lexstat/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved != filepath.Join(tempHome, ".config", "lexstat", "config.toml") {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantDir := filepath.Join(tempHome, ".local", "share", "lexstat", "resources")
	if cfg.Resources.Dir != wantDir {
		t.Fatalf("unexpected resource dir: got %q want %q", cfg.Resources.Dir, wantDir)
	}
	if cfg.Resources.Source != config.SourceBundled {
		t.Fatalf("expected bundled source by default, got %q", cfg.Resources.Source)
	}
	if cfg.Analysis.Language != "es" {
		t.Fatalf("unexpected default language: %q", cfg.Analysis.Language)
	}
	if !cfg.Analysis.Lowercase {
		t.Fatal("expected lowercase enabled by default")
	}
	if cfg.Analysis.RemoveStopwords {
		t.Fatal("expected stop-word removal disabled by default")
	}
	if cfg.Analysis.TopN != 5 {
		t.Fatalf("unexpected top_n: %d", cfg.Analysis.TopN)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "lexstat.toml")

	type payload struct {
		Analysis struct {
			Language        string   `toml:"language"`
			Lowercase       bool     `toml:"lowercase"`
			RemoveStopwords bool     `toml:"remove_stopwords"`
			ExtraStopwords  []string `toml:"extra_stopwords"`
			TopN            int      `toml:"top_n"`
		} `toml:"analysis"`
		Resources struct {
			Source string `toml:"source"`
			Dir    string `toml:"dir"`
		} `toml:"resources"`
		Logging struct {
			Format string `toml:"format"`
			Level  string `toml:"level"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Analysis.Language = "english"
	custom.Analysis.Lowercase = false
	custom.Analysis.RemoveStopwords = true
	custom.Analysis.ExtraStopwords = []string{" lol ", "xd", "lol", ""}
	custom.Analysis.TopN = 10
	custom.Resources.Source = " CACHE "
	custom.Resources.Dir = filepath.Join(tempDir, "res")
	custom.Logging.Format = "JSON"
	custom.Logging.Level = "Debug"

	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}
	if cfg.Analysis.Language != "english" || cfg.Analysis.Lowercase || !cfg.Analysis.RemoveStopwords {
		t.Fatalf("unexpected analysis section: %+v", cfg.Analysis)
	}
	if got := strings.Join(cfg.Analysis.ExtraStopwords, ","); got != "lol,xd" {
		t.Fatalf("expected trimmed, deduplicated extras, got %q", got)
	}
	if cfg.Analysis.TopN != 10 {
		t.Fatalf("unexpected top_n: %d", cfg.Analysis.TopN)
	}
	if cfg.Resources.Source != config.SourceCache {
		t.Fatalf("expected normalized source, got %q", cfg.Resources.Source)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected normalized logging, got %+v", cfg.Logging)
	}
	// Unset keys keep their defaults.
	if cfg.Resources.DownloadURL != config.Default().Resources.DownloadURL {
		t.Fatalf("unexpected download url: %q", cfg.Resources.DownloadURL)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	if info, err := os.Stat(cfg.Resources.Dir); err != nil || !info.IsDir() {
		t.Fatalf("expected resource dir to exist: %v", err)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "lexstat.toml")
	if err := os.WriteFile(configPath, []byte("[analysis]\nlanguaje = \"es\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, _, _, err := config.Load(configPath)
	if err == nil || !strings.Contains(err.Error(), "languaje") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	override := filepath.Join(t.TempDir(), "nltk")
	t.Setenv("LEXSTAT_RESOURCE_DIR", override)
	t.Setenv("LEXSTAT_LOG_LEVEL", "WARN")

	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Resources.Dir != override {
		t.Fatalf("expected env resource dir, got %q", cfg.Resources.Dir)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("expected env log level, got %q", cfg.Logging.Level)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{"defaults", func(*config.Config) {}, ""},
		{"negative top", func(c *config.Config) { c.Analysis.TopN = -1 }, "analysis.top_n"},
		{"negative min length", func(c *config.Config) { c.Analysis.MinTokenLength = -2 }, "analysis.min_token_length"},
		{"bad source", func(c *config.Config) { c.Resources.Source = "s3" }, "resources.source"},
		{"bad url", func(c *config.Config) { c.Resources.DownloadURL = "ftp://example.com/x.zip" }, "resources.download_url"},
		{"bad format", func(c *config.Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"bad level", func(c *config.Config) { c.Logging.Level = "trace" }, "logging.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestCreateSampleLoads(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	cfg, _, exists, err := config.Load(target)
	if err != nil {
		t.Fatalf("sample config must load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	if len(cfg.Analysis.ExtraStopwords) == 0 {
		t.Fatal("expected sample extra stop words")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := config.Default()
	out, err := cfg.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	for _, want := range []string{"[analysis]", "[resources]", "[logging]", "top_n = 5"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in encoded config:\n%s", want, out)
		}
	}
}
