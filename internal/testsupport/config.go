package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lexstat/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// Downloads are disabled unless an option enables them.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Resources.Dir = filepath.Join(base, "resources")
	cfgVal.Resources.Download = false
	cfgVal.Logging.Level = "error"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithCacheSource switches the config to the disk cache provider and points
// downloads at url. An empty url keeps downloads disabled.
func WithCacheSource(url string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Resources.Source = config.SourceCache
		if url != "" {
			b.cfg.Resources.Download = true
			b.cfg.Resources.DownloadURL = url
		}
	}
}

// WithAnalysis overrides the analysis section.
func WithAnalysis(fn func(*config.Analysis)) ConfigOption {
	return func(b *configBuilder) {
		fn(&b.cfg.Analysis)
	}
}

// WithCachedStopWords writes a stop-word list into the resource cache.
func WithCachedStopWords(language string, words ...string) ConfigOption {
	return func(b *configBuilder) {
		content := strings.Join(words, "\n") + "\n"
		WriteText(b.t, filepath.Join(b.cfg.Resources.Dir, "stopwords", language), content)
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Resources.Dir)
}

// WriteConfig encodes cfg as TOML at path.
func WriteConfig(t testing.TB, path string, cfg *config.Config) {
	t.Helper()

	encoded, err := cfg.Encode()
	if err != nil {
		t.Fatalf("encode config: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(encoded), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}
