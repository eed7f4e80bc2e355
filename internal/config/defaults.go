package config

const (
	defaultConfigPath      = "~/.config/lexstat/config.toml"
	projectConfigName      = "lexstat.toml"
	defaultLanguage        = "es"
	defaultTopN            = 5
	defaultResourceDir     = "~/.local/share/lexstat/resources"
	defaultDownloadURL     = "https://raw.githubusercontent.com/nltk/nltk_data/gh-pages/packages/corpora/stopwords.zip"
	defaultDownloadTimeout = 60
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Resource sources.
const (
	SourceBundled = "bundled"
	SourceCache   = "cache"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Analysis: Analysis{
			Language:  defaultLanguage,
			Lowercase: true,
			TopN:      defaultTopN,
		},
		Resources: Resources{
			Source:          SourceBundled,
			Dir:             defaultResourceDir,
			Download:        true,
			DownloadURL:     defaultDownloadURL,
			DownloadTimeout: defaultDownloadTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
