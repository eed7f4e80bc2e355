package resources

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/flock"

	"lexstat/internal/fileutil"
	"lexstat/internal/logging"
)

const (
	// DefaultDownloadURL points at the NLTK stop-word corpus archive.
	DefaultDownloadURL     = "https://raw.githubusercontent.com/nltk/nltk_data/gh-pages/packages/corpora/stopwords.zip"
	defaultDownloadTimeout = 60 * time.Second
	lockRetryDelay         = 100 * time.Millisecond
	maxArchiveBytes        = 32 << 20
	maxListBytes           = 1 << 20
)

// CatalogOptions configures a disk-backed Catalog.
type CatalogOptions struct {
	Dir         string
	DownloadURL string
	Download    bool
	Timeout     time.Duration
	Client      *http.Client
	Logger      *slog.Logger
}

// Catalog serves stop-word lists from a cache directory, downloading the
// stop-word archive once when a requested list is missing.
//
// Lists live at <dir>/stopwords/<language>, one word per line. Downloads are
// serialized in-process by a mutex and across processes by a file lock on
// <dir>/.lock. A failed download is reported to the caller and never retried
// automatically.
type Catalog struct {
	dir         string
	downloadURL string
	download    bool
	client      *http.Client
	logger      *slog.Logger
	lock        *flock.Flock

	mu        sync.Mutex
	lists     map[string][]string
	downloads int
}

// NewCatalog creates a catalog rooted at opts.Dir.
func NewCatalog(opts CatalogOptions) (*Catalog, error) {
	dir := strings.TrimSpace(opts.Dir)
	if dir == "" {
		return nil, errors.New("resource catalog directory is required")
	}
	downloadURL := strings.TrimSpace(opts.DownloadURL)
	if downloadURL == "" {
		downloadURL = DefaultDownloadURL
	}
	client := opts.Client
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultDownloadTimeout
		}
		client = &http.Client{Timeout: timeout}
	}
	return &Catalog{
		dir:         dir,
		downloadURL: downloadURL,
		download:    opts.Download,
		client:      client,
		logger:      logging.NewComponentLogger(opts.Logger, "resources"),
		lock:        flock.New(filepath.Join(dir, ".lock")),
		lists:       make(map[string][]string),
	}, nil
}

// Dir returns the cache directory.
func (c *Catalog) Dir() string {
	return c.dir
}

// Path returns the on-disk location of a language's stop-word list.
func (c *Catalog) Path(language string) string {
	return filepath.Join(c.dir, "stopwords", strings.ToLower(strings.TrimSpace(language)))
}

// Cached reports whether a language's list is present on disk.
func (c *Catalog) Cached(language string) bool {
	return fileutil.FileExists(c.Path(language))
}

// Downloads returns how many archive downloads this catalog has performed.
func (c *Catalog) Downloads() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.downloads
}

// Ensure makes the named resource available on disk.
func (c *Catalog) Ensure(ctx context.Context, name string) error {
	lang, err := ParseName(name)
	if err != nil {
		return err
	}
	if c.Cached(lang) {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ensureLocked(ctx, lang)
}

// StopWords returns the stop-word list for language, acquiring it if needed.
func (c *Catalog) StopWords(ctx context.Context, language string) ([]string, error) {
	lang, err := ParseName(StopWordsName(language))
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if words, ok := c.lists[lang]; ok {
		return append([]string(nil), words...), nil
	}
	if err := c.ensureLocked(ctx, lang); err != nil {
		return nil, err
	}
	file, err := os.Open(c.Path(lang))
	if err != nil {
		return nil, unavailable(lang, err.Error())
	}
	defer file.Close()
	words, err := ParseWordList(file)
	if err != nil {
		return nil, unavailable(lang, err.Error())
	}
	c.lists[lang] = words
	c.logger.Debug("stop words loaded",
		logging.String(logging.FieldLanguage, lang),
		logging.Int("words", len(words)),
	)
	return append([]string(nil), words...), nil
}

// ensureLocked must be called with c.mu held.
func (c *Catalog) ensureLocked(ctx context.Context, lang string) error {
	if c.Cached(lang) {
		return nil
	}
	if !c.download {
		return unavailable(lang, fmt.Sprintf("not cached in %s and downloads are disabled", c.dir))
	}

	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return unavailable(lang, fmt.Sprintf("create cache directory: %v", err))
	}
	locked, err := c.lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return unavailable(lang, fmt.Sprintf("acquire cache lock: %v", err))
	}
	if !locked {
		return unavailable(lang, "cache lock not acquired")
	}
	defer func() {
		_ = c.lock.Unlock()
	}()

	// Another process may have filled the cache while we waited on the lock.
	if c.Cached(lang) {
		return nil
	}

	if err := c.fetch(ctx); err != nil {
		logging.WarnWithContext(c.logger, "stop-word download failed", "resource_download_failed",
			logging.String(logging.FieldLanguage, lang),
			logging.String("url", c.downloadURL),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check network access, set resources.download_url, or use resources.source = \"bundled\""),
			logging.String(logging.FieldImpact, "stop-word removal is unavailable for this run"),
		)
		return unavailable(lang, err.Error())
	}
	if !c.Cached(lang) {
		return unavailable(lang, "archive has no list for this language")
	}
	return nil
}

func (c *Catalog) fetch(ctx context.Context) error {
	c.logger.Info("downloading stop-word archive", logging.String("url", c.downloadURL))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.downloadURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("download stop words: %w", err)
	}
	defer resp.Body.Close()
	c.downloads++

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download stop words: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxArchiveBytes+1))
	if err != nil {
		return fmt.Errorf("download stop words: %w", err)
	}
	if len(data) > maxArchiveBytes {
		return fmt.Errorf("download stop words: archive exceeds %d bytes", maxArchiveBytes)
	}

	written, err := c.extract(data)
	if err != nil {
		return err
	}
	c.logger.Debug("stop-word archive extracted",
		logging.String("dir", c.dir),
		logging.Int("languages", written),
		logging.Int("bytes", len(data)),
	)
	return nil
}

// extract writes every stopwords/<language> member of the archive into the
// cache and returns how many lists were written.
func (c *Catalog) extract(data []byte) (int, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("open stop-word archive: %w", err)
	}

	written := 0
	for _, file := range zr.File {
		if file.FileInfo().IsDir() {
			continue
		}
		dir, lang := path.Split(file.Name)
		if path.Base(strings.TrimSuffix(dir, "/")) != "stopwords" || lang == "" {
			continue
		}
		if strings.EqualFold(lang, "README") || strings.Contains(lang, ".") {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return written, fmt.Errorf("open archive entry %s: %w", file.Name, err)
		}
		content, err := io.ReadAll(io.LimitReader(rc, maxListBytes+1))
		rc.Close()
		if err != nil {
			return written, fmt.Errorf("read archive entry %s: %w", file.Name, err)
		}
		if len(content) > maxListBytes {
			return written, fmt.Errorf("archive entry %s exceeds %d bytes", file.Name, maxListBytes)
		}
		if err := fileutil.WriteFileAtomic(c.Path(lang), content, 0o644); err != nil {
			return written, fmt.Errorf("write %s stop words: %w", lang, err)
		}
		written++
	}
	if written == 0 {
		return 0, errors.New("stop-word archive contains no lists")
	}
	return written, nil
}
