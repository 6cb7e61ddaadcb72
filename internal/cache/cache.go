package cache

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const dateLayout = "2006-01-02"

// WriteError reports a failure to persist the cache file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing cache %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Cache is the single-file daily verse cache.
type Cache struct {
	path   string
	logger *slog.Logger
}

type Option func(*Cache)

func WithLogger(l *slog.Logger) Option {
	return func(c *Cache) { c.logger = l }
}

// New returns a cache backed by the JSON file at path. The file and its
// directory are created lazily by Store.
func New(path string, opts ...Option) *Cache {
	c := &Cache{path: path, logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Cache) Path() string { return c.path }

// Load returns the cached entry. Any problem reading or parsing the file is
// a miss, never an error.
func (c *Cache) Load() (*Entry, bool) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if !os.IsNotExist(err) {
			c.logger.Debug("cache unreadable, treating as empty", "path", c.path, "err", err)
		}
		return nil, false
	}

	var e Entry
	if err := json.Unmarshal(data, &e); err != nil {
		c.logger.Debug("cache malformed, treating as empty", "path", c.path, "err", err)
		return nil, false
	}
	if e.Date == "" || !e.Valid() {
		c.logger.Debug("cache entry incomplete, treating as empty", "path", c.path)
		return nil, false
	}
	return &e, true
}

// Store replaces the cache file with e.
func (c *Cache) Store(e Entry) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return &WriteError{Path: c.path, Err: err}
	}
	data, err := json.Marshal(e)
	if err != nil {
		return &WriteError{Path: c.path, Err: err}
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return &WriteError{Path: c.path, Err: err}
	}
	c.logger.Debug("cache stored", "path", c.path, "date", e.Date, "provider", e.Provider)
	return nil
}

// IsStale reports whether entry must be refetched for today.
func IsStale(entry *Entry, force bool, today string) bool {
	return force || entry == nil || entry.Date != today
}

// Today returns the local calendar date of t.
func Today(t time.Time) string {
	return t.Local().Format(dateLayout)
}
