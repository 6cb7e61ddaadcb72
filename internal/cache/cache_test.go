package cache

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matheuskafuri/verse/internal/verse"
)

func testCache(t *testing.T) *Cache {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "cache.json"))
}

func sampleEntry(date string) Entry {
	return Entry{
		Date: date,
		Record: verse.Record{
			Reference: "John 3:16",
			Body:      "For God so loved the world",
			Provider:  verse.ProviderPrimary,
		},
	}
}

func TestLoadMissingFile(t *testing.T) {
	c := testCache(t)
	e, ok := c.Load()
	if ok || e != nil {
		t.Errorf("expected miss for missing file, got %+v", e)
	}
}

func TestLoadMalformed(t *testing.T) {
	tests := []string{
		"not json",
		"{\"date\":",
		"{}",
		"[]",
		`{"date":"2024-05-01"}`,
		`{"date":"2024-05-01","reference":"x"}`,
		`{"date":"2024-05-01","reference":"x","body":"   "}`,
		`{"reference":"John 3:16","body":"For God so loved","provider":"Primary"}`,
	}
	for _, content := range tests {
		c := testCache(t)
		if err := os.WriteFile(c.Path(), []byte(content), 0o644); err != nil {
			t.Fatalf("writing cache: %v", err)
		}
		e, ok := c.Load()
		if ok || e != nil {
			t.Errorf("Load(%q): expected miss, got %+v", content, e)
		}
	}
}

func TestStoreAndLoad(t *testing.T) {
	c := testCache(t)
	want := sampleEntry("2024-05-01")

	if err := c.Store(want); err != nil {
		t.Fatalf("store: %v", err)
	}

	got, ok := c.Load()
	if !ok {
		t.Fatal("expected hit after store")
	}
	if *got != want {
		t.Errorf("Load() = %+v, want %+v", *got, want)
	}
}

func TestStoreIsIdempotent(t *testing.T) {
	c := testCache(t)
	e := sampleEntry("2024-05-01")

	if err := c.Store(e); err != nil {
		t.Fatalf("first store: %v", err)
	}
	first, err := os.ReadFile(c.Path())
	if err != nil {
		t.Fatalf("reading cache: %v", err)
	}
	if err := c.Store(e); err != nil {
		t.Fatalf("second store: %v", err)
	}
	second, err := os.ReadFile(c.Path())
	if err != nil {
		t.Fatalf("reading cache: %v", err)
	}
	if string(first) != string(second) {
		t.Errorf("expected identical content, got %q and %q", first, second)
	}
}

func TestStoreOverwrites(t *testing.T) {
	c := testCache(t)
	if err := c.Store(sampleEntry("2024-04-30")); err != nil {
		t.Fatalf("store: %v", err)
	}
	next := sampleEntry("2024-05-01")
	next.Provider = verse.ProviderFallback
	if err := c.Store(next); err != nil {
		t.Fatalf("store: %v", err)
	}

	got, ok := c.Load()
	if !ok {
		t.Fatal("expected hit")
	}
	if got.Date != "2024-05-01" || got.Provider != verse.ProviderFallback {
		t.Errorf("expected overwritten entry, got %+v", got)
	}
}

func TestStorePersistedShape(t *testing.T) {
	c := testCache(t)
	if err := c.Store(sampleEntry("2024-05-01")); err != nil {
		t.Fatalf("store: %v", err)
	}
	data, err := os.ReadFile(c.Path())
	if err != nil {
		t.Fatalf("reading cache: %v", err)
	}
	want := `{"date":"2024-05-01","reference":"John 3:16","body":"For God so loved the world","provider":"Primary"}`
	if string(data) != want {
		t.Errorf("persisted = %s, want %s", data, want)
	}
}

func TestStoreCreatesDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "deep", "cache.json")
	c := New(path)

	if err := c.Store(sampleEntry("2024-05-01")); err != nil {
		t.Fatalf("store in nested dir: %v", err)
	}
	if _, err := os.Stat(filepath.Dir(path)); os.IsNotExist(err) {
		t.Error("expected directory to be created")
	}
}

func TestStoreWriteError(t *testing.T) {
	dir := t.TempDir()
	// A regular file where the directory should be.
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("writing blocker: %v", err)
	}
	c := New(filepath.Join(blocker, "cache.json"))

	err := c.Store(sampleEntry("2024-05-01"))
	var werr *WriteError
	if !errors.As(err, &werr) {
		t.Fatalf("expected *WriteError, got %v", err)
	}
	if werr.Path != c.Path() {
		t.Errorf("expected path %s, got %s", c.Path(), werr.Path)
	}
}

func TestIsStale(t *testing.T) {
	fresh := sampleEntry("2024-05-01")
	old := sampleEntry("2024-04-30")

	tests := []struct {
		name  string
		entry *Entry
		force bool
		today string
		want  bool
	}{
		{"empty", nil, false, "2024-05-01", true},
		{"empty forced", nil, true, "2024-05-01", true},
		{"same day", &fresh, false, "2024-05-01", false},
		{"same day forced", &fresh, true, "2024-05-01", true},
		{"previous day", &old, false, "2024-05-01", true},
		{"future date", &fresh, false, "2024-04-30", true},
		{"year apart", &fresh, false, "2025-05-01", true},
	}
	for _, tt := range tests {
		if got := IsStale(tt.entry, tt.force, tt.today); got != tt.want {
			t.Errorf("%s: IsStale = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsStaleAfterStore(t *testing.T) {
	c := testCache(t)
	today := Today(time.Now())
	if err := c.Store(sampleEntry(today)); err != nil {
		t.Fatalf("store: %v", err)
	}
	e, _ := c.Load()
	if IsStale(e, false, today) {
		t.Error("expected fresh entry right after store")
	}
	if !IsStale(e, true, today) {
		t.Error("expected force to mark entry stale")
	}
}

func TestToday(t *testing.T) {
	ts := time.Date(2024, 5, 1, 23, 59, 0, 0, time.Local)
	if got := Today(ts); got != "2024-05-01" {
		t.Errorf("Today = %s, want 2024-05-01", got)
	}
	if got := Today(ts.Add(2 * time.Minute)); got != "2024-05-02" {
		t.Errorf("Today after midnight = %s, want 2024-05-02", got)
	}
}
