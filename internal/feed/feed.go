package feed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/matheuskafuri/verse/internal/verse"
)

// Source is one remote verse-of-the-day endpoint.
type Source interface {
	Fetch(ctx context.Context) (verse.Record, error)
}

// FetchError is returned when every source failed.
type FetchError struct {
	Primary  error
	Fallback error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching verse: all sources failed: primary: %v; fallback: %v", e.Primary, e.Fallback)
}

func (e *FetchError) Unwrap() []error {
	return []error{e.Primary, e.Fallback}
}

// Fetcher tries the primary source once, then the fallback once.
type Fetcher struct {
	primary  Source
	fallback Source
	timeout  time.Duration
	logger   *slog.Logger
}

type Option func(*Fetcher)

func WithLogger(l *slog.Logger) Option {
	return func(f *Fetcher) { f.logger = l }
}

func New(primary, fallback Source, timeout time.Duration, opts ...Option) *Fetcher {
	f := &Fetcher{
		primary:  primary,
		fallback: fallback,
		timeout:  timeout,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NewDefault wires the Atom primary and JSON fallback at the given URLs.
// Both share one client; each attempt is bounded by timeout.
func NewDefault(primaryURL, fallbackURL string, timeout time.Duration, opts ...Option) *Fetcher {
	client := &http.Client{Timeout: timeout}
	return New(NewAtomSource(primaryURL, client), NewJSONSource(fallbackURL, client), timeout, opts...)
}

func (f *Fetcher) Fetch(ctx context.Context) (verse.Record, error) {
	rec, primaryErr := f.attempt(ctx, f.primary, verse.ProviderPrimary)
	if primaryErr == nil {
		return rec, nil
	}
	// A cancelled parent means the fallback would fail the same way.
	if ctx.Err() != nil {
		return verse.Record{}, &FetchError{Primary: primaryErr, Fallback: ctx.Err()}
	}
	f.logger.Debug("primary source failed, trying fallback", "err", primaryErr)

	rec, fallbackErr := f.attempt(ctx, f.fallback, verse.ProviderFallback)
	if fallbackErr != nil {
		return verse.Record{}, &FetchError{Primary: primaryErr, Fallback: fallbackErr}
	}
	return rec, nil
}

func (f *Fetcher) attempt(ctx context.Context, src Source, provider string) (verse.Record, error) {
	if src == nil {
		return verse.Record{}, errors.New("source not configured")
	}
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	start := time.Now()
	rec, err := src.Fetch(ctx)
	if err != nil {
		return verse.Record{}, err
	}
	if !rec.Valid() {
		return verse.Record{}, fmt.Errorf("%s source returned an incomplete verse", provider)
	}
	rec.Provider = provider
	f.logger.Debug("verse fetched", "provider", provider, "reference", rec.Reference, "took", time.Since(start))
	return rec, nil
}
