package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/matheuskafuri/verse/internal/cache"
	"github.com/matheuskafuri/verse/internal/clipboard"
	"github.com/matheuskafuri/verse/internal/config"
	"github.com/matheuskafuri/verse/internal/feed"
	"github.com/matheuskafuri/verse/internal/logger"
	"github.com/matheuskafuri/verse/internal/render"
	"github.com/matheuskafuri/verse/internal/verse"
	"github.com/spf13/cobra"
)

type verseOptions struct {
	force bool
	copy  bool
	auto  bool
}

type fetcher interface {
	Fetch(ctx context.Context) (verse.Record, error)
}

// app holds everything one invocation needs, resolved once at startup.
type app struct {
	cfg     *config.Config
	cache   *cache.Cache
	fetcher fetcher
	now     func() time.Time
	out     io.Writer
	copy    func(string) error
	logger  *slog.Logger
}

func newLogger() *slog.Logger {
	if flagVerbose {
		return logger.New(logger.WithLevel(slog.LevelDebug))
	}
	return logger.New()
}

func newApp(out io.Writer) (*app, error) {
	log := newLogger()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &app{
		cfg:   cfg,
		cache: cache.New(config.CachePath(), cache.WithLogger(log)),
		fetcher: feed.NewDefault(cfg.Primary.URL, cfg.Fallback.URL, cfg.TimeoutDuration(),
			feed.WithLogger(log)),
		now:    time.Now,
		out:    out,
		copy:   clipboard.Copy,
		logger: log,
	}, nil
}

func runVerse(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	return a.showVerse(cmd.Context(), verseFlags)
}

func (a *app) showVerse(ctx context.Context, opts verseOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	today := cache.Today(a.now())

	entry, _ := a.cache.Load()
	if cache.IsStale(entry, opts.force, today) {
		rec, err := a.fetcher.Fetch(ctx)
		if err != nil {
			return err
		}
		fresh := cache.Entry{Date: today, Record: rec}
		if err := a.cache.Store(fresh); err != nil {
			return err
		}
		entry = &fresh
	} else if opts.auto {
		a.logger.Debug("verse already shown today", "date", today)
		return nil
	}

	fmt.Fprint(a.out, render.Verse(entry.Record, a.cfg.SourceName(entry.Provider)))

	if opts.copy {
		if err := a.copy(entry.ClipboardText()); err != nil {
			return err
		}
		fmt.Fprintln(a.out, render.Notice("Copied to clipboard."))
	}
	return nil
}
