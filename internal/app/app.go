package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/five82/artgrid/internal/collect"
	"github.com/five82/artgrid/internal/config"
	"github.com/five82/artgrid/internal/gallery"
	"github.com/five82/artgrid/internal/itunes"
	"github.com/five82/artgrid/internal/logging"
	"github.com/five82/artgrid/internal/prefs"
	"github.com/five82/artgrid/internal/ui"
)

// Options configure the artgrid application. Zero values defer to prefs and
// then to the config file.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/artgrid/prefs.toml
	Term       string
	Media      string
	Interval   time.Duration
	AutoFetch  bool
}

// session is the resolved startup state handed to the UI.
type session struct {
	term      string
	media     itunes.Media
	interval  time.Duration
	autoFetch bool
}

// resolve merges command line options, remembered prefs and config, in that
// order of precedence.
func resolve(opts Options, cfg config.Config, p prefs.Prefs) (session, error) {
	s := session{
		term:     strings.TrimSpace(opts.Term),
		media:    cfg.Media,
		interval: cfg.SwapInterval,
	}
	if s.term == "" {
		s.term = p.Term
	}

	switch {
	case strings.TrimSpace(opts.Media) != "":
		media, err := itunes.ParseMedia(opts.Media)
		if err != nil {
			return session{}, err
		}
		s.media = media
	case p.Media.Valid():
		s.media = p.Media
	}

	if opts.Interval < 0 {
		return session{}, fmt.Errorf("interval must be positive, got %v", opts.Interval)
	}
	if opts.Interval > 0 {
		s.interval = opts.Interval
	}

	s.autoFetch = opts.AutoFetch && s.term != ""
	return s, nil
}

// Run boots the artgrid TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logs, err := logging.Setup(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer logs.Close()

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	s, err := resolve(opts, cfg, userPrefs)
	if err != nil {
		return err
	}

	client := itunes.NewClient(itunes.ClientOptions{
		UserAgent:         cfg.UserAgent,
		RequestsPerMinute: cfg.RequestsPerMinute,
	})
	loader := &gallery.Loader{
		Searcher:  client,
		Collector: collect.New(cfg.CollectDelay),
		Endpoint:  cfg.Endpoint,
		Limit:     cfg.Limit,
	}

	log.Printf("artgrid starting: endpoint=%s limit=%d media=%s interval=%v", cfg.Endpoint, cfg.Limit, s.media, s.interval)

	uiCtx, stop := context.WithCancel(ctx)
	defer stop()
	g, gctx := errgroup.WithContext(uiCtx)

	g.Go(func() error {
		defer stop()
		return ui.Run(ui.Options{
			Context:      gctx,
			Loader:       loader,
			SwapInterval: s.interval,
			Term:         s.term,
			Media:        s.media,
			ThemeName:    userPrefs.Theme,
			PrefsPath:    opts.PrefsPath,
			LogPath:      cfg.LogFile,
			AutoFetch:    s.autoFetch,
		})
	})

	g.Go(func() error {
		<-gctx.Done()
		if err := ctx.Err(); err != nil {
			log.Printf("artgrid stopping: %v", err)
		} else {
			log.Printf("artgrid stopping: user quit")
		}
		return nil
	})

	return g.Wait()
}
