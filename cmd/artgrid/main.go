package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/artgrid/internal/app"
	"github.com/five82/artgrid/internal/gallery"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	prefsPath := flag.String("prefs", "", "override prefs path (optional)")
	term := flag.String("term", "", "search term (defaults to the last one used)")
	media := flag.String("media", "", "media type, e.g. music, movie, podcast (optional)")
	interval := flag.Duration("interval", 0, fmt.Sprintf("swap interval (optional, defaults to %v)", gallery.DefaultSwapInterval))
	fetch := flag.Bool("fetch", false, "search immediately on start when a term is set")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		Term:       *term,
		Media:      *media,
		Interval:   *interval,
		AutoFetch:  *fetch,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "artgrid: %v\n", err)
		return 1
	}
	return 0
}
