package gallery

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/five82/artgrid/internal/collect"
	"github.com/five82/artgrid/internal/itunes"
)

// LoadKind classifies a LoadEvent.
type LoadKind int

const (
	LoadProgress LoadKind = iota
	LoadSucceeded
	LoadFailed
)

// LoadEvent is one message from a running load attempt. Events of an
// attempt arrive in order and end with exactly one LoadSucceeded or
// LoadFailed.
type LoadEvent struct {
	Kind     LoadKind
	Attempt  string
	URI      string
	Progress float64
	Pool     collect.Pool
	Err      error
}

// Request is what the user asked to search for.
type Request struct {
	Term  string
	Media itunes.Media
}

// Loader runs the fetch and collect workflow for one request.
type Loader struct {
	Searcher  itunes.Searcher
	Collector *collect.Collector
	Endpoint  string
	Limit     int
}

const loadEventBuffer = 64

// Start runs the workflow on its own goroutine and returns the channel its
// events arrive on. The channel is closed after the final event. When ctx is
// cancelled, pending events are dropped.
func (l *Loader) Start(ctx context.Context, req Request) <-chan LoadEvent {
	events := make(chan LoadEvent, loadEventBuffer)
	go func() {
		defer close(events)
		l.Run(ctx, req, func(ev LoadEvent) {
			select {
			case events <- ev:
			case <-ctx.Done():
			}
		})
	}()
	return events
}

// Run executes the workflow synchronously, handing every event to emit.
// Every failure is caught here and reported as a LoadFailed event carrying
// the attempt's link.
func (l *Loader) Run(ctx context.Context, req Request, emit func(LoadEvent)) {
	attempt := uuid.NewString()
	limit := l.Limit
	if limit <= 0 {
		limit = itunes.DefaultLimit
	}
	media := req.Media
	if !media.Valid() {
		media = itunes.DefaultMedia
	}
	uri := itunes.BuildLink(l.Endpoint, req.Term, media, limit)
	log.Printf("load %s: searching %s", attempt, uri)

	fail := func(err error) {
		log.Printf("load %s: failed (%s): %v", attempt, classify(err), err)
		emit(LoadEvent{Kind: LoadFailed, Attempt: attempt, URI: uri, Err: err})
	}

	if l.Searcher == nil {
		fail(fmt.Errorf("loader has no searcher"))
		return
	}
	resp, err := l.Searcher.Fetch(ctx, uri)
	if err != nil {
		fail(err)
		return
	}

	collector := l.Collector
	if collector == nil {
		collector = collect.New(collect.DefaultDelayPerResult)
	}
	pool, err := collector.Collect(ctx, resp, func(f float64) {
		emit(LoadEvent{Kind: LoadProgress, Attempt: attempt, URI: uri, Progress: f})
	})
	if err != nil {
		fail(err)
		return
	}

	log.Printf("load %s: accepted %d distinct images from %d results", attempt, len(pool), resp.ResultCount)
	emit(LoadEvent{Kind: LoadSucceeded, Attempt: attempt, URI: uri, Pool: pool})
}

// classify names the failure category for logs.
func classify(err error) string {
	var (
		transport    *itunes.TransportError
		status       *itunes.HTTPStatusError
		malformed    *itunes.MalformedResponseError
		insufficient *collect.InsufficientResultsError
	)
	switch {
	case errors.As(err, &status):
		return fmt.Sprintf("http %d", status.StatusCode)
	case errors.As(err, &malformed):
		return "malformed response"
	case errors.As(err, &insufficient):
		return "insufficient results, " + insufficient.Stage.String()
	case errors.As(err, &transport):
		return "transport"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "other"
	}
}
