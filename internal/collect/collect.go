// Package collect turns a search response into a pool of distinct artwork
// references, enforcing the minimum quota the gallery needs.
package collect

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/five82/artgrid/internal/itunes"
)

// Quota is the minimum number of distinct artwork references a search must
// yield before it is accepted.
const Quota = 21

// DefaultDelayPerResult scales the pause between appends so progress is
// visibly incremental.
const DefaultDelayPerResult = 4 * time.Millisecond

// Stage identifies which quota check rejected a response.
type Stage int

const (
	// StageReported is the check on the server-reported result count.
	StageReported Stage = iota
	// StageDistinct is the check on the distinct count after filtering.
	StageDistinct
)

func (s Stage) String() string {
	if s == StageReported {
		return "reported"
	}
	return "distinct"
}

// InsufficientResultsError reports a response that cannot fill the quota.
type InsufficientResultsError struct {
	Count    int
	Required int
	Stage    Stage
}

func (e *InsufficientResultsError) Error() string {
	return fmt.Sprintf("%d distinct results are found, but %d or more are needed", e.Count, e.Required)
}

// ProgressFunc receives the fraction of the response consumed so far.
type ProgressFunc func(fraction float64)

// Pool is an ordered set of artwork references in first-seen order.
type Pool []string

// Clone returns an independent copy of p.
func (p Pool) Clone() Pool {
	if p == nil {
		return nil
	}
	dup := make(Pool, len(p))
	copy(dup, p)
	return dup
}

// Collector deduplicates search results.
type Collector struct {
	// DelayPerResult bounds the random pause after each append at
	// DelayPerResult * resultCount. Zero disables the pause.
	DelayPerResult time.Duration
	// Rand drives the pause length; nil uses a time-seeded source.
	Rand *rand.Rand
}

// New returns a Collector with the given per-result delay.
func New(delayPerResult time.Duration) *Collector {
	return &Collector{DelayPerResult: delayPerResult}
}

// Collect builds the distinct pool from resp.
//
// A reported count below Quota fails before any result is inspected; a
// distinct count below Quota fails after the scan. On success the sink's
// last value is exactly 1.
func (c *Collector) Collect(ctx context.Context, resp *itunes.Response, sink ProgressFunc) (Pool, error) {
	if resp == nil {
		return nil, fmt.Errorf("collect: response is nil")
	}
	total := resp.ResultCount
	if total < Quota {
		return nil, &InsufficientResultsError{Count: total, Required: Quota, Stage: StageReported}
	}
	if sink == nil {
		sink = func(float64) {}
	}

	rng := c.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	sink(0)
	seen := make(map[string]struct{}, len(resp.Results))
	pool := make(Pool, 0, len(resp.Results))
	last := 0.0
	for i, result := range resp.Results {
		ref := result.Artwork()
		if ref == "" {
			continue
		}
		if _, dup := seen[ref]; dup {
			continue
		}
		seen[ref] = struct{}{}
		pool = append(pool, ref)

		if f := fraction(i, total); f > last {
			last = f
		}
		sink(last)

		if err := c.pause(ctx, rng, total); err != nil {
			return nil, err
		}
	}

	if len(pool) < Quota {
		return nil, &InsufficientResultsError{Count: len(pool), Required: Quota, Stage: StageDistinct}
	}
	sink(1)
	return pool, nil
}

// fraction keeps progress inside [0, 1) while results are still arriving.
func fraction(index, total int) float64 {
	if total <= 0 {
		return 0
	}
	f := float64(index) / float64(total)
	if f >= 1 {
		f = float64(total-1) / float64(total)
	}
	return f
}

func (c *Collector) pause(ctx context.Context, rng *rand.Rand, total int) error {
	if c.DelayPerResult <= 0 {
		return ctx.Err()
	}
	upper := int64(c.DelayPerResult) * int64(total)
	d := time.Duration(rng.Int63n(upper + 1))
	if d == 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
