package gallery

import (
	"math/rand"
	"time"

	"github.com/five82/artgrid/internal/collect"
)

// DefaultSwapInterval is the period between swap ticks.
const DefaultSwapInterval = 2 * time.Second

// Ticket identifies one run of the scheduler. Ticks carry the ticket they
// were scheduled under; a ticket stops being valid once the run is stopped.
type Ticket uint64

// Scheduler tracks the current swap run. It has no timer of its own: the UI
// loop schedules each tick and asks Valid before applying it.
type Scheduler struct {
	generation Ticket
	running    bool
}

// Start begins a new run and returns its ticket.
func (s *Scheduler) Start() Ticket {
	s.generation++
	s.running = true
	return s.generation
}

// Stop ends the current run. Ticks already scheduled become stale.
func (s *Scheduler) Stop() {
	if !s.running {
		return
	}
	s.generation++
	s.running = false
}

// Running reports whether a run is active.
func (s *Scheduler) Running() bool {
	return s.running
}

// Valid reports whether t belongs to the active run.
func (s *Scheduler) Valid(t Ticket) bool {
	return s.running && t == s.generation
}

// Swap exchanges a random hidden pool entry with a random visible one and
// returns the visible slot that changed. Pools with no hidden entries are
// left alone.
func Swap(pool collect.Pool, rng *rand.Rand) (slot int, ok bool) {
	if len(pool) <= GridSize {
		return -1, false
	}
	pick := GridSize + rng.Intn(len(pool)-GridSize)
	change := rng.Intn(GridSize)
	pool[pick], pool[change] = pool[change], pool[pick]
	return change, true
}
