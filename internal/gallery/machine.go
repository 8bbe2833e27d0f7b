package gallery

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/five82/artgrid/internal/collect"
)

// Options configure a Machine.
type Options struct {
	Display      Display
	Reporter     ErrorReporter
	SwapInterval time.Duration // zero uses DefaultSwapInterval
	Rand         *rand.Rand    // nil uses a time-seeded source
}

// Machine owns the gallery lifecycle: which actions are allowed, the
// retained pool, the play toggle and the swap scheduler.
//
// A Machine is not safe for concurrent use. Every method must be called from
// the single loop that also owns the Display.
type Machine struct {
	state     State
	toggles   int
	pool      collect.Pool
	scheduler Scheduler

	triggerEnabled bool
	playEnabled    bool

	display  Display
	reporter ErrorReporter
	interval time.Duration
	rng      *rand.Rand
}

// NewMachine returns an Idle machine and draws its initial display state.
func NewMachine(opts Options) *Machine {
	m := &Machine{
		state:    Idle,
		display:  opts.Display,
		reporter: opts.Reporter,
		interval: opts.SwapInterval,
		rng:      opts.Rand,
	}
	if m.display == nil {
		m.display = nopDisplay{}
	}
	if m.reporter == nil {
		m.reporter = nopReporter{}
	}
	if m.interval <= 0 {
		m.interval = DefaultSwapInterval
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	for i := 0; i < GridSize; i++ {
		m.display.SetPlaceholder(i)
	}
	m.display.SetProgress(0)
	m.display.SetStatus(StatusPrompt)
	m.display.SetPlayLabel(LabelPlay)
	m.setTrigger(true)
	m.setPlay(false)
	return m
}

// State returns the current state.
func (m *Machine) State() State { return m.state }

// Toggles returns the play toggle count; its parity selects play or pause.
func (m *Machine) Toggles() int { return m.toggles }

// Interval returns the swap tick period.
func (m *Machine) Interval() time.Duration { return m.interval }

// CanFetch reports whether a fetch may be triggered now.
func (m *Machine) CanFetch() bool { return m.triggerEnabled && m.state != Loading }

// CanPlay reports whether the play toggle is usable now.
func (m *Machine) CanPlay() bool {
	if !m.playEnabled {
		return false
	}
	_, err := next(m.state, m.toggleEvent())
	return err == nil
}

// Pool returns a copy of the retained pool.
func (m *Machine) Pool() collect.Pool { return m.pool.Clone() }

// BeginFetch moves to Loading. Any running swap run is stopped and the play
// toggle is reset before the controls are disabled.
func (m *Machine) BeginFetch() error {
	if err := m.fire(EventFetch); err != nil {
		return err
	}
	m.scheduler.Stop()
	m.toggles = 0
	m.display.SetPlayLabel(LabelPlay)
	m.display.SetStatus(StatusLoading)
	m.setTrigger(false)
	m.setPlay(false)
	m.display.SetProgress(0)
	return nil
}

// Progress forwards a collection progress fraction while Loading.
func (m *Machine) Progress(fraction float64) {
	if m.state != Loading {
		return
	}
	m.display.SetProgress(fraction)
}

// Complete accepts pool as the new grid content. The first GridSize entries
// fill the slots in order and the previous pool is discarded.
func (m *Machine) Complete(uri string, pool collect.Pool) error {
	if m.state != Loading {
		return fmt.Errorf("%w: %s while %s", ErrNotPermitted, EventLoaded, m.state)
	}
	if len(pool) < collect.Quota {
		err := &collect.InsufficientResultsError{Count: len(pool), Required: collect.Quota, Stage: collect.StageDistinct}
		m.Fail(uri, err)
		return err
	}
	if err := m.fire(EventLoaded); err != nil {
		return err
	}

	m.pool = pool
	for i := 0; i < GridSize; i++ {
		m.display.SetSlot(i, m.pool[i])
	}
	m.display.SetProgress(1)
	m.display.SetStatus(uri)
	m.setPlay(true)
	m.setTrigger(true)
	return nil
}

// Fail records a failed attempt and returns to a state from which a new
// fetch is always possible. Play stays usable only when the failure was a
// quota miss and a previously accepted pool is still held.
func (m *Machine) Fail(uri string, cause error) {
	if err := m.fire(EventFailed); err != nil {
		return
	}

	hasPrevious := len(m.pool) >= collect.Quota
	var insufficient *collect.InsufficientResultsError
	playable := hasPrevious && errors.As(cause, &insufficient)

	if hasPrevious {
		m.display.SetProgress(1)
	}
	m.setPlay(playable)
	m.setTrigger(true)
	m.display.SetStatus(StatusFailed)
	m.reporter.ReportError(cause, uri)

	settle := EventSettle
	if playable {
		settle = EventRestore
	}
	_ = m.fire(settle)
}

// TogglePlay starts or stops the swap run depending on the toggle parity.
// When a run starts, the returned ticket must accompany every tick.
func (m *Machine) TogglePlay() (Ticket, bool, error) {
	if !m.playEnabled {
		return 0, false, fmt.Errorf("%w: %s while play is disabled", ErrNotPermitted, m.toggleEvent())
	}
	if err := m.fire(m.toggleEvent()); err != nil {
		return 0, false, err
	}
	m.toggles++
	if m.state == Playing {
		ticket := m.scheduler.Start()
		m.display.SetPlayLabel(LabelPause)
		return ticket, true, nil
	}
	m.scheduler.Stop()
	m.display.SetPlayLabel(LabelPlay)
	return 0, false, nil
}

// Tick applies one swap for ticket. It reports false, and changes nothing,
// when the ticket belongs to a stopped run; the caller must then stop
// scheduling ticks for it.
func (m *Machine) Tick(ticket Ticket) bool {
	if m.state != Playing || !m.scheduler.Valid(ticket) {
		return false
	}
	slot, ok := Swap(m.pool, m.rng)
	if !ok {
		// Accepted pools always hold a hidden entry; keep the run alive regardless.
		return true
	}
	m.display.SetSlot(slot, m.pool[slot])
	return true
}

func (m *Machine) toggleEvent() Event {
	if m.toggles%2 == 0 {
		return EventPlay
	}
	return EventPause
}

func (m *Machine) fire(e Event) error {
	to, err := next(m.state, e)
	if err != nil {
		return err
	}
	m.state = to
	return nil
}

func (m *Machine) setTrigger(enabled bool) {
	m.triggerEnabled = enabled
	m.display.SetTriggerEnabled(enabled)
}

func (m *Machine) setPlay(enabled bool) {
	m.playEnabled = enabled
	m.display.SetPlayEnabled(enabled)
}
