package gallery

import (
	"errors"
	"fmt"
)

// State is the lifecycle state of the gallery.
type State int

const (
	Idle State = iota
	Loading
	Ready
	Playing
	Paused
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Event drives a state transition.
type Event int

const (
	EventFetch Event = iota
	EventLoaded
	EventFailed
	EventSettle  // failure resolved with play disabled
	EventRestore // failure resolved while a previous pool stays playable
	EventPlay
	EventPause
)

func (e Event) String() string {
	switch e {
	case EventFetch:
		return "fetch"
	case EventLoaded:
		return "loaded"
	case EventFailed:
		return "failed"
	case EventSettle:
		return "settle"
	case EventRestore:
		return "restore"
	case EventPlay:
		return "play"
	case EventPause:
		return "pause"
	default:
		return fmt.Sprintf("event(%d)", int(e))
	}
}

// ErrNotPermitted is returned for an event the current state does not accept.
var ErrNotPermitted = errors.New("action not permitted")

type transition struct {
	from  State
	event Event
}

// transitions is the complete table; any pair missing from it is refused.
var transitions = map[transition]State{
	{Idle, EventFetch}:    Loading,
	{Ready, EventFetch}:   Loading,
	{Playing, EventFetch}: Loading,
	{Paused, EventFetch}:  Loading,
	{Failed, EventFetch}:  Loading,

	{Loading, EventLoaded}: Ready,
	{Loading, EventFailed}: Failed,

	{Failed, EventSettle}:  Idle,
	{Failed, EventRestore}: Ready,

	{Ready, EventPlay}:    Playing,
	{Paused, EventPlay}:   Playing,
	{Playing, EventPause}: Paused,
}

// next returns the state reached from s on e.
func next(s State, e Event) (State, error) {
	to, ok := transitions[transition{s, e}]
	if !ok {
		return s, fmt.Errorf("%w: %s while %s", ErrNotPermitted, e, s)
	}
	return to, nil
}
