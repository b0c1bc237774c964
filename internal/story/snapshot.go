package story

import (
	"errors"
	"fmt"
)

// Phase is the lifecycle position of a story list.
type Phase int

const (
	PhaseInitial Phase = iota
	PhaseFetching
	PhaseLoaded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseInitial:
		return "initial"
	case PhaseFetching:
		return "fetching"
	case PhaseLoaded:
		return "loaded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Done reports whether no further transition can happen.
func (p Phase) Done() bool { return p == PhaseLoaded || p == PhaseFailed }

// ErrInvalidTransition is returned when an event does not apply to the
// current phase.
var ErrInvalidTransition = errors.New("story: invalid transition")

// Snapshot is an immutable view of a story list. The zero value is not
// useful; start from Initial.
type Snapshot struct {
	phase   Phase
	stories []Story
	err     error
}

// Initial returns the snapshot every list starts from: the placeholder
// sequence in PhaseInitial.
func Initial() Snapshot {
	return Snapshot{phase: PhaseInitial, stories: Placeholder()}
}

func (s Snapshot) Phase() Phase { return s.phase }

// Err is the failure that moved the list into PhaseFailed, nil otherwise.
func (s Snapshot) Err() error { return s.err }

func (s Snapshot) Len() int { return len(s.stories) }

// At returns the i-th story.
func (s Snapshot) At(i int) Story { return s.stories[i] }

// Stories returns a copy of the sequence.
func (s Snapshot) Stories() []Story {
	out := make([]Story, len(s.stories))
	copy(out, s.stories)
	return out
}

// Placeholder reports whether the snapshot still shows the sample data.
func (s Snapshot) Placeholder() bool { return s.phase != PhaseLoaded }

// Event drives Transition.
type Event interface {
	event()
}

// FetchStarted moves a list from Initial to Fetching.
type FetchStarted struct{}

// FetchSucceeded replaces the whole sequence.
type FetchSucceeded struct {
	Stories []Story
}

// FetchFailed ends the fetch; the placeholders stay in place.
type FetchFailed struct {
	Err error
}

func (FetchStarted) event()   {}
func (FetchSucceeded) event() {}
func (FetchFailed) event()    {}

// Transition applies ev to s. The machine only moves forward:
// Initial -> Fetching -> Loaded | Failed. Anything else returns s unchanged
// together with ErrInvalidTransition.
func Transition(s Snapshot, ev Event) (Snapshot, error) {
	switch ev := ev.(type) {
	case FetchStarted:
		if s.phase == PhaseInitial {
			return Snapshot{phase: PhaseFetching, stories: s.stories}, nil
		}
	case FetchSucceeded:
		if s.phase == PhaseFetching {
			stories := make([]Story, len(ev.Stories))
			copy(stories, ev.Stories)
			return Snapshot{phase: PhaseLoaded, stories: stories}, nil
		}
	case FetchFailed:
		if s.phase == PhaseFetching {
			err := ev.Err
			if err == nil {
				err = errors.New("story: fetch failed")
			}
			return Snapshot{phase: PhaseFailed, stories: s.stories, err: err}, nil
		}
	}
	return s, fmt.Errorf("%w: %T in phase %s", ErrInvalidTransition, ev, s.phase)
}
