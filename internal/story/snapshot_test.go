package story

import (
	"errors"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestInitialShowsPlaceholders(t *testing.T) {
	s := Initial()

	assert.Equal(t, PhaseInitial, s.Phase())
	assert.Equal(t, 5, s.Len())
	assert.Equal(t, true, s.Placeholder())
	for i := 0; i < s.Len(); i++ {
		assert.Equal(t, i, s.At(i).ID)
		assert.Equal(t, "user", s.At(i).By)
		assert.Equal(t, 126, s.At(i).Score)
	}
}

func TestTransitionLoaded(t *testing.T) {
	loaded := []Story{
		{ID: 101, By: "a", Score: 10, Title: "T1", URL: "http://x"},
		{ID: 102, By: "b", Score: 20, Title: "T2", URL: "http://y"},
	}

	s, err := Transition(Initial(), FetchStarted{})
	assert.Equal(t, nil, err)
	assert.Equal(t, PhaseFetching, s.Phase())
	assert.Equal(t, 5, s.Len())

	s, err = Transition(s, FetchSucceeded{Stories: loaded})
	assert.Equal(t, nil, err)
	assert.Equal(t, PhaseLoaded, s.Phase())
	assert.Equal(t, loaded, s.Stories())
	assert.Equal(t, false, s.Placeholder())

	// the snapshot owns its sequence
	loaded[0].Title = "changed"
	assert.Equal(t, "T1", s.At(0).Title)
}

func TestTransitionFailedKeepsPlaceholders(t *testing.T) {
	boom := errors.New("boom")

	s, _ := Transition(Initial(), FetchStarted{})
	s, err := Transition(s, FetchFailed{Err: boom})

	assert.Equal(t, nil, err)
	assert.Equal(t, PhaseFailed, s.Phase())
	assert.Equal(t, Placeholder(), s.Stories())
	assert.Equal(t, true, errors.Is(s.Err(), boom))
}

func TestTransitionRejectsOutOfOrderEvents(t *testing.T) {
	fetching, _ := Transition(Initial(), FetchStarted{})
	loaded, _ := Transition(fetching, FetchSucceeded{})
	failed, _ := Transition(fetching, FetchFailed{Err: errors.New("x")})

	tests := []struct {
		name string
		from Snapshot
		ev   Event
	}{
		{"succeed before start", Initial(), FetchSucceeded{}},
		{"fail before start", Initial(), FetchFailed{}},
		{"start twice", fetching, FetchStarted{}},
		{"restart loaded", loaded, FetchStarted{}},
		{"reload loaded", loaded, FetchSucceeded{}},
		{"restart failed", failed, FetchStarted{}},
		{"succeed after failure", failed, FetchSucceeded{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transition(tt.from, tt.ev)
			if !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("expected ErrInvalidTransition, got %v", err)
			}
			assert.Equal(t, tt.from.Phase(), got.Phase())
			assert.Equal(t, tt.from.Len(), got.Len())
		})
	}
}

func TestStoriesReturnsCopy(t *testing.T) {
	s := Initial()
	out := s.Stories()
	out[0].Title = "mutated"

	assert.Equal(t, placeholderTitle, s.At(0).Title)
}
