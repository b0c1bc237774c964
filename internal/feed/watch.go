package feed

import (
	"context"

	"github.com/jwafle/topstories/internal/hackernews"
	"github.com/jwafle/topstories/internal/story"
)

// Watch drives one list lifetime in the background. The returned channel
// yields the Fetching snapshot, then the Loaded or Failed one, and is then
// closed. Cancelling ctx fails the load, so the final snapshot is always
// delivered.
func Watch(ctx context.Context, l *Loader, list hackernews.List) <-chan story.Snapshot {
	out := make(chan story.Snapshot, 2)

	go func() {
		defer close(out)

		snap, err := story.Transition(story.Initial(), story.FetchStarted{})
		if err != nil {
			return
		}
		out <- snap

		res := l.Load(ctx, list)
		if snap, err = story.Transition(snap, res.Event()); err != nil {
			return
		}
		// out holds both snapshots, so this never blocks
		out <- snap
	}()

	return out
}
