package feed

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/assert/v2"

	"github.com/jwafle/topstories/internal/hackernews"
	"github.com/jwafle/topstories/internal/story"
)

func collect(ch <-chan story.Snapshot) []story.Snapshot {
	var out []story.Snapshot
	for s := range ch {
		out = append(out, s)
	}
	return out
}

func TestWatchLoaded(t *testing.T) {
	l := &Loader{Source: twoStorySource(), Count: 2}

	snaps := collect(Watch(context.Background(), l, hackernews.ListTop))

	assert.Equal(t, 2, len(snaps))
	assert.Equal(t, story.PhaseFetching, snaps[0].Phase())
	assert.Equal(t, 5, snaps[0].Len())
	assert.Equal(t, story.PhaseLoaded, snaps[1].Phase())
	assert.Equal(t, []story.Story{d101, d102}, snaps[1].Stories())
}

func TestWatchFailedKeepsPlaceholders(t *testing.T) {
	l := &Loader{Source: &fakeSource{idsErr: errors.New("offline")}, Count: 2}

	snaps := collect(Watch(context.Background(), l, hackernews.ListTop))

	assert.Equal(t, 2, len(snaps))
	last := snaps[1]
	assert.Equal(t, story.PhaseFailed, last.Phase())
	assert.Equal(t, story.Placeholder(), last.Stories())
	assert.NotEqual(t, nil, last.Err())
}

// blockedSource never answers until ctx is cancelled.
type blockedSource struct {
	started chan struct{}
}

func (b blockedSource) StoryIDs(ctx context.Context, list hackernews.List) ([]int, error) {
	close(b.started)
	<-ctx.Done()
	return nil, ctx.Err()
}

func (b blockedSource) Story(ctx context.Context, id int) (story.Story, error) {
	return story.Story{}, ctx.Err()
}

func TestWatchCancelledStillDeliversFailed(t *testing.T) {
	for i := 0; i < 50; i++ {
		ctx, cancel := context.WithCancel(context.Background())
		src := blockedSource{started: make(chan struct{})}
		ch := Watch(ctx, &Loader{Source: src, Count: 2}, hackernews.ListTop)

		<-src.started
		cancel()
		snaps := collect(ch)

		assert.Equal(t, 2, len(snaps))
		assert.Equal(t, story.PhaseFailed, snaps[1].Phase())
		assert.Equal(t, true, errors.Is(snaps[1].Err(), context.Canceled))
		assert.Equal(t, story.Placeholder(), snaps[1].Stories())
	}
}
