package web

import (
	"context"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/jwafle/topstories/internal/feed"
	"github.com/jwafle/topstories/internal/hackernews"
	"github.com/jwafle/topstories/internal/story"
)

// Board holds one story list container per list for the lifetime of the
// server. A list starts fetching the first time anyone asks for it and is
// never fetched again.
type Board struct {
	ctx    context.Context
	loader *feed.Loader
	logger logrus.FieldLogger

	mu    sync.Mutex
	lists map[hackernews.List]*boardList
}

type boardList struct {
	snap    story.Snapshot
	mounted bool
	subs    map[chan story.Snapshot]struct{}
}

// NewBoard returns a Board whose fetches run until ctx is cancelled.
func NewBoard(ctx context.Context, loader *feed.Loader, logger logrus.FieldLogger) *Board {
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	return &Board{
		ctx:    ctx,
		loader: loader,
		logger: logger,
		lists:  make(map[hackernews.List]*boardList),
	}
}

func (b *Board) get(l hackernews.List) *boardList {
	bl, ok := b.lists[l]
	if !ok {
		bl = &boardList{snap: story.Initial(), subs: make(map[chan story.Snapshot]struct{})}
		b.lists[l] = bl
	}
	return bl
}

// Done is closed when the board stops; no list changes after that.
func (b *Board) Done() <-chan struct{} {
	return b.ctx.Done()
}

// Snapshot returns the current snapshot of l without mounting it.
func (b *Board) Snapshot(l hackernews.List) story.Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.get(l).snap
}

// Mount starts the fetch for l if it has not started yet and returns the
// snapshot as it stands afterwards.
func (b *Board) Mount(l hackernews.List) story.Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	bl := b.get(l)
	if bl.mounted {
		return bl.snap
	}
	bl.mounted = true

	// The first snapshot from Watch is Fetching; apply it here so callers
	// never see Initial after mounting.
	if snap, err := story.Transition(bl.snap, story.FetchStarted{}); err == nil {
		bl.snap = snap
	}
	b.logger.WithField("list", l.String()).Info("list mounted")

	updates := feed.Watch(b.ctx, b.loader, l)
	go func() {
		for snap := range updates {
			if snap.Phase() == story.PhaseFetching {
				continue
			}
			b.publish(l, snap)
		}
	}()
	return bl.snap
}

func (b *Board) publish(l hackernews.List, snap story.Snapshot) {
	b.mu.Lock()
	defer b.mu.Unlock()

	bl := b.get(l)
	bl.snap = snap
	for ch := range bl.subs {
		// subscriber channels are buffered for the one remaining update
		select {
		case ch <- snap:
		default:
		}
	}
	if snap.Phase() == story.PhaseFailed {
		b.logger.WithField("list", l.String()).WithError(snap.Err()).Warn("list failed")
	}
}

// Subscribe returns the current snapshot of l and a channel that receives
// its later snapshots. Call cancel when done.
func (b *Board) Subscribe(l hackernews.List) (story.Snapshot, <-chan story.Snapshot, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	bl := b.get(l)
	ch := make(chan story.Snapshot, 1)
	bl.subs[ch] = struct{}{}
	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(bl.subs, ch)
	}
	return bl.snap, ch, cancel
}
