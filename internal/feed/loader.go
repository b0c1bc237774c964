// Package feed runs the fetch pipeline that turns a ranked identifier list
// into a loaded story sequence.
package feed

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/jwafle/topstories/internal/hackernews"
	"github.com/jwafle/topstories/internal/story"
)

// Source is the upstream the pipeline reads from. *hackernews.Client
// satisfies it.
type Source interface {
	StoryIDs(ctx context.Context, list hackernews.List) ([]int, error)
	Story(ctx context.Context, id int) (story.Story, error)
}

// Stage names the pipeline step that failed.
type Stage int

const (
	StageIDs Stage = iota
	StageStory
)

func (s Stage) String() string {
	if s == StageIDs {
		return "story ids"
	}
	return "story"
}

// Error is the typed failure carried by a Result.
type Error struct {
	Stage Stage
	List  hackernews.List
	ID    int // set for StageStory
	Err   error
}

func (e *Error) Error() string {
	if e.Stage == StageStory {
		return fmt.Sprintf("fetch %s %d: %v", e.Stage, e.ID, e.Err)
	}
	return fmt.Sprintf("fetch %s %s: %v", e.List, e.Stage, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Result is either a complete sequence or a failure, never both.
type Result struct {
	List    hackernews.List
	Stories []story.Story
	Err     error
}

// Event maps r onto the snapshot transition it causes.
func (r Result) Event() story.Event {
	if r.Err != nil {
		return story.FetchFailed{Err: r.Err}
	}
	return story.FetchSucceeded{Stories: r.Stories}
}

// Loader fetches the first Count stories of a list.
type Loader struct {
	Source Source
	Count  int
	// Concurrency > 1 fetches story records in parallel and reassembles them
	// in identifier order. 0 and 1 fetch one after another.
	Concurrency int
	Logger      logrus.FieldLogger
}

func (l *Loader) logger() logrus.FieldLogger {
	if l.Logger != nil {
		return l.Logger
	}
	d := logrus.New()
	d.SetOutput(io.Discard)
	return d
}

// Load runs the pipeline once. A failure at any step discards everything
// fetched so far.
func (l *Loader) Load(ctx context.Context, list hackernews.List) Result {
	log := l.logger().WithField("list", list.String())

	ids, err := l.Source.StoryIDs(ctx, list)
	if err != nil {
		log.WithError(err).Warn("story ids fetch failed")
		return Result{List: list, Err: &Error{Stage: StageIDs, List: list, Err: err}}
	}

	n := l.Count
	if n > len(ids) {
		n = len(ids)
	}
	if n < 0 {
		n = 0
	}
	ids = ids[:n]

	var stories []story.Story
	if l.Concurrency > 1 {
		stories, err = l.concurrent(ctx, ids)
	} else {
		stories, err = l.sequential(ctx, ids)
	}
	if err != nil {
		log.WithError(err).Warn("story fetch failed")
		if fe, ok := err.(*Error); ok {
			fe.List = list
		}
		return Result{List: list, Err: err}
	}

	log.WithField("count", len(stories)).Info("stories loaded")
	return Result{List: list, Stories: stories}
}

func (l *Loader) sequential(ctx context.Context, ids []int) ([]story.Story, error) {
	stories := make([]story.Story, 0, len(ids))
	for _, id := range ids {
		s, err := l.Source.Story(ctx, id)
		if err != nil {
			return nil, &Error{Stage: StageStory, ID: id, Err: err}
		}
		stories = append(stories, s)
	}
	return stories, nil
}

func (l *Loader) concurrent(ctx context.Context, ids []int) ([]story.Story, error) {
	stories := make([]story.Story, len(ids))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.Concurrency)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			s, err := l.Source.Story(ctx, id)
			if err != nil {
				return &Error{Stage: StageStory, ID: id, Err: err}
			}
			stories[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stories, nil
}
