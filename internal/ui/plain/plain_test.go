package plain

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-playground/assert/v2"

	"github.com/jwafle/topstories/internal/feed"
	"github.com/jwafle/topstories/internal/hackernews"
	"github.com/jwafle/topstories/internal/story"
	"github.com/jwafle/topstories/internal/theme"
)

type fakeSource struct {
	ids     []int
	idsErr  error
	stories map[int]story.Story
}

func (f fakeSource) StoryIDs(ctx context.Context, list hackernews.List) ([]int, error) {
	return f.ids, f.idsErr
}

func (f fakeSource) Story(ctx context.Context, id int) (story.Story, error) {
	return f.stories[id], nil
}

var src = fakeSource{
	ids: []int{101, 102},
	stories: map[int]story.Story{
		101: {ID: 101, By: "a", Score: 10, Title: "T1", URL: "http://x"},
		102: {ID: 102, By: "b", Score: 20, Title: "T2", URL: "http://y"},
	},
}

func opts(s feed.Source, asJSON bool) Options {
	return Options{
		Loader: &feed.Loader{Source: s, Count: 2},
		Theme:  theme.MustParse("red"),
		List:   hackernews.ListTop,
		JSON:   asJSON,
	}
}

func TestPrintText(t *testing.T) {
	var buf bytes.Buffer

	err := Print(context.Background(), &buf, opts(src, false))

	assert.Equal(t, nil, err)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, 4, len(lines))
	assert.Equal(t, "[10]    T1 by a", lines[0])
	assert.Equal(t, "http://x", strings.TrimSpace(lines[1]))
	assert.Equal(t, "[20]    T2 by b", lines[2])
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer

	err := Print(context.Background(), &buf, opts(src, true))
	assert.Equal(t, nil, err)

	var got []story.Story
	assert.Equal(t, nil, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 2, len(got))
	assert.Equal(t, 101, got[0].ID)
	assert.Equal(t, 102, got[1].ID)
}

func TestPrintFailureWritesPlaceholders(t *testing.T) {
	var buf bytes.Buffer
	boom := errors.New("offline")

	err := Print(context.Background(), &buf, opts(fakeSource{idsErr: boom}, false))

	assert.Equal(t, true, errors.Is(err, boom))
	assert.Equal(t, 5, strings.Count(buf.String(), story.Placeholder()[0].Title))
}

func TestHighlightKeysLeavesValues(t *testing.T) {
	src := "{\n  \"title\": \"a \\\"quoted\\\" title\"\n}"

	out := HighlightKeys(src, lipgloss.NewStyle())

	assert.Equal(t, src, out)
}

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

func TestPrintCancelledWritesPlaceholders(t *testing.T) {
	for i := 0; i < 20; i++ {
		ctx, cancel := context.WithCancel(context.Background())
		src := blockedSource{started: make(chan struct{})}
		go func() {
			<-src.started
			cancel()
		}()

		var buf bytes.Buffer
		err := Print(ctx, &buf, opts(src, false))

		assert.Equal(t, true, errors.Is(err, context.Canceled))
		assert.Equal(t, len(story.Placeholder()), strings.Count(buf.String(), " by user"))
	}
}

func TestHighlightKeysSkipsQuotesInValues(t *testing.T) {
	src := "{\n  \"title\": \"He said \\\"no\\\": fine\",\n  \"by\": \"a\"\n}"
	mark := lipgloss.NewStyle().Transform(func(s string) string { return "<" + s + ">" })

	out := HighlightKeys(src, mark)

	want := "{\n  <\"title\">: \"He said \\\"no\\\": fine\",\n  <\"by\">: \"a\"\n}"
	assert.Equal(t, want, out)
}
