package view

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/go-playground/assert/v2"

	"github.com/jwafle/topstories/internal/hackernews"
	"github.com/jwafle/topstories/internal/story"
	"github.com/jwafle/topstories/internal/theme"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return buf.String()
}

var (
	d101 = story.Story{ID: 101, By: "a", Score: 10, Title: "T1", URL: "http://x"}
	d102 = story.Story{ID: 102, By: "b", Score: 20, Title: "T2", URL: "http://y"}
)

func loaded(t *testing.T, stories ...story.Story) story.Snapshot {
	t.Helper()
	s, err := story.Transition(story.Initial(), story.FetchStarted{})
	assert.Equal(t, nil, err)
	s, err = story.Transition(s, story.FetchSucceeded{Stories: stories})
	assert.Equal(t, nil, err)
	return s
}

func TestItemMarkup(t *testing.T) {
	got := render(t, Item(d101, theme.MustParse("blue")))

	want := `<div class="border py-3 my-3 bg-blue-200 hover:bg-blue-300">` +
		`<span class="px-5 w-24 inline-block">[10]</span>` +
		`<a href="http://x" class="underline">T1</a>` +
		`<span class="p-2">by</span><span>a</span></div>`
	assert.Equal(t, want, got)
}

func TestItemRejectsUnsafeURLs(t *testing.T) {
	for _, u := range []string{"javascript:alert(1)", "magnet:?xt=urn:btih:abc"} {
		t.Run(u, func(t *testing.T) {
			got := render(t, Item(story.Story{Title: "T", URL: u}, theme.MustParse("blue")))

			assert.Equal(t, true, strings.Contains(got, `href="about:invalid#TemplFailedSanitizationURL"`))
			assert.Equal(t, true, strings.Contains(got, ">T</a>"))
		})
	}
}

func TestItemEscapes(t *testing.T) {
	s := story.Story{Title: `<script>alert(1)</script>`, By: "x&y", URL: "https://example.com/?a=1&b=2"}

	got := render(t, Item(s, theme.MustParse("red")))

	assert.Equal(t, false, strings.Contains(got, "<script>"))
	assert.Equal(t, true, strings.Contains(got, "x&amp;y"))
	assert.Equal(t, true, strings.Contains(got, `href="https://example.com/?a=1&amp;b=2"`))
}

func TestItemsPlaceholderRows(t *testing.T) {
	got := render(t, Items(story.Initial(), theme.MustParse("pink")))

	assert.Equal(t, 5, strings.Count(got, `<div class="border py-3 my-3 bg-pink-200 hover:bg-pink-300">`))
	assert.Equal(t, true, strings.Contains(got, `data-phase="initial"`))
}

func TestItemsLoadedInOrder(t *testing.T) {
	got := render(t, Items(loaded(t, d101, d102), theme.MustParse("blue")))

	assert.Equal(t, 2, strings.Count(got, `class="underline"`))
	first, second := strings.Index(got, ">T1</a>"), strings.Index(got, ">T2</a>")
	if first < 0 || second < first {
		t.Fatalf("expected T1 before T2, got %s", got)
	}
	assert.Equal(t, true, strings.Contains(got, `data-phase="loaded"`))
}

func TestStatusFailed(t *testing.T) {
	s, _ := story.Transition(story.Initial(), story.FetchStarted{})
	s, _ = story.Transition(s, story.FetchFailed{Err: errors.New("offline")})

	got := render(t, Status(hackernews.ListTop, s))

	assert.Equal(t, `<p id="status" class="text-sm text-gray-500">error: offline (showing sample stories)</p>`, got)
}

func TestPageMarksActiveList(t *testing.T) {
	got := render(t, Page(hackernews.ListAsk, story.Initial(), theme.MustParse("gray")))

	assert.Equal(t, true, strings.HasPrefix(got, "<!doctype html>"))
	assert.Equal(t, true, strings.Contains(got, `<a href="/?list=ask" class="font-bold underline">ask</a>`))
	assert.Equal(t, true, strings.Contains(got, `data-list="ask"`))
	assert.Equal(t, true, strings.Contains(got, `id="items"`))
}
