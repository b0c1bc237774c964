package ui

import "github.com/jwafle/topstories/internal/hackernews"

// listStore keeps one container per story list, created on first use.
type listStore struct {
	lists map[hackernews.List]*items
}

func newListStore() *listStore {
	return &listStore{lists: make(map[hackernews.List]*items)}
}

func (s *listStore) get(l hackernews.List) *items {
	c, ok := s.lists[l]
	if !ok {
		c = newItems(l)
		s.lists[l] = c
	}
	return c
}
