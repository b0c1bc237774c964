package hackernews

import (
	"fmt"
	"strings"
)

// List selects which ranked identifier list to read.
type List int

const (
	ListTop List = iota
	ListNew
	ListBest
	ListAsk
	ListShow
	ListJob
)

var listNames = [...]string{
	ListTop:  "top",
	ListNew:  "new",
	ListBest: "best",
	ListAsk:  "ask",
	ListShow: "show",
	ListJob:  "job",
}

// Lists returns every list in display order.
func Lists() []List {
	return []List{ListTop, ListNew, ListBest, ListAsk, ListShow, ListJob}
}

func (l List) String() string {
	if l < 0 || int(l) >= len(listNames) {
		return "unknown"
	}
	return listNames[l]
}

// Path is the endpoint path relative to the API base, e.g. /topstories.json.
func (l List) Path() string {
	return "/" + l.String() + "stories.json"
}

// ParseList accepts a list name such as "top" or "best".
func ParseList(s string) (List, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range listNames {
		if name == s {
			return List(i), nil
		}
	}
	return ListTop, fmt.Errorf("unknown story list %q (want one of %s)", s, strings.Join(listNames[:], ", "))
}

// MarshalText lets a List live in TOML config and JSON payloads.
func (l List) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

func (l *List) UnmarshalText(b []byte) error {
	v, err := ParseList(string(b))
	if err != nil {
		return err
	}
	*l = v
	return nil
}
