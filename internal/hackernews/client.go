// Package hackernews reads story lists and story records from the public
// Hacker News API.
package hackernews

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/jwafle/topstories/internal/story"
)

// DefaultBaseURL is the public API root.
const DefaultBaseURL = "https://hacker-news.firebaseio.com/v0"

// ErrNotFound is returned when the item endpoint answers with null, which
// the API does for unknown and deleted ids.
var ErrNotFound = errors.New("hackernews: item not found")

// StatusError reports a non-200 response.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned unexpected status code: %d", e.URL, e.Code)
}

// Config tweaks behaviour; zero-value is sane.
type Config struct {
	BaseURL    string             // default DefaultBaseURL
	HTTPClient *http.Client       // default http.DefaultClient
	Logger     logrus.FieldLogger // nil = discard
}

// Client talks to the API. It performs no retries and sets no timeouts of
// its own; callers bound requests through the context.
type Client struct {
	base   string
	http   *http.Client
	logger logrus.FieldLogger
}

// New validates cfg and returns a Client.
func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("hackernews: invalid base url %q", base)
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	logger := cfg.Logger
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	return &Client{
		base:   strings.TrimSuffix(base, "/"),
		http:   hc,
		logger: logger,
	}, nil
}

// StoryIDs returns the ranked identifiers of list, most relevant first.
func (c *Client) StoryIDs(ctx context.Context, list List) ([]int, error) {
	var ids []int
	if err := c.get(ctx, c.base+list.Path(), &ids); err != nil {
		return nil, errors.Wrapf(err, "get %s stories", list)
	}
	c.logger.WithFields(logrus.Fields{"list": list.String(), "count": len(ids)}).Debug("story ids fetched")
	return ids, nil
}

// Story returns the record for id.
func (c *Client) Story(ctx context.Context, id int) (story.Story, error) {
	var item *story.Story
	if err := c.get(ctx, fmt.Sprintf("%s/item/%d.json", c.base, id), &item); err != nil {
		return story.Story{}, errors.Wrapf(err, "get item %d", id)
	}
	if item == nil {
		return story.Story{}, errors.Wrapf(ErrNotFound, "item %d", id)
	}
	c.logger.WithField("id", id).Debug("story fetched")
	return *item, nil
}

func (c *Client) get(ctx context.Context, u string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return errors.Wrap(err, "http.NewRequest")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "http.Do")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &StatusError{URL: u, Code: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return errors.Wrap(err, "decode")
	}
	return nil
}
