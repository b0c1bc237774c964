// Package config reads the TOML settings file.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"

	"github.com/BurntSushi/toml"

	"github.com/jwafle/topstories/internal/hackernews"
	"github.com/jwafle/topstories/internal/theme"
)

const baseCfgPath = "topstories/config.toml"

type Config struct {
	Colour      string          `toml:"colour"`      // theme token, e.g. "blue"
	Articles    int             `toml:"articles"`    // number of stories to fetch
	List        hackernews.List `toml:"list"`        // initial list: top, new, best, ask, show, job
	BaseURL     string          `toml:"base_url"`    // API root
	Concurrency int             `toml:"concurrency"` // parallel story fetches, 1 = one at a time
	Web         Web             `toml:"web"`
	Log         Log             `toml:"log"`
}

type Web struct {
	Listen string `toml:"listen"` // e.g. ":8080"; empty keeps the web surface off
}

type Log struct {
	Level  string `toml:"level"`  // logrus level name
	Format string `toml:"format"` // text or json
	File   string `toml:"file"`   // empty = stderr, discarded while the TUI runs
}

func Default() Config {
	return Config{
		Colour:      theme.DefaultToken,
		Articles:    10,
		List:        hackernews.ListTop,
		BaseURL:     hackernews.DefaultBaseURL,
		Concurrency: 1,
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// Read decodes the file at path over Default. A missing file returns the
// defaults together with an error matching os.ErrNotExist.
func Read(path string) (Config, error) {
	conf := Default()
	dat, err := os.ReadFile(path)
	if err != nil {
		return conf, err
	}
	if _, err := toml.Decode(string(dat), &conf); err != nil {
		return conf, fmt.Errorf("failed to decode config at %s with %w", path, err)
	}
	return conf, nil
}

func Write(cfgPath string, cfg Config) error {
	blob, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config with %w", err)
	}
	basePath := path.Dir(cfgPath)
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create base config directory at '%s' with %w", basePath, err)
	}
	if err := os.WriteFile(cfgPath, blob, 0644); err != nil {
		return fmt.Errorf("failed to write into config file at '%s' with %w", cfgPath, err)
	}
	return nil
}

func DefaultPath() string {
	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		return path.Join(xdgHome, baseCfgPath)
	}
	if home := os.Getenv("HOME"); home != "" {
		return path.Join(home, ".config", baseCfgPath)
	}
	return baseCfgPath
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	if _, err := theme.Parse(c.Colour); err != nil {
		errs = append(errs, err)
	}
	if c.Articles < 1 {
		errs = append(errs, fmt.Errorf("articles must be at least 1, got %d", c.Articles))
	}
	if c.Concurrency < 0 {
		errs = append(errs, fmt.Errorf("concurrency must not be negative, got %d", c.Concurrency))
	}
	if u, err := url.Parse(c.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("invalid base_url %q", c.BaseURL))
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log format must be text or json, got %q", c.Log.Format))
	}
	return errors.Join(errs...)
}
