// Package logging builds the logrus logger shared by every component.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/labstack/gommon/log"
	"github.com/sirupsen/logrus"

	"github.com/jwafle/topstories/internal/config"
)

// New returns a logger configured from cfg. When quiet is set and no file is
// configured the output is discarded, so nothing is written over a UI that
// owns the terminal. The returned closer releases the log file, if any.
func New(cfg config.Log, quiet bool) (*logrus.Logger, io.Closer, error) {
	logger := logrus.New()

	level := cfg.Level
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}
	logger.SetLevel(lvl)

	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	var closer io.Closer = nopCloser{}
	switch {
	case cfg.File != "":
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		logger.SetOutput(f)
		closer = f
	case quiet:
		logger.SetOutput(io.Discard)
	default:
		logger.SetOutput(os.Stderr)
	}

	return logger, closer, nil
}

// EchoLevel maps a logrus level onto the gommon level echo logs with.
func EchoLevel(l logrus.Level) log.Lvl {
	switch {
	case l >= logrus.DebugLevel:
		return log.DEBUG
	case l == logrus.InfoLevel:
		return log.INFO
	case l == logrus.WarnLevel:
		return log.WARN
	default:
		return log.ERROR
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
