// Package web serves the story lists as HTML, JSON, Server-Sent Events and
// WebSocket frames.
package web

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/sirupsen/logrus"

	"github.com/jwafle/topstories/internal/hackernews"
	"github.com/jwafle/topstories/internal/theme"
)

// Options configures a Server.
type Options struct {
	Board    *Board
	Theme    theme.Theme
	List     hackernews.List // served when a request names none
	Logger   logrus.FieldLogger
	LogLevel log.Lvl
}

type Server struct {
	echo   *echo.Echo
	board  *Board
	theme  theme.Theme
	list   hackernews.List
	logger logrus.FieldLogger
}

func New(opts Options) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(opts.LogLevel)
	if opts.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		opts.Logger = l
	}

	s := &Server{
		echo:   e,
		board:  opts.Board,
		theme:  opts.Theme,
		list:   opts.List,
		logger: opts.Logger,
	}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			entry := s.logger.WithFields(logrus.Fields{"uri": v.URI, "status": v.Status})
			if v.Error != nil {
				entry.WithError(v.Error).Warn("request failed")
			} else {
				entry.Debug("request")
			}
			return nil
		},
	}))

	e.GET("/", s.home)
	e.GET("/items", s.items)
	e.GET("/api/stories", s.stories)
	e.GET("/events", s.events)
	e.GET("/ws", s.stream)

	return s
}

// ServeHTTP makes the server usable with httptest.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Start listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.WithField("addr", addr).Info("web server listening")
		errCh <- s.echo.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.echo.Shutdown(shutdownCtx)
	}
}

// listParam resolves the ?list= query parameter.
func (s *Server) listParam(c echo.Context) (hackernews.List, error) {
	q := c.QueryParam("list")
	if q == "" {
		return s.list, nil
	}
	l, err := hackernews.ParseList(q)
	if err != nil {
		return l, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return l, nil
}

func render(c echo.Context, status int, t templ.Component) error {
	var buf bytes.Buffer
	if err := t.Render(c.Request().Context(), &buf); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "render failed: "+err.Error())
	}
	return c.HTMLBlob(status, buf.Bytes())
}
