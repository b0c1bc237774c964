package web

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/net/websocket"

	"github.com/jwafle/topstories/internal/hackernews"
	"github.com/jwafle/topstories/internal/story"
	"github.com/jwafle/topstories/internal/web/view"
)

// snapshotJSON is the wire form of a snapshot.
type snapshotJSON struct {
	List    hackernews.List `json:"list"`
	Phase   string          `json:"phase"`
	Stories []story.Story   `json:"stories"`
	Error   string          `json:"error,omitempty"`
}

func newSnapshotJSON(l hackernews.List, snap story.Snapshot) snapshotJSON {
	out := snapshotJSON{List: l, Phase: snap.Phase().String(), Stories: snap.Stories()}
	if err := snap.Err(); err != nil {
		out.Error = err.Error()
	}
	return out
}

// home renders the full page and mounts the list, the way a client-side
// container starts fetching after its first display.
func (s *Server) home(c echo.Context) error {
	l, err := s.listParam(c)
	if err != nil {
		return err
	}
	snap := s.board.Mount(l)
	return render(c, http.StatusOK, view.Page(l, snap, s.theme))
}

func (s *Server) items(c echo.Context) error {
	l, err := s.listParam(c)
	if err != nil {
		return err
	}
	return render(c, http.StatusOK, view.Items(s.board.Mount(l), s.theme))
}

func (s *Server) stories(c echo.Context) error {
	l, err := s.listParam(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newSnapshotJSON(l, s.board.Mount(l)))
}

type Event struct {
	ID    int
	Data  []byte
	Event []byte
}

func (e *Event) MarshalTo(w io.Writer) error {
	if len(e.Data) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "id: %d\n", e.ID); err != nil {
		return err
	}
	if len(e.Event) > 0 {
		if _, err := fmt.Fprintf(w, "event: %s\n", e.Event); err != nil {
			return err
		}
	}
	for _, line := range bytes.Split(e.Data, []byte("\n")) {
		if _, err := fmt.Fprintf(w, "data: %s\n", line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\n")
	return err
}

// events streams the list over Server-Sent Events: the current status and
// rows, then once more when the fetch settles, then a done event.
func (s *Server) events(c echo.Context) error {
	l, err := s.listParam(c)
	if err != nil {
		return err
	}
	s.board.Mount(l)
	snap, updates, cancel := s.board.Subscribe(l)
	defer cancel()

	w := c.Response()
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	id := 0
	send := func(name string, data []byte) error {
		ev := &Event{ID: id, Data: data, Event: []byte(name)}
		id++
		if err := ev.MarshalTo(w); err != nil {
			return err
		}
		w.Flush()
		return nil
	}
	sendSnapshot := func(snap story.Snapshot) error {
		var buf bytes.Buffer
		if err := view.Status(l, snap).Render(c.Request().Context(), &buf); err != nil {
			return err
		}
		if err := send("status", buf.Bytes()); err != nil {
			return err
		}
		buf.Reset()
		if err := view.Items(snap, s.theme).Render(c.Request().Context(), &buf); err != nil {
			return err
		}
		return send("items", buf.Bytes())
	}

	for {
		if err := sendSnapshot(snap); err != nil {
			s.logger.WithError(err).Debug("SSE send failed")
			return nil
		}
		if snap.Phase().Done() {
			if err := send("done", []byte(snap.Phase().String())); err != nil {
				s.logger.WithError(err).Debug("SSE send failed")
			}
			return nil
		}
		select {
		case <-c.Request().Context().Done():
			s.logger.WithField("ip", c.RealIP()).Debug("SSE client disconnected")
			return nil
		case <-s.board.Done():
			return nil
		case snap = <-updates:
		}
	}
}

// stream pushes JSON snapshots over a WebSocket until the list settles.
func (s *Server) stream(c echo.Context) error {
	l, err := s.listParam(c)
	if err != nil {
		return err
	}
	websocket.Handler(func(ws *websocket.Conn) {
		defer ws.Close()

		s.board.Mount(l)
		snap, updates, cancel := s.board.Subscribe(l)
		defer cancel()

		for {
			if err := websocket.JSON.Send(ws, newSnapshotJSON(l, snap)); err != nil {
				s.logger.WithError(err).Debug("websocket send failed")
				return
			}
			if snap.Phase().Done() {
				return
			}
			select {
			case <-ws.Request().Context().Done():
				return
			case <-s.board.Done():
				return
			case snap = <-updates:
			}
		}
	}).ServeHTTP(c.Response(), c.Request())
	return nil
}
