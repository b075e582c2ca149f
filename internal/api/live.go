package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/inframe/campus-portal/internal/views"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// LiveMessage is the frame exchanged on /ws/views. Clients send "load"
// frames; the server answers with "state" frames for the named view and
// "error" frames for requests it cannot serve.
type LiveMessage struct {
	Type   string            `json:"type"`
	View   string            `json:"view,omitempty"`
	Params map[string]string `json:"params,omitempty"`
	State  *views.State      `json:"state,omitempty"`
	Error  string            `json:"error,omitempty"`
}

// liveConn serializes writes to one websocket connection. The first failed
// write cancels the connection and closes it, which ends the read loop.
type liveConn struct {
	mu     sync.Mutex
	conn   *websocket.Conn
	cancel context.CancelFunc
	broken bool
}

func (c *liveConn) send(msg LiveMessage) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.broken {
		return websocket.ErrCloseSent
	}
	if err := c.conn.WriteJSON(msg); err != nil {
		slog.Debug("failed to send live message", "error", err)
		c.broken = true
		c.cancel()
		c.conn.Close()
		return err
	}
	return nil
}

func (s *Server) handleLiveViews(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("failed to upgrade to websocket", "error", err)
		return
	}
	defer conn.Close()

	slog.Info("live views connected", "remote_addr", r.RemoteAddr)

	// the session id travels with the connection context
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	out := &liveConn{conn: conn, cancel: cancel}
	latest := views.NewLatest()

	var wg sync.WaitGroup
	defer func() {
		latest.CancelAll()
		wg.Wait()
		slog.Info("live views disconnected", "remote_addr", r.RemoteAddr)
	}()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Debug("websocket read error", "error", err)
			}
			return
		}

		var msg LiveMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			slog.Debug("invalid message format", "error", err)
			continue
		}

		if msg.Type != "load" {
			continue
		}

		fetch := s.fetchFor(msg.View, msg.Params)
		if fetch == nil {
			if err := out.send(LiveMessage{Type: "error", View: msg.View, Error: "unknown view"}); err != nil {
				return
			}
			continue
		}

		// registered here so loads supersede each other in arrival order
		view := msg.View
		loadCtx, seq := latest.Begin(ctx, view)

		wg.Add(1)
		go func() {
			defer wg.Done()
			latest.Exec(loadCtx, view, seq, fetch, func(st views.State) {
				// a failed write already cancelled the connection
				_ = out.send(LiveMessage{Type: "state", View: view, State: &st})
			})
		}()
	}
}

// fetchFor resolves a live view name and its params to a loader, or nil
func (s *Server) fetchFor(view string, params map[string]string) views.Fetch {
	p := s.pages
	param := func(name string) string { return params[name] }

	switch view {
	case "courses":
		return func(ctx context.Context) (any, error) { return p.Courses(ctx) }
	case "course", "category":
		return func(ctx context.Context) (any, error) { return p.Category(ctx, param("slug")) }
	case "program":
		return func(ctx context.Context) (any, error) { return p.Program(ctx, param("category"), param("degree")) }
	case "blog":
		return func(ctx context.Context) (any, error) { return p.BlogList(ctx, param("q")) }
	case "blog-detail":
		return func(ctx context.Context) (any, error) { return p.BlogDetail(ctx, param("slug")) }
	case "about":
		return func(ctx context.Context) (any, error) { return p.About(ctx) }
	case "partners":
		return func(ctx context.Context) (any, error) { return p.Partners(ctx) }
	case "advisors":
		return func(ctx context.Context) (any, error) { return p.Advisors(ctx) }
	case "memberships":
		return func(ctx context.Context) (any, error) { return p.Memberships(ctx) }
	case "testimonials":
		return func(ctx context.Context) (any, error) { return p.Testimonials(ctx) }
	case "clubs":
		return func(ctx context.Context) (any, error) { return p.Clubs(ctx) }
	case "events":
		return func(ctx context.Context) (any, error) { return p.Events(ctx) }
	case "careers":
		return func(ctx context.Context) (any, error) { return p.Careers(ctx) }
	case "free-courses":
		return func(ctx context.Context) (any, error) { return p.FreeCourses(ctx, param("q")) }
	case "free-course":
		return func(ctx context.Context) (any, error) { return p.FreeCourse(ctx, param("id")) }
	case "downloads":
		return func(ctx context.Context) (any, error) { return p.Downloads(ctx) }
	case "news-events":
		return func(context.Context) (any, error) { return p.NewsEvents(param("q")), nil }
	default:
		return nil
	}
}
