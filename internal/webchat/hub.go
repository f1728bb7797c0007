package webchat

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/sehatsahara/sahara/internal/bot"
	"github.com/sehatsahara/sahara/internal/dispatch"
	"github.com/sehatsahara/sahara/internal/metrics"
	"github.com/sehatsahara/sahara/internal/session"
	"github.com/sehatsahara/sahara/internal/ui"
)

const defaultPermissionTimeout = 60 * time.Second

// Options configures a Hub. Users, Clock and Logger have defaults.
type Options struct {
	Gateway            dispatch.APIGateway
	Bot                *bot.Handler
	Sessions           *session.Manager
	Users              func(sessionID string) dispatch.UserSource
	Clock              clock.Clock
	Logger             *zap.Logger
	Metrics            *metrics.DispatchMetrics
	Timing             dispatch.Timing
	EmergencyNumber    string
	FormatPrescription dispatch.PrescriptionFormatter
	AllowedOrigins     []string
	PermissionTimeout  time.Duration
}

// Session is one chat widget: its view, dispatcher and device. It outlives connections so
// a reloaded page picks up where it left off.
type Session struct {
	ID         string
	View       *ui.View
	Dispatcher *dispatch.Dispatcher
	Users      dispatch.UserSource

	device *device

	mu       sync.Mutex
	client   *Client
	lastSeen time.Time
}

func (s *Session) chat() bot.Chat {
	return bot.Chat{SessionID: s.ID, Surface: s.View, Dispatcher: s.Dispatcher, Users: s.Users}
}

// Hub owns every live session.
type Hub struct {
	opts Options

	mu       sync.Mutex
	sessions map[string]*Session
	closed   bool
	readers  sync.WaitGroup
}

func NewHub(o Options) *Hub {
	if o.Clock == nil {
		o.Clock = clock.New()
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Users == nil {
		o.Users = func(string) dispatch.UserSource { return dispatch.StaticUser("default_user") }
	}
	if o.PermissionTimeout <= 0 {
		o.PermissionTimeout = defaultPermissionTimeout
	}
	return &Hub{opts: o, sessions: make(map[string]*Session)}
}

// Session returns the session with id, creating it on first use.
func (h *Hub) Session(id string) *Session {
	h.mu.Lock()
	defer h.mu.Unlock()

	if s, ok := h.sessions[id]; ok {
		s.touch(h.opts.Clock.Now())
		return s
	}

	view := ui.NewView()
	dev := newDevice(h.opts.Clock, h.opts.PermissionTimeout)
	users := h.opts.Users(id)
	s := &Session{
		ID:    id,
		View:  view,
		Users: users,
		Dispatcher: dispatch.New(dispatch.Deps{
			Surface:            view,
			Device:             dev,
			Gateway:            h.opts.Gateway,
			Users:              users,
			Clock:              h.opts.Clock,
			Logger:             h.opts.Logger.With(zap.String("session_id", id)),
			Metrics:            h.opts.Metrics,
			Timing:             h.opts.Timing,
			EmergencyNumber:    h.opts.EmergencyNumber,
			FormatPrescription: h.opts.FormatPrescription,
		}),
		device:   dev,
		lastSeen: h.opts.Clock.Now(),
	}
	h.sessions[id] = s
	h.opts.Logger.Info("webchat: session created", zap.String("session_id", id))
	return s
}

// Lookup returns an existing session.
func (h *Hub) Lookup(id string) (*Session, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	s, ok := h.sessions[id]
	return s, ok
}

// Prune drops sessions without a connection that have been idle longer than maxAge.
func (h *Hub) Prune(maxAge time.Duration) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := h.opts.Clock.Now()
	n := 0
	for id, s := range h.sessions {
		s.mu.Lock()
		idle := s.client == nil && now.Sub(s.lastSeen) > maxAge
		s.mu.Unlock()
		if idle {
			delete(h.sessions, id)
			n++
		}
	}
	return n
}

// Close refuses new connections, disconnects every live client and waits until their
// readers have returned, so no new background work starts afterwards. Sessions stay;
// their pending permission requests are denied by the disconnect.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	all := make([]*Session, 0, len(h.sessions))
	for _, s := range h.sessions {
		all = append(all, s)
	}
	h.mu.Unlock()

	for _, s := range all {
		s.mu.Lock()
		c := s.client
		s.mu.Unlock()
		if c != nil {
			s.detach(c)
			c.Close()
		}
	}
	h.readers.Wait()
}

// Wait blocks until background calls of every session have settled.
func (h *Hub) Wait() {
	h.mu.Lock()
	all := make([]*Session, 0, len(h.sessions))
	for _, s := range h.sessions {
		all = append(all, s)
	}
	h.mu.Unlock()
	for _, s := range all {
		s.Dispatcher.Wait()
	}
}

// HandleView serves GET /sessions/{id}/view.
func (h *Hub) HandleView(w http.ResponseWriter, r *http.Request) {
	s, ok := h.Lookup(chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.View.Snapshot())
}

// handle processes one inbound frame for s. Frames of a session run one at a time.
func (h *Hub) handle(ctx context.Context, s *Session, c *Client, in Inbound) {
	log := h.opts.Logger.With(zap.String("session_id", s.ID), zap.String("type", in.Type))

	switch in.Type {
	case InPing:
		c.Send(Event(OutPong, nil))
		return
	case InCameraResult:
		if !s.device.resolve(in.RequestID, in.Granted) {
			log.Debug("webchat: stale camera result", zap.String("request_id", in.RequestID))
		}
		return
	}

	err := h.opts.Sessions.WithLock(s.ID, func() error {
		s.touch(h.opts.Clock.Now())
		switch in.Type {
		case InHello:
			s.device.setCapabilities(in.UserAgent, in.Camera)
			log.Debug("webchat: hello", zap.Bool("mobile", s.device.IsMobile()), zap.Bool("camera", in.Camera))
		case InMessage:
			h.opts.Bot.HandleMessage(ctx, s.chat(), in.Text)
		case InClick:
			ctl, ok := s.View.Control(in.ControlID)
			if !ok || ctl.Disabled {
				log.Debug("webchat: dropping click", zap.String("control_id", in.ControlID), zap.Bool("known", ok))
				return nil
			}
			return s.Dispatcher.HandleButtonClick(ctx, in.ControlID)
		case InCloseModal:
			s.View.CloseModal()
		default:
			c.Send(Event(OutError, ErrorInfo{Message: "unknown message type: " + in.Type}))
		}
		return nil
	})
	if err != nil {
		log.Warn("webchat: handling frame failed", zap.Error(err))
	}
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

// attach makes c the session's live connection and replays the view to it.
func (s *Session) attach(c *Client) {
	s.mu.Lock()
	prev := s.client
	s.client = c
	s.mu.Unlock()

	if prev != nil {
		prev.Close()
	}
	c.Send(Event(OutSession, SessionInfo{SessionID: s.ID}))
	s.View.Resume(c.Send)
	s.device.attach(c.Send)
}

// detach clears c if it is still the live connection.
func (s *Session) detach(c *Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client != c {
		return
	}
	s.client = nil
	s.View.Attach(nil)
	s.device.attach(nil)
}
