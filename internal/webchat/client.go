package webchat

import (
	"context"
	"encoding/json"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/sehatsahara/sahara/internal/ui"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 16 * 1024
	sendBuffer     = 512
)

// Client is one websocket connection bound to a session.
type Client struct {
	conn    *websocket.Conn
	session *Session
	logger  *zap.Logger

	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once

	ctx    context.Context
	cancel context.CancelFunc
}

// Send queues an event for the writer. It never blocks; when the buffer is full the event
// is dropped and the client is expected to reconnect and resume.
func (c *Client) Send(e ui.Event) {
	payload, err := json.Marshal(e)
	if err != nil {
		c.logger.Error("webchat: encoding event failed", zap.String("type", e.Type), zap.Error(err))
		return
	}
	select {
	case <-c.done:
	case c.send <- payload:
	default:
		c.logger.Warn("webchat: send buffer full, dropping event", zap.String("type", e.Type))
	}
}

// Close stops both pumps and cancels the frame being handled.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		c.cancel()
		close(c.done)
		c.conn.Close()
	})
}

func (h *Hub) upgrader() *websocket.Upgrader {
	allowed := h.opts.AllowedOrigins
	return &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" || len(allowed) == 0 || slices.Contains(allowed, "*") {
				return true
			}
			return slices.Contains(allowed, origin)
		},
	}
}

// ServeWS upgrades GET /ws?session=<id>. A missing id starts a new session.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session")
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		http.Error(w, "shutting down", http.StatusServiceUnavailable)
		return
	}
	h.readers.Add(1)
	h.mu.Unlock()

	conn, err := h.upgrader().Upgrade(w, r, nil)
	if err != nil {
		h.readers.Done()
		h.opts.Logger.Warn("webchat: websocket upgrade failed", zap.Error(err))
		return
	}

	s := h.Session(sessionID)
	ctx, cancel := context.WithCancel(context.Background())
	c := &Client{
		conn:    conn,
		session: s,
		logger:  h.opts.Logger.With(zap.String("session_id", sessionID)),
		send:    make(chan []byte, sendBuffer),
		done:    make(chan struct{}),
		ctx:     ctx,
		cancel:  cancel,
	}
	s.device.setCapabilities(r.UserAgent(), false)

	// The writer drains while the view is replayed.
	go c.writePump()
	s.attach(c)
	h.opts.Metrics.ObserveConnection(1)
	c.logger.Info("webchat: client connected")

	go h.readPump(c)
}

func (h *Hub) readPump(c *Client) {
	defer func() {
		c.session.detach(c)
		c.Close()
		h.opts.Metrics.ObserveConnection(-1)
		c.logger.Info("webchat: client disconnected")
		h.readers.Done()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("webchat: read failed", zap.Error(err))
			}
			return
		}
		c.conn.SetReadDeadline(time.Now().Add(pongWait))

		var in Inbound
		if err := json.Unmarshal(message, &in); err != nil || in.Type == "" {
			c.Send(Event(OutError, ErrorInfo{Message: "invalid frame"}))
			continue
		}
		h.handle(c.ctx, c.session, c, in)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case <-c.done:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case payload := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				c.logger.Warn("webchat: write failed", zap.Error(err))
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
