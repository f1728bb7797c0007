package bot

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sehatsahara/sahara/internal/dispatch"
	"github.com/sehatsahara/sahara/internal/session"
	"github.com/sehatsahara/sahara/internal/store"
)

const (
	rateLimitedMessage = "You are sending messages too quickly. Please wait a moment."
	failureMessage     = "Sorry, something went wrong while processing your message. Please try again later."
)

// Chat is one session's view of the conversation.
type Chat struct {
	SessionID  string
	Surface    dispatch.Surface
	Dispatcher *dispatch.Dispatcher
	Users      dispatch.UserSource
}

type Handler struct {
	responder Responder
	sessions  *session.Manager
	history   store.Store
	logger    *zap.Logger
	now       func() time.Time
}

// NewHandler wires the bridge. history may be nil to skip transcripts.
func NewHandler(r Responder, sessions *session.Manager, history store.Store, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{responder: r, sessions: sessions, history: history, logger: logger, now: time.Now}
}

// HandleMessage echoes the user's text, asks the responder and hands the reply to the
// dispatcher. Callers serialize per session.
func (h *Handler) HandleMessage(ctx context.Context, chat Chat, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	chat.Surface.AppendMessage(dispatch.SenderUser, text)

	if !h.sessions.Allow(chat.SessionID) {
		h.logger.Info("bot: rate limited", zap.String("session_id", chat.SessionID))
		chat.Dispatcher.Notifier().Show(rateLimitedMessage, dispatch.KindWarning)
		return
	}

	userID := chat.Users.CurrentUserID()
	resp, err := h.responder.Respond(ctx, userID, text)
	if err != nil {
		h.logger.Error("bot: responder failed",
			zap.String("session_id", chat.SessionID),
			zap.String("user_id", userID),
			zap.Error(err))
		chat.Surface.AppendMessage(dispatch.SenderBot, failureMessage)
		h.record(chat.SessionID, text, failureMessage)
		return
	}

	chat.Dispatcher.HandleChatbotResponse(ctx, resp)
	h.record(chat.SessionID, text, dispatch.DecodeUnicode(resp.Text))
}

func (h *Handler) record(sessionID, userText, botText string) {
	if h.history == nil {
		return
	}
	now := h.now()
	err := h.history.AppendTranscript(sessionID,
		store.Line{Sender: string(dispatch.SenderUser), Text: userText, At: now},
		store.Line{Sender: string(dispatch.SenderBot), Text: botText, At: now},
	)
	if err != nil {
		h.logger.Warn("bot: saving transcript failed", zap.String("session_id", sessionID), zap.Error(err))
	}
}
