package identity

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/sehatsahara/sahara/internal/dispatch"
	"github.com/sehatsahara/sahara/internal/store"
)

type userPayload struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
	Default   bool   `json:"default"`
}

// Handler serves the session to user binding used for backend calls.
type Handler struct {
	store       store.Store
	defaultUser string
	logger      *zap.Logger
	now         func() time.Time
}

func NewHandler(s store.Store, defaultUser string, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{store: s, defaultUser: defaultUser, logger: logger, now: time.Now}
}

// Routes mounts under /sessions/{id}/user.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.HandleGet)
	r.Put("/", h.HandlePut)
	r.Delete("/", h.HandleDelete)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	p, err := h.store.GetProfile(sessionID)
	if err != nil {
		h.logger.Error("identity: get profile failed", zap.String("session_id", sessionID), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	out := userPayload{SessionID: sessionID, UserID: h.defaultUser, Default: true}
	if p != nil && p.UserID != "" {
		out.UserID = p.UserID
		out.Default = false
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) HandlePut(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	var in userPayload
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	in.UserID = strings.TrimSpace(in.UserID)
	if in.UserID == "" {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}

	p := store.Profile{SessionID: sessionID, UserID: in.UserID, UpdatedAt: h.now()}
	if err := h.store.SaveProfile(p); err != nil {
		h.logger.Error("identity: save profile failed", zap.String("session_id", sessionID), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("identity: user linked", zap.String("session_id", sessionID), zap.String("user_id", p.UserID))
	writeJSON(w, http.StatusOK, userPayload{SessionID: sessionID, UserID: p.UserID})
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	if err := h.store.DeleteProfile(sessionID); err != nil {
		h.logger.Error("identity: delete profile failed", zap.String("session_id", sessionID), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Source returns the UserSource for one session. The store is read on every call so a
// PUT takes effect for the next backend request.
func (h *Handler) Source(sessionID string) dispatch.UserSource {
	return sessionUser{h: h, sessionID: sessionID}
}

type sessionUser struct {
	h         *Handler
	sessionID string
}

func (u sessionUser) CurrentUserID() string {
	p, err := u.h.store.GetProfile(u.sessionID)
	if err != nil {
		u.h.logger.Warn("identity: falling back to default user", zap.String("session_id", u.sessionID), zap.Error(err))
		return u.h.defaultUser
	}
	if p == nil || p.UserID == "" {
		return u.h.defaultUser
	}
	return p.UserID
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
