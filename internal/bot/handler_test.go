package bot

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sehatsahara/sahara/internal/assistant"
	"github.com/sehatsahara/sahara/internal/dispatch"
	"github.com/sehatsahara/sahara/internal/gateway"
	"github.com/sehatsahara/sahara/internal/session"
	"github.com/sehatsahara/sahara/internal/store"
	"github.com/sehatsahara/sahara/internal/ui"
)

type stubResponder struct {
	resp    dispatch.ChatResponse
	err     error
	userIDs []string
}

func (s *stubResponder) Respond(_ context.Context, userID, _ string) (dispatch.ChatResponse, error) {
	s.userIDs = append(s.userIDs, userID)
	return s.resp, s.err
}

type nopGateway struct{}

func (nopGateway) Call(context.Context, string, any) gateway.Result {
	return gateway.Result{Body: map[string]any{"success": true}}
}

func newChat(t *testing.T) (Chat, *ui.View) {
	t.Helper()
	view := ui.NewView()
	disp := dispatch.New(dispatch.Deps{
		Surface: view,
		Gateway: nopGateway{},
		Users:   dispatch.StaticUser("asha"),
		Clock:   clock.NewMock(),
	})
	t.Cleanup(disp.Wait)
	return Chat{SessionID: "s1", Surface: view, Dispatcher: disp, Users: dispatch.StaticUser("asha")}, view
}

func TestHandleMessageDispatchesResponse(t *testing.T) {
	chat, view := newChat(t)
	r := &stubResponder{resp: dispatch.ChatResponse{
		Text:    "Choose an option",
		Buttons: []dispatch.ButtonSpec{{Type: dispatch.ButtonAppointmentBooking, Text: "Book Appointment"}},
	}}
	h := NewHandler(r, session.NewManager(10), nil, nil)

	h.HandleMessage(context.Background(), chat, "  book please ")

	snap := view.Snapshot()
	require.Len(t, snap.Messages, 2)
	assert.Equal(t, ui.Message{Sender: dispatch.SenderUser, Text: "book please"}, snap.Messages[0])
	assert.Equal(t, ui.Message{Sender: dispatch.SenderBot, Text: "Choose an option"}, snap.Messages[1])
	require.Len(t, snap.Controls, 1)
	assert.Equal(t, []string{"asha"}, r.userIDs)
}

func TestHandleMessageIgnoresBlankText(t *testing.T) {
	chat, view := newChat(t)
	r := &stubResponder{}
	h := NewHandler(r, session.NewManager(10), nil, nil)

	h.HandleMessage(context.Background(), chat, "   ")

	assert.Empty(t, view.Snapshot().Messages)
	assert.Empty(t, r.userIDs)
}

func TestHandleMessageRateLimited(t *testing.T) {
	chat, view := newChat(t)
	r := &stubResponder{resp: dispatch.ChatResponse{Text: "ok"}}
	h := NewHandler(r, session.NewManager(2), nil, nil)

	for i := 0; i < 3; i++ {
		h.HandleMessage(context.Background(), chat, "hello")
	}

	assert.Len(t, r.userIDs, 2)
	snap := view.Snapshot()
	require.Len(t, snap.Notifications, 1)
	assert.Equal(t, rateLimitedMessage, snap.Notifications[0].Message)
	assert.Equal(t, dispatch.KindWarning, snap.Notifications[0].Kind)
}

func TestHandleMessageResponderFailure(t *testing.T) {
	chat, view := newChat(t)
	r := &stubResponder{err: errors.New("upstream down")}
	h := NewHandler(r, session.NewManager(10), nil, nil)

	h.HandleMessage(context.Background(), chat, "hello")

	msgs := view.Snapshot().Messages
	require.Len(t, msgs, 2)
	assert.Equal(t, failureMessage, msgs[1].Text)
}

func TestHandleMessageRecordsTranscript(t *testing.T) {
	db, err := store.NewBoltStore(filepath.Join(t.TempDir(), "bot.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	chat, _ := newChat(t)
	r := &stubResponder{resp: dispatch.ChatResponse{Text: `नमस्ते`}}
	h := NewHandler(r, session.NewManager(10), db, nil)

	h.HandleMessage(context.Background(), chat, "hello")

	lines, err := db.GetTranscript("s1")
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "user", lines[0].Sender)
	assert.Equal(t, "hello", lines[0].Text)
	assert.Equal(t, "bot", lines[1].Sender)
	assert.Equal(t, "नमस्ते", lines[1].Text)
}

func TestLocalAssistantEndToEnd(t *testing.T) {
	chat, view := newChat(t)
	h := NewHandler(assistant.New("108", nil), session.NewManager(10), nil, nil)

	h.HandleMessage(context.Background(), chat, "there was an accident, send an ambulance")

	snap := view.Snapshot()
	require.Len(t, snap.Notifications, 1)
	assert.Equal(t, "Emergency services activated!", snap.Notifications[0].Message)
	require.Len(t, snap.Controls, 1)
	assert.Equal(t, "Call Emergency (108)", snap.Controls[0].Label)
	assert.Equal(t, dispatch.StyleDanger, snap.Controls[0].Style)
}

func TestRemoteResponder(t *testing.T) {
	var got gateway.ChatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"language":"en","response":"Hi","action":"SHOW_APP_FEATURES","interactive_buttons":[{"type":"medicine_scan","text":"Scan","action":"START_MEDICINE_SCANNER"}]}`))
	}))
	defer srv.Close()

	remote := NewRemote(gateway.NewClient("", 0, nil, nil), srv.URL+"/chat")
	resp, err := remote.Respond(context.Background(), "asha", "hello")

	require.NoError(t, err)
	assert.Equal(t, gateway.ChatRequest{Message: "hello", UserID: "asha"}, got)
	assert.Equal(t, dispatch.ActionShowAppFeatures, resp.Action)
	assert.Equal(t, "Hi", resp.Text)
	require.Len(t, resp.Buttons, 1)
	assert.Equal(t, dispatch.ButtonMedicineScan, resp.Buttons[0].Type)
}

func TestRemoteResponderErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":"bad gateway"}`))
	}))
	defer srv.Close()

	remote := NewRemote(gateway.NewClient(srv.URL, 0, nil, nil), "/chat")
	_, err := remote.Respond(context.Background(), "asha", "hello")
	assert.ErrorContains(t, err, "status 502")

	srv.Close()
	_, err = remote.Respond(context.Background(), "asha", "hello")
	assert.Error(t, err)
}
