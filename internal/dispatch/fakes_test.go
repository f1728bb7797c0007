package dispatch

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"

	"github.com/sehatsahara/sahara/internal/gateway"
)

// recordingSurface keeps the visible state plus an ordered log of operations.
type recordingSurface struct {
	mu            sync.Mutex
	ops           []string
	messages      []string
	group         []Control
	notifications []Notification
	modals        []string
	panels        []Panel
}

func (s *recordingSurface) AppendMessage(_ Sender, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops = append(s.ops, "message")
	s.messages = append(s.messages, text)
}

func (s *recordingSurface) ReplaceButtonGroup(controls []Control) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops = append(s.ops, "buttons")
	s.group = append([]Control(nil), controls...)
}

func (s *recordingSurface) SetControl(id string, disabled bool, label string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.group {
		if s.group[i].ID == id {
			s.group[i].Disabled = disabled
			s.group[i].Label = label
		}
	}
}

func (s *recordingSurface) AddNotification(n Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops = append(s.ops, "notification")
	s.notifications = append(s.notifications, n)
}

func (s *recordingSurface) RemoveNotification(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, n := range s.notifications {
		if n.ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return
		}
	}
}

func (s *recordingSurface) ShowEmergencyModal(number string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops = append(s.ops, "modal")
	s.modals = append(s.modals, number)
}

func (s *recordingSurface) ShowPanel(p Panel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops = append(s.ops, "panel")
	s.panels = append(s.panels, p)
}

func (s *recordingSurface) Ops() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.ops...)
}

func (s *recordingSurface) Messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.messages...)
}

func (s *recordingSurface) Group() []Control {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Control(nil), s.group...)
}

func (s *recordingSurface) Notifications() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Notification(nil), s.notifications...)
}

func (s *recordingSurface) Modals() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.modals...)
}

func (s *recordingSurface) Panels() []Panel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Panel(nil), s.panels...)
}

func (s *recordingSurface) NotificationMessages() []string {
	var out []string
	for _, n := range s.Notifications() {
		out = append(out, n.Message)
	}
	return out
}

type fakeDevice struct {
	mu      sync.Mutex
	camera  bool
	mobile  bool
	permErr error
	dialed  []string
}

func (d *fakeDevice) CameraAvailable() bool { return d.camera }
func (d *fakeDevice) IsMobile() bool        { return d.mobile }

func (d *fakeDevice) RequestCameraPermission(context.Context) error { return d.permErr }

func (d *fakeDevice) Dial(number string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dialed = append(d.dialed, number)
}

func (d *fakeDevice) Dialed() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.dialed...)
}

type gatewayCall struct {
	Endpoint string
	Payload  any
}

// fakeGateway records calls. When release is non-nil each call blocks until it is closed.
type fakeGateway struct {
	mu      sync.Mutex
	calls   []gatewayCall
	results map[string]gateway.Result
	release chan struct{}
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{results: make(map[string]gateway.Result)}
}

func (g *fakeGateway) Call(_ context.Context, endpoint string, payload any) gateway.Result {
	g.mu.Lock()
	g.calls = append(g.calls, gatewayCall{Endpoint: endpoint, Payload: payload})
	res, ok := g.results[endpoint]
	release := g.release
	g.mu.Unlock()

	if release != nil {
		<-release
	}
	if !ok {
		return gateway.Result{Body: map[string]any{"success": true}}
	}
	return res
}

func (g *fakeGateway) Calls() []gatewayCall {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]gatewayCall(nil), g.calls...)
}

var errDenied = errors.New("permission denied by user")

type harness struct {
	surface *recordingSurface
	device  *fakeDevice
	gateway *fakeGateway
	clock   *clock.Mock
	disp    *Dispatcher
}

func newHarness(t *testing.T, opts ...func(*Deps)) *harness {
	t.Helper()
	h := &harness{
		surface: &recordingSurface{},
		device:  &fakeDevice{},
		gateway: newFakeGateway(),
		clock:   clock.NewMock(),
	}
	deps := Deps{
		Surface: h.surface,
		Device:  h.device,
		Gateway: h.gateway,
		Users:   StaticUser("user-42"),
		Clock:   h.clock,
	}
	for _, o := range opts {
		o(&deps)
	}
	h.disp = New(deps)
	t.Cleanup(func() {
		if h.gateway.release != nil {
			select {
			case <-h.gateway.release:
			default:
				close(h.gateway.release)
			}
		}
		h.disp.Wait()
	})
	return h
}

// render shows buttons through a response and returns the visible controls.
func (h *harness) render(t *testing.T, buttons ...ButtonSpec) []Control {
	t.Helper()
	h.disp.HandleChatbotResponse(context.Background(), ChatResponse{Text: "pick one", Buttons: buttons})
	return h.disp.CurrentGroup()
}

func (h *harness) control(t *testing.T, id string) Control {
	t.Helper()
	for _, c := range h.surface.Group() {
		if c.ID == id {
			return c
		}
	}
	t.Fatalf("control %s not visible", id)
	return Control{}
}

func eventually(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	assert.Eventually(t, cond, time.Second, 5*time.Millisecond, msg)
}
