package webchat

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"

	"github.com/sehatsahara/sahara/internal/ui"
)

var (
	ErrPermissionDenied  = errors.New("camera permission denied")
	ErrPermissionTimeout = errors.New("camera permission request timed out")
	ErrNoClient          = errors.New("no client connected")
)

var mobileUserAgent = regexp.MustCompile(`(?i)Android|webOS|iPhone|iPad|iPod|BlackBerry|IEMobile|Opera Mini`)

// IsMobileUserAgent reports whether ua belongs to a phone or tablet browser.
func IsMobileUserAgent(ua string) bool {
	return mobileUserAgent.MatchString(ua)
}

// device is the dispatch.Device of one session. Capabilities come from the latest hello;
// permission prompts and dialing are forwarded to the connected widget.
type device struct {
	mu      sync.Mutex
	mobile  bool
	camera  bool
	send    ui.Sink
	pending map[string]chan bool

	clock   clock.Clock
	timeout time.Duration
}

func newDevice(clk clock.Clock, timeout time.Duration) *device {
	return &device{pending: make(map[string]chan bool), clock: clk, timeout: timeout}
}

func (d *device) setCapabilities(userAgent string, camera bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.mobile = IsMobileUserAgent(userAgent)
	d.camera = camera
}

// attach points the device at a connection. Outstanding permission requests are sent
// again to a new connection; a nil sink detaches and denies them.
func (d *device) attach(s ui.Sink) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.send = s
	for id, ch := range d.pending {
		if s != nil {
			s(Event(OutCameraRequest, CameraRequest{RequestID: id}))
			continue
		}
		ch <- false
		delete(d.pending, id)
	}
}

func (d *device) CameraAvailable() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.camera
}

func (d *device) IsMobile() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mobile
}

// RequestCameraPermission asks the widget and waits for its camera_result.
func (d *device) RequestCameraPermission(ctx context.Context) error {
	id := uuid.NewString()
	ch := make(chan bool, 1)

	d.mu.Lock()
	if d.send == nil {
		d.mu.Unlock()
		return ErrNoClient
	}
	d.pending[id] = ch
	d.send(Event(OutCameraRequest, CameraRequest{RequestID: id}))
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		delete(d.pending, id)
		d.mu.Unlock()
	}()

	select {
	case granted := <-ch:
		if !granted {
			return ErrPermissionDenied
		}
		return nil
	case <-d.clock.After(d.timeout):
		return ErrPermissionTimeout
	case <-ctx.Done():
		return ctx.Err()
	}
}

// resolve delivers a camera_result. Unknown or already settled ids are ignored.
func (d *device) resolve(requestID string, granted bool) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	ch, ok := d.pending[requestID]
	if !ok {
		return false
	}
	delete(d.pending, requestID)
	ch <- granted
	return true
}

// Dial asks the widget to open a tel: link.
func (d *device) Dial(number string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.send != nil {
		d.send(Event(OutNavigate, Navigate{URL: "tel:" + number}))
	}
}

// Event builds a connection level event.
func Event(typ string, data any) ui.Event {
	return ui.Event{Type: typ, Data: data}
}
