package dispatch

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/sehatsahara/sahara/internal/metrics"
)

// ProcessingLabel replaces a control's text while its click is being handled.
const ProcessingLabel = "Processing..."

const defaultEmergencyNumber = "108"

var ErrUnknownControl = errors.New("control is not part of the current button group")

// Timing holds the fixed UI delays.
type Timing struct {
	ButtonReset     time.Duration
	NotificationTTL time.Duration
	EmergencyDial   time.Duration
}

func DefaultTiming() Timing {
	return Timing{
		ButtonReset:     1000 * time.Millisecond,
		NotificationTTL: 3000 * time.Millisecond,
		EmergencyDial:   2000 * time.Millisecond,
	}
}

// PrescriptionFormatter renders a prescription summary as chat text in the given language.
type PrescriptionFormatter func(summary map[string]any, language string) string

type Deps struct {
	Surface Surface
	Device  Device
	Gateway APIGateway
	Users   UserSource
	Clock   clock.Clock
	Logger  *zap.Logger
	Metrics *metrics.DispatchMetrics
	Timing  Timing

	// EmergencyNumber is used when a button carries no emergency_number. Defaults to "108".
	EmergencyNumber    string
	FormatPrescription PrescriptionFormatter
}

type handlerFunc func(ctx context.Context, params Parameters)

// Dispatcher maps chatbot responses and button clicks to UI effects and backend calls.
// One Dispatcher serves one chat surface and owns that surface's current button group.
type Dispatcher struct {
	surface  Surface
	device   Device
	gateway  APIGateway
	users    UserSource
	clock    clock.Clock
	logger   *zap.Logger
	metrics  *metrics.DispatchMetrics
	notifier *Notifier
	renderer *Renderer
	timing   Timing

	emergencyNumber    string
	formatPrescription PrescriptionFormatter

	buttons  map[ButtonType]handlerFunc
	topLevel map[Action]handlerFunc
	generic  map[Action]handlerFunc

	mu       sync.Mutex
	group    []Control
	language string

	pending sync.WaitGroup
}

func New(d Deps) *Dispatcher {
	if d.Clock == nil {
		d.Clock = clock.New()
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Users == nil {
		d.Users = StaticUser("default_user")
	}
	if d.Timing == (Timing{}) {
		d.Timing = DefaultTiming()
	}
	if d.EmergencyNumber == "" {
		d.EmergencyNumber = defaultEmergencyNumber
	}

	disp := &Dispatcher{
		surface:            d.Surface,
		device:             d.Device,
		gateway:            d.Gateway,
		users:              d.Users,
		clock:              d.Clock,
		logger:             d.Logger,
		metrics:            d.Metrics,
		notifier:           NewNotifier(d.Surface, d.Clock, d.Timing.NotificationTTL, d.Metrics),
		renderer:           NewRenderer(d.Surface),
		timing:             d.Timing,
		emergencyNumber:    d.EmergencyNumber,
		formatPrescription: d.FormatPrescription,
	}
	disp.registerHandlers()
	return disp
}

// Notifier exposes the dispatcher's notifier to collaborators sharing the same surface.
func (d *Dispatcher) Notifier() *Notifier { return d.notifier }

// HandleChatbotResponse displays the text, replaces the button group when the response
// carries buttons, and then resolves the top-level action.
func (d *Dispatcher) HandleChatbotResponse(ctx context.Context, resp ChatResponse) {
	if resp.Language != "" {
		d.mu.Lock()
		d.language = resp.Language
		d.mu.Unlock()
	}

	d.displayMessage(resp.Text)

	if len(resp.Buttons) > 0 {
		d.showButtons(resp.Buttons)
	}

	if resp.Action != "" {
		d.handleAction(ctx, resp.Action, resp.Parameters)
	}
}

// HandleButtonClick runs the click lifecycle for a control of the current group: disable it
// and show the processing label, dispatch, then re-enable it after the fixed reset delay.
//
// The reset is timer driven and does not wait for the triggered action, so a slow action can
// still be in flight when the control becomes clickable again. There is no reentrancy guard
// here either; dropping clicks on disabled controls is the rendering layer's job.
func (d *Dispatcher) HandleButtonClick(ctx context.Context, controlID string) error {
	c, ok := d.lookupControl(controlID)
	if !ok {
		return ErrUnknownControl
	}

	d.logger.Debug("dispatch: button clicked",
		zap.String("control_id", c.ID),
		zap.String("type", string(c.Spec.Type)),
		zap.String("action", string(c.Spec.Action)))
	h, ok := d.buttons[c.Spec.Type]
	d.metrics.ObserveClick(string(c.Spec.Type), ok)

	d.surface.SetControl(c.ID, true, ProcessingLabel)

	if ok {
		h(ctx, c.Spec.Parameters)
	} else {
		d.handleGenericAction(ctx, c.Spec.Action, c.Spec.Parameters)
	}

	id, text := c.ID, c.Spec.Text
	d.clock.AfterFunc(d.timing.ButtonReset, func() {
		d.surface.SetControl(id, false, text)
	})
	return nil
}

// CurrentGroup returns a copy of the visible button group.
func (d *Dispatcher) CurrentGroup() []Control {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Control, len(d.group))
	copy(out, d.group)
	return out
}

// Wait blocks until every background call started by the dispatcher has settled.
func (d *Dispatcher) Wait() {
	d.pending.Wait()
}

func (d *Dispatcher) lookupControl(id string) (Control, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, c := range d.group {
		if c.ID == id {
			return c, true
		}
	}
	return Control{}, false
}

func (d *Dispatcher) displayMessage(text string) {
	d.surface.AppendMessage(SenderBot, DecodeUnicode(text))
}

func (d *Dispatcher) showButtons(buttons []ButtonSpec) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.group = d.renderer.Render(buttons)
}

func (d *Dispatcher) currentLanguage() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.language
}

// async runs fn in the background. Callers hand it a context detached from cancellation:
// outbound calls settle even when the originating session goes away.
func (d *Dispatcher) async(fn func()) {
	d.pending.Add(1)
	go func() {
		defer d.pending.Done()
		fn()
	}()
}
