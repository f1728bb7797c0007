package ui

import (
	"sync"

	"github.com/sehatsahara/sahara/internal/dispatch"
)

// Event types pushed to the client.
const (
	EventMessage            = "message"
	EventButtons            = "buttons"
	EventControl            = "control"
	EventNotificationAdd    = "notification_add"
	EventNotificationRemove = "notification_remove"
	EventModal              = "modal"
	EventModalClose         = "modal_close"
	EventPanel              = "panel"
)

// History limits. Older entries are dropped from the view; the transcript store keeps its own log.
const (
	MaxMessages = 200
	MaxPanels   = 20
)

// Event is one view change. Data is JSON encodable.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// Sink receives events in the order the view applied them. It must not block.
type Sink func(Event)

type Message struct {
	Sender dispatch.Sender `json:"sender"`
	Text   string          `json:"text"`
}

type Modal struct {
	Number string `json:"number"`
}

// Snapshot is a copy of everything currently visible.
type Snapshot struct {
	Messages      []Message               `json:"messages"`
	Controls      []dispatch.Control      `json:"controls"`
	Notifications []dispatch.Notification `json:"notifications"`
	Modal         *Modal                  `json:"modal,omitempty"`
	Panels        []dispatch.Panel        `json:"panels"`
}

// View is the server-side model of one chat widget. It implements dispatch.Surface and
// mirrors every change to the attached sink.
type View struct {
	mu            sync.Mutex
	messages      []Message
	controls      []dispatch.Control
	notifications []dispatch.Notification
	modal         *Modal
	panels        []dispatch.Panel
	sink          Sink
}

func NewView() *View {
	return &View{}
}

// Attach replaces the sink. A nil sink detaches.
func (v *View) Attach(s Sink) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.sink = s
}

func (v *View) emit(typ string, data any) {
	if v.sink != nil {
		v.sink(Event{Type: typ, Data: data})
	}
}

func (v *View) AppendMessage(sender dispatch.Sender, text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	m := Message{Sender: sender, Text: text}
	v.messages = appendCapped(v.messages, m, MaxMessages)
	v.emit(EventMessage, m)
}

func (v *View) ReplaceButtonGroup(controls []dispatch.Control) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.controls = append([]dispatch.Control(nil), controls...)
	v.emit(EventButtons, map[string]any{"controls": v.copyControls()})
}

func (v *View) SetControl(id string, disabled bool, label string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.controls {
		if v.controls[i].ID != id {
			continue
		}
		v.controls[i].Disabled = disabled
		v.controls[i].Label = label
		v.emit(EventControl, v.controls[i])
		return
	}
}

func (v *View) AddNotification(n dispatch.Notification) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.notifications = append(v.notifications, n)
	v.emit(EventNotificationAdd, n)
}

func (v *View) RemoveNotification(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i, n := range v.notifications {
		if n.ID == id {
			v.notifications = append(v.notifications[:i], v.notifications[i+1:]...)
			v.emit(EventNotificationRemove, map[string]string{"id": id})
			return
		}
	}
}

func (v *View) ShowEmergencyModal(number string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.modal = &Modal{Number: number}
	v.emit(EventModal, *v.modal)
}

// CloseModal dismisses the emergency modal. It reports whether one was open.
func (v *View) CloseModal() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.modal == nil {
		return false
	}
	v.modal = nil
	v.emit(EventModalClose, nil)
	return true
}

func (v *View) ShowPanel(p dispatch.Panel) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.panels = appendCapped(v.panels, p, MaxPanels)
	v.emit(EventPanel, p)
}

// Control returns the visible control with the given id.
func (v *View) Control(id string) (dispatch.Control, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, c := range v.controls {
		if c.ID == id {
			return c, true
		}
	}
	return dispatch.Control{}, false
}

func (v *View) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	s := Snapshot{
		Messages:      append([]Message{}, v.messages...),
		Controls:      v.copyControls(),
		Notifications: append([]dispatch.Notification{}, v.notifications...),
		Panels:        append([]dispatch.Panel{}, v.panels...),
	}
	if v.modal != nil {
		m := *v.modal
		s.Modal = &m
	}
	return s
}

// Resume replays the current state to s and then attaches it. Nothing emitted in between
// is lost. Live state (buttons, modal, notifications) goes first, then panels and the
// message history, oldest first. Used when a client (re)connects.
func (v *View) Resume(s Sink) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.controls) > 0 {
		s(Event{Type: EventButtons, Data: map[string]any{"controls": v.copyControls()}})
	}
	if v.modal != nil {
		s(Event{Type: EventModal, Data: *v.modal})
	}
	for _, n := range v.notifications {
		s(Event{Type: EventNotificationAdd, Data: n})
	}
	for _, p := range v.panels {
		s(Event{Type: EventPanel, Data: p})
	}
	for _, m := range v.messages {
		s(Event{Type: EventMessage, Data: m})
	}
	v.sink = s
}

func (v *View) copyControls() []dispatch.Control {
	return append([]dispatch.Control{}, v.controls...)
}

func appendCapped[T any](list []T, item T, limit int) []T {
	list = append(list, item)
	if over := len(list) - limit; over > 0 {
		list = append(list[:0:0], list[over:]...)
	}
	return list
}
