package dispatch

// ButtonType selects the specific click handler for a button.
type ButtonType string

const (
	ButtonAppointmentBooking ButtonType = "appointment_booking"
	ButtonMedicineScan       ButtonType = "medicine_scan"
	ButtonPrescriptionView   ButtonType = "prescription_view"
	ButtonEmergencyCall      ButtonType = "emergency_call"
)

// Action is a raw action identifier, either on the response or on a button.
type Action string

// Top-level response actions.
const (
	ActionNavigateToAppointmentBooking Action = "NAVIGATE_TO_APPOINTMENT_BOOKING"
	// ActionMapsToAppointmentBooking is the spelling older chatbot builds still emit.
	ActionMapsToAppointmentBooking Action = "Maps_TO_APPOINTMENT_BOOKING"
	ActionTriggerSOS               Action = "TRIGGER_SOS"
	ActionContinueSymptomCheck     Action = "CONTINUE_SYMPTOM_CHECK"
	ActionShowAppFeatures          Action = "SHOW_APP_FEATURES"
)

// Generic (button) actions.
const (
	ActionFetchAppointments       Action = "FETCH_APPOINTMENTS"
	ActionFetchHealthRecord       Action = "FETCH_HEALTH_RECORD"
	ActionShowPrescriptionSummary Action = "SHOW_PRESCRIPTION_SUMMARY"
)

// Style is the visual weight of a button.
type Style string

const (
	StylePrimary   Style = "primary"
	StyleSecondary Style = "secondary"
	StyleDanger    Style = "danger"
	StyleDefault   Style = "default"
)

// Normalize maps anything that is not secondary or danger to primary.
func (s Style) Normalize() Style {
	switch s {
	case StyleSecondary, StyleDanger:
		return s
	default:
		return StylePrimary
	}
}

// Kind is the notification severity.
type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
)

type Sender string

const (
	SenderBot  Sender = "bot"
	SenderUser Sender = "user"
)

// ChatResponse is the chatbot reply consumed by HandleChatbotResponse.
type ChatResponse struct {
	Language   string       `json:"language,omitempty"`
	Text       string       `json:"response"`
	Action     Action       `json:"action,omitempty"`
	Parameters Parameters   `json:"parameters,omitempty"`
	Buttons    []ButtonSpec `json:"interactive_buttons,omitempty"`
}

// ButtonSpec describes one interactive button.
type ButtonSpec struct {
	Type       ButtonType `json:"type"`
	Text       string     `json:"text"`
	Action     Action     `json:"action"`
	Style      Style      `json:"style,omitempty"`
	Parameters Parameters `json:"parameters,omitempty"`
}

// Control is a rendered button.
type Control struct {
	ID       string     `json:"id"`
	Label    string     `json:"label"`
	Style    Style      `json:"style"`
	Disabled bool       `json:"disabled"`
	Spec     ButtonSpec `json:"-"`
}

type Notification struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Kind    Kind   `json:"kind"`
}

// Panel is a block of fetched data shown in the chat area.
type Panel struct {
	Kind string         `json:"kind"`
	Data map[string]any `json:"data,omitempty"`
}

const (
	PanelPrescriptionSummary = "prescription_summary"
	PanelAppointments        = "appointments"
	PanelHealthRecords       = "health_records"
)
