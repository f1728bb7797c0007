package webchat

// --- Client to server ---

const (
	InHello        = "hello"
	InMessage      = "message"
	InClick        = "click"
	InCameraResult = "camera_result"
	InCloseModal   = "close_modal"
	InPing         = "ping"
)

// Inbound is a frame sent by the widget. Only the fields of its Type are set.
type Inbound struct {
	Type string `json:"type"`

	// hello
	UserAgent string `json:"user_agent,omitempty"`
	Camera    bool   `json:"camera,omitempty"`

	// message
	Text string `json:"text,omitempty"`

	// click
	ControlID string `json:"control_id,omitempty"`

	// camera_result
	RequestID string `json:"request_id,omitempty"`
	Granted   bool   `json:"granted,omitempty"`
}

// --- Server to client ---
// View changes are sent as ui.Event; the types below are the connection level extras.

const (
	OutSession       = "session"
	OutNavigate      = "navigate"
	OutCameraRequest = "camera_request"
	OutPong          = "pong"
	OutError         = "error"
)

type SessionInfo struct {
	SessionID string `json:"session_id"`
}

type Navigate struct {
	URL string `json:"url"`
}

type CameraRequest struct {
	RequestID string `json:"request_id"`
}

type ErrorInfo struct {
	Message string `json:"message"`
}
