package dispatch

import (
	"context"

	"github.com/sehatsahara/sahara/internal/gateway"
)

// Surface is the rendering collaborator. Implementations own layout; the dispatcher only
// says what to show.
type Surface interface {
	AppendMessage(sender Sender, text string)
	// ReplaceButtonGroup discards the visible group and shows controls in order.
	ReplaceButtonGroup(controls []Control)
	// SetControl updates a control of the visible group. Unknown ids are ignored.
	SetControl(id string, disabled bool, label string)
	AddNotification(n Notification)
	RemoveNotification(id string)
	ShowEmergencyModal(number string)
	ShowPanel(p Panel)
}

// Device exposes the client's hardware capabilities.
type Device interface {
	CameraAvailable() bool
	// RequestCameraPermission blocks until the user grants (nil) or denies (error).
	RequestCameraPermission(ctx context.Context) error
	IsMobile() bool
	Dial(number string)
}

// APIGateway issues backend calls. Call never fails; failures come back in the Result.
type APIGateway interface {
	Call(ctx context.Context, endpoint string, payload any) gateway.Result
}

// UserSource resolves the current user id.
type UserSource interface {
	CurrentUserID() string
}

// StaticUser is a UserSource with a fixed id.
type StaticUser string

func (u StaticUser) CurrentUserID() string { return string(u) }
