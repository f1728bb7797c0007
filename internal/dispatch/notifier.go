package dispatch

import (
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"

	"github.com/sehatsahara/sahara/internal/metrics"
)

// Notifier shows auto-dismissing messages. Every notification gets its own timer; there is
// no queue, no de-duplication and no limit on how many are visible.
type Notifier struct {
	surface Surface
	clock   clock.Clock
	ttl     time.Duration
	metrics *metrics.DispatchMetrics
}

func NewNotifier(s Surface, clk clock.Clock, ttl time.Duration, m *metrics.DispatchMetrics) *Notifier {
	return &Notifier{surface: s, clock: clk, ttl: ttl, metrics: m}
}

// Show renders message and schedules its removal after the TTL. Returns the notification id.
func (n *Notifier) Show(message string, kind Kind) string {
	if kind == "" {
		kind = KindInfo
	}
	id := uuid.NewString()
	n.surface.AddNotification(Notification{ID: id, Message: message, Kind: kind})
	n.metrics.ObserveNotification(string(kind))

	n.clock.AfterFunc(n.ttl, func() {
		n.surface.RemoveNotification(id)
	})
	return id
}
