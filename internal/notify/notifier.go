package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	EventBookingExpired  = "booking.expired"
	EventBookingsChanged = "bookings.changed"
)

// Event is a fire-and-forget notification. Delivery is best effort; no
// consumer acknowledgement is expected.
type Event struct {
	Type      string    `json:"type"`
	VenueID   string    `json:"venue_id"`
	BookingID string    `json:"booking_id,omitempty"`
	Message   string    `json:"message"`
	At        time.Time `json:"at"`
}

type Notifier interface {
	Notify(ctx context.Context, event Event)
}

// LogNotifier writes events to the application log.
type LogNotifier struct {
	log *zap.Logger
}

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	return &LogNotifier{log: log.With(zap.String("notifier", "log"))}
}

func (n *LogNotifier) Notify(_ context.Context, event Event) {
	n.log.Info("Notification",
		zap.String("type", event.Type),
		zap.String("venue_id", event.VenueID),
		zap.String("booking_id", event.BookingID),
		zap.String("message", event.Message),
	)
}

// RedisNotifier publishes events to a redis channel. Publish failures are
// logged and swallowed; notifications carry no delivery guarantee.
type RedisNotifier struct {
	client  *redis.Client
	channel string
	log     *zap.Logger
}

func NewRedisNotifier(client *redis.Client, channel string, log *zap.Logger) *RedisNotifier {
	return &RedisNotifier{
		client:  client,
		channel: channel,
		log:     log.With(zap.String("notifier", "redis")),
	}
}

func (n *RedisNotifier) Notify(ctx context.Context, event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		n.log.Warn("Failed to marshal notification", zap.Error(err))
		return
	}

	if err := n.client.Publish(ctx, n.channel, payload).Err(); err != nil {
		n.log.Warn("Failed to publish notification",
			zap.Error(err),
			zap.String("channel", n.channel),
			zap.String("type", event.Type),
		)
	}
}

// Fanout dispatches each event to every configured notifier.
type Fanout struct {
	notifiers []Notifier
}

func NewFanout(notifiers ...Notifier) *Fanout {
	return &Fanout{notifiers: notifiers}
}

func (f *Fanout) Notify(ctx context.Context, event Event) {
	for _, n := range f.notifiers {
		n.Notify(ctx, event)
	}
}
