package redis

import (
	"context"
	"encoding/json"

	"lms-admin-service/internal/app"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// DefaultChannel is where admin notifications are published.
const DefaultChannel = "lms:notifications"

// Notifier publishes notifications as JSON on a Redis pub/sub channel.
type Notifier struct {
	client  *redis.Client
	channel string
	logger  *zap.Logger
}

func NewNotifier(client *redis.Client, channel string, logger *zap.Logger) *Notifier {
	if channel == "" {
		channel = DefaultChannel
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Notifier{client: client, channel: channel, logger: logger}
}

func (n *Notifier) Notify(ctx context.Context, note app.Notification) {
	payload, err := json.Marshal(note)
	if err != nil {
		n.logger.Warn("encode notification", zap.Error(err))
		return
	}
	if err := n.client.Publish(ctx, n.channel, payload).Err(); err != nil {
		n.logger.Warn("publish notification", zap.String("channel", n.channel), zap.Error(err))
	}
}

// Subscribe decodes notifications from the channel until ctx is done.
func (n *Notifier) Subscribe(ctx context.Context) (<-chan app.Notification, error) {
	sub := n.client.Subscribe(ctx, n.channel)
	// wait for the subscription to be confirmed so no publish is missed
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, err
	}

	out := make(chan app.Notification, 16)
	go func() {
		defer close(out)
		defer sub.Close()
		msgs := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var note app.Notification
				if err := json.Unmarshal([]byte(msg.Payload), &note); err != nil {
					n.logger.Warn("decode notification", zap.Error(err))
					continue
				}
				select {
				case out <- note:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
