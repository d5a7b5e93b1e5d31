package service

import (
	"context"
	"time"

	"github.com/Skotchmaster/hospital/internal/mykafka"
	"github.com/Skotchmaster/hospital/pkg/logging"
)

const publishTimeout = 5 * time.Second

// publish never fails the caller; delivery errors are only logged.
func publish(ctx context.Context, p mykafka.Publisher, topic, key string, ev mykafka.Event) {
	if p == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	ev.At = time.Now().UTC()
	if err := p.PublishEvent(ctx, topic, key, ev); err != nil {
		logging.FromContext(ctx).Error("publish_failed", "topic", topic, "type", ev.Type, "error", err)
	}
}
