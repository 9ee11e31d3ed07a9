package repository

import (
	"context"

	"github.com/trip-microservice/internal/domain"
)

// StreamRepository - Redis Streams access for trip events.
type StreamRepository interface {
	// PublishToStream publishes a message, JSON-encoded under "data".
	PublishToStream(ctx context.Context, stream string, data interface{}) error

	// CreateConsumerGroup creates a consumer group, tolerating BUSYGROUP.
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// ConsumeBatch reads up to count pending messages without blocking forever.
	ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error)

	// AckMessage acknowledges a processed message.
	AckMessage(ctx context.Context, stream, group, messageID string) error
}
