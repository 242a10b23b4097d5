package form

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goliatone/go-formsheet/pkg/payload"
)

// Submission is a validated payload handed to a Consumer by Save.
type Submission struct {
	ID      uuid.UUID       `json:"id"`
	Payload payload.Payload `json:"payload"`
}

// Consumer receives submissions. Nothing is persisted by the controller.
type Consumer interface {
	Consume(ctx context.Context, sub Submission) error
}

// ConsumerFunc adapts a function into a Consumer.
type ConsumerFunc func(ctx context.Context, sub Submission) error

// Consume delegates to the underlying function.
func (fn ConsumerFunc) Consume(ctx context.Context, sub Submission) error {
	return fn(ctx, sub)
}

// LogConsumer logs each submission and drops it.
type LogConsumer struct {
	Logger *zap.Logger
}

// Consume writes the payload to the logger.
func (c LogConsumer) Consume(_ context.Context, sub Submission) error {
	logger := c.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("Form payload (simulated save). No data is persisted.",
		zap.String("submission_id", sub.ID.String()),
		zap.Any("payload", sub.Payload.Values()),
	)
	return nil
}
