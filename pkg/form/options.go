package form

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goliatone/go-formsheet/pkg/payload"
	"github.com/goliatone/go-formsheet/pkg/status"
)

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for action tracing and by the default
// consumer.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithConsumer replaces the default LogConsumer.
func WithConsumer(consumer Consumer) Option {
	return func(c *Controller) {
		if consumer != nil {
			c.consumer = consumer
		}
	}
}

// WithStatusDisplay attaches a display to the status slot. It also receives
// the message written by the initial reset. Displays run while the controller
// lock is held and must not call back into the controller.
func WithStatusDisplay(display status.Display) Option {
	return func(c *Controller) {
		c.slot.Attach(display)
	}
}

// WithBuilderOptions configures the payload builder.
func WithBuilderOptions(options ...payload.Option) Option {
	return func(c *Controller) {
		c.builderOptions = append(c.builderOptions, options...)
	}
}

// WithIDGenerator overrides how submission ids are minted.
func WithIDGenerator(fn func() uuid.UUID) Option {
	return func(c *Controller) {
		if fn != nil {
			c.newID = fn
		}
	}
}
