package event

import (
	"context"
	"log/slog"
)

// NoopEventPublisher is used when RabbitMQ is disabled in configuration.
type NoopEventPublisher struct {
	logger *slog.Logger
}

var _ EventPublisher = (*NoopEventPublisher)(nil)

func NewNoopEventPublisher(logger *slog.Logger) *NoopEventPublisher {
	return &NoopEventPublisher{logger: logger.With("component", "NoopEventPublisher")}
}

func (p *NoopEventPublisher) PublishCustomerCreated(ctx context.Context, event CustomerCreatedEvent) error {
	p.logger.DebugContext(ctx, "Event publishing disabled, dropping event", "routingKey", routingKeyCustomerCreated)
	return nil
}

func (p *NoopEventPublisher) PublishCustomerUpdated(ctx context.Context, event CustomerUpdatedEvent) error {
	p.logger.DebugContext(ctx, "Event publishing disabled, dropping event", "routingKey", routingKeyCustomerUpdated)
	return nil
}

func (p *NoopEventPublisher) PublishCreditCreated(ctx context.Context, event CreditCreatedEvent) error {
	p.logger.DebugContext(ctx, "Event publishing disabled, dropping event", "routingKey", routingKeyCreditCreated)
	return nil
}
