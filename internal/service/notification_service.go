package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/estate-crm/internal/events"
)

// NotificationService turns domain events into operator-facing notices.
// Delivery is a log line; the UI layer owning toasts subscribes the same
// way through the dispatcher.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventLeadCreated, n.handleLeadEvent)
	n.dispatcher.Subscribe(events.EventLeadAssigned, n.handleLeadEvent)
	n.dispatcher.Subscribe(events.EventLeadDeleted, n.handleLeadEvent)
	n.dispatcher.Subscribe(events.EventLeadsImported, n.handleLeadEvent)
	n.dispatcher.Subscribe(events.EventPropertyDeleted, n.handleCascadeEvent)
	n.dispatcher.Subscribe(events.EventMemberRemoved, n.handleCascadeEvent)
}

func (n *NotificationService) handleLeadEvent(_ context.Context, event events.Event) error {
	n.logger.Info(string(event.Type),
		zap.String("entity_id", event.EntityID),
		zap.String("actor", event.Actor.Name),
		zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleCascadeEvent(_ context.Context, event events.Event) error {
	n.logger.Info(string(event.Type),
		zap.String("entity_id", event.EntityID),
		zap.String("actor", event.Actor.Name),
		zap.Any("payload", event.Payload))
	return nil
}
