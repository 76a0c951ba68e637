package events

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

const RequestStageChangedEvent = "maintenance_request.stage_changed"

// NewRequestStageChanged builds the audit event published after a stage
// transition has been persisted.
func NewRequestStageChanged(requestID, fromStage, toStage, actorID string) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      RequestStageChangedEvent,
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"request_id": requestID,
			"from_stage": fromStage,
			"to_stage":   toStage,
			"actor_id":   actorID,
		},
	}
}

// RegisterAuditSubscriber attaches the audit-log subscriber. Stage transitions
// have no side effects beyond the field writes; the subscriber only logs.
func RegisterAuditSubscriber(bus *EventBus, logger *slog.Logger) {
	bus.Subscribe(RequestStageChangedEvent, func(ctx context.Context, event Event) error {
		logger.Info("maintenance request stage changed",
			"event_id", event.EventID(),
			"occurred_at", event.OccurredAt(),
			"payload", event.Payload())
		return nil
	})
}
