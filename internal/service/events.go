package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MKhiriev/axle-client/internal/logger"
	"github.com/MKhiriev/axle-client/models"
)

// Event types published by the services.
const (
	EventProjectCreated = "project.created"
	EventProjectUpdated = "project.updated"
	EventProjectDeleted = "project.deleted"
	EventUserUpdated    = "user.updated"
)

// eventFactory stamps events with ids and timestamps before publishing.
type eventFactory struct {
	publisher EventPublisher
	ids       IDGenerator
	now       func() time.Time
}

func (f eventFactory) publish(ctx context.Context, eventType, projectID string, payload any) {
	if f.publisher == nil {
		return
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("event_type", eventType).Msg("failed to encode event payload")
		return
	}

	f.publisher.Publish(ctx, models.Event{
		ID:         f.ids.Generate(),
		Type:       eventType,
		ProjectID:  projectID,
		Payload:    raw,
		OccurredAt: f.now(),
	})
}
