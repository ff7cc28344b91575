package models

import (
	"encoding/json"
	"time"
)

// SubscribeRequest opens a gateway.v1 event stream. An empty ProjectIDs list
// subscribes to events of every project.
type SubscribeRequest struct {
	ProjectIDs []string `json:"projectIds"`
}

// Event is a single gateway.v1.Event pushed by the streaming gateway.
type Event struct {
	// ID is unique per event and assigned by the publisher.
	ID string `json:"id"`

	// Type names the domain event, e.g. "project.updated".
	Type string `json:"type"`

	// ProjectID is empty for events that are not scoped to a project.
	ProjectID string `json:"projectId,omitempty"`

	// Payload is passed through undecoded; its shape depends on Type.
	Payload json.RawMessage `json:"payload,omitempty"`

	OccurredAt time.Time `json:"occurredAt,omitzero"`
}
