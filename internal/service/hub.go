// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/axle-client/internal/logger"
	"github.com/MKhiriev/axle-client/models"
)

// SubscriberBuffer is the per-subscriber queue length. Events published to
// a full queue are dropped for that subscriber only.
const SubscriberBuffer = 64

type subscriber struct {
	ch         chan models.Event
	projectIDs []string
}

func (s *subscriber) wants(e models.Event) bool {
	if len(s.projectIDs) == 0 || e.ProjectID == "" {
		return true
	}
	return slices.Contains(s.projectIDs, e.ProjectID)
}

// Hub fans published events out to subscribers. It is safe for concurrent
// use.
type Hub struct {
	mu     sync.RWMutex
	subs   map[string]*subscriber
	closed bool

	logger *logger.Logger
}

func NewHub(log *logger.Logger) *Hub {
	return &Hub{subs: make(map[string]*subscriber), logger: log}
}

// Subscribe registers id for events of projectIDs (all projects when
// empty) and returns the event channel and an idempotent unsubscribe func.
// The channel is closed on unsubscribe or when the hub closes.
func (h *Hub) Subscribe(id string, projectIDs []string) (<-chan models.Event, func(), error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, nil, ErrHubClosed
	}

	sub := &subscriber{ch: make(chan models.Event, SubscriberBuffer), projectIDs: slices.Clone(projectIDs)}
	h.subs[id] = sub

	var once sync.Once
	unsub := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if cur, ok := h.subs[id]; ok && cur == sub {
				delete(h.subs, id)
				close(sub.ch)
			}
		})
	}
	return sub.ch, unsub, nil
}

// Publish delivers e to every matching subscriber without blocking.
func (h *Hub) Publish(ctx context.Context, e models.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, sub := range h.subs {
		if !sub.wants(e) {
			continue
		}
		select {
		case sub.ch <- e:
		default:
			h.logger.Warn().Str("subscriber_id", id).Str("event_type", e.Type).Msg("hub: subscriber buffer full, dropping event")
		}
	}
}

// Len reports the number of active subscribers.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Close closes every subscriber channel and rejects new subscriptions.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for id, sub := range h.subs {
		delete(h.subs, id)
		close(sub.ch)
	}
}
