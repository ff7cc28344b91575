package service

import (
	"context"

	"github.com/MKhiriev/axle-client/internal/logger"
	"github.com/MKhiriev/axle-client/models"
)

type streamingService struct {
	hub *Hub
	ids IDGenerator
}

func NewStreamingService(hub *Hub, ids IDGenerator) StreamingService {
	return &streamingService{hub: hub, ids: ids}
}

func (s *streamingService) Subscribe(ctx context.Context, req *models.SubscribeRequest, send func(*models.Event) error) error {
	log := logger.FromContext(ctx)

	id := s.ids.Generate()
	ch, unsub, err := s.hub.Subscribe(id, req.ProjectIDs)
	if err != nil {
		return err
	}
	defer unsub()

	log.Info().Str("subscriber_id", id).Strs("project_ids", req.ProjectIDs).Msg("streaming: client connected")

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("subscriber_id", id).Msg("streaming: client disconnected")
			return nil
		case e, ok := <-ch:
			if !ok {
				return nil
			}
			if err = send(&e); err != nil {
				log.Err(err).Str("subscriber_id", id).Msg("streaming: send failed")
				return err
			}
		}
	}
}
