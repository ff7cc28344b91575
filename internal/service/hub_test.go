package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/axle-client/internal/logger"
	"github.com/MKhiriev/axle-client/models"
)

func TestHub_FiltersByProject(t *testing.T) {
	hub := NewHub(logger.Nop())
	all, unsubAll, err := hub.Subscribe("all", nil)
	require.NoError(t, err)
	defer unsubAll()
	p1, unsubP1, err := hub.Subscribe("p1", []string{"p1"})
	require.NoError(t, err)
	defer unsubP1()

	hub.Publish(context.Background(), models.Event{ID: "e1", ProjectID: "p1"})
	hub.Publish(context.Background(), models.Event{ID: "e2", ProjectID: "p2"})
	hub.Publish(context.Background(), models.Event{ID: "e3"})

	assert.Equal(t, []string{"e1", "e2", "e3"}, drain(all))
	assert.Equal(t, []string{"e1", "e3"}, drain(p1))
}

func TestHub_DropsWhenBufferFull(t *testing.T) {
	hub := NewHub(logger.Nop())
	ch, unsub, err := hub.Subscribe("slow", nil)
	require.NoError(t, err)
	defer unsub()

	for i := 0; i < SubscriberBuffer+10; i++ {
		hub.Publish(context.Background(), models.Event{ID: "e"})
	}

	assert.Len(t, drain(ch), SubscriberBuffer)
}

func TestHub_UnsubscribeIsIdempotent(t *testing.T) {
	hub := NewHub(logger.Nop())
	ch, unsub, err := hub.Subscribe("a", nil)
	require.NoError(t, err)

	unsub()
	unsub()

	_, open := <-ch
	assert.False(t, open)
	assert.Zero(t, hub.Len())
	assert.NotPanics(t, func() { hub.Publish(context.Background(), models.Event{}) })
}

func TestHub_Close(t *testing.T) {
	hub := NewHub(logger.Nop())
	ch, unsub, err := hub.Subscribe("a", nil)
	require.NoError(t, err)

	hub.Close()
	hub.Close()
	unsub()

	_, open := <-ch
	assert.False(t, open)

	_, _, err = hub.Subscribe("b", nil)
	assert.ErrorIs(t, err, ErrHubClosed)
}

func TestStreamingService_DeliversUntilCancel(t *testing.T) {
	hub := NewHub(logger.Nop())
	svc := NewStreamingService(hub, &seqIDs{})
	ctx, cancel := context.WithCancel(context.Background())

	var (
		mu  sync.Mutex
		got []string
	)
	done := make(chan error, 1)
	go func() {
		done <- svc.Subscribe(ctx, &models.SubscribeRequest{ProjectIDs: []string{"p1"}}, func(e *models.Event) error {
			mu.Lock()
			defer mu.Unlock()
			got = append(got, e.ID)
			return nil
		})
	}()

	require.Eventually(t, func() bool { return hub.Len() == 1 }, time.Second, time.Millisecond)
	hub.Publish(ctx, models.Event{ID: "e1", ProjectID: "p1"})
	hub.Publish(ctx, models.Event{ID: "e2", ProjectID: "p2"})
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 1
	}, time.Second, time.Millisecond)

	cancel()
	require.NoError(t, <-done)
	assert.Equal(t, []string{"e1"}, got)
	assert.Zero(t, hub.Len())
}

func TestStreamingService_SendErrorEndsStream(t *testing.T) {
	hub := NewHub(logger.Nop())
	svc := NewStreamingService(hub, &seqIDs{})
	sendErr := errors.New("client gone")

	done := make(chan error, 1)
	go func() {
		done <- svc.Subscribe(context.Background(), &models.SubscribeRequest{}, func(*models.Event) error {
			return sendErr
		})
	}()

	require.Eventually(t, func() bool { return hub.Len() == 1 }, time.Second, time.Millisecond)
	hub.Publish(context.Background(), models.Event{ID: "e1"})

	assert.ErrorIs(t, <-done, sendErr)
}

func TestStreamingService_HubCloseEndsStream(t *testing.T) {
	hub := NewHub(logger.Nop())
	svc := NewStreamingService(hub, &seqIDs{})

	done := make(chan error, 1)
	go func() {
		done <- svc.Subscribe(context.Background(), &models.SubscribeRequest{}, func(*models.Event) error { return nil })
	}()

	require.Eventually(t, func() bool { return hub.Len() == 1 }, time.Second, time.Millisecond)
	hub.Close()

	assert.NoError(t, <-done)
}

func drain(ch <-chan models.Event) []string {
	var ids []string
	for {
		select {
		case e, ok := <-ch:
			if !ok {
				return ids
			}
			ids = append(ids, e.ID)
		default:
			return ids
		}
	}
}
