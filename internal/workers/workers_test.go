// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type orderWorker struct {
	id    int
	order *[]string
}

func (w *orderWorker) Start(context.Context) {
	*w.order = append(*w.order, "start", string(rune('0'+w.id)))
}

func (w *orderWorker) Stop() {
	*w.order = append(*w.order, "stop", string(rune('0'+w.id)))
}

func TestWorkers_StartStopOrder(t *testing.T) {
	var order []string
	ws := NewWorkers(&orderWorker{id: 1, order: &order}, &orderWorker{id: 2, order: &order})

	ws.Start(context.Background())
	ws.Stop()

	assert.Equal(t, []string{"start", "1", "start", "2", "stop", "2", "stop", "1"}, order)
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	assert.NotPanics(t, func() {
		ws.Start(context.Background())
		ws.Stop()
	})
}
