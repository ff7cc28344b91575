package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/axle-client/internal/logger"
)

// RefreshJob calls a Refresher on a fixed interval. A non-positive interval
// disables the job: Start becomes a no-op.
type RefreshJob struct {
	name      string
	refresher Refresher
	interval  time.Duration
	logger    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewRefreshJob(name string, refresher Refresher, interval time.Duration, log *logger.Logger) *RefreshJob {
	if log == nil {
		log = logger.Nop()
	}
	return &RefreshJob{name: name, refresher: refresher, interval: interval, logger: log}
}

// Start stops a previous run, then refreshes every interval until ctx ends
// or Stop is called. Ticks that arrive while a refresh is still running are
// dropped by the ticker.
func (j *RefreshJob) Start(ctx context.Context) {
	if j.interval <= 0 {
		j.logger.Debug().Str("job", j.name).Msg("refresh job disabled")
		return
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.refresher.Refresh(jobCtx); err != nil && jobCtx.Err() == nil {
					j.logger.Warn().Err(err).Str("job", j.name).Msg("periodic refresh failed")
				}
			}
		}
	}()
}

// Stop cancels the running loop and waits for it to exit. It is a no-op
// when the job is not running.
func (j *RefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
