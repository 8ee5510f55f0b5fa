package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/shadow1264/freshbite-delivery/internal/service"
)

// PresenceWorker periodically refreshes the authenticated user's
// last-seen timestamp. Each tick goes through the operations boundary,
// so it never interleaves with a domain operation.
type PresenceWorker struct {
	service  *service.Service
	interval time.Duration
	logger   *zap.SugaredLogger
	ctx      context.Context
	cancel   context.CancelFunc
	done     chan struct{}
	started  bool
}

func NewPresenceWorker(svc *service.Service, interval time.Duration, logger *zap.SugaredLogger) *PresenceWorker {
	ctx, cancel := context.WithCancel(context.Background())

	return &PresenceWorker{
		service:  svc,
		interval: interval,
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
}

func (w *PresenceWorker) Start() {
	w.logger.Infow("starting presence worker", "interval", w.interval)
	w.started = true

	go func() {
		defer close(w.done)

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-w.ctx.Done():
				return
			case <-ticker.C:
				w.service.RefreshPresence()
			}
		}
	}()
}

// Stop cancels the ticker loop and waits for it to drain. Safe to call
// even if Start never ran.
func (w *PresenceWorker) Stop() {
	w.logger.Info("stopping presence worker")
	w.cancel()
	if w.started {
		<-w.done
	}
}
