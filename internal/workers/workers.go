package workers

import (
	"context"
	"time"

	"github.com/sharemycard/cardsync/internal/config"
	"github.com/sharemycard/cardsync/internal/service"
)

type Workers struct {
	workers []Worker
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop stops every worker that supports stopping, in reverse start
// order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		if s, ok := w.workers[i].(interface{ Stop() }); ok {
			s.Stop()
		}
	}
}

// NewClientWorkers assembles the client's background workers: currently
// just the periodic sync job.
func NewClientWorkers(ctx context.Context, services *service.ClientServices, cfg config.ClientWorkers) *Workers {
	return &Workers{
		workers: []Worker{
			&syncWorker{ctx: ctx, job: services.SyncJob, interval: cfg.SyncInterval},
		},
	}
}

// syncWorker adapts the periodic sync job to the Worker contract.
type syncWorker struct {
	ctx      context.Context
	job      service.SyncJob
	interval time.Duration
}

func (w *syncWorker) Run() {
	w.job.Start(w.ctx, w.interval)
}

func (w *syncWorker) Stop() {
	w.job.Stop()
}
