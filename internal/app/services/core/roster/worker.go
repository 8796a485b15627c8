package roster

import (
	"context"
	"medibook-client/internal/pkg/constvars"
	"medibook-client/internal/pkg/utils"
	"sync"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const fallbackCronSpec = "@every 5m"

// Refresher is the part of the session store the worker drives.
type Refresher interface {
	RefreshDoctors(ctx context.Context) error
	RosterVersion() uint64
}

// Worker periodically refetches the doctor roster so booked slots stay
// current while nobody is interacting with the agent.
type Worker struct {
	log       *zap.Logger
	refresher Refresher
	spec      string

	mu     sync.Mutex
	cron   *cron.Cron
	runCtx context.Context
	cancel context.CancelFunc
}

func NewWorker(log *zap.Logger, refresher Refresher, spec string) *Worker {
	return &Worker{log: log, refresher: refresher, spec: spec}
}

// Start schedules the refresh. An invalid spec falls back to every five
// minutes.
func (w *Worker) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cron != nil {
		return
	}

	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	_, err := c.AddFunc(w.spec, func() { w.RunOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("roster.worker: failed to schedule with provided cron spec; falling back",
			zap.String(constvars.LoggingCronSpecKey, w.spec),
			zap.String("fallback", fallbackCronSpec),
			zap.Error(err),
		)
		c = cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
		_, _ = c.AddFunc(fallbackCronSpec, func() { w.RunOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c

	w.log.Info("roster.worker: started",
		zap.String(constvars.LoggingCronSpecKey, w.spec),
	)
}

// Stop cancels in-flight refreshes and waits for running jobs to return.
func (w *Worker) Stop() {
	w.mu.Lock()
	c, cancel := w.cron, w.cancel
	w.cron, w.cancel = nil, nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if c != nil {
		<-c.Stop().Done()
	}
}

func (w *Worker) RunOnce(ctx context.Context) {
	requestID := utils.GenerateRequestID()
	ctx = utils.WithRequestID(ctx, requestID)
	err := utils.LogOperation(w.log, "roster.refresh", requestID, func() error {
		return w.refresher.RefreshDoctors(ctx)
	})
	if err != nil {
		return
	}
	w.log.Info("roster.worker: roster refreshed",
		zap.Uint64(constvars.LoggingRosterVersionKey, w.refresher.RosterVersion()),
	)
}
