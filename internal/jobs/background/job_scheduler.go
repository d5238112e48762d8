package background

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"vsdcgateway/internal/services"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

const itemSyncJobName = "vsdc-item-sync"

// ItemSyncer syncs the items EBM has not accepted yet.
type ItemSyncer interface {
	SyncPending(ctx context.Context, maxAttempts, batchSize int) (services.SyncSummary, error)
}

// SyncOptions configures the item sync sweep. A zero Interval disables it.
type SyncOptions struct {
	Interval    time.Duration
	MaxAttempts int
	BatchSize   int
}

// JobScheduler runs the background jobs of the gateway
type JobScheduler struct {
	scheduler gocron.Scheduler
	items     ItemSyncer
	opts      SyncOptions
	logger    *zap.Logger
	jobs      map[string]gocron.Job
	mu        sync.RWMutex
	ctx       context.Context
	cancel    context.CancelFunc
}

// NewJobScheduler creates the scheduler and registers its jobs. It does not start them.
func NewJobScheduler(items ItemSyncer, opts SyncOptions, logger *zap.Logger, schedulerOpts ...gocron.SchedulerOption) (*JobScheduler, error) {
	scheduler, err := gocron.NewScheduler(schedulerOpts...)
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	js := &JobScheduler{
		scheduler: scheduler,
		items:     items,
		opts:      opts,
		logger:    logger,
		jobs:      make(map[string]gocron.Job),
		ctx:       ctx,
		cancel:    cancel,
	}

	if err := js.registerJobs(); err != nil {
		cancel()
		_ = scheduler.Shutdown()
		return nil, err
	}
	return js, nil
}

// Start starts the job scheduler
func (js *JobScheduler) Start() {
	js.logger.Info("starting background job scheduler", zap.Strings("jobs", js.JobNames()))
	js.scheduler.Start()
}

// Stop cancels running jobs and waits for them to return.
func (js *JobScheduler) Stop() error {
	js.logger.Info("stopping background job scheduler")
	js.cancel()
	return js.scheduler.Shutdown()
}

// JobNames lists the registered jobs in name order.
func (js *JobScheduler) JobNames() []string {
	js.mu.RLock()
	defer js.mu.RUnlock()
	names := make([]string, 0, len(js.jobs))
	for name := range js.jobs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (js *JobScheduler) registerJobs() error {
	if js.opts.Interval <= 0 {
		js.logger.Info("item sync job disabled")
		return nil
	}

	job, err := js.scheduler.NewJob(
		gocron.DurationJob(js.opts.Interval),
		gocron.NewTask(js.syncPendingItems, js.ctx),
		gocron.WithName(itemSyncJobName),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("create item sync job: %w", err)
	}

	js.mu.Lock()
	js.jobs[itemSyncJobName] = job
	js.mu.Unlock()
	return nil
}

// syncPendingItems sends unsynced items to EBM through the same path as the manual route.
func (js *JobScheduler) syncPendingItems(ctx context.Context) error {
	start := time.Now()
	summary, err := js.items.SyncPending(ctx, js.opts.MaxAttempts, js.opts.BatchSize)
	if err != nil {
		js.logger.Error("item sync sweep failed", zap.Error(err))
		return err
	}
	if summary.Attempted > 0 {
		js.logger.Info("item sync sweep finished",
			zap.Int("attempted", summary.Attempted),
			zap.Int("succeeded", summary.Succeeded),
			zap.Int("failed", summary.Failed),
			zap.Duration("duration", time.Since(start)),
		)
	}
	return nil
}
