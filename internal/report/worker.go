package report

import (
	"context"
	"sync"

	"site-uptime-backend/internal/logger"
)

// WorkerPool runs report jobs on a fixed number of goroutines.
type WorkerPool struct {
	size   int
	jobs   chan string
	handle func(ctx context.Context, reportID string)
	log    logger.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// NewWorkerPool creates a pool with size workers and a queue of queueSize pending ids.
func NewWorkerPool(size, queueSize int, handle func(ctx context.Context, reportID string), log logger.Logger) *WorkerPool {
	if size <= 0 {
		size = 1
	}
	if queueSize <= 0 {
		queueSize = size
	}
	return &WorkerPool{
		size:   size,
		jobs:   make(chan string, queueSize),
		handle: handle,
		log:    log,
	}
}

// Start launches the worker goroutines. They stop picking up work when ctx is
// done or Stop is called; a job already running is not interrupted.
func (wp *WorkerPool) Start(ctx context.Context) {
	ctx, wp.cancel = context.WithCancel(ctx)
	for i := 0; i < wp.size; i++ {
		wp.wg.Add(1)
		go wp.worker(ctx, i)
	}
}

func (wp *WorkerPool) worker(ctx context.Context, id int) {
	defer wp.wg.Done()
	log := wp.log.With().Int("worker", id).Logger()
	log.Debug().Msg("report worker started")

	for {
		select {
		case reportID := <-wp.jobs:
			log.Debug().Str(logger.FieldReportID, reportID).Msg("picked up report job")
			wp.handle(context.WithoutCancel(ctx), reportID)
		case <-ctx.Done():
			log.Debug().Msg("report worker shutting down")
			return
		}
	}
}

// Dispatch queues a job without blocking.
func (wp *WorkerPool) Dispatch(reportID string) error {
	select {
	case wp.jobs <- reportID:
		return nil
	default:
		return ErrQueueFull
	}
}

// Stop signals the workers, waits for running jobs to finish and returns the
// ids that were still queued. Those ids are never handled.
func (wp *WorkerPool) Stop() []string {
	if wp.cancel != nil {
		wp.cancel()
	}
	wp.wg.Wait()

	var dropped []string
	for {
		select {
		case id := <-wp.jobs:
			dropped = append(dropped, id)
		default:
			return dropped
		}
	}
}
