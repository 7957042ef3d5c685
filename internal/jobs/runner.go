package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Runner polls the persisted queue with a fixed pool of workers. Because the
// queue lives in the database, a restart loses nothing: workers simply claim
// whatever is due on their next poll.
type Runner struct {
	mgr     *Manager
	logger  *slog.Logger
	workers int
	poll    time.Duration

	wg   sync.WaitGroup
	once sync.Once
	stop chan struct{}
}

type RunnerOption func(*Runner)

func WithWorkers(n int) RunnerOption {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

func WithPollInterval(d time.Duration) RunnerOption {
	return func(r *Runner) {
		if d > 0 {
			r.poll = d
		}
	}
}

func NewRunner(mgr *Manager, logger *slog.Logger, opts ...RunnerOption) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Runner{
		mgr:     mgr,
		logger:  logger,
		workers: 2,
		poll:    2 * time.Second,
		stop:    make(chan struct{}),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Start launches the worker goroutines. Calling Start twice is a no-op.
func (r *Runner) Start(ctx context.Context) {
	r.once.Do(func() {
		for i := 0; i < r.workers; i++ {
			r.wg.Add(1)
			go func(workerID int) {
				defer r.wg.Done()
				r.logger.Info("jobs.worker.started", "worker_id", workerID)
				r.loop(ctx, workerID)
				r.logger.Info("jobs.worker.stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

// loop drains the queue, then sleeps one poll interval. Draining before
// sleeping keeps latency low when a burst of documents arrives. The stop
// channel halts polling without cancelling a job already in flight.
func (r *Runner) loop(ctx context.Context, workerID int) {
	ticker := time.NewTicker(r.poll)
	defer ticker.Stop()

	for {
		for {
			select {
			case <-r.stop:
				return
			case <-ctx.Done():
				return
			default:
			}
			processed, err := r.mgr.RunOne(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				r.logger.Error("jobs.worker.poll_failed", "worker_id", workerID, "error", err)
				break
			}
			if !processed {
				break
			}
		}
		select {
		case <-r.stop:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Shutdown stops polling and waits for in-flight jobs to finish, up to the
// context deadline. A job cut off by process exit is simply re-claimed later
// from its persisted state.
func (r *Runner) Shutdown(ctx context.Context) {
	select {
	case <-r.stop:
		return
	default:
		close(r.stop)
	}

	done := make(chan struct{})
	go func() { defer close(done); r.wg.Wait() }()

	select {
	case <-ctx.Done():
		r.logger.Warn("jobs.shutdown.interrupted")
	case <-done:
		r.logger.Info("jobs.shutdown.complete")
	}
}
