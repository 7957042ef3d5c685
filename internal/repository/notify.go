package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agrosuivi/farmdesk/constants"
)

// jobEventsChannel carries job status change notifications between server
// instances, so a UI connected to one instance sees jobs completed by
// another.
const jobEventsChannel = "farmdesk_job_events"

// JobEvent is the payload published on every job status change.
type JobEvent struct {
	JobID      uuid.UUID           `json:"job_id"`
	DocumentID uuid.UUID           `json:"document_id"`
	FarmID     uuid.UUID           `json:"farm_id"`
	Status     constants.JobStatus `json:"status"`
	OccurredAt time.Time           `json:"occurred_at"`
}

// JobNotifier publishes job events over Postgres LISTEN/NOTIFY. A nil pool
// (sqlite mode) turns both publish and listen into no-ops.
type JobNotifier struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewJobNotifier(pool *pgxpool.Pool, logger *slog.Logger) *JobNotifier {
	return &JobNotifier{pool: pool, logger: logger}
}

// Publish sends the event. Failures are logged, not returned: notification is
// best-effort and must never fail the job transition that triggered it.
func (n *JobNotifier) Publish(ctx context.Context, ev JobEvent) {
	if n.pool == nil {
		return
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		n.logger.Error("failed to encode job event", "job_id", ev.JobID, "error", err)
		return
	}
	if _, err := n.pool.Exec(ctx, "SELECT pg_notify($1, $2)", jobEventsChannel, string(payload)); err != nil {
		n.logger.Warn("failed to publish job event", "job_id", ev.JobID, "error", err)
	}
}

// Listen blocks on the job events channel and invokes handler for each
// decoded event until ctx is cancelled. The dedicated connection is returned
// to the pool on exit.
func (n *JobNotifier) Listen(ctx context.Context, handler func(JobEvent)) error {
	if n.pool == nil {
		<-ctx.Done()
		return ctx.Err()
	}
	conn, err := n.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+jobEventsChannel); err != nil {
		return err
	}
	n.logger.Info("listening for job events", "channel", jobEventsChannel)

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}
		var ev JobEvent
		if err := json.Unmarshal([]byte(notification.Payload), &ev); err != nil {
			n.logger.Warn("discarding malformed job event", "error", err)
			continue
		}
		handler(ev)
	}
}
