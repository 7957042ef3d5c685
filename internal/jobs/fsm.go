// Package jobs owns the asynchronous extraction job lifecycle: a persisted
// state machine with atomic claims, exponential retry backoff and a worker
// pool that drains the queue.
package jobs

import (
	"fmt"

	"github.com/agrosuivi/farmdesk/constants"
	"github.com/agrosuivi/farmdesk/internal/common"
)

// Event is a lifecycle trigger on a processing job.
type Event string

const (
	// EventClaim moves a due queued job to a worker.
	EventClaim Event = "claim"
	// EventSucceed completes a processing job.
	EventSucceed Event = "succeed"
	// EventRetry schedules another attempt after a retryable failure.
	EventRetry Event = "retry"
	// EventExhaust fails a job whose retries are spent.
	EventExhaust Event = "exhaust"
	// EventRequeue returns a retry-scheduled job to the queue once its
	// backoff delay elapsed.
	EventRequeue Event = "requeue"
)

// transitions is the full state × event table. Guards live here, not as
// inline conditionals scattered through the orchestration code, so the
// machine is testable on its own.
var transitions = map[constants.JobStatus]map[Event]constants.JobStatus{
	constants.JobStatusQueued: {
		EventClaim: constants.JobStatusProcessing,
	},
	constants.JobStatusProcessing: {
		EventSucceed: constants.JobStatusCompleted,
		EventRetry:   constants.JobStatusRetryScheduled,
		EventExhaust: constants.JobStatusFailed,
	},
	constants.JobStatusRetryScheduled: {
		EventRequeue: constants.JobStatusQueued,
	},
	// completed and failed are terminal: no rows in the table
}

// Next returns the state after applying event to state, or an error when the
// transition is not allowed.
func Next(state constants.JobStatus, event Event) (constants.JobStatus, error) {
	if next, ok := transitions[state][event]; ok {
		return next, nil
	}
	if state.Terminal() {
		return "", fmt.Errorf("%s + %s: %w", state, event, common.ErrTerminalState)
	}
	return "", fmt.Errorf("illegal transition %s + %s", state, event)
}

// CanApply reports whether event is legal in state.
func CanApply(state constants.JobStatus, event Event) bool {
	_, ok := transitions[state][event]
	return ok
}
