package constants

// JobStatus is the canonical status for rows in processing_jobs.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued         JobStatus = "QUEUED"          // waiting to be claimed
	JobStatusProcessing     JobStatus = "PROCESSING"      // claimed by a worker
	JobStatusRetryScheduled JobStatus = "RETRY_SCHEDULED" // failed, waiting out backoff
	JobStatusCompleted      JobStatus = "COMPLETED"       // terminal success
	JobStatusFailed         JobStatus = "FAILED"          // terminal failure, retries exhausted
)

// JobStatuses lists every valid value, for schema validation.
var JobStatuses = []string{
	string(JobStatusQueued),
	string(JobStatusProcessing),
	string(JobStatusRetryScheduled),
	string(JobStatusCompleted),
	string(JobStatusFailed),
}

// Terminal reports whether a status admits no further transitions.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// JobPriority orders claims: HIGH before NORMAL, then FIFO within a tier.
type JobPriority string

const (
	JobPriorityNormal JobPriority = "NORMAL"
	JobPriorityHigh   JobPriority = "HIGH"
)

var JobPriorities = []string{string(JobPriorityNormal), string(JobPriorityHigh)}
