package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/agrosuivi/farmdesk/constants"
)

// ProcessingJob is one persisted unit of asynchronous extraction work.
// Owned exclusively by the job manager; every state change is persisted so a
// crashed worker leaves the row inspectable instead of stuck invisibly.
type ProcessingJob struct {
	ID               uuid.UUID             `json:"id"`
	DocumentID       uuid.UUID             `json:"document_id"`
	FarmID           uuid.UUID             `json:"farm_id"`
	FileURL          string                `json:"file_url"`
	FileName         string                `json:"file_name"`
	Status           constants.JobStatus   `json:"status"`
	Priority         constants.JobPriority `json:"priority"`
	RetryAttempt     int                   `json:"retry_attempt"`
	MaxRetries       int                   `json:"max_retries"`
	ScheduledFor     time.Time             `json:"scheduled_for"`
	StartedAt        *time.Time            `json:"started_at,omitempty"`
	CompletedAt      *time.Time            `json:"completed_at,omitempty"`
	ProcessingTimeMs *int64                `json:"processing_time_ms,omitempty"`
	ErrorMessage     *string               `json:"error_message,omitempty"`
	Metadata         json.RawMessage       `json:"metadata,omitempty"`
	CreatedAt        time.Time             `json:"created_at"`
}
