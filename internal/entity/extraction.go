package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/agrosuivi/farmdesk/internal/extract"
)

// ExtractionRecord is the persisted outcome of one job run, keyed by
// document. Failure records live in the same table with Succeeded=false so
// consumers can distinguish "permanently failed" from "still pending".
type ExtractionRecord struct {
	ID                uuid.UUID         `json:"id"`
	DocumentID        uuid.UUID         `json:"document_id"`
	FarmID            uuid.UUID         `json:"farm_id"`
	JobID             *uuid.UUID        `json:"job_id,omitempty"`
	Succeeded         bool              `json:"succeeded"`
	Fields            extract.ResultSet `json:"fields,omitempty"`
	OverallConfidence *float32          `json:"overall_confidence,omitempty"`
	ExtractedCount    int               `json:"extracted_count"`
	TotalFields       int               `json:"total_fields"`
	Degraded          bool              `json:"degraded"`
	ErrorMessage      *string           `json:"error_message,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
}

// ReviewEdit is one human correction for a document field, confidence 1.0 by
// convention.
type ReviewEdit struct {
	ID         uuid.UUID `json:"id"`
	DocumentID uuid.UUID `json:"document_id"`
	FarmID     uuid.UUID `json:"farm_id"`
	FieldName  string    `json:"field_name"`
	Value      any       `json:"value"`
	EditedAt   time.Time `json:"edited_at"`
}

// FormState is the reconciled destination form for one farm.
type FormState struct {
	FarmID    uuid.UUID      `json:"farm_id"`
	Data      map[string]any `json:"data"`
	UpdatedAt time.Time      `json:"updated_at"`
}
