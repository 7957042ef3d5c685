package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document is one registered source document for a farm.
type Document struct {
	ID          uuid.UUID `json:"id"`
	FarmID      uuid.UUID `json:"farm_id"`
	FileURL     string    `json:"file_url"`
	Filename    string    `json:"filename"`
	FileExt     string    `json:"file_ext"`
	DocType     string    `json:"doc_type"`
	ContentHash []byte    `json:"content_hash"`
	FileSize    int64     `json:"file_size"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
