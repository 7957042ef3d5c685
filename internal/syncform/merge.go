// Package syncform reconciles extraction results and human review edits into
// the destination form of a farm. Merges are deterministic: the same inputs
// always produce the same form data.
package syncform

import (
	"fmt"
	"time"

	"github.com/agrosuivi/farmdesk/internal/entity"
	"github.com/agrosuivi/farmdesk/internal/extract"
)

// SourceSuffix keys shadow every merged field so reviewers can see where a
// value came from and when it last synced.
const (
	SourceSuffix    = "_source"
	TimestampSuffix = "_sync_timestamp"
)

type candidate struct {
	value      any
	confidence float64
	source     string
	producedAt time.Time
}

// better reports whether c should replace cur. Higher confidence wins; on a
// tie the newer candidate wins, so a fresh re-extraction supersedes a stale
// one of equal quality.
func (c candidate) better(cur candidate) bool {
	if c.confidence != cur.confidence {
		return c.confidence > cur.confidence
	}
	return c.producedAt.After(cur.producedAt)
}

// BuildFormData merges all succeeded extraction records and review edits for
// one farm into flat form data. Review edits carry confidence 1.0, so a human
// correction always beats machine output. syncedAt stamps the shadow
// timestamp keys.
func BuildFormData(records []entity.ExtractionRecord, edits []entity.ReviewEdit, syncedAt time.Time) map[string]any {
	best := make(map[string]candidate)

	for _, rec := range records {
		if !rec.Succeeded {
			continue
		}
		for name, fr := range rec.Fields {
			if !extract.IsSchemaField(name) {
				continue
			}
			c := candidate{
				value:      fr.Value,
				confidence: fr.Confidence,
				source:     "extraction_" + string(fr.Source),
				producedAt: rec.CreatedAt,
			}
			if cur, ok := best[name]; !ok || c.better(cur) {
				best[name] = c
			}
		}
	}

	for _, edit := range edits {
		c := candidate{
			value:      edit.Value,
			confidence: 1.0,
			source:     fmt.Sprintf("manual_edit_%s", edit.DocumentID),
			producedAt: edit.EditedAt,
		}
		if cur, ok := best[edit.FieldName]; !ok || c.better(cur) {
			best[edit.FieldName] = c
		}
	}

	data := make(map[string]any, len(best)*3)
	stamp := syncedAt.UTC().Format(time.RFC3339)
	for name, c := range best {
		data[name] = c.value
		data[name+SourceSuffix] = c.source
		data[name+TimestampSuffix] = stamp
	}
	return data
}
