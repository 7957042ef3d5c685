package utils

import (
	"encoding/json"
	"time"

	farmdeskpb "github.com/agrosuivi/farmdesk/gen/proto/farmdesk/v1"
	"github.com/agrosuivi/farmdesk/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func timeOrEmpty(p *time.Time) string {
	if p == nil {
		return ""
	}
	return p.UTC().Format(time.RFC3339)
}

func ToPBFarm(f entity.Farm) *farmdeskpb.Farm {
	return &farmdeskpb.Farm{
		Id:              f.ID.String(),
		Name:            f.Name,
		CountryCode:     f.CountryCode,
		DefaultCurrency: f.DefaultCurrency,
		LegalForm:       strOrEmpty(f.LegalForm),
		ContactEmail:    strOrEmpty(f.ContactEmail),
		CreatedAt:       f.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       f.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBDocument(d entity.Document) *farmdeskpb.Document {
	return &farmdeskpb.Document{
		Id:         d.ID.String(),
		FarmId:     d.FarmID.String(),
		FileUrl:    d.FileURL,
		Filename:   d.Filename,
		FileExt:    d.FileExt,
		DocType:    d.DocType,
		FileSize:   d.FileSize,
		UploadedAt: d.UploadedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBJob(j entity.ProcessingJob) *farmdeskpb.ProcessingJob {
	pb := &farmdeskpb.ProcessingJob{
		Id:           j.ID.String(),
		DocumentId:   j.DocumentID.String(),
		FarmId:       j.FarmID.String(),
		Status:       string(j.Status),
		Priority:     string(j.Priority),
		RetryAttempt: int32(j.RetryAttempt),
		MaxRetries:   int32(j.MaxRetries),
		ScheduledFor: j.ScheduledFor.UTC().Format(time.RFC3339),
		StartedAt:    timeOrEmpty(j.StartedAt),
		CompletedAt:  timeOrEmpty(j.CompletedAt),
		ErrorMessage: strOrEmpty(j.ErrorMessage),
		CreatedAt:    j.CreatedAt.UTC().Format(time.RFC3339),
	}
	if j.ProcessingTimeMs != nil {
		pb.ProcessingTimeMs = *j.ProcessingTimeMs
	}
	return pb
}

func ToPBResult(r entity.ExtractionRecord) *farmdeskpb.ExtractionResult {
	pb := &farmdeskpb.ExtractionResult{
		Id:             r.ID.String(),
		DocumentId:     r.DocumentID.String(),
		FarmId:         r.FarmID.String(),
		Succeeded:      r.Succeeded,
		ExtractedCount: int32(r.ExtractedCount),
		TotalFields:    int32(r.TotalFields),
		Degraded:       r.Degraded,
		ErrorMessage:   strOrEmpty(r.ErrorMessage),
		CreatedAt:      r.CreatedAt.UTC().Format(time.RFC3339),
	}
	if r.JobID != nil {
		pb.JobId = r.JobID.String()
	}
	if r.OverallConfidence != nil {
		pb.OverallConfidence = *r.OverallConfidence
	}
	for name, fr := range r.Fields {
		value, err := json.Marshal(fr.Value)
		if err != nil {
			continue
		}
		pb.Fields = append(pb.Fields, &farmdeskpb.ExtractedField{
			Name:       name,
			ValueJson:  string(value),
			Confidence: fr.Confidence,
			Source:     string(fr.Source),
		})
	}
	return pb
}

func ToPBFormState(s entity.FormState) *farmdeskpb.FormState {
	data, err := json.Marshal(s.Data)
	if err != nil {
		data = []byte("{}")
	}
	return &farmdeskpb.FormState{
		FarmId:    s.FarmID.String(),
		DataJson:  string(data),
		UpdatedAt: s.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
