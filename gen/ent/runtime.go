// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/agrosuivi/farmdesk/db/ent/schema"
	"github.com/agrosuivi/farmdesk/gen/ent/document"
	"github.com/agrosuivi/farmdesk/gen/ent/extractionresult"
	"github.com/agrosuivi/farmdesk/gen/ent/farm"
	"github.com/agrosuivi/farmdesk/gen/ent/formstate"
	"github.com/agrosuivi/farmdesk/gen/ent/processingjob"
	"github.com/agrosuivi/farmdesk/gen/ent/reviewedit"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescFileURL is the schema descriptor for file_url field.
	documentDescFileURL := documentFields[2].Descriptor()
	// document.FileURLValidator is a validator for the "file_url" field. It is called by the builders before save.
	document.FileURLValidator = documentDescFileURL.Validators[0].(func(string) error)
	// documentDescFilename is the schema descriptor for filename field.
	documentDescFilename := documentFields[3].Descriptor()
	// document.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	document.FilenameValidator = documentDescFilename.Validators[0].(func(string) error)
	// documentDescFileExt is the schema descriptor for file_ext field.
	documentDescFileExt := documentFields[4].Descriptor()
	// document.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	document.FileExtValidator = documentDescFileExt.Validators[0].(func(string) error)
	// documentDescDocType is the schema descriptor for doc_type field.
	documentDescDocType := documentFields[5].Descriptor()
	// document.DocTypeValidator is a validator for the "doc_type" field. It is called by the builders before save.
	document.DocTypeValidator = func() func(string) error {
		validators := documentDescDocType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(doc_type string) error {
			for _, fn := range fns {
				if err := fn(doc_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescContentHash is the schema descriptor for content_hash field.
	documentDescContentHash := documentFields[6].Descriptor()
	// document.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	document.ContentHashValidator = documentDescContentHash.Validators[0].(func([]byte) error)
	// documentDescFileSize is the schema descriptor for file_size field.
	documentDescFileSize := documentFields[7].Descriptor()
	// document.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	document.FileSizeValidator = documentDescFileSize.Validators[0].(func(int64) error)
	// documentDescUploadedAt is the schema descriptor for uploaded_at field.
	documentDescUploadedAt := documentFields[8].Descriptor()
	// document.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	document.DefaultUploadedAt = documentDescUploadedAt.Default.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	extractionresultFields := schema.ExtractionResult{}.Fields()
	_ = extractionresultFields
	// extractionresultDescSucceeded is the schema descriptor for succeeded field.
	extractionresultDescSucceeded := extractionresultFields[4].Descriptor()
	// extractionresult.DefaultSucceeded holds the default value on creation for the succeeded field.
	extractionresult.DefaultSucceeded = extractionresultDescSucceeded.Default.(bool)
	// extractionresultDescExtractedCount is the schema descriptor for extracted_count field.
	extractionresultDescExtractedCount := extractionresultFields[7].Descriptor()
	// extractionresult.DefaultExtractedCount holds the default value on creation for the extracted_count field.
	extractionresult.DefaultExtractedCount = extractionresultDescExtractedCount.Default.(int)
	// extractionresultDescTotalFields is the schema descriptor for total_fields field.
	extractionresultDescTotalFields := extractionresultFields[8].Descriptor()
	// extractionresult.DefaultTotalFields holds the default value on creation for the total_fields field.
	extractionresult.DefaultTotalFields = extractionresultDescTotalFields.Default.(int)
	// extractionresultDescDegraded is the schema descriptor for degraded field.
	extractionresultDescDegraded := extractionresultFields[9].Descriptor()
	// extractionresult.DefaultDegraded holds the default value on creation for the degraded field.
	extractionresult.DefaultDegraded = extractionresultDescDegraded.Default.(bool)
	// extractionresultDescCreatedAt is the schema descriptor for created_at field.
	extractionresultDescCreatedAt := extractionresultFields[11].Descriptor()
	// extractionresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	extractionresult.DefaultCreatedAt = extractionresultDescCreatedAt.Default.(func() time.Time)
	// extractionresultDescID is the schema descriptor for id field.
	extractionresultDescID := extractionresultFields[0].Descriptor()
	// extractionresult.DefaultID holds the default value on creation for the id field.
	extractionresult.DefaultID = extractionresultDescID.Default.(func() uuid.UUID)
	farmFields := schema.Farm{}.Fields()
	_ = farmFields
	// farmDescName is the schema descriptor for name field.
	farmDescName := farmFields[1].Descriptor()
	// farm.NameValidator is a validator for the "name" field. It is called by the builders before save.
	farm.NameValidator = farmDescName.Validators[0].(func(string) error)
	// farmDescCountryCode is the schema descriptor for country_code field.
	farmDescCountryCode := farmFields[2].Descriptor()
	// farm.CountryCodeValidator is a validator for the "country_code" field. It is called by the builders before save.
	farm.CountryCodeValidator = func() func(string) error {
		validators := farmDescCountryCode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(country_code string) error {
			for _, fn := range fns {
				if err := fn(country_code); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// farmDescDefaultCurrency is the schema descriptor for default_currency field.
	farmDescDefaultCurrency := farmFields[3].Descriptor()
	// farm.DefaultCurrencyValidator is a validator for the "default_currency" field. It is called by the builders before save.
	farm.DefaultCurrencyValidator = func() func(string) error {
		validators := farmDescDefaultCurrency.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(default_currency string) error {
			for _, fn := range fns {
				if err := fn(default_currency); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// farmDescCreatedAt is the schema descriptor for created_at field.
	farmDescCreatedAt := farmFields[6].Descriptor()
	// farm.DefaultCreatedAt holds the default value on creation for the created_at field.
	farm.DefaultCreatedAt = farmDescCreatedAt.Default.(func() time.Time)
	// farmDescUpdatedAt is the schema descriptor for updated_at field.
	farmDescUpdatedAt := farmFields[7].Descriptor()
	// farm.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	farm.DefaultUpdatedAt = farmDescUpdatedAt.Default.(func() time.Time)
	// farm.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	farm.UpdateDefaultUpdatedAt = farmDescUpdatedAt.UpdateDefault.(func() time.Time)
	// farmDescID is the schema descriptor for id field.
	farmDescID := farmFields[0].Descriptor()
	// farm.DefaultID holds the default value on creation for the id field.
	farm.DefaultID = farmDescID.Default.(func() uuid.UUID)
	formstateFields := schema.FormState{}.Fields()
	_ = formstateFields
	// formstateDescUpdatedAt is the schema descriptor for updated_at field.
	formstateDescUpdatedAt := formstateFields[3].Descriptor()
	// formstate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	formstate.DefaultUpdatedAt = formstateDescUpdatedAt.Default.(func() time.Time)
	// formstate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	formstate.UpdateDefaultUpdatedAt = formstateDescUpdatedAt.UpdateDefault.(func() time.Time)
	// formstateDescID is the schema descriptor for id field.
	formstateDescID := formstateFields[0].Descriptor()
	// formstate.DefaultID holds the default value on creation for the id field.
	formstate.DefaultID = formstateDescID.Default.(func() uuid.UUID)
	processingjobFields := schema.ProcessingJob{}.Fields()
	_ = processingjobFields
	// processingjobDescFileURL is the schema descriptor for file_url field.
	processingjobDescFileURL := processingjobFields[3].Descriptor()
	// processingjob.FileURLValidator is a validator for the "file_url" field. It is called by the builders before save.
	processingjob.FileURLValidator = processingjobDescFileURL.Validators[0].(func(string) error)
	// processingjobDescFileName is the schema descriptor for file_name field.
	processingjobDescFileName := processingjobFields[4].Descriptor()
	// processingjob.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	processingjob.FileNameValidator = processingjobDescFileName.Validators[0].(func(string) error)
	// processingjobDescStatus is the schema descriptor for status field.
	processingjobDescStatus := processingjobFields[5].Descriptor()
	// processingjob.DefaultStatus holds the default value on creation for the status field.
	processingjob.DefaultStatus = processingjobDescStatus.Default.(string)
	// processingjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	processingjob.StatusValidator = processingjobDescStatus.Validators[0].(func(string) error)
	// processingjobDescPriority is the schema descriptor for priority field.
	processingjobDescPriority := processingjobFields[6].Descriptor()
	// processingjob.DefaultPriority holds the default value on creation for the priority field.
	processingjob.DefaultPriority = processingjobDescPriority.Default.(string)
	// processingjob.PriorityValidator is a validator for the "priority" field. It is called by the builders before save.
	processingjob.PriorityValidator = processingjobDescPriority.Validators[0].(func(string) error)
	// processingjobDescRetryAttempt is the schema descriptor for retry_attempt field.
	processingjobDescRetryAttempt := processingjobFields[7].Descriptor()
	// processingjob.DefaultRetryAttempt holds the default value on creation for the retry_attempt field.
	processingjob.DefaultRetryAttempt = processingjobDescRetryAttempt.Default.(int)
	// processingjob.RetryAttemptValidator is a validator for the "retry_attempt" field. It is called by the builders before save.
	processingjob.RetryAttemptValidator = processingjobDescRetryAttempt.Validators[0].(func(int) error)
	// processingjobDescMaxRetries is the schema descriptor for max_retries field.
	processingjobDescMaxRetries := processingjobFields[8].Descriptor()
	// processingjob.DefaultMaxRetries holds the default value on creation for the max_retries field.
	processingjob.DefaultMaxRetries = processingjobDescMaxRetries.Default.(int)
	// processingjob.MaxRetriesValidator is a validator for the "max_retries" field. It is called by the builders before save.
	processingjob.MaxRetriesValidator = processingjobDescMaxRetries.Validators[0].(func(int) error)
	// processingjobDescScheduledFor is the schema descriptor for scheduled_for field.
	processingjobDescScheduledFor := processingjobFields[9].Descriptor()
	// processingjob.DefaultScheduledFor holds the default value on creation for the scheduled_for field.
	processingjob.DefaultScheduledFor = processingjobDescScheduledFor.Default.(func() time.Time)
	// processingjobDescCreatedAt is the schema descriptor for created_at field.
	processingjobDescCreatedAt := processingjobFields[15].Descriptor()
	// processingjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	processingjob.DefaultCreatedAt = processingjobDescCreatedAt.Default.(func() time.Time)
	// processingjobDescID is the schema descriptor for id field.
	processingjobDescID := processingjobFields[0].Descriptor()
	// processingjob.DefaultID holds the default value on creation for the id field.
	processingjob.DefaultID = processingjobDescID.Default.(func() uuid.UUID)
	revieweditFields := schema.ReviewEdit{}.Fields()
	_ = revieweditFields
	// revieweditDescFieldName is the schema descriptor for field_name field.
	revieweditDescFieldName := revieweditFields[3].Descriptor()
	// reviewedit.FieldNameValidator is a validator for the "field_name" field. It is called by the builders before save.
	reviewedit.FieldNameValidator = revieweditDescFieldName.Validators[0].(func(string) error)
	// revieweditDescEditedAt is the schema descriptor for edited_at field.
	revieweditDescEditedAt := revieweditFields[5].Descriptor()
	// reviewedit.DefaultEditedAt holds the default value on creation for the edited_at field.
	reviewedit.DefaultEditedAt = revieweditDescEditedAt.Default.(func() time.Time)
	// reviewedit.UpdateDefaultEditedAt holds the default value on update for the edited_at field.
	reviewedit.UpdateDefaultEditedAt = revieweditDescEditedAt.UpdateDefault.(func() time.Time)
	// revieweditDescID is the schema descriptor for id field.
	revieweditDescID := revieweditFields[0].Descriptor()
	// reviewedit.DefaultID holds the default value on creation for the id field.
	reviewedit.DefaultID = revieweditDescID.Default.(func() uuid.UUID)
}
