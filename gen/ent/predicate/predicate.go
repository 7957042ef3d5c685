// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// ExtractionResult is the predicate function for extractionresult builders.
type ExtractionResult func(*sql.Selector)

// Farm is the predicate function for farm builders.
type Farm func(*sql.Selector)

// FormState is the predicate function for formstate builders.
type FormState func(*sql.Selector)

// ProcessingJob is the predicate function for processingjob builders.
type ProcessingJob func(*sql.Selector)

// ReviewEdit is the predicate function for reviewedit builders.
type ReviewEdit func(*sql.Selector)
