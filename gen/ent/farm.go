// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agrosuivi/farmdesk/gen/ent/farm"
	"github.com/agrosuivi/farmdesk/gen/ent/formstate"
	"github.com/google/uuid"
)

// Farm is the model entity for the Farm schema.
type Farm struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// CountryCode holds the value of the "country_code" field.
	CountryCode string `json:"country_code,omitempty"`
	// DefaultCurrency holds the value of the "default_currency" field.
	DefaultCurrency string `json:"default_currency,omitempty"`
	// LegalForm holds the value of the "legal_form" field.
	LegalForm *string `json:"legal_form,omitempty"`
	// ContactEmail holds the value of the "contact_email" field.
	ContactEmail *string `json:"contact_email,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FarmQuery when eager-loading is set.
	Edges        FarmEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FarmEdges holds the relations/edges for other nodes in the graph.
type FarmEdges struct {
	// Documents holds the value of the documents edge.
	Documents []*Document `json:"documents,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*ProcessingJob `json:"jobs,omitempty"`
	// Results holds the value of the results edge.
	Results []*ExtractionResult `json:"results,omitempty"`
	// ReviewEdits holds the value of the review_edits edge.
	ReviewEdits []*ReviewEdit `json:"review_edits,omitempty"`
	// FormState holds the value of the form_state edge.
	FormState *FormState `json:"form_state,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// DocumentsOrErr returns the Documents value or an error if the edge
// was not loaded in eager-loading.
func (e FarmEdges) DocumentsOrErr() ([]*Document, error) {
	if e.loadedTypes[0] {
		return e.Documents, nil
	}
	return nil, &NotLoadedError{edge: "documents"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e FarmEdges) JobsOrErr() ([]*ProcessingJob, error) {
	if e.loadedTypes[1] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// ResultsOrErr returns the Results value or an error if the edge
// was not loaded in eager-loading.
func (e FarmEdges) ResultsOrErr() ([]*ExtractionResult, error) {
	if e.loadedTypes[2] {
		return e.Results, nil
	}
	return nil, &NotLoadedError{edge: "results"}
}

// ReviewEditsOrErr returns the ReviewEdits value or an error if the edge
// was not loaded in eager-loading.
func (e FarmEdges) ReviewEditsOrErr() ([]*ReviewEdit, error) {
	if e.loadedTypes[3] {
		return e.ReviewEdits, nil
	}
	return nil, &NotLoadedError{edge: "review_edits"}
}

// FormStateOrErr returns the FormState value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FarmEdges) FormStateOrErr() (*FormState, error) {
	if e.FormState != nil {
		return e.FormState, nil
	} else if e.loadedTypes[4] {
		return nil, &NotFoundError{label: formstate.Label}
	}
	return nil, &NotLoadedError{edge: "form_state"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Farm) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case farm.FieldName, farm.FieldCountryCode, farm.FieldDefaultCurrency, farm.FieldLegalForm, farm.FieldContactEmail:
			values[i] = new(sql.NullString)
		case farm.FieldCreatedAt, farm.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case farm.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Farm fields.
func (_m *Farm) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case farm.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case farm.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case farm.FieldCountryCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field country_code", values[i])
			} else if value.Valid {
				_m.CountryCode = value.String
			}
		case farm.FieldDefaultCurrency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field default_currency", values[i])
			} else if value.Valid {
				_m.DefaultCurrency = value.String
			}
		case farm.FieldLegalForm:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field legal_form", values[i])
			} else if value.Valid {
				_m.LegalForm = new(string)
				*_m.LegalForm = value.String
			}
		case farm.FieldContactEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contact_email", values[i])
			} else if value.Valid {
				_m.ContactEmail = new(string)
				*_m.ContactEmail = value.String
			}
		case farm.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case farm.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Farm.
// This includes values selected through modifiers, order, etc.
func (_m *Farm) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocuments queries the "documents" edge of the Farm entity.
func (_m *Farm) QueryDocuments() *DocumentQuery {
	return NewFarmClient(_m.config).QueryDocuments(_m)
}

// QueryJobs queries the "jobs" edge of the Farm entity.
func (_m *Farm) QueryJobs() *ProcessingJobQuery {
	return NewFarmClient(_m.config).QueryJobs(_m)
}

// QueryResults queries the "results" edge of the Farm entity.
func (_m *Farm) QueryResults() *ExtractionResultQuery {
	return NewFarmClient(_m.config).QueryResults(_m)
}

// QueryReviewEdits queries the "review_edits" edge of the Farm entity.
func (_m *Farm) QueryReviewEdits() *ReviewEditQuery {
	return NewFarmClient(_m.config).QueryReviewEdits(_m)
}

// QueryFormState queries the "form_state" edge of the Farm entity.
func (_m *Farm) QueryFormState() *FormStateQuery {
	return NewFarmClient(_m.config).QueryFormState(_m)
}

// Update returns a builder for updating this Farm.
// Note that you need to call Farm.Unwrap() before calling this method if this Farm
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Farm) Update() *FarmUpdateOne {
	return NewFarmClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Farm entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Farm) Unwrap() *Farm {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Farm is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Farm) String() string {
	var builder strings.Builder
	builder.WriteString("Farm(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("country_code=")
	builder.WriteString(_m.CountryCode)
	builder.WriteString(", ")
	builder.WriteString("default_currency=")
	builder.WriteString(_m.DefaultCurrency)
	builder.WriteString(", ")
	if v := _m.LegalForm; v != nil {
		builder.WriteString("legal_form=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ContactEmail; v != nil {
		builder.WriteString("contact_email=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Farms is a parsable slice of Farm.
type Farms []*Farm
