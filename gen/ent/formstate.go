// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agrosuivi/farmdesk/gen/ent/farm"
	"github.com/agrosuivi/farmdesk/gen/ent/formstate"
	"github.com/google/uuid"
)

// FormState is the model entity for the FormState schema.
type FormState struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// FarmID holds the value of the "farm_id" field.
	FarmID uuid.UUID `json:"farm_id,omitempty"`
	// Data holds the value of the "data" field.
	Data json.RawMessage `json:"data,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FormStateQuery when eager-loading is set.
	Edges        FormStateEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FormStateEdges holds the relations/edges for other nodes in the graph.
type FormStateEdges struct {
	// Farm holds the value of the farm edge.
	Farm *Farm `json:"farm,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// FarmOrErr returns the Farm value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FormStateEdges) FarmOrErr() (*Farm, error) {
	if e.Farm != nil {
		return e.Farm, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: farm.Label}
	}
	return nil, &NotLoadedError{edge: "farm"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FormState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case formstate.FieldData:
			values[i] = new([]byte)
		case formstate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case formstate.FieldID, formstate.FieldFarmID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FormState fields.
func (_m *FormState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case formstate.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case formstate.FieldFarmID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field farm_id", values[i])
			} else if value != nil {
				_m.FarmID = *value
			}
		case formstate.FieldData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Data); err != nil {
					return fmt.Errorf("unmarshal field data: %w", err)
				}
			}
		case formstate.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the FormState.
// This includes values selected through modifiers, order, etc.
func (_m *FormState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFarm queries the "farm" edge of the FormState entity.
func (_m *FormState) QueryFarm() *FarmQuery {
	return NewFormStateClient(_m.config).QueryFarm(_m)
}

// Update returns a builder for updating this FormState.
// Note that you need to call FormState.Unwrap() before calling this method if this FormState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FormState) Update() *FormStateUpdateOne {
	return NewFormStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FormState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FormState) Unwrap() *FormState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FormState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FormState) String() string {
	var builder strings.Builder
	builder.WriteString("FormState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("farm_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FarmID))
	builder.WriteString(", ")
	builder.WriteString("data=")
	builder.WriteString(fmt.Sprintf("%v", _m.Data))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FormStates is a parsable slice of FormState.
type FormStates []*FormState
