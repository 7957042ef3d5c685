// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agrosuivi/farmdesk/gen/ent/document"
	"github.com/agrosuivi/farmdesk/gen/ent/extractionresult"
	"github.com/agrosuivi/farmdesk/gen/ent/farm"
	"github.com/agrosuivi/farmdesk/gen/ent/formstate"
	"github.com/agrosuivi/farmdesk/gen/ent/predicate"
	"github.com/agrosuivi/farmdesk/gen/ent/processingjob"
	"github.com/agrosuivi/farmdesk/gen/ent/reviewedit"
	"github.com/google/uuid"
)

// FarmUpdate is the builder for updating Farm entities.
type FarmUpdate struct {
	config
	hooks    []Hook
	mutation *FarmMutation
}

// Where appends a list predicates to the FarmUpdate builder.
func (_u *FarmUpdate) Where(ps ...predicate.Farm) *FarmUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *FarmUpdate) SetName(v string) *FarmUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FarmUpdate) SetNillableName(v *string) *FarmUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCountryCode sets the "country_code" field.
func (_u *FarmUpdate) SetCountryCode(v string) *FarmUpdate {
	_u.mutation.SetCountryCode(v)
	return _u
}

// SetNillableCountryCode sets the "country_code" field if the given value is not nil.
func (_u *FarmUpdate) SetNillableCountryCode(v *string) *FarmUpdate {
	if v != nil {
		_u.SetCountryCode(*v)
	}
	return _u
}

// SetDefaultCurrency sets the "default_currency" field.
func (_u *FarmUpdate) SetDefaultCurrency(v string) *FarmUpdate {
	_u.mutation.SetDefaultCurrency(v)
	return _u
}

// SetNillableDefaultCurrency sets the "default_currency" field if the given value is not nil.
func (_u *FarmUpdate) SetNillableDefaultCurrency(v *string) *FarmUpdate {
	if v != nil {
		_u.SetDefaultCurrency(*v)
	}
	return _u
}

// SetLegalForm sets the "legal_form" field.
func (_u *FarmUpdate) SetLegalForm(v string) *FarmUpdate {
	_u.mutation.SetLegalForm(v)
	return _u
}

// SetNillableLegalForm sets the "legal_form" field if the given value is not nil.
func (_u *FarmUpdate) SetNillableLegalForm(v *string) *FarmUpdate {
	if v != nil {
		_u.SetLegalForm(*v)
	}
	return _u
}

// ClearLegalForm clears the value of the "legal_form" field.
func (_u *FarmUpdate) ClearLegalForm() *FarmUpdate {
	_u.mutation.ClearLegalForm()
	return _u
}

// SetContactEmail sets the "contact_email" field.
func (_u *FarmUpdate) SetContactEmail(v string) *FarmUpdate {
	_u.mutation.SetContactEmail(v)
	return _u
}

// SetNillableContactEmail sets the "contact_email" field if the given value is not nil.
func (_u *FarmUpdate) SetNillableContactEmail(v *string) *FarmUpdate {
	if v != nil {
		_u.SetContactEmail(*v)
	}
	return _u
}

// ClearContactEmail clears the value of the "contact_email" field.
func (_u *FarmUpdate) ClearContactEmail() *FarmUpdate {
	_u.mutation.ClearContactEmail()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FarmUpdate) SetCreatedAt(v time.Time) *FarmUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FarmUpdate) SetNillableCreatedAt(v *time.Time) *FarmUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FarmUpdate) SetUpdatedAt(v time.Time) *FarmUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_u *FarmUpdate) AddDocumentIDs(ids ...uuid.UUID) *FarmUpdate {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_u *FarmUpdate) AddDocuments(v ...*Document) *FarmUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ProcessingJob entity by IDs.
func (_u *FarmUpdate) AddJobIDs(ids ...uuid.UUID) *FarmUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ProcessingJob entity.
func (_u *FarmUpdate) AddJobs(v ...*ProcessingJob) *FarmUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// AddResultIDs adds the "results" edge to the ExtractionResult entity by IDs.
func (_u *FarmUpdate) AddResultIDs(ids ...uuid.UUID) *FarmUpdate {
	_u.mutation.AddResultIDs(ids...)
	return _u
}

// AddResults adds the "results" edges to the ExtractionResult entity.
func (_u *FarmUpdate) AddResults(v ...*ExtractionResult) *FarmUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResultIDs(ids...)
}

// AddReviewEditIDs adds the "review_edits" edge to the ReviewEdit entity by IDs.
func (_u *FarmUpdate) AddReviewEditIDs(ids ...uuid.UUID) *FarmUpdate {
	_u.mutation.AddReviewEditIDs(ids...)
	return _u
}

// AddReviewEdits adds the "review_edits" edges to the ReviewEdit entity.
func (_u *FarmUpdate) AddReviewEdits(v ...*ReviewEdit) *FarmUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReviewEditIDs(ids...)
}

// SetFormStateID sets the "form_state" edge to the FormState entity by ID.
func (_u *FarmUpdate) SetFormStateID(id uuid.UUID) *FarmUpdate {
	_u.mutation.SetFormStateID(id)
	return _u
}

// SetNillableFormStateID sets the "form_state" edge to the FormState entity by ID if the given value is not nil.
func (_u *FarmUpdate) SetNillableFormStateID(id *uuid.UUID) *FarmUpdate {
	if id != nil {
		_u = _u.SetFormStateID(*id)
	}
	return _u
}

// SetFormState sets the "form_state" edge to the FormState entity.
func (_u *FarmUpdate) SetFormState(v *FormState) *FarmUpdate {
	return _u.SetFormStateID(v.ID)
}

// Mutation returns the FarmMutation object of the builder.
func (_u *FarmUpdate) Mutation() *FarmMutation {
	return _u.mutation
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (_u *FarmUpdate) ClearDocuments() *FarmUpdate {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (_u *FarmUpdate) RemoveDocumentIDs(ids ...uuid.UUID) *FarmUpdate {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to Document entities.
func (_u *FarmUpdate) RemoveDocuments(v ...*Document) *FarmUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ProcessingJob entity.
func (_u *FarmUpdate) ClearJobs() *FarmUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ProcessingJob entities by IDs.
func (_u *FarmUpdate) RemoveJobIDs(ids ...uuid.UUID) *FarmUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ProcessingJob entities.
func (_u *FarmUpdate) RemoveJobs(v ...*ProcessingJob) *FarmUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// ClearResults clears all "results" edges to the ExtractionResult entity.
func (_u *FarmUpdate) ClearResults() *FarmUpdate {
	_u.mutation.ClearResults()
	return _u
}

// RemoveResultIDs removes the "results" edge to ExtractionResult entities by IDs.
func (_u *FarmUpdate) RemoveResultIDs(ids ...uuid.UUID) *FarmUpdate {
	_u.mutation.RemoveResultIDs(ids...)
	return _u
}

// RemoveResults removes "results" edges to ExtractionResult entities.
func (_u *FarmUpdate) RemoveResults(v ...*ExtractionResult) *FarmUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResultIDs(ids...)
}

// ClearReviewEdits clears all "review_edits" edges to the ReviewEdit entity.
func (_u *FarmUpdate) ClearReviewEdits() *FarmUpdate {
	_u.mutation.ClearReviewEdits()
	return _u
}

// RemoveReviewEditIDs removes the "review_edits" edge to ReviewEdit entities by IDs.
func (_u *FarmUpdate) RemoveReviewEditIDs(ids ...uuid.UUID) *FarmUpdate {
	_u.mutation.RemoveReviewEditIDs(ids...)
	return _u
}

// RemoveReviewEdits removes "review_edits" edges to ReviewEdit entities.
func (_u *FarmUpdate) RemoveReviewEdits(v ...*ReviewEdit) *FarmUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReviewEditIDs(ids...)
}

// ClearFormState clears the "form_state" edge to the FormState entity.
func (_u *FarmUpdate) ClearFormState() *FarmUpdate {
	_u.mutation.ClearFormState()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FarmUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FarmUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FarmUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FarmUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FarmUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := farm.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FarmUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := farm.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Farm.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CountryCode(); ok {
		if err := farm.CountryCodeValidator(v); err != nil {
			return &ValidationError{Name: "country_code", err: fmt.Errorf(`ent: validator failed for field "Farm.country_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DefaultCurrency(); ok {
		if err := farm.DefaultCurrencyValidator(v); err != nil {
			return &ValidationError{Name: "default_currency", err: fmt.Errorf(`ent: validator failed for field "Farm.default_currency": %w`, err)}
		}
	}
	return nil
}

func (_u *FarmUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(farm.Table, farm.Columns, sqlgraph.NewFieldSpec(farm.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(farm.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CountryCode(); ok {
		_spec.SetField(farm.FieldCountryCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.DefaultCurrency(); ok {
		_spec.SetField(farm.FieldDefaultCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.LegalForm(); ok {
		_spec.SetField(farm.FieldLegalForm, field.TypeString, value)
	}
	if _u.mutation.LegalFormCleared() {
		_spec.ClearField(farm.FieldLegalForm, field.TypeString)
	}
	if value, ok := _u.mutation.ContactEmail(); ok {
		_spec.SetField(farm.FieldContactEmail, field.TypeString, value)
	}
	if _u.mutation.ContactEmailCleared() {
		_spec.ClearField(farm.FieldContactEmail, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(farm.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(farm.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   farm.DocumentsTable,
			Columns: []string{farm.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   farm.DocumentsTable,
			Columns: []string{farm.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   farm.DocumentsTable,
			Columns: []string{farm.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   farm.JobsTable,
			Columns: []string{farm.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processingjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   farm.JobsTable,
			Columns: []string{farm.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processingjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   farm.JobsTable,
			Columns: []string{farm.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processingjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   farm.ResultsTable,
			Columns: []string{farm.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionresult.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResultsIDs(); len(nodes) > 0 && !_u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   farm.ResultsTable,
			Columns: []string{farm.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   farm.ResultsTable,
			Columns: []string{farm.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReviewEditsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   farm.ReviewEditsTable,
			Columns: []string{farm.ReviewEditsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reviewedit.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReviewEditsIDs(); len(nodes) > 0 && !_u.mutation.ReviewEditsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   farm.ReviewEditsTable,
			Columns: []string{farm.ReviewEditsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reviewedit.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReviewEditsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   farm.ReviewEditsTable,
			Columns: []string{farm.ReviewEditsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reviewedit.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FormStateCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   farm.FormStateTable,
			Columns: []string{farm.FormStateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(formstate.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FormStateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   farm.FormStateTable,
			Columns: []string{farm.FormStateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(formstate.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{farm.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FarmUpdateOne is the builder for updating a single Farm entity.
type FarmUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FarmMutation
}

// SetName sets the "name" field.
func (_u *FarmUpdateOne) SetName(v string) *FarmUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FarmUpdateOne) SetNillableName(v *string) *FarmUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCountryCode sets the "country_code" field.
func (_u *FarmUpdateOne) SetCountryCode(v string) *FarmUpdateOne {
	_u.mutation.SetCountryCode(v)
	return _u
}

// SetNillableCountryCode sets the "country_code" field if the given value is not nil.
func (_u *FarmUpdateOne) SetNillableCountryCode(v *string) *FarmUpdateOne {
	if v != nil {
		_u.SetCountryCode(*v)
	}
	return _u
}

// SetDefaultCurrency sets the "default_currency" field.
func (_u *FarmUpdateOne) SetDefaultCurrency(v string) *FarmUpdateOne {
	_u.mutation.SetDefaultCurrency(v)
	return _u
}

// SetNillableDefaultCurrency sets the "default_currency" field if the given value is not nil.
func (_u *FarmUpdateOne) SetNillableDefaultCurrency(v *string) *FarmUpdateOne {
	if v != nil {
		_u.SetDefaultCurrency(*v)
	}
	return _u
}

// SetLegalForm sets the "legal_form" field.
func (_u *FarmUpdateOne) SetLegalForm(v string) *FarmUpdateOne {
	_u.mutation.SetLegalForm(v)
	return _u
}

// SetNillableLegalForm sets the "legal_form" field if the given value is not nil.
func (_u *FarmUpdateOne) SetNillableLegalForm(v *string) *FarmUpdateOne {
	if v != nil {
		_u.SetLegalForm(*v)
	}
	return _u
}

// ClearLegalForm clears the value of the "legal_form" field.
func (_u *FarmUpdateOne) ClearLegalForm() *FarmUpdateOne {
	_u.mutation.ClearLegalForm()
	return _u
}

// SetContactEmail sets the "contact_email" field.
func (_u *FarmUpdateOne) SetContactEmail(v string) *FarmUpdateOne {
	_u.mutation.SetContactEmail(v)
	return _u
}

// SetNillableContactEmail sets the "contact_email" field if the given value is not nil.
func (_u *FarmUpdateOne) SetNillableContactEmail(v *string) *FarmUpdateOne {
	if v != nil {
		_u.SetContactEmail(*v)
	}
	return _u
}

// ClearContactEmail clears the value of the "contact_email" field.
func (_u *FarmUpdateOne) ClearContactEmail() *FarmUpdateOne {
	_u.mutation.ClearContactEmail()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FarmUpdateOne) SetCreatedAt(v time.Time) *FarmUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FarmUpdateOne) SetNillableCreatedAt(v *time.Time) *FarmUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FarmUpdateOne) SetUpdatedAt(v time.Time) *FarmUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_u *FarmUpdateOne) AddDocumentIDs(ids ...uuid.UUID) *FarmUpdateOne {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_u *FarmUpdateOne) AddDocuments(v ...*Document) *FarmUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ProcessingJob entity by IDs.
func (_u *FarmUpdateOne) AddJobIDs(ids ...uuid.UUID) *FarmUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ProcessingJob entity.
func (_u *FarmUpdateOne) AddJobs(v ...*ProcessingJob) *FarmUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// AddResultIDs adds the "results" edge to the ExtractionResult entity by IDs.
func (_u *FarmUpdateOne) AddResultIDs(ids ...uuid.UUID) *FarmUpdateOne {
	_u.mutation.AddResultIDs(ids...)
	return _u
}

// AddResults adds the "results" edges to the ExtractionResult entity.
func (_u *FarmUpdateOne) AddResults(v ...*ExtractionResult) *FarmUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResultIDs(ids...)
}

// AddReviewEditIDs adds the "review_edits" edge to the ReviewEdit entity by IDs.
func (_u *FarmUpdateOne) AddReviewEditIDs(ids ...uuid.UUID) *FarmUpdateOne {
	_u.mutation.AddReviewEditIDs(ids...)
	return _u
}

// AddReviewEdits adds the "review_edits" edges to the ReviewEdit entity.
func (_u *FarmUpdateOne) AddReviewEdits(v ...*ReviewEdit) *FarmUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReviewEditIDs(ids...)
}

// SetFormStateID sets the "form_state" edge to the FormState entity by ID.
func (_u *FarmUpdateOne) SetFormStateID(id uuid.UUID) *FarmUpdateOne {
	_u.mutation.SetFormStateID(id)
	return _u
}

// SetNillableFormStateID sets the "form_state" edge to the FormState entity by ID if the given value is not nil.
func (_u *FarmUpdateOne) SetNillableFormStateID(id *uuid.UUID) *FarmUpdateOne {
	if id != nil {
		_u = _u.SetFormStateID(*id)
	}
	return _u
}

// SetFormState sets the "form_state" edge to the FormState entity.
func (_u *FarmUpdateOne) SetFormState(v *FormState) *FarmUpdateOne {
	return _u.SetFormStateID(v.ID)
}

// Mutation returns the FarmMutation object of the builder.
func (_u *FarmUpdateOne) Mutation() *FarmMutation {
	return _u.mutation
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (_u *FarmUpdateOne) ClearDocuments() *FarmUpdateOne {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (_u *FarmUpdateOne) RemoveDocumentIDs(ids ...uuid.UUID) *FarmUpdateOne {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to Document entities.
func (_u *FarmUpdateOne) RemoveDocuments(v ...*Document) *FarmUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ProcessingJob entity.
func (_u *FarmUpdateOne) ClearJobs() *FarmUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ProcessingJob entities by IDs.
func (_u *FarmUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *FarmUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ProcessingJob entities.
func (_u *FarmUpdateOne) RemoveJobs(v ...*ProcessingJob) *FarmUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// ClearResults clears all "results" edges to the ExtractionResult entity.
func (_u *FarmUpdateOne) ClearResults() *FarmUpdateOne {
	_u.mutation.ClearResults()
	return _u
}

// RemoveResultIDs removes the "results" edge to ExtractionResult entities by IDs.
func (_u *FarmUpdateOne) RemoveResultIDs(ids ...uuid.UUID) *FarmUpdateOne {
	_u.mutation.RemoveResultIDs(ids...)
	return _u
}

// RemoveResults removes "results" edges to ExtractionResult entities.
func (_u *FarmUpdateOne) RemoveResults(v ...*ExtractionResult) *FarmUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResultIDs(ids...)
}

// ClearReviewEdits clears all "review_edits" edges to the ReviewEdit entity.
func (_u *FarmUpdateOne) ClearReviewEdits() *FarmUpdateOne {
	_u.mutation.ClearReviewEdits()
	return _u
}

// RemoveReviewEditIDs removes the "review_edits" edge to ReviewEdit entities by IDs.
func (_u *FarmUpdateOne) RemoveReviewEditIDs(ids ...uuid.UUID) *FarmUpdateOne {
	_u.mutation.RemoveReviewEditIDs(ids...)
	return _u
}

// RemoveReviewEdits removes "review_edits" edges to ReviewEdit entities.
func (_u *FarmUpdateOne) RemoveReviewEdits(v ...*ReviewEdit) *FarmUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReviewEditIDs(ids...)
}

// ClearFormState clears the "form_state" edge to the FormState entity.
func (_u *FarmUpdateOne) ClearFormState() *FarmUpdateOne {
	_u.mutation.ClearFormState()
	return _u
}

// Where appends a list predicates to the FarmUpdate builder.
func (_u *FarmUpdateOne) Where(ps ...predicate.Farm) *FarmUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FarmUpdateOne) Select(field string, fields ...string) *FarmUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Farm entity.
func (_u *FarmUpdateOne) Save(ctx context.Context) (*Farm, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FarmUpdateOne) SaveX(ctx context.Context) *Farm {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FarmUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FarmUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FarmUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := farm.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FarmUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := farm.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Farm.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CountryCode(); ok {
		if err := farm.CountryCodeValidator(v); err != nil {
			return &ValidationError{Name: "country_code", err: fmt.Errorf(`ent: validator failed for field "Farm.country_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DefaultCurrency(); ok {
		if err := farm.DefaultCurrencyValidator(v); err != nil {
			return &ValidationError{Name: "default_currency", err: fmt.Errorf(`ent: validator failed for field "Farm.default_currency": %w`, err)}
		}
	}
	return nil
}

func (_u *FarmUpdateOne) sqlSave(ctx context.Context) (_node *Farm, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(farm.Table, farm.Columns, sqlgraph.NewFieldSpec(farm.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Farm.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, farm.FieldID)
		for _, f := range fields {
			if !farm.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != farm.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(farm.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CountryCode(); ok {
		_spec.SetField(farm.FieldCountryCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.DefaultCurrency(); ok {
		_spec.SetField(farm.FieldDefaultCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.LegalForm(); ok {
		_spec.SetField(farm.FieldLegalForm, field.TypeString, value)
	}
	if _u.mutation.LegalFormCleared() {
		_spec.ClearField(farm.FieldLegalForm, field.TypeString)
	}
	if value, ok := _u.mutation.ContactEmail(); ok {
		_spec.SetField(farm.FieldContactEmail, field.TypeString, value)
	}
	if _u.mutation.ContactEmailCleared() {
		_spec.ClearField(farm.FieldContactEmail, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(farm.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(farm.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   farm.DocumentsTable,
			Columns: []string{farm.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   farm.DocumentsTable,
			Columns: []string{farm.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   farm.DocumentsTable,
			Columns: []string{farm.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   farm.JobsTable,
			Columns: []string{farm.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processingjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   farm.JobsTable,
			Columns: []string{farm.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processingjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   farm.JobsTable,
			Columns: []string{farm.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processingjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   farm.ResultsTable,
			Columns: []string{farm.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionresult.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResultsIDs(); len(nodes) > 0 && !_u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   farm.ResultsTable,
			Columns: []string{farm.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   farm.ResultsTable,
			Columns: []string{farm.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReviewEditsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   farm.ReviewEditsTable,
			Columns: []string{farm.ReviewEditsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reviewedit.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReviewEditsIDs(); len(nodes) > 0 && !_u.mutation.ReviewEditsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   farm.ReviewEditsTable,
			Columns: []string{farm.ReviewEditsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reviewedit.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReviewEditsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   farm.ReviewEditsTable,
			Columns: []string{farm.ReviewEditsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reviewedit.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FormStateCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   farm.FormStateTable,
			Columns: []string{farm.FormStateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(formstate.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FormStateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   farm.FormStateTable,
			Columns: []string{farm.FormStateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(formstate.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Farm{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{farm.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
