// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agrosuivi/farmdesk/gen/ent/document"
	"github.com/agrosuivi/farmdesk/gen/ent/extractionresult"
	"github.com/agrosuivi/farmdesk/gen/ent/farm"
	"github.com/agrosuivi/farmdesk/gen/ent/formstate"
	"github.com/agrosuivi/farmdesk/gen/ent/processingjob"
	"github.com/agrosuivi/farmdesk/gen/ent/reviewedit"
	"github.com/google/uuid"
)

// FarmCreate is the builder for creating a Farm entity.
type FarmCreate struct {
	config
	mutation *FarmMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *FarmCreate) SetName(v string) *FarmCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetCountryCode sets the "country_code" field.
func (_c *FarmCreate) SetCountryCode(v string) *FarmCreate {
	_c.mutation.SetCountryCode(v)
	return _c
}

// SetDefaultCurrency sets the "default_currency" field.
func (_c *FarmCreate) SetDefaultCurrency(v string) *FarmCreate {
	_c.mutation.SetDefaultCurrency(v)
	return _c
}

// SetLegalForm sets the "legal_form" field.
func (_c *FarmCreate) SetLegalForm(v string) *FarmCreate {
	_c.mutation.SetLegalForm(v)
	return _c
}

// SetNillableLegalForm sets the "legal_form" field if the given value is not nil.
func (_c *FarmCreate) SetNillableLegalForm(v *string) *FarmCreate {
	if v != nil {
		_c.SetLegalForm(*v)
	}
	return _c
}

// SetContactEmail sets the "contact_email" field.
func (_c *FarmCreate) SetContactEmail(v string) *FarmCreate {
	_c.mutation.SetContactEmail(v)
	return _c
}

// SetNillableContactEmail sets the "contact_email" field if the given value is not nil.
func (_c *FarmCreate) SetNillableContactEmail(v *string) *FarmCreate {
	if v != nil {
		_c.SetContactEmail(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FarmCreate) SetCreatedAt(v time.Time) *FarmCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FarmCreate) SetNillableCreatedAt(v *time.Time) *FarmCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FarmCreate) SetUpdatedAt(v time.Time) *FarmCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FarmCreate) SetNillableUpdatedAt(v *time.Time) *FarmCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FarmCreate) SetID(v uuid.UUID) *FarmCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FarmCreate) SetNillableID(v *uuid.UUID) *FarmCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_c *FarmCreate) AddDocumentIDs(ids ...uuid.UUID) *FarmCreate {
	_c.mutation.AddDocumentIDs(ids...)
	return _c
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_c *FarmCreate) AddDocuments(v ...*Document) *FarmCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDocumentIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ProcessingJob entity by IDs.
func (_c *FarmCreate) AddJobIDs(ids ...uuid.UUID) *FarmCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the ProcessingJob entity.
func (_c *FarmCreate) AddJobs(v ...*ProcessingJob) *FarmCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// AddResultIDs adds the "results" edge to the ExtractionResult entity by IDs.
func (_c *FarmCreate) AddResultIDs(ids ...uuid.UUID) *FarmCreate {
	_c.mutation.AddResultIDs(ids...)
	return _c
}

// AddResults adds the "results" edges to the ExtractionResult entity.
func (_c *FarmCreate) AddResults(v ...*ExtractionResult) *FarmCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddResultIDs(ids...)
}

// AddReviewEditIDs adds the "review_edits" edge to the ReviewEdit entity by IDs.
func (_c *FarmCreate) AddReviewEditIDs(ids ...uuid.UUID) *FarmCreate {
	_c.mutation.AddReviewEditIDs(ids...)
	return _c
}

// AddReviewEdits adds the "review_edits" edges to the ReviewEdit entity.
func (_c *FarmCreate) AddReviewEdits(v ...*ReviewEdit) *FarmCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddReviewEditIDs(ids...)
}

// SetFormStateID sets the "form_state" edge to the FormState entity by ID.
func (_c *FarmCreate) SetFormStateID(id uuid.UUID) *FarmCreate {
	_c.mutation.SetFormStateID(id)
	return _c
}

// SetNillableFormStateID sets the "form_state" edge to the FormState entity by ID if the given value is not nil.
func (_c *FarmCreate) SetNillableFormStateID(id *uuid.UUID) *FarmCreate {
	if id != nil {
		_c = _c.SetFormStateID(*id)
	}
	return _c
}

// SetFormState sets the "form_state" edge to the FormState entity.
func (_c *FarmCreate) SetFormState(v *FormState) *FarmCreate {
	return _c.SetFormStateID(v.ID)
}

// Mutation returns the FarmMutation object of the builder.
func (_c *FarmCreate) Mutation() *FarmMutation {
	return _c.mutation
}

// Save creates the Farm in the database.
func (_c *FarmCreate) Save(ctx context.Context) (*Farm, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FarmCreate) SaveX(ctx context.Context) *Farm {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FarmCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FarmCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FarmCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := farm.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := farm.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := farm.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FarmCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Farm.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := farm.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Farm.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CountryCode(); !ok {
		return &ValidationError{Name: "country_code", err: errors.New(`ent: missing required field "Farm.country_code"`)}
	}
	if v, ok := _c.mutation.CountryCode(); ok {
		if err := farm.CountryCodeValidator(v); err != nil {
			return &ValidationError{Name: "country_code", err: fmt.Errorf(`ent: validator failed for field "Farm.country_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DefaultCurrency(); !ok {
		return &ValidationError{Name: "default_currency", err: errors.New(`ent: missing required field "Farm.default_currency"`)}
	}
	if v, ok := _c.mutation.DefaultCurrency(); ok {
		if err := farm.DefaultCurrencyValidator(v); err != nil {
			return &ValidationError{Name: "default_currency", err: fmt.Errorf(`ent: validator failed for field "Farm.default_currency": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Farm.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Farm.updated_at"`)}
	}
	return nil
}

func (_c *FarmCreate) sqlSave(ctx context.Context) (*Farm, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FarmCreate) createSpec() (*Farm, *sqlgraph.CreateSpec) {
	var (
		_node = &Farm{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(farm.Table, sqlgraph.NewFieldSpec(farm.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(farm.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.CountryCode(); ok {
		_spec.SetField(farm.FieldCountryCode, field.TypeString, value)
		_node.CountryCode = value
	}
	if value, ok := _c.mutation.DefaultCurrency(); ok {
		_spec.SetField(farm.FieldDefaultCurrency, field.TypeString, value)
		_node.DefaultCurrency = value
	}
	if value, ok := _c.mutation.LegalForm(); ok {
		_spec.SetField(farm.FieldLegalForm, field.TypeString, value)
		_node.LegalForm = &value
	}
	if value, ok := _c.mutation.ContactEmail(); ok {
		_spec.SetField(farm.FieldContactEmail, field.TypeString, value)
		_node.ContactEmail = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(farm.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(farm.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.DocumentsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ReviewEditsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FormStateIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FarmCreateBulk is the builder for creating many Farm entities in bulk.
type FarmCreateBulk struct {
	config
	err      error
	builders []*FarmCreate
}

// Save creates the Farm entities in the database.
func (_c *FarmCreateBulk) Save(ctx context.Context) ([]*Farm, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Farm, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FarmMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *FarmCreateBulk) SaveX(ctx context.Context) []*Farm {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FarmCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FarmCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
