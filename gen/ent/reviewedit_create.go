// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agrosuivi/farmdesk/gen/ent/document"
	"github.com/agrosuivi/farmdesk/gen/ent/farm"
	"github.com/agrosuivi/farmdesk/gen/ent/reviewedit"
	"github.com/google/uuid"
)

// ReviewEditCreate is the builder for creating a ReviewEdit entity.
type ReviewEditCreate struct {
	config
	mutation *ReviewEditMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *ReviewEditCreate) SetDocumentID(v uuid.UUID) *ReviewEditCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetFarmID sets the "farm_id" field.
func (_c *ReviewEditCreate) SetFarmID(v uuid.UUID) *ReviewEditCreate {
	_c.mutation.SetFarmID(v)
	return _c
}

// SetFieldName sets the "field_name" field.
func (_c *ReviewEditCreate) SetFieldName(v string) *ReviewEditCreate {
	_c.mutation.SetFieldName(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *ReviewEditCreate) SetValue(v json.RawMessage) *ReviewEditCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetEditedAt sets the "edited_at" field.
func (_c *ReviewEditCreate) SetEditedAt(v time.Time) *ReviewEditCreate {
	_c.mutation.SetEditedAt(v)
	return _c
}

// SetNillableEditedAt sets the "edited_at" field if the given value is not nil.
func (_c *ReviewEditCreate) SetNillableEditedAt(v *time.Time) *ReviewEditCreate {
	if v != nil {
		_c.SetEditedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReviewEditCreate) SetID(v uuid.UUID) *ReviewEditCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ReviewEditCreate) SetNillableID(v *uuid.UUID) *ReviewEditCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *ReviewEditCreate) SetDocument(v *Document) *ReviewEditCreate {
	return _c.SetDocumentID(v.ID)
}

// SetFarm sets the "farm" edge to the Farm entity.
func (_c *ReviewEditCreate) SetFarm(v *Farm) *ReviewEditCreate {
	return _c.SetFarmID(v.ID)
}

// Mutation returns the ReviewEditMutation object of the builder.
func (_c *ReviewEditCreate) Mutation() *ReviewEditMutation {
	return _c.mutation
}

// Save creates the ReviewEdit in the database.
func (_c *ReviewEditCreate) Save(ctx context.Context) (*ReviewEdit, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReviewEditCreate) SaveX(ctx context.Context) *ReviewEdit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewEditCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewEditCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReviewEditCreate) defaults() {
	if _, ok := _c.mutation.EditedAt(); !ok {
		v := reviewedit.DefaultEditedAt()
		_c.mutation.SetEditedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := reviewedit.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReviewEditCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "ReviewEdit.document_id"`)}
	}
	if _, ok := _c.mutation.FarmID(); !ok {
		return &ValidationError{Name: "farm_id", err: errors.New(`ent: missing required field "ReviewEdit.farm_id"`)}
	}
	if _, ok := _c.mutation.FieldName(); !ok {
		return &ValidationError{Name: "field_name", err: errors.New(`ent: missing required field "ReviewEdit.field_name"`)}
	}
	if v, ok := _c.mutation.FieldName(); ok {
		if err := reviewedit.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "ReviewEdit.field_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "ReviewEdit.value"`)}
	}
	if _, ok := _c.mutation.EditedAt(); !ok {
		return &ValidationError{Name: "edited_at", err: errors.New(`ent: missing required field "ReviewEdit.edited_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "ReviewEdit.document"`)}
	}
	if len(_c.mutation.FarmIDs()) == 0 {
		return &ValidationError{Name: "farm", err: errors.New(`ent: missing required edge "ReviewEdit.farm"`)}
	}
	return nil
}

func (_c *ReviewEditCreate) sqlSave(ctx context.Context) (*ReviewEdit, error) {
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

func (_c *ReviewEditCreate) createSpec() (*ReviewEdit, *sqlgraph.CreateSpec) {
	var (
		_node = &ReviewEdit{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reviewedit.Table, sqlgraph.NewFieldSpec(reviewedit.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.FieldName(); ok {
		_spec.SetField(reviewedit.FieldFieldName, field.TypeString, value)
		_node.FieldName = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(reviewedit.FieldValue, field.TypeJSON, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.EditedAt(); ok {
		_spec.SetField(reviewedit.FieldEditedAt, field.TypeTime, value)
		_node.EditedAt = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reviewedit.DocumentTable,
			Columns: []string{reviewedit.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FarmIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reviewedit.FarmTable,
			Columns: []string{reviewedit.FarmColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(farm.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.FarmID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ReviewEditCreateBulk is the builder for creating many ReviewEdit entities in bulk.
type ReviewEditCreateBulk struct {
	config
	err      error
	builders []*ReviewEditCreate
}

// Save creates the ReviewEdit entities in the database.
func (_c *ReviewEditCreateBulk) Save(ctx context.Context) ([]*ReviewEdit, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReviewEdit, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReviewEditMutation)
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
func (_c *ReviewEditCreateBulk) SaveX(ctx context.Context) []*ReviewEdit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewEditCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewEditCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
