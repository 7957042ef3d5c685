// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/agrosuivi/farmdesk/gen/ent/document"
	"github.com/agrosuivi/farmdesk/gen/ent/farm"
	"github.com/agrosuivi/farmdesk/gen/ent/predicate"
	"github.com/agrosuivi/farmdesk/gen/ent/reviewedit"
	"github.com/google/uuid"
)

// ReviewEditUpdate is the builder for updating ReviewEdit entities.
type ReviewEditUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewEditMutation
}

// Where appends a list predicates to the ReviewEditUpdate builder.
func (_u *ReviewEditUpdate) Where(ps ...predicate.ReviewEdit) *ReviewEditUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ReviewEditUpdate) SetDocumentID(v uuid.UUID) *ReviewEditUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ReviewEditUpdate) SetNillableDocumentID(v *uuid.UUID) *ReviewEditUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetFarmID sets the "farm_id" field.
func (_u *ReviewEditUpdate) SetFarmID(v uuid.UUID) *ReviewEditUpdate {
	_u.mutation.SetFarmID(v)
	return _u
}

// SetNillableFarmID sets the "farm_id" field if the given value is not nil.
func (_u *ReviewEditUpdate) SetNillableFarmID(v *uuid.UUID) *ReviewEditUpdate {
	if v != nil {
		_u.SetFarmID(*v)
	}
	return _u
}

// SetFieldName sets the "field_name" field.
func (_u *ReviewEditUpdate) SetFieldName(v string) *ReviewEditUpdate {
	_u.mutation.SetFieldName(v)
	return _u
}

// SetNillableFieldName sets the "field_name" field if the given value is not nil.
func (_u *ReviewEditUpdate) SetNillableFieldName(v *string) *ReviewEditUpdate {
	if v != nil {
		_u.SetFieldName(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *ReviewEditUpdate) SetValue(v json.RawMessage) *ReviewEditUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// AppendValue appends value to the "value" field.
func (_u *ReviewEditUpdate) AppendValue(v json.RawMessage) *ReviewEditUpdate {
	_u.mutation.AppendValue(v)
	return _u
}

// SetEditedAt sets the "edited_at" field.
func (_u *ReviewEditUpdate) SetEditedAt(v time.Time) *ReviewEditUpdate {
	_u.mutation.SetEditedAt(v)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ReviewEditUpdate) SetDocument(v *Document) *ReviewEditUpdate {
	return _u.SetDocumentID(v.ID)
}

// SetFarm sets the "farm" edge to the Farm entity.
func (_u *ReviewEditUpdate) SetFarm(v *Farm) *ReviewEditUpdate {
	return _u.SetFarmID(v.ID)
}

// Mutation returns the ReviewEditMutation object of the builder.
func (_u *ReviewEditUpdate) Mutation() *ReviewEditMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ReviewEditUpdate) ClearDocument() *ReviewEditUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// ClearFarm clears the "farm" edge to the Farm entity.
func (_u *ReviewEditUpdate) ClearFarm() *ReviewEditUpdate {
	_u.mutation.ClearFarm()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewEditUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewEditUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewEditUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewEditUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReviewEditUpdate) defaults() {
	if _, ok := _u.mutation.EditedAt(); !ok {
		v := reviewedit.UpdateDefaultEditedAt()
		_u.mutation.SetEditedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewEditUpdate) check() error {
	if v, ok := _u.mutation.FieldName(); ok {
		if err := reviewedit.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "ReviewEdit.field_name": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReviewEdit.document"`)
	}
	if _u.mutation.FarmCleared() && len(_u.mutation.FarmIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReviewEdit.farm"`)
	}
	return nil
}

func (_u *ReviewEditUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewedit.Table, reviewedit.Columns, sqlgraph.NewFieldSpec(reviewedit.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FieldName(); ok {
		_spec.SetField(reviewedit.FieldFieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(reviewedit.FieldValue, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedValue(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reviewedit.FieldValue, value)
		})
	}
	if value, ok := _u.mutation.EditedAt(); ok {
		_spec.SetField(reviewedit.FieldEditedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FarmCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FarmIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewedit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewEditUpdateOne is the builder for updating a single ReviewEdit entity.
type ReviewEditUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewEditMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *ReviewEditUpdateOne) SetDocumentID(v uuid.UUID) *ReviewEditUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ReviewEditUpdateOne) SetNillableDocumentID(v *uuid.UUID) *ReviewEditUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetFarmID sets the "farm_id" field.
func (_u *ReviewEditUpdateOne) SetFarmID(v uuid.UUID) *ReviewEditUpdateOne {
	_u.mutation.SetFarmID(v)
	return _u
}

// SetNillableFarmID sets the "farm_id" field if the given value is not nil.
func (_u *ReviewEditUpdateOne) SetNillableFarmID(v *uuid.UUID) *ReviewEditUpdateOne {
	if v != nil {
		_u.SetFarmID(*v)
	}
	return _u
}

// SetFieldName sets the "field_name" field.
func (_u *ReviewEditUpdateOne) SetFieldName(v string) *ReviewEditUpdateOne {
	_u.mutation.SetFieldName(v)
	return _u
}

// SetNillableFieldName sets the "field_name" field if the given value is not nil.
func (_u *ReviewEditUpdateOne) SetNillableFieldName(v *string) *ReviewEditUpdateOne {
	if v != nil {
		_u.SetFieldName(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *ReviewEditUpdateOne) SetValue(v json.RawMessage) *ReviewEditUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// AppendValue appends value to the "value" field.
func (_u *ReviewEditUpdateOne) AppendValue(v json.RawMessage) *ReviewEditUpdateOne {
	_u.mutation.AppendValue(v)
	return _u
}

// SetEditedAt sets the "edited_at" field.
func (_u *ReviewEditUpdateOne) SetEditedAt(v time.Time) *ReviewEditUpdateOne {
	_u.mutation.SetEditedAt(v)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ReviewEditUpdateOne) SetDocument(v *Document) *ReviewEditUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// SetFarm sets the "farm" edge to the Farm entity.
func (_u *ReviewEditUpdateOne) SetFarm(v *Farm) *ReviewEditUpdateOne {
	return _u.SetFarmID(v.ID)
}

// Mutation returns the ReviewEditMutation object of the builder.
func (_u *ReviewEditUpdateOne) Mutation() *ReviewEditMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ReviewEditUpdateOne) ClearDocument() *ReviewEditUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// ClearFarm clears the "farm" edge to the Farm entity.
func (_u *ReviewEditUpdateOne) ClearFarm() *ReviewEditUpdateOne {
	_u.mutation.ClearFarm()
	return _u
}

// Where appends a list predicates to the ReviewEditUpdate builder.
func (_u *ReviewEditUpdateOne) Where(ps ...predicate.ReviewEdit) *ReviewEditUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewEditUpdateOne) Select(field string, fields ...string) *ReviewEditUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewEdit entity.
func (_u *ReviewEditUpdateOne) Save(ctx context.Context) (*ReviewEdit, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewEditUpdateOne) SaveX(ctx context.Context) *ReviewEdit {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewEditUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewEditUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReviewEditUpdateOne) defaults() {
	if _, ok := _u.mutation.EditedAt(); !ok {
		v := reviewedit.UpdateDefaultEditedAt()
		_u.mutation.SetEditedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewEditUpdateOne) check() error {
	if v, ok := _u.mutation.FieldName(); ok {
		if err := reviewedit.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "ReviewEdit.field_name": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReviewEdit.document"`)
	}
	if _u.mutation.FarmCleared() && len(_u.mutation.FarmIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReviewEdit.farm"`)
	}
	return nil
}

func (_u *ReviewEditUpdateOne) sqlSave(ctx context.Context) (_node *ReviewEdit, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewedit.Table, reviewedit.Columns, sqlgraph.NewFieldSpec(reviewedit.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewEdit.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewedit.FieldID)
		for _, f := range fields {
			if !reviewedit.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewedit.FieldID {
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
	if value, ok := _u.mutation.FieldName(); ok {
		_spec.SetField(reviewedit.FieldFieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(reviewedit.FieldValue, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedValue(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reviewedit.FieldValue, value)
		})
	}
	if value, ok := _u.mutation.EditedAt(); ok {
		_spec.SetField(reviewedit.FieldEditedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FarmCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FarmIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ReviewEdit{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewedit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
