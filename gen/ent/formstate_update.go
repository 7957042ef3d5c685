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
	"github.com/agrosuivi/farmdesk/gen/ent/farm"
	"github.com/agrosuivi/farmdesk/gen/ent/formstate"
	"github.com/agrosuivi/farmdesk/gen/ent/predicate"
	"github.com/google/uuid"
)

// FormStateUpdate is the builder for updating FormState entities.
type FormStateUpdate struct {
	config
	hooks    []Hook
	mutation *FormStateMutation
}

// Where appends a list predicates to the FormStateUpdate builder.
func (_u *FormStateUpdate) Where(ps ...predicate.FormState) *FormStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFarmID sets the "farm_id" field.
func (_u *FormStateUpdate) SetFarmID(v uuid.UUID) *FormStateUpdate {
	_u.mutation.SetFarmID(v)
	return _u
}

// SetNillableFarmID sets the "farm_id" field if the given value is not nil.
func (_u *FormStateUpdate) SetNillableFarmID(v *uuid.UUID) *FormStateUpdate {
	if v != nil {
		_u.SetFarmID(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *FormStateUpdate) SetData(v json.RawMessage) *FormStateUpdate {
	_u.mutation.SetData(v)
	return _u
}

// AppendData appends value to the "data" field.
func (_u *FormStateUpdate) AppendData(v json.RawMessage) *FormStateUpdate {
	_u.mutation.AppendData(v)
	return _u
}

// ClearData clears the value of the "data" field.
func (_u *FormStateUpdate) ClearData() *FormStateUpdate {
	_u.mutation.ClearData()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FormStateUpdate) SetUpdatedAt(v time.Time) *FormStateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFarm sets the "farm" edge to the Farm entity.
func (_u *FormStateUpdate) SetFarm(v *Farm) *FormStateUpdate {
	return _u.SetFarmID(v.ID)
}

// Mutation returns the FormStateMutation object of the builder.
func (_u *FormStateUpdate) Mutation() *FormStateMutation {
	return _u.mutation
}

// ClearFarm clears the "farm" edge to the Farm entity.
func (_u *FormStateUpdate) ClearFarm() *FormStateUpdate {
	_u.mutation.ClearFarm()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FormStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FormStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FormStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FormStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FormStateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := formstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FormStateUpdate) check() error {
	if _u.mutation.FarmCleared() && len(_u.mutation.FarmIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FormState.farm"`)
	}
	return nil
}

func (_u *FormStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(formstate.Table, formstate.Columns, sqlgraph.NewFieldSpec(formstate.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(formstate.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, formstate.FieldData, value)
		})
	}
	if _u.mutation.DataCleared() {
		_spec.ClearField(formstate.FieldData, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(formstate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FarmCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   formstate.FarmTable,
			Columns: []string{formstate.FarmColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(farm.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FarmIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   formstate.FarmTable,
			Columns: []string{formstate.FarmColumn},
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
			err = &NotFoundError{formstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FormStateUpdateOne is the builder for updating a single FormState entity.
type FormStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FormStateMutation
}

// SetFarmID sets the "farm_id" field.
func (_u *FormStateUpdateOne) SetFarmID(v uuid.UUID) *FormStateUpdateOne {
	_u.mutation.SetFarmID(v)
	return _u
}

// SetNillableFarmID sets the "farm_id" field if the given value is not nil.
func (_u *FormStateUpdateOne) SetNillableFarmID(v *uuid.UUID) *FormStateUpdateOne {
	if v != nil {
		_u.SetFarmID(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *FormStateUpdateOne) SetData(v json.RawMessage) *FormStateUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// AppendData appends value to the "data" field.
func (_u *FormStateUpdateOne) AppendData(v json.RawMessage) *FormStateUpdateOne {
	_u.mutation.AppendData(v)
	return _u
}

// ClearData clears the value of the "data" field.
func (_u *FormStateUpdateOne) ClearData() *FormStateUpdateOne {
	_u.mutation.ClearData()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FormStateUpdateOne) SetUpdatedAt(v time.Time) *FormStateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFarm sets the "farm" edge to the Farm entity.
func (_u *FormStateUpdateOne) SetFarm(v *Farm) *FormStateUpdateOne {
	return _u.SetFarmID(v.ID)
}

// Mutation returns the FormStateMutation object of the builder.
func (_u *FormStateUpdateOne) Mutation() *FormStateMutation {
	return _u.mutation
}

// ClearFarm clears the "farm" edge to the Farm entity.
func (_u *FormStateUpdateOne) ClearFarm() *FormStateUpdateOne {
	_u.mutation.ClearFarm()
	return _u
}

// Where appends a list predicates to the FormStateUpdate builder.
func (_u *FormStateUpdateOne) Where(ps ...predicate.FormState) *FormStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FormStateUpdateOne) Select(field string, fields ...string) *FormStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FormState entity.
func (_u *FormStateUpdateOne) Save(ctx context.Context) (*FormState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FormStateUpdateOne) SaveX(ctx context.Context) *FormState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FormStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FormStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FormStateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := formstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FormStateUpdateOne) check() error {
	if _u.mutation.FarmCleared() && len(_u.mutation.FarmIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FormState.farm"`)
	}
	return nil
}

func (_u *FormStateUpdateOne) sqlSave(ctx context.Context) (_node *FormState, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(formstate.Table, formstate.Columns, sqlgraph.NewFieldSpec(formstate.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FormState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, formstate.FieldID)
		for _, f := range fields {
			if !formstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != formstate.FieldID {
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
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(formstate.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, formstate.FieldData, value)
		})
	}
	if _u.mutation.DataCleared() {
		_spec.ClearField(formstate.FieldData, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(formstate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FarmCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   formstate.FarmTable,
			Columns: []string{formstate.FarmColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(farm.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FarmIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   formstate.FarmTable,
			Columns: []string{formstate.FarmColumn},
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
	_node = &FormState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{formstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
