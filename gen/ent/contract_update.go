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
	"github.com/google/uuid"
	"github.com/joseph-ayodele/docflow/gen/ent/contract"
	"github.com/joseph-ayodele/docflow/gen/ent/document"
	"github.com/joseph-ayodele/docflow/gen/ent/predicate"
)

// ContractUpdate is the builder for updating Contract entities.
type ContractUpdate struct {
	config
	hooks    []Hook
	mutation *ContractMutation
}

// Where appends a list predicates to the ContractUpdate builder.
func (_u *ContractUpdate) Where(ps ...predicate.Contract) *ContractUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ContractUpdate) SetDocumentID(v uuid.UUID) *ContractUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableDocumentID(v *uuid.UUID) *ContractUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetPartyA sets the "party_a" field.
func (_u *ContractUpdate) SetPartyA(v string) *ContractUpdate {
	_u.mutation.SetPartyA(v)
	return _u
}

// SetNillablePartyA sets the "party_a" field if the given value is not nil.
func (_u *ContractUpdate) SetNillablePartyA(v *string) *ContractUpdate {
	if v != nil {
		_u.SetPartyA(*v)
	}
	return _u
}

// ClearPartyA clears the value of the "party_a" field.
func (_u *ContractUpdate) ClearPartyA() *ContractUpdate {
	_u.mutation.ClearPartyA()
	return _u
}

// SetPartyB sets the "party_b" field.
func (_u *ContractUpdate) SetPartyB(v string) *ContractUpdate {
	_u.mutation.SetPartyB(v)
	return _u
}

// SetNillablePartyB sets the "party_b" field if the given value is not nil.
func (_u *ContractUpdate) SetNillablePartyB(v *string) *ContractUpdate {
	if v != nil {
		_u.SetPartyB(*v)
	}
	return _u
}

// ClearPartyB clears the value of the "party_b" field.
func (_u *ContractUpdate) ClearPartyB() *ContractUpdate {
	_u.mutation.ClearPartyB()
	return _u
}

// SetEffectiveDate sets the "effective_date" field.
func (_u *ContractUpdate) SetEffectiveDate(v time.Time) *ContractUpdate {
	_u.mutation.SetEffectiveDate(v)
	return _u
}

// SetNillableEffectiveDate sets the "effective_date" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableEffectiveDate(v *time.Time) *ContractUpdate {
	if v != nil {
		_u.SetEffectiveDate(*v)
	}
	return _u
}

// ClearEffectiveDate clears the value of the "effective_date" field.
func (_u *ContractUpdate) ClearEffectiveDate() *ContractUpdate {
	_u.mutation.ClearEffectiveDate()
	return _u
}

// SetExpirationDate sets the "expiration_date" field.
func (_u *ContractUpdate) SetExpirationDate(v time.Time) *ContractUpdate {
	_u.mutation.SetExpirationDate(v)
	return _u
}

// SetNillableExpirationDate sets the "expiration_date" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableExpirationDate(v *time.Time) *ContractUpdate {
	if v != nil {
		_u.SetExpirationDate(*v)
	}
	return _u
}

// ClearExpirationDate clears the value of the "expiration_date" field.
func (_u *ContractUpdate) ClearExpirationDate() *ContractUpdate {
	_u.mutation.ClearExpirationDate()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ContractUpdate) SetSummary(v string) *ContractUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableSummary(v *string) *ContractUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *ContractUpdate) ClearSummary() *ContractUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContractUpdate) SetUpdatedAt(v time.Time) *ContractUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ContractUpdate) SetDocument(v *Document) *ContractUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the ContractMutation object of the builder.
func (_u *ContractUpdate) Mutation() *ContractMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ContractUpdate) ClearDocument() *ContractUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContractUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContractUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContractUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContractUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContractUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contract.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContractUpdate) check() error {
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Contract.document"`)
	}
	return nil
}

func (_u *ContractUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contract.Table, contract.Columns, sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PartyA(); ok {
		_spec.SetField(contract.FieldPartyA, field.TypeString, value)
	}
	if _u.mutation.PartyACleared() {
		_spec.ClearField(contract.FieldPartyA, field.TypeString)
	}
	if value, ok := _u.mutation.PartyB(); ok {
		_spec.SetField(contract.FieldPartyB, field.TypeString, value)
	}
	if _u.mutation.PartyBCleared() {
		_spec.ClearField(contract.FieldPartyB, field.TypeString)
	}
	if value, ok := _u.mutation.EffectiveDate(); ok {
		_spec.SetField(contract.FieldEffectiveDate, field.TypeTime, value)
	}
	if _u.mutation.EffectiveDateCleared() {
		_spec.ClearField(contract.FieldEffectiveDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ExpirationDate(); ok {
		_spec.SetField(contract.FieldExpirationDate, field.TypeTime, value)
	}
	if _u.mutation.ExpirationDateCleared() {
		_spec.ClearField(contract.FieldExpirationDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(contract.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(contract.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contract.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   contract.DocumentTable,
			Columns: []string{contract.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   contract.DocumentTable,
			Columns: []string{contract.DocumentColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contract.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContractUpdateOne is the builder for updating a single Contract entity.
type ContractUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContractMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *ContractUpdateOne) SetDocumentID(v uuid.UUID) *ContractUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableDocumentID(v *uuid.UUID) *ContractUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetPartyA sets the "party_a" field.
func (_u *ContractUpdateOne) SetPartyA(v string) *ContractUpdateOne {
	_u.mutation.SetPartyA(v)
	return _u
}

// SetNillablePartyA sets the "party_a" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillablePartyA(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetPartyA(*v)
	}
	return _u
}

// ClearPartyA clears the value of the "party_a" field.
func (_u *ContractUpdateOne) ClearPartyA() *ContractUpdateOne {
	_u.mutation.ClearPartyA()
	return _u
}

// SetPartyB sets the "party_b" field.
func (_u *ContractUpdateOne) SetPartyB(v string) *ContractUpdateOne {
	_u.mutation.SetPartyB(v)
	return _u
}

// SetNillablePartyB sets the "party_b" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillablePartyB(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetPartyB(*v)
	}
	return _u
}

// ClearPartyB clears the value of the "party_b" field.
func (_u *ContractUpdateOne) ClearPartyB() *ContractUpdateOne {
	_u.mutation.ClearPartyB()
	return _u
}

// SetEffectiveDate sets the "effective_date" field.
func (_u *ContractUpdateOne) SetEffectiveDate(v time.Time) *ContractUpdateOne {
	_u.mutation.SetEffectiveDate(v)
	return _u
}

// SetNillableEffectiveDate sets the "effective_date" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableEffectiveDate(v *time.Time) *ContractUpdateOne {
	if v != nil {
		_u.SetEffectiveDate(*v)
	}
	return _u
}

// ClearEffectiveDate clears the value of the "effective_date" field.
func (_u *ContractUpdateOne) ClearEffectiveDate() *ContractUpdateOne {
	_u.mutation.ClearEffectiveDate()
	return _u
}

// SetExpirationDate sets the "expiration_date" field.
func (_u *ContractUpdateOne) SetExpirationDate(v time.Time) *ContractUpdateOne {
	_u.mutation.SetExpirationDate(v)
	return _u
}

// SetNillableExpirationDate sets the "expiration_date" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableExpirationDate(v *time.Time) *ContractUpdateOne {
	if v != nil {
		_u.SetExpirationDate(*v)
	}
	return _u
}

// ClearExpirationDate clears the value of the "expiration_date" field.
func (_u *ContractUpdateOne) ClearExpirationDate() *ContractUpdateOne {
	_u.mutation.ClearExpirationDate()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ContractUpdateOne) SetSummary(v string) *ContractUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableSummary(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *ContractUpdateOne) ClearSummary() *ContractUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContractUpdateOne) SetUpdatedAt(v time.Time) *ContractUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ContractUpdateOne) SetDocument(v *Document) *ContractUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the ContractMutation object of the builder.
func (_u *ContractUpdateOne) Mutation() *ContractMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ContractUpdateOne) ClearDocument() *ContractUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the ContractUpdate builder.
func (_u *ContractUpdateOne) Where(ps ...predicate.Contract) *ContractUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContractUpdateOne) Select(field string, fields ...string) *ContractUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Contract entity.
func (_u *ContractUpdateOne) Save(ctx context.Context) (*Contract, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContractUpdateOne) SaveX(ctx context.Context) *Contract {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContractUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContractUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContractUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contract.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContractUpdateOne) check() error {
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Contract.document"`)
	}
	return nil
}

func (_u *ContractUpdateOne) sqlSave(ctx context.Context) (_node *Contract, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contract.Table, contract.Columns, sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Contract.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contract.FieldID)
		for _, f := range fields {
			if !contract.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contract.FieldID {
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
	if value, ok := _u.mutation.PartyA(); ok {
		_spec.SetField(contract.FieldPartyA, field.TypeString, value)
	}
	if _u.mutation.PartyACleared() {
		_spec.ClearField(contract.FieldPartyA, field.TypeString)
	}
	if value, ok := _u.mutation.PartyB(); ok {
		_spec.SetField(contract.FieldPartyB, field.TypeString, value)
	}
	if _u.mutation.PartyBCleared() {
		_spec.ClearField(contract.FieldPartyB, field.TypeString)
	}
	if value, ok := _u.mutation.EffectiveDate(); ok {
		_spec.SetField(contract.FieldEffectiveDate, field.TypeTime, value)
	}
	if _u.mutation.EffectiveDateCleared() {
		_spec.ClearField(contract.FieldEffectiveDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ExpirationDate(); ok {
		_spec.SetField(contract.FieldExpirationDate, field.TypeTime, value)
	}
	if _u.mutation.ExpirationDateCleared() {
		_spec.ClearField(contract.FieldExpirationDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(contract.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(contract.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contract.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   contract.DocumentTable,
			Columns: []string{contract.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   contract.DocumentTable,
			Columns: []string{contract.DocumentColumn},
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
	_node = &Contract{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contract.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
