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
	"github.com/Engagic/engagic-sub004/ent/predicate"
	"github.com/Engagic/engagic-sub004/ent/processingcache"
)

// ProcessingCacheUpdate is the builder for updating ProcessingCache entities.
type ProcessingCacheUpdate struct {
	config
	hooks    []Hook
	mutation *ProcessingCacheMutation
}

// Where appends a list predicates to the ProcessingCacheUpdate builder.
func (_u *ProcessingCacheUpdate) Where(ps ...predicate.ProcessingCache) *ProcessingCacheUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPacketURL sets the "packet_url" field.
func (_u *ProcessingCacheUpdate) SetPacketURL(v string) *ProcessingCacheUpdate {
	_u.mutation.SetPacketURL(v)
	return _u
}

// SetNillablePacketURL sets the "packet_url" field if the given value is not nil.
func (_u *ProcessingCacheUpdate) SetNillablePacketURL(v *string) *ProcessingCacheUpdate {
	if v != nil {
		_u.SetPacketURL(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *ProcessingCacheUpdate) SetContentHash(v string) *ProcessingCacheUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *ProcessingCacheUpdate) SetNillableContentHash(v *string) *ProcessingCacheUpdate {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// ClearContentHash clears the value of the "content_hash" field.
func (_u *ProcessingCacheUpdate) ClearContentHash() *ProcessingCacheUpdate {
	_u.mutation.ClearContentHash()
	return _u
}

// SetMethod sets the "method" field.
func (_u *ProcessingCacheUpdate) SetMethod(v string) *ProcessingCacheUpdate {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *ProcessingCacheUpdate) SetNillableMethod(v *string) *ProcessingCacheUpdate {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// SetElapsedMs sets the "elapsed_ms" field.
func (_u *ProcessingCacheUpdate) SetElapsedMs(v int) *ProcessingCacheUpdate {
	_u.mutation.ResetElapsedMs()
	_u.mutation.SetElapsedMs(v)
	return _u
}

// SetNillableElapsedMs sets the "elapsed_ms" field if the given value is not nil.
func (_u *ProcessingCacheUpdate) SetNillableElapsedMs(v *int) *ProcessingCacheUpdate {
	if v != nil {
		_u.SetElapsedMs(*v)
	}
	return _u
}

// AddElapsedMs adds value to the "elapsed_ms" field.
func (_u *ProcessingCacheUpdate) AddElapsedMs(v int) *ProcessingCacheUpdate {
	_u.mutation.AddElapsedMs(v)
	return _u
}

// SetHitCount sets the "hit_count" field.
func (_u *ProcessingCacheUpdate) SetHitCount(v int) *ProcessingCacheUpdate {
	_u.mutation.ResetHitCount()
	_u.mutation.SetHitCount(v)
	return _u
}

// SetNillableHitCount sets the "hit_count" field if the given value is not nil.
func (_u *ProcessingCacheUpdate) SetNillableHitCount(v *int) *ProcessingCacheUpdate {
	if v != nil {
		_u.SetHitCount(*v)
	}
	return _u
}

// AddHitCount adds value to the "hit_count" field.
func (_u *ProcessingCacheUpdate) AddHitCount(v int) *ProcessingCacheUpdate {
	_u.mutation.AddHitCount(v)
	return _u
}

// SetLastAccessedAt sets the "last_accessed_at" field.
func (_u *ProcessingCacheUpdate) SetLastAccessedAt(v time.Time) *ProcessingCacheUpdate {
	_u.mutation.SetLastAccessedAt(v)
	return _u
}

// SetNillableLastAccessedAt sets the "last_accessed_at" field if the given value is not nil.
func (_u *ProcessingCacheUpdate) SetNillableLastAccessedAt(v *time.Time) *ProcessingCacheUpdate {
	if v != nil {
		_u.SetLastAccessedAt(*v)
	}
	return _u
}

// Mutation returns the ProcessingCacheMutation object of the builder.
func (_u *ProcessingCacheUpdate) Mutation() *ProcessingCacheMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProcessingCacheUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessingCacheUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProcessingCacheUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessingCacheUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProcessingCacheUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(processingcache.Table, processingcache.Columns, sqlgraph.NewFieldSpec(processingcache.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PacketURL(); ok {
		_spec.SetField(processingcache.FieldPacketURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(processingcache.FieldContentHash, field.TypeString, value)
	}
	if _u.mutation.ContentHashCleared() {
		_spec.ClearField(processingcache.FieldContentHash, field.TypeString)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(processingcache.FieldMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.ElapsedMs(); ok {
		_spec.SetField(processingcache.FieldElapsedMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedElapsedMs(); ok {
		_spec.AddField(processingcache.FieldElapsedMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HitCount(); ok {
		_spec.SetField(processingcache.FieldHitCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHitCount(); ok {
		_spec.AddField(processingcache.FieldHitCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAccessedAt(); ok {
		_spec.SetField(processingcache.FieldLastAccessedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processingcache.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProcessingCacheUpdateOne is the builder for updating a single ProcessingCache entity.
type ProcessingCacheUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProcessingCacheMutation
}

// SetPacketURL sets the "packet_url" field.
func (_u *ProcessingCacheUpdateOne) SetPacketURL(v string) *ProcessingCacheUpdateOne {
	_u.mutation.SetPacketURL(v)
	return _u
}

// SetNillablePacketURL sets the "packet_url" field if the given value is not nil.
func (_u *ProcessingCacheUpdateOne) SetNillablePacketURL(v *string) *ProcessingCacheUpdateOne {
	if v != nil {
		_u.SetPacketURL(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *ProcessingCacheUpdateOne) SetContentHash(v string) *ProcessingCacheUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *ProcessingCacheUpdateOne) SetNillableContentHash(v *string) *ProcessingCacheUpdateOne {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// ClearContentHash clears the value of the "content_hash" field.
func (_u *ProcessingCacheUpdateOne) ClearContentHash() *ProcessingCacheUpdateOne {
	_u.mutation.ClearContentHash()
	return _u
}

// SetMethod sets the "method" field.
func (_u *ProcessingCacheUpdateOne) SetMethod(v string) *ProcessingCacheUpdateOne {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *ProcessingCacheUpdateOne) SetNillableMethod(v *string) *ProcessingCacheUpdateOne {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// SetElapsedMs sets the "elapsed_ms" field.
func (_u *ProcessingCacheUpdateOne) SetElapsedMs(v int) *ProcessingCacheUpdateOne {
	_u.mutation.ResetElapsedMs()
	_u.mutation.SetElapsedMs(v)
	return _u
}

// SetNillableElapsedMs sets the "elapsed_ms" field if the given value is not nil.
func (_u *ProcessingCacheUpdateOne) SetNillableElapsedMs(v *int) *ProcessingCacheUpdateOne {
	if v != nil {
		_u.SetElapsedMs(*v)
	}
	return _u
}

// AddElapsedMs adds value to the "elapsed_ms" field.
func (_u *ProcessingCacheUpdateOne) AddElapsedMs(v int) *ProcessingCacheUpdateOne {
	_u.mutation.AddElapsedMs(v)
	return _u
}

// SetHitCount sets the "hit_count" field.
func (_u *ProcessingCacheUpdateOne) SetHitCount(v int) *ProcessingCacheUpdateOne {
	_u.mutation.ResetHitCount()
	_u.mutation.SetHitCount(v)
	return _u
}

// SetNillableHitCount sets the "hit_count" field if the given value is not nil.
func (_u *ProcessingCacheUpdateOne) SetNillableHitCount(v *int) *ProcessingCacheUpdateOne {
	if v != nil {
		_u.SetHitCount(*v)
	}
	return _u
}

// AddHitCount adds value to the "hit_count" field.
func (_u *ProcessingCacheUpdateOne) AddHitCount(v int) *ProcessingCacheUpdateOne {
	_u.mutation.AddHitCount(v)
	return _u
}

// SetLastAccessedAt sets the "last_accessed_at" field.
func (_u *ProcessingCacheUpdateOne) SetLastAccessedAt(v time.Time) *ProcessingCacheUpdateOne {
	_u.mutation.SetLastAccessedAt(v)
	return _u
}

// SetNillableLastAccessedAt sets the "last_accessed_at" field if the given value is not nil.
func (_u *ProcessingCacheUpdateOne) SetNillableLastAccessedAt(v *time.Time) *ProcessingCacheUpdateOne {
	if v != nil {
		_u.SetLastAccessedAt(*v)
	}
	return _u
}

// Mutation returns the ProcessingCacheMutation object of the builder.
func (_u *ProcessingCacheUpdateOne) Mutation() *ProcessingCacheMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProcessingCacheUpdate builder.
func (_u *ProcessingCacheUpdateOne) Where(ps ...predicate.ProcessingCache) *ProcessingCacheUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProcessingCacheUpdateOne) Select(field string, fields ...string) *ProcessingCacheUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProcessingCache entity.
func (_u *ProcessingCacheUpdateOne) Save(ctx context.Context) (*ProcessingCache, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessingCacheUpdateOne) SaveX(ctx context.Context) *ProcessingCache {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProcessingCacheUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessingCacheUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProcessingCacheUpdateOne) sqlSave(ctx context.Context) (_node *ProcessingCache, err error) {
	_spec := sqlgraph.NewUpdateSpec(processingcache.Table, processingcache.Columns, sqlgraph.NewFieldSpec(processingcache.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProcessingCache.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, processingcache.FieldID)
		for _, f := range fields {
			if !processingcache.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != processingcache.FieldID {
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
	if value, ok := _u.mutation.PacketURL(); ok {
		_spec.SetField(processingcache.FieldPacketURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(processingcache.FieldContentHash, field.TypeString, value)
	}
	if _u.mutation.ContentHashCleared() {
		_spec.ClearField(processingcache.FieldContentHash, field.TypeString)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(processingcache.FieldMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.ElapsedMs(); ok {
		_spec.SetField(processingcache.FieldElapsedMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedElapsedMs(); ok {
		_spec.AddField(processingcache.FieldElapsedMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HitCount(); ok {
		_spec.SetField(processingcache.FieldHitCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHitCount(); ok {
		_spec.AddField(processingcache.FieldHitCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAccessedAt(); ok {
		_spec.SetField(processingcache.FieldLastAccessedAt, field.TypeTime, value)
	}
	_node = &ProcessingCache{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processingcache.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
