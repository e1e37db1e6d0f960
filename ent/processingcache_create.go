// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Engagic/engagic-sub004/ent/processingcache"
)

// ProcessingCacheCreate is the builder for creating a ProcessingCache entity.
type ProcessingCacheCreate struct {
	config
	mutation *ProcessingCacheMutation
	hooks    []Hook
}

// SetPacketURL sets the "packet_url" field.
func (_c *ProcessingCacheCreate) SetPacketURL(v string) *ProcessingCacheCreate {
	_c.mutation.SetPacketURL(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *ProcessingCacheCreate) SetContentHash(v string) *ProcessingCacheCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_c *ProcessingCacheCreate) SetNillableContentHash(v *string) *ProcessingCacheCreate {
	if v != nil {
		_c.SetContentHash(*v)
	}
	return _c
}

// SetMethod sets the "method" field.
func (_c *ProcessingCacheCreate) SetMethod(v string) *ProcessingCacheCreate {
	_c.mutation.SetMethod(v)
	return _c
}

// SetElapsedMs sets the "elapsed_ms" field.
func (_c *ProcessingCacheCreate) SetElapsedMs(v int) *ProcessingCacheCreate {
	_c.mutation.SetElapsedMs(v)
	return _c
}

// SetNillableElapsedMs sets the "elapsed_ms" field if the given value is not nil.
func (_c *ProcessingCacheCreate) SetNillableElapsedMs(v *int) *ProcessingCacheCreate {
	if v != nil {
		_c.SetElapsedMs(*v)
	}
	return _c
}

// SetHitCount sets the "hit_count" field.
func (_c *ProcessingCacheCreate) SetHitCount(v int) *ProcessingCacheCreate {
	_c.mutation.SetHitCount(v)
	return _c
}

// SetNillableHitCount sets the "hit_count" field if the given value is not nil.
func (_c *ProcessingCacheCreate) SetNillableHitCount(v *int) *ProcessingCacheCreate {
	if v != nil {
		_c.SetHitCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProcessingCacheCreate) SetCreatedAt(v time.Time) *ProcessingCacheCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProcessingCacheCreate) SetNillableCreatedAt(v *time.Time) *ProcessingCacheCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLastAccessedAt sets the "last_accessed_at" field.
func (_c *ProcessingCacheCreate) SetLastAccessedAt(v time.Time) *ProcessingCacheCreate {
	_c.mutation.SetLastAccessedAt(v)
	return _c
}

// SetNillableLastAccessedAt sets the "last_accessed_at" field if the given value is not nil.
func (_c *ProcessingCacheCreate) SetNillableLastAccessedAt(v *time.Time) *ProcessingCacheCreate {
	if v != nil {
		_c.SetLastAccessedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProcessingCacheCreate) SetID(v int64) *ProcessingCacheCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ProcessingCacheMutation object of the builder.
func (_c *ProcessingCacheCreate) Mutation() *ProcessingCacheMutation {
	return _c.mutation
}

// Save creates the ProcessingCache in the database.
func (_c *ProcessingCacheCreate) Save(ctx context.Context) (*ProcessingCache, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProcessingCacheCreate) SaveX(ctx context.Context) *ProcessingCache {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessingCacheCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessingCacheCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProcessingCacheCreate) defaults() {
	if _, ok := _c.mutation.ElapsedMs(); !ok {
		v := processingcache.DefaultElapsedMs
		_c.mutation.SetElapsedMs(v)
	}
	if _, ok := _c.mutation.HitCount(); !ok {
		v := processingcache.DefaultHitCount
		_c.mutation.SetHitCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := processingcache.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.LastAccessedAt(); !ok {
		v := processingcache.DefaultLastAccessedAt()
		_c.mutation.SetLastAccessedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProcessingCacheCreate) check() error {
	if _, ok := _c.mutation.PacketURL(); !ok {
		return &ValidationError{Name: "packet_url", err: errors.New(`ent: missing required field "ProcessingCache.packet_url"`)}
	}
	if _, ok := _c.mutation.Method(); !ok {
		return &ValidationError{Name: "method", err: errors.New(`ent: missing required field "ProcessingCache.method"`)}
	}
	if _, ok := _c.mutation.ElapsedMs(); !ok {
		return &ValidationError{Name: "elapsed_ms", err: errors.New(`ent: missing required field "ProcessingCache.elapsed_ms"`)}
	}
	if _, ok := _c.mutation.HitCount(); !ok {
		return &ValidationError{Name: "hit_count", err: errors.New(`ent: missing required field "ProcessingCache.hit_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProcessingCache.created_at"`)}
	}
	if _, ok := _c.mutation.LastAccessedAt(); !ok {
		return &ValidationError{Name: "last_accessed_at", err: errors.New(`ent: missing required field "ProcessingCache.last_accessed_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := processingcache.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "ProcessingCache.id": %w`, err)}
		}
	}
	return nil
}

func (_c *ProcessingCacheCreate) sqlSave(ctx context.Context) (*ProcessingCache, error) {
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
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int64(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProcessingCacheCreate) createSpec() (*ProcessingCache, *sqlgraph.CreateSpec) {
	var (
		_node = &ProcessingCache{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(processingcache.Table, sqlgraph.NewFieldSpec(processingcache.FieldID, field.TypeInt64))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.PacketURL(); ok {
		_spec.SetField(processingcache.FieldPacketURL, field.TypeString, value)
		_node.PacketURL = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(processingcache.FieldContentHash, field.TypeString, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.Method(); ok {
		_spec.SetField(processingcache.FieldMethod, field.TypeString, value)
		_node.Method = value
	}
	if value, ok := _c.mutation.ElapsedMs(); ok {
		_spec.SetField(processingcache.FieldElapsedMs, field.TypeInt, value)
		_node.ElapsedMs = value
	}
	if value, ok := _c.mutation.HitCount(); ok {
		_spec.SetField(processingcache.FieldHitCount, field.TypeInt, value)
		_node.HitCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(processingcache.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.LastAccessedAt(); ok {
		_spec.SetField(processingcache.FieldLastAccessedAt, field.TypeTime, value)
		_node.LastAccessedAt = value
	}
	return _node, _spec
}

// ProcessingCacheCreateBulk is the builder for creating many ProcessingCache entities in bulk.
type ProcessingCacheCreateBulk struct {
	config
	err      error
	builders []*ProcessingCacheCreate
}

// Save creates the ProcessingCache entities in the database.
func (_c *ProcessingCacheCreateBulk) Save(ctx context.Context) ([]*ProcessingCache, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProcessingCache, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProcessingCacheMutation)
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
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int64(id)
				}
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
func (_c *ProcessingCacheCreateBulk) SaveX(ctx context.Context) []*ProcessingCache {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessingCacheCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessingCacheCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
