// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Engagic/engagic-sub004/ent/queuejob"
)

// QueueJobCreate is the builder for creating a QueueJob entity.
type QueueJobCreate struct {
	config
	mutation *QueueJobMutation
	hooks    []Hook
}

// SetSourceURL sets the "source_url" field.
func (_c *QueueJobCreate) SetSourceURL(v string) *QueueJobCreate {
	_c.mutation.SetSourceURL(v)
	return _c
}

// SetMeetingID sets the "meeting_id" field.
func (_c *QueueJobCreate) SetMeetingID(v string) *QueueJobCreate {
	_c.mutation.SetMeetingID(v)
	return _c
}

// SetNillableMeetingID sets the "meeting_id" field if the given value is not nil.
func (_c *QueueJobCreate) SetNillableMeetingID(v *string) *QueueJobCreate {
	if v != nil {
		_c.SetMeetingID(*v)
	}
	return _c
}

// SetBanana sets the "banana" field.
func (_c *QueueJobCreate) SetBanana(v string) *QueueJobCreate {
	_c.mutation.SetBanana(v)
	return _c
}

// SetNillableBanana sets the "banana" field if the given value is not nil.
func (_c *QueueJobCreate) SetNillableBanana(v *string) *QueueJobCreate {
	if v != nil {
		_c.SetBanana(*v)
	}
	return _c
}

// SetJobType sets the "job_type" field.
func (_c *QueueJobCreate) SetJobType(v string) *QueueJobCreate {
	_c.mutation.SetJobType(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *QueueJobCreate) SetPayload(v map[string]interface{}) *QueueJobCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *QueueJobCreate) SetStatus(v queuejob.Status) *QueueJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *QueueJobCreate) SetNillableStatus(v *queuejob.Status) *QueueJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *QueueJobCreate) SetPriority(v int) *QueueJobCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *QueueJobCreate) SetNillablePriority(v *int) *QueueJobCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *QueueJobCreate) SetRetryCount(v int) *QueueJobCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *QueueJobCreate) SetNillableRetryCount(v *int) *QueueJobCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetNotBefore sets the "not_before" field.
func (_c *QueueJobCreate) SetNotBefore(v time.Time) *QueueJobCreate {
	_c.mutation.SetNotBefore(v)
	return _c
}

// SetNillableNotBefore sets the "not_before" field if the given value is not nil.
func (_c *QueueJobCreate) SetNillableNotBefore(v *time.Time) *QueueJobCreate {
	if v != nil {
		_c.SetNotBefore(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QueueJobCreate) SetCreatedAt(v time.Time) *QueueJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QueueJobCreate) SetNillableCreatedAt(v *time.Time) *QueueJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *QueueJobCreate) SetStartedAt(v time.Time) *QueueJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *QueueJobCreate) SetNillableStartedAt(v *time.Time) *QueueJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *QueueJobCreate) SetCompletedAt(v time.Time) *QueueJobCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *QueueJobCreate) SetNillableCompletedAt(v *time.Time) *QueueJobCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetFailedAt sets the "failed_at" field.
func (_c *QueueJobCreate) SetFailedAt(v time.Time) *QueueJobCreate {
	_c.mutation.SetFailedAt(v)
	return _c
}

// SetNillableFailedAt sets the "failed_at" field if the given value is not nil.
func (_c *QueueJobCreate) SetNillableFailedAt(v *time.Time) *QueueJobCreate {
	if v != nil {
		_c.SetFailedAt(*v)
	}
	return _c
}

// SetWorkerID sets the "worker_id" field.
func (_c *QueueJobCreate) SetWorkerID(v string) *QueueJobCreate {
	_c.mutation.SetWorkerID(v)
	return _c
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_c *QueueJobCreate) SetNillableWorkerID(v *string) *QueueJobCreate {
	if v != nil {
		_c.SetWorkerID(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *QueueJobCreate) SetErrorMessage(v string) *QueueJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *QueueJobCreate) SetNillableErrorMessage(v *string) *QueueJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetProcessingMetadata sets the "processing_metadata" field.
func (_c *QueueJobCreate) SetProcessingMetadata(v map[string]interface{}) *QueueJobCreate {
	_c.mutation.SetProcessingMetadata(v)
	return _c
}

// SetID sets the "id" field.
func (_c *QueueJobCreate) SetID(v int64) *QueueJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the QueueJobMutation object of the builder.
func (_c *QueueJobCreate) Mutation() *QueueJobMutation {
	return _c.mutation
}

// Save creates the QueueJob in the database.
func (_c *QueueJobCreate) Save(ctx context.Context) (*QueueJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QueueJobCreate) SaveX(ctx context.Context) *QueueJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueueJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueueJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QueueJobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := queuejob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := queuejob.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := queuejob.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := queuejob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QueueJobCreate) check() error {
	if _, ok := _c.mutation.SourceURL(); !ok {
		return &ValidationError{Name: "source_url", err: errors.New(`ent: missing required field "QueueJob.source_url"`)}
	}
	if _, ok := _c.mutation.JobType(); !ok {
		return &ValidationError{Name: "job_type", err: errors.New(`ent: missing required field "QueueJob.job_type"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "QueueJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := queuejob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QueueJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "QueueJob.priority"`)}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "QueueJob.retry_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QueueJob.created_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := queuejob.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "QueueJob.id": %w`, err)}
		}
	}
	return nil
}

func (_c *QueueJobCreate) sqlSave(ctx context.Context) (*QueueJob, error) {
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

func (_c *QueueJobCreate) createSpec() (*QueueJob, *sqlgraph.CreateSpec) {
	var (
		_node = &QueueJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(queuejob.Table, sqlgraph.NewFieldSpec(queuejob.FieldID, field.TypeInt64))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SourceURL(); ok {
		_spec.SetField(queuejob.FieldSourceURL, field.TypeString, value)
		_node.SourceURL = value
	}
	if value, ok := _c.mutation.MeetingID(); ok {
		_spec.SetField(queuejob.FieldMeetingID, field.TypeString, value)
		_node.MeetingID = value
	}
	if value, ok := _c.mutation.Banana(); ok {
		_spec.SetField(queuejob.FieldBanana, field.TypeString, value)
		_node.Banana = value
	}
	if value, ok := _c.mutation.JobType(); ok {
		_spec.SetField(queuejob.FieldJobType, field.TypeString, value)
		_node.JobType = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(queuejob.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(queuejob.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(queuejob.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(queuejob.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.NotBefore(); ok {
		_spec.SetField(queuejob.FieldNotBefore, field.TypeTime, value)
		_node.NotBefore = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(queuejob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(queuejob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(queuejob.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.FailedAt(); ok {
		_spec.SetField(queuejob.FieldFailedAt, field.TypeTime, value)
		_node.FailedAt = &value
	}
	if value, ok := _c.mutation.WorkerID(); ok {
		_spec.SetField(queuejob.FieldWorkerID, field.TypeString, value)
		_node.WorkerID = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(queuejob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.ProcessingMetadata(); ok {
		_spec.SetField(queuejob.FieldProcessingMetadata, field.TypeJSON, value)
		_node.ProcessingMetadata = value
	}
	return _node, _spec
}

// QueueJobCreateBulk is the builder for creating many QueueJob entities in bulk.
type QueueJobCreateBulk struct {
	config
	err      error
	builders []*QueueJobCreate
}

// Save creates the QueueJob entities in the database.
func (_c *QueueJobCreateBulk) Save(ctx context.Context) ([]*QueueJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QueueJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QueueJobMutation)
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
func (_c *QueueJobCreateBulk) SaveX(ctx context.Context) []*QueueJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueueJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueueJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
