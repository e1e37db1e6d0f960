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
	"github.com/Engagic/engagic-sub004/ent/queuejob"
)

// QueueJobUpdate is the builder for updating QueueJob entities.
type QueueJobUpdate struct {
	config
	hooks    []Hook
	mutation *QueueJobMutation
}

// Where appends a list predicates to the QueueJobUpdate builder.
func (_u *QueueJobUpdate) Where(ps ...predicate.QueueJob) *QueueJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSourceURL sets the "source_url" field.
func (_u *QueueJobUpdate) SetSourceURL(v string) *QueueJobUpdate {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *QueueJobUpdate) SetNillableSourceURL(v *string) *QueueJobUpdate {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// SetMeetingID sets the "meeting_id" field.
func (_u *QueueJobUpdate) SetMeetingID(v string) *QueueJobUpdate {
	_u.mutation.SetMeetingID(v)
	return _u
}

// SetNillableMeetingID sets the "meeting_id" field if the given value is not nil.
func (_u *QueueJobUpdate) SetNillableMeetingID(v *string) *QueueJobUpdate {
	if v != nil {
		_u.SetMeetingID(*v)
	}
	return _u
}

// ClearMeetingID clears the value of the "meeting_id" field.
func (_u *QueueJobUpdate) ClearMeetingID() *QueueJobUpdate {
	_u.mutation.ClearMeetingID()
	return _u
}

// SetBanana sets the "banana" field.
func (_u *QueueJobUpdate) SetBanana(v string) *QueueJobUpdate {
	_u.mutation.SetBanana(v)
	return _u
}

// SetNillableBanana sets the "banana" field if the given value is not nil.
func (_u *QueueJobUpdate) SetNillableBanana(v *string) *QueueJobUpdate {
	if v != nil {
		_u.SetBanana(*v)
	}
	return _u
}

// ClearBanana clears the value of the "banana" field.
func (_u *QueueJobUpdate) ClearBanana() *QueueJobUpdate {
	_u.mutation.ClearBanana()
	return _u
}

// SetJobType sets the "job_type" field.
func (_u *QueueJobUpdate) SetJobType(v string) *QueueJobUpdate {
	_u.mutation.SetJobType(v)
	return _u
}

// SetNillableJobType sets the "job_type" field if the given value is not nil.
func (_u *QueueJobUpdate) SetNillableJobType(v *string) *QueueJobUpdate {
	if v != nil {
		_u.SetJobType(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *QueueJobUpdate) SetPayload(v map[string]interface{}) *QueueJobUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *QueueJobUpdate) ClearPayload() *QueueJobUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetStatus sets the "status" field.
func (_u *QueueJobUpdate) SetStatus(v queuejob.Status) *QueueJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QueueJobUpdate) SetNillableStatus(v *queuejob.Status) *QueueJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *QueueJobUpdate) SetPriority(v int) *QueueJobUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *QueueJobUpdate) SetNillablePriority(v *int) *QueueJobUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *QueueJobUpdate) AddPriority(v int) *QueueJobUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *QueueJobUpdate) SetRetryCount(v int) *QueueJobUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *QueueJobUpdate) SetNillableRetryCount(v *int) *QueueJobUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *QueueJobUpdate) AddRetryCount(v int) *QueueJobUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetNotBefore sets the "not_before" field.
func (_u *QueueJobUpdate) SetNotBefore(v time.Time) *QueueJobUpdate {
	_u.mutation.SetNotBefore(v)
	return _u
}

// SetNillableNotBefore sets the "not_before" field if the given value is not nil.
func (_u *QueueJobUpdate) SetNillableNotBefore(v *time.Time) *QueueJobUpdate {
	if v != nil {
		_u.SetNotBefore(*v)
	}
	return _u
}

// ClearNotBefore clears the value of the "not_before" field.
func (_u *QueueJobUpdate) ClearNotBefore() *QueueJobUpdate {
	_u.mutation.ClearNotBefore()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *QueueJobUpdate) SetStartedAt(v time.Time) *QueueJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *QueueJobUpdate) SetNillableStartedAt(v *time.Time) *QueueJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *QueueJobUpdate) ClearStartedAt() *QueueJobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *QueueJobUpdate) SetCompletedAt(v time.Time) *QueueJobUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *QueueJobUpdate) SetNillableCompletedAt(v *time.Time) *QueueJobUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *QueueJobUpdate) ClearCompletedAt() *QueueJobUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetFailedAt sets the "failed_at" field.
func (_u *QueueJobUpdate) SetFailedAt(v time.Time) *QueueJobUpdate {
	_u.mutation.SetFailedAt(v)
	return _u
}

// SetNillableFailedAt sets the "failed_at" field if the given value is not nil.
func (_u *QueueJobUpdate) SetNillableFailedAt(v *time.Time) *QueueJobUpdate {
	if v != nil {
		_u.SetFailedAt(*v)
	}
	return _u
}

// ClearFailedAt clears the value of the "failed_at" field.
func (_u *QueueJobUpdate) ClearFailedAt() *QueueJobUpdate {
	_u.mutation.ClearFailedAt()
	return _u
}

// SetWorkerID sets the "worker_id" field.
func (_u *QueueJobUpdate) SetWorkerID(v string) *QueueJobUpdate {
	_u.mutation.SetWorkerID(v)
	return _u
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_u *QueueJobUpdate) SetNillableWorkerID(v *string) *QueueJobUpdate {
	if v != nil {
		_u.SetWorkerID(*v)
	}
	return _u
}

// ClearWorkerID clears the value of the "worker_id" field.
func (_u *QueueJobUpdate) ClearWorkerID() *QueueJobUpdate {
	_u.mutation.ClearWorkerID()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *QueueJobUpdate) SetErrorMessage(v string) *QueueJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *QueueJobUpdate) SetNillableErrorMessage(v *string) *QueueJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *QueueJobUpdate) ClearErrorMessage() *QueueJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetProcessingMetadata sets the "processing_metadata" field.
func (_u *QueueJobUpdate) SetProcessingMetadata(v map[string]interface{}) *QueueJobUpdate {
	_u.mutation.SetProcessingMetadata(v)
	return _u
}

// ClearProcessingMetadata clears the value of the "processing_metadata" field.
func (_u *QueueJobUpdate) ClearProcessingMetadata() *QueueJobUpdate {
	_u.mutation.ClearProcessingMetadata()
	return _u
}

// Mutation returns the QueueJobMutation object of the builder.
func (_u *QueueJobUpdate) Mutation() *QueueJobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QueueJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueueJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QueueJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueueJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QueueJobUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := queuejob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QueueJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *QueueJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(queuejob.Table, queuejob.Columns, sqlgraph.NewFieldSpec(queuejob.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(queuejob.FieldSourceURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.MeetingID(); ok {
		_spec.SetField(queuejob.FieldMeetingID, field.TypeString, value)
	}
	if _u.mutation.MeetingIDCleared() {
		_spec.ClearField(queuejob.FieldMeetingID, field.TypeString)
	}
	if value, ok := _u.mutation.Banana(); ok {
		_spec.SetField(queuejob.FieldBanana, field.TypeString, value)
	}
	if _u.mutation.BananaCleared() {
		_spec.ClearField(queuejob.FieldBanana, field.TypeString)
	}
	if value, ok := _u.mutation.JobType(); ok {
		_spec.SetField(queuejob.FieldJobType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(queuejob.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(queuejob.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(queuejob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(queuejob.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(queuejob.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(queuejob.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(queuejob.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NotBefore(); ok {
		_spec.SetField(queuejob.FieldNotBefore, field.TypeTime, value)
	}
	if _u.mutation.NotBeforeCleared() {
		_spec.ClearField(queuejob.FieldNotBefore, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(queuejob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(queuejob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(queuejob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(queuejob.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FailedAt(); ok {
		_spec.SetField(queuejob.FieldFailedAt, field.TypeTime, value)
	}
	if _u.mutation.FailedAtCleared() {
		_spec.ClearField(queuejob.FieldFailedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.WorkerID(); ok {
		_spec.SetField(queuejob.FieldWorkerID, field.TypeString, value)
	}
	if _u.mutation.WorkerIDCleared() {
		_spec.ClearField(queuejob.FieldWorkerID, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(queuejob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(queuejob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessingMetadata(); ok {
		_spec.SetField(queuejob.FieldProcessingMetadata, field.TypeJSON, value)
	}
	if _u.mutation.ProcessingMetadataCleared() {
		_spec.ClearField(queuejob.FieldProcessingMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queuejob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QueueJobUpdateOne is the builder for updating a single QueueJob entity.
type QueueJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QueueJobMutation
}

// SetSourceURL sets the "source_url" field.
func (_u *QueueJobUpdateOne) SetSourceURL(v string) *QueueJobUpdateOne {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *QueueJobUpdateOne) SetNillableSourceURL(v *string) *QueueJobUpdateOne {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// SetMeetingID sets the "meeting_id" field.
func (_u *QueueJobUpdateOne) SetMeetingID(v string) *QueueJobUpdateOne {
	_u.mutation.SetMeetingID(v)
	return _u
}

// SetNillableMeetingID sets the "meeting_id" field if the given value is not nil.
func (_u *QueueJobUpdateOne) SetNillableMeetingID(v *string) *QueueJobUpdateOne {
	if v != nil {
		_u.SetMeetingID(*v)
	}
	return _u
}

// ClearMeetingID clears the value of the "meeting_id" field.
func (_u *QueueJobUpdateOne) ClearMeetingID() *QueueJobUpdateOne {
	_u.mutation.ClearMeetingID()
	return _u
}

// SetBanana sets the "banana" field.
func (_u *QueueJobUpdateOne) SetBanana(v string) *QueueJobUpdateOne {
	_u.mutation.SetBanana(v)
	return _u
}

// SetNillableBanana sets the "banana" field if the given value is not nil.
func (_u *QueueJobUpdateOne) SetNillableBanana(v *string) *QueueJobUpdateOne {
	if v != nil {
		_u.SetBanana(*v)
	}
	return _u
}

// ClearBanana clears the value of the "banana" field.
func (_u *QueueJobUpdateOne) ClearBanana() *QueueJobUpdateOne {
	_u.mutation.ClearBanana()
	return _u
}

// SetJobType sets the "job_type" field.
func (_u *QueueJobUpdateOne) SetJobType(v string) *QueueJobUpdateOne {
	_u.mutation.SetJobType(v)
	return _u
}

// SetNillableJobType sets the "job_type" field if the given value is not nil.
func (_u *QueueJobUpdateOne) SetNillableJobType(v *string) *QueueJobUpdateOne {
	if v != nil {
		_u.SetJobType(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *QueueJobUpdateOne) SetPayload(v map[string]interface{}) *QueueJobUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *QueueJobUpdateOne) ClearPayload() *QueueJobUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetStatus sets the "status" field.
func (_u *QueueJobUpdateOne) SetStatus(v queuejob.Status) *QueueJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QueueJobUpdateOne) SetNillableStatus(v *queuejob.Status) *QueueJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *QueueJobUpdateOne) SetPriority(v int) *QueueJobUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *QueueJobUpdateOne) SetNillablePriority(v *int) *QueueJobUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *QueueJobUpdateOne) AddPriority(v int) *QueueJobUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *QueueJobUpdateOne) SetRetryCount(v int) *QueueJobUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *QueueJobUpdateOne) SetNillableRetryCount(v *int) *QueueJobUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *QueueJobUpdateOne) AddRetryCount(v int) *QueueJobUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetNotBefore sets the "not_before" field.
func (_u *QueueJobUpdateOne) SetNotBefore(v time.Time) *QueueJobUpdateOne {
	_u.mutation.SetNotBefore(v)
	return _u
}

// SetNillableNotBefore sets the "not_before" field if the given value is not nil.
func (_u *QueueJobUpdateOne) SetNillableNotBefore(v *time.Time) *QueueJobUpdateOne {
	if v != nil {
		_u.SetNotBefore(*v)
	}
	return _u
}

// ClearNotBefore clears the value of the "not_before" field.
func (_u *QueueJobUpdateOne) ClearNotBefore() *QueueJobUpdateOne {
	_u.mutation.ClearNotBefore()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *QueueJobUpdateOne) SetStartedAt(v time.Time) *QueueJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *QueueJobUpdateOne) SetNillableStartedAt(v *time.Time) *QueueJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *QueueJobUpdateOne) ClearStartedAt() *QueueJobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *QueueJobUpdateOne) SetCompletedAt(v time.Time) *QueueJobUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *QueueJobUpdateOne) SetNillableCompletedAt(v *time.Time) *QueueJobUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *QueueJobUpdateOne) ClearCompletedAt() *QueueJobUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetFailedAt sets the "failed_at" field.
func (_u *QueueJobUpdateOne) SetFailedAt(v time.Time) *QueueJobUpdateOne {
	_u.mutation.SetFailedAt(v)
	return _u
}

// SetNillableFailedAt sets the "failed_at" field if the given value is not nil.
func (_u *QueueJobUpdateOne) SetNillableFailedAt(v *time.Time) *QueueJobUpdateOne {
	if v != nil {
		_u.SetFailedAt(*v)
	}
	return _u
}

// ClearFailedAt clears the value of the "failed_at" field.
func (_u *QueueJobUpdateOne) ClearFailedAt() *QueueJobUpdateOne {
	_u.mutation.ClearFailedAt()
	return _u
}

// SetWorkerID sets the "worker_id" field.
func (_u *QueueJobUpdateOne) SetWorkerID(v string) *QueueJobUpdateOne {
	_u.mutation.SetWorkerID(v)
	return _u
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_u *QueueJobUpdateOne) SetNillableWorkerID(v *string) *QueueJobUpdateOne {
	if v != nil {
		_u.SetWorkerID(*v)
	}
	return _u
}

// ClearWorkerID clears the value of the "worker_id" field.
func (_u *QueueJobUpdateOne) ClearWorkerID() *QueueJobUpdateOne {
	_u.mutation.ClearWorkerID()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *QueueJobUpdateOne) SetErrorMessage(v string) *QueueJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *QueueJobUpdateOne) SetNillableErrorMessage(v *string) *QueueJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *QueueJobUpdateOne) ClearErrorMessage() *QueueJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetProcessingMetadata sets the "processing_metadata" field.
func (_u *QueueJobUpdateOne) SetProcessingMetadata(v map[string]interface{}) *QueueJobUpdateOne {
	_u.mutation.SetProcessingMetadata(v)
	return _u
}

// ClearProcessingMetadata clears the value of the "processing_metadata" field.
func (_u *QueueJobUpdateOne) ClearProcessingMetadata() *QueueJobUpdateOne {
	_u.mutation.ClearProcessingMetadata()
	return _u
}

// Mutation returns the QueueJobMutation object of the builder.
func (_u *QueueJobUpdateOne) Mutation() *QueueJobMutation {
	return _u.mutation
}

// Where appends a list predicates to the QueueJobUpdate builder.
func (_u *QueueJobUpdateOne) Where(ps ...predicate.QueueJob) *QueueJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QueueJobUpdateOne) Select(field string, fields ...string) *QueueJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QueueJob entity.
func (_u *QueueJobUpdateOne) Save(ctx context.Context) (*QueueJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueueJobUpdateOne) SaveX(ctx context.Context) *QueueJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QueueJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueueJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QueueJobUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := queuejob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QueueJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *QueueJobUpdateOne) sqlSave(ctx context.Context) (_node *QueueJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(queuejob.Table, queuejob.Columns, sqlgraph.NewFieldSpec(queuejob.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QueueJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, queuejob.FieldID)
		for _, f := range fields {
			if !queuejob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != queuejob.FieldID {
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
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(queuejob.FieldSourceURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.MeetingID(); ok {
		_spec.SetField(queuejob.FieldMeetingID, field.TypeString, value)
	}
	if _u.mutation.MeetingIDCleared() {
		_spec.ClearField(queuejob.FieldMeetingID, field.TypeString)
	}
	if value, ok := _u.mutation.Banana(); ok {
		_spec.SetField(queuejob.FieldBanana, field.TypeString, value)
	}
	if _u.mutation.BananaCleared() {
		_spec.ClearField(queuejob.FieldBanana, field.TypeString)
	}
	if value, ok := _u.mutation.JobType(); ok {
		_spec.SetField(queuejob.FieldJobType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(queuejob.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(queuejob.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(queuejob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(queuejob.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(queuejob.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(queuejob.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(queuejob.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NotBefore(); ok {
		_spec.SetField(queuejob.FieldNotBefore, field.TypeTime, value)
	}
	if _u.mutation.NotBeforeCleared() {
		_spec.ClearField(queuejob.FieldNotBefore, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(queuejob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(queuejob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(queuejob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(queuejob.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FailedAt(); ok {
		_spec.SetField(queuejob.FieldFailedAt, field.TypeTime, value)
	}
	if _u.mutation.FailedAtCleared() {
		_spec.ClearField(queuejob.FieldFailedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.WorkerID(); ok {
		_spec.SetField(queuejob.FieldWorkerID, field.TypeString, value)
	}
	if _u.mutation.WorkerIDCleared() {
		_spec.ClearField(queuejob.FieldWorkerID, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(queuejob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(queuejob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessingMetadata(); ok {
		_spec.SetField(queuejob.FieldProcessingMetadata, field.TypeJSON, value)
	}
	if _u.mutation.ProcessingMetadataCleared() {
		_spec.ClearField(queuejob.FieldProcessingMetadata, field.TypeJSON)
	}
	_node = &QueueJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queuejob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
