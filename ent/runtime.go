// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/Engagic/engagic-sub004/ent/agendaitem"
	"github.com/Engagic/engagic-sub004/ent/city"
	"github.com/Engagic/engagic-sub004/ent/committee"
	"github.com/Engagic/engagic-sub004/ent/committeemembership"
	"github.com/Engagic/engagic-sub004/ent/councilmember"
	"github.com/Engagic/engagic-sub004/ent/matter"
	"github.com/Engagic/engagic-sub004/ent/matterappearance"
	"github.com/Engagic/engagic-sub004/ent/meeting"
	"github.com/Engagic/engagic-sub004/ent/processingcache"
	"github.com/Engagic/engagic-sub004/ent/queuejob"
	"github.com/Engagic/engagic-sub004/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agendaitemFields := schema.AgendaItem{}.Fields()
	_ = agendaitemFields
	// agendaitemDescCreatedAt is the schema descriptor for created_at field.
	agendaitemDescCreatedAt := agendaitemFields[16].Descriptor()
	// agendaitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	agendaitem.DefaultCreatedAt = agendaitemDescCreatedAt.Default.(func() time.Time)
	// agendaitemDescUpdatedAt is the schema descriptor for updated_at field.
	agendaitemDescUpdatedAt := agendaitemFields[17].Descriptor()
	// agendaitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agendaitem.DefaultUpdatedAt = agendaitemDescUpdatedAt.Default.(func() time.Time)
	// agendaitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agendaitem.UpdateDefaultUpdatedAt = agendaitemDescUpdatedAt.UpdateDefault.(func() time.Time)
	cityFields := schema.City{}.Fields()
	_ = cityFields
	// cityDescState is the schema descriptor for state field.
	cityDescState := cityFields[2].Descriptor()
	// city.StateValidator is a validator for the "state" field. It is called by the builders before save.
	city.StateValidator = cityDescState.Validators[0].(func(string) error)
	// cityDescTimezone is the schema descriptor for timezone field.
	cityDescTimezone := cityFields[5].Descriptor()
	// city.DefaultTimezone holds the default value on creation for the timezone field.
	city.DefaultTimezone = cityDescTimezone.Default.(string)
	// cityDescSyncErrorCount is the schema descriptor for sync_error_count field.
	cityDescSyncErrorCount := cityFields[10].Descriptor()
	// city.DefaultSyncErrorCount holds the default value on creation for the sync_error_count field.
	city.DefaultSyncErrorCount = cityDescSyncErrorCount.Default.(int)
	// cityDescCreatedAt is the schema descriptor for created_at field.
	cityDescCreatedAt := cityFields[12].Descriptor()
	// city.DefaultCreatedAt holds the default value on creation for the created_at field.
	city.DefaultCreatedAt = cityDescCreatedAt.Default.(func() time.Time)
	// cityDescUpdatedAt is the schema descriptor for updated_at field.
	cityDescUpdatedAt := cityFields[13].Descriptor()
	// city.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	city.DefaultUpdatedAt = cityDescUpdatedAt.Default.(func() time.Time)
	// city.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	city.UpdateDefaultUpdatedAt = cityDescUpdatedAt.UpdateDefault.(func() time.Time)
	committeeFields := schema.Committee{}.Fields()
	_ = committeeFields
	// committeeDescCreatedAt is the schema descriptor for created_at field.
	committeeDescCreatedAt := committeeFields[5].Descriptor()
	// committee.DefaultCreatedAt holds the default value on creation for the created_at field.
	committee.DefaultCreatedAt = committeeDescCreatedAt.Default.(func() time.Time)
	committeemembershipFields := schema.CommitteeMembership{}.Fields()
	_ = committeemembershipFields
	// committeemembershipDescJoinedAt is the schema descriptor for joined_at field.
	committeemembershipDescJoinedAt := committeemembershipFields[4].Descriptor()
	// committeemembership.DefaultJoinedAt holds the default value on creation for the joined_at field.
	committeemembership.DefaultJoinedAt = committeemembershipDescJoinedAt.Default.(func() time.Time)
	councilmemberFields := schema.CouncilMember{}.Fields()
	_ = councilmemberFields
	// councilmemberDescFirstSeen is the schema descriptor for first_seen field.
	councilmemberDescFirstSeen := councilmemberFields[7].Descriptor()
	// councilmember.DefaultFirstSeen holds the default value on creation for the first_seen field.
	councilmember.DefaultFirstSeen = councilmemberDescFirstSeen.Default.(func() time.Time)
	// councilmemberDescLastSeen is the schema descriptor for last_seen field.
	councilmemberDescLastSeen := councilmemberFields[8].Descriptor()
	// councilmember.DefaultLastSeen holds the default value on creation for the last_seen field.
	councilmember.DefaultLastSeen = councilmemberDescLastSeen.Default.(func() time.Time)
	// councilmemberDescSponsorshipCount is the schema descriptor for sponsorship_count field.
	councilmemberDescSponsorshipCount := councilmemberFields[9].Descriptor()
	// councilmember.DefaultSponsorshipCount holds the default value on creation for the sponsorship_count field.
	councilmember.DefaultSponsorshipCount = councilmemberDescSponsorshipCount.Default.(int)
	// councilmemberDescVoteCount is the schema descriptor for vote_count field.
	councilmemberDescVoteCount := councilmemberFields[10].Descriptor()
	// councilmember.DefaultVoteCount holds the default value on creation for the vote_count field.
	councilmember.DefaultVoteCount = councilmemberDescVoteCount.Default.(int)
	matterFields := schema.Matter{}.Fields()
	_ = matterFields
	// matterDescFirstSeen is the schema descriptor for first_seen field.
	matterDescFirstSeen := matterFields[11].Descriptor()
	// matter.DefaultFirstSeen holds the default value on creation for the first_seen field.
	matter.DefaultFirstSeen = matterDescFirstSeen.Default.(func() time.Time)
	// matterDescLastSeen is the schema descriptor for last_seen field.
	matterDescLastSeen := matterFields[12].Descriptor()
	// matter.DefaultLastSeen holds the default value on creation for the last_seen field.
	matter.DefaultLastSeen = matterDescLastSeen.Default.(func() time.Time)
	// matterDescAppearanceCount is the schema descriptor for appearance_count field.
	matterDescAppearanceCount := matterFields[13].Descriptor()
	// matter.DefaultAppearanceCount holds the default value on creation for the appearance_count field.
	matter.DefaultAppearanceCount = matterDescAppearanceCount.Default.(int)
	matterappearanceFields := schema.MatterAppearance{}.Fields()
	_ = matterappearanceFields
	// matterappearanceDescAppearedAt is the schema descriptor for appeared_at field.
	matterappearanceDescAppearedAt := matterappearanceFields[4].Descriptor()
	// matterappearance.DefaultAppearedAt holds the default value on creation for the appeared_at field.
	matterappearance.DefaultAppearedAt = matterappearanceDescAppearedAt.Default.(func() time.Time)
	meetingFields := schema.Meeting{}.Fields()
	_ = meetingFields
	// meetingDescCreatedAt is the schema descriptor for created_at field.
	meetingDescCreatedAt := meetingFields[17].Descriptor()
	// meeting.DefaultCreatedAt holds the default value on creation for the created_at field.
	meeting.DefaultCreatedAt = meetingDescCreatedAt.Default.(func() time.Time)
	// meetingDescUpdatedAt is the schema descriptor for updated_at field.
	meetingDescUpdatedAt := meetingFields[18].Descriptor()
	// meeting.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	meeting.DefaultUpdatedAt = meetingDescUpdatedAt.Default.(func() time.Time)
	// meeting.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	meeting.UpdateDefaultUpdatedAt = meetingDescUpdatedAt.UpdateDefault.(func() time.Time)
	processingcacheFields := schema.ProcessingCache{}.Fields()
	_ = processingcacheFields
	// processingcacheDescElapsedMs is the schema descriptor for elapsed_ms field.
	processingcacheDescElapsedMs := processingcacheFields[4].Descriptor()
	// processingcache.DefaultElapsedMs holds the default value on creation for the elapsed_ms field.
	processingcache.DefaultElapsedMs = processingcacheDescElapsedMs.Default.(int)
	// processingcacheDescHitCount is the schema descriptor for hit_count field.
	processingcacheDescHitCount := processingcacheFields[5].Descriptor()
	// processingcache.DefaultHitCount holds the default value on creation for the hit_count field.
	processingcache.DefaultHitCount = processingcacheDescHitCount.Default.(int)
	// processingcacheDescCreatedAt is the schema descriptor for created_at field.
	processingcacheDescCreatedAt := processingcacheFields[6].Descriptor()
	// processingcache.DefaultCreatedAt holds the default value on creation for the created_at field.
	processingcache.DefaultCreatedAt = processingcacheDescCreatedAt.Default.(func() time.Time)
	// processingcacheDescLastAccessedAt is the schema descriptor for last_accessed_at field.
	processingcacheDescLastAccessedAt := processingcacheFields[7].Descriptor()
	// processingcache.DefaultLastAccessedAt holds the default value on creation for the last_accessed_at field.
	processingcache.DefaultLastAccessedAt = processingcacheDescLastAccessedAt.Default.(func() time.Time)
	// processingcacheDescID is the schema descriptor for id field.
	processingcacheDescID := processingcacheFields[0].Descriptor()
	// processingcache.IDValidator is a validator for the "id" field. It is called by the builders before save.
	processingcache.IDValidator = processingcacheDescID.Validators[0].(func(int64) error)
	queuejobFields := schema.QueueJob{}.Fields()
	_ = queuejobFields
	// queuejobDescPriority is the schema descriptor for priority field.
	queuejobDescPriority := queuejobFields[7].Descriptor()
	// queuejob.DefaultPriority holds the default value on creation for the priority field.
	queuejob.DefaultPriority = queuejobDescPriority.Default.(int)
	// queuejobDescRetryCount is the schema descriptor for retry_count field.
	queuejobDescRetryCount := queuejobFields[8].Descriptor()
	// queuejob.DefaultRetryCount holds the default value on creation for the retry_count field.
	queuejob.DefaultRetryCount = queuejobDescRetryCount.Default.(int)
	// queuejobDescCreatedAt is the schema descriptor for created_at field.
	queuejobDescCreatedAt := queuejobFields[10].Descriptor()
	// queuejob.DefaultCreatedAt holds the default value on creation for the created_at field.
	queuejob.DefaultCreatedAt = queuejobDescCreatedAt.Default.(func() time.Time)
	// queuejobDescID is the schema descriptor for id field.
	queuejobDescID := queuejobFields[0].Descriptor()
	// queuejob.IDValidator is a validator for the "id" field. It is called by the builders before save.
	queuejob.IDValidator = queuejobDescID.Validators[0].(func(int64) error)
}
