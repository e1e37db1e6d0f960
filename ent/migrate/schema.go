// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgendaItemsColumns holds the columns for the "agenda_items" table.
	AgendaItemsColumns = []*schema.Column{
		{Name: "item_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt},
		{Name: "attachments", Type: field.TypeJSON, Nullable: true},
		{Name: "attachment_hash", Type: field.TypeString, Nullable: true},
		{Name: "matter_id", Type: field.TypeString, Nullable: true},
		{Name: "matter_file", Type: field.TypeString, Nullable: true},
		{Name: "matter_type", Type: field.TypeString, Nullable: true},
		{Name: "agenda_number", Type: field.TypeString, Nullable: true},
		{Name: "sponsors", Type: field.TypeJSON, Nullable: true},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "topics", Type: field.TypeJSON, Nullable: true},
		{Name: "processing_method", Type: field.TypeString, Nullable: true},
		{Name: "summarized_at", Type: field.TypeTime, Nullable: true},
		{Name: "extraction_error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "meeting_id", Type: field.TypeString},
	}
	// AgendaItemsTable holds the schema information for the "agenda_items" table.
	AgendaItemsTable = &schema.Table{
		Name:       "agenda_items",
		Columns:    AgendaItemsColumns,
		PrimaryKey: []*schema.Column{AgendaItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agenda_items_meetings_items",
				Columns:    []*schema.Column{AgendaItemsColumns[17]},
				RefColumns: []*schema.Column{MeetingsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agendaitem_meeting_id_sequence",
				Unique:  false,
				Columns: []*schema.Column{AgendaItemsColumns[17], AgendaItemsColumns[2]},
			},
			{
				Name:    "agendaitem_matter_id",
				Unique:  false,
				Columns: []*schema.Column{AgendaItemsColumns[5]},
			},
		},
	}
	// CitiesColumns holds the columns for the "cities" table.
	CitiesColumns = []*schema.Column{
		{Name: "banana", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "state", Type: field.TypeString, Size: 2},
		{Name: "vendor", Type: field.TypeString},
		{Name: "vendor_slug", Type: field.TypeString},
		{Name: "timezone", Type: field.TypeString, Default: "America/Los_Angeles"},
		{Name: "county", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "paused", "retired"}, Default: "active"},
		{Name: "population", Type: field.TypeInt, Nullable: true},
		{Name: "geometry", Type: field.TypeJSON, Nullable: true},
		{Name: "sync_error_count", Type: field.TypeInt, Default: 0},
		{Name: "last_synced_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CitiesTable holds the schema information for the "cities" table.
	CitiesTable = &schema.Table{
		Name:       "cities",
		Columns:    CitiesColumns,
		PrimaryKey: []*schema.Column{CitiesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "city_vendor_status",
				Unique:  false,
				Columns: []*schema.Column{CitiesColumns[3], CitiesColumns[7]},
			},
		},
	}
	// CommitteesColumns holds the columns for the "committees" table.
	CommitteesColumns = []*schema.Column{
		{Name: "committee_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "normalized_name", Type: field.TypeString},
		{Name: "vendor_body_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "banana", Type: field.TypeString},
	}
	// CommitteesTable holds the schema information for the "committees" table.
	CommitteesTable = &schema.Table{
		Name:       "committees",
		Columns:    CommitteesColumns,
		PrimaryKey: []*schema.Column{CommitteesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "committees_cities_committees",
				Columns:    []*schema.Column{CommitteesColumns[5]},
				RefColumns: []*schema.Column{CitiesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "committee_banana_normalized_name",
				Unique:  true,
				Columns: []*schema.Column{CommitteesColumns[5], CommitteesColumns[2]},
			},
		},
	}
	// CommitteeMembershipsColumns holds the columns for the "committee_memberships" table.
	CommitteeMembershipsColumns = []*schema.Column{
		{Name: "membership_id", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeString, Nullable: true},
		{Name: "joined_at", Type: field.TypeTime},
		{Name: "left_at", Type: field.TypeTime, Nullable: true},
		{Name: "committee_id", Type: field.TypeString},
		{Name: "member_id", Type: field.TypeString},
	}
	// CommitteeMembershipsTable holds the schema information for the "committee_memberships" table.
	CommitteeMembershipsTable = &schema.Table{
		Name:       "committee_memberships",
		Columns:    CommitteeMembershipsColumns,
		PrimaryKey: []*schema.Column{CommitteeMembershipsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "committee_memberships_committees_memberships",
				Columns:    []*schema.Column{CommitteeMembershipsColumns[4]},
				RefColumns: []*schema.Column{CommitteesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "committee_memberships_council_members_memberships",
				Columns:    []*schema.Column{CommitteeMembershipsColumns[5]},
				RefColumns: []*schema.Column{CouncilMembersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "committeemembership_committee_id_member_id",
				Unique:  true,
				Columns: []*schema.Column{CommitteeMembershipsColumns[4], CommitteeMembershipsColumns[5]},
			},
		},
	}
	// CouncilMembersColumns holds the columns for the "council_members" table.
	CouncilMembersColumns = []*schema.Column{
		{Name: "member_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "normalized_name", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "district", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "inactive"}, Default: "active"},
		{Name: "first_seen", Type: field.TypeTime},
		{Name: "last_seen", Type: field.TypeTime},
		{Name: "sponsorship_count", Type: field.TypeInt, Default: 0},
		{Name: "vote_count", Type: field.TypeInt, Default: 0},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "banana", Type: field.TypeString},
	}
	// CouncilMembersTable holds the schema information for the "council_members" table.
	CouncilMembersTable = &schema.Table{
		Name:       "council_members",
		Columns:    CouncilMembersColumns,
		PrimaryKey: []*schema.Column{CouncilMembersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "council_members_cities_council_members",
				Columns:    []*schema.Column{CouncilMembersColumns[11]},
				RefColumns: []*schema.Column{CitiesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "councilmember_banana_normalized_name",
				Unique:  true,
				Columns: []*schema.Column{CouncilMembersColumns[11], CouncilMembersColumns[2]},
			},
		},
	}
	// MattersColumns holds the columns for the "matters" table.
	MattersColumns = []*schema.Column{
		{Name: "matter_id", Type: field.TypeString, Unique: true},
		{Name: "matter_file", Type: field.TypeString, Nullable: true},
		{Name: "matter_type", Type: field.TypeString, Nullable: true},
		{Name: "title", Type: field.TypeString},
		{Name: "sponsors", Type: field.TypeJSON, Nullable: true},
		{Name: "canonical_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "canonical_topics", Type: field.TypeJSON, Nullable: true},
		{Name: "attachments", Type: field.TypeJSON, Nullable: true},
		{Name: "attachment_hash", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "first_seen", Type: field.TypeTime},
		{Name: "last_seen", Type: field.TypeTime},
		{Name: "appearance_count", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "passed", "failed", "tabled", "withdrawn", "referred", "amended", "vetoed", "enacted"}, Default: "active"},
		{Name: "final_vote_date", Type: field.TypeTime, Nullable: true},
		{Name: "quality_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "banana", Type: field.TypeString},
	}
	// MattersTable holds the schema information for the "matters" table.
	MattersTable = &schema.Table{
		Name:       "matters",
		Columns:    MattersColumns,
		PrimaryKey: []*schema.Column{MattersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "matters_cities_matters",
				Columns:    []*schema.Column{MattersColumns[16]},
				RefColumns: []*schema.Column{CitiesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "matter_banana_matter_file",
				Unique:  false,
				Columns: []*schema.Column{MattersColumns[16], MattersColumns[1]},
			},
			{
				Name:    "matter_banana_last_seen",
				Unique:  false,
				Columns: []*schema.Column{MattersColumns[16], MattersColumns[11]},
			},
		},
	}
	// MatterAppearancesColumns holds the columns for the "matter_appearances" table.
	MatterAppearancesColumns = []*schema.Column{
		{Name: "appearance_id", Type: field.TypeString, Unique: true},
		{Name: "appeared_at", Type: field.TypeTime},
		{Name: "committee_id", Type: field.TypeString, Nullable: true},
		{Name: "action", Type: field.TypeString, Nullable: true},
		{Name: "vote_outcome", Type: field.TypeEnum, Nullable: true, Enums: []string{"passed", "failed", "tabled", "withdrawn", "referred", "amended", "no_vote", "unknown"}},
		{Name: "vote_tally", Type: field.TypeJSON, Nullable: true},
		{Name: "sequence", Type: field.TypeInt, Nullable: true},
		{Name: "item_id", Type: field.TypeString},
		{Name: "matter_id", Type: field.TypeString},
		{Name: "meeting_id", Type: field.TypeString},
	}
	// MatterAppearancesTable holds the schema information for the "matter_appearances" table.
	MatterAppearancesTable = &schema.Table{
		Name:       "matter_appearances",
		Columns:    MatterAppearancesColumns,
		PrimaryKey: []*schema.Column{MatterAppearancesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "matter_appearances_agenda_items_appearances",
				Columns:    []*schema.Column{MatterAppearancesColumns[7]},
				RefColumns: []*schema.Column{AgendaItemsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "matter_appearances_matters_appearances",
				Columns:    []*schema.Column{MatterAppearancesColumns[8]},
				RefColumns: []*schema.Column{MattersColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "matter_appearances_meetings_appearances",
				Columns:    []*schema.Column{MatterAppearancesColumns[9]},
				RefColumns: []*schema.Column{MeetingsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "matterappearance_matter_id_meeting_id_item_id",
				Unique:  true,
				Columns: []*schema.Column{MatterAppearancesColumns[8], MatterAppearancesColumns[9], MatterAppearancesColumns[7]},
			},
			{
				Name:    "matterappearance_meeting_id",
				Unique:  false,
				Columns: []*schema.Column{MatterAppearancesColumns[9]},
			},
		},
	}
	// MeetingsColumns holds the columns for the "meetings" table.
	MeetingsColumns = []*schema.Column{
		{Name: "meeting_id", Type: field.TypeString, Unique: true},
		{Name: "vendor_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "date", Type: field.TypeTime, Nullable: true},
		{Name: "agenda_url", Type: field.TypeString, Nullable: true},
		{Name: "packet_url", Type: field.TypeString, Nullable: true},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "participation", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Nullable: true, Enums: []string{"cancelled", "postponed", "deferred", "revised", "rescheduled"}},
		{Name: "processing_status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "completed", "failed"}, Default: "pending"},
		{Name: "processing_method", Type: field.TypeString, Nullable: true},
		{Name: "processing_time_ms", Type: field.TypeInt, Nullable: true},
		{Name: "topics", Type: field.TypeJSON, Nullable: true},
		{Name: "attachment_fingerprint", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "banana", Type: field.TypeString},
		{Name: "committee_id", Type: field.TypeString, Nullable: true},
	}
	// MeetingsTable holds the schema information for the "meetings" table.
	MeetingsTable = &schema.Table{
		Name:       "meetings",
		Columns:    MeetingsColumns,
		PrimaryKey: []*schema.Column{MeetingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "meetings_cities_meetings",
				Columns:    []*schema.Column{MeetingsColumns[17]},
				RefColumns: []*schema.Column{CitiesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "meetings_committees_meetings",
				Columns:    []*schema.Column{MeetingsColumns[18]},
				RefColumns: []*schema.Column{CommitteesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "meeting_banana_date",
				Unique:  false,
				Columns: []*schema.Column{MeetingsColumns[17], MeetingsColumns[3]},
			},
			{
				Name:    "meeting_processing_status",
				Unique:  false,
				Columns: []*schema.Column{MeetingsColumns[9]},
			},
		},
	}
	// ProcessingCachesColumns holds the columns for the "processing_caches" table.
	ProcessingCachesColumns = []*schema.Column{
		{Name: "cache_id", Type: field.TypeInt64, Increment: true},
		{Name: "packet_url", Type: field.TypeString, Unique: true},
		{Name: "content_hash", Type: field.TypeString, Nullable: true},
		{Name: "method", Type: field.TypeString},
		{Name: "elapsed_ms", Type: field.TypeInt, Default: 0},
		{Name: "hit_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_accessed_at", Type: field.TypeTime},
	}
	// ProcessingCachesTable holds the schema information for the "processing_caches" table.
	ProcessingCachesTable = &schema.Table{
		Name:       "processing_caches",
		Columns:    ProcessingCachesColumns,
		PrimaryKey: []*schema.Column{ProcessingCachesColumns[0]},
	}
	// QueueJobsColumns holds the columns for the "queue_jobs" table.
	QueueJobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeInt64, Increment: true},
		{Name: "source_url", Type: field.TypeString, Unique: true},
		{Name: "meeting_id", Type: field.TypeString, Nullable: true},
		{Name: "banana", Type: field.TypeString, Nullable: true},
		{Name: "job_type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "completed", "failed", "dead_letter"}, Default: "pending"},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "not_before", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "failed_at", Type: field.TypeTime, Nullable: true},
		{Name: "worker_id", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "processing_metadata", Type: field.TypeJSON, Nullable: true},
	}
	// QueueJobsTable holds the schema information for the "queue_jobs" table.
	QueueJobsTable = &schema.Table{
		Name:       "queue_jobs",
		Columns:    QueueJobsColumns,
		PrimaryKey: []*schema.Column{QueueJobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "queuejob_status_priority_created_at",
				Unique:  false,
				Columns: []*schema.Column{QueueJobsColumns[6], QueueJobsColumns[7], QueueJobsColumns[10]},
			},
			{
				Name:    "queuejob_meeting_id",
				Unique:  false,
				Columns: []*schema.Column{QueueJobsColumns[2]},
			},
		},
	}
	// VotesColumns holds the columns for the "votes" table.
	VotesColumns = []*schema.Column{
		{Name: "vote_id", Type: field.TypeString, Unique: true},
		{Name: "meeting_id", Type: field.TypeString},
		{Name: "value", Type: field.TypeEnum, Enums: []string{"yes", "no", "abstain", "absent", "present", "recused", "not_voting"}},
		{Name: "vote_date", Type: field.TypeTime, Nullable: true},
		{Name: "sequence", Type: field.TypeInt, Nullable: true},
		{Name: "member_id", Type: field.TypeString},
		{Name: "matter_id", Type: field.TypeString},
	}
	// VotesTable holds the schema information for the "votes" table.
	VotesTable = &schema.Table{
		Name:       "votes",
		Columns:    VotesColumns,
		PrimaryKey: []*schema.Column{VotesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "votes_council_members_votes",
				Columns:    []*schema.Column{VotesColumns[5]},
				RefColumns: []*schema.Column{CouncilMembersColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "votes_matters_votes",
				Columns:    []*schema.Column{VotesColumns[6]},
				RefColumns: []*schema.Column{MattersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "vote_member_id_matter_id_meeting_id",
				Unique:  true,
				Columns: []*schema.Column{VotesColumns[5], VotesColumns[6], VotesColumns[1]},
			},
			{
				Name:    "vote_matter_id",
				Unique:  false,
				Columns: []*schema.Column{VotesColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgendaItemsTable,
		CitiesTable,
		CommitteesTable,
		CommitteeMembershipsTable,
		CouncilMembersTable,
		MattersTable,
		MatterAppearancesTable,
		MeetingsTable,
		ProcessingCachesTable,
		QueueJobsTable,
		VotesTable,
	}
)

func init() {
	AgendaItemsTable.ForeignKeys[0].RefTable = MeetingsTable
	CommitteesTable.ForeignKeys[0].RefTable = CitiesTable
	CommitteeMembershipsTable.ForeignKeys[0].RefTable = CommitteesTable
	CommitteeMembershipsTable.ForeignKeys[1].RefTable = CouncilMembersTable
	CouncilMembersTable.ForeignKeys[0].RefTable = CitiesTable
	MattersTable.ForeignKeys[0].RefTable = CitiesTable
	MatterAppearancesTable.ForeignKeys[0].RefTable = AgendaItemsTable
	MatterAppearancesTable.ForeignKeys[1].RefTable = MattersTable
	MatterAppearancesTable.ForeignKeys[2].RefTable = MeetingsTable
	MeetingsTable.ForeignKeys[0].RefTable = CitiesTable
	MeetingsTable.ForeignKeys[1].RefTable = CommitteesTable
	VotesTable.ForeignKeys[0].RefTable = CouncilMembersTable
	VotesTable.ForeignKeys[1].RefTable = MattersTable
}
