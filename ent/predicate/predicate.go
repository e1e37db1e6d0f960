// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgendaItem is the predicate function for agendaitem builders.
type AgendaItem func(*sql.Selector)

// City is the predicate function for city builders.
type City func(*sql.Selector)

// Committee is the predicate function for committee builders.
type Committee func(*sql.Selector)

// CommitteeMembership is the predicate function for committeemembership builders.
type CommitteeMembership func(*sql.Selector)

// CouncilMember is the predicate function for councilmember builders.
type CouncilMember func(*sql.Selector)

// Matter is the predicate function for matter builders.
type Matter func(*sql.Selector)

// MatterAppearance is the predicate function for matterappearance builders.
type MatterAppearance func(*sql.Selector)

// Meeting is the predicate function for meeting builders.
type Meeting func(*sql.Selector)

// ProcessingCache is the predicate function for processingcache builders.
type ProcessingCache func(*sql.Selector)

// QueueJob is the predicate function for queuejob builders.
type QueueJob func(*sql.Selector)

// Vote is the predicate function for vote builders.
type Vote func(*sql.Selector)
