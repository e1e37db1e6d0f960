// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Engagic/engagic-sub004/ent/committee"
	"github.com/Engagic/engagic-sub004/ent/committeemembership"
	"github.com/Engagic/engagic-sub004/ent/councilmember"
)

// CommitteeMembership is the model entity for the CommitteeMembership schema.
type CommitteeMembership struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CommitteeID holds the value of the "committee_id" field.
	CommitteeID string `json:"committee_id,omitempty"`
	// MemberID holds the value of the "member_id" field.
	MemberID string `json:"member_id,omitempty"`
	// e.g. 'Chair'
	Role string `json:"role,omitempty"`
	// JoinedAt holds the value of the "joined_at" field.
	JoinedAt time.Time `json:"joined_at,omitempty"`
	// LeftAt holds the value of the "left_at" field.
	LeftAt *time.Time `json:"left_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CommitteeMembershipQuery when eager-loading is set.
	Edges        CommitteeMembershipEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CommitteeMembershipEdges holds the relations/edges for other nodes in the graph.
type CommitteeMembershipEdges struct {
	// Committee holds the value of the committee edge.
	Committee *Committee `json:"committee,omitempty"`
	// Member holds the value of the member edge.
	Member *CouncilMember `json:"member,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// CommitteeOrErr returns the Committee value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CommitteeMembershipEdges) CommitteeOrErr() (*Committee, error) {
	if e.Committee != nil {
		return e.Committee, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: committee.Label}
	}
	return nil, &NotLoadedError{edge: "committee"}
}

// MemberOrErr returns the Member value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CommitteeMembershipEdges) MemberOrErr() (*CouncilMember, error) {
	if e.Member != nil {
		return e.Member, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: councilmember.Label}
	}
	return nil, &NotLoadedError{edge: "member"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CommitteeMembership) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case committeemembership.FieldID, committeemembership.FieldCommitteeID, committeemembership.FieldMemberID, committeemembership.FieldRole:
			values[i] = new(sql.NullString)
		case committeemembership.FieldJoinedAt, committeemembership.FieldLeftAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CommitteeMembership fields.
func (_m *CommitteeMembership) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case committeemembership.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case committeemembership.FieldCommitteeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field committee_id", values[i])
			} else if value.Valid {
				_m.CommitteeID = value.String
			}
		case committeemembership.FieldMemberID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field member_id", values[i])
			} else if value.Valid {
				_m.MemberID = value.String
			}
		case committeemembership.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = value.String
			}
		case committeemembership.FieldJoinedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field joined_at", values[i])
			} else if value.Valid {
				_m.JoinedAt = value.Time
			}
		case committeemembership.FieldLeftAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field left_at", values[i])
			} else if value.Valid {
				_m.LeftAt = new(time.Time)
				*_m.LeftAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CommitteeMembership.
// This includes values selected through modifiers, order, etc.
func (_m *CommitteeMembership) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCommittee queries the "committee" edge of the CommitteeMembership entity.
func (_m *CommitteeMembership) QueryCommittee() *CommitteeQuery {
	return NewCommitteeMembershipClient(_m.config).QueryCommittee(_m)
}

// QueryMember queries the "member" edge of the CommitteeMembership entity.
func (_m *CommitteeMembership) QueryMember() *CouncilMemberQuery {
	return NewCommitteeMembershipClient(_m.config).QueryMember(_m)
}

// Update returns a builder for updating this CommitteeMembership.
// Note that you need to call CommitteeMembership.Unwrap() before calling this method if this CommitteeMembership
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CommitteeMembership) Update() *CommitteeMembershipUpdateOne {
	return NewCommitteeMembershipClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CommitteeMembership entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CommitteeMembership) Unwrap() *CommitteeMembership {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CommitteeMembership is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CommitteeMembership) String() string {
	var builder strings.Builder
	builder.WriteString("CommitteeMembership(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("committee_id=")
	builder.WriteString(_m.CommitteeID)
	builder.WriteString(", ")
	builder.WriteString("member_id=")
	builder.WriteString(_m.MemberID)
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(_m.Role)
	builder.WriteString(", ")
	builder.WriteString("joined_at=")
	builder.WriteString(_m.JoinedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.LeftAt; v != nil {
		builder.WriteString("left_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// CommitteeMemberships is a parsable slice of CommitteeMembership.
type CommitteeMemberships []*CommitteeMembership
