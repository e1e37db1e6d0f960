// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Engagic/engagic-sub004/ent/city"
	"github.com/Engagic/engagic-sub004/ent/councilmember"
)

// CouncilMember is the model entity for the CouncilMember schema.
type CouncilMember struct {
	config `json:"-"`
	// ID of the ent.
	// hash(banana + normalized_name)
	ID string `json:"id,omitempty"`
	// Banana holds the value of the "banana" field.
	Banana string `json:"banana,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// NormalizedName holds the value of the "normalized_name" field.
	NormalizedName string `json:"normalized_name,omitempty"`
	// Role, e.g. 'Mayor', 'Council Member'
	Title string `json:"title,omitempty"`
	// District holds the value of the "district" field.
	District string `json:"district,omitempty"`
	// Status holds the value of the "status" field.
	Status councilmember.Status `json:"status,omitempty"`
	// FirstSeen holds the value of the "first_seen" field.
	FirstSeen time.Time `json:"first_seen,omitempty"`
	// LastSeen holds the value of the "last_seen" field.
	LastSeen time.Time `json:"last_seen,omitempty"`
	// SponsorshipCount holds the value of the "sponsorship_count" field.
	SponsorshipCount int `json:"sponsorship_count,omitempty"`
	// VoteCount holds the value of the "vote_count" field.
	VoteCount int `json:"vote_count,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CouncilMemberQuery when eager-loading is set.
	Edges        CouncilMemberEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CouncilMemberEdges holds the relations/edges for other nodes in the graph.
type CouncilMemberEdges struct {
	// City holds the value of the city edge.
	City *City `json:"city,omitempty"`
	// Votes holds the value of the votes edge.
	Votes []*Vote `json:"votes,omitempty"`
	// Memberships holds the value of the memberships edge.
	Memberships []*CommitteeMembership `json:"memberships,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// CityOrErr returns the City value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CouncilMemberEdges) CityOrErr() (*City, error) {
	if e.City != nil {
		return e.City, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: city.Label}
	}
	return nil, &NotLoadedError{edge: "city"}
}

// VotesOrErr returns the Votes value or an error if the edge
// was not loaded in eager-loading.
func (e CouncilMemberEdges) VotesOrErr() ([]*Vote, error) {
	if e.loadedTypes[1] {
		return e.Votes, nil
	}
	return nil, &NotLoadedError{edge: "votes"}
}

// MembershipsOrErr returns the Memberships value or an error if the edge
// was not loaded in eager-loading.
func (e CouncilMemberEdges) MembershipsOrErr() ([]*CommitteeMembership, error) {
	if e.loadedTypes[2] {
		return e.Memberships, nil
	}
	return nil, &NotLoadedError{edge: "memberships"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CouncilMember) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case councilmember.FieldMetadata:
			values[i] = new([]byte)
		case councilmember.FieldSponsorshipCount, councilmember.FieldVoteCount:
			values[i] = new(sql.NullInt64)
		case councilmember.FieldID, councilmember.FieldBanana, councilmember.FieldName, councilmember.FieldNormalizedName, councilmember.FieldTitle, councilmember.FieldDistrict, councilmember.FieldStatus:
			values[i] = new(sql.NullString)
		case councilmember.FieldFirstSeen, councilmember.FieldLastSeen:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CouncilMember fields.
func (_m *CouncilMember) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case councilmember.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case councilmember.FieldBanana:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field banana", values[i])
			} else if value.Valid {
				_m.Banana = value.String
			}
		case councilmember.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case councilmember.FieldNormalizedName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field normalized_name", values[i])
			} else if value.Valid {
				_m.NormalizedName = value.String
			}
		case councilmember.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case councilmember.FieldDistrict:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field district", values[i])
			} else if value.Valid {
				_m.District = value.String
			}
		case councilmember.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = councilmember.Status(value.String)
			}
		case councilmember.FieldFirstSeen:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field first_seen", values[i])
			} else if value.Valid {
				_m.FirstSeen = value.Time
			}
		case councilmember.FieldLastSeen:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen", values[i])
			} else if value.Valid {
				_m.LastSeen = value.Time
			}
		case councilmember.FieldSponsorshipCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sponsorship_count", values[i])
			} else if value.Valid {
				_m.SponsorshipCount = int(value.Int64)
			}
		case councilmember.FieldVoteCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field vote_count", values[i])
			} else if value.Valid {
				_m.VoteCount = int(value.Int64)
			}
		case councilmember.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CouncilMember.
// This includes values selected through modifiers, order, etc.
func (_m *CouncilMember) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCity queries the "city" edge of the CouncilMember entity.
func (_m *CouncilMember) QueryCity() *CityQuery {
	return NewCouncilMemberClient(_m.config).QueryCity(_m)
}

// QueryVotes queries the "votes" edge of the CouncilMember entity.
func (_m *CouncilMember) QueryVotes() *VoteQuery {
	return NewCouncilMemberClient(_m.config).QueryVotes(_m)
}

// QueryMemberships queries the "memberships" edge of the CouncilMember entity.
func (_m *CouncilMember) QueryMemberships() *CommitteeMembershipQuery {
	return NewCouncilMemberClient(_m.config).QueryMemberships(_m)
}

// Update returns a builder for updating this CouncilMember.
// Note that you need to call CouncilMember.Unwrap() before calling this method if this CouncilMember
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CouncilMember) Update() *CouncilMemberUpdateOne {
	return NewCouncilMemberClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CouncilMember entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CouncilMember) Unwrap() *CouncilMember {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CouncilMember is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CouncilMember) String() string {
	var builder strings.Builder
	builder.WriteString("CouncilMember(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("banana=")
	builder.WriteString(_m.Banana)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("normalized_name=")
	builder.WriteString(_m.NormalizedName)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("district=")
	builder.WriteString(_m.District)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("first_seen=")
	builder.WriteString(_m.FirstSeen.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_seen=")
	builder.WriteString(_m.LastSeen.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("sponsorship_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SponsorshipCount))
	builder.WriteString(", ")
	builder.WriteString("vote_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.VoteCount))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteByte(')')
	return builder.String()
}

// CouncilMembers is a parsable slice of CouncilMember.
type CouncilMembers []*CouncilMember
