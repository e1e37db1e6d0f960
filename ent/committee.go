// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Engagic/engagic-sub004/ent/city"
	"github.com/Engagic/engagic-sub004/ent/committee"
)

// Committee is the model entity for the Committee schema.
type Committee struct {
	config `json:"-"`
	// ID of the ent.
	// banana + '_comm_' + short_hash(normalized_name)
	ID string `json:"id,omitempty"`
	// Banana holds the value of the "banana" field.
	Banana string `json:"banana,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// NormalizedName holds the value of the "normalized_name" field.
	NormalizedName string `json:"normalized_name,omitempty"`
	// VendorBodyID holds the value of the "vendor_body_id" field.
	VendorBodyID string `json:"vendor_body_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CommitteeQuery when eager-loading is set.
	Edges        CommitteeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CommitteeEdges holds the relations/edges for other nodes in the graph.
type CommitteeEdges struct {
	// City holds the value of the city edge.
	City *City `json:"city,omitempty"`
	// Meetings holds the value of the meetings edge.
	Meetings []*Meeting `json:"meetings,omitempty"`
	// Memberships holds the value of the memberships edge.
	Memberships []*CommitteeMembership `json:"memberships,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// CityOrErr returns the City value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CommitteeEdges) CityOrErr() (*City, error) {
	if e.City != nil {
		return e.City, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: city.Label}
	}
	return nil, &NotLoadedError{edge: "city"}
}

// MeetingsOrErr returns the Meetings value or an error if the edge
// was not loaded in eager-loading.
func (e CommitteeEdges) MeetingsOrErr() ([]*Meeting, error) {
	if e.loadedTypes[1] {
		return e.Meetings, nil
	}
	return nil, &NotLoadedError{edge: "meetings"}
}

// MembershipsOrErr returns the Memberships value or an error if the edge
// was not loaded in eager-loading.
func (e CommitteeEdges) MembershipsOrErr() ([]*CommitteeMembership, error) {
	if e.loadedTypes[2] {
		return e.Memberships, nil
	}
	return nil, &NotLoadedError{edge: "memberships"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Committee) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case committee.FieldID, committee.FieldBanana, committee.FieldName, committee.FieldNormalizedName, committee.FieldVendorBodyID:
			values[i] = new(sql.NullString)
		case committee.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Committee fields.
func (_m *Committee) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case committee.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case committee.FieldBanana:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field banana", values[i])
			} else if value.Valid {
				_m.Banana = value.String
			}
		case committee.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case committee.FieldNormalizedName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field normalized_name", values[i])
			} else if value.Valid {
				_m.NormalizedName = value.String
			}
		case committee.FieldVendorBodyID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vendor_body_id", values[i])
			} else if value.Valid {
				_m.VendorBodyID = value.String
			}
		case committee.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Committee.
// This includes values selected through modifiers, order, etc.
func (_m *Committee) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCity queries the "city" edge of the Committee entity.
func (_m *Committee) QueryCity() *CityQuery {
	return NewCommitteeClient(_m.config).QueryCity(_m)
}

// QueryMeetings queries the "meetings" edge of the Committee entity.
func (_m *Committee) QueryMeetings() *MeetingQuery {
	return NewCommitteeClient(_m.config).QueryMeetings(_m)
}

// QueryMemberships queries the "memberships" edge of the Committee entity.
func (_m *Committee) QueryMemberships() *CommitteeMembershipQuery {
	return NewCommitteeClient(_m.config).QueryMemberships(_m)
}

// Update returns a builder for updating this Committee.
// Note that you need to call Committee.Unwrap() before calling this method if this Committee
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Committee) Update() *CommitteeUpdateOne {
	return NewCommitteeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Committee entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Committee) Unwrap() *Committee {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Committee is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Committee) String() string {
	var builder strings.Builder
	builder.WriteString("Committee(")
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
	builder.WriteString("vendor_body_id=")
	builder.WriteString(_m.VendorBodyID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Committees is a parsable slice of Committee.
type Committees []*Committee
