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
)

// City is the model entity for the City schema.
type City struct {
	config `json:"-"`
	// ID of the ent.
	// Canonical city handle: slug + state, e.g. 'paloaltoCA'
	ID string `json:"id,omitempty"`
	// Display name, e.g. 'Palo Alto'
	Name string `json:"name,omitempty"`
	// State holds the value of the "state" field.
	State string `json:"state,omitempty"`
	// Civic-tech platform tag, e.g. 'primegov'
	Vendor string `json:"vendor,omitempty"`
	// Vendor-local identifier for this city
	VendorSlug string `json:"vendor_slug,omitempty"`
	// Timezone holds the value of the "timezone" field.
	Timezone string `json:"timezone,omitempty"`
	// County holds the value of the "county" field.
	County string `json:"county,omitempty"`
	// Status holds the value of the "status" field.
	Status city.Status `json:"status,omitempty"`
	// Population holds the value of the "population" field.
	Population *int `json:"population,omitempty"`
	// Geometry holds the value of the "geometry" field.
	Geometry map[string]interface{} `json:"geometry,omitempty"`
	// Consecutive failed sync cycles
	SyncErrorCount int `json:"sync_error_count,omitempty"`
	// LastSyncedAt holds the value of the "last_synced_at" field.
	LastSyncedAt *time.Time `json:"last_synced_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CityQuery when eager-loading is set.
	Edges        CityEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CityEdges holds the relations/edges for other nodes in the graph.
type CityEdges struct {
	// Meetings holds the value of the meetings edge.
	Meetings []*Meeting `json:"meetings,omitempty"`
	// Matters holds the value of the matters edge.
	Matters []*Matter `json:"matters,omitempty"`
	// CouncilMembers holds the value of the council_members edge.
	CouncilMembers []*CouncilMember `json:"council_members,omitempty"`
	// Committees holds the value of the committees edge.
	Committees []*Committee `json:"committees,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// MeetingsOrErr returns the Meetings value or an error if the edge
// was not loaded in eager-loading.
func (e CityEdges) MeetingsOrErr() ([]*Meeting, error) {
	if e.loadedTypes[0] {
		return e.Meetings, nil
	}
	return nil, &NotLoadedError{edge: "meetings"}
}

// MattersOrErr returns the Matters value or an error if the edge
// was not loaded in eager-loading.
func (e CityEdges) MattersOrErr() ([]*Matter, error) {
	if e.loadedTypes[1] {
		return e.Matters, nil
	}
	return nil, &NotLoadedError{edge: "matters"}
}

// CouncilMembersOrErr returns the CouncilMembers value or an error if the edge
// was not loaded in eager-loading.
func (e CityEdges) CouncilMembersOrErr() ([]*CouncilMember, error) {
	if e.loadedTypes[2] {
		return e.CouncilMembers, nil
	}
	return nil, &NotLoadedError{edge: "council_members"}
}

// CommitteesOrErr returns the Committees value or an error if the edge
// was not loaded in eager-loading.
func (e CityEdges) CommitteesOrErr() ([]*Committee, error) {
	if e.loadedTypes[3] {
		return e.Committees, nil
	}
	return nil, &NotLoadedError{edge: "committees"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*City) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case city.FieldGeometry:
			values[i] = new([]byte)
		case city.FieldPopulation, city.FieldSyncErrorCount:
			values[i] = new(sql.NullInt64)
		case city.FieldID, city.FieldName, city.FieldState, city.FieldVendor, city.FieldVendorSlug, city.FieldTimezone, city.FieldCounty, city.FieldStatus:
			values[i] = new(sql.NullString)
		case city.FieldLastSyncedAt, city.FieldCreatedAt, city.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the City fields.
func (_m *City) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case city.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case city.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case city.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = value.String
			}
		case city.FieldVendor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vendor", values[i])
			} else if value.Valid {
				_m.Vendor = value.String
			}
		case city.FieldVendorSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vendor_slug", values[i])
			} else if value.Valid {
				_m.VendorSlug = value.String
			}
		case city.FieldTimezone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field timezone", values[i])
			} else if value.Valid {
				_m.Timezone = value.String
			}
		case city.FieldCounty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field county", values[i])
			} else if value.Valid {
				_m.County = value.String
			}
		case city.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = city.Status(value.String)
			}
		case city.FieldPopulation:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field population", values[i])
			} else if value.Valid {
				_m.Population = new(int)
				*_m.Population = int(value.Int64)
			}
		case city.FieldGeometry:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field geometry", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Geometry); err != nil {
					return fmt.Errorf("unmarshal field geometry: %w", err)
				}
			}
		case city.FieldSyncErrorCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sync_error_count", values[i])
			} else if value.Valid {
				_m.SyncErrorCount = int(value.Int64)
			}
		case city.FieldLastSyncedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_synced_at", values[i])
			} else if value.Valid {
				_m.LastSyncedAt = new(time.Time)
				*_m.LastSyncedAt = value.Time
			}
		case city.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case city.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the City.
// This includes values selected through modifiers, order, etc.
func (_m *City) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMeetings queries the "meetings" edge of the City entity.
func (_m *City) QueryMeetings() *MeetingQuery {
	return NewCityClient(_m.config).QueryMeetings(_m)
}

// QueryMatters queries the "matters" edge of the City entity.
func (_m *City) QueryMatters() *MatterQuery {
	return NewCityClient(_m.config).QueryMatters(_m)
}

// QueryCouncilMembers queries the "council_members" edge of the City entity.
func (_m *City) QueryCouncilMembers() *CouncilMemberQuery {
	return NewCityClient(_m.config).QueryCouncilMembers(_m)
}

// QueryCommittees queries the "committees" edge of the City entity.
func (_m *City) QueryCommittees() *CommitteeQuery {
	return NewCityClient(_m.config).QueryCommittees(_m)
}

// Update returns a builder for updating this City.
// Note that you need to call City.Unwrap() before calling this method if this City
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *City) Update() *CityUpdateOne {
	return NewCityClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the City entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *City) Unwrap() *City {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: City is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *City) String() string {
	var builder strings.Builder
	builder.WriteString("City(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(_m.State)
	builder.WriteString(", ")
	builder.WriteString("vendor=")
	builder.WriteString(_m.Vendor)
	builder.WriteString(", ")
	builder.WriteString("vendor_slug=")
	builder.WriteString(_m.VendorSlug)
	builder.WriteString(", ")
	builder.WriteString("timezone=")
	builder.WriteString(_m.Timezone)
	builder.WriteString(", ")
	builder.WriteString("county=")
	builder.WriteString(_m.County)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.Population; v != nil {
		builder.WriteString("population=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("geometry=")
	builder.WriteString(fmt.Sprintf("%v", _m.Geometry))
	builder.WriteString(", ")
	builder.WriteString("sync_error_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SyncErrorCount))
	builder.WriteString(", ")
	if v := _m.LastSyncedAt; v != nil {
		builder.WriteString("last_synced_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Cities is a parsable slice of City.
type Cities []*City
