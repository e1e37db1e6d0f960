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
	"github.com/Engagic/engagic-sub004/ent/committee"
	"github.com/Engagic/engagic-sub004/ent/meeting"
	"github.com/Engagic/engagic-sub004/pkg/models"
)

// Meeting is the model entity for the Meeting schema.
type Meeting struct {
	config `json:"-"`
	// ID of the ent.
	// Canonical id: banana + '_' + md5(vendor_id)[0:8]
	ID string `json:"id,omitempty"`
	// Banana holds the value of the "banana" field.
	Banana string `json:"banana,omitempty"`
	// Vendor-native meeting identifier; not globally unique
	VendorID string `json:"vendor_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// null = date TBD
	Date *time.Time `json:"date,omitempty"`
	// AgendaURL holds the value of the "agenda_url" field.
	AgendaURL string `json:"agenda_url,omitempty"`
	// PacketURL holds the value of the "packet_url" field.
	PacketURL string `json:"packet_url,omitempty"`
	// CommitteeID holds the value of the "committee_id" field.
	CommitteeID *string `json:"committee_id,omitempty"`
	// Populated only for the monolithic processing path
	Summary *string `json:"summary,omitempty"`
	// Participation holds the value of the "participation" field.
	Participation *models.Participation `json:"participation,omitempty"`
	// Status holds the value of the "status" field.
	Status *meeting.Status `json:"status,omitempty"`
	// ProcessingStatus holds the value of the "processing_status" field.
	ProcessingStatus meeting.ProcessingStatus `json:"processing_status,omitempty"`
	// e.g. 'item_level_12_items', 'monolithic'
	ProcessingMethod string `json:"processing_method,omitempty"`
	// ProcessingTimeMs holds the value of the "processing_time_ms" field.
	ProcessingTimeMs *int `json:"processing_time_ms,omitempty"`
	// Sorted union of child item topics
	Topics []string `json:"topics,omitempty"`
	// Fingerprint over all item attachment hashes, for re-enqueue detection
	AttachmentFingerprint string `json:"attachment_fingerprint,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MeetingQuery when eager-loading is set.
	Edges        MeetingEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MeetingEdges holds the relations/edges for other nodes in the graph.
type MeetingEdges struct {
	// City holds the value of the city edge.
	City *City `json:"city,omitempty"`
	// Committee holds the value of the committee edge.
	Committee *Committee `json:"committee,omitempty"`
	// Items holds the value of the items edge.
	Items []*AgendaItem `json:"items,omitempty"`
	// Appearances holds the value of the appearances edge.
	Appearances []*MatterAppearance `json:"appearances,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// CityOrErr returns the City value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MeetingEdges) CityOrErr() (*City, error) {
	if e.City != nil {
		return e.City, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: city.Label}
	}
	return nil, &NotLoadedError{edge: "city"}
}

// CommitteeOrErr returns the Committee value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MeetingEdges) CommitteeOrErr() (*Committee, error) {
	if e.Committee != nil {
		return e.Committee, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: committee.Label}
	}
	return nil, &NotLoadedError{edge: "committee"}
}

// ItemsOrErr returns the Items value or an error if the edge
// was not loaded in eager-loading.
func (e MeetingEdges) ItemsOrErr() ([]*AgendaItem, error) {
	if e.loadedTypes[2] {
		return e.Items, nil
	}
	return nil, &NotLoadedError{edge: "items"}
}

// AppearancesOrErr returns the Appearances value or an error if the edge
// was not loaded in eager-loading.
func (e MeetingEdges) AppearancesOrErr() ([]*MatterAppearance, error) {
	if e.loadedTypes[3] {
		return e.Appearances, nil
	}
	return nil, &NotLoadedError{edge: "appearances"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Meeting) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case meeting.FieldParticipation, meeting.FieldTopics, meeting.FieldMetadata:
			values[i] = new([]byte)
		case meeting.FieldProcessingTimeMs:
			values[i] = new(sql.NullInt64)
		case meeting.FieldID, meeting.FieldBanana, meeting.FieldVendorID, meeting.FieldTitle, meeting.FieldAgendaURL, meeting.FieldPacketURL, meeting.FieldCommitteeID, meeting.FieldSummary, meeting.FieldStatus, meeting.FieldProcessingStatus, meeting.FieldProcessingMethod, meeting.FieldAttachmentFingerprint:
			values[i] = new(sql.NullString)
		case meeting.FieldDate, meeting.FieldCreatedAt, meeting.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Meeting fields.
func (_m *Meeting) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case meeting.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case meeting.FieldBanana:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field banana", values[i])
			} else if value.Valid {
				_m.Banana = value.String
			}
		case meeting.FieldVendorID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vendor_id", values[i])
			} else if value.Valid {
				_m.VendorID = value.String
			}
		case meeting.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case meeting.FieldDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				_m.Date = new(time.Time)
				*_m.Date = value.Time
			}
		case meeting.FieldAgendaURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agenda_url", values[i])
			} else if value.Valid {
				_m.AgendaURL = value.String
			}
		case meeting.FieldPacketURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field packet_url", values[i])
			} else if value.Valid {
				_m.PacketURL = value.String
			}
		case meeting.FieldCommitteeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field committee_id", values[i])
			} else if value.Valid {
				_m.CommitteeID = new(string)
				*_m.CommitteeID = value.String
			}
		case meeting.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = new(string)
				*_m.Summary = value.String
			}
		case meeting.FieldParticipation:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field participation", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Participation); err != nil {
					return fmt.Errorf("unmarshal field participation: %w", err)
				}
			}
		case meeting.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = new(meeting.Status)
				*_m.Status = meeting.Status(value.String)
			}
		case meeting.FieldProcessingStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field processing_status", values[i])
			} else if value.Valid {
				_m.ProcessingStatus = meeting.ProcessingStatus(value.String)
			}
		case meeting.FieldProcessingMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field processing_method", values[i])
			} else if value.Valid {
				_m.ProcessingMethod = value.String
			}
		case meeting.FieldProcessingTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field processing_time_ms", values[i])
			} else if value.Valid {
				_m.ProcessingTimeMs = new(int)
				*_m.ProcessingTimeMs = int(value.Int64)
			}
		case meeting.FieldTopics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field topics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Topics); err != nil {
					return fmt.Errorf("unmarshal field topics: %w", err)
				}
			}
		case meeting.FieldAttachmentFingerprint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field attachment_fingerprint", values[i])
			} else if value.Valid {
				_m.AttachmentFingerprint = value.String
			}
		case meeting.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case meeting.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case meeting.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Meeting.
// This includes values selected through modifiers, order, etc.
func (_m *Meeting) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCity queries the "city" edge of the Meeting entity.
func (_m *Meeting) QueryCity() *CityQuery {
	return NewMeetingClient(_m.config).QueryCity(_m)
}

// QueryCommittee queries the "committee" edge of the Meeting entity.
func (_m *Meeting) QueryCommittee() *CommitteeQuery {
	return NewMeetingClient(_m.config).QueryCommittee(_m)
}

// QueryItems queries the "items" edge of the Meeting entity.
func (_m *Meeting) QueryItems() *AgendaItemQuery {
	return NewMeetingClient(_m.config).QueryItems(_m)
}

// QueryAppearances queries the "appearances" edge of the Meeting entity.
func (_m *Meeting) QueryAppearances() *MatterAppearanceQuery {
	return NewMeetingClient(_m.config).QueryAppearances(_m)
}

// Update returns a builder for updating this Meeting.
// Note that you need to call Meeting.Unwrap() before calling this method if this Meeting
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Meeting) Update() *MeetingUpdateOne {
	return NewMeetingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Meeting entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Meeting) Unwrap() *Meeting {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Meeting is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Meeting) String() string {
	var builder strings.Builder
	builder.WriteString("Meeting(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("banana=")
	builder.WriteString(_m.Banana)
	builder.WriteString(", ")
	builder.WriteString("vendor_id=")
	builder.WriteString(_m.VendorID)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	if v := _m.Date; v != nil {
		builder.WriteString("date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("agenda_url=")
	builder.WriteString(_m.AgendaURL)
	builder.WriteString(", ")
	builder.WriteString("packet_url=")
	builder.WriteString(_m.PacketURL)
	builder.WriteString(", ")
	if v := _m.CommitteeID; v != nil {
		builder.WriteString("committee_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Summary; v != nil {
		builder.WriteString("summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("participation=")
	builder.WriteString(fmt.Sprintf("%v", _m.Participation))
	builder.WriteString(", ")
	if v := _m.Status; v != nil {
		builder.WriteString("status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("processing_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProcessingStatus))
	builder.WriteString(", ")
	builder.WriteString("processing_method=")
	builder.WriteString(_m.ProcessingMethod)
	builder.WriteString(", ")
	if v := _m.ProcessingTimeMs; v != nil {
		builder.WriteString("processing_time_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("topics=")
	builder.WriteString(fmt.Sprintf("%v", _m.Topics))
	builder.WriteString(", ")
	builder.WriteString("attachment_fingerprint=")
	builder.WriteString(_m.AttachmentFingerprint)
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Meetings is a parsable slice of Meeting.
type Meetings []*Meeting
