// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Engagic/engagic-sub004/ent/agendaitem"
	"github.com/Engagic/engagic-sub004/ent/meeting"
	"github.com/Engagic/engagic-sub004/pkg/models"
)

// AgendaItem is the model entity for the AgendaItem schema.
type AgendaItem struct {
	config `json:"-"`
	// ID of the ent.
	// meeting_id + '_' + short_hash(sequence + title)
	ID string `json:"id,omitempty"`
	// MeetingID holds the value of the "meeting_id" field.
	MeetingID string `json:"meeting_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Sequence holds the value of the "sequence" field.
	Sequence int `json:"sequence,omitempty"`
	// Attachments holds the value of the "attachments" field.
	Attachments []models.Attachment `json:"attachments,omitempty"`
	// sha256 over the sorted attachment URL set
	AttachmentHash string `json:"attachment_hash,omitempty"`
	// Weak reference to Matter; lookup, not ownership
	MatterID *string `json:"matter_id,omitempty"`
	// MatterFile holds the value of the "matter_file" field.
	MatterFile string `json:"matter_file,omitempty"`
	// MatterType holds the value of the "matter_type" field.
	MatterType string `json:"matter_type,omitempty"`
	// AgendaNumber holds the value of the "agenda_number" field.
	AgendaNumber string `json:"agenda_number,omitempty"`
	// Sponsors holds the value of the "sponsors" field.
	Sponsors []string `json:"sponsors,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary *string `json:"summary,omitempty"`
	// Canonical topics, 0-3
	Topics []string `json:"topics,omitempty"`
	// e.g. 'llm', 'matter_cache_hit', 'no_attachments'
	ProcessingMethod string `json:"processing_method,omitempty"`
	// SummarizedAt holds the value of the "summarized_at" field.
	SummarizedAt *time.Time `json:"summarized_at,omitempty"`
	// ExtractionError holds the value of the "extraction_error" field.
	ExtractionError string `json:"extraction_error,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgendaItemQuery when eager-loading is set.
	Edges        AgendaItemEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgendaItemEdges holds the relations/edges for other nodes in the graph.
type AgendaItemEdges struct {
	// Meeting holds the value of the meeting edge.
	Meeting *Meeting `json:"meeting,omitempty"`
	// Appearances holds the value of the appearances edge.
	Appearances []*MatterAppearance `json:"appearances,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// MeetingOrErr returns the Meeting value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgendaItemEdges) MeetingOrErr() (*Meeting, error) {
	if e.Meeting != nil {
		return e.Meeting, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: meeting.Label}
	}
	return nil, &NotLoadedError{edge: "meeting"}
}

// AppearancesOrErr returns the Appearances value or an error if the edge
// was not loaded in eager-loading.
func (e AgendaItemEdges) AppearancesOrErr() ([]*MatterAppearance, error) {
	if e.loadedTypes[1] {
		return e.Appearances, nil
	}
	return nil, &NotLoadedError{edge: "appearances"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgendaItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agendaitem.FieldAttachments, agendaitem.FieldSponsors, agendaitem.FieldTopics:
			values[i] = new([]byte)
		case agendaitem.FieldSequence:
			values[i] = new(sql.NullInt64)
		case agendaitem.FieldID, agendaitem.FieldMeetingID, agendaitem.FieldTitle, agendaitem.FieldAttachmentHash, agendaitem.FieldMatterID, agendaitem.FieldMatterFile, agendaitem.FieldMatterType, agendaitem.FieldAgendaNumber, agendaitem.FieldSummary, agendaitem.FieldProcessingMethod, agendaitem.FieldExtractionError:
			values[i] = new(sql.NullString)
		case agendaitem.FieldSummarizedAt, agendaitem.FieldCreatedAt, agendaitem.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgendaItem fields.
func (_m *AgendaItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agendaitem.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agendaitem.FieldMeetingID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meeting_id", values[i])
			} else if value.Valid {
				_m.MeetingID = value.String
			}
		case agendaitem.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case agendaitem.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = int(value.Int64)
			}
		case agendaitem.FieldAttachments:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field attachments", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Attachments); err != nil {
					return fmt.Errorf("unmarshal field attachments: %w", err)
				}
			}
		case agendaitem.FieldAttachmentHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field attachment_hash", values[i])
			} else if value.Valid {
				_m.AttachmentHash = value.String
			}
		case agendaitem.FieldMatterID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field matter_id", values[i])
			} else if value.Valid {
				_m.MatterID = new(string)
				*_m.MatterID = value.String
			}
		case agendaitem.FieldMatterFile:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field matter_file", values[i])
			} else if value.Valid {
				_m.MatterFile = value.String
			}
		case agendaitem.FieldMatterType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field matter_type", values[i])
			} else if value.Valid {
				_m.MatterType = value.String
			}
		case agendaitem.FieldAgendaNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agenda_number", values[i])
			} else if value.Valid {
				_m.AgendaNumber = value.String
			}
		case agendaitem.FieldSponsors:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field sponsors", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Sponsors); err != nil {
					return fmt.Errorf("unmarshal field sponsors: %w", err)
				}
			}
		case agendaitem.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = new(string)
				*_m.Summary = value.String
			}
		case agendaitem.FieldTopics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field topics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Topics); err != nil {
					return fmt.Errorf("unmarshal field topics: %w", err)
				}
			}
		case agendaitem.FieldProcessingMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field processing_method", values[i])
			} else if value.Valid {
				_m.ProcessingMethod = value.String
			}
		case agendaitem.FieldSummarizedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field summarized_at", values[i])
			} else if value.Valid {
				_m.SummarizedAt = new(time.Time)
				*_m.SummarizedAt = value.Time
			}
		case agendaitem.FieldExtractionError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_error", values[i])
			} else if value.Valid {
				_m.ExtractionError = value.String
			}
		case agendaitem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case agendaitem.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AgendaItem.
// This includes values selected through modifiers, order, etc.
func (_m *AgendaItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMeeting queries the "meeting" edge of the AgendaItem entity.
func (_m *AgendaItem) QueryMeeting() *MeetingQuery {
	return NewAgendaItemClient(_m.config).QueryMeeting(_m)
}

// QueryAppearances queries the "appearances" edge of the AgendaItem entity.
func (_m *AgendaItem) QueryAppearances() *MatterAppearanceQuery {
	return NewAgendaItemClient(_m.config).QueryAppearances(_m)
}

// Update returns a builder for updating this AgendaItem.
// Note that you need to call AgendaItem.Unwrap() before calling this method if this AgendaItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgendaItem) Update() *AgendaItemUpdateOne {
	return NewAgendaItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgendaItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgendaItem) Unwrap() *AgendaItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgendaItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgendaItem) String() string {
	var builder strings.Builder
	builder.WriteString("AgendaItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("meeting_id=")
	builder.WriteString(_m.MeetingID)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("attachments=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attachments))
	builder.WriteString(", ")
	builder.WriteString("attachment_hash=")
	builder.WriteString(_m.AttachmentHash)
	builder.WriteString(", ")
	if v := _m.MatterID; v != nil {
		builder.WriteString("matter_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("matter_file=")
	builder.WriteString(_m.MatterFile)
	builder.WriteString(", ")
	builder.WriteString("matter_type=")
	builder.WriteString(_m.MatterType)
	builder.WriteString(", ")
	builder.WriteString("agenda_number=")
	builder.WriteString(_m.AgendaNumber)
	builder.WriteString(", ")
	builder.WriteString("sponsors=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sponsors))
	builder.WriteString(", ")
	if v := _m.Summary; v != nil {
		builder.WriteString("summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("topics=")
	builder.WriteString(fmt.Sprintf("%v", _m.Topics))
	builder.WriteString(", ")
	builder.WriteString("processing_method=")
	builder.WriteString(_m.ProcessingMethod)
	builder.WriteString(", ")
	if v := _m.SummarizedAt; v != nil {
		builder.WriteString("summarized_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("extraction_error=")
	builder.WriteString(_m.ExtractionError)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgendaItems is a parsable slice of AgendaItem.
type AgendaItems []*AgendaItem
