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
	"github.com/Engagic/engagic-sub004/ent/matter"
	"github.com/Engagic/engagic-sub004/ent/matterappearance"
	"github.com/Engagic/engagic-sub004/ent/meeting"
)

// MatterAppearance is the model entity for the MatterAppearance schema.
type MatterAppearance struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// MatterID holds the value of the "matter_id" field.
	MatterID string `json:"matter_id,omitempty"`
	// MeetingID holds the value of the "meeting_id" field.
	MeetingID string `json:"meeting_id,omitempty"`
	// ItemID holds the value of the "item_id" field.
	ItemID string `json:"item_id,omitempty"`
	// AppearedAt holds the value of the "appeared_at" field.
	AppearedAt time.Time `json:"appeared_at,omitempty"`
	// CommitteeID holds the value of the "committee_id" field.
	CommitteeID string `json:"committee_id,omitempty"`
	// Agenda action label, e.g. 'Second Reading'
	Action string `json:"action,omitempty"`
	// VoteOutcome holds the value of the "vote_outcome" field.
	VoteOutcome *matterappearance.VoteOutcome `json:"vote_outcome,omitempty"`
	// e.g. {"yes": 6, "no": 1, "abstain": 0}
	VoteTally map[string]int `json:"vote_tally,omitempty"`
	// Sequence holds the value of the "sequence" field.
	Sequence int `json:"sequence,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MatterAppearanceQuery when eager-loading is set.
	Edges        MatterAppearanceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MatterAppearanceEdges holds the relations/edges for other nodes in the graph.
type MatterAppearanceEdges struct {
	// Matter holds the value of the matter edge.
	Matter *Matter `json:"matter,omitempty"`
	// Meeting holds the value of the meeting edge.
	Meeting *Meeting `json:"meeting,omitempty"`
	// Item holds the value of the item edge.
	Item *AgendaItem `json:"item,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// MatterOrErr returns the Matter value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MatterAppearanceEdges) MatterOrErr() (*Matter, error) {
	if e.Matter != nil {
		return e.Matter, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: matter.Label}
	}
	return nil, &NotLoadedError{edge: "matter"}
}

// MeetingOrErr returns the Meeting value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MatterAppearanceEdges) MeetingOrErr() (*Meeting, error) {
	if e.Meeting != nil {
		return e.Meeting, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: meeting.Label}
	}
	return nil, &NotLoadedError{edge: "meeting"}
}

// ItemOrErr returns the Item value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MatterAppearanceEdges) ItemOrErr() (*AgendaItem, error) {
	if e.Item != nil {
		return e.Item, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: agendaitem.Label}
	}
	return nil, &NotLoadedError{edge: "item"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MatterAppearance) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case matterappearance.FieldVoteTally:
			values[i] = new([]byte)
		case matterappearance.FieldSequence:
			values[i] = new(sql.NullInt64)
		case matterappearance.FieldID, matterappearance.FieldMatterID, matterappearance.FieldMeetingID, matterappearance.FieldItemID, matterappearance.FieldCommitteeID, matterappearance.FieldAction, matterappearance.FieldVoteOutcome:
			values[i] = new(sql.NullString)
		case matterappearance.FieldAppearedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MatterAppearance fields.
func (_m *MatterAppearance) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case matterappearance.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case matterappearance.FieldMatterID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field matter_id", values[i])
			} else if value.Valid {
				_m.MatterID = value.String
			}
		case matterappearance.FieldMeetingID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meeting_id", values[i])
			} else if value.Valid {
				_m.MeetingID = value.String
			}
		case matterappearance.FieldItemID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_id", values[i])
			} else if value.Valid {
				_m.ItemID = value.String
			}
		case matterappearance.FieldAppearedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field appeared_at", values[i])
			} else if value.Valid {
				_m.AppearedAt = value.Time
			}
		case matterappearance.FieldCommitteeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field committee_id", values[i])
			} else if value.Valid {
				_m.CommitteeID = value.String
			}
		case matterappearance.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case matterappearance.FieldVoteOutcome:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vote_outcome", values[i])
			} else if value.Valid {
				_m.VoteOutcome = new(matterappearance.VoteOutcome)
				*_m.VoteOutcome = matterappearance.VoteOutcome(value.String)
			}
		case matterappearance.FieldVoteTally:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field vote_tally", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.VoteTally); err != nil {
					return fmt.Errorf("unmarshal field vote_tally: %w", err)
				}
			}
		case matterappearance.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MatterAppearance.
// This includes values selected through modifiers, order, etc.
func (_m *MatterAppearance) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMatter queries the "matter" edge of the MatterAppearance entity.
func (_m *MatterAppearance) QueryMatter() *MatterQuery {
	return NewMatterAppearanceClient(_m.config).QueryMatter(_m)
}

// QueryMeeting queries the "meeting" edge of the MatterAppearance entity.
func (_m *MatterAppearance) QueryMeeting() *MeetingQuery {
	return NewMatterAppearanceClient(_m.config).QueryMeeting(_m)
}

// QueryItem queries the "item" edge of the MatterAppearance entity.
func (_m *MatterAppearance) QueryItem() *AgendaItemQuery {
	return NewMatterAppearanceClient(_m.config).QueryItem(_m)
}

// Update returns a builder for updating this MatterAppearance.
// Note that you need to call MatterAppearance.Unwrap() before calling this method if this MatterAppearance
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MatterAppearance) Update() *MatterAppearanceUpdateOne {
	return NewMatterAppearanceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MatterAppearance entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MatterAppearance) Unwrap() *MatterAppearance {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MatterAppearance is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MatterAppearance) String() string {
	var builder strings.Builder
	builder.WriteString("MatterAppearance(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("matter_id=")
	builder.WriteString(_m.MatterID)
	builder.WriteString(", ")
	builder.WriteString("meeting_id=")
	builder.WriteString(_m.MeetingID)
	builder.WriteString(", ")
	builder.WriteString("item_id=")
	builder.WriteString(_m.ItemID)
	builder.WriteString(", ")
	builder.WriteString("appeared_at=")
	builder.WriteString(_m.AppearedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("committee_id=")
	builder.WriteString(_m.CommitteeID)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	if v := _m.VoteOutcome; v != nil {
		builder.WriteString("vote_outcome=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("vote_tally=")
	builder.WriteString(fmt.Sprintf("%v", _m.VoteTally))
	builder.WriteString(", ")
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteByte(')')
	return builder.String()
}

// MatterAppearances is a parsable slice of MatterAppearance.
type MatterAppearances []*MatterAppearance
