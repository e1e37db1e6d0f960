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
	"github.com/Engagic/engagic-sub004/ent/matter"
	"github.com/Engagic/engagic-sub004/pkg/models"
)

// Matter is the model entity for the Matter schema.
type Matter struct {
	config `json:"-"`
	// ID of the ent.
	// Derived from (banana, matter_file | vendor matter_id | normalized title)
	ID string `json:"id,omitempty"`
	// Banana holds the value of the "banana" field.
	Banana string `json:"banana,omitempty"`
	// e.g. 'BL2025-1098'
	MatterFile string `json:"matter_file,omitempty"`
	// e.g. 'Ordinance', 'Resolution'
	MatterType string `json:"matter_type,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Sponsors holds the value of the "sponsors" field.
	Sponsors []string `json:"sponsors,omitempty"`
	// CanonicalSummary holds the value of the "canonical_summary" field.
	CanonicalSummary *string `json:"canonical_summary,omitempty"`
	// CanonicalTopics holds the value of the "canonical_topics" field.
	CanonicalTopics []string `json:"canonical_topics,omitempty"`
	// Canonical attachment snapshot from the latest appearance
	Attachments []models.Attachment `json:"attachments,omitempty"`
	// Hash the canonical summary was produced from
	AttachmentHash string `json:"attachment_hash,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// FirstSeen holds the value of the "first_seen" field.
	FirstSeen time.Time `json:"first_seen,omitempty"`
	// LastSeen holds the value of the "last_seen" field.
	LastSeen time.Time `json:"last_seen,omitempty"`
	// AppearanceCount holds the value of the "appearance_count" field.
	AppearanceCount int `json:"appearance_count,omitempty"`
	// Status holds the value of the "status" field.
	Status matter.Status `json:"status,omitempty"`
	// FinalVoteDate holds the value of the "final_vote_date" field.
	FinalVoteDate *time.Time `json:"final_vote_date,omitempty"`
	// QualityScore holds the value of the "quality_score" field.
	QualityScore *float64 `json:"quality_score,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MatterQuery when eager-loading is set.
	Edges        MatterEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MatterEdges holds the relations/edges for other nodes in the graph.
type MatterEdges struct {
	// City holds the value of the city edge.
	City *City `json:"city,omitempty"`
	// Appearances holds the value of the appearances edge.
	Appearances []*MatterAppearance `json:"appearances,omitempty"`
	// Votes holds the value of the votes edge.
	Votes []*Vote `json:"votes,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// CityOrErr returns the City value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MatterEdges) CityOrErr() (*City, error) {
	if e.City != nil {
		return e.City, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: city.Label}
	}
	return nil, &NotLoadedError{edge: "city"}
}

// AppearancesOrErr returns the Appearances value or an error if the edge
// was not loaded in eager-loading.
func (e MatterEdges) AppearancesOrErr() ([]*MatterAppearance, error) {
	if e.loadedTypes[1] {
		return e.Appearances, nil
	}
	return nil, &NotLoadedError{edge: "appearances"}
}

// VotesOrErr returns the Votes value or an error if the edge
// was not loaded in eager-loading.
func (e MatterEdges) VotesOrErr() ([]*Vote, error) {
	if e.loadedTypes[2] {
		return e.Votes, nil
	}
	return nil, &NotLoadedError{edge: "votes"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Matter) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case matter.FieldSponsors, matter.FieldCanonicalTopics, matter.FieldAttachments, matter.FieldMetadata:
			values[i] = new([]byte)
		case matter.FieldQualityScore:
			values[i] = new(sql.NullFloat64)
		case matter.FieldAppearanceCount:
			values[i] = new(sql.NullInt64)
		case matter.FieldID, matter.FieldBanana, matter.FieldMatterFile, matter.FieldMatterType, matter.FieldTitle, matter.FieldCanonicalSummary, matter.FieldAttachmentHash, matter.FieldStatus:
			values[i] = new(sql.NullString)
		case matter.FieldFirstSeen, matter.FieldLastSeen, matter.FieldFinalVoteDate:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Matter fields.
func (_m *Matter) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case matter.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case matter.FieldBanana:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field banana", values[i])
			} else if value.Valid {
				_m.Banana = value.String
			}
		case matter.FieldMatterFile:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field matter_file", values[i])
			} else if value.Valid {
				_m.MatterFile = value.String
			}
		case matter.FieldMatterType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field matter_type", values[i])
			} else if value.Valid {
				_m.MatterType = value.String
			}
		case matter.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case matter.FieldSponsors:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field sponsors", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Sponsors); err != nil {
					return fmt.Errorf("unmarshal field sponsors: %w", err)
				}
			}
		case matter.FieldCanonicalSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field canonical_summary", values[i])
			} else if value.Valid {
				_m.CanonicalSummary = new(string)
				*_m.CanonicalSummary = value.String
			}
		case matter.FieldCanonicalTopics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field canonical_topics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CanonicalTopics); err != nil {
					return fmt.Errorf("unmarshal field canonical_topics: %w", err)
				}
			}
		case matter.FieldAttachments:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field attachments", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Attachments); err != nil {
					return fmt.Errorf("unmarshal field attachments: %w", err)
				}
			}
		case matter.FieldAttachmentHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field attachment_hash", values[i])
			} else if value.Valid {
				_m.AttachmentHash = value.String
			}
		case matter.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case matter.FieldFirstSeen:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field first_seen", values[i])
			} else if value.Valid {
				_m.FirstSeen = value.Time
			}
		case matter.FieldLastSeen:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen", values[i])
			} else if value.Valid {
				_m.LastSeen = value.Time
			}
		case matter.FieldAppearanceCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field appearance_count", values[i])
			} else if value.Valid {
				_m.AppearanceCount = int(value.Int64)
			}
		case matter.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = matter.Status(value.String)
			}
		case matter.FieldFinalVoteDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field final_vote_date", values[i])
			} else if value.Valid {
				_m.FinalVoteDate = new(time.Time)
				*_m.FinalVoteDate = value.Time
			}
		case matter.FieldQualityScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field quality_score", values[i])
			} else if value.Valid {
				_m.QualityScore = new(float64)
				*_m.QualityScore = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Matter.
// This includes values selected through modifiers, order, etc.
func (_m *Matter) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCity queries the "city" edge of the Matter entity.
func (_m *Matter) QueryCity() *CityQuery {
	return NewMatterClient(_m.config).QueryCity(_m)
}

// QueryAppearances queries the "appearances" edge of the Matter entity.
func (_m *Matter) QueryAppearances() *MatterAppearanceQuery {
	return NewMatterClient(_m.config).QueryAppearances(_m)
}

// QueryVotes queries the "votes" edge of the Matter entity.
func (_m *Matter) QueryVotes() *VoteQuery {
	return NewMatterClient(_m.config).QueryVotes(_m)
}

// Update returns a builder for updating this Matter.
// Note that you need to call Matter.Unwrap() before calling this method if this Matter
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Matter) Update() *MatterUpdateOne {
	return NewMatterClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Matter entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Matter) Unwrap() *Matter {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Matter is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Matter) String() string {
	var builder strings.Builder
	builder.WriteString("Matter(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("banana=")
	builder.WriteString(_m.Banana)
	builder.WriteString(", ")
	builder.WriteString("matter_file=")
	builder.WriteString(_m.MatterFile)
	builder.WriteString(", ")
	builder.WriteString("matter_type=")
	builder.WriteString(_m.MatterType)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("sponsors=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sponsors))
	builder.WriteString(", ")
	if v := _m.CanonicalSummary; v != nil {
		builder.WriteString("canonical_summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("canonical_topics=")
	builder.WriteString(fmt.Sprintf("%v", _m.CanonicalTopics))
	builder.WriteString(", ")
	builder.WriteString("attachments=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attachments))
	builder.WriteString(", ")
	builder.WriteString("attachment_hash=")
	builder.WriteString(_m.AttachmentHash)
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("first_seen=")
	builder.WriteString(_m.FirstSeen.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_seen=")
	builder.WriteString(_m.LastSeen.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("appearance_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.AppearanceCount))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.FinalVoteDate; v != nil {
		builder.WriteString("final_vote_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.QualityScore; v != nil {
		builder.WriteString("quality_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Matters is a parsable slice of Matter.
type Matters []*Matter
