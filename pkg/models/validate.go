package models

import (
	"fmt"
	"time"
)

// ValidationError reports a meeting record that fails the minimum adapter schema.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid meeting record: field %q %s", e.Field, e.Message)
}

// ValidateMeeting checks the minimum schema every adapter must satisfy:
// vendor_id and title are required, start must be a well-formed ISO timestamp
// when present, and the meeting must carry at least one of agenda_url,
// packet_url, or items.
func ValidateMeeting(m MeetingRecord) error {
	if m.VendorID == "" {
		return &ValidationError{Field: "vendor_id", Message: "is required"}
	}
	if m.Title == "" {
		return &ValidationError{Field: "title", Message: "is required"}
	}
	if m.Start != "" {
		if _, err := ParseStart(m.Start); err != nil {
			return &ValidationError{Field: "start", Message: fmt.Sprintf("is not ISO 8601: %v", err)}
		}
	}
	if m.AgendaURL == "" && m.PacketURL == "" && len(m.Items) == 0 {
		return &ValidationError{Field: "agenda_url", Message: "or packet_url or items is required"}
	}
	return nil
}

// startLayouts are the ISO 8601 shapes adapters are allowed to emit.
var startLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseStart parses an adapter's start timestamp. An empty string means the
// date is TBD and returns the zero time with no error.
func ParseStart(start string) (time.Time, error) {
	if start == "" {
		return time.Time{}, nil
	}
	var lastErr error
	for _, layout := range startLayouts {
		t, err := time.Parse(layout, start)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
