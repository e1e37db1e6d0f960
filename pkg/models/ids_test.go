package models

import (
	"crypto/md5"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeetingID(t *testing.T) {
	id := MeetingID("paloaltoCA", "12345")

	sum := md5.Sum([]byte("12345"))
	want := "paloaltoCA_" + hex.EncodeToString(sum[:])[:8]
	assert.Equal(t, want, id)

	t.Run("distinct cities never collide on the same vendor id", func(t *testing.T) {
		assert.NotEqual(t, MeetingID("paloaltoCA", "12345"), MeetingID("nashvilleTN", "12345"))
	})
}

func TestMatterKey(t *testing.T) {
	tests := []struct {
		name       string
		item       ItemRecord
		wantKey    string
		wantSource string
	}{
		{
			name:       "matter_file wins",
			item:       ItemRecord{MatterFile: "BL2025-1098", MatterID: "m-77", Title: "An ordinance"},
			wantKey:    "BL2025-1098",
			wantSource: "matter_file",
		},
		{
			name:       "vendor matter_id is second",
			item:       ItemRecord{MatterID: "m-77", Title: "An ordinance"},
			wantKey:    "m-77",
			wantSource: "matter_id",
		},
		{
			name:       "normalized title is last resort",
			item:       ItemRecord{Title: "An Ordinance, amending Title 12!"},
			wantKey:    "an ordinance amending title 12",
			wantSource: "title",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, source := MatterKey(tt.item)
			assert.Equal(t, tt.wantKey, key)
			assert.Equal(t, tt.wantSource, source)
		})
	}
}

func TestAttachmentHash(t *testing.T) {
	a := []Attachment{
		{Name: "Staff Report", URL: "https://x.gov/a.pdf", Type: AttachmentPDF},
		{Name: "Exhibit B", URL: "https://x.gov/b.pdf", Type: AttachmentPDF},
	}
	reordered := []Attachment{a[1], a[0]}

	t.Run("stable under reordering", func(t *testing.T) {
		assert.Equal(t, AttachmentHash(a), AttachmentHash(reordered))
	})

	t.Run("changes iff the URL set changes", func(t *testing.T) {
		changed := []Attachment{a[0], {Name: "Exhibit B", URL: "https://x.gov/b-v2.pdf"}}
		assert.NotEqual(t, AttachmentHash(a), AttachmentHash(changed))

		renamed := []Attachment{{Name: "Renamed", URL: "https://x.gov/a.pdf"}, a[1]}
		assert.Equal(t, AttachmentHash(a), AttachmentHash(renamed))
	})

	t.Run("empty set hashes to empty", func(t *testing.T) {
		assert.Empty(t, AttachmentHash(nil))
	})
}

func TestValidateMeeting(t *testing.T) {
	valid := MeetingRecord{
		VendorID:  "12345",
		Title:     "City Council Regular Meeting",
		Start:     "2025-11-10T18:00:00",
		AgendaURL: "https://x.gov/agenda",
	}
	require.NoError(t, ValidateMeeting(valid))

	tests := []struct {
		name   string
		mutate func(*MeetingRecord)
		field  string
	}{
		{"missing vendor_id", func(m *MeetingRecord) { m.VendorID = "" }, "vendor_id"},
		{"missing title", func(m *MeetingRecord) { m.Title = "" }, "title"},
		{"garbage start", func(m *MeetingRecord) { m.Start = "next tuesday" }, "start"},
		{"no urls and no items", func(m *MeetingRecord) { m.AgendaURL = "" }, "agenda_url"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := valid
			tt.mutate(&m)
			err := ValidateMeeting(m)
			require.Error(t, err)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}

	t.Run("empty start is TBD, not an error", func(t *testing.T) {
		m := valid
		m.Start = ""
		assert.NoError(t, ValidateMeeting(m))
	})
}

func TestParseStart(t *testing.T) {
	for _, s := range []string{
		"2025-11-10T18:00:00Z",
		"2025-11-10T18:00:00",
		"2025-11-10T18:00",
		"2025-11-10",
	} {
		_, err := ParseStart(s)
		assert.NoError(t, err, s)
	}

	zero, err := ParseStart("")
	require.NoError(t, err)
	assert.True(t, zero.IsZero())
}

func TestVendorFallbackID(t *testing.T) {
	id := VendorFallbackID("Planning Commission", "2025-11-10", "/agendas/1.pdf")
	assert.Len(t, id, 12)
	assert.Equal(t, id, VendorFallbackID("planning  commission!", "2025-11-10", "/agendas/1.pdf"),
		"normalization makes the fallback id stable across cosmetic title changes")
}
