// Package models defines the adapter contract (the normalized records every
// vendor adapter returns) and the canonical id derivations shared by the
// fetcher, processor, and repositories.
package models

// AttachmentType classifies an attachment by format.
type AttachmentType string

// Attachment type constants.
const (
	AttachmentPDF         AttachmentType = "pdf"
	AttachmentDoc         AttachmentType = "doc"
	AttachmentSpreadsheet AttachmentType = "spreadsheet"
	AttachmentUnknown     AttachmentType = "unknown"
)

// Attachment is a single document attached to an agenda item.
type Attachment struct {
	Name      string         `json:"name"`
	URL       string         `json:"url"`
	Type      AttachmentType `json:"type"`
	HistoryID string         `json:"history_id,omitempty"`
}

// Participation describes how the public can join a meeting.
type Participation struct {
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	VirtualURL    string `json:"virtual_url,omitempty"`
	MeetingID     string `json:"meeting_id,omitempty"`
	IsHybrid      bool   `json:"is_hybrid"`
	IsVirtualOnly bool   `json:"is_virtual_only"`
}

// VoteRecord is a single member's vote as reported by the vendor.
type VoteRecord struct {
	MemberName string `json:"member_name"`
	Value      string `json:"value"` // yes|no|abstain|absent|present|recused|not_voting
	Sequence   int    `json:"sequence,omitempty"`
}

// ItemRecord is a normalized agenda item from a vendor adapter.
type ItemRecord struct {
	VendorItemID string                 `json:"vendor_item_id,omitempty"`
	Title        string                 `json:"title"`
	Sequence     int                    `json:"sequence"`
	Attachments  []Attachment           `json:"attachments"`
	MatterID     string                 `json:"matter_id,omitempty"`
	MatterFile   string                 `json:"matter_file,omitempty"`
	MatterType   string                 `json:"matter_type,omitempty"`
	AgendaNumber string                 `json:"agenda_number,omitempty"`
	Sponsors     []string               `json:"sponsors,omitempty"`
	Action       string                 `json:"action,omitempty"`
	VoteOutcome  string                 `json:"vote_outcome,omitempty"`
	VoteTally    map[string]int         `json:"vote_tally,omitempty"`
	Votes        []VoteRecord           `json:"votes,omitempty"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
}

// MeetingRecord is a normalized meeting from a vendor adapter.
// VendorID, Title, and Start are the minimum schema; at least one of
// AgendaURL or PacketURL must be present for the meeting to be processable.
type MeetingRecord struct {
	VendorID      string                 `json:"vendor_id"`
	Title         string                 `json:"title"`
	Start         string                 `json:"start"` // ISO 8601; empty = date TBD
	AgendaURL     string                 `json:"agenda_url,omitempty"`
	PacketURL     string                 `json:"packet_url,omitempty"`
	Items         []ItemRecord           `json:"items,omitempty"`
	Participation *Participation         `json:"participation,omitempty"`
	MeetingStatus string                 `json:"meeting_status,omitempty"` // cancelled|postponed|deferred|revised|rescheduled
	VendorBodyID  string                 `json:"vendor_body_id,omitempty"`
	VendorBody    string                 `json:"vendor_body,omitempty"`
	Metadata      map[string]interface{} `json:"metadata,omitempty"`
}

// FetchResult is what an adapter returns. Success distinguishes "adapter
// failed" from "zero meetings": an empty Meetings slice with Success=true is a
// legitimate quiet period.
type FetchResult struct {
	Success   bool            `json:"success"`
	Meetings  []MeetingRecord `json:"meetings"`
	Error     string          `json:"error,omitempty"`
	ErrorType string          `json:"error_type,omitempty"`
}
