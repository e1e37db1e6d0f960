package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Engagic/engagic-sub004/ent"
	"github.com/Engagic/engagic-sub004/ent/agendaitem"
	"github.com/Engagic/engagic-sub004/ent/meeting"
	"github.com/Engagic/engagic-sub004/pkg/models"
)

// MeetingService manages meeting rows.
type MeetingService struct {
	client *ent.Client
}

// NewMeetingService creates a new MeetingService.
func NewMeetingService(client *ent.Client) *MeetingService {
	return &MeetingService{client: client}
}

// Upsert creates or refreshes the meeting row for one adapter record. The
// canonical id makes re-syncs idempotent: a second run updates the mutable
// attributes in place.
func (s *MeetingService) Upsert(ctx context.Context, banana string, rec models.MeetingRecord) (*ent.Meeting, error) {
	id := models.MeetingID(banana, rec.VendorID)

	start, err := models.ParseStart(rec.Start)
	if err != nil {
		return nil, NewValidationError("start", err.Error())
	}
	fingerprint := models.MeetingFingerprint(rec.Items)

	existing, err := s.client.Meeting.Query().Where(meeting.IDEQ(id)).Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to look up meeting %s: %w", id, err)
	}

	if existing == nil {
		create := s.client.Meeting.Create().
			SetID(id).
			SetBanana(banana).
			SetVendorID(rec.VendorID).
			SetTitle(rec.Title)
		if !start.IsZero() {
			create.SetDate(start)
		}
		applyMeetingRecord(create.Mutation(), rec, fingerprint)

		m, err := create.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create meeting %s: %w", id, err)
		}
		return m, nil
	}

	update := existing.Update().SetTitle(rec.Title)
	if !start.IsZero() {
		update.SetDate(start)
	} else {
		update.ClearDate()
	}
	applyMeetingRecord(update.Mutation(), rec, fingerprint)

	m, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update meeting %s: %w", id, err)
	}
	return m, nil
}

// applyMeetingRecord sets the fields shared between create and update.
func applyMeetingRecord(m *ent.MeetingMutation, rec models.MeetingRecord, fingerprint string) {
	if rec.AgendaURL != "" {
		m.SetAgendaURL(rec.AgendaURL)
	}
	if rec.PacketURL != "" {
		m.SetPacketURL(rec.PacketURL)
	}
	if rec.Participation != nil {
		m.SetParticipation(rec.Participation)
	}
	if rec.MeetingStatus != "" {
		m.SetStatus(meeting.Status(rec.MeetingStatus))
	}
	if fingerprint != "" {
		m.SetAttachmentFingerprint(fingerprint)
	}
	if len(rec.Metadata) > 0 {
		m.SetMetadata(rec.Metadata)
	}
}

// SetCommittee links a meeting to its committee.
func (s *MeetingService) SetCommittee(ctx context.Context, meetingID, committeeID string) error {
	err := s.client.Meeting.UpdateOneID(meetingID).SetCommitteeID(committeeID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set committee on meeting %s: %w", meetingID, err)
	}
	return nil
}

// Get returns one meeting by canonical id.
func (s *MeetingService) Get(ctx context.Context, id string) (*ent.Meeting, error) {
	m, err := s.client.Meeting.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get meeting %s: %w", id, err)
	}
	return m, nil
}

// GetDetail returns a meeting with its items ordered by sequence.
func (s *MeetingService) GetDetail(ctx context.Context, id string) (*ent.Meeting, error) {
	m, err := s.client.Meeting.Query().
		Where(meeting.IDEQ(id)).
		WithItems(func(q *ent.AgendaItemQuery) {
			q.Order(ent.Asc(agendaitem.FieldSequence))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get meeting %s: %w", id, err)
	}
	return m, nil
}

// ListByCity returns meetings for a city, newest first. Meetings with no date
// (TBD) sort last.
func (s *MeetingService) ListByCity(ctx context.Context, banana string, limit int) ([]*ent.Meeting, error) {
	q := s.client.Meeting.Query().
		Where(meeting.BananaEQ(banana)).
		Order(ent.Desc(meeting.FieldDate))
	if limit > 0 {
		q.Limit(limit)
	}
	meetings, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings for %s: %w", banana, err)
	}
	return meetings, nil
}

// MarkProcessing transitions a meeting into the processing state.
func (s *MeetingService) MarkProcessing(ctx context.Context, id string) error {
	err := s.client.Meeting.UpdateOneID(id).
		SetProcessingStatus(meeting.ProcessingStatusProcessing).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark meeting %s processing: %w", id, err)
	}
	return nil
}

// RecordProcessingOutcome finalizes one processing run. Topics are stored as
// the sorted union of child item topics; summary is set only on the
// monolithic path.
func (s *MeetingService) RecordProcessingOutcome(ctx context.Context, id string, ok bool, method, summary string, topics []string, elapsed time.Duration) error {
	status := meeting.ProcessingStatusCompleted
	if !ok {
		status = meeting.ProcessingStatusFailed
	}

	update := s.client.Meeting.UpdateOneID(id).
		SetProcessingStatus(status).
		SetProcessingTimeMs(int(elapsed.Milliseconds()))
	if method != "" {
		update.SetProcessingMethod(method)
	}
	if summary != "" {
		update.SetSummary(summary)
	}
	if len(topics) > 0 {
		sorted := append([]string(nil), topics...)
		sort.Strings(sorted)
		update.SetTopics(sorted)
	}

	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to record processing outcome for %s: %w", id, err)
	}
	return nil
}

// HasUnsummarizedItems reports whether any child item still lacks a summary.
// Items skipped for having no attachments do not count.
func (s *MeetingService) HasUnsummarizedItems(ctx context.Context, meetingID string) (bool, error) {
	n, err := s.client.AgendaItem.Query().
		Where(
			agendaitem.MeetingIDEQ(meetingID),
			agendaitem.SummaryIsNil(),
			agendaitem.ProcessingMethodNEQ("no_attachments"),
		).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count unsummarized items: %w", err)
	}
	return n > 0, nil
}
