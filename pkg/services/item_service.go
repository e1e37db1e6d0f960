package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Engagic/engagic-sub004/ent"
	"github.com/Engagic/engagic-sub004/ent/agendaitem"
	"github.com/Engagic/engagic-sub004/pkg/models"
)

// ItemService manages agenda item rows.
type ItemService struct {
	client *ent.Client
}

// NewItemService creates a new ItemService.
func NewItemService(client *ent.Client) *ItemService {
	return &ItemService{client: client}
}

// UpsertForMeeting creates or refreshes the item rows for one meeting, in
// adapter order. Item ids hash the sequence and title, so a retitled or
// reordered item becomes a new row while stable items update in place.
func (s *ItemService) UpsertForMeeting(ctx context.Context, meetingID string, records []models.ItemRecord) ([]*ent.AgendaItem, error) {
	out := make([]*ent.AgendaItem, 0, len(records))
	for _, rec := range records {
		item, err := s.upsertOne(ctx, meetingID, rec)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *ItemService) upsertOne(ctx context.Context, meetingID string, rec models.ItemRecord) (*ent.AgendaItem, error) {
	id := models.ItemID(meetingID, rec.Sequence, rec.Title)
	hash := models.AttachmentHash(rec.Attachments)

	existing, err := s.client.AgendaItem.Query().Where(agendaitem.IDEQ(id)).Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to look up item %s: %w", id, err)
	}

	if existing == nil {
		create := s.client.AgendaItem.Create().
			SetID(id).
			SetMeetingID(meetingID).
			SetTitle(rec.Title).
			SetSequence(rec.Sequence)
		applyItemRecord(create.Mutation(), rec, hash)

		item, err := create.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create item %s: %w", id, err)
		}
		return item, nil
	}

	update := existing.Update()
	applyItemRecord(update.Mutation(), rec, hash)
	item, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update item %s: %w", id, err)
	}
	return item, nil
}

func applyItemRecord(m *ent.AgendaItemMutation, rec models.ItemRecord, hash string) {
	if len(rec.Attachments) > 0 {
		m.SetAttachments(rec.Attachments)
	}
	if hash != "" {
		m.SetAttachmentHash(hash)
	}
	if rec.MatterFile != "" {
		m.SetMatterFile(rec.MatterFile)
	}
	if rec.MatterType != "" {
		m.SetMatterType(rec.MatterType)
	}
	if rec.AgendaNumber != "" {
		m.SetAgendaNumber(rec.AgendaNumber)
	}
	if len(rec.Sponsors) > 0 {
		m.SetSponsors(rec.Sponsors)
	}
}

// LinkMatter sets the item's weak matter reference.
func (s *ItemService) LinkMatter(ctx context.Context, itemID, matterID string) error {
	err := s.client.AgendaItem.UpdateOneID(itemID).SetMatterID(matterID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to link item %s to matter %s: %w", itemID, matterID, err)
	}
	return nil
}

// SetSummary records a summarization result on one item.
func (s *ItemService) SetSummary(ctx context.Context, itemID, summary string, topics []string, method string) error {
	err := s.client.AgendaItem.UpdateOneID(itemID).
		SetSummary(summary).
		SetTopics(topics).
		SetProcessingMethod(method).
		SetSummarizedAt(time.Now()).
		ClearExtractionError().
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set summary on item %s: %w", itemID, err)
	}
	return nil
}

// MarkSkipped records why an item was skipped without LLM work, e.g.
// no_attachments.
func (s *ItemService) MarkSkipped(ctx context.Context, itemID, method string) error {
	err := s.client.AgendaItem.UpdateOneID(itemID).
		SetProcessingMethod(method).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark item %s skipped: %w", itemID, err)
	}
	return nil
}

// SetExtractionError records a per-item extraction failure. The item stays
// summarizable on a later attempt.
func (s *ItemService) SetExtractionError(ctx context.Context, itemID, msg string) error {
	err := s.client.AgendaItem.UpdateOneID(itemID).
		SetExtractionError(msg).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set extraction error on item %s: %w", itemID, err)
	}
	return nil
}

// ListForMeeting returns all items of one meeting ordered by sequence.
func (s *ItemService) ListForMeeting(ctx context.Context, meetingID string) ([]*ent.AgendaItem, error) {
	items, err := s.client.AgendaItem.Query().
		Where(agendaitem.MeetingIDEQ(meetingID)).
		Order(ent.Asc(agendaitem.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list items for meeting %s: %w", meetingID, err)
	}
	return items, nil
}
