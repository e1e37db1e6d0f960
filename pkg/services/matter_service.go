package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Engagic/engagic-sub004/ent"
	"github.com/Engagic/engagic-sub004/ent/matter"
	"github.com/Engagic/engagic-sub004/ent/matterappearance"
	"github.com/Engagic/engagic-sub004/pkg/models"
)

// MatterService manages canonical legislative items and their appearances.
type MatterService struct {
	client *ent.Client
}

// NewMatterService creates a new MatterService.
func NewMatterService(client *ent.Client) *MatterService {
	return &MatterService{client: client}
}

// UpsertAppearance records one (matter, meeting, item) occurrence. The matter
// is created on first sight via insert-then-merge: a losing racer loads the
// winner's row and merges into it, so concurrent workers converge on a single
// matter. appearance_count is incremented only when the appearance triple is
// new, which keeps re-syncs idempotent. Callers serialize appearances within
// one meeting. The second return value reports whether the appearance was
// newly created.
func (s *MatterService) UpsertAppearance(ctx context.Context, banana, meetingID string, item *ent.AgendaItem, rec models.ItemRecord, meetingDate *time.Time) (*ent.Matter, bool, error) {
	key, _ := models.MatterKey(rec)
	matterID := models.MatterID(banana, key)

	m, err := s.mergeMatter(ctx, matterID, banana, rec)
	if err != nil {
		return nil, false, err
	}

	created, err := s.ensureAppearance(ctx, m.ID, meetingID, item.ID, rec, meetingDate)
	if err != nil {
		return nil, false, err
	}
	if created {
		if err := s.client.Matter.UpdateOneID(m.ID).AddAppearanceCount(1).Exec(ctx); err != nil {
			return nil, false, fmt.Errorf("failed to bump appearance count on %s: %w", m.ID, err)
		}
	}

	if err := s.reconcileStatus(ctx, m.ID, rec.VoteOutcome, meetingDate); err != nil {
		return nil, false, err
	}

	// Reload so the caller sees the merged counters.
	m, err = s.client.Matter.Get(ctx, m.ID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to reload matter %s: %w", m.ID, err)
	}
	return m, created, nil
}

// mergeMatter creates the matter or merges the record into the existing row.
func (s *MatterService) mergeMatter(ctx context.Context, matterID, banana string, rec models.ItemRecord) (*ent.Matter, error) {
	create := s.client.Matter.Create().
		SetID(matterID).
		SetBanana(banana).
		SetTitle(rec.Title)
	if rec.MatterFile != "" {
		create.SetMatterFile(rec.MatterFile)
	}
	if rec.MatterType != "" {
		create.SetMatterType(rec.MatterType)
	}
	if len(rec.Sponsors) > 0 {
		create.SetSponsors(rec.Sponsors)
	}
	if len(rec.Attachments) > 0 {
		create.SetAttachments(rec.Attachments)
	}
	if len(rec.Metadata) > 0 {
		create.SetMetadata(rec.Metadata)
	}

	m, err := create.Save(ctx)
	if err == nil {
		return m, nil
	}
	if !ent.IsConstraintError(err) {
		return nil, fmt.Errorf("failed to create matter %s: %w", matterID, err)
	}

	// Lost the insert race or the matter already existed: merge.
	update := s.client.Matter.UpdateOneID(matterID).
		SetTitle(rec.Title).
		SetLastSeen(time.Now())
	if rec.MatterFile != "" {
		update.SetMatterFile(rec.MatterFile)
	}
	if rec.MatterType != "" {
		update.SetMatterType(rec.MatterType)
	}
	if len(rec.Sponsors) > 0 {
		update.SetSponsors(rec.Sponsors)
	}
	if len(rec.Attachments) > 0 {
		update.SetAttachments(rec.Attachments)
	}

	m, err = update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to merge matter %s: %w", matterID, err)
	}
	return m, nil
}

// ensureAppearance creates the (matter, meeting, item) row if it does not
// exist. Returns true when a new row was created.
func (s *MatterService) ensureAppearance(ctx context.Context, matterID, meetingID, itemID string, rec models.ItemRecord, meetingDate *time.Time) (bool, error) {
	create := s.client.MatterAppearance.Create().
		SetID(uuid.New().String()).
		SetMatterID(matterID).
		SetMeetingID(meetingID).
		SetItemID(itemID).
		SetSequence(rec.Sequence)
	if meetingDate != nil {
		create.SetAppearedAt(*meetingDate)
	}
	if rec.Action != "" {
		create.SetAction(rec.Action)
	}
	if rec.VoteOutcome != "" {
		create.SetVoteOutcome(matterappearance.VoteOutcome(rec.VoteOutcome))
	}
	if len(rec.VoteTally) > 0 {
		create.SetVoteTally(rec.VoteTally)
	}

	err := create.Exec(ctx)
	if err == nil {
		return true, nil
	}
	if !ent.IsConstraintError(err) {
		return false, fmt.Errorf("failed to create appearance: %w", err)
	}

	// The triple exists from an earlier sync: refresh the vote fields, which
	// fill in once minutes are published.
	update := s.client.MatterAppearance.Update().
		Where(
			matterappearance.MatterIDEQ(matterID),
			matterappearance.MeetingIDEQ(meetingID),
			matterappearance.ItemIDEQ(itemID),
		)
	if rec.Action != "" {
		update.SetAction(rec.Action)
	}
	if rec.VoteOutcome != "" {
		update.SetVoteOutcome(matterappearance.VoteOutcome(rec.VoteOutcome))
	}
	if len(rec.VoteTally) > 0 {
		update.SetVoteTally(rec.VoteTally)
	}
	if _, err := update.Save(ctx); err != nil {
		return false, fmt.Errorf("failed to refresh appearance: %w", err)
	}
	return false, nil
}

// terminalOutcomes maps appearance vote outcomes to matter lifecycle states.
var terminalOutcomes = map[string]matter.Status{
	"passed":    matter.StatusPassed,
	"failed":    matter.StatusFailed,
	"tabled":    matter.StatusTabled,
	"withdrawn": matter.StatusWithdrawn,
	"referred":  matter.StatusReferred,
	"amended":   matter.StatusAmended,
}

// reconcileStatus advances the matter lifecycle from the latest appearance
// outcome. Passed and failed also stamp final_vote_date.
func (s *MatterService) reconcileStatus(ctx context.Context, matterID, outcome string, meetingDate *time.Time) error {
	status, ok := terminalOutcomes[outcome]
	if !ok {
		return nil
	}
	update := s.client.Matter.UpdateOneID(matterID).SetStatus(status)
	if (status == matter.StatusPassed || status == matter.StatusFailed) && meetingDate != nil {
		update.SetFinalVoteDate(*meetingDate)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to reconcile status of matter %s: %w", matterID, err)
	}
	return nil
}

// Get returns one matter by id.
func (s *MatterService) Get(ctx context.Context, id string) (*ent.Matter, error) {
	m, err := s.client.Matter.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get matter %s: %w", id, err)
	}
	return m, nil
}

// UpdateCanonical stores a freshly produced summary as the matter's canonical
// one, along with the attachment hash it was produced from.
func (s *MatterService) UpdateCanonical(ctx context.Context, matterID, summary string, topics []string, attachmentHash string) error {
	update := s.client.Matter.UpdateOneID(matterID).
		SetCanonicalSummary(summary).
		SetCanonicalTopics(topics).
		SetLastSeen(time.Now())
	if attachmentHash != "" {
		update.SetAttachmentHash(attachmentHash)
	}
	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update canonical summary of %s: %w", matterID, err)
	}
	return nil
}

// ListByCity returns a city's matters ordered by recency.
func (s *MatterService) ListByCity(ctx context.Context, banana string, limit int) ([]*ent.Matter, error) {
	q := s.client.Matter.Query().
		Where(matter.BananaEQ(banana)).
		Order(ent.Desc(matter.FieldLastSeen))
	if limit > 0 {
		q.Limit(limit)
	}
	matters, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list matters for %s: %w", banana, err)
	}
	return matters, nil
}

// PruneOrphans deletes matters whose appearance count dropped to zero.
// Returns the number deleted.
func (s *MatterService) PruneOrphans(ctx context.Context) (int, error) {
	n, err := s.client.Matter.Delete().
		Where(matter.AppearanceCountLTE(0)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune orphan matters: %w", err)
	}
	return n, nil
}
