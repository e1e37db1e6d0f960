package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Engagic/engagic-sub004/ent"
	"github.com/Engagic/engagic-sub004/ent/vote"
	"github.com/Engagic/engagic-sub004/pkg/models"
)

// VoteService persists per-member roll-call votes.
type VoteService struct {
	client  *ent.Client
	council *CouncilService
}

// NewVoteService creates a new VoteService.
func NewVoteService(client *ent.Client, council *CouncilService) *VoteService {
	return &VoteService{client: client, council: council}
}

// voteValues is the closed set adapters normalize into.
var voteValues = map[string]vote.Value{
	"yes":        vote.ValueYes,
	"no":         vote.ValueNo,
	"abstain":    vote.ValueAbstain,
	"absent":     vote.ValueAbsent,
	"present":    vote.ValuePresent,
	"recused":    vote.ValueRecused,
	"not_voting": vote.ValueNotVoting,
}

// RecordVotes stores one roll call for a matter at a meeting. Members are
// created on first sight; the (member, matter, meeting) uniqueness makes
// re-syncs idempotent, and the member's vote counter is bumped only for new
// rows. Returns the number of newly recorded votes.
func (s *VoteService) RecordVotes(ctx context.Context, banana, matterID, meetingID string, voteDate *time.Time, records []models.VoteRecord) (int, error) {
	recorded := 0
	for _, rec := range records {
		value, ok := voteValues[rec.Value]
		if !ok {
			return recorded, NewValidationError("value", fmt.Sprintf("unrecognized vote value %q", rec.Value))
		}

		member, err := s.council.EnsureMember(ctx, banana, rec.MemberName)
		if err != nil {
			return recorded, err
		}

		create := s.client.Vote.Create().
			SetID(uuid.New().String()).
			SetMemberID(member.ID).
			SetMatterID(matterID).
			SetMeetingID(meetingID).
			SetValue(value)
		if voteDate != nil {
			create.SetVoteDate(*voteDate)
		}
		if rec.Sequence != 0 {
			create.SetSequence(rec.Sequence)
		}

		if err := create.Exec(ctx); err != nil {
			if ent.IsConstraintError(err) {
				continue // already recorded by an earlier sync
			}
			return recorded, fmt.Errorf("failed to record vote for %s: %w", rec.MemberName, err)
		}

		if err := s.council.AddVoteCount(ctx, member.ID, 1); err != nil {
			return recorded, err
		}
		recorded++
	}
	return recorded, nil
}

// ListForMatter returns a matter's votes in roll-call order.
func (s *VoteService) ListForMatter(ctx context.Context, matterID string) ([]*ent.Vote, error) {
	votes, err := s.client.Vote.Query().
		Where(vote.MatterIDEQ(matterID)).
		Order(ent.Asc(vote.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list votes for matter %s: %w", matterID, err)
	}
	return votes, nil
}
