package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Engagic/engagic-sub004/ent"
	"github.com/Engagic/engagic-sub004/ent/councilmember"
	"github.com/Engagic/engagic-sub004/pkg/models"
)

// CouncilService manages council member rows and their denormalized
// sponsorship and vote counters.
type CouncilService struct {
	client *ent.Client
}

// NewCouncilService creates a new CouncilService.
func NewCouncilService(client *ent.Client) *CouncilService {
	return &CouncilService{client: client}
}

// EnsureMember creates the member on first sight and refreshes last_seen
// otherwise. Member identity is the normalized name within a city; vendors
// spell the same person several ways ("Smith", "Council Member Smith"), so
// callers should pass the cleanest form they have.
func (s *CouncilService) EnsureMember(ctx context.Context, banana, name string) (*ent.CouncilMember, error) {
	normalized := models.NormalizeTitle(name)
	if normalized == "" {
		return nil, NewValidationError("name", "required")
	}
	id := models.CouncilMemberID(banana, name)

	m, err := s.client.CouncilMember.Create().
		SetID(id).
		SetBanana(banana).
		SetName(name).
		SetNormalizedName(normalized).
		Save(ctx)
	if err == nil {
		return m, nil
	}
	if !ent.IsConstraintError(err) {
		return nil, fmt.Errorf("failed to create council member %s: %w", name, err)
	}

	m, err = s.client.CouncilMember.UpdateOneID(id).
		SetLastSeen(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh council member %s: %w", name, err)
	}
	return m, nil
}

// RecordSponsorships ensures a member row per sponsor and bumps their
// sponsorship counters. Returns the member ids in sponsor order.
func (s *CouncilService) RecordSponsorships(ctx context.Context, banana string, sponsors []string) ([]string, error) {
	ids := make([]string, 0, len(sponsors))
	for _, name := range sponsors {
		m, err := s.EnsureMember(ctx, banana, name)
		if err != nil {
			return nil, err
		}
		if err := s.client.CouncilMember.UpdateOneID(m.ID).AddSponsorshipCount(1).Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to bump sponsorship count for %s: %w", m.ID, err)
		}
		ids = append(ids, m.ID)
	}
	return ids, nil
}

// AddVoteCount bumps a member's denormalized vote counter.
func (s *CouncilService) AddVoteCount(ctx context.Context, memberID string, delta int) error {
	if err := s.client.CouncilMember.UpdateOneID(memberID).AddVoteCount(delta).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to bump vote count for %s: %w", memberID, err)
	}
	return nil
}

// ListByCity returns a city's council members ordered by name.
func (s *CouncilService) ListByCity(ctx context.Context, banana string) ([]*ent.CouncilMember, error) {
	members, err := s.client.CouncilMember.Query().
		Where(councilmember.BananaEQ(banana)).
		Order(ent.Asc(councilmember.FieldNormalizedName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list council members for %s: %w", banana, err)
	}
	return members, nil
}
