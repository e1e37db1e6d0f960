package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Engagic/engagic-sub004/ent"
	"github.com/Engagic/engagic-sub004/ent/committee"
	"github.com/Engagic/engagic-sub004/ent/committeemembership"
	"github.com/Engagic/engagic-sub004/pkg/models"
)

// CommitteeService manages legislative bodies and their memberships.
type CommitteeService struct {
	client *ent.Client
}

// NewCommitteeService creates a new CommitteeService.
func NewCommitteeService(client *ent.Client) *CommitteeService {
	return &CommitteeService{client: client}
}

// Ensure creates the committee on first sight. The vendor body id is filled
// in whenever the vendor supplies one, since not every adapter does.
func (s *CommitteeService) Ensure(ctx context.Context, banana, name, vendorBodyID string) (*ent.Committee, error) {
	normalized := models.NormalizeTitle(name)
	if normalized == "" {
		return nil, NewValidationError("name", "required")
	}
	id := models.CommitteeID(banana, name)

	create := s.client.Committee.Create().
		SetID(id).
		SetBanana(banana).
		SetName(name).
		SetNormalizedName(normalized)
	if vendorBodyID != "" {
		create.SetVendorBodyID(vendorBodyID)
	}

	c, err := create.Save(ctx)
	if err == nil {
		return c, nil
	}
	if !ent.IsConstraintError(err) {
		return nil, fmt.Errorf("failed to create committee %s: %w", name, err)
	}

	c, err = s.client.Committee.Query().Where(committee.IDEQ(id)).Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load committee %s: %w", id, err)
	}
	if vendorBodyID != "" && c.VendorBodyID == "" {
		c, err = c.Update().SetVendorBodyID(vendorBodyID).Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to backfill vendor body id on %s: %w", id, err)
		}
	}
	return c, nil
}

// EnsureMembership records that a member sits on a committee. A returning
// member gets a fresh membership row only if the previous one was closed.
func (s *CommitteeService) EnsureMembership(ctx context.Context, committeeID, memberID, role string) error {
	create := s.client.CommitteeMembership.Create().
		SetID(uuid.New().String()).
		SetCommitteeID(committeeID).
		SetMemberID(memberID)
	if role != "" {
		create.SetRole(role)
	}

	err := create.Exec(ctx)
	if err == nil {
		return nil
	}
	if !ent.IsConstraintError(err) {
		return fmt.Errorf("failed to create membership: %w", err)
	}

	// Existing membership: reopen it if it was closed, refresh the role.
	update := s.client.CommitteeMembership.Update().
		Where(
			committeemembership.CommitteeIDEQ(committeeID),
			committeemembership.MemberIDEQ(memberID),
		).
		ClearLeftAt()
	if role != "" {
		update.SetRole(role)
	}
	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("failed to refresh membership: %w", err)
	}
	return nil
}

// CloseMembership stamps left_at on an active membership.
func (s *CommitteeService) CloseMembership(ctx context.Context, committeeID, memberID string) error {
	n, err := s.client.CommitteeMembership.Update().
		Where(
			committeemembership.CommitteeIDEQ(committeeID),
			committeemembership.MemberIDEQ(memberID),
			committeemembership.LeftAtIsNil(),
		).
		SetLeftAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to close membership: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByCity returns a city's committees ordered by name.
func (s *CommitteeService) ListByCity(ctx context.Context, banana string) ([]*ent.Committee, error) {
	committees, err := s.client.Committee.Query().
		Where(committee.BananaEQ(banana)).
		Order(ent.Asc(committee.FieldNormalizedName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list committees for %s: %w", banana, err)
	}
	return committees, nil
}
