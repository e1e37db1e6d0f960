package services

import (
	"context"
	"fmt"

	"github.com/Engagic/engagic-sub004/ent"
	"github.com/Engagic/engagic-sub004/ent/matterappearance"
)

// AppearanceService reads matter appearance history.
type AppearanceService struct {
	client *ent.Client
}

// NewAppearanceService creates a new AppearanceService.
func NewAppearanceService(client *ent.Client) *AppearanceService {
	return &AppearanceService{client: client}
}

// ListForMatter returns a matter's appearance history, most recent first.
func (s *AppearanceService) ListForMatter(ctx context.Context, matterID string) ([]*ent.MatterAppearance, error) {
	apps, err := s.client.MatterAppearance.Query().
		Where(matterappearance.MatterIDEQ(matterID)).
		Order(ent.Desc(matterappearance.FieldAppearedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list appearances for matter %s: %w", matterID, err)
	}
	return apps, nil
}

// ListForMeeting returns the appearances recorded at one meeting in agenda
// order.
func (s *AppearanceService) ListForMeeting(ctx context.Context, meetingID string) ([]*ent.MatterAppearance, error) {
	apps, err := s.client.MatterAppearance.Query().
		Where(matterappearance.MeetingIDEQ(meetingID)).
		Order(ent.Asc(matterappearance.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list appearances for meeting %s: %w", meetingID, err)
	}
	return apps, nil
}

// DeleteForMeeting removes a meeting's appearances and decrements the
// referenced matters' appearance counts. Used by the cascade path when a
// meeting is deleted; matters themselves survive until the maintenance sweep
// prunes zero-reference rows.
func (s *AppearanceService) DeleteForMeeting(ctx context.Context, meetingID string) (int, error) {
	apps, err := s.client.MatterAppearance.Query().
		Where(matterappearance.MeetingIDEQ(meetingID)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load appearances for meeting %s: %w", meetingID, err)
	}

	for _, app := range apps {
		if err := s.client.MatterAppearance.DeleteOneID(app.ID).Exec(ctx); err != nil {
			return 0, fmt.Errorf("failed to delete appearance %s: %w", app.ID, err)
		}
		if err := s.client.Matter.UpdateOneID(app.MatterID).AddAppearanceCount(-1).Exec(ctx); err != nil {
			return 0, fmt.Errorf("failed to decrement appearance count on %s: %w", app.MatterID, err)
		}
	}
	return len(apps), nil
}
