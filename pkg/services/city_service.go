// Package services holds the narrow repositories between the pipeline and the
// database. Each service exposes only the operations its callers need.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Engagic/engagic-sub004/ent"
	"github.com/Engagic/engagic-sub004/ent/city"
	"github.com/Engagic/engagic-sub004/pkg/config"
)

// CityService manages the city registry rows.
type CityService struct {
	client *ent.Client
}

// NewCityService creates a new CityService.
func NewCityService(client *ent.Client) *CityService {
	return &CityService{client: client}
}

// SyncRegistry upserts the yaml city registry into the database. Rows absent
// from the registry are left alone: cities may also be managed directly in
// the database.
func (s *CityService) SyncRegistry(ctx context.Context, cities []config.CityConfig) error {
	for _, c := range cities {
		existing, err := s.client.City.Query().Where(city.IDEQ(c.Banana)).Only(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return fmt.Errorf("failed to look up city %s: %w", c.Banana, err)
		}

		if existing == nil {
			create := s.client.City.Create().
				SetID(c.Banana).
				SetName(c.Name).
				SetState(c.State).
				SetVendor(c.Vendor).
				SetVendorSlug(c.VendorSlug).
				SetTimezone(c.Timezone).
				SetStatus(city.Status(c.Status))
			if c.County != "" {
				create.SetCounty(c.County)
			}
			if c.Population != nil {
				create.SetPopulation(*c.Population)
			}
			if err := create.Exec(ctx); err != nil {
				return fmt.Errorf("failed to create city %s: %w", c.Banana, err)
			}
			continue
		}

		update := existing.Update().
			SetName(c.Name).
			SetVendor(c.Vendor).
			SetVendorSlug(c.VendorSlug).
			SetTimezone(c.Timezone).
			SetStatus(city.Status(c.Status))
		if c.County != "" {
			update.SetCounty(c.County)
		}
		if c.Population != nil {
			update.SetPopulation(*c.Population)
		}
		if err := update.Exec(ctx); err != nil {
			return fmt.Errorf("failed to update city %s: %w", c.Banana, err)
		}
	}
	return nil
}

// ListActive returns all active cities ordered by banana.
func (s *CityService) ListActive(ctx context.Context) ([]*ent.City, error) {
	cities, err := s.client.City.Query().
		Where(city.StatusEQ(city.StatusActive)).
		Order(ent.Asc(city.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active cities: %w", err)
	}
	return cities, nil
}

// ListAll returns every city regardless of status.
func (s *CityService) ListAll(ctx context.Context) ([]*ent.City, error) {
	cities, err := s.client.City.Query().Order(ent.Asc(city.FieldID)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}
	return cities, nil
}

// Get returns one city by banana.
func (s *CityService) Get(ctx context.Context, banana string) (*ent.City, error) {
	c, err := s.client.City.Get(ctx, banana)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get city %s: %w", banana, err)
	}
	return c, nil
}

// RecordSyncResult stamps the outcome of one sync cycle: success resets the
// consecutive error counter, failure increments it.
func (s *CityService) RecordSyncResult(ctx context.Context, banana string, ok bool) error {
	update := s.client.City.UpdateOneID(banana)
	if ok {
		update.SetSyncErrorCount(0).SetLastSyncedAt(time.Now())
	} else {
		update.AddSyncErrorCount(1)
	}
	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to record sync result for %s: %w", banana, err)
	}
	return nil
}
