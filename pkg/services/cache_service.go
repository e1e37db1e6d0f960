package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Engagic/engagic-sub004/ent"
	"github.com/Engagic/engagic-sub004/ent/processingcache"
)

// CacheService memoizes packet processing results across syncs, keyed by
// packet URL.
type CacheService struct {
	client *ent.Client
}

// NewCacheService creates a new CacheService.
func NewCacheService(client *ent.Client) *CacheService {
	return &CacheService{client: client}
}

// Lookup returns the cache entry for a packet URL, bumping its hit counter.
// Returns ErrNotFound on a miss.
func (s *CacheService) Lookup(ctx context.Context, packetURL string) (*ent.ProcessingCache, error) {
	entry, err := s.client.ProcessingCache.Query().
		Where(processingcache.PacketURLEQ(packetURL)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up processing cache: %w", err)
	}

	err = s.client.ProcessingCache.UpdateOneID(entry.ID).
		AddHitCount(1).
		SetLastAccessedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to bump cache hit count: %w", err)
	}
	return entry, nil
}

// Store records a completed processing run. An existing entry for the URL is
// refreshed in place.
func (s *CacheService) Store(ctx context.Context, packetURL, contentHash, method string, elapsed time.Duration) error {
	create := s.client.ProcessingCache.Create().
		SetPacketURL(packetURL).
		SetMethod(method).
		SetElapsedMs(int(elapsed.Milliseconds()))
	if contentHash != "" {
		create.SetContentHash(contentHash)
	}

	err := create.Exec(ctx)
	if err == nil {
		return nil
	}
	if !ent.IsConstraintError(err) {
		return fmt.Errorf("failed to store processing cache entry: %w", err)
	}

	update := s.client.ProcessingCache.Update().
		Where(processingcache.PacketURLEQ(packetURL)).
		SetMethod(method).
		SetElapsedMs(int(elapsed.Milliseconds())).
		SetLastAccessedAt(time.Now())
	if contentHash != "" {
		update.SetContentHash(contentHash)
	}
	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("failed to refresh processing cache entry: %w", err)
	}
	return nil
}

// EvictStale deletes entries not accessed since the cutoff. Returns the
// number evicted.
func (s *CacheService) EvictStale(ctx context.Context, notAccessedSince time.Time) (int, error) {
	n, err := s.client.ProcessingCache.Delete().
		Where(processingcache.LastAccessedAtLT(notAccessedSince)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to evict stale cache entries: %w", err)
	}
	return n, nil
}
