package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// SearchService runs full-text queries over meeting and matter text using the
// GIN indexes created at migration time. It is a repository, not a search
// engine: plain websearch syntax, rank-ordered, capped result sets.
type SearchService struct {
	db *sql.DB
}

// NewSearchService creates a new SearchService over the shared pool.
func NewSearchService(db *sql.DB) *SearchService {
	return &SearchService{db: db}
}

// MeetingHit is one meeting search result.
type MeetingHit struct {
	MeetingID string  `json:"meeting_id"`
	Banana    string  `json:"banana"`
	Title     string  `json:"title"`
	Rank      float64 `json:"rank"`
}

// MatterHit is one matter search result.
type MatterHit struct {
	MatterID   string  `json:"matter_id"`
	Banana     string  `json:"banana"`
	MatterFile string  `json:"matter_file,omitempty"`
	Title      string  `json:"title"`
	Rank       float64 `json:"rank"`
}

const maxSearchResults = 50

// SearchMeetings finds meetings whose title matches the query. An empty
// banana searches all cities.
func (s *SearchService) SearchMeetings(ctx context.Context, banana, query string, limit int) ([]MeetingHit, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, NewValidationError("query", "required")
	}
	limit = clampLimit(limit)

	sqlText := `
		SELECT meeting_id, banana, title,
		       ts_rank(to_tsvector('english', title), websearch_to_tsquery('english', $1)) AS rank
		FROM meetings
		WHERE to_tsvector('english', title) @@ websearch_to_tsquery('english', $1)`
	args := []interface{}{query}
	if banana != "" {
		sqlText += ` AND banana = $2`
		args = append(args, banana)
	}
	sqlText += fmt.Sprintf(` ORDER BY rank DESC LIMIT %d`, limit)

	rows, err := s.db.QueryContext(ctx, sqlText, args...)
	if err != nil {
		return nil, fmt.Errorf("meeting search failed: %w", err)
	}
	defer rows.Close()

	var hits []MeetingHit
	for rows.Next() {
		var h MeetingHit
		if err := rows.Scan(&h.MeetingID, &h.Banana, &h.Title, &h.Rank); err != nil {
			return nil, fmt.Errorf("failed to scan meeting hit: %w", err)
		}
		hits = append(hits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("meeting search failed: %w", err)
	}
	return hits, nil
}

// SearchMatters finds matters whose title or canonical summary matches the
// query.
func (s *SearchService) SearchMatters(ctx context.Context, banana, query string, limit int) ([]MatterHit, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, NewValidationError("query", "required")
	}
	limit = clampLimit(limit)

	sqlText := `
		SELECT matter_id, banana, COALESCE(matter_file, ''), title,
		       ts_rank(to_tsvector('english', title || ' ' || COALESCE(canonical_summary, '')),
		               websearch_to_tsquery('english', $1)) AS rank
		FROM matters
		WHERE to_tsvector('english', title || ' ' || COALESCE(canonical_summary, ''))
		      @@ websearch_to_tsquery('english', $1)`
	args := []interface{}{query}
	if banana != "" {
		sqlText += ` AND banana = $2`
		args = append(args, banana)
	}
	sqlText += fmt.Sprintf(` ORDER BY rank DESC LIMIT %d`, limit)

	rows, err := s.db.QueryContext(ctx, sqlText, args...)
	if err != nil {
		return nil, fmt.Errorf("matter search failed: %w", err)
	}
	defer rows.Close()

	var hits []MatterHit
	for rows.Next() {
		var h MatterHit
		if err := rows.Scan(&h.MatterID, &h.Banana, &h.MatterFile, &h.Title, &h.Rank); err != nil {
			return nil, fmt.Errorf("failed to scan matter hit: %w", err)
		}
		hits = append(hits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("matter search failed: %w", err)
	}
	return hits, nil
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > maxSearchResults {
		return maxSearchResults
	}
	return limit
}
