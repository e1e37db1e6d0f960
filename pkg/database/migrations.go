package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These back the search repository's queries over meeting and matter text.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_meetings_title_gin
		ON meetings USING gin(to_tsvector('english', title))`)
	if err != nil {
		return fmt.Errorf("failed to create meeting title GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_matters_text_gin
		ON matters USING gin(to_tsvector('english',
			title || ' ' || COALESCE(canonical_summary, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create matter text GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_agenda_items_text_gin
		ON agenda_items USING gin(to_tsvector('english',
			title || ' ' || COALESCE(summary, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create agenda item text GIN index: %w", err)
	}

	return nil
}
