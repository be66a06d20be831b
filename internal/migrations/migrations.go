package migrations

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Migration struct {
	ID    string
	UpSQL string
}

var allMigrations = []Migration{
	{
		ID: "20250301090000_create_items",
		UpSQL: `
		CREATE TABLE items (
			id BIGSERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			summary TEXT,
			url TEXT,
			source TEXT,
			category TEXT,
			city TEXT,
			published_at TIMESTAMPTZ,
			fetched_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			importance DOUBLE PRECISION NOT NULL DEFAULT 0,
			is_official BOOLEAN NOT NULL DEFAULT FALSE
		);
		CREATE INDEX items_rank_idx ON items (importance DESC, published_at DESC NULLS LAST);
		CREATE INDEX items_city_idx ON items (city);
		CREATE INDEX items_category_idx ON items (category);`,
	},
	{
		ID: "20250301090100_create_comments",
		UpSQL: `
		CREATE TABLE comments (
			id BIGSERIAL PRIMARY KEY,
			item_id BIGINT NOT NULL REFERENCES items(id) ON DELETE CASCADE,
			author TEXT,
			body TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX comments_item_idx ON comments (item_id);`,
	},
	{
		ID: "20250315120000_create_marketplace",
		UpSQL: `
		CREATE TABLE listings (
			id BIGSERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT,
			price DOUBLE PRECISION NOT NULL DEFAULT 0 CONSTRAINT listings_price_check CHECK (price >= 0),
			category TEXT,
			city TEXT,
			contact TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			is_active BOOLEAN NOT NULL DEFAULT TRUE
		);
		CREATE INDEX listings_city_idx ON listings (city, is_active);`,
	},
	{
		ID: "20250315120100_create_community_events",
		UpSQL: `
		CREATE TABLE community_events (
			id BIGSERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT,
			venue TEXT,
			city TEXT,
			starts_at TIMESTAMPTZ NOT NULL,
			ends_at TIMESTAMPTZ,
			host_contact TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			is_approved BOOLEAN NOT NULL DEFAULT FALSE
		);
		CREATE INDEX community_events_starts_idx ON community_events (starts_at);
		CREATE TABLE rsvps (
			id BIGSERIAL PRIMARY KEY,
			event_id BIGINT NOT NULL REFERENCES community_events(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			email TEXT,
			count INTEGER NOT NULL DEFAULT 1 CONSTRAINT rsvps_count_check CHECK (count >= 1),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX rsvps_event_idx ON rsvps (event_id);`,
	},
	{
		ID: "20250402100000_create_directory",
		UpSQL: `
		CREATE TABLE persons (
			id BIGSERIAL PRIMARY KEY,
			full_name TEXT NOT NULL,
			party TEXT,
			website TEXT,
			email TEXT,
			phone TEXT,
			photo_url TEXT,
			bio TEXT
		);
		CREATE INDEX persons_name_idx ON persons (full_name);
		CREATE TABLE offices (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			jurisdiction TEXT NOT NULL,
			level TEXT NOT NULL,
			district TEXT
		);
		CREATE INDEX offices_jurisdiction_idx ON offices (jurisdiction, level);
		CREATE TABLE terms (
			id BIGSERIAL PRIMARY KEY,
			person_id BIGINT NOT NULL REFERENCES persons(id) ON DELETE CASCADE,
			office_id BIGINT NOT NULL REFERENCES offices(id) ON DELETE CASCADE,
			start_date TIMESTAMPTZ,
			end_date TIMESTAMPTZ,
			is_incumbent BOOLEAN NOT NULL DEFAULT FALSE
		);
		CREATE INDEX terms_incumbent_idx ON terms (is_incumbent);
		CREATE TABLE actions (
			id BIGSERIAL PRIMARY KEY,
			person_id BIGINT NOT NULL REFERENCES persons(id) ON DELETE CASCADE,
			title TEXT NOT NULL,
			description TEXT,
			date TIMESTAMPTZ,
			category TEXT,
			outcome TEXT,
			sentiment TEXT,
			source_url TEXT
		);
		CREATE INDEX actions_person_idx ON actions (person_id);
		CREATE TABLE positions (
			id BIGSERIAL PRIMARY KEY,
			person_id BIGINT NOT NULL REFERENCES persons(id) ON DELETE CASCADE,
			topic TEXT NOT NULL,
			stance TEXT,
			source_url TEXT,
			date TIMESTAMPTZ
		);
		CREATE INDEX positions_person_idx ON positions (person_id);`,
	},
	{
		ID: "20250402100100_create_elections",
		UpSQL: `
		CREATE TABLE races (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			election_date TIMESTAMPTZ,
			jurisdiction TEXT NOT NULL,
			level TEXT NOT NULL,
			office_id BIGINT REFERENCES offices(id) ON DELETE SET NULL,
			is_active BOOLEAN NOT NULL DEFAULT TRUE
		);
		CREATE INDEX races_filter_idx ON races (is_active, jurisdiction, level);
		CREATE TABLE candidacies (
			id BIGSERIAL PRIMARY KEY,
			person_id BIGINT NOT NULL REFERENCES persons(id) ON DELETE CASCADE,
			race_id BIGINT NOT NULL REFERENCES races(id) ON DELETE CASCADE,
			party TEXT,
			platform TEXT,
			website TEXT,
			filed_date TIMESTAMPTZ,
			status TEXT
		);
		CREATE INDEX candidacies_race_idx ON candidacies (race_id);`,
	},
}

// Pending возвращает миграции, отсутствующие в applied, в порядке ID.
func Pending(applied map[string]bool) []Migration {
	sorted := make([]Migration, len(allMigrations))
	copy(sorted, allMigrations)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})
	pending := make([]Migration, 0, len(sorted))
	for _, m := range sorted {
		if !applied[m.ID] {
			pending = append(pending, m)
		}
	}
	return pending
}

// Apply применяет все необходимые миграции к базе данных в одной транзакции.
func Apply(ctx context.Context, log *slog.Logger, pool *pgxpool.Pool) error {
	log = log.With(slog.String("component", "migrations"))
	log.Info("Starting database migrations check...")
	_, err := pool.Exec(ctx, `
	CREATE TABLE IF NOT EXISTS schema_migrations (
	id TEXT PRIMARY KEY,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}
	rows, err := pool.Query(ctx, "SELECT id FROM schema_migrations")
	if err != nil {
		return fmt.Errorf("failed to query applied migrations: %w", err)
	}
	appliedMigrations := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan migration id: %w", err)
		}
		appliedMigrations[id] = true
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read applied migrations: %w", err)
	}
	pending := Pending(appliedMigrations)
	if len(pending) == 0 {
		log.Info("Database is up to date, no new migrations found.")
		return nil
	}
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)
	for _, m := range pending {
		log.Info("Applying migration", slog.String("id", m.ID))
		if _, err := tx.Exec(ctx, m.UpSQL); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", m.ID, err)
		}
		if _, err := tx.Exec(ctx, "INSERT INTO schema_migrations (id) VALUES ($1)", m.ID); err != nil {
			return fmt.Errorf("failed to record migration %s: %w", m.ID, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit migrations transaction: %w", err)
	}
	log.Info("Database migrations applied successfully", slog.Int("count", len(pending)))
	return nil
}
