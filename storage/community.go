package storage

import (
	"context"

	"github.com/jackc/pgx/v5"

	"civicpulse/internal/domain"
)

const listingColumns = `id, title, description, price, category, city, contact, is_active, created_at`

func scanListing(row scanner) (domain.Listing, error) {
	var l domain.Listing
	err := row.Scan(
		&l.ID,
		&l.Title,
		&l.Description,
		&l.Price,
		&l.Category,
		&l.City,
		&l.Contact,
		&l.IsActive,
		&l.CreatedAt,
	)
	return l, err
}

func (db *PostgresDB) CreateListing(ctx context.Context, l domain.Listing) (domain.Listing, error) {
	const op = "storage.postgres.CreateListing"
	query := `
	INSERT INTO listings (title, description, price, category, city, contact, is_active)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING ` + listingColumns
	saved, err := scanListing(db.pool.QueryRow(ctx, query,
		l.Title, l.Description, l.Price, l.Category, l.City, l.Contact, l.IsActive))
	if err != nil {
		return domain.Listing{}, db.wrapError(op, err)
	}
	return saved, nil
}

func (db *PostgresDB) ListListings(ctx context.Context, f domain.ListingFilter) ([]domain.Listing, error) {
	const op = "storage.postgres.ListListings"
	query := `
	SELECT ` + listingColumns + `
	FROM listings
	WHERE ($1::boolean IS NULL OR is_active = $1)
	  AND ($2::text = '' OR city = $2)
	  AND ($3::text = '' OR category = $3)
	ORDER BY created_at DESC, id DESC
	LIMIT $4;
	`
	rows, err := db.pool.Query(ctx, query, f.Active, f.City, f.Category, limitArg(f.Limit))
	if err != nil {
		return nil, db.wrapError(op, err)
	}
	listings, err := collect(rows, scanListing)
	if err != nil {
		return nil, db.wrapError(op, err)
	}
	return listings, nil
}

const eventColumns = `id, title, description, venue, city, starts_at, ends_at, host_contact, is_approved, created_at`

func scanEvent(row scanner) (domain.CommunityEvent, error) {
	var e domain.CommunityEvent
	err := row.Scan(
		&e.ID,
		&e.Title,
		&e.Description,
		&e.Venue,
		&e.City,
		&e.StartsAt,
		&e.EndsAt,
		&e.HostContact,
		&e.IsApproved,
		&e.CreatedAt,
	)
	return e, err
}

func (db *PostgresDB) CreateEvent(ctx context.Context, e domain.CommunityEvent) (domain.CommunityEvent, error) {
	const op = "storage.postgres.CreateEvent"
	query := `
	INSERT INTO community_events (title, description, venue, city, starts_at, ends_at, host_contact, is_approved)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING ` + eventColumns
	saved, err := scanEvent(db.pool.QueryRow(ctx, query,
		e.Title, e.Description, e.Venue, e.City, e.StartsAt, e.EndsAt, e.HostContact, e.IsApproved))
	if err != nil {
		return domain.CommunityEvent{}, db.wrapError(op, err)
	}
	return saved, nil
}

func (db *PostgresDB) GetEvent(ctx context.Context, id int64) (domain.CommunityEvent, error) {
	const op = "storage.postgres.GetEvent"
	e, err := scanEvent(db.pool.QueryRow(ctx, `SELECT `+eventColumns+` FROM community_events WHERE id = $1`, id))
	if err != nil {
		return domain.CommunityEvent{}, db.wrapError(op, err)
	}
	return e, nil
}

func (db *PostgresDB) ApproveEvent(ctx context.Context, id int64) error {
	const op = "storage.postgres.ApproveEvent"
	tag, err := db.pool.Exec(ctx, `UPDATE community_events SET is_approved = TRUE WHERE id = $1`, id)
	if err != nil {
		return db.wrapError(op, err)
	}
	if tag.RowsAffected() == 0 {
		return db.wrapError(op, pgx.ErrNoRows)
	}
	return nil
}

// ListEvents выдает только одобренные события в порядке начала.
func (db *PostgresDB) ListEvents(ctx context.Context, f domain.EventFilter) ([]domain.CommunityEvent, error) {
	const op = "storage.postgres.ListEvents"
	query := `
	SELECT ` + eventColumns + `
	FROM community_events
	WHERE is_approved
	  AND ($1::text = '' OR city = $1)
	  AND ($2::timestamptz IS NULL OR starts_at >= $2)
	ORDER BY starts_at ASC, id
	LIMIT $3;
	`
	rows, err := db.pool.Query(ctx, query, f.City, f.StartsAfter, limitArg(f.Limit))
	if err != nil {
		return nil, db.wrapError(op, err)
	}
	events, err := collect(rows, scanEvent)
	if err != nil {
		return nil, db.wrapError(op, err)
	}
	return events, nil
}

func scanRSVP(row scanner) (domain.RSVP, error) {
	var r domain.RSVP
	err := row.Scan(&r.ID, &r.EventID, &r.Name, &r.Email, &r.Count, &r.CreatedAt)
	return r, err
}

func (db *PostgresDB) CreateRSVP(ctx context.Context, r domain.RSVP) (domain.RSVP, error) {
	const op = "storage.postgres.CreateRSVP"
	query := `
	INSERT INTO rsvps (event_id, name, email, count)
	VALUES ($1, $2, $3, $4)
	RETURNING id, event_id, name, email, count, created_at;
	`
	saved, err := scanRSVP(db.pool.QueryRow(ctx, query, r.EventID, r.Name, r.Email, r.Count))
	if err != nil {
		return domain.RSVP{}, db.wrapError(op, err)
	}
	return saved, nil
}

func (db *PostgresDB) ListRSVPs(ctx context.Context, eventID int64) ([]domain.RSVP, error) {
	const op = "storage.postgres.ListRSVPs"
	query := `
	SELECT id, event_id, name, email, count, created_at
	FROM rsvps
	WHERE event_id = $1
	ORDER BY created_at DESC, id DESC;
	`
	rows, err := db.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, db.wrapError(op, err)
	}
	rsvps, err := collect(rows, scanRSVP)
	if err != nil {
		return nil, db.wrapError(op, err)
	}
	return rsvps, nil
}
