package storage

import (
	"context"

	"civicpulse/internal/domain"
)

const raceColumns = `id, name, election_date, jurisdiction, level, office_id, is_active`

func scanRace(row scanner) (domain.Race, error) {
	var r domain.Race
	err := row.Scan(&r.ID, &r.Name, &r.ElectionDate, &r.Jurisdiction, &r.Level, &r.OfficeID, &r.IsActive)
	return r, err
}

func (db *PostgresDB) CreateRace(ctx context.Context, r domain.Race) (domain.Race, error) {
	const op = "storage.postgres.CreateRace"
	query := `
	INSERT INTO races (name, election_date, jurisdiction, level, office_id, is_active)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING ` + raceColumns
	saved, err := scanRace(db.pool.QueryRow(ctx, query,
		r.Name, r.ElectionDate, r.Jurisdiction, r.Level, r.OfficeID, r.IsActive))
	if err != nil {
		return domain.Race{}, db.wrapError(op, err)
	}
	return saved, nil
}

// ListRaces сортирует по дате выборов, кампании без даты идут последними.
func (db *PostgresDB) ListRaces(ctx context.Context, f domain.RaceFilter) ([]domain.Race, error) {
	const op = "storage.postgres.ListRaces"
	query := `
	SELECT ` + raceColumns + `
	FROM races
	WHERE ($1::boolean IS NULL OR is_active = $1)
	  AND ($2::text = '' OR jurisdiction = $2)
	  AND ($3::text = '' OR level = $3)
	ORDER BY election_date ASC NULLS LAST, id
	LIMIT $4;
	`
	rows, err := db.pool.Query(ctx, query, f.Active, f.Jurisdiction, f.Level, limitArg(f.Limit))
	if err != nil {
		return nil, db.wrapError(op, err)
	}
	races, err := collect(rows, scanRace)
	if err != nil {
		return nil, db.wrapError(op, err)
	}
	return races, nil
}

const candidacyColumns = `id, person_id, race_id, party, platform, website, filed_date, status`

func (db *PostgresDB) CreateCandidacy(ctx context.Context, c domain.Candidacy) (domain.Candidacy, error) {
	const op = "storage.postgres.CreateCandidacy"
	query := `
	INSERT INTO candidacies (person_id, race_id, party, platform, website, filed_date, status)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING ` + candidacyColumns
	var saved domain.Candidacy
	err := db.pool.QueryRow(ctx, query,
		c.PersonID, c.RaceID, c.Party, c.Platform, c.Website, c.FiledDate, c.Status,
	).Scan(
		&saved.ID,
		&saved.PersonID,
		&saved.RaceID,
		&saved.Party,
		&saved.Platform,
		&saved.Website,
		&saved.FiledDate,
		&saved.Status,
	)
	if err != nil {
		return domain.Candidacy{}, db.wrapError(op, err)
	}
	return saved, nil
}

// ListCandidates: raceID == 0 выдает кандидатов всех кампаний.
func (db *PostgresDB) ListCandidates(ctx context.Context, raceID int64) ([]domain.Candidate, error) {
	const op = "storage.postgres.ListCandidates"
	query := `
	SELECT c.id, c.person_id, c.race_id, c.party, c.platform, c.website, c.filed_date, c.status,
	       p.id, p.full_name, p.party, p.website, p.email, p.phone, p.photo_url, p.bio
	FROM candidacies c
	JOIN persons p ON p.id = c.person_id
	WHERE ($1::bigint = 0 OR c.race_id = $1)
	ORDER BY c.id;
	`
	rows, err := db.pool.Query(ctx, query, raceID)
	if err != nil {
		return nil, db.wrapError(op, err)
	}
	candidates, err := collect(rows, func(row scanner) (domain.Candidate, error) {
		var c domain.Candidate
		err := row.Scan(
			&c.Candidacy.ID, &c.Candidacy.PersonID, &c.Candidacy.RaceID, &c.Candidacy.Party,
			&c.Candidacy.Platform, &c.Candidacy.Website, &c.Candidacy.FiledDate, &c.Candidacy.Status,
			&c.Person.ID, &c.Person.FullName, &c.Person.Party, &c.Person.Website,
			&c.Person.Email, &c.Person.Phone, &c.Person.PhotoURL, &c.Person.Bio,
		)
		return c, err
	})
	if err != nil {
		return nil, db.wrapError(op, err)
	}
	return candidates, nil
}
