package storage

import (
	"context"

	"civicpulse/internal/domain"
)

const personColumns = `id, full_name, party, website, email, phone, photo_url, bio`

func scanPerson(row scanner) (domain.Person, error) {
	var p domain.Person
	err := row.Scan(&p.ID, &p.FullName, &p.Party, &p.Website, &p.Email, &p.Phone, &p.PhotoURL, &p.Bio)
	return p, err
}

func (db *PostgresDB) CreatePerson(ctx context.Context, p domain.Person) (domain.Person, error) {
	const op = "storage.postgres.CreatePerson"
	query := `
	INSERT INTO persons (full_name, party, website, email, phone, photo_url, bio)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING ` + personColumns
	saved, err := scanPerson(db.pool.QueryRow(ctx, query,
		p.FullName, p.Party, p.Website, p.Email, p.Phone, p.PhotoURL, p.Bio))
	if err != nil {
		return domain.Person{}, db.wrapError(op, err)
	}
	return saved, nil
}

func (db *PostgresDB) GetPerson(ctx context.Context, id int64) (domain.Person, error) {
	const op = "storage.postgres.GetPerson"
	p, err := scanPerson(db.pool.QueryRow(ctx, `SELECT `+personColumns+` FROM persons WHERE id = $1`, id))
	if err != nil {
		return domain.Person{}, db.wrapError(op, err)
	}
	return p, nil
}

// ListPersons ищет по подстроке имени без учета регистра.
func (db *PostgresDB) ListPersons(ctx context.Context, f domain.PersonFilter) ([]domain.Person, error) {
	const op = "storage.postgres.ListPersons"
	query := `
	SELECT ` + personColumns + `
	FROM persons
	WHERE ($1::text = '' OR party = $1)
	  AND ($2::text = '' OR full_name ILIKE '%' || $2 || '%')
	ORDER BY full_name, id
	LIMIT $3;
	`
	rows, err := db.pool.Query(ctx, query, f.Party, f.Query, limitArg(f.Limit))
	if err != nil {
		return nil, db.wrapError(op, err)
	}
	persons, err := collect(rows, scanPerson)
	if err != nil {
		return nil, db.wrapError(op, err)
	}
	return persons, nil
}

func scanOffice(row scanner) (domain.Office, error) {
	var o domain.Office
	err := row.Scan(&o.ID, &o.Name, &o.Jurisdiction, &o.Level, &o.District)
	return o, err
}

func (db *PostgresDB) CreateOffice(ctx context.Context, o domain.Office) (domain.Office, error) {
	const op = "storage.postgres.CreateOffice"
	query := `
	INSERT INTO offices (name, jurisdiction, level, district)
	VALUES ($1, $2, $3, $4)
	RETURNING id, name, jurisdiction, level, district;
	`
	saved, err := scanOffice(db.pool.QueryRow(ctx, query, o.Name, o.Jurisdiction, o.Level, o.District))
	if err != nil {
		return domain.Office{}, db.wrapError(op, err)
	}
	return saved, nil
}

func (db *PostgresDB) ListOffices(ctx context.Context, f domain.OfficeFilter) ([]domain.Office, error) {
	const op = "storage.postgres.ListOffices"
	query := `
	SELECT id, name, jurisdiction, level, district
	FROM offices
	WHERE ($1::text = '' OR jurisdiction = $1)
	  AND ($2::text = '' OR level = $2)
	ORDER BY name, id
	LIMIT $3;
	`
	rows, err := db.pool.Query(ctx, query, f.Jurisdiction, f.Level, limitArg(f.Limit))
	if err != nil {
		return nil, db.wrapError(op, err)
	}
	offices, err := collect(rows, scanOffice)
	if err != nil {
		return nil, db.wrapError(op, err)
	}
	return offices, nil
}

func (db *PostgresDB) CreateTerm(ctx context.Context, t domain.Term) (domain.Term, error) {
	const op = "storage.postgres.CreateTerm"
	query := `
	INSERT INTO terms (person_id, office_id, start_date, end_date, is_incumbent)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, person_id, office_id, start_date, end_date, is_incumbent;
	`
	var saved domain.Term
	err := db.pool.QueryRow(ctx, query, t.PersonID, t.OfficeID, t.StartDate, t.EndDate, t.IsIncumbent).Scan(
		&saved.ID,
		&saved.PersonID,
		&saved.OfficeID,
		&saved.StartDate,
		&saved.EndDate,
		&saved.IsIncumbent,
	)
	if err != nil {
		return domain.Term{}, db.wrapError(op, err)
	}
	return saved, nil
}

// ListIncumbents соединяет действующие сроки с должностями и людьми.
// Сроки с неразрешимыми ссылками в выдачу не попадают.
func (db *PostgresDB) ListIncumbents(ctx context.Context, jurisdiction string) ([]domain.Incumbent, error) {
	const op = "storage.postgres.ListIncumbents"
	query := `
	SELECT t.id,
	       o.id, o.name, o.jurisdiction, o.level, o.district,
	       p.id, p.full_name, p.party, p.website, p.email, p.phone, p.photo_url, p.bio
	FROM terms t
	JOIN offices o ON o.id = t.office_id
	JOIN persons p ON p.id = t.person_id
	WHERE t.is_incumbent
	  AND ($1::text = '' OR o.jurisdiction = $1)
	ORDER BY t.id;
	`
	rows, err := db.pool.Query(ctx, query, jurisdiction)
	if err != nil {
		return nil, db.wrapError(op, err)
	}
	incumbents, err := collect(rows, func(row scanner) (domain.Incumbent, error) {
		var inc domain.Incumbent
		err := row.Scan(
			&inc.TermID,
			&inc.Office.ID, &inc.Office.Name, &inc.Office.Jurisdiction, &inc.Office.Level, &inc.Office.District,
			&inc.Person.ID, &inc.Person.FullName, &inc.Person.Party, &inc.Person.Website,
			&inc.Person.Email, &inc.Person.Phone, &inc.Person.PhotoURL, &inc.Person.Bio,
		)
		return inc, err
	})
	if err != nil {
		return nil, db.wrapError(op, err)
	}
	return incumbents, nil
}

const actionColumns = `id, person_id, title, description, date, category, outcome, sentiment, source_url`

func scanAction(row scanner) (domain.Action, error) {
	var a domain.Action
	err := row.Scan(
		&a.ID,
		&a.PersonID,
		&a.Title,
		&a.Description,
		&a.Date,
		&a.Category,
		&a.Outcome,
		&a.Sentiment,
		&a.SourceURL,
	)
	return a, err
}

func (db *PostgresDB) CreateAction(ctx context.Context, a domain.Action) (domain.Action, error) {
	const op = "storage.postgres.CreateAction"
	query := `
	INSERT INTO actions (person_id, title, description, date, category, outcome, sentiment, source_url)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING ` + actionColumns
	saved, err := scanAction(db.pool.QueryRow(ctx, query,
		a.PersonID, a.Title, a.Description, a.Date, a.Category, a.Outcome, a.Sentiment, a.SourceURL))
	if err != nil {
		return domain.Action{}, db.wrapError(op, err)
	}
	return saved, nil
}

// ListActions: PersonID == 0 отключает фильтр по человеку.
func (db *PostgresDB) ListActions(ctx context.Context, f domain.ActionFilter) ([]domain.Action, error) {
	const op = "storage.postgres.ListActions"
	query := `
	SELECT ` + actionColumns + `
	FROM actions
	WHERE ($1::bigint = 0 OR person_id = $1)
	  AND ($2::text = '' OR category = $2)
	ORDER BY date DESC NULLS LAST, id DESC
	LIMIT $3;
	`
	rows, err := db.pool.Query(ctx, query, f.PersonID, f.Category, limitArg(f.Limit))
	if err != nil {
		return nil, db.wrapError(op, err)
	}
	actions, err := collect(rows, scanAction)
	if err != nil {
		return nil, db.wrapError(op, err)
	}
	return actions, nil
}

func scanPosition(row scanner) (domain.Position, error) {
	var p domain.Position
	err := row.Scan(&p.ID, &p.PersonID, &p.Topic, &p.Stance, &p.SourceURL, &p.Date)
	return p, err
}

func (db *PostgresDB) CreatePosition(ctx context.Context, p domain.Position) (domain.Position, error) {
	const op = "storage.postgres.CreatePosition"
	query := `
	INSERT INTO positions (person_id, topic, stance, source_url, date)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, person_id, topic, stance, source_url, date;
	`
	saved, err := scanPosition(db.pool.QueryRow(ctx, query, p.PersonID, p.Topic, p.Stance, p.SourceURL, p.Date))
	if err != nil {
		return domain.Position{}, db.wrapError(op, err)
	}
	return saved, nil
}

func (db *PostgresDB) ListPositions(ctx context.Context, f domain.PositionFilter) ([]domain.Position, error) {
	const op = "storage.postgres.ListPositions"
	query := `
	SELECT id, person_id, topic, stance, source_url, date
	FROM positions
	WHERE ($1::bigint = 0 OR person_id = $1)
	  AND ($2::text = '' OR topic = $2)
	ORDER BY date DESC NULLS LAST, id DESC
	LIMIT $3;
	`
	rows, err := db.pool.Query(ctx, query, f.PersonID, f.Topic, limitArg(f.Limit))
	if err != nil {
		return nil, db.wrapError(op, err)
	}
	positions, err := collect(rows, scanPosition)
	if err != nil {
		return nil, db.wrapError(op, err)
	}
	return positions, nil
}
