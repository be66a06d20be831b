package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"civicpulse/internal/domain"
)

const itemColumns = `id, title, summary, url, source, category, city, published_at, fetched_at, importance, is_official`

func scanItem(row scanner) (domain.NewsItem, error) {
	var item domain.NewsItem
	err := row.Scan(
		&item.ID,
		&item.Title,
		&item.Summary,
		&item.URL,
		&item.Source,
		&item.Category,
		&item.City,
		&item.PublishedAt,
		&item.FetchedAt,
		&item.Importance,
		&item.IsOfficial,
	)
	return item, err
}

func (db *PostgresDB) CreateItem(ctx context.Context, item domain.NewsItem) (domain.NewsItem, error) {
	const op = "storage.postgres.CreateItem"
	query := `
	INSERT INTO items (title, summary, url, source, category, city, published_at, importance, is_official)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING ` + itemColumns
	saved, err := scanItem(db.pool.QueryRow(ctx, query,
		item.Title,
		item.Summary,
		item.URL,
		item.Source,
		item.Category,
		item.City,
		item.PublishedAt,
		item.Importance,
		item.IsOfficial,
	))
	if err != nil {
		return domain.NewsItem{}, db.wrapError(op, err)
	}
	return saved, nil
}

// CreateItems сохраняет пачку новостей одной транзакцией через pgx.Batch.
func (db *PostgresDB) CreateItems(ctx context.Context, items []domain.NewsItem) (n int, err error) {
	const op = "storage.postgres.CreateItems"
	if len(items) == 0 {
		return 0, nil
	}
	log := db.log.With(slog.String("op", op))
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		log.Error("Failed to begin transaction", slog.Any("error", err))
		return 0, fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(context.Background()); rollbackErr != nil {
				log.Error("Failed to rollback transaction", slog.Any("error", rollbackErr))
			}
		}
	}()
	batch := &pgx.Batch{}
	query := `
	INSERT INTO items (title, summary, url, source, category, city, published_at, importance, is_official)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	for _, item := range items {
		batch.Queue(query,
			item.Title,
			item.Summary,
			item.URL,
			item.Source,
			item.Category,
			item.City,
			item.PublishedAt,
			item.Importance,
			item.IsOfficial,
		)
	}
	if err = tx.SendBatch(ctx, batch).Close(); err != nil {
		log.Error("Failed to execute batch", slog.Any("error", err))
		return 0, fmt.Errorf("%s: failed to execute batch: %w", op, err)
	}
	if err = tx.Commit(ctx); err != nil {
		log.Error("Failed to commit transaction", slog.Any("error", err))
		return 0, fmt.Errorf("%s: failed to commit transaction: %w", op, err)
	}
	log.Info("Items saved", slog.Int("count", len(items)))
	return len(items), nil
}

func (db *PostgresDB) ListItems(ctx context.Context, f domain.ItemFilter) ([]domain.NewsItem, error) {
	const op = "storage.postgres.ListItems"
	query := `
	SELECT ` + itemColumns + `
	FROM items
	WHERE ($1::text = '' OR city = $1)
	  AND ($2::text = '' OR category = $2)
	ORDER BY importance DESC, published_at DESC NULLS LAST, id
	LIMIT $3;
	`
	rows, err := db.pool.Query(ctx, query, f.City, f.Category, limitArg(f.Limit))
	if err != nil {
		return nil, db.wrapError(op, err)
	}
	items, err := collect(rows, scanItem)
	if err != nil {
		return nil, db.wrapError(op, err)
	}
	return items, nil
}

func (db *PostgresDB) ItemExists(ctx context.Context, id int64) (bool, error) {
	const op = "storage.postgres.ItemExists"
	var exists bool
	if err := db.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM items WHERE id = $1)`, id).Scan(&exists); err != nil {
		return false, db.wrapError(op, err)
	}
	return exists, nil
}

func scanComment(row scanner) (domain.Comment, error) {
	var c domain.Comment
	err := row.Scan(&c.ID, &c.ItemID, &c.Author, &c.Body, &c.CreatedAt)
	return c, err
}

func (db *PostgresDB) CreateComment(ctx context.Context, c domain.Comment) (domain.Comment, error) {
	const op = "storage.postgres.CreateComment"
	query := `
	INSERT INTO comments (item_id, author, body)
	VALUES ($1, $2, $3)
	RETURNING id, item_id, author, body, created_at;
	`
	saved, err := scanComment(db.pool.QueryRow(ctx, query, c.ItemID, c.Author, c.Body))
	if err != nil {
		return domain.Comment{}, db.wrapError(op, err)
	}
	return saved, nil
}

func (db *PostgresDB) ListComments(ctx context.Context, itemID int64) ([]domain.Comment, error) {
	const op = "storage.postgres.ListComments"
	query := `
	SELECT id, item_id, author, body, created_at
	FROM comments
	WHERE item_id = $1
	ORDER BY created_at DESC, id DESC;
	`
	rows, err := db.pool.Query(ctx, query, itemID)
	if err != nil {
		return nil, db.wrapError(op, err)
	}
	comments, err := collect(rows, scanComment)
	if err != nil {
		return nil, db.wrapError(op, err)
	}
	return comments, nil
}
