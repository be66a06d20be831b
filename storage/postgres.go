package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"civicpulse/internal/domain"
)

const (
	foreignKeyViolation = "23503"
	checkViolation      = "23514"
)

// PostgresDB реализует хранилища сервиса поверх пула pgx.
type PostgresDB struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewPostgresDB(pool *pgxpool.Pool, log *slog.Logger) *PostgresDB {
	log.Info("Initializing Postgres storage")
	return &PostgresDB{
		pool: pool,
		log:  log.With(slog.String("component", "storage")),
	}
}

func (db *PostgresDB) Close() {
	db.log.Info("Closing database connection pool")
	db.pool.Close()
}

func (db *PostgresDB) Ping(ctx context.Context) error {
	if err := db.pool.Ping(ctx); err != nil {
		return fmt.Errorf("storage.postgres.Ping: %w", err)
	}
	return nil
}

// scanner - общий интерфейс pgx.Row и pgx.CollectableRow.
type scanner interface {
	Scan(dest ...any) error
}

func collect[T any](rows pgx.Rows, scan func(scanner) (T, error)) ([]T, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (T, error) {
		return scan(row)
	})
}

// limitArg превращает неположительный лимит в NULL: LIMIT NULL снимает ограничение.
func limitArg(limit int) any {
	if limit <= 0 {
		return nil
	}
	return limit
}

// wrapError приводит ошибки pgx к доменным и добавляет op.
func (db *PostgresDB) wrapError(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case foreignKeyViolation:
			return fmt.Errorf("%s: %w", op, domain.Invalid(pgErr.ConstraintName, "references a missing record"))
		case checkViolation:
			return fmt.Errorf("%s: %w", op, domain.Invalid(pgErr.ConstraintName, "violates a check constraint"))
		}
	}
	db.log.Error("Database query failed", slog.String("op", op), slog.Any("error", err))
	return fmt.Errorf("%s: %w", op, err)
}
