package storage

import (
	"context"

	"civicpulse/internal/usecase"
)

// Storage объединяет все хранилища сервиса, проверку соединения и закрытие пула.
type Storage interface {
	usecase.ItemStorage
	usecase.CommentStorage
	usecase.ListingStorage
	usecase.EventStorage
	usecase.DirectoryStorage
	usecase.ElectionStorage
	Ping(ctx context.Context) error
	Close()
}

var _ Storage = (*PostgresDB)(nil)
