package usecase

import (
	"context"
	"fmt"
	"strings"

	"civicpulse/internal/domain"
)

// CommentsUseCase добавляет и выдает комментарии к новостям.
type CommentsUseCase struct {
	items    ItemStorage
	comments CommentStorage
}

func NewCommentsUseCase(items ItemStorage, comments CommentStorage) *CommentsUseCase {
	return &CommentsUseCase{items: items, comments: comments}
}

// AddComment возвращает domain.ErrNotFound, если новость не существует.
func (uc *CommentsUseCase) AddComment(ctx context.Context, c domain.Comment) (domain.Comment, error) {
	const op = "usecase.comments.AddComment"
	if strings.TrimSpace(c.Body) == "" {
		return domain.Comment{}, domain.Invalid("body", "is required")
	}
	exists, err := uc.items.ItemExists(ctx, c.ItemID)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("%s: %w", op, err)
	}
	if !exists {
		return domain.Comment{}, fmt.Errorf("item %d: %w", c.ItemID, domain.ErrNotFound)
	}
	c.ID = 0
	c.CreatedAt = nil
	saved, err := uc.comments.CreateComment(ctx, c)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("%s: %w", op, err)
	}
	return saved, nil
}

// ListComments выдает комментарии от новых к старым.
func (uc *CommentsUseCase) ListComments(ctx context.Context, itemID int64) ([]domain.Comment, error) {
	return uc.comments.ListComments(ctx, itemID)
}
