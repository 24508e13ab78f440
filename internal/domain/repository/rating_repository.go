package repository

import (
	"context"

	"bookreview/internal/domain/entity"
)

type RatingRepository interface {
	// Upsert rating di document "userId_bookId" dengan merge semantics
	Save(ctx context.Context, rating *entity.UserBookRating) error

	// Get single rating; NOT_FOUND error kalau belum ada
	GetByUserAndBook(ctx context.Context, userID, bookID string) (*entity.UserBookRating, error)

	// Get semua rating untuk satu buku, unordered
	ListByBook(ctx context.Context, bookID string) ([]*entity.UserBookRating, error)
}
