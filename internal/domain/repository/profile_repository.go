package repository

import (
	"context"

	"bookreview/internal/domain/entity"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.UserProfile) error

	// NOT_FOUND error kalau document belum ada
	GetByUID(ctx context.Context, uid string) (*entity.UserProfile, error)

	// Partial merge update, tanpa validasi bentuk field
	Update(ctx context.Context, uid string, fields map[string]interface{}) error

	// Atomic set-union / set-removal di list library
	AddToLibrary(ctx context.Context, uid, bookID string) error
	RemoveFromLibrary(ctx context.Context, uid, bookID string) error
}
