package usecase

import (
	"context"
	"io"

	"bookreview/internal/domain/entity"
)

type FirebaseAuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	GetUserEmail(ctx context.Context, uid string) (string, error)
	SignInWithEmailPassword(email, password string) (string, string, error)
	RefreshIDToken(refreshToken string) (string, string, error)
	RevokeRefreshTokens(ctx context.Context, uid string) error
}

type CatalogClient interface {
	ListBooks(ctx context.Context) ([]entity.Book, error)
	GetBook(ctx context.Context, id string) (*entity.Book, error)
	SearchBooks(ctx context.Context, term string) ([]entity.Book, error)
}

type StorageClient interface {
	UploadProfilePicture(ctx context.Context, uid string, file io.Reader, contentType string) (string, error)
}
