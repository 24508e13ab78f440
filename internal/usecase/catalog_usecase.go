package usecase

import (
	"context"

	"bookreview/internal/domain/entity"
	"bookreview/pkg/errors"
)

type CatalogUseCase struct {
	catalog CatalogClient
}

func NewCatalogUseCase(catalog CatalogClient) *CatalogUseCase {
	return &CatalogUseCase{
		catalog: catalog,
	}
}

// SearchBooks dengan term kosong mengembalikan seluruh katalog.
func (uc *CatalogUseCase) SearchBooks(ctx context.Context, term string) ([]entity.Book, error) {
	books, err := uc.catalog.SearchBooks(ctx, term)
	if err != nil {
		return nil, errors.Internal("Failed to fetch books", err)
	}

	if books == nil {
		books = []entity.Book{}
	}

	return books, nil
}

func (uc *CatalogUseCase) GetBook(ctx context.Context, id string) (*entity.Book, error) {
	book, err := uc.catalog.GetBook(ctx, id)
	if err != nil {
		return nil, errors.Internal("Failed to fetch book", err)
	}

	if book == nil {
		return nil, errors.NotFound("Book", nil)
	}

	return book, nil
}
