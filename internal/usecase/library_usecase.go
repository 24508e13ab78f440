package usecase

import (
	"context"
	"io"

	"bookreview/internal/domain/entity"
	"bookreview/internal/domain/repository"
	apperrors "bookreview/pkg/errors"
	"bookreview/pkg/logger"
)

type LibraryUseCase struct {
	profileRepo  repository.ProfileRepository
	catalog      CatalogClient
	storage      StorageClient
	firebaseAuth FirebaseAuthClient
}

func NewLibraryUseCase(
	profileRepo repository.ProfileRepository,
	catalog CatalogClient,
	storage StorageClient,
	firebaseAuth FirebaseAuthClient,
) *LibraryUseCase {
	return &LibraryUseCase{
		profileRepo:  profileRepo,
		catalog:      catalog,
		storage:      storage,
		firebaseAuth: firebaseAuth,
	}
}

// GetProfile membuat profile default secara lazy kalau document belum
// ada dan requester adalah pemilik uid; requester lain dapat nil.
func (uc *LibraryUseCase) GetProfile(ctx context.Context, uid, requesterUID string) (*entity.UserProfile, error) {
	profile, err := uc.profileRepo.GetByUID(ctx, uid)
	if err == nil {
		return profile, nil
	}
	if !apperrors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	if requesterUID != uid {
		return nil, nil
	}

	email, emailErr := uc.firebaseAuth.GetUserEmail(ctx, uid)
	if emailErr != nil {
		logger.Warn("Failed to look up email for %s: %v", uid, emailErr)
	}

	profile = &entity.UserProfile{
		UID:     uid,
		Email:   email,
		Library: []string{},
	}

	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}

	logger.Info("Created default profile for %s", uid)
	return profile, nil
}

type UpdateProfileInput struct {
	FirstName *string
	LastName  *string
}

func (uc *LibraryUseCase) UpdateProfile(ctx context.Context, uid string, input UpdateProfileInput) (*entity.UserProfile, error) {
	fields := map[string]interface{}{}
	if input.FirstName != nil {
		fields["firstName"] = *input.FirstName
	}
	if input.LastName != nil {
		fields["lastName"] = *input.LastName
	}

	if err := uc.profileRepo.Update(ctx, uid, fields); err != nil {
		return nil, err
	}

	return uc.GetProfile(ctx, uid, uid)
}

func (uc *LibraryUseCase) AddToLibrary(ctx context.Context, uid, bookID string) error {
	return uc.profileRepo.AddToLibrary(ctx, uid, bookID)
}

func (uc *LibraryUseCase) RemoveFromLibrary(ctx context.Context, uid, bookID string) error {
	return uc.profileRepo.RemoveFromLibrary(ctx, uid, bookID)
}

// IsInLibrary degrade ke false kalau profile tidak bisa dibaca.
func (uc *LibraryUseCase) IsInLibrary(ctx context.Context, uid, bookID string) bool {
	profile, err := uc.profileRepo.GetByUID(ctx, uid)
	if err != nil {
		if !apperrors.Is(err, "NOT_FOUND") {
			logger.Error("Failed to check library of %s: %v", uid, err)
		}
		return false
	}

	for _, id := range profile.Library {
		if id == bookID {
			return true
		}
	}

	return false
}

// GetLibraryBooks me-resolve setiap book id dengan fetch individual.
// Id yang sudah tidak dikenal katalog di-skip diam-diam.
func (uc *LibraryUseCase) GetLibraryBooks(ctx context.Context, uid string) ([]entity.Book, error) {
	profile, err := uc.GetProfile(ctx, uid, uid)
	if err != nil {
		return nil, err
	}

	books := []entity.Book{}
	for _, bookID := range profile.Library {
		book, err := uc.catalog.GetBook(ctx, bookID)
		if err != nil {
			logger.Warn("Failed to resolve library book %s for %s: %v", bookID, uid, err)
			continue
		}
		if book == nil {
			continue
		}
		books = append(books, *book)
	}

	return books, nil
}

// UploadProfilePicture menulis blob lalu menyimpan URL hasilnya di
// profile. Kalau update profile gagal setelah upload sukses, object yang
// sudah terunggah dibiarkan (tidak ada cleanup).
func (uc *LibraryUseCase) UploadProfilePicture(ctx context.Context, uid string, file io.Reader, contentType string) (string, error) {
	url, err := uc.storage.UploadProfilePicture(ctx, uid, file, contentType)
	if err != nil {
		logger.Error("Failed to upload profile picture for %s: %v", uid, err)
		return "", apperrors.Internal("Failed to upload profile picture", err)
	}

	if err := uc.profileRepo.Update(ctx, uid, map[string]interface{}{
		"profilePictureUrl": url,
	}); err != nil {
		return "", err
	}

	logger.Info("Profile picture for %s uploaded: %s", uid, url)
	return url, nil
}
