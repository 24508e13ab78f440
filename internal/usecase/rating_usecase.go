package usecase

import (
	"context"

	"bookreview/internal/domain/entity"
	"bookreview/internal/domain/repository"
	apperrors "bookreview/pkg/errors"
	"bookreview/pkg/logger"
)

type RatingUseCase struct {
	ratingRepo repository.RatingRepository
}

func NewRatingUseCase(ratingRepo repository.RatingRepository) *RatingUseCase {
	return &RatingUseCase{
		ratingRepo: ratingRepo,
	}
}

func (uc *RatingUseCase) SaveRating(ctx context.Context, userID, bookID string, value int) (*entity.UserBookRating, error) {
	if value < 1 || value > 5 {
		return nil, apperrors.BadRequest("Rating must be between 1 and 5", nil)
	}

	rating := &entity.UserBookRating{
		UserID: userID,
		BookID: bookID,
		Rating: value,
	}

	if err := uc.ratingRepo.Save(ctx, rating); err != nil {
		logger.Error("Failed to save rating for book %s by user %s: %v", bookID, userID, err)
		return nil, err
	}

	logger.Info("Saved rating %d for book %s by user %s", value, bookID, userID)
	return rating, nil
}

// GetUserRating mengembalikan nil tanpa error kalau user belum pernah
// menilai buku ini; error lain juga di-degrade ke nil supaya screen bisa
// render state kosong.
func (uc *RatingUseCase) GetUserRating(ctx context.Context, userID, bookID string) (*entity.UserBookRating, error) {
	rating, err := uc.ratingRepo.GetByUserAndBook(ctx, userID, bookID)
	if err != nil {
		if !apperrors.Is(err, "NOT_FOUND") {
			logger.Error("Failed to get rating for book %s by user %s: %v", bookID, userID, err)
		}
		return nil, nil
	}

	return rating, nil
}

func (uc *RatingUseCase) GetAllRatings(ctx context.Context, bookID string) ([]*entity.UserBookRating, error) {
	ratings, err := uc.ratingRepo.ListByBook(ctx, bookID)
	if err != nil {
		logger.Error("Failed to list ratings for book %s: %v", bookID, err)
		return []*entity.UserBookRating{}, nil
	}

	if ratings == nil {
		ratings = []*entity.UserBookRating{}
	}

	return ratings, nil
}

// GetSummary menghitung rata-rata aritmetika. Tanpa rating, average 0
// dan count 0 dikembalikan bersama supaya caller bisa membedakannya dari
// rata-rata nol sungguhan.
func (uc *RatingUseCase) GetSummary(ctx context.Context, bookID string) (*entity.RatingSummary, error) {
	ratings, err := uc.GetAllRatings(ctx, bookID)
	if err != nil {
		return nil, err
	}

	summary := &entity.RatingSummary{
		BookID: bookID,
		Count:  len(ratings),
	}

	if len(ratings) == 0 {
		return summary, nil
	}

	total := 0
	for _, r := range ratings {
		total += r.Rating
	}
	summary.Average = float64(total) / float64(len(ratings))

	return summary, nil
}
