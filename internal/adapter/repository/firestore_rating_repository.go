package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"bookreview/internal/domain/entity"
	"bookreview/internal/domain/repository"
	"bookreview/pkg/errors"
)

type firestoreRatingRepository struct {
	client *firestore.Client
}

func NewFirestoreRatingRepository(client *firestore.Client) repository.RatingRepository {
	return &firestoreRatingRepository{
		client: client,
	}
}

func ratingDocID(userID, bookID string) string {
	return fmt.Sprintf("%s_%s", userID, bookID)
}

func (r *firestoreRatingRepository) Save(ctx context.Context, rating *entity.UserBookRating) error {
	rating.Timestamp = time.Now()

	docID := ratingDocID(rating.UserID, rating.BookID)

	// Set dengan MergeAll: re-submit rating yang sama jadi no-op,
	// nilai baru menang (last write wins)
	_, err := r.client.Collection("bookRatings").Doc(docID).Set(ctx, map[string]interface{}{
		"userId":    rating.UserID,
		"bookId":    rating.BookID,
		"rating":    rating.Rating,
		"timestamp": rating.Timestamp,
	}, firestore.MergeAll)
	if err != nil {
		return errors.Internal("Failed to save rating", err)
	}

	return nil
}

func (r *firestoreRatingRepository) GetByUserAndBook(ctx context.Context, userID, bookID string) (*entity.UserBookRating, error) {
	doc, err := r.client.Collection("bookRatings").Doc(ratingDocID(userID, bookID)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Rating", err)
		}
		return nil, errors.Internal("Failed to get rating", err)
	}

	var rating entity.UserBookRating
	if err := doc.DataTo(&rating); err != nil {
		return nil, errors.Internal("Failed to parse rating data", err)
	}

	return &rating, nil
}

func (r *firestoreRatingRepository) ListByBook(ctx context.Context, bookID string) ([]*entity.UserBookRating, error) {
	query := r.client.Collection("bookRatings").Where("bookId", "==", bookID)
	iter := query.Documents(ctx)

	var ratings []*entity.UserBookRating
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to query ratings", err)
		}

		var rating entity.UserBookRating
		if err := doc.DataTo(&rating); err != nil {
			return nil, errors.Internal("Failed to parse rating data", err)
		}
		ratings = append(ratings, &rating)
	}

	return ratings, nil
}
