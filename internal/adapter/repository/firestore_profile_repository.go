package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"bookreview/internal/domain/entity"
	"bookreview/internal/domain/repository"
	"bookreview/pkg/errors"
	"bookreview/pkg/logger"
)

type firestoreProfileRepository struct {
	client *firestore.Client
}

func NewFirestoreProfileRepository(client *firestore.Client) repository.ProfileRepository {
	return &firestoreProfileRepository{
		client: client,
	}
}

func (r *firestoreProfileRepository) Create(ctx context.Context, profile *entity.UserProfile) error {
	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	if profile.Library == nil {
		profile.Library = []string{}
	}

	_, err := r.client.Collection("users").Doc(profile.UID).Set(ctx, profile)
	if err != nil {
		return errors.Internal("Failed to create profile", err)
	}

	return nil
}

func (r *firestoreProfileRepository) GetByUID(ctx context.Context, uid string) (*entity.UserProfile, error) {
	doc, err := r.client.Collection("users").Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Profile", err)
		}
		return nil, errors.Internal("Failed to get profile", err)
	}

	var profile entity.UserProfile
	if err := doc.DataTo(&profile); err != nil {
		return nil, errors.Internal("Failed to parse profile data", err)
	}
	profile.UID = doc.Ref.ID

	if profile.Library == nil {
		profile.Library = []string{}
	}

	return &profile, nil
}

func (r *firestoreProfileRepository) Update(ctx context.Context, uid string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	fields["updatedAt"] = time.Now()

	_, err := r.client.Collection("users").Doc(uid).Set(ctx, fields, firestore.MergeAll)
	if err != nil {
		logger.Error("Firestore profile update error: %v", err)
		return errors.Internal("Failed to update profile", err)
	}

	return nil
}

func (r *firestoreProfileRepository) AddToLibrary(ctx context.Context, uid, bookID string) error {
	// Single atomic mutation; ArrayUnion tidak menduplikasi id yang sudah ada
	_, err := r.client.Collection("users").Doc(uid).Update(ctx, []firestore.Update{
		{Path: "library", Value: firestore.ArrayUnion(bookID)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Profile", err)
		}
		return errors.Internal("Failed to add book to library", err)
	}

	logger.Info("Added book %s to library of %s", bookID, uid)
	return nil
}

func (r *firestoreProfileRepository) RemoveFromLibrary(ctx context.Context, uid, bookID string) error {
	_, err := r.client.Collection("users").Doc(uid).Update(ctx, []firestore.Update{
		{Path: "library", Value: firestore.ArrayRemove(bookID)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Profile", err)
		}
		return errors.Internal("Failed to remove book from library", err)
	}

	logger.Info("Removed book %s from library of %s", bookID, uid)
	return nil
}
