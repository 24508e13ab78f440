package entity

import (
	"time"
)

type UserProfile struct {
	UID               string   `json:"uid" firestore:"uid"`
	FirstName         string   `json:"first_name" firestore:"firstName"`
	LastName          string   `json:"last_name" firestore:"lastName"`
	Email             string   `json:"email" firestore:"email"`
	Library           []string `json:"library" firestore:"library"`
	ProfilePictureURL string   `json:"profile_picture_url" firestore:"profilePictureUrl"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
