package entity

import (
	"time"
)

// UserBookRating disimpan dengan document ID komposit "userId_bookId",
// jadi satu user hanya punya satu rating per buku.
type UserBookRating struct {
	UserID    string    `json:"user_id" firestore:"userId"`
	BookID    string    `json:"book_id" firestore:"bookId"`
	Rating    int       `json:"rating" firestore:"rating"` // 1-5
	Timestamp time.Time `json:"timestamp" firestore:"timestamp"`
}

// RatingSummary membawa count bersama average supaya caller bisa
// membedakan "tidak ada rating" dari "rata-rata nol".
type RatingSummary struct {
	BookID  string  `json:"book_id"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}
