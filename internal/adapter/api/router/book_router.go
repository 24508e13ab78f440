package router

import (
	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"

	"bookreview/internal/adapter/api/handler"
	"bookreview/internal/adapter/api/middleware"
)

func SetupBookRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, authClient *auth.Client) {
	bookHandler := handler.GetBookHandler()

	// Katalog publik; ratings GET pakai optional auth supaya rating
	// milik caller ikut kalau token ada
	e.GET("/v1/books", bookHandler.ListBooks)
	e.GET("/v1/books/:id", bookHandler.GetBook)
	e.GET("/v1/books/:id/ratings", bookHandler.GetBookRatings, VerifyToken(authClient))

	// Submit rating butuh autentikasi
	e.POST("/v1/books/:id/ratings", bookHandler.RateBook, authMiddleware.Authenticate)
}
