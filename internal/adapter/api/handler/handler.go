package handler

import (
	"github.com/labstack/echo/v4"

	"bookreview/internal/usecase"
)

var (
	authHandler    *AuthHandler
	bookHandler    *BookHandler
	profileHandler *ProfileHandler
	libraryHandler *LibraryHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	catalogUseCase *usecase.CatalogUseCase,
	ratingUseCase *usecase.RatingUseCase,
	libraryUseCase *usecase.LibraryUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	bookHandler = NewBookHandler(catalogUseCase, ratingUseCase)
	profileHandler = NewProfileHandler(libraryUseCase)
	libraryHandler = NewLibraryHandler(libraryUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetBookHandler() *BookHandler {
	return bookHandler
}

func GetProfileHandler() *ProfileHandler {
	return profileHandler
}

func GetLibraryHandler() *LibraryHandler {
	return libraryHandler
}

func getUserIDFromContext(c echo.Context) string {
	uid, _ := c.Get("uid").(string)
	return uid
}
