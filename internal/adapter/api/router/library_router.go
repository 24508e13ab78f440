package router

import (
	"github.com/labstack/echo/v4"

	"bookreview/internal/adapter/api/handler"
	"bookreview/internal/adapter/api/middleware"
)

func SetupLibraryRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	libraryHandler := handler.GetLibraryHandler()

	libraryGroup := e.Group("/v1/library")
	libraryGroup.Use(authMiddleware.Authenticate)

	libraryGroup.GET("", libraryHandler.GetLibrary)
	libraryGroup.POST("/:bookId", libraryHandler.AddToLibrary)
	libraryGroup.DELETE("/:bookId", libraryHandler.RemoveFromLibrary)
	libraryGroup.GET("/:bookId/status", libraryHandler.CheckLibraryStatus)
}
