package router

import (
	"github.com/labstack/echo/v4"

	"bookreview/internal/adapter/api/handler"
	"bookreview/internal/adapter/api/middleware"
)

func SetupProfileRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	profileHandler := handler.GetProfileHandler()

	profileGroup := e.Group("/v1/profile")
	profileGroup.Use(authMiddleware.Authenticate)

	profileGroup.GET("", profileHandler.GetOwnProfile)
	profileGroup.GET("/:uid", profileHandler.GetProfile)
	profileGroup.PATCH("", profileHandler.UpdateProfile)
	profileGroup.POST("/picture", profileHandler.UploadProfilePicture)
}
