package router

import (
	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"

	"bookreview/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, authClient *auth.Client) {
	SetupAuthRouter(e, authMiddleware)
	SetupBookRouter(e, authMiddleware, authClient)
	SetupProfileRouter(e, authMiddleware)
	SetupLibraryRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
