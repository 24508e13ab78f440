package handler

import (
	"strings"

	"github.com/labstack/echo/v4"

	"bookreview/internal/usecase"
	"bookreview/pkg/errors"
	"bookreview/pkg/logger"
	"bookreview/pkg/response"
)

type ProfileHandler struct {
	libraryUseCase *usecase.LibraryUseCase
	maxFileSize    int64
}

func NewProfileHandler(libraryUseCase *usecase.LibraryUseCase) *ProfileHandler {
	return &ProfileHandler{
		libraryUseCase: libraryUseCase,
		maxFileSize:    5 * 1024 * 1024,
	}
}

func (h *ProfileHandler) GetOwnProfile(c echo.Context) error {
	uid := getUserIDFromContext(c)

	profile, err := h.libraryUseCase.GetProfile(c.Request().Context(), uid, uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profile)
}

// GetProfile untuk uid lain yang belum punya document mengembalikan
// data null, bukan error
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	requesterUID := getUserIDFromContext(c)

	profile, err := h.libraryUseCase.GetProfile(c.Request().Context(), c.Param("uid"), requesterUID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profile)
}

type updateProfileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	uid := getUserIDFromContext(c)

	profile, err := h.libraryUseCase.UpdateProfile(c.Request().Context(), uid, usecase.UpdateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profile)
}

func (h *ProfileHandler) UploadProfilePicture(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		logger.Error("Error getting file from form: %v", err)
		return response.Error(c, errors.BadRequest("Missing or invalid file", err))
	}

	if file.Size > h.maxFileSize {
		logger.Warn("Profile picture too large: %d bytes (max: %d)", file.Size, h.maxFileSize)
		return response.Error(c, errors.BadRequest("File size exceeds maximum allowed (5MB)", nil))
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		logger.Warn("Invalid profile picture type: %s", contentType)
		return response.Error(c, errors.BadRequest("File type not supported", nil))
	}

	src, err := file.Open()
	if err != nil {
		logger.Error("Error opening file: %v", err)
		return response.Error(c, errors.Internal("Unable to read file", err))
	}
	defer src.Close()

	uid := getUserIDFromContext(c)

	url, err := h.libraryUseCase.UploadProfilePicture(c.Request().Context(), uid, src, contentType)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"profile_picture_url": url,
	})
}
