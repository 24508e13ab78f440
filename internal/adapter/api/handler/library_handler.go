package handler

import (
	"github.com/labstack/echo/v4"

	"bookreview/internal/usecase"
	"bookreview/pkg/response"
)

type LibraryHandler struct {
	libraryUseCase *usecase.LibraryUseCase
}

func NewLibraryHandler(libraryUseCase *usecase.LibraryUseCase) *LibraryHandler {
	return &LibraryHandler{
		libraryUseCase: libraryUseCase,
	}
}

func (h *LibraryHandler) GetLibrary(c echo.Context) error {
	uid := getUserIDFromContext(c)

	books, err := h.libraryUseCase.GetLibraryBooks(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, books)
}

func (h *LibraryHandler) AddToLibrary(c echo.Context) error {
	uid := getUserIDFromContext(c)
	bookID := c.Param("bookId")

	if err := h.libraryUseCase.AddToLibrary(c.Request().Context(), uid, bookID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"book_id": bookID,
		"status":  "added",
	})
}

func (h *LibraryHandler) RemoveFromLibrary(c echo.Context) error {
	uid := getUserIDFromContext(c)
	bookID := c.Param("bookId")

	if err := h.libraryUseCase.RemoveFromLibrary(c.Request().Context(), uid, bookID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"book_id": bookID,
		"status":  "removed",
	})
}

func (h *LibraryHandler) CheckLibraryStatus(c echo.Context) error {
	uid := getUserIDFromContext(c)
	bookID := c.Param("bookId")

	inLibrary := h.libraryUseCase.IsInLibrary(c.Request().Context(), uid, bookID)

	return response.Success(c, map[string]interface{}{
		"book_id":    bookID,
		"in_library": inLibrary,
	})
}
