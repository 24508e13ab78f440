package handler

import (
	"github.com/labstack/echo/v4"

	"bookreview/internal/domain/entity"
	"bookreview/internal/usecase"
	"bookreview/pkg/response"
)

type BookHandler struct {
	catalogUseCase *usecase.CatalogUseCase
	ratingUseCase  *usecase.RatingUseCase
}

func NewBookHandler(catalogUseCase *usecase.CatalogUseCase, ratingUseCase *usecase.RatingUseCase) *BookHandler {
	return &BookHandler{
		catalogUseCase: catalogUseCase,
		ratingUseCase:  ratingUseCase,
	}
}

// ListBooks tanpa query param mengembalikan seluruh katalog
func (h *BookHandler) ListBooks(c echo.Context) error {
	term := c.QueryParam("q")

	books, err := h.catalogUseCase.SearchBooks(c.Request().Context(), term)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, books)
}

func (h *BookHandler) GetBook(c echo.Context) error {
	book, err := h.catalogUseCase.GetBook(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, book)
}

type bookRatingsResponse struct {
	Summary    *entity.RatingSummary  `json:"summary"`
	UserRating *entity.UserBookRating `json:"user_rating,omitempty"`
}

// GetBookRatings menyertakan rating milik caller kalau request datang
// dengan token valid (route pakai optional auth)
func (h *BookHandler) GetBookRatings(c echo.Context) error {
	bookID := c.Param("id")

	summary, err := h.ratingUseCase.GetSummary(c.Request().Context(), bookID)
	if err != nil {
		return response.Error(c, err)
	}

	resp := bookRatingsResponse{Summary: summary}

	if uid := getUserIDFromContext(c); uid != "" {
		userRating, err := h.ratingUseCase.GetUserRating(c.Request().Context(), uid, bookID)
		if err == nil && userRating != nil {
			resp.UserRating = userRating
		}
	}

	return response.Success(c, resp)
}

type rateBookRequest struct {
	Rating int `json:"rating" validate:"required,min=1,max=5"`
}

func (h *BookHandler) RateBook(c echo.Context) error {
	var req rateBookRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := getUserIDFromContext(c)

	rating, err := h.ratingUseCase.SaveRating(c.Request().Context(), uid, c.Param("id"), req.Rating)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, rating)
}
