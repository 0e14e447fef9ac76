package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookshop-backend/internal/domains/wishlist/model"
	"bookshop-backend/internal/domains/wishlist/service"
	"bookshop-backend/internal/shared/middleware"
	"bookshop-backend/internal/shared/response"
)

type WishlistHandler struct {
	wishlistService service.ServiceInterface
}

func NewWishlistHandler(wishlistService service.ServiceInterface) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService}
}

// List returns the user's saved books
// GET /api/v1/wishlist
func (h *WishlistHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	books, err := h.wishlistService.List(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, books)
}

// Toggle adds the book to the wishlist, or removes it when already saved
// POST /api/v1/wishlist/books/:bookId/toggle
func (h *WishlistHandler) Toggle(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	bookID, err := uuid.Parse(c.Param("bookId"))
	if err != nil {
		response.BadRequest(c, "invalid book ID")
		return
	}

	result, err := h.wishlistService.Toggle(c.Request.Context(), userID, bookID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *WishlistHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrBookNotFound):
		response.NotFound(c, "Book not found")
	default:
		response.InternalServerError(c, "Something went wrong")
	}
}
