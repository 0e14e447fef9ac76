package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookshop-backend/internal/domains/cart/model"
	"bookshop-backend/internal/domains/cart/service"
	"bookshop-backend/internal/shared/middleware"
	"bookshop-backend/internal/shared/response"
)

type CartHandler struct {
	cartService service.ServiceInterface
}

func NewCartHandler(cartService service.ServiceInterface) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// Get returns the user's cart with totals
// GET /api/v1/cart
func (h *CartHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	cart, err := h.cartService.GetCart(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, cart)
}

// AddBook adds a book to the cart or bumps its quantity
// POST /api/v1/cart/books/:bookId
func (h *CartHandler) AddBook(c *gin.Context) {
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

	item, err := h.cartService.AddBook(c.Request.Context(), userID, bookID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, item)
}

// UpdateQuantity sets a cart line to an absolute quantity
// PUT /api/v1/cart/items/:itemId
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		response.BadRequest(c, "invalid item ID")
		return
	}

	var req model.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.cartService.UpdateQuantity(c.Request.Context(), userID, itemID, req.Quantity); err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"updated": true})
}

// RemoveItem takes a line out of the cart
// DELETE /api/v1/cart/items/:itemId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		response.BadRequest(c, "invalid item ID")
		return
	}

	if err := h.cartService.RemoveItem(c.Request.Context(), userID, itemID); err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"removed": true})
}

// Clear empties the cart
// DELETE /api/v1/cart
func (h *CartHandler) Clear(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	if err := h.cartService.Clear(c.Request.Context(), userID); err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"cleared": true})
}

func (h *CartHandler) respondError(c *gin.Context, err error) {
	if verrs, ok := validationErrors(err); ok {
		response.ValidationFailed(c, verrs)
		return
	}

	switch {
	case errors.Is(err, model.ErrBookNotFound):
		response.NotFound(c, "Book not found")
	case errors.Is(err, model.ErrCartItemNotFound):
		response.NotFound(c, "Cart item not found")
	default:
		response.InternalServerError(c, "Something went wrong")
	}
}
