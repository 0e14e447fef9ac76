package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookshop-backend/internal/domains/review/model"
	"bookshop-backend/internal/domains/review/service"
	"bookshop-backend/internal/shared/middleware"
	"bookshop-backend/internal/shared/response"
)

type ReviewHandler struct {
	reviewService service.ServiceInterface
}

func NewReviewHandler(reviewService service.ServiceInterface) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// Create submits a review for a book
// POST /api/v1/books/:id/reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	bookID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book ID")
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req model.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	review, err := h.reviewService.Submit(c.Request.Context(), bookID, userID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, review)
}

// ListByBook lists the latest reviews of a book
// GET /api/v1/books/:id/reviews
func (h *ReviewHandler) ListByBook(c *gin.Context) {
	bookID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book ID")
		return
	}

	reviews, err := h.reviewService.ListByBook(c.Request.Context(), bookID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, reviews)
}

// ListMine lists the authenticated user's reviews
// GET /api/v1/me/reviews
func (h *ReviewHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	reviews, err := h.reviewService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, reviews)
}

func (h *ReviewHandler) respondError(c *gin.Context, err error) {
	if verrs, ok := validationErrors(err); ok {
		response.ValidationFailed(c, verrs)
		return
	}

	switch {
	case errors.Is(err, model.ErrBookNotFound):
		response.NotFound(c, "Book not found")
	case errors.Is(err, model.ErrAlreadyReviewed):
		response.Conflict(c, err.Error())
	default:
		response.InternalServerError(c, "Something went wrong")
	}
}
