package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookshop-backend/internal/domains/book/model"
	"bookshop-backend/internal/domains/book/service"
	"bookshop-backend/internal/shared/middleware"
	"bookshop-backend/internal/shared/response"
)

type BookHandler struct {
	bookService service.ServiceInterface
}

func NewBookHandler(bookService service.ServiceInterface) *BookHandler {
	return &BookHandler{bookService: bookService}
}

// Search lists available books matching the query parameters
// GET /api/v1/books
func (h *BookHandler) Search(c *gin.Context) {
	q, err := parseSearchQuery(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	books, err := h.bookService.Search(c.Request.Context(), q)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, books, &response.Meta{Total: len(books)})
}

// GetDetail returns the book page payload
// GET /api/v1/books/:id
func (h *BookHandler) GetDetail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book ID")
		return
	}

	detail, err := h.bookService.GetDetail(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, detail)
}

// ListFeatured returns the featured shelf
// GET /api/v1/books/featured
func (h *BookHandler) ListFeatured(c *gin.Context) {
	books, err := h.bookService.ListFeatured(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, books)
}

// ListTopRated returns the best rated shelf
// GET /api/v1/books/top-rated
func (h *BookHandler) ListTopRated(c *gin.Context) {
	books, err := h.bookService.ListTopRated(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, books)
}

// ListLatest returns the newest arrivals shelf
// GET /api/v1/books/latest
func (h *BookHandler) ListLatest(c *gin.Context) {
	books, err := h.bookService.ListLatest(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, books)
}

// ListRecommended returns books picked for the authenticated user
// GET /api/v1/me/recommendations
func (h *BookHandler) ListRecommended(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	books, err := h.bookService.ListRecommended(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, books)
}

// AdminList lists all books, unavailable ones included
// GET /api/v1/admin/books
func (h *BookHandler) AdminList(c *gin.Context) {
	var q model.AdminListQuery
	q.Search = c.Query("search")

	if raw := c.Query("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "invalid category_id")
			return
		}
		q.CategoryID = &id
	}

	books, err := h.bookService.AdminList(c.Request.Context(), q)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, books, &response.Meta{Total: len(books)})
}

// GetByID returns a single book regardless of availability
// GET /api/v1/admin/books/:id
func (h *BookHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book ID")
		return
	}

	book, err := h.bookService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, book)
}

// Create adds a new book
// POST /api/v1/admin/books
func (h *BookHandler) Create(c *gin.Context) {
	var req model.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	book, err := h.bookService.Create(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, book)
}

// Update edits a book
// PUT /api/v1/admin/books/:id
func (h *BookHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book ID")
		return
	}

	var req model.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	book, err := h.bookService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, book)
}

// Delete removes a book and its reviews
// DELETE /api/v1/admin/books/:id
func (h *BookHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book ID")
		return
	}

	title, err := h.bookService.Delete(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true, "title": title})
}

// Stats returns the admin dashboard summary
// GET /api/v1/admin/stats
func (h *BookHandler) Stats(c *gin.Context) {
	stats, err := h.bookService.Stats(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}

func parseSearchQuery(c *gin.Context) (model.SearchQuery, error) {
	q := model.SearchQuery{
		Query:  c.Query("query"),
		SortBy: model.SortKey(c.Query("sort_by")),
	}

	if raw := c.Query("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return q, errors.New("invalid category_id")
		}
		q.CategoryID = &id
	}

	if raw := c.Query("min_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return q, errors.New("invalid min_price")
		}
		q.MinPrice = &v
	}

	if raw := c.Query("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return q, errors.New("invalid max_price")
		}
		q.MaxPrice = &v
	}

	return q, nil
}

func (h *BookHandler) respondError(c *gin.Context, err error) {
	if verrs, ok := validationErrors(err); ok {
		response.ValidationFailed(c, verrs)
		return
	}

	switch {
	case errors.Is(err, model.ErrBookNotFound):
		response.NotFound(c, "Book not found")
	case errors.Is(err, model.ErrISBNExists):
		response.Conflict(c, err.Error())
	case errors.Is(err, model.ErrInvalidSortKey):
		response.BadRequest(c, err.Error())
	default:
		response.InternalServerError(c, "Something went wrong")
	}
}
