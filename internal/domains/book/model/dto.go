package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookRequest represents the admin payload for creating/updating books
type BookRequest struct {
	Title           string     `json:"title" binding:"required"`
	Author          string     `json:"author" binding:"required"`
	ISBN            *string    `json:"isbn"`
	CategoryID      *uuid.UUID `json:"category_id"`
	Price           float64    `json:"price" binding:"required"`
	OriginalPrice   *float64   `json:"original_price"`
	Description     string     `json:"description"`
	CoverURL        *string    `json:"cover_url"`
	Publisher       string     `json:"publisher"`
	PublicationDate *time.Time `json:"publication_date"`
	Pages           *int       `json:"pages"`
	Language        string     `json:"language"`
	Condition       string     `json:"condition"`
	StockQuantity   int        `json:"stock_quantity"`
	IsFeatured      bool       `json:"is_featured"`
	IsAvailable     bool       `json:"is_available"`
}

func (r BookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 200),
		),
		validation.Field(&r.Author,
			validation.Required.Error("author is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.ISBN,
			validation.When(r.ISBN != nil, validation.Length(10, 13).Error("isbn must be 10 to 13 characters")),
		),
		validation.Field(&r.Price,
			validation.Min(0.0).Error("price must be >= 0"),
		),
		validation.Field(&r.OriginalPrice,
			validation.When(r.OriginalPrice != nil, validation.Min(0.0).Error("original_price must be >= 0")),
		),
		validation.Field(&r.Condition,
			validation.Required.Error("condition is required"),
			validation.In(
				string(ConditionNew),
				string(ConditionLikeNew),
				string(ConditionUsedGood),
				string(ConditionUsedFair),
			).Error("invalid condition"),
		),
		validation.Field(&r.StockQuantity,
			validation.Min(0).Error("stock_quantity must be >= 0"),
		),
		validation.Field(&r.Pages,
			validation.When(r.Pages != nil, validation.Min(1).Error("pages must be > 0")),
		),
	)
}

// ToBook builds a Book entity from the request. The language falls back to
// the schema default when omitted.
func (r BookRequest) ToBook() *Book {
	language := r.Language
	if language == "" {
		language = "English"
	}

	book := &Book{
		Title:           r.Title,
		Author:          r.Author,
		ISBN:            r.ISBN,
		CategoryID:      r.CategoryID,
		Price:           decimal.NewFromFloat(r.Price),
		Description:     r.Description,
		CoverURL:        r.CoverURL,
		Publisher:       r.Publisher,
		PublicationDate: r.PublicationDate,
		Pages:           r.Pages,
		Language:        language,
		Condition:       Condition(r.Condition),
		StockQuantity:   r.StockQuantity,
		IsFeatured:      r.IsFeatured,
		IsAvailable:     r.IsAvailable,
	}

	if r.OriginalPrice != nil {
		op := decimal.NewFromFloat(*r.OriginalPrice)
		book.OriginalPrice = &op
	}

	return book
}

// SearchQuery represents the public catalog search/filter parameters.
// All present filters are conjunctive; omitted filters are no-ops.
type SearchQuery struct {
	Query      string     `form:"query"`
	CategoryID *uuid.UUID `form:"category_id"`
	MinPrice   *float64   `form:"min_price"`
	MaxPrice   *float64   `form:"max_price"`
	SortBy     SortKey    `form:"sort_by"`
}

func (q SearchQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Query, validation.Length(0, 200)),
		validation.Field(&q.MinPrice,
			validation.When(q.MinPrice != nil, validation.Min(0.0).Error("min_price must be >= 0")),
		),
		validation.Field(&q.MaxPrice,
			validation.When(q.MaxPrice != nil, validation.Min(0.0).Error("max_price must be >= 0")),
		),
		validation.Field(&q.SortBy, validation.By(func(interface{}) error {
			if !q.SortBy.IsValid() {
				return ErrInvalidSortKey
			}
			return nil
		})),
	)
}

// AdminListQuery filters the admin book list: title substring plus optional
// exact category. Unavailable books are included.
type AdminListQuery struct {
	Search     string     `form:"search"`
	CategoryID *uuid.UUID `form:"category_id"`
}

// BookDetail is the book page payload: the book itself, its most recent
// reviews and related books from the same category.
type BookDetail struct {
	Book         Book            `json:"book"`
	OnSale       bool            `json:"on_sale"`
	DiscountPct  int             `json:"discount_percentage"`
	InStock      bool            `json:"in_stock"`
	Stars        RatingStars     `json:"stars"`
	Reviews      []ReviewSummary `json:"reviews"`
	RelatedBooks []Book          `json:"related_books"`
}

// ReviewSummary is a review row joined with the reviewer's username,
// shown on the book page.
type ReviewSummary struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Rating    int       `json:"rating" db:"rating"`
	Title     *string   `json:"title" db:"title"`
	Comment   string    `json:"comment" db:"comment"`
	Username  string    `json:"username" db:"username"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CategoryCount is a per-category book tally for the admin dashboard.
type CategoryCount struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	BookCount int       `json:"book_count"`
}

// CatalogStats is the admin dashboard summary.
type CatalogStats struct {
	TotalBooks      int             `json:"total_books"`
	TotalCategories int             `json:"total_categories"`
	FeaturedBooks   int             `json:"featured_books"`
	OutOfStock      int             `json:"out_of_stock"`
	RecentBooks     []Book          `json:"recent_books"`
	CategoryCounts  []CategoryCount `json:"category_counts"`
}
