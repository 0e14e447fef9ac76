package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Condition represents valid book conditions
type Condition string

const (
	ConditionNew      Condition = "new"
	ConditionLikeNew  Condition = "like_new"
	ConditionUsedGood Condition = "used_good"
	ConditionUsedFair Condition = "used_fair"
)

func (c Condition) IsValid() bool {
	switch c {
	case ConditionNew, ConditionLikeNew, ConditionUsedGood, ConditionUsedFair:
		return true
	}
	return false
}

func (c Condition) String() string {
	return string(c)
}

// Book represents the main book entity
type Book struct {
	// Identity
	ID     uuid.UUID `json:"id" db:"id"`
	Title  string    `json:"title" db:"title"`
	Author string    `json:"author" db:"author"`
	ISBN   *string   `json:"isbn" db:"isbn"`

	// Relationships
	CategoryID *uuid.UUID `json:"category_id" db:"category_id"`

	// Pricing
	Price         decimal.Decimal  `json:"price" db:"price"`
	OriginalPrice *decimal.Decimal `json:"original_price" db:"original_price"`

	// Content & Specs
	Description     string     `json:"description" db:"description"`
	CoverURL        *string    `json:"cover_url" db:"cover_url"`
	Publisher       string     `json:"publisher" db:"publisher"`
	PublicationDate *time.Time `json:"publication_date" db:"publication_date"`
	Pages           *int       `json:"pages" db:"pages"`
	Language        string     `json:"language" db:"language"`
	Condition       Condition  `json:"condition" db:"condition"`

	// Status & Stock
	StockQuantity int  `json:"stock_quantity" db:"stock_quantity"`
	IsFeatured    bool `json:"is_featured" db:"is_featured"`
	IsAvailable   bool `json:"is_available" db:"is_available"`

	// Derived rating cache, recomputed by the review aggregator on write.
	// May go stale if reviews are removed behind the application's back.
	AverageRating decimal.Decimal `json:"average_rating" db:"average_rating"`
	TotalReviews  int             `json:"total_reviews" db:"total_reviews"`

	// Timestamps
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// IsOnSale checks if the book has an original price higher than the current price
func (b *Book) IsOnSale() bool {
	if b.OriginalPrice == nil {
		return false
	}
	return b.OriginalPrice.GreaterThan(b.Price)
}

// DiscountPercentage calculates the discount as a rounded whole percentage
func (b *Book) DiscountPercentage() int {
	if !b.IsOnSale() {
		return 0
	}
	discount := b.OriginalPrice.Sub(b.Price)
	percentage := discount.Div(*b.OriginalPrice).Mul(decimal.NewFromInt(100))
	return int(percentage.Round(0).IntPart())
}

// IsInStock checks if the book can currently be bought
func (b *Book) IsInStock() bool {
	return b.StockQuantity > 0 && b.IsAvailable
}

// RatingStars breaks the average rating into full/half/empty star counts
// for display.
type RatingStars struct {
	Full  int `json:"full"`
	Half  int `json:"half"`
	Empty int `json:"empty"`
}

func (b *Book) Stars() RatingStars {
	full := int(b.AverageRating.IntPart())
	half := 0
	if b.AverageRating.Sub(decimal.NewFromInt(int64(full))).GreaterThanOrEqual(decimal.NewFromFloat(0.5)) {
		half = 1
	}
	return RatingStars{
		Full:  full,
		Half:  half,
		Empty: 5 - full - half,
	}
}
