package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortKey_IsValid(t *testing.T) {
	valid := []SortKey{"", "title", "-title", "price", "-price", "-average_rating", "-created_at"}
	for _, k := range valid {
		assert.True(t, k.IsValid(), string(k))
	}

	invalid := []SortKey{"author", "-price; DROP TABLE books", "created_at", "rating"}
	for _, k := range invalid {
		assert.False(t, k.IsValid(), string(k))
	}
}

func TestSortKey_OrderClause(t *testing.T) {
	tests := []struct {
		key  SortKey
		want string
	}{
		{SortTitleAsc, "b.title ASC"},
		{SortTitleDesc, "b.title DESC"},
		{SortPriceAsc, "b.price ASC"},
		{SortPriceDesc, "b.price DESC"},
		{SortRatingDesc, "b.average_rating DESC"},
		{SortCreatedAtDesc, "b.created_at DESC"},
		{"", "b.created_at DESC"},
		{"garbage", "b.created_at DESC"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.key.OrderClause(), string(tt.key))
	}
}
