package model

// SortKey is one of the enumerated catalog sort orders. A leading "-"
// means descending.
type SortKey string

const (
	SortTitleAsc      SortKey = "title"
	SortTitleDesc     SortKey = "-title"
	SortPriceAsc      SortKey = "price"
	SortPriceDesc     SortKey = "-price"
	SortRatingDesc    SortKey = "-average_rating"
	SortCreatedAtDesc SortKey = "-created_at"
)

// orderClauses maps each sort key to an explicit (column, direction) pair.
// Values are fixed strings, never derived from user input.
var orderClauses = map[SortKey]string{
	SortTitleAsc:      "b.title ASC",
	SortTitleDesc:     "b.title DESC",
	SortPriceAsc:      "b.price ASC",
	SortPriceDesc:     "b.price DESC",
	SortRatingDesc:    "b.average_rating DESC",
	SortCreatedAtDesc: "b.created_at DESC",
}

func (k SortKey) IsValid() bool {
	if k == "" {
		return true // default order
	}
	_, ok := orderClauses[k]
	return ok
}

// OrderClause returns the SQL ORDER BY expression for the key.
// The empty key falls back to the entity default, most-recent-first.
func (k SortKey) OrderClause() string {
	if clause, ok := orderClauses[k]; ok {
		return clause
	}
	return orderClauses[SortCreatedAtDesc]
}
