package domain

import "strings"

// Sort columns accepted by the restaurant listing. "rating" orders by the
// average review score, "popular" by the reservation count; both are
// computed in the listing query itself.
const (
	SortColumnCreatedAt   = "created_at"
	SortColumnLowestPrice = "lowest_price"
	SortColumnRating      = "rating"
	SortColumnPopular     = "popular"

	SortAsc  = "asc"
	SortDesc = "desc"
)

// SortSpec is a validated (column, direction) pair for restaurant listings.
type SortSpec struct {
	Column    string
	Direction string
}

// DefaultSort orders by newest listing first.
func DefaultSort() SortSpec {
	return SortSpec{Column: SortColumnCreatedAt, Direction: SortDesc}
}

// Token returns the wire form "<column> <direction>".
func (s SortSpec) Token() string { return s.Column + " " + s.Direction }

var sortColumns = map[string]bool{
	SortColumnCreatedAt:   true,
	SortColumnLowestPrice: true,
	SortColumnRating:      true,
	SortColumnPopular:     true,
}

// ParseSortToken validates a "<column> <direction>" token against the
// whitelist. Invalid or absent input falls back to the default order; the
// token is split on the first space only.
func ParseSortToken(token string) SortSpec {
	token = strings.TrimSpace(token)
	if token == "" {
		return DefaultSort()
	}
	column, direction, found := strings.Cut(token, " ")
	if !found {
		return DefaultSort()
	}
	if !sortColumns[column] {
		return DefaultSort()
	}
	if direction != SortAsc && direction != SortDesc {
		return DefaultSort()
	}
	return SortSpec{Column: column, Direction: direction}
}

// RestaurantQuery is the deterministic filter+sort+paginate specification
// the discovery query builder produces. Zero values mean "no filter".
type RestaurantQuery struct {
	Keyword    string // case-insensitive substring over name, address, category name
	CategoryID int64
	MaxPrice   int // restricts to lowest_price <= MaxPrice when > 0
	Sort       SortSpec
	Page       PageRequest
}
