package domain

// Default page sizes for list views.
const (
	RestaurantPageSize = 15
	ReviewPageSize     = 5
	// ReviewPreviewSize is how many reviews a non-subscribed member sees.
	ReviewPreviewSize = 3
)

// PageRequest holds page-number pagination parameters for list operations.
type PageRequest struct {
	Page    int // 1-based page number
	PerPage int
}

// Limit returns the effective page size, defaulting to RestaurantPageSize.
func (p PageRequest) Limit() int {
	if p.PerPage <= 0 {
		return RestaurantPageSize
	}
	return p.PerPage
}

// Offset returns the row offset for the requested page.
func (p PageRequest) Offset() int {
	page := p.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * p.Limit()
}

// Number returns the 1-based page number, clamped to at least 1.
func (p PageRequest) Number() int {
	if p.Page < 1 {
		return 1
	}
	return p.Page
}

// TotalPages returns the number of pages needed for total rows.
func (p PageRequest) TotalPages(total int64) int {
	limit := int64(p.Limit())
	if total <= 0 {
		return 1
	}
	pages := (total + limit - 1) / limit
	return int(pages)
}
