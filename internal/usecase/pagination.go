package usecase

// Page carries the common pagination request parameters. Zero values are
// normalized to the first page with the default limit.
type Page struct {
	Page  int
	Limit int
}

const defaultPageLimit = 10

// Normalize clamps the parameters to sane values.
func (p Page) Normalize() Page {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = defaultPageLimit
	}

	return p
}

// Pagination is the listing envelope shared by every paginated response.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// NewPagination derives the envelope from a total row count and a page request.
func NewPagination(total int64, page Page) Pagination {
	totalPages := int((total + int64(page.Limit) - 1) / int64(page.Limit))

	return Pagination{
		Total:      total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: totalPages,
	}
}
