package dto

// Pagination is the listing metadata derived from a count query and the
// requested page/limit. HasNextPage and HasPreviousPage are computed, never
// queried.
type Pagination struct {
	Page            int  `json:"page"`
	Limit           int  `json:"limit"`
	TotalOrders     int  `json:"totalOrders"`
	TotalPages      int  `json:"totalPages"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// NewPagination composes pagination metadata for a page of results.
// totalPages is ceil(total/limit) and 0 for an empty result set.
func NewPagination(page, limit, total int) Pagination {
	totalPages := 0
	if total > 0 && limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{
		Page:            page,
		Limit:           limit,
		TotalOrders:     total,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}
}
