package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	cases := []struct {
		name       string
		page       int
		limit      int
		total      int
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{name: "empty table", page: 1, limit: 10, total: 0, totalPages: 0, hasNext: false, hasPrev: false},
		{name: "single partial page", page: 1, limit: 10, total: 3, totalPages: 1, hasNext: false, hasPrev: false},
		{name: "exact multiple", page: 1, limit: 10, total: 20, totalPages: 2, hasNext: true, hasPrev: false},
		{name: "middle page", page: 2, limit: 10, total: 25, totalPages: 3, hasNext: true, hasPrev: true},
		{name: "last page", page: 3, limit: 10, total: 25, totalPages: 3, hasNext: false, hasPrev: true},
		{name: "page beyond range", page: 9, limit: 10, total: 25, totalPages: 3, hasNext: false, hasPrev: true},
		{name: "limit one", page: 5, limit: 1, total: 5, totalPages: 5, hasNext: false, hasPrev: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPagination(tc.page, tc.limit, tc.total)
			assert.Equal(t, tc.page, p.Page)
			assert.Equal(t, tc.limit, p.Limit)
			assert.Equal(t, tc.total, p.TotalOrders)
			assert.Equal(t, tc.totalPages, p.TotalPages)
			assert.Equal(t, tc.hasNext, p.HasNextPage)
			assert.Equal(t, tc.hasPrev, p.HasPreviousPage)
		})
	}
}

func TestNewPagination_HasNextMatchesCountInequality(t *testing.T) {
	// hasNextPage must agree with page*limit < total for every in-range input.
	for page := 1; page <= 12; page++ {
		for limit := 1; limit <= 7; limit++ {
			for total := 0; total <= 40; total += 7 {
				p := NewPagination(page, limit, total)
				assert.Equal(t, page*limit < total, p.HasNextPage,
					"page=%d limit=%d total=%d", page, limit, total)
			}
		}
	}
}
