package order

import "github.com/uptrace/bun"

// Filter is the normalized filter set for listing orders. Zero-valued
// dimensions contribute no predicate.
type Filter struct {
	Page      int
	Limit     int
	Status    string
	MinAmount *float64
	MaxAmount *float64
	StartDate string
	EndDate   string
}

// Assignment names one column to overwrite during an update. Values travel
// as bound parameters, never as query text.
type Assignment struct {
	Column string
	Value  any
}

// cond is a single AND conjunct: a placeholder expression plus its bound
// value.
type cond struct {
	expr string
	arg  any
}

func (f Filter) conjuncts() []cond {
	var conds []cond
	if f.Status != "" {
		conds = append(conds, cond{"status = ?", f.Status})
	}
	if f.MinAmount != nil {
		conds = append(conds, cond{"amount >= ?", *f.MinAmount})
	}
	if f.MaxAmount != nil {
		conds = append(conds, cond{"amount <= ?", *f.MaxAmount})
	}
	if f.StartDate != "" {
		conds = append(conds, cond{"order_date >= ?", f.StartDate})
	}
	if f.EndDate != "" {
		conds = append(conds, cond{"order_date <= ?", f.EndDate})
	}
	return conds
}

// apply adds every active conjunct to the query. Conjuncts combine with
// AND only; an empty filter matches all rows.
func (f Filter) apply(q *bun.SelectQuery) *bun.SelectQuery {
	for _, c := range f.conjuncts() {
		q = q.Where(c.expr, c.arg)
	}
	return q
}

// Offset converts the 1-based page into a row offset.
func (f Filter) Offset() int {
	return (f.Page - 1) * f.Limit
}
