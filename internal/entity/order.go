package entity

import (
	"time"

	"github.com/uptrace/bun"
)

// Order statuses accepted by the API and enforced by the orders table
// CHECK constraint. The status field is opaque business data; any status
// may be replaced by any other at any time.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Statuses lists every accepted order status.
func Statuses() []string {
	return []string{StatusPending, StatusProcessing, StatusCompleted, StatusCancelled}
}

// ValidStatus reports whether s is one of the enumerated statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// Order represents a purchase order stored in the relational database.
// OrderDate is kept as a YYYY-MM-DD string and compared lexicographically,
// which matches calendar ordering for that format.
type Order struct {
	bun.BaseModel `bun:"table:orders"`

	ID           int64     `bun:",pk,autoincrement"`
	CustomerName string    `bun:"customer_name"`
	Product      string    `bun:"product"`
	Quantity     int       `bun:"quantity"`
	Amount       float64   `bun:"amount"`
	Status       string    `bun:"status"`
	OrderDate    string    `bun:"order_date"`
	CreatedAt    time.Time `bun:"created_at,nullzero,notnull,default:CURRENT_TIMESTAMP"`
}
