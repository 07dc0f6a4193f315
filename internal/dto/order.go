package dto

import "time"

// CreateOrderRequest is the payload for POST /orders. All six business
// fields are required; a zero value counts as absent.
type CreateOrderRequest struct {
	CustomerName string  `json:"customer_name" validate:"required"`
	Product      string  `json:"product" validate:"required"`
	Quantity     int     `json:"quantity" validate:"required,gt=0"`
	Amount       float64 `json:"amount" validate:"required,gt=0"`
	Status       string  `json:"status" validate:"required,oneof=pending processing completed cancelled"`
	OrderDate    string  `json:"order_date" validate:"required"`
}

// UpdateOrderRequest is the payload for PUT /orders/:id. Every field is
// optional; presence is tracked through pointers so a supplied zero can be
// told apart from an omitted field.
type UpdateOrderRequest struct {
	CustomerName *string  `json:"customer_name"`
	Product      *string  `json:"product"`
	Quantity     *int     `json:"quantity" validate:"omitnil,gt=0"`
	Amount       *float64 `json:"amount" validate:"omitnil,gt=0"`
	Status       *string  `json:"status" validate:"omitnil,oneof=pending processing completed cancelled"`
	OrderDate    *string  `json:"order_date"`
}

// ListOrdersParams carries the raw query parameters of GET /orders before
// validation. Everything stays a string here; the validator owns parsing,
// defaulting, and range checks.
type ListOrdersParams struct {
	Page      string
	Limit     string
	Status    string
	MinAmount string
	MaxAmount string
	StartDate string
	EndDate   string
}

// OrderResponse represents an order as exposed via transport layers.
type OrderResponse struct {
	ID           int64     `json:"id"`
	CustomerName string    `json:"customer_name"`
	Product      string    `json:"product"`
	Quantity     int       `json:"quantity"`
	Amount       float64   `json:"amount"`
	Status       string    `json:"status"`
	OrderDate    string    `json:"order_date"`
	CreatedAt    time.Time `json:"created_at"`
}
