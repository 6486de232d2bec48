package models

import (
	"time"
)

type OrderStatus string

const (
	StatusWaiting      OrderStatus = "WAITING"
	StatusInProduction OrderStatus = "IN_PRODUCTION"
	StatusDone         OrderStatus = "DONE"
)

func (s OrderStatus) IsValid() bool {
	return s == StatusWaiting || s == StatusInProduction || s == StatusDone
}

// Next returns the status an order moves to when advanced. The sequence is
// forward-only; DONE is terminal and reports ok=false.
func (s OrderStatus) Next() (OrderStatus, bool) {
	switch s {
	case StatusWaiting:
		return StatusInProduction, true
	case StatusInProduction:
		return StatusDone, true
	default:
		return "", false
	}
}

// OrderProduct is the product snapshot embedded in an order line.
type OrderProduct struct {
	ID    string  `json:"_id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type OrderItem struct {
	Product  OrderProduct `json:"product"`
	Quantity int          `json:"quantity"`
}

// Order is the backend-authoritative record of a submitted cart. Total is
// computed by the server; clients display it as returned.
type Order struct {
	ID        string      `json:"_id"`
	Table     string      `json:"table"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"createAt"`
	Products  []OrderItem `json:"products"`
	Total     float64     `json:"total"`
}
