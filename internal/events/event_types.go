package events

import (
	"time"

	"github.com/laundrahub/admin-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventOrderCreated   EventType = "order_created"
	EventOrderCompleted EventType = "order_completed"
	EventOrderDelivered EventType = "order_delivered"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	OrderID   string      `json:"order_id"`
	OrderCode string      `json:"order_code"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// OrderEventPayload carries the order snapshot notification handlers need,
// so they never have to read the database themselves.
type OrderEventPayload struct {
	CustomerName  string             `json:"customer_name"`
	CustomerPhone string             `json:"customer_phone"`
	Shop          domain.Shop        `json:"shop"`
	TotalPrice    float64            `json:"total_price"`
	AmountPaid    float64            `json:"amount_paid"`
	Balance       float64            `json:"balance"`
	Items         []domain.OrderItem `json:"items,omitempty"`
}
