package domain

import "time"

const (
	EventOrderPlaced        = "order.placed"
	EventOrderStatusChanged = "order.status_changed"
)

// OrderEvent is published to the order-events queue on placement and on
// every lane transition. Lines are carried on placement events so the
// worker can maintain the daily sales aggregate without re-reading the
// order.
type OrderEvent struct {
	EventType string      `json:"event_type"`
	OrderID   string      `json:"order_id"`
	Number    int64       `json:"number"`
	OldStatus string      `json:"old_status,omitempty"`
	NewStatus string      `json:"new_status"`
	Total     float64     `json:"total,omitempty"`
	Lines     []OrderLine `json:"lines,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}
