package domain

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	StatusBuilding OrderStatus = "building"
	StatusWaiting  OrderStatus = "waiting"
	StatusComplete OrderStatus = "complete"
)

var (
	ErrEmptyOrder      = errors.New("order has no lines")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// CartLine is one line of an order-in-progress as submitted by a register
// or the customer kiosk.
type CartLine struct {
	MenuItemID primitive.ObjectID `json:"menu_item_id"`
	Quantity   int                `json:"quantity"`
}

// OrderLine is a persisted cart line with the name and unit price captured
// at placement time.
type OrderLine struct {
	MenuItemID primitive.ObjectID `bson:"menu_item_id" json:"menu_item_id"`
	Name       string             `bson:"name" json:"name"`
	Price      float64            `bson:"price" json:"price"`
	Quantity   int                `bson:"quantity" json:"quantity"`
}

// Order is an entry in the append-only order ledger. Number is a
// monotonically increasing ticket number; it drives FIFO ordering of the
// waiting lane and is what customers see on the board. At most one order
// holds StatusBuilding at any time.
type Order struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Number      int64               `bson:"number" json:"number"`
	EmployeeID  *primitive.ObjectID `bson:"employee_id,omitempty" json:"employee_id,omitempty"`
	PlacedAt    time.Time           `bson:"placed_at" json:"placed_at"`
	Total       float64             `bson:"total" json:"total"`
	Status      OrderStatus         `bson:"status" json:"status"`
	CompletedAt *time.Time          `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
	Lines       []OrderLine         `bson:"lines" json:"lines"`
}

// KitchenItem is one order line expanded with the total ingredient amounts
// the kitchen needs to pull for it.
type KitchenItem struct {
	MenuItemID  primitive.ObjectID `json:"menu_item_id"`
	Name        string             `json:"name"`
	Quantity    int                `json:"quantity"`
	Ingredients []IngredientAmount `json:"ingredients"`
}

// KitchenOrder is the kitchen display projection of one active order.
type KitchenOrder struct {
	Number   int64         `json:"number"`
	Status   OrderStatus   `json:"status"`
	PlacedAt time.Time     `json:"placed_at"`
	Items    []KitchenItem `json:"items"`
}

// BoardEntry is the customer-facing board projection: just the ticket
// number and where it is in the lane.
type BoardEntry struct {
	Number int64       `json:"number"`
	Status OrderStatus `json:"status"`
}

// OrderAudit records one lifecycle event of an order, written
// asynchronously by the order-event worker.
type OrderAudit struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderID   string             `bson:"order_id" json:"order_id"`
	Number    int64              `bson:"number" json:"number"`
	EventType string             `bson:"event_type" json:"event_type"`
	OldStatus string             `bson:"old_status,omitempty" json:"old_status,omitempty"`
	NewStatus string             `bson:"new_status" json:"new_status"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}
