package domain

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Shortage describes the first inventory item whose aggregated demand
// exceeded its stock, along with the cart lines that consume it.
type Shortage struct {
	IngredientName string   `json:"ingredient_name"`
	Available      float64  `json:"available_stock"`
	Needed         float64  `json:"needed_stock"`
	ConsumedBy     []string `json:"consumed_by"`
}

// InsufficientStockError rejects a cart whose ingredient demand cannot be
// covered by current stock. Only the first shortage found is reported.
type InsufficientStockError struct {
	Shortage Shortage
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock of %s: need %.2f, have %.2f",
		e.Shortage.IngredientName, e.Shortage.Needed, e.Shortage.Available)
}

type IngredientAmount struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// ItemBreakdown is one cart line with its ingredient demand already
// multiplied by the ordered quantity.
type ItemBreakdown struct {
	MenuItemID  primitive.ObjectID `json:"menu_item_id"`
	Name        string             `json:"name"`
	UnitPrice   float64            `json:"unit_price"`
	Quantity    int                `json:"quantity"`
	Ingredients []IngredientAmount `json:"ingredients"`
}

// SufficiencyReport is the per-item demand breakdown of a cart that passed
// the stock check. The kitchen view consumes the same shape.
type SufficiencyReport struct {
	Items []ItemBreakdown `json:"items"`
}
