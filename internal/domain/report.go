package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DailySale is one row of the running daily aggregate, keyed by menu item
// and day. The order-event worker upserts into it; the closing report
// reads it out and clears it.
type DailySale struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Day        string             `bson:"day" json:"day"`
	MenuItemID primitive.ObjectID `bson:"menu_item_id" json:"menu_item_id"`
	Name       string             `bson:"name" json:"name"`
	Quantity   int                `bson:"quantity" json:"quantity"`
	Gross      float64            `bson:"gross" json:"gross"`
}

type ClosingReport struct {
	Lines       []DailySale `json:"lines"`
	GrossTotal  float64     `json:"gross_total"`
	GeneratedAt time.Time   `json:"generated_at"`
}
