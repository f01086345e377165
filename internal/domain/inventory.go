package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type InventoryItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Stock     float64            `bson:"stock" json:"stock"`
	Unit      string             `bson:"unit,omitempty" json:"unit,omitempty"`
	Cost      float64            `bson:"cost" json:"cost"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
