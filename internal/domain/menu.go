package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category string

const (
	CategoryEntree Category = "entree"
	CategorySide   Category = "side"
	CategoryDrink  Category = "drink"
	CategoryExtra  Category = "extra"
)

var ErrInvalidCategory = errors.New("invalid menu category")

// NormalizeCategory lowercases the input and rejects anything outside the
// four recognized categories.
func NormalizeCategory(raw string) (Category, error) {
	switch c := Category(strings.ToLower(strings.TrimSpace(raw))); c {
	case CategoryEntree, CategorySide, CategoryDrink, CategoryExtra:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, raw)
	}
}

// RecipeLine maps a menu item to one inventory item it consumes per unit
// sold. Name is denormalized from the inventory record at write time.
type RecipeLine struct {
	InventoryID primitive.ObjectID `bson:"inventory_id" json:"inventory_id"`
	Name        string             `bson:"name" json:"name"`
	Quantity    float64            `bson:"quantity" json:"quantity"`
}

type MenuItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Price       float64            `bson:"price" json:"price"`
	Category    Category           `bson:"category" json:"category"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	IsActive    bool               `bson:"is_active" json:"is_active"`
	Recipe      []RecipeLine       `bson:"recipe" json:"recipe"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
