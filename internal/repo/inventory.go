package repo

import (
	"context"

	"github.com/MrBaoN/RestaurantDashboard/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type InventoryRepository interface {
	Create(ctx context.Context, item *domain.InventoryItem) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.InventoryItem, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.InventoryItem, error)
	List(ctx context.Context) ([]domain.InventoryItem, error)
	Update(ctx context.Context, item *domain.InventoryItem) error
}
