package repo

import (
	"context"

	"github.com/MrBaoN/RestaurantDashboard/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MenuRepository interface {
	Create(ctx context.Context, item *domain.MenuItem) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.MenuItem, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.MenuItem, error)
	List(ctx context.Context, activeOnly bool) ([]domain.MenuItem, error)
	Update(ctx context.Context, item *domain.MenuItem) error
	Deactivate(ctx context.Context, id primitive.ObjectID) error
}
