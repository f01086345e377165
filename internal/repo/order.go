package repo

import (
	"context"

	"github.com/MrBaoN/RestaurantDashboard/internal/domain"
)

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByNumber(ctx context.Context, number int64) (*domain.Order, error)
	// NextNumber allocates the next ticket number from the counter
	// document. Numbers are strictly increasing and never reused.
	NextNumber(ctx context.Context) (int64, error)
	HasBuilding(ctx context.Context) (bool, error)
	// ListActive returns building and waiting orders, building first,
	// then by ticket number ascending.
	ListActive(ctx context.Context) ([]domain.Order, error)
	LatestCompleted(ctx context.Context) (*domain.Order, error)
	// CompleteBuilding transitions the current building order to
	// complete. Returns nil without error when no order is building.
	CompleteBuilding(ctx context.Context) (*domain.Order, error)
	// PromoteOldestWaiting transitions the lowest-numbered waiting order
	// to building. Returns nil without error when nothing is waiting.
	PromoteOldestWaiting(ctx context.Context) (*domain.Order, error)
}
