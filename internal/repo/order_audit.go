package repo

import (
	"context"

	"github.com/MrBaoN/RestaurantDashboard/internal/domain"
)

type OrderAuditRepository interface {
	Create(ctx context.Context, audit *domain.OrderAudit) error
	GetByOrderNumber(ctx context.Context, number int64, limit int) ([]domain.OrderAudit, error)
}
