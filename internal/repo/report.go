package repo

import (
	"context"

	"github.com/MrBaoN/RestaurantDashboard/internal/domain"
)

type ReportRepository interface {
	// AddSales folds the order lines of one placed order into the daily
	// aggregate for the given day (YYYY-MM-DD).
	AddSales(ctx context.Context, day string, lines []domain.OrderLine) error
	ListDaily(ctx context.Context) ([]domain.DailySale, error)
	ClearDaily(ctx context.Context) error
}
