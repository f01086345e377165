package repo

import (
	"context"

	"github.com/MrBaoN/RestaurantDashboard/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	Deactivate(ctx context.Context, id primitive.ObjectID) error
}
