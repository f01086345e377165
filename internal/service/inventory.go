package service

import (
	"context"

	"github.com/MrBaoN/RestaurantDashboard/internal/domain"
	"github.com/MrBaoN/RestaurantDashboard/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type InventoryService struct {
	inventoryRepo repo.InventoryRepository
	logger        *zap.SugaredLogger
}

func NewInventoryService(inventoryRepo repo.InventoryRepository, logger *zap.SugaredLogger) *InventoryService {
	return &InventoryService{
		inventoryRepo: inventoryRepo,
		logger:        logger,
	}
}

func (s *InventoryService) Create(ctx context.Context, item domain.InventoryItem) (*domain.InventoryItem, error) {
	if item.Stock < 0 {
		return nil, domain.ErrInvalidQuantity
	}

	if err := s.inventoryRepo.Create(ctx, &item); err != nil {
		return nil, err
	}

	s.logger.Infow("inventory item created", "id", item.ID.Hex(), "name", item.Name, "stock", item.Stock)

	return &item, nil
}

func (s *InventoryService) Update(ctx context.Context, item domain.InventoryItem) (*domain.InventoryItem, error) {
	if item.Stock < 0 {
		return nil, domain.ErrInvalidQuantity
	}

	if err := s.inventoryRepo.Update(ctx, &item); err != nil {
		return nil, err
	}

	s.logger.Infow("inventory item updated", "id", item.ID.Hex(), "name", item.Name, "stock", item.Stock)

	return &item, nil
}

func (s *InventoryService) Get(ctx context.Context, id primitive.ObjectID) (*domain.InventoryItem, error) {
	return s.inventoryRepo.GetByID(ctx, id)
}

func (s *InventoryService) List(ctx context.Context) ([]domain.InventoryItem, error) {
	return s.inventoryRepo.List(ctx)
}
