package service

import (
	"context"
	"fmt"

	"github.com/MrBaoN/RestaurantDashboard/internal/domain"
	"github.com/MrBaoN/RestaurantDashboard/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type MenuService struct {
	menuRepo      repo.MenuRepository
	inventoryRepo repo.InventoryRepository
	logger        *zap.SugaredLogger
}

func NewMenuService(
	menuRepo repo.MenuRepository,
	inventoryRepo repo.InventoryRepository,
	logger *zap.SugaredLogger,
) *MenuService {
	return &MenuService{
		menuRepo:      menuRepo,
		inventoryRepo: inventoryRepo,
		logger:        logger,
	}
}

func (s *MenuService) Create(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error) {
	category, err := domain.NormalizeCategory(string(item.Category))
	if err != nil {
		return nil, err
	}
	item.Category = category

	recipe, err := s.resolveRecipe(ctx, item.Recipe)
	if err != nil {
		return nil, err
	}
	item.Recipe = recipe
	item.IsActive = true

	if err := s.menuRepo.Create(ctx, &item); err != nil {
		return nil, err
	}

	s.logger.Infow("menu item created", "id", item.ID.Hex(), "name", item.Name, "category", item.Category)

	return &item, nil
}

// Update replaces the stored item wholesale; in particular the recipe is
// swapped out entirely rather than patched.
func (s *MenuService) Update(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error) {
	category, err := domain.NormalizeCategory(string(item.Category))
	if err != nil {
		return nil, err
	}
	item.Category = category

	recipe, err := s.resolveRecipe(ctx, item.Recipe)
	if err != nil {
		return nil, err
	}
	item.Recipe = recipe

	if err := s.menuRepo.Update(ctx, &item); err != nil {
		return nil, err
	}

	s.logger.Infow("menu item updated", "id", item.ID.Hex(), "name", item.Name)

	return &item, nil
}

func (s *MenuService) Get(ctx context.Context, id primitive.ObjectID) (*domain.MenuItem, error) {
	return s.menuRepo.GetByID(ctx, id)
}

func (s *MenuService) List(ctx context.Context, activeOnly bool) ([]domain.MenuItem, error) {
	return s.menuRepo.List(ctx, activeOnly)
}

func (s *MenuService) Deactivate(ctx context.Context, id primitive.ObjectID) error {
	if err := s.menuRepo.Deactivate(ctx, id); err != nil {
		return err
	}

	s.logger.Infow("menu item deactivated", "id", id.Hex())

	return nil
}

// resolveRecipe drops zero-quantity lines, verifies every referenced
// inventory item exists and denormalizes its name onto the line.
func (s *MenuService) resolveRecipe(ctx context.Context, recipe []domain.RecipeLine) ([]domain.RecipeLine, error) {
	kept := make([]domain.RecipeLine, 0, len(recipe))
	ids := make([]primitive.ObjectID, 0, len(recipe))
	for _, rl := range recipe {
		if rl.Quantity <= 0 {
			continue
		}
		kept = append(kept, rl)
		ids = append(ids, rl.InventoryID)
	}

	if len(kept) == 0 {
		return kept, nil
	}

	items, err := s.inventoryRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve recipe ingredients: %w", err)
	}

	nameByID := make(map[primitive.ObjectID]string, len(items))
	for _, inv := range items {
		nameByID[inv.ID] = inv.Name
	}

	for i, rl := range kept {
		name, ok := nameByID[rl.InventoryID]
		if !ok {
			return nil, fmt.Errorf("recipe ingredient %s: %w", rl.InventoryID.Hex(), domain.ErrNotFound)
		}
		kept[i].Name = name
	}

	return kept, nil
}
