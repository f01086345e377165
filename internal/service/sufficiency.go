package service

import (
	"context"
	"fmt"

	"github.com/MrBaoN/RestaurantDashboard/internal/domain"
	"github.com/MrBaoN/RestaurantDashboard/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// SufficiencyService answers whether current inventory covers a cart's
// aggregated ingredient demand. It only ever reads; placing an order does
// not decrement stock.
type SufficiencyService struct {
	menuRepo      repo.MenuRepository
	inventoryRepo repo.InventoryRepository
	logger        *zap.SugaredLogger
}

func NewSufficiencyService(
	menuRepo repo.MenuRepository,
	inventoryRepo repo.InventoryRepository,
	logger *zap.SugaredLogger,
) *SufficiencyService {
	return &SufficiencyService{
		menuRepo:      menuRepo,
		inventoryRepo: inventoryRepo,
		logger:        logger,
	}
}

// Check expands every cart line through its recipe, aggregates demand per
// inventory item across the whole cart, and compares against stock.
// Ingredients are checked in the order they are first encountered while
// walking the cart, so the same cart against the same stock always
// reports the same shortage. The first ingredient whose demand exceeds
// stock short-circuits the check.
func (s *SufficiencyService) Check(ctx context.Context, cart []domain.CartLine) (*domain.SufficiencyReport, error) {
	if len(cart) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	for _, line := range cart {
		if line.Quantity <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
	}

	menuIDs := make([]primitive.ObjectID, 0, len(cart))
	seen := make(map[primitive.ObjectID]bool, len(cart))
	for _, line := range cart {
		if !seen[line.MenuItemID] {
			seen[line.MenuItemID] = true
			menuIDs = append(menuIDs, line.MenuItemID)
		}
	}

	menuItems, err := s.menuRepo.GetByIDs(ctx, menuIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu items: %w", err)
	}

	itemByID := make(map[primitive.ObjectID]domain.MenuItem, len(menuItems))
	for _, item := range menuItems {
		itemByID[item.ID] = item
	}

	demand := make(map[primitive.ObjectID]float64)
	consumers := make(map[primitive.ObjectID][]string)
	ingredientName := make(map[primitive.ObjectID]string)
	// first-encounter order of ingredients, the deterministic check order
	var checkOrder []primitive.ObjectID

	report := &domain.SufficiencyReport{
		Items: make([]domain.ItemBreakdown, 0, len(cart)),
	}

	for _, line := range cart {
		item, ok := itemByID[line.MenuItemID]
		if !ok {
			return nil, fmt.Errorf("menu item %s: %w", line.MenuItemID.Hex(), domain.ErrNotFound)
		}
		if !item.IsActive {
			return nil, fmt.Errorf("%q: %w", item.Name, domain.ErrMenuItemUnavailable)
		}

		breakdown := domain.ItemBreakdown{
			MenuItemID:  item.ID,
			Name:        item.Name,
			UnitPrice:   item.Price,
			Quantity:    line.Quantity,
			Ingredients: make([]domain.IngredientAmount, 0, len(item.Recipe)),
		}

		for _, rl := range item.Recipe {
			amount := rl.Quantity * float64(line.Quantity)
			breakdown.Ingredients = append(breakdown.Ingredients, domain.IngredientAmount{
				Name:   rl.Name,
				Amount: amount,
			})

			if _, tracked := demand[rl.InventoryID]; !tracked {
				checkOrder = append(checkOrder, rl.InventoryID)
				ingredientName[rl.InventoryID] = rl.Name
			}
			demand[rl.InventoryID] += amount
			consumers[rl.InventoryID] = append(consumers[rl.InventoryID],
				fmt.Sprintf("%s x%d", item.Name, line.Quantity))
		}

		report.Items = append(report.Items, breakdown)
	}

	// a cart of empty recipes has nothing to check
	if len(checkOrder) == 0 {
		return report, nil
	}

	stockItems, err := s.inventoryRepo.GetByIDs(ctx, checkOrder)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}

	stock := make(map[primitive.ObjectID]float64, len(stockItems))
	for _, inv := range stockItems {
		stock[inv.ID] = inv.Stock
		// prefer the ledger's name over the denormalized recipe copy
		ingredientName[inv.ID] = inv.Name
	}

	for _, invID := range checkOrder {
		available := stock[invID] // missing ledger entry reads as zero stock
		if demand[invID] > available {
			s.logger.Infow("insufficient stock",
				"ingredient", ingredientName[invID],
				"needed", demand[invID],
				"available", available,
			)
			return nil, &domain.InsufficientStockError{
				Shortage: domain.Shortage{
					IngredientName: ingredientName[invID],
					Available:      available,
					Needed:         demand[invID],
					ConsumedBy:     consumers[invID],
				},
			}
		}
	}

	return report, nil
}
