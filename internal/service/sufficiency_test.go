package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MrBaoN/RestaurantDashboard/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newSufficiencyHarness() (*SufficiencyService, *fakeMenuRepo, *fakeInventoryRepo) {
	menuRepo := newFakeMenuRepo()
	inventoryRepo := newFakeInventoryRepo()
	svc := NewSufficiencyService(menuRepo, inventoryRepo, zap.NewNop().Sugar())
	return svc, menuRepo, inventoryRepo
}

func addIngredient(t *testing.T, repo *fakeInventoryRepo, name string, stock float64) primitive.ObjectID {
	t.Helper()
	item := &domain.InventoryItem{Name: name, Stock: stock}
	if err := repo.Create(context.Background(), item); err != nil {
		t.Fatalf("create ingredient: %v", err)
	}
	return item.ID
}

func addMenuItem(t *testing.T, repo *fakeMenuRepo, name string, price float64, recipe []domain.RecipeLine) primitive.ObjectID {
	t.Helper()
	item := &domain.MenuItem{
		Name:     name,
		Price:    price,
		Category: domain.CategoryEntree,
		IsActive: true,
		Recipe:   recipe,
	}
	if err := repo.Create(context.Background(), item); err != nil {
		t.Fatalf("create menu item: %v", err)
	}
	return item.ID
}

func TestCheck_SufficientStock(t *testing.T) {
	svc, menuRepo, inventoryRepo := newSufficiencyHarness()

	// Entree-X needs 2 units of Ingredient-Y, stock(Y)=5; cart of 2 means
	// demand 4 <= 5.
	yID := addIngredient(t, inventoryRepo, "Ingredient-Y", 5)
	xID := addMenuItem(t, menuRepo, "Entree-X", 9.5, []domain.RecipeLine{
		{InventoryID: yID, Name: "Ingredient-Y", Quantity: 2},
	})

	report, err := svc.Check(context.Background(), []domain.CartLine{{MenuItemID: xID, Quantity: 2}})
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}

	if len(report.Items) != 1 {
		t.Fatalf("breakdown items = %d, want 1", len(report.Items))
	}
	item := report.Items[0]
	if item.Name != "Entree-X" || item.Quantity != 2 {
		t.Errorf("breakdown = %q x%d, want Entree-X x2", item.Name, item.Quantity)
	}
	if len(item.Ingredients) != 1 {
		t.Fatalf("ingredients = %d, want 1", len(item.Ingredients))
	}
	if got := item.Ingredients[0].Amount; got != 4 {
		t.Errorf("ingredient amount = %v, want 4", got)
	}
}

func TestCheck_Shortage(t *testing.T) {
	svc, menuRepo, inventoryRepo := newSufficiencyHarness()

	yID := addIngredient(t, inventoryRepo, "Ingredient-Y", 3)
	xID := addMenuItem(t, menuRepo, "Entree-X", 9.5, []domain.RecipeLine{
		{InventoryID: yID, Name: "Ingredient-Y", Quantity: 2},
	})

	_, err := svc.Check(context.Background(), []domain.CartLine{{MenuItemID: xID, Quantity: 2}})

	var stockErr *domain.InsufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("Check error = %v, want InsufficientStockError", err)
	}
	if stockErr.Shortage.IngredientName != "Ingredient-Y" {
		t.Errorf("shortage ingredient = %q, want Ingredient-Y", stockErr.Shortage.IngredientName)
	}
	if stockErr.Shortage.Available != 3 || stockErr.Shortage.Needed != 4 {
		t.Errorf("shortage = have %v need %v, want have 3 need 4",
			stockErr.Shortage.Available, stockErr.Shortage.Needed)
	}
	if len(stockErr.Shortage.ConsumedBy) != 1 || stockErr.Shortage.ConsumedBy[0] != "Entree-X x2" {
		t.Errorf("consumed by = %v, want [Entree-X x2]", stockErr.Shortage.ConsumedBy)
	}
}

func TestCheck_AggregatesAcrossLines(t *testing.T) {
	svc, menuRepo, inventoryRepo := newSufficiencyHarness()

	// two menu items share one ingredient; each line alone fits but the
	// cart's aggregated demand does not
	riceID := addIngredient(t, inventoryRepo, "Rice", 10)
	bowlID := addMenuItem(t, menuRepo, "Rice Bowl", 8, []domain.RecipeLine{
		{InventoryID: riceID, Name: "Rice", Quantity: 3},
	})
	plateID := addMenuItem(t, menuRepo, "Rice Plate", 10, []domain.RecipeLine{
		{InventoryID: riceID, Name: "Rice", Quantity: 4},
	})

	_, err := svc.Check(context.Background(), []domain.CartLine{
		{MenuItemID: bowlID, Quantity: 2},
		{MenuItemID: plateID, Quantity: 2},
	})

	var stockErr *domain.InsufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("Check error = %v, want InsufficientStockError", err)
	}
	if stockErr.Shortage.Needed != 14 {
		t.Errorf("aggregated demand = %v, want 14", stockErr.Shortage.Needed)
	}
	if len(stockErr.Shortage.ConsumedBy) != 2 {
		t.Errorf("consumed by = %v, want both menu items", stockErr.Shortage.ConsumedBy)
	}
}

func TestCheck_FirstShortageWins(t *testing.T) {
	svc, menuRepo, inventoryRepo := newSufficiencyHarness()

	// both ingredients are short; the one encountered first while walking
	// the cart must be reported, every run
	aID := addIngredient(t, inventoryRepo, "Chicken", 1)
	bID := addIngredient(t, inventoryRepo, "Noodles", 1)
	comboID := addMenuItem(t, menuRepo, "Chicken Noodles", 12, []domain.RecipeLine{
		{InventoryID: aID, Name: "Chicken", Quantity: 2},
		{InventoryID: bID, Name: "Noodles", Quantity: 2},
	})

	for i := 0; i < 25; i++ {
		_, err := svc.Check(context.Background(), []domain.CartLine{{MenuItemID: comboID, Quantity: 1}})
		var stockErr *domain.InsufficientStockError
		if !errors.As(err, &stockErr) {
			t.Fatalf("run %d: error = %v, want InsufficientStockError", i, err)
		}
		if stockErr.Shortage.IngredientName != "Chicken" {
			t.Fatalf("run %d: shortage = %q, want Chicken (first in recipe order)",
				i, stockErr.Shortage.IngredientName)
		}
	}
}

func TestCheck_EmptyRecipeIsTriviallySufficient(t *testing.T) {
	svc, menuRepo, _ := newSufficiencyHarness()

	sodaID := addMenuItem(t, menuRepo, "Fountain Soda", 2.5, nil)

	report, err := svc.Check(context.Background(), []domain.CartLine{{MenuItemID: sodaID, Quantity: 3}})
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if len(report.Items) != 1 || len(report.Items[0].Ingredients) != 0 {
		t.Errorf("empty recipe breakdown = %+v, want one item with no ingredients", report.Items)
	}
}

func TestCheck_EmptyCart(t *testing.T) {
	svc, _, _ := newSufficiencyHarness()

	_, err := svc.Check(context.Background(), nil)
	if !errors.Is(err, domain.ErrEmptyOrder) {
		t.Errorf("Check error = %v, want ErrEmptyOrder", err)
	}
}

func TestCheck_NonPositiveQuantity(t *testing.T) {
	svc, menuRepo, _ := newSufficiencyHarness()

	sodaID := addMenuItem(t, menuRepo, "Fountain Soda", 2.5, nil)

	_, err := svc.Check(context.Background(), []domain.CartLine{{MenuItemID: sodaID, Quantity: 0}})
	if !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Errorf("Check error = %v, want ErrInvalidQuantity", err)
	}
}

func TestCheck_InactiveMenuItem(t *testing.T) {
	svc, menuRepo, _ := newSufficiencyHarness()

	id := addMenuItem(t, menuRepo, "Retired Special", 11, nil)
	if err := menuRepo.Deactivate(context.Background(), id); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	_, err := svc.Check(context.Background(), []domain.CartLine{{MenuItemID: id, Quantity: 1}})
	if !errors.Is(err, domain.ErrMenuItemUnavailable) {
		t.Errorf("Check error = %v, want ErrMenuItemUnavailable", err)
	}
}

func TestCheck_UnknownMenuItem(t *testing.T) {
	svc, _, _ := newSufficiencyHarness()

	_, err := svc.Check(context.Background(), []domain.CartLine{
		{MenuItemID: primitive.NewObjectID(), Quantity: 1},
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Check error = %v, want ErrNotFound", err)
	}
}

func TestCheck_MissingLedgerEntryReadsAsZeroStock(t *testing.T) {
	svc, menuRepo, _ := newSufficiencyHarness()

	ghostID := primitive.NewObjectID()
	itemID := addMenuItem(t, menuRepo, "Mystery Dish", 7, []domain.RecipeLine{
		{InventoryID: ghostID, Name: "Ghost Pepper", Quantity: 1},
	})

	_, err := svc.Check(context.Background(), []domain.CartLine{{MenuItemID: itemID, Quantity: 1}})

	var stockErr *domain.InsufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("Check error = %v, want InsufficientStockError", err)
	}
	if stockErr.Shortage.Available != 0 {
		t.Errorf("available = %v, want 0 for missing ledger entry", stockErr.Shortage.Available)
	}
}
