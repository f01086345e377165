package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MrBaoN/RestaurantDashboard/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newMenuHarness() (*MenuService, *fakeMenuRepo, *fakeInventoryRepo) {
	menuRepo := newFakeMenuRepo()
	inventoryRepo := newFakeInventoryRepo()
	svc := NewMenuService(menuRepo, inventoryRepo, zap.NewNop().Sugar())
	return svc, menuRepo, inventoryRepo
}

func TestMenuCreate_NormalizesCategory(t *testing.T) {
	svc, _, _ := newMenuHarness()

	cases := []struct {
		in   string
		want domain.Category
	}{
		{"Entree", domain.CategoryEntree},
		{"SIDE", domain.CategorySide},
		{"  drink ", domain.CategoryDrink},
		{"Extra", domain.CategoryExtra},
	}

	for _, tc := range cases {
		item, err := svc.Create(context.Background(), domain.MenuItem{
			Name:     "Test " + tc.in,
			Price:    5,
			Category: domain.Category(tc.in),
		})
		if err != nil {
			t.Fatalf("Create(%q): %v", tc.in, err)
		}
		if item.Category != tc.want {
			t.Errorf("category for %q = %q, want %q", tc.in, item.Category, tc.want)
		}
		if !item.IsActive {
			t.Errorf("new item %q not active", tc.in)
		}
	}
}

func TestMenuCreate_RejectsUnknownCategory(t *testing.T) {
	svc, menuRepo, _ := newMenuHarness()

	_, err := svc.Create(context.Background(), domain.MenuItem{
		Name:     "Mystery",
		Price:    5,
		Category: "dessert",
	})
	if !errors.Is(err, domain.ErrInvalidCategory) {
		t.Fatalf("Create error = %v, want ErrInvalidCategory", err)
	}
	if len(menuRepo.items) != 0 {
		t.Errorf("items written = %d, want 0", len(menuRepo.items))
	}
}

func TestMenuCreate_DropsZeroQuantityRecipeLines(t *testing.T) {
	svc, _, inventoryRepo := newMenuHarness()

	rice := &domain.InventoryItem{Name: "Rice", Stock: 10}
	inventoryRepo.Create(context.Background(), rice)
	oil := &domain.InventoryItem{Name: "Oil", Stock: 10}
	inventoryRepo.Create(context.Background(), oil)

	item, err := svc.Create(context.Background(), domain.MenuItem{
		Name:     "Fried Rice",
		Price:    8,
		Category: "entree",
		Recipe: []domain.RecipeLine{
			{InventoryID: rice.ID, Quantity: 2},
			{InventoryID: oil.ID, Quantity: 0},
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if len(item.Recipe) != 1 {
		t.Fatalf("recipe lines = %d, want 1 (zero-quantity dropped)", len(item.Recipe))
	}
	if item.Recipe[0].Name != "Rice" {
		t.Errorf("recipe line name = %q, want denormalized \"Rice\"", item.Recipe[0].Name)
	}
}

func TestMenuCreate_RejectsUnknownIngredient(t *testing.T) {
	svc, _, _ := newMenuHarness()

	_, err := svc.Create(context.Background(), domain.MenuItem{
		Name:     "Fried Rice",
		Price:    8,
		Category: "entree",
		Recipe: []domain.RecipeLine{
			{InventoryID: primitive.NewObjectID(), Quantity: 2},
		},
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Create error = %v, want ErrNotFound", err)
	}
}

func TestMenuUpdate_ReplacesRecipeWholesale(t *testing.T) {
	svc, menuRepo, inventoryRepo := newMenuHarness()

	rice := &domain.InventoryItem{Name: "Rice", Stock: 10}
	inventoryRepo.Create(context.Background(), rice)
	noodles := &domain.InventoryItem{Name: "Noodles", Stock: 10}
	inventoryRepo.Create(context.Background(), noodles)

	item, err := svc.Create(context.Background(), domain.MenuItem{
		Name:     "Combo",
		Price:    8,
		Category: "entree",
		Recipe:   []domain.RecipeLine{{InventoryID: rice.ID, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	item.Recipe = []domain.RecipeLine{{InventoryID: noodles.ID, Quantity: 3}}
	updated, err := svc.Update(context.Background(), *item)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if len(updated.Recipe) != 1 || updated.Recipe[0].Name != "Noodles" {
		t.Errorf("recipe after update = %+v, want single Noodles line", updated.Recipe)
	}

	stored, _ := menuRepo.GetByID(context.Background(), item.ID)
	if len(stored.Recipe) != 1 || stored.Recipe[0].InventoryID != noodles.ID {
		t.Errorf("stored recipe = %+v, want old lines gone", stored.Recipe)
	}
}
