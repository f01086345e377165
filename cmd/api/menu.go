package main

import (
	"errors"
	"net/http"

	"github.com/MrBaoN/RestaurantDashboard/internal/domain"
	"github.com/go-chi/chi"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RecipeLineRequest struct {
	InventoryID string  `json:"inventory_id" validate:"required"`
	Quantity    float64 `json:"quantity" validate:"gte=0"`
}

type MenuItemRequest struct {
	Name        string              `json:"name" validate:"required,max=100"`
	Price       float64             `json:"price" validate:"gte=0"`
	Category    string              `json:"category" validate:"required"`
	Description string              `json:"description,omitempty" validate:"max=500"`
	Recipe      []RecipeLineRequest `json:"recipe" validate:"dive"`
}

func (req *MenuItemRequest) toDomain() (domain.MenuItem, error) {
	item := domain.MenuItem{
		Name:        req.Name,
		Price:       req.Price,
		Category:    domain.Category(req.Category),
		Description: req.Description,
		Recipe:      make([]domain.RecipeLine, 0, len(req.Recipe)),
	}

	for _, rl := range req.Recipe {
		inventoryID, err := primitive.ObjectIDFromHex(rl.InventoryID)
		if err != nil {
			return domain.MenuItem{}, ErrInvalidID
		}
		item.Recipe = append(item.Recipe, domain.RecipeLine{
			InventoryID: inventoryID,
			Quantity:    rl.Quantity,
		})
	}

	return item, nil
}

// createMenuItemHandler godoc
//
//	@Summary		Create menu item
//	@Description	Creates a sellable item with its recipe
//	@Tags			menu
//	@Accept			json
//	@Produce		json
//	@Param			request	body		MenuItemRequest	true	"Menu item"
//	@Success		201		{object}	domain.MenuItem
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/menu [post]
func (app *application) createMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	var req MenuItemRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	input, err := req.toDomain()
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	item, err := app.menuService.Create(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCategory) || errors.Is(err, domain.ErrNotFound) {
			app.badRequestResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusCreated, item); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getMenuItemHandler godoc
//
//	@Summary		Get menu item
//	@Tags			menu
//	@Produce		json
//	@Param			menu_id	path		string	true	"Menu item ID"
//	@Success		200		{object}	domain.MenuItem
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Router			/menu/{menu_id} [get]
func (app *application) getMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	menuID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "menu_id"))
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	item, err := app.menuService.Get(r.Context(), menuID)
	if err != nil {
		app.notFoundError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, item); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listMenuHandler godoc
//
//	@Summary		List menu
//	@Tags			menu
//	@Produce		json
//	@Param			active	query		bool	false	"Only active items"
//	@Success		200		{array}		domain.MenuItem
//	@Failure		500		{object}	map[string]string
//	@Router			/menu [get]
func (app *application) listMenuHandler(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	items, err := app.menuService.List(r.Context(), activeOnly)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, items); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateMenuItemHandler godoc
//
//	@Summary		Update menu item
//	@Description	Replaces the item, recipe included
//	@Tags			menu
//	@Accept			json
//	@Produce		json
//	@Param			menu_id	path		string			true	"Menu item ID"
//	@Param			request	body		MenuItemRequest	true	"Menu item"
//	@Success		200		{object}	domain.MenuItem
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Router			/menu/{menu_id} [put]
func (app *application) updateMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	menuID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "menu_id"))
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	var req MenuItemRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	input, err := req.toDomain()
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	input.ID = menuID

	current, err := app.menuService.Get(r.Context(), menuID)
	if err != nil {
		app.notFoundError(w, r, err)
		return
	}
	input.IsActive = current.IsActive
	input.CreatedAt = current.CreatedAt

	item, err := app.menuService.Update(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCategory):
			app.badRequestResponse(w, r, err)
		case errors.Is(err, domain.ErrNotFound):
			app.notFoundError(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, item); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deactivateMenuItemHandler godoc
//
//	@Summary		Deactivate menu item
//	@Tags			menu
//	@Produce		json
//	@Param			menu_id	path		string	true	"Menu item ID"
//	@Success		200		{object}	map[string]string
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Router			/menu/{menu_id} [delete]
func (app *application) deactivateMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	menuID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "menu_id"))
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	if err := app.menuService.Deactivate(r.Context(), menuID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, map[string]string{"message": "menu item deactivated"}); err != nil {
		app.internalServerError(w, r, err)
	}
}
