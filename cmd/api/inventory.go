package main

import (
	"errors"
	"net/http"

	"github.com/MrBaoN/RestaurantDashboard/internal/domain"
	"github.com/go-chi/chi"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type InventoryItemRequest struct {
	Name  string  `json:"name" validate:"required,max=100"`
	Stock float64 `json:"stock" validate:"gte=0"`
	Unit  string  `json:"unit,omitempty" validate:"max=20"`
	Cost  float64 `json:"cost" validate:"gte=0"`
}

// createInventoryItemHandler godoc
//
//	@Summary		Create inventory item
//	@Tags			inventory
//	@Accept			json
//	@Produce		json
//	@Param			request	body		InventoryItemRequest	true	"Inventory item"
//	@Success		201		{object}	domain.InventoryItem
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/inventory [post]
func (app *application) createInventoryItemHandler(w http.ResponseWriter, r *http.Request) {
	var req InventoryItemRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	item, err := app.inventoryService.Create(r.Context(), domain.InventoryItem{
		Name:  req.Name,
		Stock: req.Stock,
		Unit:  req.Unit,
		Cost:  req.Cost,
	})
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusCreated, item); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getInventoryItemHandler godoc
//
//	@Summary		Get inventory item
//	@Tags			inventory
//	@Produce		json
//	@Param			inventory_id	path		string	true	"Inventory item ID"
//	@Success		200				{object}	domain.InventoryItem
//	@Failure		400				{object}	map[string]string
//	@Failure		404				{object}	map[string]string
//	@Router			/inventory/{inventory_id} [get]
func (app *application) getInventoryItemHandler(w http.ResponseWriter, r *http.Request) {
	inventoryID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "inventory_id"))
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	item, err := app.inventoryService.Get(r.Context(), inventoryID)
	if err != nil {
		app.notFoundError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, item); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listInventoryHandler godoc
//
//	@Summary		List inventory
//	@Tags			inventory
//	@Produce		json
//	@Success		200	{array}		domain.InventoryItem
//	@Failure		500	{object}	map[string]string
//	@Router			/inventory [get]
func (app *application) listInventoryHandler(w http.ResponseWriter, r *http.Request) {
	items, err := app.inventoryService.List(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, items); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateInventoryItemHandler godoc
//
//	@Summary		Update inventory item
//	@Description	Manager stock and cost edits; stock never goes negative
//	@Tags			inventory
//	@Accept			json
//	@Produce		json
//	@Param			inventory_id	path		string					true	"Inventory item ID"
//	@Param			request			body		InventoryItemRequest	true	"Inventory item"
//	@Success		200				{object}	domain.InventoryItem
//	@Failure		400				{object}	map[string]string
//	@Failure		404				{object}	map[string]string
//	@Router			/inventory/{inventory_id} [put]
func (app *application) updateInventoryItemHandler(w http.ResponseWriter, r *http.Request) {
	inventoryID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "inventory_id"))
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	var req InventoryItemRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	current, err := app.inventoryService.Get(r.Context(), inventoryID)
	if err != nil {
		app.notFoundError(w, r, err)
		return
	}

	current.Name = req.Name
	current.Stock = req.Stock
	current.Unit = req.Unit
	current.Cost = req.Cost

	item, err := app.inventoryService.Update(r.Context(), *current)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, item); err != nil {
		app.internalServerError(w, r, err)
	}
}
