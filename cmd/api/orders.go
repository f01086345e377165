package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MrBaoN/RestaurantDashboard/internal/domain"
	"github.com/go-chi/chi"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrInvalidID = errors.New("invalid ID format")

type PlaceOrderLine struct {
	MenuItemID string `json:"menu_item_id" validate:"required"`
	Quantity   int    `json:"quantity" validate:"required,gt=0"`
}

type PlaceOrderRequest struct {
	Lines      []PlaceOrderLine `json:"lines" validate:"required,min=1,dive"`
	EmployeeID string           `json:"employee_id,omitempty"`
}

// placeOrderHandler godoc
//
//	@Summary		Place an order
//	@Description	Checks ingredient sufficiency and commits the order to the lane
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		PlaceOrderRequest	true	"Order request"
//	@Success		201		{object}	map[string]interface{}
//	@Failure		400		{object}	map[string]string
//	@Failure		409		{object}	map[string]interface{}
//	@Failure		500		{object}	map[string]string
//	@Router			/orders [post]
func (app *application) placeOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	cart := make([]domain.CartLine, 0, len(req.Lines))
	for _, line := range req.Lines {
		menuItemID, err := primitive.ObjectIDFromHex(line.MenuItemID)
		if err != nil {
			app.badRequestResponse(w, r, ErrInvalidID)
			return
		}
		cart = append(cart, domain.CartLine{MenuItemID: menuItemID, Quantity: line.Quantity})
	}

	var employeeID *primitive.ObjectID
	if req.EmployeeID != "" {
		id, err := primitive.ObjectIDFromHex(req.EmployeeID)
		if err != nil {
			app.badRequestResponse(w, r, ErrInvalidID)
			return
		}
		employeeID = &id
	}

	order, err := app.orderService.Place(r.Context(), cart, employeeID)
	if err != nil {
		var stockErr *domain.InsufficientStockError
		switch {
		case errors.As(err, &stockErr):
			app.insufficientStockResponse(w, r, stockErr)
		case errors.Is(err, domain.ErrEmptyOrder),
			errors.Is(err, domain.ErrInvalidQuantity),
			errors.Is(err, domain.ErrMenuItemUnavailable),
			errors.Is(err, domain.ErrNotFound):
			app.badRequestResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	response := map[string]interface{}{
		"order_number": order.Number,
		"status":       order.Status,
		"total":        order.Total,
		"message":      "order placed",
	}

	if err := app.jsonRespone(w, http.StatusCreated, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// advanceLaneHandler godoc
//
//	@Summary		Advance the kitchen lane
//	@Description	Completes the building order and promotes the oldest waiting order
//	@Tags			orders
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}
//	@Failure		500	{object}	map[string]string
//	@Router			/orders/advance [put]
func (app *application) advanceLaneHandler(w http.ResponseWriter, r *http.Request) {
	completed, promoted, err := app.orderService.AdvanceLane(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	response := map[string]interface{}{
		"message": "lane advanced",
	}
	if completed == nil && promoted == nil {
		response["message"] = "nothing to advance"
	}
	if completed != nil {
		response["completed_order"] = completed.Number
	}
	if promoted != nil {
		response["next_order"] = promoted.Number
	}

	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// kitchenViewHandler godoc
//
//	@Summary		Kitchen display view
//	@Description	Active orders with per-item ingredient amounts, building order first
//	@Tags			orders
//	@Produce		json
//	@Success		200	{array}		domain.KitchenOrder
//	@Failure		500	{object}	map[string]string
//	@Router			/orders/kitchen [get]
func (app *application) kitchenViewHandler(w http.ResponseWriter, r *http.Request) {
	view, err := app.orderService.KitchenView(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, view); err != nil {
		app.internalServerError(w, r, err)
	}
}

// boardViewHandler godoc
//
//	@Summary		Customer board view
//	@Description	Ticket numbers and lane status, most recently completed order first
//	@Tags			orders
//	@Produce		json
//	@Success		200	{array}		domain.BoardEntry
//	@Failure		500	{object}	map[string]string
//	@Router			/orders/board [get]
func (app *application) boardViewHandler(w http.ResponseWriter, r *http.Request) {
	board, err := app.orderService.BoardView(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, board); err != nil {
		app.internalServerError(w, r, err)
	}
}

// orderAuditHandler godoc
//
//	@Summary		Order audit trail
//	@Description	Lifecycle events recorded for one order
//	@Tags			orders
//	@Produce		json
//	@Param			order_number	path		int	true	"Order number"
//	@Success		200				{array}		domain.OrderAudit
//	@Failure		400				{object}	map[string]string
//	@Failure		500				{object}	map[string]string
//	@Router			/orders/{order_number}/audit [get]
func (app *application) orderAuditHandler(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.ParseInt(chi.URLParam(r, "order_number"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	audits, err := app.orderService.GetAudit(r.Context(), number, 50)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, audits); err != nil {
		app.internalServerError(w, r, err)
	}
}
