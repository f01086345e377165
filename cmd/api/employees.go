package main

import (
	"errors"
	"net/http"

	"github.com/MrBaoN/RestaurantDashboard/internal/domain"
	"github.com/go-chi/chi"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EmployeeRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	PIN  string `json:"pin" validate:"required,len=4,numeric"`
	Role string `json:"role" validate:"required,oneof=manager cashier cook"`
}

// createEmployeeHandler godoc
//
//	@Summary		Create employee
//	@Tags			employees
//	@Accept			json
//	@Produce		json
//	@Param			request	body		EmployeeRequest	true	"Employee"
//	@Success		201		{object}	domain.Employee
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/employees [post]
func (app *application) createEmployeeHandler(w http.ResponseWriter, r *http.Request) {
	var req EmployeeRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	employee := &domain.Employee{
		Name:     req.Name,
		PIN:      req.PIN,
		Role:     req.Role,
		IsActive: true,
	}

	if err := app.employeeRepo.Create(r.Context(), employee); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusCreated, employee); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listEmployeesHandler godoc
//
//	@Summary		List employees
//	@Tags			employees
//	@Produce		json
//	@Success		200	{array}		domain.Employee
//	@Failure		500	{object}	map[string]string
//	@Router			/employees [get]
func (app *application) listEmployeesHandler(w http.ResponseWriter, r *http.Request) {
	employees, err := app.employeeRepo.List(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, employees); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deactivateEmployeeHandler godoc
//
//	@Summary		Deactivate employee
//	@Tags			employees
//	@Produce		json
//	@Param			employee_id	path		string	true	"Employee ID"
//	@Success		200			{object}	map[string]string
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/employees/{employee_id} [delete]
func (app *application) deactivateEmployeeHandler(w http.ResponseWriter, r *http.Request) {
	employeeID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "employee_id"))
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	if err := app.employeeRepo.Deactivate(r.Context(), employeeID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, map[string]string{"message": "employee deactivated"}); err != nil {
		app.internalServerError(w, r, err)
	}
}
