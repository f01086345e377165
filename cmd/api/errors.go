package main

import (
	"net/http"

	"github.com/MrBaoN/RestaurantDashboard/internal/domain"
)

func (app *application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("internal error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJsonError(w, http.StatusInternalServerError, "the server encountered a problem")
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("bad request", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJsonError(w, http.StatusBadRequest, err.Error())
}

func (app *application) notFoundError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("not found", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJsonError(w, http.StatusNotFound, "not found")
}

// insufficientStockResponse carries the shortage descriptor so the
// register can tell the customer what ran out.
func (app *application) insufficientStockResponse(w http.ResponseWriter, r *http.Request, stockErr *domain.InsufficientStockError) {
	app.logger.Infow("order rejected on stock", "method", r.Method, "path", r.URL.Path,
		"ingredient", stockErr.Shortage.IngredientName)

	type envelope struct {
		Error    string          `json:"error"`
		Shortage domain.Shortage `json:"shortage"`
	}

	writeJson(w, http.StatusConflict, &envelope{
		Error:    stockErr.Error(),
		Shortage: stockErr.Shortage,
	})
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request, retryAfter string) {
	app.logger.Warnw("rate limit exceeded", "method", r.Method, "path", r.URL.Path)

	w.Header().Set("Retry-After", retryAfter)
	writeJsonError(w, http.StatusTooManyRequests, "rate limit exceeded, retry after: "+retryAfter)
}
