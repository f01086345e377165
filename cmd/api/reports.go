package main

import (
	"net/http"
)

// closingReportHandler godoc
//
//	@Summary		Closing report
//	@Description	Returns the daily sales aggregate and clears it
//	@Tags			reports
//	@Produce		json
//	@Success		200	{object}	domain.ClosingReport
//	@Failure		500	{object}	map[string]string
//	@Router			/reports/closing [get]
func (app *application) closingReportHandler(w http.ResponseWriter, r *http.Request) {
	report, err := app.reportService.Closing(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, report); err != nil {
		app.internalServerError(w, r, err)
	}
}
