package v1

import (
	"net/http"

	"github.com/RFATeixeira/tex-dashboard/internal/auth"
	"github.com/RFATeixeira/tex-dashboard/internal/httputil"
	"github.com/RFATeixeira/tex-dashboard/internal/ledger"
	"github.com/RFATeixeira/tex-dashboard/internal/models"
	"github.com/RFATeixeira/tex-dashboard/internal/types"
	"github.com/gin-gonic/gin"
)

// RegisterMonthRoutes registers the routes for months with
// the RouterGroup that is passed.
func RegisterMonthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsMonths)
	r.GET("", GetMonth)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/months [options]
func OptionsMonths(c *gin.Context) {
	httputil.OptionsGet(c)
}

// MonthResponse is the monthly aggregate for one ledger.
type MonthResponse struct {
	Data  *ledger.Summary `json:"data"`                                                  // The monthly aggregate
	Error *string         `json:"error" example:"the month query parameter must be set"` // The error, if any occurred
}

// @Summary		Get month
// @Description	Returns the income, expense, carry-in and balance of the requested month for one ledger. The carry-in is the previous month's net, never older.
// @Tags			Months
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			month	query		string	true	"Year and month in YYYY-MM format"
// @Param			ledger	query		string	false	"Ledger to aggregate, geral (default) or vale"
// @Router			/v1/months [get]
func GetMonth(c *gin.Context) {
	var query QueryMonth
	if err := c.Bind(&query); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, MonthResponse{Error: &s})
		return
	}

	if query.Month.IsZero() {
		s := errMonthNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, MonthResponse{Error: &s})
		return
	}

	if query.Ledger == "" {
		query.Ledger = "geral"
	}
	if query.Ledger != "geral" && query.Ledger != "vale" {
		s := errLedgerInvalid.Error()
		c.JSON(http.StatusBadRequest, MonthResponse{Error: &s})
		return
	}

	var entries []models.Entry
	err := models.DB.Where("user_id = ?", auth.UserID(c)).Find(&entries).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthResponse{Error: &e})
		return
	}

	snapshot := models.LedgerEntries(entries)
	if query.Ledger == "vale" {
		snapshot = ledger.Voucher(snapshot)
	} else {
		snapshot = ledger.General(snapshot)
	}

	data := ledger.Aggregate(snapshot, types.MonthOf(query.Month))
	c.JSON(http.StatusOK, MonthResponse{Data: &data})
}
