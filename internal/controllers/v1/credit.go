package v1

import (
	"net/http"
	"time"

	"github.com/RFATeixeira/tex-dashboard/internal/auth"
	"github.com/RFATeixeira/tex-dashboard/internal/httputil"
	"github.com/RFATeixeira/tex-dashboard/internal/ledger"
	"github.com/RFATeixeira/tex-dashboard/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterCreditRoutes registers the routes for the credit window with
// the RouterGroup that is passed.
func RegisterCreditRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCredit)
	r.GET("", GetCredit)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Credit
// @Success		204
// @Router			/v1/credit [options]
func OptionsCredit(c *gin.Context) {
	httputil.OptionsGet(c)
}

// CreditResponse is the credit usage for the current billing window.
type CreditResponse struct {
	Data  *ledger.Window `json:"data"`                                                  // The credit window
	Error *string        `json:"error" example:"there is no user matching your search"` // The error, if any occurred
}

// @Summary		Get credit window
// @Description	Returns the credit limit, the amount used by outstanding installments of purchases active in the current or next month, and the remaining headroom.
// @Tags			Credit
// @Produce		json
// @Success		200	{object}	CreditResponse
// @Failure		500	{object}	CreditResponse
// @Router			/v1/credit [get]
func GetCredit(c *gin.Context) {
	userID := auth.UserID(c)

	var user models.User
	err := models.DB.First(&user, userID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CreditResponse{Error: &e})
		return
	}

	var entries []models.Entry
	err = models.DB.
		Where("user_id = ?", userID).
		Where(&models.Entry{Kind: ledger.KindGastoCredito}).
		Find(&entries).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CreditResponse{Error: &e})
		return
	}

	data := ledger.CreditWindow(models.LedgerEntries(entries), user.CreditLimit, time.Now())
	c.JSON(http.StatusOK, CreditResponse{Data: &data})
}
