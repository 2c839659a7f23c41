package v1

import (
	"net/http"
	"time"

	"github.com/RFATeixeira/tex-dashboard/internal/auth"
	"github.com/RFATeixeira/tex-dashboard/internal/httputil"
	"github.com/RFATeixeira/tex-dashboard/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterTicketRoutes registers the routes for tickets with
// the RouterGroup that is passed.
func RegisterTicketRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTickets)
		r.GET("", GetTickets)
		r.POST("", CreateTicket)
	}

	// Ticket with ID
	{
		r.OPTIONS("/:id", OptionsTicketDetail)
		r.GET("/:id", GetTicket)
		r.PATCH("/:id", UpdateTicket)
		r.DELETE("/:id", DeleteTicket)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Tickets
// @Success		204
// @Router			/v1/tickets [options]
func OptionsTickets(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Tickets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/tickets/{id} [options]
func OptionsTicketDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var ticket models.Ticket
	err = models.DB.Where("user_id = ?", auth.UserID(c)).First(&ticket, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Get tickets
// @Description	Returns the authenticated user's tickets ordered by due date. Tickets whose due date passed more than five days ago are removed first.
// @Tags			Tickets
// @Produce		json
// @Success		200	{object}	TicketListResponse
// @Failure		500	{object}	TicketListResponse
// @Router			/v1/tickets [get]
func GetTickets(c *gin.Context) {
	userID := auth.UserID(c)

	// Expired tickets are cleaned up on read, there is no background job
	_, err := models.DeleteExpiredTickets(models.DB, userID, time.Now())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TicketListResponse{Error: &e})
		return
	}

	var tickets []models.Ticket
	err = models.DB.
		Where("user_id = ?", userID).
		Order("datetime(tickets.due_date) ASC").
		Find(&tickets).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TicketListResponse{Error: &e})
		return
	}

	data := make([]Ticket, 0)
	for _, ticket := range tickets {
		data = append(data, newTicket(c, ticket))
	}

	c.JSON(http.StatusOK, TicketListResponse{Data: data})
}

// @Summary		Get ticket
// @Description	Returns a specific ticket
// @Tags			Tickets
// @Produce		json
// @Success		200	{object}	TicketResponse
// @Failure		400	{object}	TicketResponse
// @Failure		404	{object}	TicketResponse
// @Failure		500	{object}	TicketResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/tickets/{id} [get]
func GetTicket(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TicketResponse{Error: &e})
		return
	}

	var ticket models.Ticket
	err = models.DB.Where("user_id = ?", auth.UserID(c)).First(&ticket, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TicketResponse{Error: &e})
		return
	}

	data := newTicket(c, ticket)
	c.JSON(http.StatusOK, TicketResponse{Data: &data})
}

// @Summary		Create ticket
// @Description	Creates a new ticket
// @Tags			Tickets
// @Accept			json
// @Produce		json
// @Success		201		{object}	TicketResponse
// @Failure		400		{object}	TicketResponse
// @Failure		500		{object}	TicketResponse
// @Param			ticket	body		TicketEditable	true	"Ticket"
// @Router			/v1/tickets [post]
func CreateTicket(c *gin.Context) {
	var editable TicketEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TicketResponse{Error: &e})
		return
	}

	ticket := editable.model(auth.UserID(c))
	err = models.DB.Create(&ticket).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TicketResponse{Error: &e})
		return
	}

	data := newTicket(c, ticket)
	c.JSON(http.StatusCreated, TicketResponse{Data: &data})
}

// @Summary		Update ticket
// @Description	Updates an existing ticket. Only values to be updated need to be specified.
// @Tags			Tickets
// @Accept			json
// @Produce		json
// @Success		200		{object}	TicketResponse
// @Failure		400		{object}	TicketResponse
// @Failure		404		{object}	TicketResponse
// @Failure		500		{object}	TicketResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			ticket	body		TicketEditable	true	"Ticket"
// @Router			/v1/tickets/{id} [patch]
func UpdateTicket(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TicketResponse{Error: &e})
		return
	}

	var ticket models.Ticket
	err = models.DB.Where("user_id = ?", auth.UserID(c)).First(&ticket, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TicketResponse{Error: &e})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, TicketEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TicketResponse{Error: &e})
		return
	}

	// Bind the update for the patch
	var update TicketEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TicketResponse{Error: &e})
		return
	}

	// An unset due date keeps the stored one so the save hook validates
	// the effective state
	if update.DueDate.IsZero() {
		update.DueDate.Time = ticket.DueDate
	}

	err = models.DB.Model(&ticket).Select("", updateFields...).Updates(update.model(ticket.UserID)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TicketResponse{Error: &e})
		return
	}

	data := newTicket(c, ticket)
	c.JSON(http.StatusOK, TicketResponse{Data: &data})
}

// @Summary		Delete ticket
// @Description	Deletes a ticket
// @Tags			Tickets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/tickets/{id} [delete]
func DeleteTicket(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var ticket models.Ticket
	err = models.DB.Where("user_id = ?", auth.UserID(c)).First(&ticket, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&ticket).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
