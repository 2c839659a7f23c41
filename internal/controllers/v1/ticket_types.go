package v1

import (
	"fmt"
	"time"

	"github.com/RFATeixeira/tex-dashboard/internal/models"
	"github.com/RFATeixeira/tex-dashboard/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TicketEditable struct {
	Name    string          `json:"name" example:"Conta de luz"`
	Value   decimal.Decimal `json:"value" example:"230.47"`
	DueDate types.Date      `json:"dueDate" swaggertype:"string" example:"10-03-2024"` // Due date, accepts DD-MM-YYYY, DD/MM/YYYY, YYYY-MM-DD and RFC3339
}

// model returns the database resource for the API representation of the editable fields
func (editable TicketEditable) model(userID uuid.UUID) models.Ticket {
	return models.Ticket{
		UserID:  userID,
		Name:    editable.Name,
		Value:   editable.Value,
		DueDate: editable.DueDate.Time,
	}
}

type TicketLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/tickets/d430d7c3-d14c-4712-9336-ee56965a6673"` // The ticket itself
}

// Ticket is the representation of a Ticket in API v1.
type Ticket struct {
	models.DefaultModel
	Name    string          `json:"name" example:"Conta de luz"`
	Value   decimal.Decimal `json:"value" example:"230.47"`
	DueDate time.Time       `json:"dueDate" example:"2024-03-10T00:00:00Z"`
	Links   TicketLinks     `json:"links"`
}

// newTicket returns the API v1 representation of the resource
func newTicket(c *gin.Context, model models.Ticket) Ticket {
	url := c.GetString(string(models.DBContextURL))

	return Ticket{
		DefaultModel: model.DefaultModel,
		Name:         model.Name,
		Value:        model.Value,
		DueDate:      model.DueDate,
		Links: TicketLinks{
			Self: fmt.Sprintf("%s/v1/tickets/%s", url, model.ID),
		},
	}
}

type TicketListResponse struct {
	Data  []Ticket `json:"data"`                                                          // List of tickets
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TicketResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this ticket
	Data  *Ticket `json:"data"`                                                          // The ticket data
}
