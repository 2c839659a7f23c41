package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TicketRetention is how long a ticket is kept after its due date.
const TicketRetention = 5 * 24 * time.Hour

// Ticket is a bill (boleto) reminder with a due date.
type Ticket struct {
	DefaultModel
	UserID  uuid.UUID       `json:"userId" gorm:"index"`
	User    User            `json:"-"`
	Name    string          `json:"name" example:"Conta de luz"`
	Value   decimal.Decimal `json:"value" gorm:"type:DECIMAL(20,8)" example:"230.47"`
	DueDate time.Time       `json:"dueDate" example:"2024-03-10T00:00:00Z"`
}

func (t *Ticket) BeforeSave(_ *gorm.DB) error {
	t.Name = strings.TrimSpace(t.Name)

	if t.DueDate.IsZero() {
		return ErrTicketNoDueDate
	}

	t.DueDate = t.DueDate.In(time.UTC)
	return nil
}

// AfterFind updates the due date to use UTC as timezone, not +0000.
func (t *Ticket) AfterFind(_ *gorm.DB) (err error) {
	t.DueDate = t.DueDate.In(time.UTC)
	return nil
}

// DeleteExpiredTickets removes the user's tickets whose due date passed
// more than TicketRetention ago and returns how many were removed.
func DeleteExpiredTickets(db *gorm.DB, userID uuid.UUID, now time.Time) (int64, error) {
	cutoff := now.Add(-TicketRetention)

	result := db.
		Where("user_id = ?", userID).
		Where("due_date < ?", cutoff).
		Delete(&Ticket{})

	return result.RowsAffected, result.Error
}
