package models

import (
	"strings"
	"time"

	"github.com/RFATeixeira/tex-dashboard/internal/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Entry is one income or expense record. The date is the user-chosen
// effective date and is resolved to a time.Time once at ingestion; CreatedAt
// tracks insertion order separately.
//
// Credit purchases split into installments are stored as one Entry per
// installment. All rows of one purchase are created together, share a
// ParcelGroupID and are dated one calendar month apart; Value is the
// per-installment amount, not the purchase total.
type Entry struct {
	DefaultModel
	UserID        uuid.UUID       `json:"userId" gorm:"index"`
	User          User            `json:"-"`
	Name          string          `json:"name" example:"Mercado"`
	Kind          ledger.Kind     `json:"kind" gorm:"index" example:"gasto"`
	Value         decimal.Decimal `json:"value" gorm:"type:DECIMAL(20,8)" example:"120.50" minimum:"0"` // Always non-negative, the kind determines the sign
	Date          time.Time       `json:"date" example:"2024-02-10T00:00:00Z"`
	ParcelGroupID uuid.UUID       `json:"parcelGroupId" gorm:"index"` // Nil unless part of an installment purchase
	ParcelNumber  int             `json:"parcelNumber" example:"1"`   // 1-based installment index, 0 unless part of a purchase
	TotalParcelas int             `json:"totalParcelas" example:"3"`  // Installment count of the purchase, 0 unless part of one
}

func (e *Entry) BeforeSave(_ *gorm.DB) error {
	e.Name = strings.TrimSpace(e.Name)

	if !e.Kind.Valid() {
		return ErrEntryKindInvalid
	}

	if e.Value.IsNegative() {
		return ErrEntryValueNegative
	}

	if e.Date.IsZero() {
		return ErrEntryNoDate
	}

	e.Date = e.Date.In(time.UTC)
	return nil
}

// AfterFind updates the date to use UTC as timezone, not +0000.
func (e *Entry) AfterFind(_ *gorm.DB) (err error) {
	e.Date = e.Date.In(time.UTC)
	return nil
}

// LedgerEntry converts the database record into its snapshot representation
// for the derived computations.
func (e Entry) LedgerEntry() ledger.Entry {
	return ledger.Entry{
		ID:            e.ID,
		Name:          e.Name,
		Kind:          e.Kind,
		Value:         e.Value,
		Date:          e.Date,
		CreatedAt:     e.CreatedAt,
		ParcelGroupID: e.ParcelGroupID,
		ParcelNumber:  e.ParcelNumber,
		TotalParcelas: e.TotalParcelas,
	}
}

// LedgerEntries converts a slice of database records into a snapshot.
func LedgerEntries(entries []Entry) []ledger.Entry {
	snapshot := make([]ledger.Entry, 0, len(entries))
	for _, e := range entries {
		snapshot = append(snapshot, e.LedgerEntry())
	}

	return snapshot
}
