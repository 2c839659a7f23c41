package v1

import (
	"fmt"
	"time"

	"github.com/RFATeixeira/tex-dashboard/internal/ledger"
	"github.com/RFATeixeira/tex-dashboard/internal/models"
	"github.com/RFATeixeira/tex-dashboard/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EntryEditable struct {
	Name string      `json:"name" example:"Mercado"`
	Kind ledger.Kind `json:"kind" example:"gasto"` // One of: ganho, gasto, gastoCredito, ganhoVale, gastoVale

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Value decimal.Decimal `json:"value" example:"120.50" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Always non-negative, the kind determines the sign

	Date types.Date `json:"date" swaggertype:"string" example:"10-02-2024"` // Effective date, accepts DD-MM-YYYY, DD/MM/YYYY, YYYY-MM-DD and RFC3339

	Parcelas int `json:"parcelas" example:"3" default:"0"` // Number of monthly installments to split a gastoCredito purchase into. 0 and 1 create a single entry.
}

// model returns the database resource for the API representation of the editable fields
func (editable EntryEditable) model(userID uuid.UUID) models.Entry {
	return models.Entry{
		UserID: userID,
		Name:   editable.Name,
		Kind:   editable.Kind,
		Value:  editable.Value,
		Date:   editable.Date.Time,
	}
}

// purchase expands the editable into one database resource per installment.
// All rows share a fresh group ID, carry the per-installment value and are
// dated one calendar month apart starting at the purchase date.
func (editable EntryEditable) purchase(userID uuid.UUID) []models.Entry {
	count := editable.Parcelas
	groupID := uuid.New()
	value := editable.Value.DivRound(decimal.NewFromInt(int64(count)), 8)

	entries := make([]models.Entry, 0, count)
	for i := 0; i < count; i++ {
		entry := editable.model(userID)
		entry.Value = value
		entry.Date = editable.Date.AddDate(0, i, 0)
		entry.ParcelGroupID = groupID
		entry.ParcelNumber = i + 1
		entry.TotalParcelas = count

		entries = append(entries, entry)
	}

	return entries
}

type EntryLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/entries/d430d7c3-d14c-4712-9336-ee56965a6673"` // The entry itself
}

// Entry is the representation of an Entry in API v1.
type Entry struct {
	models.DefaultModel
	Name          string          `json:"name" example:"Mercado"`
	Kind          ledger.Kind     `json:"kind" example:"gasto"`
	Value         decimal.Decimal `json:"value" example:"120.50"`
	Date          time.Time       `json:"date" example:"2024-02-10T00:00:00Z"`
	ParcelGroupID uuid.UUID       `json:"parcelGroupId" example:"00000000-0000-0000-0000-000000000000"` // Shared by all installments of one purchase, zero otherwise
	ParcelNumber  int             `json:"parcelNumber" example:"1"`                                     // 1-based installment index, 0 unless part of a purchase
	TotalParcelas int             `json:"totalParcelas" example:"3"`                                    // Installment count of the purchase, 0 unless part of one
	Links         EntryLinks      `json:"links"`
}

// newEntry returns the API v1 representation of the resource
func newEntry(c *gin.Context, model models.Entry) Entry {
	url := c.GetString(string(models.DBContextURL))

	return Entry{
		DefaultModel:  model.DefaultModel,
		Name:          model.Name,
		Kind:          model.Kind,
		Value:         model.Value,
		Date:          model.Date,
		ParcelGroupID: model.ParcelGroupID,
		ParcelNumber:  model.ParcelNumber,
		TotalParcelas: model.TotalParcelas,
		Links: EntryLinks{
			Self: fmt.Sprintf("%s/v1/entries/%s", url, model.ID),
		},
	}
}

type EntryListResponse struct {
	Data       []Entry     `json:"data"`                                                          // List of entries
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type EntryCreateResponse struct {
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []EntryResponse `json:"data"`                                                          // List of created entries
}

func (t *EntryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, EntryResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type EntryResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this entry
	Data  *Entry  `json:"data"`                                                          // The entry data, if creation was successful
}

// GroupedEntriesResponse is the presenter output: entries bucketed by
// calendar month.
type GroupedEntriesResponse struct {
	Data  []MonthGroup `json:"data"`                                           // Month buckets in the requested order
	Error *string      `json:"error" example:"the requested order is invalid"` // The error, if any occurred
}

// MonthGroup is one display bucket of entries sharing a calendar month.
type MonthGroup struct {
	Label   string  `json:"label" example:"01/2024"` // MM/YYYY, empty for the insertion ordering
	Entries []Entry `json:"entries"`
}

type EntryQueryFilter struct {
	Kind      ledger.Kind `form:"kind"`                                   // Filter by entry kind
	Name      string      `form:"name" filterField:"false"`               // Filter by name, glob patterns are supported
	FromDate  time.Time   `form:"fromDate" filterField:"false"`           // Entries at and after this date. Ignores exact time, matches on the day of the RFC3339 timestamp provided.
	UntilDate time.Time   `form:"untilDate" filterField:"false"`          // Entries before and at this date. Ignores exact time, matches on the day of the RFC3339 timestamp provided.
	Offset    uint        `form:"offset" filterField:"false"`             // The offset of the first Entry returned. Defaults to 0.
	Limit     int         `form:"limit" filterField:"false" default:"50"` // Maximum number of entries to return. Defaults to 50.
}

func (f EntryQueryFilter) model() models.Entry {
	return models.Entry{
		Kind: f.Kind,
	}
}

type QueryDelete struct {
	Group bool `form:"group"` // Delete the whole installment group the entry belongs to
}

type QueryOrder struct {
	Order ledger.Order `form:"order" default:"desc"` // Bucket ordering, one of: asc, desc, insertion. Defaults to desc.
}
