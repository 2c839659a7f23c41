package v1

import (
	"net/http"
	"time"

	"github.com/RFATeixeira/tex-dashboard/internal/auth"
	"github.com/RFATeixeira/tex-dashboard/internal/httputil"
	"github.com/RFATeixeira/tex-dashboard/internal/ledger"
	"github.com/RFATeixeira/tex-dashboard/internal/models"
	"github.com/RFATeixeira/tex-dashboard/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// RegisterEntryRoutes registers the routes for entries with
// the RouterGroup that is passed.
func RegisterEntryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsEntries)
		r.GET("", GetEntries)
		r.POST("", CreateEntries)
	}

	// Grouped presentation
	{
		r.OPTIONS("/grouped", OptionsGroupedEntries)
		r.GET("/grouped", GetGroupedEntries)
	}

	// Entry with ID
	{
		r.OPTIONS("/:id", OptionsEntryDetail)
		r.GET("/:id", GetEntry)
		r.PATCH("/:id", UpdateEntry)
		r.DELETE("/:id", DeleteEntry)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Entries
// @Success		204
// @Router			/v1/entries [options]
func OptionsEntries(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Entries
// @Success		204
// @Router			/v1/entries/grouped [options]
func OptionsGroupedEntries(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Entries
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/entries/{id} [options]
func OptionsEntryDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var entry models.Entry
	err = models.DB.Where("user_id = ?", auth.UserID(c)).First(&entry, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Get entry
// @Description	Returns a specific entry
// @Tags			Entries
// @Produce		json
// @Success		200	{object}	EntryResponse
// @Failure		400	{object}	EntryResponse
// @Failure		404	{object}	EntryResponse
// @Failure		500	{object}	EntryResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/entries/{id} [get]
func GetEntry(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryResponse{Error: &e})
		return
	}

	var entry models.Entry
	err = models.DB.Where("user_id = ?", auth.UserID(c)).First(&entry, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryResponse{Error: &e})
		return
	}

	data := newEntry(c, entry)
	c.JSON(http.StatusOK, EntryResponse{Data: &data})
}

// @Summary		Get entries
// @Description	Returns a list of the authenticated user's entries
// @Tags			Entries
// @Produce		json
// @Success		200	{object}	EntryListResponse
// @Failure		400	{object}	EntryListResponse
// @Failure		500	{object}	EntryListResponse
// @Router			/v1/entries [get]
// @Param			kind		query	string	false	"Filter by entry kind"
// @Param			name		query	string	false	"Filter by name, glob patterns are supported"
// @Param			fromDate	query	string	false	"Entries at and after this date. Ignores exact time, matches on the day of the RFC3339 timestamp provided."
// @Param			untilDate	query	string	false	"Entries before and at this date. Ignores exact time, matches on the day of the RFC3339 timestamp provided."
// @Param			offset		query	uint	false	"The offset of the first Entry returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of entries to return. Defaults to 50."
func GetEntries(c *gin.Context) {
	var filter EntryQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, EntryListResponse{Error: &s})
		return
	}

	// Get the fields set in the filter
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	if filter.Kind != "" && !filter.Kind.Valid() {
		s := models.ErrEntryKindInvalid.Error()
		c.JSON(http.StatusBadRequest, EntryListResponse{Error: &s})
		return
	}

	model := filter.model()
	q := models.DB.
		Order("datetime(entries.date) DESC, datetime(entries.created_at) DESC").
		Where("entries.user_id = ?", auth.UserID(c)).
		Where(&model, queryFields...)

	if !filter.FromDate.IsZero() {
		q = q.Where("entries.date >= date(?)", time.Date(filter.FromDate.Year(), filter.FromDate.Month(), filter.FromDate.Day(), 0, 0, 0, 0, time.UTC))
	}

	if !filter.UntilDate.IsZero() {
		q = q.Where("entries.date < date(?)", time.Date(filter.UntilDate.Year(), filter.UntilDate.Month(), filter.UntilDate.Day()+1, 0, 0, 0, 0, time.UTC))
	}

	var entries []models.Entry
	err := q.Find(&entries).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryListResponse{Error: &e})
		return
	}

	// The name filter supports glob patterns, so it is applied after
	// reading from the database. Pagination therefore happens in memory
	// as well.
	if slices.Contains(setFields, "Name") {
		matching := make([]models.Entry, 0, len(entries))
		for _, entry := range entries {
			if glob.Glob(filter.Name, entry.Name) {
				matching = append(matching, entry)
			}
		}
		entries = matching
	}

	total := int64(len(entries))

	offset := int(filter.Offset)
	if offset > len(entries) {
		offset = len(entries)
	}
	entries = entries[offset:]

	// Default to 50 entries, a negative limit returns all
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	if limit >= 0 && limit < len(entries) {
		entries = entries[:limit]
	}

	data := make([]Entry, 0)
	for _, entry := range entries {
		data = append(data, newEntry(c, entry))
	}

	c.JSON(http.StatusOK, EntryListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  total,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Create entries
// @Description	Creates entries from the list of submitted entry data. A gastoCredito entry with parcelas > 1 is split into that many monthly installment entries sharing a parcelGroupId; its installments are created atomically. The response code is the highest response code number that a single entry creation would have caused.
// @Tags			Entries
// @Produce		json
// @Success		201		{object}	EntryCreateResponse
// @Failure		400		{object}	EntryCreateResponse
// @Failure		500		{object}	EntryCreateResponse
// @Param			entries	body		[]EntryEditable	true	"Entries"
// @Router			/v1/entries [post]
func CreateEntries(c *gin.Context) {
	var editables []EntryEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryCreateResponse{Error: &e})
		return
	}

	userID := auth.UserID(c)

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := EntryCreateResponse{}

	for _, editable := range editables {
		if editable.Parcelas < 0 || editable.Parcelas > 99 {
			status = r.appendError(models.ErrParcelCountInvalid, status)
			continue
		}

		if editable.Parcelas > 1 && editable.Kind != ledger.KindGastoCredito {
			status = r.appendError(errParcelasNonCredit, status)
			continue
		}

		if editable.Parcelas > 1 {
			entries := editable.purchase(userID)

			// All installments of a purchase exist or none does
			err := models.DB.Transaction(func(tx *gorm.DB) error {
				for i := range entries {
					if err := tx.Create(&entries[i]).Error; err != nil {
						return err
					}
				}
				return nil
			})
			if err != nil {
				status = r.appendError(err, status)
				continue
			}

			for _, entry := range entries {
				data := newEntry(c, entry)
				r.Data = append(r.Data, EntryResponse{Data: &data})
			}
			continue
		}

		entry := editable.model(userID)
		err := models.DB.Create(&entry).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newEntry(c, entry)
		r.Data = append(r.Data, EntryResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Update entry
// @Description	Updates an existing entry. Only values to be updated need to be specified. The installment layout cannot be changed after creation.
// @Tags			Entries
// @Accept			json
// @Produce		json
// @Success		200		{object}	EntryResponse
// @Failure		400		{object}	EntryResponse
// @Failure		404		{object}	EntryResponse
// @Failure		500		{object}	EntryResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			entry	body		EntryEditable	true	"Entry"
// @Router			/v1/entries/{id} [patch]
func UpdateEntry(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryResponse{Error: &e})
		return
	}

	var entry models.Entry
	err = models.DB.Where("user_id = ?", auth.UserID(c)).First(&entry, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryResponse{Error: &e})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, EntryEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryResponse{Error: &e})
		return
	}

	if slices.Contains(updateFields, any("Parcelas")) {
		e := errParcelasImmutable.Error()
		c.JSON(http.StatusBadRequest, EntryResponse{Error: &e})
		return
	}

	// Bind the update for the patch
	var update EntryEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryResponse{Error: &e})
		return
	}

	// Fields not set via the API request keep their stored values so the
	// save hooks validate the effective state
	if update.Value.IsZero() {
		update.Value = entry.Value
	}
	if update.Kind == "" {
		update.Kind = entry.Kind
	}
	if update.Date.IsZero() {
		update.Date = types.Date{Time: entry.Date}
	}

	err = models.DB.Model(&entry).Select("", updateFields...).Updates(update.model(entry.UserID)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryResponse{Error: &e})
		return
	}

	data := newEntry(c, entry)
	c.JSON(http.StatusOK, EntryResponse{Data: &data})
}

// @Summary		Delete entry
// @Description	Deletes an entry. With group=true, deletes every installment of the entry's purchase.
// @Tags			Entries
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			group	query		bool	false	"Delete the whole installment group the entry belongs to"
// @Router			/v1/entries/{id} [delete]
func DeleteEntry(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var query QueryDelete
	err = c.ShouldBindQuery(&query)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	userID := auth.UserID(c)

	var entry models.Entry
	err = models.DB.Where("user_id = ?", userID).First(&entry, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if query.Group {
		if entry.ParcelGroupID == uuid.Nil {
			c.JSON(http.StatusBadRequest, httpError{Error: models.ErrNotAParcelGroup.Error()})
			return
		}

		err = models.DB.
			Where("user_id = ?", userID).
			Where("parcel_group_id = ?", entry.ParcelGroupID).
			Delete(&models.Entry{}).Error
	} else {
		err = models.DB.Delete(&entry).Error
	}

	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Get grouped entries
// @Description	Returns the authenticated user's entries bucketed by calendar month. With order=insertion a single unlabeled bucket sorted by date is returned instead.
// @Tags			Entries
// @Produce		json
// @Success		200		{object}	GroupedEntriesResponse
// @Failure		400		{object}	GroupedEntriesResponse
// @Failure		500		{object}	GroupedEntriesResponse
// @Param			order	query		string	false	"Bucket ordering, one of: asc, desc, insertion. Defaults to desc."
// @Router			/v1/entries/grouped [get]
func GetGroupedEntries(c *gin.Context) {
	var query QueryOrder
	if err := c.Bind(&query); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, GroupedEntriesResponse{Error: &s})
		return
	}

	order := query.Order
	if order == "" {
		order = ledger.OrderDescending
	}

	var entries []models.Entry
	err := models.DB.Where("user_id = ?", auth.UserID(c)).Find(&entries).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GroupedEntriesResponse{Error: &e})
		return
	}

	groups, err := ledger.GroupSorted(models.LedgerEntries(entries), order)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GroupedEntriesResponse{Error: &e})
		return
	}

	byID := make(map[uuid.UUID]models.Entry, len(entries))
	for _, entry := range entries {
		byID[entry.ID] = entry
	}

	data := make([]MonthGroup, 0, len(groups))
	for _, group := range groups {
		bucket := MonthGroup{Label: group.Label, Entries: make([]Entry, 0, len(group.Entries))}
		for _, e := range group.Entries {
			bucket.Entries = append(bucket.Entries, newEntry(c, byID[e.ID]))
		}

		data = append(data, bucket)
	}

	c.JSON(http.StatusOK, GroupedEntriesResponse{Data: data})
}
