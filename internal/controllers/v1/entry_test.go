package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/RFATeixeira/tex-dashboard/internal/controllers/v1"
	"github.com/RFATeixeira/tex-dashboard/internal/ledger"
	"github.com/RFATeixeira/tex-dashboard/internal/types"
	"github.com/RFATeixeira/tex-dashboard/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) types.Date {
	return types.Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (suite *TestSuiteStandard) TestEntriesOptions() {
	session := registerTestUser(suite.T())

	tests := []struct {
		name     string        // Name for the test
		status   int           // Expected HTTP status
		id       string        // String to use as ID. Ignored when pathFunc is non-nil
		pathFunc func() string // Function returning the path
	}{
		{
			"Does not exist",
			http.StatusNotFound,
			uuid.New().String(),
			nil,
		},
		{
			"Invalid UUID",
			http.StatusBadRequest,
			"NotParseableAsUUID",
			nil,
		},
		{
			"Success",
			http.StatusNoContent,
			"",
			func() string {
				return createTestEntry(suite.T(), session, v1.EntryEditable{
					Name:  "Mercado",
					Kind:  ledger.KindGasto,
					Value: decimal.NewFromFloat(31),
					Date:  date(2024, 2, 10),
				}).Data.Links.Self
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var p string
			if tt.pathFunc != nil {
				p = tt.pathFunc()
			} else {
				p = fmt.Sprintf("%s/%s", "http://example.com/v1/entries", tt.id)
			}

			r := test.Request(t, http.MethodOptions, p, "", authHeaders(session))
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestEntryCreate() {
	session := registerTestUser(suite.T())

	response := createTestEntry(suite.T(), session, v1.EntryEditable{
		Name:  "Salário",
		Kind:  ledger.KindGanho,
		Value: decimal.NewFromInt(2500),
		Date:  date(2024, 1, 5),
	})

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "Salário", response.Data.Name)
	assert.True(suite.T(), response.Data.Value.Equal(decimal.NewFromInt(2500)))
	assert.Equal(suite.T(), uuid.Nil, response.Data.ParcelGroupID)
	assert.Equal(suite.T(), 0, response.Data.TotalParcelas)
}

// TestEntryCreateFlexibleDates verifies that all supported date formats are
// accepted on creation.
func (suite *TestSuiteStandard) TestEntryCreateFlexibleDates() {
	session := registerTestUser(suite.T())

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"Day first with dashes", `[{"name": "A", "kind": "gasto", "value": 1, "date": "15-01-2024"}]`, http.StatusCreated},
		{"Day first with slashes", `[{"name": "B", "kind": "gasto", "value": 1, "date": "15/01/2024"}]`, http.StatusCreated},
		{"ISO date", `[{"name": "C", "kind": "gasto", "value": 1, "date": "2024-01-15"}]`, http.StatusCreated},
		{"RFC3339", `[{"name": "D", "kind": "gasto", "value": 1, "date": "2024-01-15T10:00:00Z"}]`, http.StatusCreated},
		{"Timestamp object", `[{"name": "E", "kind": "gasto", "value": 1, "date": {"seconds": 1705276800, "nanoseconds": 0}}]`, http.StatusCreated},
		{"Unparseable", `[{"name": "F", "kind": "gasto", "value": 1, "date": "junk"}]`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/entries", tt.body, authHeaders(session))
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestEntryCreateInvalid() {
	session := registerTestUser(suite.T())

	tests := []struct {
		name     string
		editable v1.EntryEditable
	}{
		{"Invalid kind", v1.EntryEditable{Name: "A", Kind: "despesa", Value: decimal.NewFromInt(1), Date: date(2024, 1, 1)}},
		{"Missing date", v1.EntryEditable{Name: "B", Kind: ledger.KindGasto, Value: decimal.NewFromInt(1)}},
		{"Negative value", v1.EntryEditable{Name: "C", Kind: ledger.KindGasto, Value: decimal.NewFromInt(-5), Date: date(2024, 1, 1)}},
		{"Parcelas out of range", v1.EntryEditable{Name: "D", Kind: ledger.KindGastoCredito, Value: decimal.NewFromInt(100), Date: date(2024, 1, 1), Parcelas: 100}},
		{"Parcelas on non-credit kind", v1.EntryEditable{Name: "E", Kind: ledger.KindGasto, Value: decimal.NewFromInt(100), Date: date(2024, 1, 1), Parcelas: 3}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			response := createTestEntries(t, session, []v1.EntryEditable{tt.editable}, http.StatusBadRequest)
			require.Len(t, response.Data, 1)
			assert.NotNil(t, response.Data[0].Error)
		})
	}
}

// TestEntryCreatePurchase verifies that a credit purchase with multiple
// installments is expanded into monthly entries sharing a group.
func (suite *TestSuiteStandard) TestEntryCreatePurchase() {
	session := registerTestUser(suite.T())

	response := createTestEntries(suite.T(), session, []v1.EntryEditable{{
		Name:     "Notebook",
		Kind:     ledger.KindGastoCredito,
		Value:    decimal.NewFromInt(1200),
		Date:     date(2024, 1, 15),
		Parcelas: 3,
	}})

	require.Len(suite.T(), response.Data, 3)

	groupID := response.Data[0].Data.ParcelGroupID
	assert.NotEqual(suite.T(), uuid.Nil, groupID)

	total := decimal.Zero
	for i, res := range response.Data {
		require.NotNil(suite.T(), res.Data)
		entry := *res.Data

		assert.Equal(suite.T(), groupID, entry.ParcelGroupID)
		assert.Equal(suite.T(), i+1, entry.ParcelNumber)
		assert.Equal(suite.T(), 3, entry.TotalParcelas)
		assert.True(suite.T(), entry.Value.Equal(decimal.NewFromInt(400)), "installment value is %s", entry.Value)

		expectedDate := time.Date(2024, time.Month(1+i), 15, 0, 0, 0, 0, time.UTC)
		assert.True(suite.T(), entry.Date.Equal(expectedDate), "installment %d is dated %s", i+1, entry.Date)

		total = total.Add(entry.Value)
	}

	assert.True(suite.T(), total.Equal(decimal.NewFromInt(1200)))
}

func (suite *TestSuiteStandard) TestEntriesGetFilter() {
	session := registerTestUser(suite.T())

	_ = createTestEntry(suite.T(), session, v1.EntryEditable{Name: "Mercado Big", Kind: ledger.KindGasto, Value: decimal.NewFromInt(100), Date: date(2024, 1, 10)})
	_ = createTestEntry(suite.T(), session, v1.EntryEditable{Name: "Mercado Pão", Kind: ledger.KindGasto, Value: decimal.NewFromInt(20), Date: date(2024, 2, 3)})
	_ = createTestEntry(suite.T(), session, v1.EntryEditable{Name: "Salário", Kind: ledger.KindGanho, Value: decimal.NewFromInt(2500), Date: date(2024, 2, 5)})
	_ = createTestEntry(suite.T(), session, v1.EntryEditable{Name: "Almoço", Kind: ledger.KindGastoVale, Value: decimal.NewFromInt(25), Date: date(2024, 2, 6)})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"No filter", "", 4},
		{"By kind", "kind=gasto", 2},
		{"By name glob", "name=Mercado*", 2},
		{"From date", "fromDate=2024-02-01T00:00:00Z", 3},
		{"Until date", "untilDate=2024-01-31T00:00:00Z", 1},
		{"Limit", "limit=2", 2},
		{"Offset", "offset=3", 1},
		{"Invalid kind", "kind=unknown", -1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/entries?%s", tt.query), "", authHeaders(session))

			if tt.count < 0 {
				test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
				return
			}

			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.EntryListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

// TestEntriesPagination verifies the total count is unaffected by paging.
func (suite *TestSuiteStandard) TestEntriesPagination() {
	session := registerTestUser(suite.T())

	for i := 0; i < 5; i++ {
		_ = createTestEntry(suite.T(), session, v1.EntryEditable{
			Name:  fmt.Sprintf("Entry %d", i),
			Kind:  ledger.KindGasto,
			Value: decimal.NewFromInt(int64(i + 1)),
			Date:  date(2024, 1, i+1),
		})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/entries?offset=2&limit=2", "", authHeaders(session))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.EntryListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), int64(5), response.Pagination.Total)
	assert.Equal(suite.T(), uint(2), response.Pagination.Offset)
}

func (suite *TestSuiteStandard) TestEntryGet() {
	session := registerTestUser(suite.T())

	created := createTestEntry(suite.T(), session, v1.EntryEditable{
		Name:  "Mercado",
		Kind:  ledger.KindGasto,
		Value: decimal.NewFromInt(100),
		Date:  date(2024, 1, 10),
	})

	r := test.Request(suite.T(), http.MethodGet, created.Data.Links.Self, "", authHeaders(session))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.EntryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), created.Data.ID, response.Data.ID)
}

// TestEntryUserScoping verifies that users cannot read each other's entries.
func (suite *TestSuiteStandard) TestEntryUserScoping() {
	alice := registerTestUser(suite.T(), v1.RegisterEditable{Email: "alice@example.com", Password: "alice-password"})
	bob := registerTestUser(suite.T(), v1.RegisterEditable{Email: "bob@example.com", Password: "bob-password"})

	created := createTestEntry(suite.T(), alice, v1.EntryEditable{
		Name:  "Mercado",
		Kind:  ledger.KindGasto,
		Value: decimal.NewFromInt(100),
		Date:  date(2024, 1, 10),
	})

	r := test.Request(suite.T(), http.MethodGet, created.Data.Links.Self, "", authHeaders(bob))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/entries", "", authHeaders(bob))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.EntryListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	assert.Empty(suite.T(), list.Data)
}

func (suite *TestSuiteStandard) TestEntryUpdate() {
	session := registerTestUser(suite.T())

	created := createTestEntry(suite.T(), session, v1.EntryEditable{
		Name:  "Mercado",
		Kind:  ledger.KindGasto,
		Value: decimal.NewFromInt(100),
		Date:  date(2024, 1, 10),
	})

	r := test.Request(suite.T(), http.MethodPatch, created.Data.Links.Self, map[string]any{
		"name": "Mercado Central",
	}, authHeaders(session))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, created.Data.Links.Self, "", authHeaders(session))
	var response v1.EntryResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "Mercado Central", response.Data.Name)
	assert.True(suite.T(), response.Data.Value.Equal(decimal.NewFromInt(100)), "value must be unchanged")
}

func (suite *TestSuiteStandard) TestEntryUpdateInvalid() {
	session := registerTestUser(suite.T())

	created := createTestEntry(suite.T(), session, v1.EntryEditable{
		Name:  "Mercado",
		Kind:  ledger.KindGasto,
		Value: decimal.NewFromInt(100),
		Date:  date(2024, 1, 10),
	})

	tests := []struct {
		name string
		body any
	}{
		{"Broken JSON", `{ "name": `},
		{"Invalid kind", map[string]any{"kind": "despesa"}},
		{"Changing parcelas", map[string]any{"parcelas": 5}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, created.Data.Links.Self, tt.body, authHeaders(session))
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestEntryDelete() {
	session := registerTestUser(suite.T())

	created := createTestEntry(suite.T(), session, v1.EntryEditable{
		Name:  "Mercado",
		Kind:  ledger.KindGasto,
		Value: decimal.NewFromInt(100),
		Date:  date(2024, 1, 10),
	})

	r := test.Request(suite.T(), http.MethodDelete, created.Data.Links.Self, "", authHeaders(session))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, created.Data.Links.Self, "", authHeaders(session))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestEntryDeleteGroup verifies that deleting with group=true removes the
// whole purchase and that it fails for entries outside any group.
func (suite *TestSuiteStandard) TestEntryDeleteGroup() {
	session := registerTestUser(suite.T())

	purchase := createTestEntries(suite.T(), session, []v1.EntryEditable{{
		Name:     "Notebook",
		Kind:     ledger.KindGastoCredito,
		Value:    decimal.NewFromInt(900),
		Date:     date(2024, 1, 15),
		Parcelas: 3,
	}})
	require.Len(suite.T(), purchase.Data, 3)

	r := test.Request(suite.T(), http.MethodDelete, purchase.Data[1].Data.Links.Self+"?group=true", "", authHeaders(session))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/entries", "", authHeaders(session))
	var list v1.EntryListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	assert.Empty(suite.T(), list.Data)

	// group=true is only valid for entries that are part of a purchase
	single := createTestEntry(suite.T(), session, v1.EntryEditable{
		Name:  "Mercado",
		Kind:  ledger.KindGasto,
		Value: decimal.NewFromInt(100),
		Date:  date(2024, 1, 10),
	})

	r = test.Request(suite.T(), http.MethodDelete, single.Data.Links.Self+"?group=true", "", authHeaders(session))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
