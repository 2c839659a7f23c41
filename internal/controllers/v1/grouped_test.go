package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/RFATeixeira/tex-dashboard/internal/controllers/v1"
	"github.com/RFATeixeira/tex-dashboard/internal/ledger"
	"github.com/RFATeixeira/tex-dashboard/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestGroupedEntriesOptions() {
	session := registerTestUser(suite.T())

	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/entries/grouped", "", authHeaders(session))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestGroupedEntries() {
	session := registerTestUser(suite.T())

	_ = createTestEntry(suite.T(), session, v1.EntryEditable{Name: "Mercado", Kind: ledger.KindGasto, Value: decimal.NewFromInt(100), Date: date(2024, 1, 15)})
	_ = createTestEntry(suite.T(), session, v1.EntryEditable{Name: "Farmácia", Kind: ledger.KindGasto, Value: decimal.NewFromInt(50), Date: date(2024, 1, 20)})
	_ = createTestEntry(suite.T(), session, v1.EntryEditable{Name: "Salário", Kind: ledger.KindGanho, Value: decimal.NewFromInt(2500), Date: date(2024, 2, 1)})

	tests := []struct {
		name   string
		query  string
		labels []string
	}{
		{"Default is descending", "", []string{"02/2024", "01/2024"}},
		{"Ascending", "order=asc", []string{"01/2024", "02/2024"}},
		{"Descending", "order=desc", []string{"02/2024", "01/2024"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/entries/grouped?%s", tt.query), "", authHeaders(session))
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.GroupedEntriesResponse
			test.DecodeResponse(t, &r, &response)

			require.Len(t, response.Data, len(tt.labels))
			for i, label := range tt.labels {
				assert.Equal(t, label, response.Data[i].Label)
			}
		})
	}
}

// TestGroupedEntriesInsertion verifies the flat date-ordered mode.
func (suite *TestSuiteStandard) TestGroupedEntriesInsertion() {
	session := registerTestUser(suite.T())

	_ = createTestEntry(suite.T(), session, v1.EntryEditable{Name: "Salário", Kind: ledger.KindGanho, Value: decimal.NewFromInt(2500), Date: date(2024, 2, 1)})
	_ = createTestEntry(suite.T(), session, v1.EntryEditable{Name: "Mercado", Kind: ledger.KindGasto, Value: decimal.NewFromInt(100), Date: date(2024, 1, 15)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/entries/grouped?order=insertion", "", authHeaders(session))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.GroupedEntriesResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 1)
	assert.Empty(suite.T(), response.Data[0].Label)

	require.Len(suite.T(), response.Data[0].Entries, 2)
	assert.Equal(suite.T(), "Mercado", response.Data[0].Entries[0].Name, "entries are sorted by date ascending")
	assert.Equal(suite.T(), "Salário", response.Data[0].Entries[1].Name)
}

func (suite *TestSuiteStandard) TestGroupedEntriesInvalidOrder() {
	session := registerTestUser(suite.T())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/entries/grouped?order=random", "", authHeaders(session))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
