package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/RFATeixeira/tex-dashboard/internal/controllers/v1"
	"github.com/RFATeixeira/tex-dashboard/internal/types"
	"github.com/RFATeixeira/tex-dashboard/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestTicketsOptions() {
	session := registerTestUser(suite.T())

	tests := []struct {
		name     string
		status   int
		id       string
		pathFunc func() string
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
				return createTestTicket(suite.T(), session, v1.TicketEditable{
					Name:    "Conta de luz",
					Value:   decimal.NewFromFloat(230.47),
					DueDate: types.Date{Time: time.Now().UTC().AddDate(0, 0, 10)},
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
				p = fmt.Sprintf("%s/%s", "http://example.com/v1/tickets", tt.id)
			}

			r := test.Request(t, http.MethodOptions, p, "", authHeaders(session))
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestTicketCreate() {
	session := registerTestUser(suite.T())

	response := createTestTicket(suite.T(), session, v1.TicketEditable{
		Name:    "Conta de luz",
		Value:   decimal.NewFromFloat(230.47),
		DueDate: types.Date{Time: time.Now().UTC().AddDate(0, 0, 10)},
	})

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "Conta de luz", response.Data.Name)
	assert.True(suite.T(), response.Data.Value.Equal(decimal.NewFromFloat(230.47)))
}

func (suite *TestSuiteStandard) TestTicketCreateInvalid() {
	session := registerTestUser(suite.T())

	tests := []struct {
		name string
		body any
	}{
		{"Broken JSON", `{ "name": `},
		{"No body", ""},
		{"Missing due date", v1.TicketEditable{Name: "Conta de luz", Value: decimal.NewFromInt(100)}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/tickets", tt.body, authHeaders(session))
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

// TestTicketExpiry verifies that tickets whose due date passed more than
// five days ago are removed when the list is read.
func (suite *TestSuiteStandard) TestTicketExpiry() {
	session := registerTestUser(suite.T())

	_ = createTestTicket(suite.T(), session, v1.TicketEditable{
		Name:    "Vencido",
		Value:   decimal.NewFromInt(50),
		DueDate: types.Date{Time: time.Now().UTC().AddDate(0, 0, -10)},
	})
	_ = createTestTicket(suite.T(), session, v1.TicketEditable{
		Name:    "Vencido há pouco",
		Value:   decimal.NewFromInt(60),
		DueDate: types.Date{Time: time.Now().UTC().AddDate(0, 0, -2)},
	})
	_ = createTestTicket(suite.T(), session, v1.TicketEditable{
		Name:    "Em aberto",
		Value:   decimal.NewFromInt(70),
		DueDate: types.Date{Time: time.Now().UTC().AddDate(0, 0, 10)},
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/tickets", "", authHeaders(session))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TicketListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 2, "the long overdue ticket must be gone")
	assert.Equal(suite.T(), "Vencido há pouco", response.Data[0].Name, "tickets are ordered by due date")
	assert.Equal(suite.T(), "Em aberto", response.Data[1].Name)
}

func (suite *TestSuiteStandard) TestTicketUpdate() {
	session := registerTestUser(suite.T())

	created := createTestTicket(suite.T(), session, v1.TicketEditable{
		Name:    "Conta de luz",
		Value:   decimal.NewFromInt(100),
		DueDate: types.Date{Time: time.Now().UTC().AddDate(0, 0, 10)},
	})

	r := test.Request(suite.T(), http.MethodPatch, created.Data.Links.Self, map[string]any{
		"value": 120,
	}, authHeaders(session))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TicketResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.Value.Equal(decimal.NewFromInt(120)))
	assert.Equal(suite.T(), "Conta de luz", response.Data.Name)
}

func (suite *TestSuiteStandard) TestTicketDelete() {
	session := registerTestUser(suite.T())

	created := createTestTicket(suite.T(), session, v1.TicketEditable{
		Name:    "Conta de luz",
		Value:   decimal.NewFromInt(100),
		DueDate: types.Date{Time: time.Now().UTC().AddDate(0, 0, 10)},
	})

	r := test.Request(suite.T(), http.MethodDelete, created.Data.Links.Self, "", authHeaders(session))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, created.Data.Links.Self, "", authHeaders(session))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestTicketUserScoping verifies that users cannot see each other's tickets.
func (suite *TestSuiteStandard) TestTicketUserScoping() {
	alice := registerTestUser(suite.T(), v1.RegisterEditable{Email: "alice@example.com", Password: "alice-password"})
	bob := registerTestUser(suite.T(), v1.RegisterEditable{Email: "bob@example.com", Password: "bob-password"})

	created := createTestTicket(suite.T(), alice, v1.TicketEditable{
		Name:    "Conta de luz",
		Value:   decimal.NewFromInt(100),
		DueDate: types.Date{Time: time.Now().UTC().AddDate(0, 0, 10)},
	})

	r := test.Request(suite.T(), http.MethodGet, created.Data.Links.Self, "", authHeaders(bob))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
