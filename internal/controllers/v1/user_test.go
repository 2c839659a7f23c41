package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/RFATeixeira/tex-dashboard/internal/controllers/v1"
	"github.com/RFATeixeira/tex-dashboard/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestUserOptions() {
	session := registerTestUser(suite.T())

	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/user", "", authHeaders(session))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, PATCH", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestUserGet() {
	session := registerTestUser(suite.T())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/user", "", authHeaders(session))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.UserResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "test@example.com", response.Data.Email)
	assert.True(suite.T(), response.Data.CreditLimit.IsZero())
}

func (suite *TestSuiteStandard) TestUserUpdate() {
	session := registerTestUser(suite.T())

	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/user", map[string]any{
		"name":          "Novo Nome",
		"creditoMaximo": 1500,
	}, authHeaders(session))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.UserResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Novo Nome", response.Data.Name)
	assert.True(suite.T(), response.Data.CreditLimit.Equal(decimal.NewFromInt(1500)))
	assert.Equal(suite.T(), "test@example.com", response.Data.Email, "email must be unchanged")
}

func (suite *TestSuiteStandard) TestUserUpdateInvalid() {
	session := registerTestUser(suite.T())

	tests := []struct {
		name string
		body any
	}{
		{"Broken JSON", `{ "name": `},
		{"Invalid email", map[string]any{"email": "not-an-email"}},
		{"Negative credit limit", map[string]any{"creditoMaximo": -100}},
		{"Short password", map[string]any{"password": "short"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, "http://example.com/v1/user", tt.body, authHeaders(session))
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

// TestUserChangePassword verifies that a changed password is effective for
// the next login and invalidates the old one.
func (suite *TestSuiteStandard) TestUserChangePassword() {
	session := registerTestUser(suite.T())

	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/user", map[string]any{
		"password": "new-password",
	}, authHeaders(session))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/login", v1.LoginEditable{
		Email:    "test@example.com",
		Password: "test-password",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/login", v1.LoginEditable{
		Email:    "test@example.com",
		Password: "new-password",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}
