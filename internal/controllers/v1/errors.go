package v1

import (
	"errors"
	"net/http"

	"github.com/RFATeixeira/tex-dashboard/internal/auth"
	"github.com/RFATeixeira/tex-dashboard/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, auth.ErrNoToken) || errors.Is(err, auth.ErrTokenInvalid) || errors.Is(err, errWrongCredentials) {
		return http.StatusUnauthorized
	}

	return http.StatusBadRequest
}

var (
	errMonthNotSetInQuery = errors.New("the month query parameter must be set")
	errLedgerInvalid      = errors.New("the ledger query parameter is invalid, allowed values are: geral, vale")
)

// Entry errors
var (
	errParcelasNonCredit = errors.New("only gastoCredito entries can be split into installments")
	errParcelasImmutable = errors.New("the installment layout of an entry cannot be changed after creation")
)

// Auth errors
var (
	errWrongCredentials = errors.New("no user exists for this email and password combination")
)
