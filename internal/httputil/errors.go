package httputil

import "errors"

// Binding errors surfaced to API clients in place of the raw
// serialization error.
var (
	ErrInvalidBody      = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
	ErrRequestBodyEmpty = errors.New("the request body must not be empty")
)
