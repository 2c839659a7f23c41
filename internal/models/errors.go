package models

import "errors"

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Entry errors
var (
	ErrEntryKindInvalid   = errors.New("the entry kind is invalid, allowed values are: ganho, gasto, gastoCredito, ganhoVale, gastoVale")
	ErrEntryValueNegative = errors.New("entry values must not be negative, the kind decides whether an entry adds to or subtracts from the balance")
	ErrEntryNoDate        = errors.New("entries must have a date")
	ErrParcelCountInvalid = errors.New("the installment count must be between 1 and 99")
	ErrNotAParcelGroup    = errors.New("this entry is not part of an installment group")
)

// User errors
var (
	ErrUserEmailNotUnique  = errors.New("a user with this email address already exists")
	ErrUserEmailInvalid    = errors.New("the email address is invalid")
	ErrPasswordTooShort    = errors.New("the password must be at least 8 characters long")
	ErrCreditLimitNegative = errors.New("the credit limit must not be negative")
)

// Ticket errors
var (
	ErrTicketNoDueDate = errors.New("tickets must have a due date")
)
