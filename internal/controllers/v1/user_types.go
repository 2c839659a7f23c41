package v1

import (
	"github.com/RFATeixeira/tex-dashboard/internal/models"
	"github.com/shopspring/decimal"
)

type UserEditable struct {
	Name     string `json:"name" example:"Rafael"`
	Email    string `json:"email" example:"rafael@example.com"`
	Password string `json:"password" example:"correct horse battery staple"` // New cleartext password, stored as a bcrypt hash

	CreditLimit decimal.Decimal `json:"creditoMaximo" example:"1500.00" minimum:"0"` // Configured credit card ceiling, 0 means unset
}

// model returns the database resource for the API representation of the
// editable fields. The password hash is passed in since the editable field
// holds the cleartext.
func (editable UserEditable) model(passwordHash string) models.User {
	return models.User{
		Name:        editable.Name,
		Email:       editable.Email,
		Password:    passwordHash,
		CreditLimit: editable.CreditLimit,
	}
}

// User is the representation of a User in API v1. The password hash is
// never part of it.
type User struct {
	models.DefaultModel
	Name        string          `json:"name" example:"Rafael"`
	Email       string          `json:"email" example:"rafael@example.com"`
	CreditLimit decimal.Decimal `json:"creditoMaximo" example:"1500.00"`
}

// newUser returns the API v1 representation of the resource
func newUser(model models.User) User {
	return User{
		DefaultModel: model.DefaultModel,
		Name:         model.Name,
		Email:        model.Email,
		CreditLimit:  model.CreditLimit,
	}
}

type UserResponse struct {
	Error *string `json:"error" example:"the email address is invalid"` // The error, if any occurred
	Data  *User   `json:"data"`                                         // The User data
}
