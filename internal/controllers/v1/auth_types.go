package v1

import (
	"github.com/RFATeixeira/tex-dashboard/internal/models"
)

type RegisterEditable struct {
	Name     string `json:"name" example:"Rafael"`
	Email    string `json:"email" binding:"required" example:"rafael@example.com"`
	Password string `json:"password" binding:"required" example:"correct horse battery staple"` // Cleartext password, stored as a bcrypt hash
}

// model returns the database resource for the API representation
func (editable RegisterEditable) model() models.User {
	return models.User{
		Name:  editable.Name,
		Email: editable.Email,
	}
}

type LoginEditable struct {
	Email    string `json:"email" binding:"required" example:"rafael@example.com"`
	Password string `json:"password" binding:"required"`
}

// Session is the representation of a logged in user in API v1.
type Session struct {
	Token string `json:"token"` // Bearer token to authenticate subsequent requests with
	User  User   `json:"user"`
}

func newSession(token string, model models.User) Session {
	return Session{
		Token: token,
		User:  newUser(model),
	}
}

type SessionResponse struct {
	Error *string  `json:"error" example:"the request body must not be empty"` // The error, if any occurred
	Data  *Session `json:"data"`                                               // The session data, if authentication was successful
}
