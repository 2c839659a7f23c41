package v1

import (
	"net/http"
	"strings"
	"time"

	"github.com/RFATeixeira/tex-dashboard/internal/auth"
	"github.com/RFATeixeira/tex-dashboard/internal/httputil"
	"github.com/RFATeixeira/tex-dashboard/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the routes for registration and login with
// the RouterGroup that is passed.
func RegisterAuthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/register", OptionsRegister)
	r.POST("/register", Register)

	r.OPTIONS("/login", OptionsLogin)
	r.POST("/login", Login)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/register [options]
func OptionsRegister(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/login [options]
func OptionsLogin(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Register user
// @Description	Creates a new user account and returns a token for it
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		201		{object}	SessionResponse
// @Failure		400		{object}	SessionResponse
// @Failure		500		{object}	SessionResponse
// @Param			user	body		RegisterEditable	true	"User"
// @Router			/v1/register [post]
func Register(c *gin.Context) {
	var editable RegisterEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{Error: &e})
		return
	}

	user := editable.model()
	err = user.SetPassword(editable.Password)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{Error: &e})
		return
	}

	err = models.DB.Create(&user).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{Error: &e})
		return
	}

	token, err := auth.NewToken(user.ID, time.Now())
	if err != nil {
		e := models.ErrGeneral.Error()
		c.JSON(http.StatusInternalServerError, SessionResponse{Error: &e})
		return
	}

	data := newSession(token, user)
	c.JSON(http.StatusCreated, SessionResponse{Data: &data})
}

// @Summary		Log in
// @Description	Verifies the credentials and returns a token for the user
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200			{object}	SessionResponse
// @Failure		400			{object}	SessionResponse
// @Failure		401			{object}	SessionResponse
// @Failure		500			{object}	SessionResponse
// @Param			credentials	body		LoginEditable	true	"Credentials"
// @Router			/v1/login [post]
func Login(c *gin.Context) {
	var editable LoginEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{Error: &e})
		return
	}

	var user models.User
	email := strings.ToLower(strings.TrimSpace(editable.Email))
	err = models.DB.Where(&models.User{Email: email}).First(&user).Error
	if err != nil || !user.CheckPassword(editable.Password) {
		// The reason for the failure is deliberately not disclosed
		e := errWrongCredentials.Error()
		c.JSON(http.StatusUnauthorized, SessionResponse{Error: &e})
		return
	}

	token, err := auth.NewToken(user.ID, time.Now())
	if err != nil {
		e := models.ErrGeneral.Error()
		c.JSON(http.StatusInternalServerError, SessionResponse{Error: &e})
		return
	}

	data := newSession(token, user)
	c.JSON(http.StatusOK, SessionResponse{Data: &data})
}
