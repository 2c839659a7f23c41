package v1

import (
	"net/http"

	"github.com/RFATeixeira/tex-dashboard/internal/auth"
	"github.com/RFATeixeira/tex-dashboard/internal/httputil"
	"github.com/RFATeixeira/tex-dashboard/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterUserRoutes registers the routes for the authenticated user with
// the RouterGroup that is passed.
func RegisterUserRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsUser)
	r.GET("", GetUser)
	r.PATCH("", UpdateUser)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			User
// @Success		204
// @Router			/v1/user [options]
func OptionsUser(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Get user
// @Description	Returns the authenticated user
// @Tags			User
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		500	{object}	UserResponse
// @Router			/v1/user [get]
func GetUser(c *gin.Context) {
	var user models.User
	err := models.DB.First(&user, auth.UserID(c)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{Error: &e})
		return
	}

	data := newUser(user)
	c.JSON(http.StatusOK, UserResponse{Data: &data})
}

// @Summary		Update user
// @Description	Updates the authenticated user. Only values to be updated need to be specified.
// @Tags			User
// @Accept			json
// @Produce		json
// @Success		200		{object}	UserResponse
// @Failure		400		{object}	UserResponse
// @Failure		500		{object}	UserResponse
// @Param			user	body		UserEditable	true	"User"
// @Router			/v1/user [patch]
func UpdateUser(c *gin.Context) {
	var user models.User
	err := models.DB.First(&user, auth.UserID(c)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{Error: &e})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, UserEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{Error: &e})
		return
	}

	// Bind the update for the patch
	var update UserEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{Error: &e})
		return
	}

	// Fields not set via the API request keep their stored values so the
	// save hooks validate the effective state
	if update.Email == "" {
		update.Email = user.Email
	}
	if update.Name == "" {
		update.Name = user.Name
	}
	if update.CreditLimit.IsZero() {
		update.CreditLimit = user.CreditLimit
	}

	// A password change replaces the stored hash
	if slices.Contains(updateFields, any("Password")) {
		err = user.SetPassword(update.Password)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), UserResponse{Error: &e})
			return
		}
	}

	err = models.DB.Model(&user).Select("", updateFields...).Updates(update.model(user.Password)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{Error: &e})
		return
	}

	data := newUser(user)
	c.JSON(http.StatusOK, UserResponse{Data: &data})
}
