package auth

import (
	"net/http"
	"strings"

	"github.com/RFATeixeira/tex-dashboard/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Middleware rejects requests without a valid bearer token and stores the
// authenticated user ID in the gin context.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrNoToken.Error()})
			return
		}

		token, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrNoToken.Error()})
			return
		}

		userID, err := ParseToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.Set(string(models.DBContextUserID), userID)
		c.Next()
	}
}

// UserID returns the authenticated user's ID from the gin context.
func UserID(c *gin.Context) uuid.UUID {
	return c.MustGet(string(models.DBContextUserID)).(uuid.UUID)
}
