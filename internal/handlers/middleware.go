package handler

import (
	"net/http"
	"strings"

	"invoice-admin-backend/internal/services/auth"

	"github.com/gin-gonic/gin"
)

const userIDKey = "userID"

// RequireAuth lets signed-in requests through. Browsers are sent to the
// login page, API clients get a 401.
func RequireAuth(sessions *auth.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := sessions.Parse(c.Request)
		if !ok {
			accept := c.GetHeader("Accept")
			if strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/html") {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
				return
			}
			c.Redirect(http.StatusSeeOther, LoginPath)
			c.Abort()
			return
		}
		c.Set(userIDKey, uid)
		c.Next()
	}
}

// UserID returns the signed-in user set by RequireAuth.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
