package handler

import (
	"log/slog"
	"net/http"

	"invoice-admin-backend/internal/services/auth"

	"github.com/gin-gonic/gin"
)

const LoginPath = "/login"

type AuthHandler struct {
	auth     *auth.Authenticator
	sessions *auth.Sessions
}

func NewAuthHandler(a *auth.Authenticator, s *auth.Sessions) *AuthHandler {
	return &AuthHandler{auth: a, sessions: s}
}

// LoginForm answers with the empty form state.
func (h *AuthHandler) LoginForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": nil})
}

// Login runs the credentials sign-in. The previous attempt's message may be
// posted back as prevState.
func (h *AuthHandler) Login(c *gin.Context) {
	var creds auth.Credentials
	if err := c.ShouldBind(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form submission"})
		return
	}

	out, err := h.auth.Authenticate(c.Request.Context(), c.PostForm("prevState"), creds)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "sign in failed", "error", err)
		_ = c.Error(err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if out.Identity == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": out.Message})
		return
	}

	h.sessions.Create(c.Writer, out.Identity.UserID)
	c.Redirect(http.StatusSeeOther, out.Redirect)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Clear(c.Writer)
	c.Redirect(http.StatusSeeOther, LoginPath)
}
