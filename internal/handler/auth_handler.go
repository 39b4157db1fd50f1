package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"wqtc-api/internal/domain"
	"wqtc-api/internal/middleware"
	"wqtc-api/internal/service"
)

// AuthHandler issues and clears the session cookie.
type AuthHandler struct {
	auth         service.AuthServiceInterface
	secureCookie bool
}

// NewAuthHandler creates a new AuthHandler. secureCookie marks the session
// cookie HTTPS-only.
func NewAuthHandler(auth service.AuthServiceInterface, secureCookie bool) *AuthHandler {
	return &AuthHandler{auth: auth, secureCookie: secureCookie}
}

// TokenResponse is the login reply.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var creds domain.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		respondBadRequest(c, "invalid login body: "+err.Error())
		return
	}

	result, err := h.auth.Login(c.Request.Context(), creds)
	if err != nil {
		respondError(c, err)
		return
	}

	maxAge := int(time.Until(result.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, result.Token, maxAge, "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, TokenResponse{AccessToken: result.Token, TokenType: "bearer"})
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, gin.H{"msg": "Logged out successfully"})
}

// Me handles GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.GetUser(c)
	if !ok {
		respondError(c, domain.ErrUnauthorized)
		return
	}
	c.JSON(http.StatusOK, user)
}
