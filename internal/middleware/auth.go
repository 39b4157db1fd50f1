package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wqtc-api/internal/domain"
	"wqtc-api/internal/logger"
)

const (
	// SessionCookie holds the JWT issued at login.
	SessionCookie = "token"
	// SessionKey is the gin context key for the resolved session.
	SessionKey = "session"
	// UserKey is the gin context key for the resolved user.
	UserKey = "user"
)

// Authenticator resolves a bearer token to a user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// Authenticate resolves the session cookie, or an Authorization bearer
// token when there is no cookie, and stores the session on the context.
// Requests without valid credentials continue anonymously.
func Authenticate(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			c.Next()
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			logger.FromContext(c.Request.Context()).Debug("Ignoring invalid credentials",
				slog.String("error", err.Error()))
			c.Next()
			return
		}

		session := user.Session()
		c.Set(UserKey, user)
		c.Set(SessionKey, session)

		ctx := logger.IntoContext(c.Request.Context(),
			logger.FromContext(c.Request.Context()).With(slog.Int64("user_id", user.ID)))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireAuth rejects anonymous requests with 401.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetSession(c); !ok {
			abort(c, http.StatusUnauthorized, "not authenticated")
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects anonymous requests with 401 and non-admins with 403.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := GetSession(c)
		if !ok {
			abort(c, http.StatusUnauthorized, "not authenticated")
			return
		}
		if !session.IsAdmin() {
			abort(c, http.StatusForbidden, "admin access required")
			return
		}
		c.Next()
	}
}

// GetSession returns the session stored by Authenticate.
func GetSession(c *gin.Context) (domain.Session, bool) {
	v, ok := c.Get(SessionKey)
	if !ok {
		return domain.Session{}, false
	}
	session, ok := v.(domain.Session)
	return session, ok
}

// GetUser returns the user stored by Authenticate.
func GetUser(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get(UserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok
}

func tokenFromRequest(c *gin.Context) string {
	if token, err := c.Cookie(SessionCookie); err == nil && token != "" {
		return token
	}
	header := c.GetHeader("Authorization")
	if scheme, token, ok := strings.Cut(header, " "); ok && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(token)
	}
	return ""
}

func abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"code": status, "msg": msg})
}
