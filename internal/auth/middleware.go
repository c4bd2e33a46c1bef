package auth

import (
	"github.com/gin-gonic/gin"
)

// Context keys for user data
const (
	ContextKeyUserID   = "auth_user_id"
	ContextKeyUsername = "auth_username"
)

// AnonymousUserID marks a request with no resolved identity.
const AnonymousUserID = uint(0)

// UserResolver looks up a user identifier by username.
type UserResolver interface {
	GetUserID(username string) (uint, error)
}

// Middleware resolves the session username to a user record on every
// request. Requests without a session, or with a username that has no user
// row yet, proceed anonymously; the endpoints decide how to respond.
type Middleware struct {
	sessionManager *SessionManager
	resolver       UserResolver
}

// NewMiddleware creates a new identity resolution middleware.
func NewMiddleware(sessionManager *SessionManager, resolver UserResolver) *Middleware {
	return &Middleware{
		sessionManager: sessionManager,
		resolver:       resolver,
	}
}

// Handler returns a Gin middleware handler that resolves request identity.
func (m *Middleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextKeyUserID, AnonymousUserID)

		username := m.sessionManager.GetUsername(c.Request)
		if username != "" {
			if id, err := m.resolver.GetUserID(username); err == nil && id != 0 {
				c.Set(ContextKeyUserID, id)
				c.Set(ContextKeyUsername, username)
			}
		}

		c.Next()
	}
}

// GetUserID extracts the resolved user ID from the Gin context.
// Returns AnonymousUserID when no identity was resolved.
func GetUserID(c *gin.Context) uint {
	if id, ok := c.Get(ContextKeyUserID); ok {
		if userID, ok := id.(uint); ok {
			return userID
		}
	}
	return AnonymousUserID
}

// GetUsername extracts the resolved username from the Gin context.
func GetUsername(c *gin.Context) string {
	if v, ok := c.Get(ContextKeyUsername); ok {
		if username, ok := v.(string); ok {
			return username
		}
	}
	return ""
}
