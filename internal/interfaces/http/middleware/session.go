package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Cart session identity
const (
	SessionIDKey     = "session_id"
	SessionCookie    = "storefront_session"
	SessionHeaderKey = "X-Session-ID"

	sessionCookieMaxAge = 30 * 24 * 60 * 60
)

// CartSession resolves the cart session ID from the X-Session-ID header or
// the session cookie, minting a new ID (and setting the cookie) when the
// request carries neither. The cart is keyed by this ID, not by the user.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeaderKey)
		if sessionID == "" {
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				sessionID = cookie
			}
		}
		if sessionID == "" || uuid.Validate(sessionID) != nil {
			sessionID = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookie, sessionID, sessionCookieMaxAge, "/", "", false, true)
		}

		c.Set(SessionIDKey, sessionID)
		c.Writer.Header().Set(SessionHeaderKey, sessionID)
		c.Next()
	}
}

// GetSessionID retrieves the cart session ID from gin.Context
func GetSessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}
