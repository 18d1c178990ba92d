package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookie = "session_token"

// sessionMaxAge matches the session store TTL (24h).
const sessionMaxAge = 24 * 60 * 60

// SessionCart ensures every storefront request carries a session token,
// issuing a cookie on first contact. The token keys the visitor's cart.
func SessionCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(sessionCookie)
		if err != nil || token == "" {
			token = uuid.NewString()
			c.SetCookie(sessionCookie, token, sessionMaxAge, "/", "", false, true)
		}
		c.Set("sessionToken", token)
		c.Next()
	}
}

// SessionToken extracts the visitor's session token from context
func SessionToken(c *gin.Context) string {
	val, _ := c.Get("sessionToken")
	token, _ := val.(string)
	return token
}
