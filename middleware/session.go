package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookie = "cart_session"

// thirty days, matching the cookie's advisory lifetime; carts themselves
// live only as long as the process
const sessionMaxAge = 30 * 24 * 60 * 60

// CartSession guarantees every request carries a cart session id,
// issuing a cookie on first contact. Carts need no login: anonymous
// visitors can fill a cart before registering.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		if err != nil || id == "" {
			id = uuid.NewString()
			c.SetCookie(sessionCookie, id, sessionMaxAge, "/", "", false, true)
		}
		c.Set("sessionID", id)
		c.Next()
	}
}

// GetSessionID extracts the cart session id from context.
func GetSessionID(c *gin.Context) string {
	val, _ := c.Get("sessionID")
	return val.(string)
}
