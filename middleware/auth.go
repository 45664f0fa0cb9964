package middleware

import (
	"net/http"

	"inkpress/sessions"

	"github.com/gin-gonic/gin"
)

// Authorized gates a route behind a live session. Anonymous requests are
// redirected to the login form, never rejected with an error status.
func Authorized(store *sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie("session_id")
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		session, exists := store.Get(cookie)
		if !exists {
			c.SetCookie("session_id", "", -1, "/", "", false, true)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set("session", session)
		c.Next()
	}
}
