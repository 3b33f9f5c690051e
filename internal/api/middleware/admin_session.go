package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adayportal/backend/internal/services"
)

// SessionCookie is the name of the admin session cookie; it carries only
// an opaque token, the logged-in flag lives server-side.
const SessionCookie = "admin_session"

// AdminSession lets requests with a valid session through and sends
// everything else to the login page.
func AdminSession(auth services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		ok, err := auth.IsLoggedIn(c.Request.Context(), token)
		if err != nil || !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Next()
	}
}
