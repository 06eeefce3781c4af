package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/vanesatov/HotelesApi/internal/models"
	"github.com/vanesatov/HotelesApi/internal/sessions"
)

const userKey = "user"

// SessionMiddleware resolves the session cookie to a logged-in user and puts
// the user on the request context. It never rejects a request by itself: the
// web handlers decide individually whether a missing user matters.
func SessionMiddleware(svc *sessions.Service, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if svc == nil {
			c.Next()
			return
		}
		id, err := c.Cookie(cookieName)
		if err != nil || id == "" {
			c.Next()
			return
		}
		sess, err := svc.Get(c.Request.Context(), id)
		if err == nil && sess != nil {
			c.Set(userKey, sess.User)
		}
		c.Next()
	}
}

// UserFromContext returns the logged-in user attached by SessionMiddleware.
func UserFromContext(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return models.User{}, false
	}
	u, ok := v.(models.User)
	return u, ok
}
