package middlewares

import (
	"github.com/adeanumainah/coffe-corner/pkg/resp"
	"github.com/adeanumainah/coffe-corner/repository"

	"github.com/gin-gonic/gin"
)

// Context keys set by WithSession.
const (
	CtxLoggedIn = "loggedIn"
	CtxUsername = "username"
	CtxRole     = "role"
	CtxPhone    = "phone"
)

// WithSession loads the persisted session into the request context. It
// never rejects: anonymous requests simply carry loggedIn=false and use
// the guest cart.
func WithSession(sessions *repository.SessionRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := sessions.Get()
		if err != nil {
			resp.ServerError(c, err)
			c.Abort()
			return
		}
		c.Set(CtxLoggedIn, sess.IsLoggedIn)
		if sess.IsLoggedIn {
			c.Set(CtxUsername, sess.CurrentUser.Username)
			c.Set(CtxRole, sess.CurrentUser.Role)
			c.Set(CtxPhone, sess.CurrentUser.Phone)
		}
		c.Next()
	}
}

// AuthMiddleware requires a logged-in session and, when roles are given,
// one of those roles.
func AuthMiddleware(requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(CtxLoggedIn) {
			resp.Unauthorized(c, "login required")
			c.Abort()
			return
		}
		if len(requiredRoles) > 0 {
			role := c.GetString(CtxRole)
			allowed := false
			for _, r := range requiredRoles {
				if role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				resp.Forbidden(c, "forbidden")
				c.Abort()
				return
			}
		}
		c.Next()
	}
}
