package utils

import (
	"github.com/adeanumainah/coffe-corner/middlewares"
	"github.com/adeanumainah/coffe-corner/storage"

	"github.com/gin-gonic/gin"
)

// CurrentUsername returns the logged-in username, or the guest identity
// for anonymous requests.
func CurrentUsername(c *gin.Context) string {
	if name := c.GetString(middlewares.CtxUsername); name != "" {
		return name
	}
	return storage.GuestUser
}

func CurrentPhone(c *gin.Context) string {
	return c.GetString(middlewares.CtxPhone)
}

func CurrentRole(c *gin.Context) string {
	return c.GetString(middlewares.CtxRole)
}
