package controllers

import (
	"errors"

	"github.com/adeanumainah/coffe-corner/pkg/resp"
	"github.com/adeanumainah/coffe-corner/services"

	"github.com/gin-gonic/gin"
)

// fail maps service error kinds onto HTTP statuses. Everything the
// services return is recoverable and user-visible.
func fail(c *gin.Context, err error) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		resp.BadRequest(c, ve.Error())
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrDuplicateUsername),
		errors.Is(err, services.ErrDuplicateEmail),
		errors.Is(err, services.ErrIneligible),
		errors.Is(err, services.ErrInvalidTransition):
		resp.Conflict(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
