package controllers

import (
	"errors"

	"tableside/pkg/resp"
	"tableside/services"

	"github.com/gin-gonic/gin"
)

// fail maps store errors onto HTTP statuses in one place.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrStockExceeded), errors.Is(err, services.ErrInvalidTransition):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrEmptyCart), errors.Is(err, services.ErrTableRequired),
		errors.Is(err, services.ErrInvalidItem):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
