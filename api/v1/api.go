package v1

import (
	"errors"
	"net/http"
	"strconv"

	"blogr/service"

	"github.com/gin-gonic/gin"
)

// parseID reads a numeric path parameter. A malformed id can never
// match a row, so it is reported the same way as a missing one.
func parseID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no such " + name})
		return 0, false
	}
	return id, true
}

// abortServiceError maps service sentinel errors onto HTTP statuses.
// Anything unrecognized is a store failure and fatal for the request.
func abortServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyTitle) || errors.Is(err, service.ErrEmptyComment):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, service.ErrPostNotFound) ||
		errors.Is(err, service.ErrCommentNotFound) ||
		errors.Is(err, service.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrBadUpload):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
