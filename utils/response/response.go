package response

import (
	"errors"
	"net/http"

	"pokedex/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Error sends a standardized error response
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// ValidationError sends a response for validation errors
func ValidationError(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": fields})
}

// StatusFor maps a service error kind onto an HTTP status
func StatusFor(kind services.ErrorKind) int {
	switch kind {
	case services.KindValidation, services.KindConflict, services.KindBadRequest:
		return http.StatusBadRequest
	case services.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ServiceError sends the response matching err. Errors that did not come
// from a service are logged and hidden behind a generic message.
func ServiceError(c *gin.Context, log logrus.FieldLogger, err error) {
	var serr *services.ServiceError
	if !errors.As(err, &serr) {
		log.WithError(err).WithField("path", c.Request.URL.Path).Error("unexpected error")
		Error(c, http.StatusInternalServerError, "Internal server error - Check server logs")
		return
	}
	Error(c, StatusFor(serr.Kind), serr.Message)
}
