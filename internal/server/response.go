package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/todo-api/internal/apperrors"
)

// RespondWithError inspects err: if it is an *apperrors.AppError the status
// and body are derived from it; anything else becomes a generic 500. Nothing
// is silently swallowed — every failure surfaces as a structured JSON error.
func RespondWithError(c *gin.Context, err error) {
	if appErr, ok := apperrors.AsAppError(err); ok {
		c.JSON(appErr.HTTPStatus, appErr.ToResponse())
		return
	}
	c.JSON(http.StatusInternalServerError, apperrors.Internal(err).ToResponse())
}

// RespondMessage sends a `{"message": ...}` acknowledgment with the given
// status.
func RespondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}
