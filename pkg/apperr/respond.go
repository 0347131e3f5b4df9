package apperr

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// statusByKind is the single place error kinds map to HTTP statuses.
var statusByKind = map[Kind]int{
	KindNoToken:        http.StatusUnauthorized,
	KindBadCredentials: http.StatusUnauthorized,
	KindNoPermission:   http.StatusForbidden,
	KindNotFound:       http.StatusNotFound,
	KindNoUser:         http.StatusNotFound,
	KindValidation:     http.StatusBadRequest,
	KindDuplicateEmail: http.StatusConflict,
	KindInternal:       http.StatusInternalServerError,
}

// Respond terminates the request with the status and message for err. Every
// handler failure funnels through here; unclassified errors answer 500 with a
// generic message so no internal detail leaks.
func Respond(c *gin.Context, err error) {
	kind := KindOf(err)
	status := statusByKind[kind]

	message := "internal server error"
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Message != "" {
		message = appErr.Message
	}

	if kind == KindInternal {
		slog.Error("request failed", "method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
		message = "internal server error"
	}

	c.AbortWithStatusJSON(status, gin.H{"message": message})
}
