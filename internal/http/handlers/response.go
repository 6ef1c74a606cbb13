package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"cucisepatu/internal/domain"
	"cucisepatu/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	MsgEndpointNotFound = "endpoint not found"
	MsgOrderNotFound    = "order not found"
	MsgInvalidID        = "invalid id"
	MsgInternal         = "internal server error"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	Count     *int   `json:"count,omitempty"`
	Data      any    `json:"data,omitempty"`
	Error     string `json:"error,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func respondOK(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

func respondList[T any](c *gin.Context, data []T) {
	count := len(data)
	c.JSON(http.StatusOK, Envelope{Success: true, Count: &count, Data: data})
}

// RespondError sends a failure envelope with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	env := Envelope{
		Success:   false,
		Message:   message,
		RequestID: middleware.GetRequestID(c),
	}
	if err != nil {
		env.Error = err.Error()
		_ = c.Error(err)
	}
	c.JSON(status, env)
}

// RespondDomainError maps domain errors to HTTP responses. storeMsg is the
// operation specific message used for store failures.
func RespondDomainError(c *gin.Context, err error, storeMsg string) {
	var vErr domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, Envelope{
			Success:   false,
			Message:   vErr.Error(),
			RequestID: middleware.GetRequestID(c),
		})
	case domain.IsNotFound(err):
		RespondError(c, http.StatusNotFound, MsgOrderNotFound, nil)
	default:
		RespondError(c, http.StatusInternalServerError, storeMsg, err)
	}
}

// NotFound is the catch-all for unmatched routes.
func NotFound(c *gin.Context) {
	RespondError(c, http.StatusNotFound, MsgEndpointNotFound, nil)
}

// Recovery turns a panic into a 500 envelope.
func Recovery(c *gin.Context, recovered any) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, Envelope{
		Success:   false,
		Message:   MsgInternal,
		RequestID: middleware.GetRequestID(c),
	})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, MsgInvalidID, nil)
		return 0, false
	}
	return id, true
}

// readBody returns the raw request body; a missing body reads as empty.
func readBody(c *gin.Context) ([]byte, error) {
	if c.Request.Body == nil {
		return nil, nil
	}
	return io.ReadAll(c.Request.Body)
}
