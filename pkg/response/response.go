package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-commerce-api/pkg/apperr"
)

// APIResponse is the envelope returned by every endpoint. Success is true only
// on the normal-completion path.
type APIResponse[T any] struct {
	Status    int         `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	RequestID string      `json:"request_id"`
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      T           `json:"data,omitempty"`
	Meta      interface{} `json:"meta,omitempty"`
	Error     interface{} `json:"error,omitempty"`
}

// Success writes a success envelope with the given payload.
func Success[T any](ctx *gin.Context, status int, data T, message string, meta interface{}) APIResponse[T] {
	if status == 0 {
		status = http.StatusOK
	}
	r := APIResponse[T]{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: ctx.GetString("request_id"),
		Success:   true,
		Message:   message,
		Data:      data,
		Meta:      meta,
	}
	ctx.JSON(status, r)
	return r
}

// Error writes a failure envelope. Middleware that needs to abort should call
// ctx.Abort after this.
func Error[T any](ctx *gin.Context, status int, message string, errDetail interface{}) APIResponse[T] {
	if status == 0 {
		status = http.StatusBadRequest
	}
	r := APIResponse[T]{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: ctx.GetString("request_id"),
		Success:   false,
		Message:   message,
		Error:     errDetail,
	}
	ctx.JSON(status, r)
	return r
}

// Failure classifies err and writes the matching failure envelope. Internal
// and upstream failures are logged here, once, with full detail; the caller
// only ever sees the classified message.
func Failure(ctx *gin.Context, logger *logrus.Logger, err error) APIResponse[any] {
	kind := apperr.KindOf(err)
	if logger != nil && (kind == apperr.Internal || kind == apperr.UpstreamFailure) {
		logger.WithFields(logrus.Fields{
			"request_id": ctx.GetString("request_id"),
			"kind":       kind.String(),
			"path":       ctx.FullPath(),
		}).WithError(err).Error("request failed")
	}
	return Error[any](ctx, apperr.HTTPStatus(kind), apperr.Message(err), nil)
}
