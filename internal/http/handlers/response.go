// Package handlers provides HTTP handler implementations for the dashboard API.
//
// This file defines the response envelopes shared by all endpoints and the
// mapping from service errors to HTTP statuses.
//
// Conventions:
//   - Table panels return {"rows": [...]}; rows is never null.
//   - Headline numbers return {"value": n}.
//   - Errors return an ErrorResponse with a stable `code`. Store failures are
//     logged with the underlying error but reported to clients generically so
//     SQL and driver text never leave the process.
//
// Example error response:
//
//	HTTP/1.1 400 Bad Request
//	{
//	  "request_id": "123e4567-e89b-12d3-a456-426614174000",
//	  "code": "bad_request",
//	  "message": "days must be between 1 and 365"
//	}
package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/companion-insights/internal/http/middleware"
	"github.com/tbourn/companion-insights/internal/services"
)

// ErrorResponse is the standard error envelope returned by all endpoints.
type ErrorResponse struct {
	// Correlates server logs and client errors
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	// Stable, machine-readable code (see errors.go constants)
	Code string `json:"code" example:"bad_request"`
	// Human-readable message (safe to show to users)
	Message string `json:"message" example:"limit must be between 1 and 1000"`
}

// RowsResponse wraps a table result.
type RowsResponse[T any] struct {
	Rows []T `json:"rows"`
}

// ScalarResponse wraps a single headline number.
type ScalarResponse struct {
	Value int64 `json:"value" example:"1234"`
}

// fail aborts the request with a structured error and logs server-side errors.
//
// Server errors (>=500) are logged using the request-scoped logger from middleware.
func fail(c *gin.Context, status int, code, msg string) {
	resp := ErrorResponse{
		RequestID: c.Writer.Header().Get("X-Request-ID"),
		Code:      code,
		Message:   msg,
	}

	if status >= http.StatusInternalServerError {
		middleware.LoggerFrom(c).Error().
			Int("status", status).
			Str("code", code).
			Str("message", msg).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, resp)
}

// Fail is the exported variant of fail() for the router's fallbacks.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

// rows writes a 200 table response. A nil slice is sent as [].
func rows[T any](c *gin.Context, items []T) {
	if items == nil {
		items = []T{}
	}
	middleware.SetRowCount(c, len(items))
	c.JSON(http.StatusOK, RowsResponse[T]{Rows: items})
}

// scalar writes a 200 headline-number response.
func scalar(c *gin.Context, v int64) {
	c.JSON(http.StatusOK, ScalarResponse{Value: v})
}

// ok writes a 200 JSON response with an arbitrary body.
func ok(c *gin.Context, body any) {
	c.JSON(http.StatusOK, body)
}

// badParam reports an unparseable query or path parameter.
func badParam(c *gin.Context, name string) {
	fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid "+name+": must be an integer")
}

// serviceError maps an error returned by the query or report service.
//
//   - parameter sentinels        → 400 bad_request (message names the problem)
//   - context.DeadlineExceeded   → 504 timeout
//   - anything else              → 500 query_failed (details only in logs)
func serviceError(c *gin.Context, op string, err error) {
	msg, isParam := paramMessage(err)
	switch {
	case isParam:
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, msg)
	case errors.Is(err, context.DeadlineExceeded):
		middleware.LoggerFrom(c).Warn().Err(err).Str("op", op).Msg("query timed out")
		fail(c, http.StatusGatewayTimeout, ErrCodeTimeout, "query timed out")
	default:
		_ = c.Error(err)
		middleware.LoggerFrom(c).Error().Err(err).Str("op", op).Msg("query failed")
		fail(c, http.StatusInternalServerError, ErrCodeQueryFailed, "query failed")
	}
}

func paramMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, services.ErrInvalidDays):
		return fmt.Sprintf("days must be between 1 and %d", services.MaxDays), true
	case errors.Is(err, services.ErrInvalidLimit):
		return fmt.Sprintf("limit must be between 1 and %d", services.MaxLimit), true
	case errors.Is(err, services.ErrEmptyUserID):
		return "user id is required", true
	case errors.Is(err, services.ErrEmptyQuestID):
		return "quest id is required", true
	case errors.Is(err, services.ErrEmptyCharacter):
		return "character is required", true
	case errors.Is(err, services.ErrInvalidChapter):
		return "chapter must be a positive integer", true
	}
	return "", false
}
