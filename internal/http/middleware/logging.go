// Package middleware holds the Gin middleware of the insights API: request
// correlation, access logging, panic recovery, Prometheus metrics, rate
// limiting and response headers.
//
// Recommended order: RequestID, then Logger or RedactingLogger, then
// Recovery, so that panics are logged with the correlation ID. Handlers call
// SetRowCount so access logs and metrics know how many rows a report served.
package middleware

import (
	"net/http"
	"runtime/debug"
	"time"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	requestIDKey    = "requestID"
	loggerKey       = "logger"
	rowsKey         = "report.rows"
	requestIDHeader = "X-Request-ID"

	maxQueryLogLength  = 2048
	maxRequestIDLength = 128
)

// RequestID reuses a well-formed incoming X-Request-ID or generates a UUIDv4,
// stores it in the context and echoes it on the response. Incoming ids that
// are too long or contain spaces or control characters are replaced, since
// they end up verbatim in logs and error bodies.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(requestIDHeader)
		if !validRequestID(rid) {
			rid = uuid.NewString()
		}
		c.Set(requestIDKey, rid)
		c.Writer.Header().Set(requestIDHeader, rid)
		c.Next()
	}
}

func validRequestID(s string) bool {
	if s == "" || len(s) > maxRequestIDLength {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsPrint(r) || r == ' ' {
			return false
		}
	}
	return true
}

// SetRowCount records how many rows a report handler served.
func SetRowCount(c *gin.Context, n int) { c.Set(rowsKey, n) }

// RowCount returns the value recorded by SetRowCount, if any.
func RowCount(c *gin.Context) (int, bool) {
	v, ok := c.Get(rowsKey)
	if !ok {
		return 0, false
	}
	n, ok := v.(int)
	return n, ok
}

// route is the registered route pattern, or the raw path when nothing matched.
func route(c *gin.Context) string {
	if p := c.FullPath(); p != "" {
		return p
	}
	return c.Request.URL.Path
}

// scopedLogger builds the request-scoped logger shared by both access
// loggers and attaches it to the context for LoggerFrom.
func scopedLogger(c *gin.Context, extra func(zerolog.Context) zerolog.Context) *zerolog.Logger {
	rid, _ := c.Get(requestIDKey)
	zc := log.With().
		Str("request_id", asString(rid)).
		Str("method", c.Request.Method).
		Str("path", route(c))
	if extra != nil {
		zc = extra(zc)
	}
	l := zc.Logger()
	c.Set(loggerKey, &l)
	return &l
}

// accessEvent picks the level from the outcome (gin errors or 5xx: error,
// 4xx: warn, else info) and adds the response fields.
func accessEvent(c *gin.Context, l *zerolog.Logger, start time.Time) *zerolog.Event {
	status := c.Writer.Status()
	var ev *zerolog.Event
	switch {
	case len(c.Errors) > 0:
		ev = l.Error().Str("errors", c.Errors.String())
	case status >= 500:
		ev = l.Error()
	case status >= 400:
		ev = l.Warn()
	default:
		ev = l.Info()
	}
	ev = ev.Int("status", status).
		Int("bytes_out", c.Writer.Size()).
		Dur("latency", time.Since(start))
	if n, ok := RowCount(c); ok {
		ev = ev.Int("rows", n)
	}
	return ev
}

// Logger writes a structured access log per request with the raw query
// string. Use it in debug mode only; production uses RedactingLogger.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		l := scopedLogger(c, func(zc zerolog.Context) zerolog.Context {
			return zc.
				Str("remote_ip", c.ClientIP()).
				Str("user_agent", c.Request.UserAgent()).
				Str("query", truncate(c.Request.URL.RawQuery, maxQueryLogLength))
		})

		c.Next()

		accessEvent(c, l, start).Msg("request")
	}
}

// Recovery turns a panic into the standard JSON 500 envelope, unless the
// response was already started, and logs it with the stack.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			rid, _ := c.Get(requestIDKey)
			LoggerFrom(c).Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			if c.Writer.Written() {
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
			c.Header(requestIDHeader, asString(rid))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"request_id": asString(rid),
				"code":       "internal_error",
				"message":    "internal server error",
			})
		}()
		c.Next()
	}
}

// LoggerFrom returns the request-scoped logger, or the global one when no
// access logger ran. Never nil.
func LoggerFrom(c *gin.Context) *zerolog.Logger {
	if v, ok := c.Get(loggerKey); ok {
		if lg, ok := v.(*zerolog.Logger); ok {
			return lg
		}
	}
	l := log.With().Logger()
	return &l
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

// truncate caps s at max bytes. A max <= 0 disables truncation.
func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
