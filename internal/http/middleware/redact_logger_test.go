package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRedactingLogger_ScrubsQueryAndHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := captureLogger(t)

	r := gin.New()
	r.Use(RequestID(), RedactingLogger(RedactOptions{MaskHeaders: []string{"X-API-Key"}}))
	r.GET("/users/:id/summary", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	q := "email=a.b+tag@example.com&phone=+1-555-123-4567&id=123e4567-e89b-12d3-a456-426614174000"
	get(r, "/users/123/summary?"+q, map[string]string{
		requestIDHeader: "rid-resp",
		"Authorization": "Bearer secret",
		"Cookie":        "sid=topsecret",
		"X-Api-Key":     "team-a",
		"X-Custom":      "email a@b.com id=123e4567-e89b-12d3-a456-426614174000 phone 555-123-4567",
	})

	lines := logLines(t, buf)
	if len(lines) != 1 {
		t.Fatalf("expected one access line, got %d", len(lines))
	}
	l := lines[0]
	if l["level"] != "info" || l["path"] != "/users/:id/summary" || l["request_id"] != "rid-resp" {
		t.Fatalf("unexpected access line: %v", l)
	}
	query := asString(l["query"])
	for _, marker := range []string{"[REDACTED:email]", "[REDACTED:phone]", "[REDACTED:id]"} {
		if !strings.Contains(query, marker) {
			t.Fatalf("query missing %s: %q", marker, query)
		}
	}
	headers, _ := l["headers"].(map[string]any)
	for _, h := range []string{"Authorization", "Cookie", "X-Api-Key"} {
		if headers[h] != "[REDACTED]" {
			t.Fatalf("%s must be masked, got %v", h, headers[h])
		}
	}
	if got := headers["X-Custom"]; got != "email [REDACTED:email] id=[REDACTED:id] phone [REDACTED:phone]" {
		t.Fatalf("X-Custom not pattern-redacted: %v", got)
	}
}

func TestRedactingLogger_Levels(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := captureLogger(t)

	r := gin.New()
	r.Use(RequestID(), RedactingLogger(RedactOptions{}))
	r.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	r.GET("/down", func(c *gin.Context) { c.Status(http.StatusServiceUnavailable) })

	get(r, "/bad", nil)
	get(r, "/down", nil)

	lines := logLines(t, buf)
	if len(lines) != 2 || lines[0]["level"] != "warn" || lines[1]["level"] != "error" {
		t.Fatalf("unexpected levels: %v", lines)
	}
	if lines[0]["request_id"] == "" || lines[0]["request_id"] == nil {
		t.Fatalf("generated request id missing: %v", lines[0])
	}
}

func TestRedactingLogger_MasksQueryParamsAndAttachesScopedLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := captureLogger(t)

	r := gin.New()
	r.Use(RequestID())
	r.Use(RedactingLogger(RedactOptions{MaskQueryParams: []string{"user_id"}}))
	r.GET("/api/v1/keywords/memories", func(c *gin.Context) {
		LoggerFrom(c).Warn().Str("op", "memories").Msg("scoped")
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/keywords/memories?user_id=player-42&limit=5", nil)
	req.Header.Set("X-Request-ID", "rid-q")
	r.ServeHTTP(httptest.NewRecorder(), req)

	logs := buf.String()
	if strings.Contains(logs, "player-42") {
		t.Fatalf("user_id value leaked into logs: %s", logs)
	}
	if !strings.Contains(logs, `limit=5`) || !strings.Contains(logs, `user_id=[REDACTED]`) {
		t.Fatalf("expected masked query, got: %s", logs)
	}
	if !strings.Contains(logs, `"message":"scoped"`) || !strings.Contains(logs, `"request_id":"rid-q"`) {
		t.Fatalf("expected handler log with request id, got: %s", logs)
	}
}

func Test_maskQuery(t *testing.T) {
	params := map[string]struct{}{"user_id": {}}
	if got := maskQuery("limit=5", params); got != "limit=5" {
		t.Fatalf("untouched query rewritten: %q", got)
	}
	if got := maskQuery("%zz", params); got != "%zz" {
		t.Fatalf("bad query should pass through: %q", got)
	}
	if got := maskQuery("user_id=a&user_id=b", params); got != "user_id=[REDACTED]&user_id=[REDACTED]" {
		t.Fatalf("multi-valued param: %q", got)
	}
	if got := maskQuery("user_id=a", nil); got != "user_id=a" {
		t.Fatalf("no params configured: %q", got)
	}
}
