package httpapi

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/companion-insights/internal/config"
	"github.com/tbourn/companion-insights/internal/repo"
)

// --- test DB helper (pure-Go sqlite, no CGO) ---
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := repo.OpenSQLite(fmt.Sprintf("file:router_%s?mode=memory&cache=shared", uuid.NewString()))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func testConfig() config.Config {
	return config.Config{
		GinMode:     gin.TestMode,
		APIBasePath: "/api/v1",
		DB:          config.DBConfig{QueryTimeout: 5 * time.Second},
		Time:        config.TimeConfig{FixedOffset: "+09:00", StoreTimezone: "UTC"},
		QuestIDs:    config.DefaultQuestIDs,
		RateRPS:     100,
		RateBurst:   10,
		CORS:        config.CORSConfig{AllowedOrigins: nil}, // allow-all branch
		Security:    config.SecurityConfig{EnableHSTS: false, HSTSMaxAge: 0},
		OTEL:        config.OTELConfig{ServiceName: "test-svc"},
	}
}

func mustRegister(t *testing.T, cfg config.Config, db *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if err := RegisterRoutes(r, db, cfg); err != nil {
		t.Fatalf("RegisterRoutes: %v", err)
	}
	return r
}

func serve(r http.Handler, method, path string, hdr map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterRoutes_CORSAllowAll_Health_Metrics_Fallbacks(t *testing.T) {
	r := mustRegister(t, testConfig(), newTestDB(t))

	// /health pings the store
	w := serve(r, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /health = %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("AllowAllOrigins expected '*', got %q", got)
	}
	if got := w.Header().Get("Cache-Control"); got != "no-store" {
		t.Fatalf("expected no-store, got %q", got)
	}

	// /metrics is wired and exposes our collectors
	w = serve(r, http.MethodGet, "/metrics", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "insights_http_requests_total") {
		t.Fatalf("GET /metrics bad: code=%d", w.Code)
	}

	// NoRoute → 404 envelope
	w = serve(r, http.MethodGet, "/nope", nil)
	if w.Code != http.StatusNotFound || !strings.Contains(w.Body.String(), `"code":"not_found"`) {
		t.Fatalf("GET /nope expected 404, got %d %s", w.Code, w.Body.String())
	}

	// NoMethod → 405 (the API is read-only)
	w = serve(r, http.MethodPost, "/api/v1/overview/stats", nil)
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("POST /overview/stats expected 405, got %d", w.Code)
	}

	// Swagger is off by default
	if w = serve(r, http.MethodGet, "/swagger/index.html", nil); w.Code != http.StatusNotFound {
		t.Fatalf("swagger should be disabled, got %d", w.Code)
	}
}

func TestRegisterRoutes_CORSWithOrigins_HeaderEcho(t *testing.T) {
	cfg := testConfig()
	cfg.APIBasePath = "/api/v2"
	cfg.CORS = config.CORSConfig{AllowedOrigins: []string{"http://example.com"}}
	r := mustRegister(t, cfg, newTestDB(t))

	w := serve(r, http.MethodGet, "/api/v2/overview/totals/users", map[string]string{"Origin": "http://example.com"})
	if w.Code != http.StatusOK {
		t.Fatalf("GET totals/users = %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://example.com" {
		t.Fatalf("expected ACAO echo, got %q", got)
	}
}

func TestRegisterRoutes_GzipCompressesReports(t *testing.T) {
	r := mustRegister(t, testConfig(), newTestDB(t))

	w := serve(r, http.MethodGet, "/api/v1/overview/levels", map[string]string{"Accept-Encoding": "gzip"})
	if w.Code != http.StatusOK {
		t.Fatalf("GET levels = %d", w.Code)
	}
	if got := w.Header().Get("Content-Encoding"); got != "gzip" {
		t.Fatalf("expected gzip encoding, got %q", got)
	}
	zr, err := gzip.NewReader(w.Body)
	if err != nil {
		t.Fatalf("gzip reader: %v", err)
	}
	body, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("read gzip: %v", err)
	}
	if !strings.Contains(string(body), `"level":"Rookie"`) {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestRegisterRoutes_RateLimitSkipsProbes(t *testing.T) {
	cfg := testConfig()
	cfg.RateRPS = 0.001
	cfg.RateBurst = 1
	r := mustRegister(t, cfg, newTestDB(t))

	key := map[string]string{"X-API-Key": "team-a"}
	if w := serve(r, http.MethodGet, "/api/v1/overview/totals/users", key); w.Code != http.StatusOK {
		t.Fatalf("first call = %d", w.Code)
	}
	if w := serve(r, http.MethodGet, "/api/v1/overview/totals/users", key); w.Code != http.StatusTooManyRequests {
		t.Fatalf("second call should be limited, got %d", w.Code)
	}
	// Another key has its own bucket
	if w := serve(r, http.MethodGet, "/api/v1/overview/totals/users", map[string]string{"X-API-Key": "team-b"}); w.Code != http.StatusOK {
		t.Fatalf("other key = %d", w.Code)
	}
	for i := 0; i < 3; i++ {
		if w := serve(r, http.MethodGet, "/health", key); w.Code != http.StatusOK {
			t.Fatalf("health %d limited: %d", i, w.Code)
		}
	}
}

func TestRegisterRoutes_HealthReportsStoreOutage(t *testing.T) {
	db := newTestDB(t)
	r := mustRegister(t, testConfig(), db)

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db.DB(): %v", err)
	}
	_ = sqlDB.Close()

	w := serve(r, http.MethodGet, "/health", nil)
	if w.Code != http.StatusServiceUnavailable || !strings.Contains(w.Body.String(), `"code":"unavailable"`) {
		t.Fatalf("expected 503, got %d %s", w.Code, w.Body.String())
	}
}

func TestRegisterRoutes_Swagger(t *testing.T) {
	cfg := testConfig()
	cfg.SwaggerEnabled = true
	r := mustRegister(t, cfg, newTestDB(t))

	w := serve(r, http.MethodGet, "/swagger/doc.json", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "/overview/stats") {
		t.Fatalf("swagger doc: %d", w.Code)
	}
}

func TestRegisterRoutes_InvalidTimeConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Time.StoreTimezone = "Nowhere/Special"
	gin.SetMode(gin.TestMode)
	if err := RegisterRoutes(gin.New(), newTestDB(t), cfg); err == nil {
		t.Fatal("expected error for unknown store timezone")
	}
}

func Test_limitBody_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// tiny cap to trigger MaxBytesReader
	r.Use(limitBody(10))
	r.POST("/echo", func(c *gin.Context) {
		_, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.String(http.StatusRequestEntityTooLarge, "too big")
			return
		}
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewBufferString("0123456789AB")) // 12 bytes
	r.ServeHTTP(w, req)
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413 from limitBody, got %d", w.Code)
	}
}

func Test_groupWithPrefix(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	// "/" and "" should mount at root
	groupWithPrefix(r, "/").GET("/one", func(c *gin.Context) { c.String(http.StatusOK, "one") })
	groupWithPrefix(r, "").GET("/two", func(c *gin.Context) { c.String(http.StatusOK, "two") })
	groupWithPrefix(r, "/api").GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	for path, want := range map[string]string{"/one": "one", "/two": "two", "/api/ping": "pong"} {
		rec := serve(r, http.MethodGet, path, nil)
		if rec.Code != http.StatusOK || rec.Body.String() != want {
			t.Fatalf("GET %s got %d %q", path, rec.Code, rec.Body.String())
		}
	}
}
