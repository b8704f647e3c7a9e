package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/companion-insights/internal/config"
	"github.com/tbourn/companion-insights/internal/domain"
	"github.com/tbourn/companion-insights/internal/repo"
	"github.com/tbourn/companion-insights/internal/services"
)

// ---------- test DB + services ----------

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Unique DSN per call to avoid cross-test contamination
	dsn := fmt.Sprintf("file:handlers_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := repo.OpenSQLite(dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func seed(t *testing.T, db *gorm.DB, rows ...any) {
	t.Helper()
	for _, r := range rows {
		if err := db.Create(r).Error; err != nil {
			t.Fatalf("seed %T: %v", r, err)
		}
	}
}

func newHandlers(t *testing.T, db *gorm.DB) *Handlers {
	t.Helper()
	zones, err := services.NewZones(config.TimeConfig{FixedOffset: "+09:00", StoreTimezone: "UTC"})
	if err != nil {
		t.Fatalf("zones: %v", err)
	}
	q := services.NewQueryService(db, zones, 5*time.Second)
	q.Now = func() time.Time { return testNow }
	r := services.NewReportService(db, zones, config.DefaultQuestIDs, 5*time.Second)
	r.Now = func() time.Time { return testNow }
	return New(q, r)
}

// newEngine mounts the handlers the same way the router does, minus the
// middleware stack.
func newEngine(h *Handlers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Header("X-Request-ID", "rid-test"); c.Next() })
	h.Register(r.Group("/api/v1"))
	return r
}

func get(t *testing.T, r http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("json: %v (body=%s)", err, w.Body.String())
	}
	return out
}

// ---------- failing service fakes ----------

// failingQuery embeds the interface so only the methods under test need
// overriding; anything else panics, which is what we want in a test.
type failingQuery struct {
	QueryService
	err error
}

func (f failingQuery) TotalMessages(context.Context) (int64, error) { return 0, f.err }
func (f failingQuery) MessageRanking(context.Context, int) ([]domain.UserScore, error) {
	return nil, f.err
}

type failingReport struct {
	ReportService
	err error
}

func (f failingReport) UserSummary(context.Context, string) (*domain.UserSummary, error) {
	return nil, f.err
}

// ---------- tests ----------

func TestOverview_ScalarsAndRows(t *testing.T) {
	db := newTestDB(t)
	seed(t, db,
		&domain.Conversation{UserID: "u1", CharacterName: "Alice", MessageRole: domain.RoleUser, TokenCount: 12, CreatedAt: testNow.Add(-time.Hour)},
		&domain.Conversation{UserID: "u1", CharacterName: "Alice", MessageRole: domain.RoleAssistant, TokenCount: 30, CreatedAt: testNow.Add(-time.Hour)},
		&domain.Affinity{UserID: "u1", CharacterName: "Alice", EmotionScore: 45},
		&domain.UserCard{UserID: "u1", CardID: "S01", CharacterName: "Alice"},
	)
	r := newEngine(newHandlers(t, db))

	cases := map[string]int64{
		"/api/v1/overview/totals/messages":      2,
		"/api/v1/overview/totals/user-messages": 1,
		"/api/v1/overview/totals/affinity":      45,
		"/api/v1/overview/totals/tokens":        42,
		"/api/v1/overview/totals/users":         1,
	}
	for path, want := range cases {
		w := get(t, r, path)
		if w.Code != http.StatusOK {
			t.Fatalf("%s -> %d", path, w.Code)
		}
		if got := decode[ScalarResponse](t, w); got.Value != want {
			t.Fatalf("%s = %d; want %d", path, got.Value, want)
		}
	}

	w := get(t, r, "/api/v1/overview/levels")
	levels := decode[RowsResponse[domain.LevelStat]](t, w)
	if len(levels.Rows) != 5 || levels.Rows[2].Level != domain.LevelBronze || levels.Rows[2].Count != 1 {
		t.Fatalf("unexpected levels: %+v", levels.Rows)
	}

	w = get(t, r, "/api/v1/overview/stats")
	stats := decode[domain.DashboardStats](t, w)
	if stats.TotalMessages != 2 || len(stats.CardTiers) != 1 || stats.CardTiers[0].Tier != "S" {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	w = get(t, r, "/api/v1/overview/daily-messages?days=3")
	daily := decode[RowsResponse[domain.DayCount]](t, w)
	if len(daily.Rows) != 1 || daily.Rows[0].Date != "2026-03-10" {
		t.Fatalf("unexpected daily rows: %+v", daily.Rows)
	}
}

func TestEmptyTablesReturnEmptyRows(t *testing.T) {
	r := newEngine(newHandlers(t, newTestDB(t)))
	for _, path := range []string{
		"/api/v1/rankings/messages",
		"/api/v1/keywords/top",
		"/api/v1/spam/reasons",
		"/api/v1/gifts",
		"/api/v1/cards/tiers",
	} {
		w := get(t, r, path)
		if w.Code != http.StatusOK {
			t.Fatalf("%s -> %d", path, w.Code)
		}
		if body := w.Body.String(); body != `{"rows":[]}` {
			t.Fatalf("%s body = %s; want empty rows", path, body)
		}
	}
}

func TestBadParameters(t *testing.T) {
	r := newEngine(newHandlers(t, newTestDB(t)))
	cases := []struct {
		path string
		msg  string
	}{
		{"/api/v1/rankings/messages?limit=abc", "invalid limit: must be an integer"},
		{"/api/v1/rankings/messages?limit=0", "limit must be between 1 and 1000"},
		{"/api/v1/overview/daily-messages?days=366", "days must be between 1 and 365"},
		{"/api/v1/ops/retention?days=x", "invalid days: must be an integer"},
		{"/api/v1/story/choices?character=Alice&chapter=0", "chapter must be a positive integer"},
		{"/api/v1/story/choices?chapter=1", "character is required"},
		{"/api/v1/rankings/characters/%20", "character is required"},
		{"/api/v1/users/%20/summary", "user id is required"},
	}
	for _, tc := range cases {
		w := get(t, r, tc.path)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s -> %d; want 400", tc.path, w.Code)
		}
		er := decode[ErrorResponse](t, w)
		if er.Code != ErrCodeBadRequest || er.Message != tc.msg || er.RequestID != "rid-test" {
			t.Fatalf("%s: unexpected envelope %+v", tc.path, er)
		}
	}
}

func TestRankingsAndQuests(t *testing.T) {
	db := newTestDB(t)
	today := testNow.Add(-2 * time.Hour)
	seed(t, db,
		&domain.Affinity{UserID: "u1", CharacterName: "Alice", EmotionScore: 10},
		&domain.Affinity{UserID: "u2", CharacterName: "Alice", EmotionScore: 20},
		&domain.Conversation{UserID: "u1", CharacterName: "Alice", MessageRole: domain.RoleUser, CreatedAt: today},
		&domain.QuestClaim{UserID: "u1", QuestID: "daily_login", ClaimedAt: today},
	)
	r := newEngine(newHandlers(t, db))

	w := get(t, r, "/api/v1/rankings/affinity?limit=1")
	top := decode[RowsResponse[domain.UserScore]](t, w)
	if len(top.Rows) != 1 || top.Rows[0].UserID != "u2" || top.Rows[0].Score != 20 {
		t.Fatalf("unexpected ranking: %+v", top.Rows)
	}

	w = get(t, r, "/api/v1/rankings/characters/Alice")
	full := decode[RowsResponse[domain.RankingEntry]](t, w)
	if len(full.Rows) != 2 {
		t.Fatalf("unexpected character ranking: %+v", full.Rows)
	}

	w = get(t, r, "/api/v1/quests/daily_login/completion")
	qc := decode[domain.QuestCompletion](t, w)
	if qc.Completed != 1 || qc.Total != 2 || qc.Percent != 50 {
		t.Fatalf("unexpected completion: %+v", qc)
	}

	w = get(t, r, "/api/v1/quests/completion")
	all := decode[RowsResponse[domain.QuestCompletion]](t, w)
	if len(all.Rows) != len(config.DefaultQuestIDs) || all.Rows[0].QuestID != config.DefaultQuestIDs[0] {
		t.Fatalf("unexpected quest panel: %+v", all.Rows)
	}
}

func TestOps_ActiveUsersRelativeAndRetention(t *testing.T) {
	db := newTestDB(t)
	seed(t, db,
		&domain.Conversation{UserID: "u1", CharacterName: "Alice", MessageRole: domain.RoleUser, CreatedAt: testNow.Add(-time.Hour)},
	)
	r := newEngine(newHandlers(t, db))

	w := get(t, r, "/api/v1/ops/active-users?days=3&relative=true")
	trend := decode[RowsResponse[domain.DayCount]](t, w)
	if len(trend.Rows) != 3 || trend.Rows[0].Day != 1 || trend.Rows[2].Day != 3 || trend.Rows[2].Count != 1 {
		t.Fatalf("unexpected relative trend: %+v", trend.Rows)
	}

	w = get(t, r, "/api/v1/ops/retention/trend")
	ret := decode[RowsResponse[domain.Retention]](t, w)
	if len(ret.Rows) != 3 || ret.Rows[0].Days != 1 || ret.Rows[2].Days != 30 {
		t.Fatalf("unexpected retention trend: %+v", ret.Rows)
	}
}

func TestUserSummary(t *testing.T) {
	db := newTestDB(t)
	seed(t, db,
		&domain.Affinity{UserID: "u1", CharacterName: "Alice", EmotionScore: 120},
		&domain.Conversation{UserID: "u1", CharacterName: "Alice", MessageRole: domain.RoleUser, CreatedAt: testNow.Add(-time.Hour)},
	)
	r := newEngine(newHandlers(t, db))

	w := get(t, r, "/api/v1/users/u1/summary")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	sum := decode[domain.UserSummary](t, w)
	if sum.UserID != "u1" || sum.Level != domain.LevelGold || sum.Streak.Found {
		t.Fatalf("unexpected summary: %+v", sum)
	}
}

func TestServiceErrorMapping(t *testing.T) {
	db := newTestDB(t)
	live := newHandlers(t, db)

	t.Run("store failure is 500 without details", func(t *testing.T) {
		h := New(failingQuery{QueryService: live.q, err: errors.New(`no such table: "conversations"`)}, live.r)
		w := get(t, newEngine(h), "/api/v1/overview/totals/messages")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status=%d", w.Code)
		}
		er := decode[ErrorResponse](t, w)
		if er.Code != ErrCodeQueryFailed || er.Message != "query failed" {
			t.Fatalf("unexpected envelope: %+v", er)
		}
	})

	t.Run("deadline is 504", func(t *testing.T) {
		h := New(failingQuery{QueryService: live.q, err: fmt.Errorf("message_ranking: %w", context.DeadlineExceeded)}, live.r)
		w := get(t, newEngine(h), "/api/v1/rankings/messages")
		if w.Code != http.StatusGatewayTimeout {
			t.Fatalf("status=%d", w.Code)
		}
		if er := decode[ErrorResponse](t, w); er.Code != ErrCodeTimeout {
			t.Fatalf("unexpected envelope: %+v", er)
		}
	})

	t.Run("wrapped sentinel from a bundle is 400", func(t *testing.T) {
		h := New(live.q, failingReport{ReportService: live.r, err: fmt.Errorf("wrapped: %w", services.ErrEmptyUserID)})
		w := get(t, newEngine(h), "/api/v1/users/x/summary")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status=%d", w.Code)
		}
	})

	t.Run("tokens never fail", func(t *testing.T) {
		if err := db.Migrator().DropTable(&domain.Conversation{}); err != nil {
			t.Fatalf("drop: %v", err)
		}
		w := get(t, newEngine(live), "/api/v1/overview/totals/tokens")
		if w.Code != http.StatusOK || decode[ScalarResponse](t, w).Value != 0 {
			t.Fatalf("tokens: %d %s", w.Code, w.Body.String())
		}
	})
}
