package repo

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"gorm.io/gorm"

	"github.com/tbourn/companion-insights/internal/domain"
)

// testNow is the fixed clock used by every repo test: 21:00 on 2026-03-10 in
// UTC+9, 12:00 the same day in UTC.
var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

var (
	kst = time.FixedZone("UTC+9", 9*3600)
	utc = time.UTC
)

func newTestDB(t *testing.T, migrate ...any) *gorm.DB {
	t.Helper()
	// Unique DB per test to avoid schema leaking across tests.
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := OpenSQLite(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if len(migrate) > 0 {
		if err := db.AutoMigrate(migrate...); err != nil {
			t.Fatalf("automigrate: %v", err)
		}
	}
	return db
}

// newSchemaDB returns a test database with every companion table.
func newSchemaDB(t *testing.T) *gorm.DB {
	t.Helper()
	return newTestDB(t, domain.All()...)
}

func seed(t *testing.T, db *gorm.DB, rows ...any) {
	t.Helper()
	for _, r := range rows {
		if err := db.Create(r).Error; err != nil {
			t.Fatalf("seed %T: %v", r, err)
		}
	}
}

// msg builds a user-role conversation row.
func msg(user, character string, at time.Time) *domain.Conversation {
	return &domain.Conversation{UserID: user, CharacterName: character, MessageRole: domain.RoleUser, Content: "hi", TokenCount: 10, CreatedAt: at}
}

func TestScalar_CoalescesNull(t *testing.T) {
	db := newSchemaDB(t)
	got, err := scalar[int64](context.Background(), db, "test_null",
		`SELECT SUM(emotion_score) FROM affinity`)
	if err != nil {
		t.Fatalf("scalar: %v", err)
	}
	if got != 0 {
		t.Fatalf("expected NULL to coalesce to 0, got %d", got)
	}
}

func TestSelectRows_EmptyIsNotNil(t *testing.T) {
	db := newSchemaDB(t)
	rows, err := selectRows[domain.UserScore](context.Background(), db, "test_empty",
		`SELECT user_id, COUNT(*) AS score FROM user_cards GROUP BY user_id`)
	if err != nil {
		t.Fatalf("selectRows: %v", err)
	}
	if rows == nil || len(rows) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", rows)
	}
}

func TestObserve_CountsAndWrapsErrors(t *testing.T) {
	db := newTestDB(t /* no migrations */)
	before := testutil.ToFloat64(queryErrs.WithLabelValues("total_users"))

	_, err := TotalUsers(context.Background(), db)
	if err == nil {
		t.Fatal("expected error due to missing affinity table")
	}
	if !strings.HasPrefix(err.Error(), "total_users: ") {
		t.Fatalf("expected error wrapped with op name, got %v", err)
	}
	if got := testutil.ToFloat64(queryErrs.WithLabelValues("total_users")); got != before+1 {
		t.Fatalf("expected error counter %v, got %v", before+1, got)
	}
}

func TestSelectRows_ReleasesConnection(t *testing.T) {
	db := newSchemaDB(t)
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	// With a single connection, a leaked one would block the next call.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	for i := 0; i < 5; i++ {
		if _, err := TotalMessages(ctx, db); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
		if _, err := scalar[int64](ctx, db, "broken", `SELECT nope FROM missing`); err == nil {
			t.Fatalf("call %d: expected error", i)
		}
		if _, err := CharacterMessageCounts(ctx, db); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}
	if inUse := sqlDB.Stats().InUse; inUse != 0 {
		t.Fatalf("expected no connections in use, got %d", inUse)
	}
}
