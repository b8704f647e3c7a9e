package repo

import (
	"context"
	"testing"
	"time"

	"github.com/tbourn/companion-insights/internal/domain"
)

func TestSpamQueries(t *testing.T) {
	db := newSchemaDB(t)
	seed(t, db,
		&domain.SpamMessage{UserID: "u1", CharacterName: "Alice", Message: "buy", Reason: "ads", CreatedAt: testNow.Add(-3 * time.Hour)},
		&domain.SpamMessage{UserID: "u1", CharacterName: "Alice", Message: "buy again", Reason: "ads", CreatedAt: testNow.Add(-time.Hour)},
		&domain.SpamMessage{UserID: "u2", CharacterName: "Bea", Message: "!!!", Reason: "flood", CreatedAt: testNow.Add(-2 * time.Hour)},
	)
	ctx := context.Background()

	all, err := SpamMessages(ctx, db, "", 10)
	if err != nil {
		t.Fatalf("SpamMessages: %v", err)
	}
	if len(all) != 3 || all[0].Message != "buy again" || all[2].Message != "buy" {
		t.Fatalf("expected newest first, got %+v", all)
	}
	if !all[0].CreatedAt.Equal(testNow.Add(-time.Hour)) {
		t.Fatalf("created_at round trip: %v", all[0].CreatedAt)
	}

	mine, err := SpamMessages(ctx, db, "u2", 10)
	if err != nil || len(mine) != 1 || mine[0].Reason != "flood" {
		t.Fatalf("user filter: err=%v rows=%+v", err, mine)
	}

	limited, err := SpamMessages(ctx, db, "", 1)
	if err != nil || len(limited) != 1 {
		t.Fatalf("limit not applied: err=%v rows=%+v", err, limited)
	}

	reasons, err := SpamByReason(ctx, db)
	if err != nil {
		t.Fatalf("SpamByReason: %v", err)
	}
	want := []domain.TypeCount{{Label: "ads", Count: 2}, {Label: "flood", Count: 1}}
	if len(reasons) != 2 || reasons[0] != want[0] || reasons[1] != want[1] {
		t.Fatalf("reasons = %+v", reasons)
	}

	users, err := SpamByUser(ctx, db, 10)
	if err != nil {
		t.Fatalf("SpamByUser: %v", err)
	}
	if len(users) != 2 || users[0] != (domain.UserScore{UserID: "u1", Score: 2}) {
		t.Fatalf("users = %+v", users)
	}
}

func TestSpamQueries_Empty(t *testing.T) {
	db := newSchemaDB(t)
	rows, err := SpamMessages(context.Background(), db, "nobody", 5)
	if err != nil || len(rows) != 0 {
		t.Fatalf("expected no rows, err=%v rows=%+v", err, rows)
	}
}
