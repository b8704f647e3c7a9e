package repo

import (
	"context"
	"testing"
	"time"

	"github.com/tbourn/companion-insights/internal/domain"
)

func TestTotalRankingFull_UnionCoversBothSides(t *testing.T) {
	db := newSchemaDB(t)
	at := testNow.Add(-time.Hour)
	seed(t, db,
		// u1: affinity only
		&domain.Affinity{UserID: "u1", CharacterName: "Alice", EmotionScore: 30},
		// u2: messages only
		msg("u2", "Alice", at), msg("u2", "Bea", at),
		// u3: both, summed over characters
		&domain.Affinity{UserID: "u3", CharacterName: "Alice", EmotionScore: 10},
		&domain.Affinity{UserID: "u3", CharacterName: "Bea", EmotionScore: 20},
		msg("u3", "Alice", at),
		// assistant rows never count
		&domain.Conversation{UserID: "u4", CharacterName: "Alice", MessageRole: domain.RoleAssistant, CreatedAt: at},
	)

	for run := 0; run < 2; run++ {
		got, err := TotalRankingFull(context.Background(), db)
		if err != nil {
			t.Fatalf("TotalRankingFull: %v", err)
		}
		// u3 ties u1 on affinity and wins on message count.
		want := []domain.RankingEntry{
			{UserID: "u3", TotalAffinity: 30, MessageCount: 1},
			{UserID: "u1", TotalAffinity: 30, MessageCount: 0},
			{UserID: "u2", TotalAffinity: 0, MessageCount: 2},
		}
		if len(got) != len(want) {
			t.Fatalf("run %d: want %+v, got %+v", run, want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("run %d row %d: want %+v, got %+v", run, i, want[i], got[i])
			}
		}
	}
}

func TestCharacterRankingFull_LeftJoinsMessages(t *testing.T) {
	db := newSchemaDB(t)
	at := testNow.Add(-time.Hour)
	seed(t, db,
		&domain.Affinity{UserID: "u1", CharacterName: "Alice", EmotionScore: 10},
		&domain.Affinity{UserID: "u2", CharacterName: "Alice", EmotionScore: 10},
		&domain.Affinity{UserID: "u3", CharacterName: "Alice", EmotionScore: 50},
		&domain.Affinity{UserID: "u1", CharacterName: "Bea", EmotionScore: 99},
		msg("u2", "Alice", at), msg("u2", "Alice", at),
		msg("u1", "Bea", at),
	)

	got, err := CharacterRankingFull(context.Background(), db, "Alice")
	if err != nil {
		t.Fatalf("CharacterRankingFull: %v", err)
	}
	want := []domain.RankingEntry{
		{UserID: "u3", TotalAffinity: 50, MessageCount: 0},
		{UserID: "u2", TotalAffinity: 10, MessageCount: 2},
		{UserID: "u1", TotalAffinity: 10, MessageCount: 0},
	}
	if len(got) != len(want) {
		t.Fatalf("want %+v, got %+v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: want %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestTopNRankings(t *testing.T) {
	db := newSchemaDB(t)
	at := testNow.Add(-time.Hour)
	seed(t, db,
		&domain.Affinity{UserID: "u1", CharacterName: "Alice", EmotionScore: 10},
		&domain.Affinity{UserID: "u1", CharacterName: "Bea", EmotionScore: 40},
		&domain.Affinity{UserID: "u2", CharacterName: "Alice", EmotionScore: 20},
		msg("u2", "Alice", at), msg("u2", "Alice", at), msg("u1", "Alice", at),
		&domain.UserCard{UserID: "u3", CardID: "S1", CharacterName: "Alice"},
		&domain.UserCard{UserID: "u3", CardID: "A1", CharacterName: "Alice"},
		&domain.UserCard{UserID: "u1", CardID: "A2", CharacterName: "Alice"},
		&domain.LoginStreak{UserID: "u1", CurrentStreak: 3, LastLoginDate: at},
		&domain.LoginStreak{UserID: "u2", CurrentStreak: 9, LastLoginDate: at},
	)
	ctx := context.Background()

	check := func(name string, got []domain.UserScore, err error, want ...domain.UserScore) {
		t.Helper()
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if len(got) != len(want) {
			t.Fatalf("%s: want %+v, got %+v", name, want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("%s row %d: want %+v, got %+v", name, i, want[i], got[i])
			}
		}
	}

	got, err := AffinityRanking(ctx, db, "", 10)
	check("affinity(all)", got, err, domain.UserScore{UserID: "u1", Score: 50}, domain.UserScore{UserID: "u2", Score: 20})

	got, err = AffinityRanking(ctx, db, "Alice", 1)
	check("affinity(Alice)", got, err, domain.UserScore{UserID: "u2", Score: 20})

	got, err = MessageRanking(ctx, db, 10)
	check("messages", got, err, domain.UserScore{UserID: "u2", Score: 2}, domain.UserScore{UserID: "u1", Score: 1})

	got, err = CardRanking(ctx, db, 1)
	check("cards", got, err, domain.UserScore{UserID: "u3", Score: 2})

	got, err = StreakRanking(ctx, db, 10)
	check("streaks", got, err, domain.UserScore{UserID: "u2", Score: 9}, domain.UserScore{UserID: "u1", Score: 3})
}

func TestDailyAffinityGain_FixedZoneDay(t *testing.T) {
	db := newSchemaDB(t)
	seed(t, db,
		// 2026-03-10 01:00 in UTC+9: today
		&domain.AffinityEvent{UserID: "u1", CharacterName: "Alice", ScoreDelta: 3, CreatedAt: time.Date(2026, 3, 9, 16, 0, 0, 0, time.UTC)},
		&domain.AffinityEvent{UserID: "u1", CharacterName: "Alice", ScoreDelta: 2, CreatedAt: time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC)},
		&domain.AffinityEvent{UserID: "u2", CharacterName: "Bea", ScoreDelta: 9, CreatedAt: time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC)},
		// 2026-03-09 23:00 in UTC+9: yesterday
		&domain.AffinityEvent{UserID: "u1", CharacterName: "Alice", ScoreDelta: 100, CreatedAt: time.Date(2026, 3, 9, 14, 0, 0, 0, time.UTC)},
	)
	ctx := context.Background()

	got, err := DailyAffinityGain(ctx, db, testNow, kst, "")
	if err != nil {
		t.Fatalf("DailyAffinityGain: %v", err)
	}
	want := []domain.AffinityGain{
		{UserID: "u2", CharacterName: "Bea", Gain: 9},
		{UserID: "u1", CharacterName: "Alice", Gain: 5},
	}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("want %+v, got %+v", want, got)
	}

	got, err = DailyAffinityGain(ctx, db, testNow, kst, "Alice")
	if err != nil {
		t.Fatalf("DailyAffinityGain(Alice): %v", err)
	}
	if len(got) != 1 || got[0].Gain != 5 {
		t.Fatalf("filtered: want single gain 5, got %+v", got)
	}
}
