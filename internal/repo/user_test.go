package repo

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/tbourn/companion-insights/internal/domain"
)

func TestUserLookups(t *testing.T) {
	db := newSchemaDB(t)
	at := testNow.Add(-time.Hour)
	last := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	seed(t, db,
		msg("u1", "Alice", at), msg("u1", "Alice", at), msg("u1", "Bea", at),
		msg("u2", "Alice", at),
		&domain.Affinity{UserID: "u1", CharacterName: "Alice", EmotionScore: 12, DailyMessageCount: 2},
		&domain.Affinity{UserID: "u1", CharacterName: "Bea", EmotionScore: 30, DailyMessageCount: 1},
		&domain.UserCard{UserID: "u1", CardID: "S100", CharacterName: "Bea"},
		&domain.UserCard{UserID: "u1", CardID: "a200", CharacterName: "Alice"},
		&domain.LoginStreak{UserID: "u1", CurrentStreak: 4, LastLoginDate: last},
		&domain.UserGift{UserID: "u1", GiftID: "rose", Quantity: 1},
		&domain.UserGift{UserID: "u1", GiftID: "rose", Quantity: 2},
		&domain.UserKeyword{UserID: "u1", CharacterName: "Alice", KeywordType: "food", KeywordValue: "ramen"},
		&domain.UserNickname{UserID: "u1", CharacterName: "Alice", Nickname: "Captain"},
		&domain.StoryProgress{UserID: "u1", CharacterName: "Alice", ChapterNumber: 1, CompletedAt: at},
	)
	ctx := context.Background()

	counts, err := UserMessageCounts(ctx, db, "u1")
	if err != nil || len(counts) != 2 || counts[0] != (domain.CharacterCount{CharacterName: "Alice", Count: 2}) {
		t.Fatalf("UserMessageCounts: err=%v rows=%+v", err, counts)
	}

	aff, err := UserAffinity(ctx, db, "u1")
	if err != nil || len(aff) != 2 || aff[0].CharacterName != "Bea" || aff[0].EmotionScore != 30 {
		t.Fatalf("UserAffinity: err=%v rows=%+v", err, aff)
	}

	if total, err := UserTotalAffinity(ctx, db, "u1"); err != nil || total != 42 {
		t.Fatalf("UserTotalAffinity: err=%v total=%d", err, total)
	}
	if total, err := UserTotalAffinity(ctx, db, "nobody"); err != nil || total != 0 {
		t.Fatalf("UserTotalAffinity(nobody): err=%v total=%d", err, total)
	}

	if n, err := UserCardCount(ctx, db, "u1"); err != nil || n != 2 {
		t.Fatalf("UserCardCount: err=%v n=%d", err, n)
	}

	cards, err := UserCards(ctx, db, "u1")
	if err != nil || len(cards) != 2 {
		t.Fatalf("UserCards: err=%v rows=%+v", err, cards)
	}
	if cards[0] != (domain.UserCardRow{CardID: "a200", CharacterName: "Alice", Tier: "A"}) {
		t.Fatalf("UserCards[0]: %+v", cards[0])
	}

	streak, err := UserStreak(ctx, db, "u1")
	if err != nil || !streak.Found || streak.CurrentStreak != 4 || !streak.LastLoginDate.Equal(last) {
		t.Fatalf("UserStreak: err=%v streak=%+v", err, streak)
	}
	none, err := UserStreak(ctx, db, "nobody")
	if err != nil || none.Found {
		t.Fatalf("UserStreak(nobody): err=%v streak=%+v", err, none)
	}

	gifts, err := UserGifts(ctx, db, "u1")
	if err != nil || len(gifts) != 1 || gifts[0].Quantity != 3 {
		t.Fatalf("UserGifts: err=%v rows=%+v", err, gifts)
	}

	kw, err := UserKeywords(ctx, db, "u1")
	if err != nil || len(kw) != 1 || kw[0].KeywordValue != "ramen" {
		t.Fatalf("UserKeywords: err=%v rows=%+v", err, kw)
	}

	nicks, err := UserNicknames(ctx, db, "u1")
	if err != nil || len(nicks) != 1 || nicks[0].Nickname != "Captain" {
		t.Fatalf("UserNicknames: err=%v rows=%+v", err, nicks)
	}

	story, err := UserStoryProgress(ctx, db, "u1")
	if err != nil || len(story) != 1 || story[0].ChapterNumber != 1 {
		t.Fatalf("UserStoryProgress: err=%v rows=%+v", err, story)
	}
}

func TestUserEpisodes_MostRecentTen(t *testing.T) {
	db := newSchemaDB(t)
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		seed(t, db, &domain.Episode{
			UserID:    "u1",
			Character: "Alice",
			Summary:   fmt.Sprintf("ep-%02d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}
	seed(t, db, &domain.Episode{UserID: "u2", Character: "Alice", Summary: "other", CreatedAt: base.Add(48 * time.Hour)})

	got, err := UserEpisodes(context.Background(), db, "u1")
	if err != nil {
		t.Fatalf("UserEpisodes: %v", err)
	}
	if len(got) != RecentEpisodeLimit {
		t.Fatalf("expected %d episodes, got %d", RecentEpisodeLimit, len(got))
	}
	if got[0].Summary != "ep-11" || got[9].Summary != "ep-02" {
		t.Fatalf("expected newest first, got first=%q last=%q", got[0].Summary, got[9].Summary)
	}
	if got[0].Character != "Alice" {
		t.Fatalf("expected quoted character column to scan, got %+v", got[0])
	}
}

func TestUserWeekWindow_InclusiveLowerBound(t *testing.T) {
	db := newSchemaDB(t)
	start := WeekStart(testNow, utc) // 2026-03-03 00:00 UTC
	seed(t, db,
		msg("u1", "Alice", start),
		msg("u1", "Alice", start.Add(-time.Second)),
		msg("u1", "Bea", time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)),
		msg("u1", "Bea", time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)),
	)
	ctx := context.Background()

	week, err := UserWeekMessages(ctx, db, testNow, utc, "u1")
	if err != nil {
		t.Fatalf("UserWeekMessages: %v", err)
	}
	want := []domain.CharacterCount{{CharacterName: "Bea", Count: 2}, {CharacterName: "Alice", Count: 1}}
	if len(week) != 2 || week[0] != want[0] || week[1] != want[1] {
		t.Fatalf("want %+v, got %+v", want, week)
	}

	daily, err := UserWeekDaily(ctx, db, testNow, utc, "u1")
	if err != nil {
		t.Fatalf("UserWeekDaily: %v", err)
	}
	wantDaily := []domain.DayCount{{Date: "2026-03-03", Count: 1}, {Date: "2026-03-10", Count: 2}}
	if len(daily) != 2 || daily[0] != wantDaily[0] || daily[1] != wantDaily[1] {
		t.Fatalf("want %+v, got %+v", wantDaily, daily)
	}
}
