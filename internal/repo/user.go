package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/companion-insights/internal/domain"
)

// Per-user lookups. Every function filters by userID; the report assembler
// runs them in sequence to build the user summary.

// RecentEpisodeLimit is the number of episodes returned by UserEpisodes.
const RecentEpisodeLimit = 10

// UserMessageCounts returns the number of messages the user sent per
// character.
func UserMessageCounts(ctx context.Context, db *gorm.DB, userID string) ([]domain.CharacterCount, error) {
	return selectRows[domain.CharacterCount](ctx, db, "user_message_counts", `
		SELECT character_name, COUNT(*) AS count
		FROM conversations
		WHERE user_id = ? AND message_role = ?
		GROUP BY character_name
		ORDER BY count DESC, character_name ASC`, userID, domain.RoleUser)
}

// UserAffinity returns the user's affinity row for every character.
func UserAffinity(ctx context.Context, db *gorm.DB, userID string) ([]domain.Affinity, error) {
	return selectRows[domain.Affinity](ctx, db, "user_affinity", `
		SELECT user_id, character_name, emotion_score, daily_message_count
		FROM affinity
		WHERE user_id = ?
		ORDER BY emotion_score DESC, character_name ASC`, userID)
}

// UserTotalAffinity returns the user's affinity summed over characters.
func UserTotalAffinity(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	return scalar[int64](ctx, db, "user_total_affinity",
		`SELECT CAST(COALESCE(SUM(emotion_score), 0) AS BIGINT) FROM affinity WHERE user_id = ?`, userID)
}

// UserCardCount returns the number of cards the user owns.
func UserCardCount(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	return scalar[int64](ctx, db, "user_card_count",
		`SELECT COUNT(*) FROM user_cards WHERE user_id = ?`, userID)
}

// UserCardTiers returns the user's card count per tier, where the tier is the
// uppercased first character of card_id.
func UserCardTiers(ctx context.Context, db *gorm.DB, userID string) ([]domain.TierCount, error) {
	rows, err := selectRows[domain.TierCount](ctx, db, "user_card_tiers", `
		SELECT UPPER(SUBSTR(card_id, 1, 1)) AS tier, COUNT(*) AS count
		FROM user_cards
		WHERE user_id = ?
		GROUP BY UPPER(SUBSTR(card_id, 1, 1))
		ORDER BY tier`, userID)
	if err != nil {
		return nil, err
	}
	var total int64
	for _, r := range rows {
		total += r.Count
	}
	for i := range rows {
		rows[i].Percent = percent(rows[i].Count, total)
	}
	return rows, nil
}

// UserCards returns the user's cards grouped by character, with the per-user
// tier of each.
func UserCards(ctx context.Context, db *gorm.DB, userID string) ([]domain.UserCardRow, error) {
	return selectRows[domain.UserCardRow](ctx, db, "user_cards", `
		SELECT card_id, character_name, UPPER(SUBSTR(card_id, 1, 1)) AS tier
		FROM user_cards
		WHERE user_id = ?
		ORDER BY character_name ASC, card_id ASC`, userID)
}

// UserStreak returns the user's login streak. Found is false when the user
// has no streak row.
func UserStreak(ctx context.Context, db *gorm.DB, userID string) (domain.StreakInfo, error) {
	rows, err := selectRows[domain.StreakInfo](ctx, db, "user_streak", `
		SELECT current_streak, last_login_date
		FROM user_login_streaks
		WHERE user_id = ?
		LIMIT 1`, userID)
	if err != nil || len(rows) == 0 {
		return domain.StreakInfo{}, err
	}
	s := rows[0]
	s.Found = true
	return s, nil
}

// UserGifts returns the quantity of each gift the user holds.
func UserGifts(ctx context.Context, db *gorm.DB, userID string) ([]domain.GiftQuantity, error) {
	return selectRows[domain.GiftQuantity](ctx, db, "user_gifts", `
		SELECT gift_id, CAST(COALESCE(SUM(quantity), 0) AS BIGINT) AS quantity
		FROM user_gifts
		WHERE user_id = ?
		GROUP BY gift_id
		ORDER BY quantity DESC, gift_id ASC`, userID)
}

// UserKeywords returns every keyword observed for the user.
func UserKeywords(ctx context.Context, db *gorm.DB, userID string) ([]domain.UserKeyword, error) {
	return selectRows[domain.UserKeyword](ctx, db, "user_keywords", `
		SELECT id, user_id, character_name, keyword_type, keyword_value, context
		FROM user_keywords
		WHERE user_id = ?
		ORDER BY character_name ASC, keyword_type ASC, id ASC`, userID)
}

// UserNicknames returns the nicknames characters use for the user.
func UserNicknames(ctx context.Context, db *gorm.DB, userID string) ([]domain.UserNickname, error) {
	return selectRows[domain.UserNickname](ctx, db, "user_nicknames", `
		SELECT id, user_id, character_name, nickname
		FROM user_nicknames
		WHERE user_id = ?
		ORDER BY character_name ASC, id ASC`, userID)
}

// UserEpisodes returns the user's RecentEpisodeLimit most recent episodes.
func UserEpisodes(ctx context.Context, db *gorm.DB, userID string) ([]domain.Episode, error) {
	return selectRows[domain.Episode](ctx, db, "user_episodes", `
		SELECT id, user_id, "character", summary, created_at
		FROM episodes
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, userID, RecentEpisodeLimit)
}

// UserStoryProgress returns the user's story progress rows.
func UserStoryProgress(ctx context.Context, db *gorm.DB, userID string) ([]domain.StoryProgress, error) {
	return selectRows[domain.StoryProgress](ctx, db, "user_story_progress", `
		SELECT id, user_id, character_name, chapter_number, completed_at, selected_choice, ending_type
		FROM story_progress
		WHERE user_id = ?
		ORDER BY character_name ASC, chapter_number ASC`, userID)
}

// UserWeekMessages returns the messages the user sent per character since the
// start of the day seven days before now in loc (inclusive).
func UserWeekMessages(ctx context.Context, db *gorm.DB, now time.Time, loc *time.Location, userID string) ([]domain.CharacterCount, error) {
	return selectRows[domain.CharacterCount](ctx, db, "user_week_messages", `
		SELECT character_name, COUNT(*) AS count
		FROM conversations
		WHERE user_id = ? AND message_role = ? AND created_at >= ?
		GROUP BY character_name
		ORDER BY count DESC, character_name ASC`, userID, domain.RoleUser, WeekStart(now, loc))
}

// UserWeekDaily returns the user's message count per calendar day in loc over
// the same window as UserWeekMessages, oldest first.
func UserWeekDaily(ctx context.Context, db *gorm.DB, now time.Time, loc *time.Location, userID string) ([]domain.DayCount, error) {
	day := dayExpr(db, "created_at")
	return selectRows[domain.DayCount](ctx, db, "user_week_daily", `
		SELECT `+day+` AS date, COUNT(*) AS count
		FROM conversations
		WHERE user_id = ? AND message_role = ? AND created_at >= ?
		GROUP BY 1
		ORDER BY 1`, shiftArg(loc, now), userID, domain.RoleUser, WeekStart(now, loc))
}
