package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/companion-insights/internal/domain"
)

// AffinityRanking returns the top users by affinity with character, or by
// affinity summed over all characters when character is empty.
func AffinityRanking(ctx context.Context, db *gorm.DB, character string, limit int) ([]domain.UserScore, error) {
	return selectRows[domain.UserScore](ctx, db, "affinity_ranking", `
		SELECT user_id, CAST(COALESCE(SUM(emotion_score), 0) AS BIGINT) AS score
		FROM affinity
		WHERE (? = '' OR character_name = ?)
		GROUP BY user_id
		ORDER BY score DESC, user_id ASC
		LIMIT ?`, character, character, limit)
}

// MessageRanking returns the users who sent the most messages.
func MessageRanking(ctx context.Context, db *gorm.DB, limit int) ([]domain.UserScore, error) {
	return selectRows[domain.UserScore](ctx, db, "message_ranking", `
		SELECT user_id, COUNT(*) AS score
		FROM conversations
		WHERE message_role = ?
		GROUP BY user_id
		ORDER BY score DESC, user_id ASC
		LIMIT ?`, domain.RoleUser, limit)
}

// CardRanking returns the users owning the most cards.
func CardRanking(ctx context.Context, db *gorm.DB, limit int) ([]domain.UserScore, error) {
	return selectRows[domain.UserScore](ctx, db, "card_ranking", `
		SELECT user_id, COUNT(*) AS score
		FROM user_cards
		GROUP BY user_id
		ORDER BY score DESC, user_id ASC
		LIMIT ?`, limit)
}

// StreakRanking returns the longest current login streaks.
func StreakRanking(ctx context.Context, db *gorm.DB, limit int) ([]domain.UserScore, error) {
	return selectRows[domain.UserScore](ctx, db, "streak_ranking", `
		SELECT user_id, current_streak AS score
		FROM user_login_streaks
		ORDER BY score DESC, user_id ASC
		LIMIT ?`, limit)
}

// CharacterRankingFull returns every user with an affinity row for character,
// paired with the number of messages they sent to that character. Users who
// never messaged the character report 0.
func CharacterRankingFull(ctx context.Context, db *gorm.DB, character string) ([]domain.RankingEntry, error) {
	return selectRows[domain.RankingEntry](ctx, db, "character_ranking_full", `
		WITH msg AS (
			SELECT user_id, character_name, COUNT(*) AS message_count
			FROM conversations
			WHERE message_role = ? AND character_name = ?
			GROUP BY user_id, character_name
		)
		SELECT a.user_id,
			CAST(a.emotion_score AS BIGINT) AS total_affinity,
			COALESCE(m.message_count, 0) AS message_count
		FROM affinity a
		LEFT JOIN msg m ON m.user_id = a.user_id AND m.character_name = a.character_name
		WHERE a.character_name = ?
		ORDER BY total_affinity DESC, message_count DESC, a.user_id ASC`,
		domain.RoleUser, character, character)
}

// TotalRankingFull returns every user found in either the per-user affinity
// sums or the per-user message counts, exactly once, with the missing side
// reported as 0.
//
// Neither LEFT JOIN direction alone covers users present on only one side,
// so both orientations are combined with UNION.
func TotalRankingFull(ctx context.Context, db *gorm.DB) ([]domain.RankingEntry, error) {
	return selectRows[domain.RankingEntry](ctx, db, "total_ranking_full", `
		WITH aff AS (
			SELECT user_id, CAST(SUM(emotion_score) AS BIGINT) AS total_affinity
			FROM affinity
			GROUP BY user_id
		),
		msg AS (
			SELECT user_id, COUNT(*) AS message_count
			FROM conversations
			WHERE message_role = ?
			GROUP BY user_id
		)
		SELECT user_id, total_affinity, message_count FROM (
			SELECT aff.user_id AS user_id,
				COALESCE(aff.total_affinity, 0) AS total_affinity,
				COALESCE(msg.message_count, 0) AS message_count
			FROM aff LEFT JOIN msg ON msg.user_id = aff.user_id
			UNION
			SELECT msg.user_id AS user_id,
				COALESCE(aff.total_affinity, 0) AS total_affinity,
				COALESCE(msg.message_count, 0) AS message_count
			FROM msg LEFT JOIN aff ON aff.user_id = msg.user_id
		) ranked
		ORDER BY total_affinity DESC, message_count DESC, user_id ASC`, domain.RoleUser)
}

// DailyAffinityGain sums today's affinity events per (user, character), where
// "today" is the calendar day of now in loc. An empty character matches all
// characters. Largest gains first.
func DailyAffinityGain(ctx context.Context, db *gorm.DB, now time.Time, loc *time.Location, character string) ([]domain.AffinityGain, error) {
	start, end := DayRange(now, loc, 0)
	return selectRows[domain.AffinityGain](ctx, db, "daily_affinity_gain", `
		SELECT user_id, character_name, CAST(SUM(score_delta) AS BIGINT) AS gain
		FROM affinity_events
		WHERE created_at >= ? AND created_at < ?
			AND (? = '' OR character_name = ?)
		GROUP BY user_id, character_name
		ORDER BY gain DESC, user_id ASC, character_name ASC`,
		start, end, character, character)
}
