package repo

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/tbourn/companion-insights/internal/domain"
)

// TotalMessages returns the number of rows in the conversation log.
func TotalMessages(ctx context.Context, db *gorm.DB) (int64, error) {
	return scalar[int64](ctx, db, "total_messages",
		`SELECT COUNT(*) FROM conversations`)
}

// TotalUserMessages returns the number of messages sent by users (not the
// companion).
func TotalUserMessages(ctx context.Context, db *gorm.DB) (int64, error) {
	return scalar[int64](ctx, db, "total_user_messages",
		`SELECT COUNT(*) FROM conversations WHERE message_role = ?`, domain.RoleUser)
}

// TotalAffinity returns the sum of every affinity score.
func TotalAffinity(ctx context.Context, db *gorm.DB) (int64, error) {
	return scalar[int64](ctx, db, "total_affinity",
		`SELECT CAST(COALESCE(SUM(emotion_score), 0) AS BIGINT) FROM affinity`)
}

// TotalTokens returns the sum of token_count over the conversation log.
//
// Older deployments have no token_count column. Any failure is logged and
// reported as 0 so the dashboard still renders.
func TotalTokens(ctx context.Context, db *gorm.DB) int64 {
	n, err := scalar[int64](ctx, db, "total_tokens",
		`SELECT CAST(COALESCE(SUM(token_count), 0) AS BIGINT) FROM conversations`)
	if err != nil {
		log.Warn().Err(err).Msg("token total unavailable; reporting 0")
		return 0
	}
	return n
}

// TotalUsers returns the number of distinct users with an affinity row.
func TotalUsers(ctx context.Context, db *gorm.DB) (int64, error) {
	return scalar[int64](ctx, db, "total_users",
		`SELECT COUNT(DISTINCT user_id) FROM affinity`)
}

// CardTierDistribution returns the global card count per tier, where the tier
// is the uppercased first character of card_id, with each tier's share of all
// cards. Rows are ordered by tier.
func CardTierDistribution(ctx context.Context, db *gorm.DB) ([]domain.TierCount, error) {
	rows, err := selectRows[domain.TierCount](ctx, db, "card_tier_distribution", `
		SELECT UPPER(SUBSTR(card_id, 1, 1)) AS tier, COUNT(*) AS count
		FROM user_cards
		GROUP BY UPPER(SUBSTR(card_id, 1, 1))
		ORDER BY tier`)
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

// LevelOf maps a summed affinity score to its level bucket.
func LevelOf(score int64) string {
	switch {
	case score < 10:
		return domain.LevelRookie
	case score < 30:
		return domain.LevelIron
	case score < 50:
		return domain.LevelBronze
	case score < 100:
		return domain.LevelSilver
	default:
		return domain.LevelGold
	}
}

// LevelStatistics buckets users by their summed affinity and reports each
// bucket's share of totalUsers. All five buckets are returned in semantic
// order; empty buckets carry a zero count. When totalUsers is 0 every
// percentage is 0.
func LevelStatistics(ctx context.Context, db *gorm.DB, totalUsers int64) ([]domain.LevelStat, error) {
	type row struct {
		Level string
		Count int64
	}
	rows, err := selectRows[row](ctx, db, "level_statistics", `
		SELECT CASE
				WHEN total < 10 THEN 'Rookie'
				WHEN total < 30 THEN 'Iron'
				WHEN total < 50 THEN 'Bronze'
				WHEN total < 100 THEN 'Silver'
				ELSE 'Gold'
			END AS level,
			COUNT(*) AS count
		FROM (
			SELECT user_id, SUM(emotion_score) AS total
			FROM affinity
			GROUP BY user_id
		) per_user
		GROUP BY 1`)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Level] = r.Count
	}
	out := make([]domain.LevelStat, 0, len(domain.LevelOrder))
	for _, lvl := range domain.LevelOrder {
		c := counts[lvl]
		out = append(out, domain.LevelStat{Level: lvl, Count: c, Percent: percent(c, totalUsers)})
	}
	return out, nil
}

// CharacterMessageCounts returns the number of user messages per character,
// busiest first.
func CharacterMessageCounts(ctx context.Context, db *gorm.DB) ([]domain.CharacterCount, error) {
	return selectRows[domain.CharacterCount](ctx, db, "character_message_counts", `
		SELECT character_name, COUNT(*) AS count
		FROM conversations
		WHERE message_role = ?
		GROUP BY character_name
		ORDER BY count DESC, character_name ASC`, domain.RoleUser)
}

// CharacterAffinityTotals returns summed affinity and the number of users per
// character.
func CharacterAffinityTotals(ctx context.Context, db *gorm.DB) ([]domain.CharacterAffinity, error) {
	return selectRows[domain.CharacterAffinity](ctx, db, "character_affinity_totals", `
		SELECT character_name,
			CAST(COALESCE(SUM(emotion_score), 0) AS BIGINT) AS total_affinity,
			COUNT(DISTINCT user_id) AS user_count
		FROM affinity
		GROUP BY character_name
		ORDER BY total_affinity DESC, character_name ASC`)
}

// DailyMessageCounts returns the number of messages per calendar day in loc
// over the trailing `days` days (today included), oldest first. Days without
// messages are omitted.
func DailyMessageCounts(ctx context.Context, db *gorm.DB, now time.Time, loc *time.Location, days int) ([]domain.DayCount, error) {
	start, end, _ := TrailingDays(now, loc, days)
	day := dayExpr(db, "created_at")
	return selectRows[domain.DayCount](ctx, db, "daily_message_counts", `
		SELECT `+day+` AS date, COUNT(*) AS count
		FROM conversations
		WHERE created_at >= ? AND created_at < ?
		GROUP BY 1
		ORDER BY 1`, shiftArg(loc, now), start, end)
}
