package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/companion-insights/internal/domain"
)

// RetentionWindows are the day offsets reported by RetentionTrend.
var RetentionWindows = []int{1, 7, 30}

// ActiveUserTrend returns the number of distinct users who sent a message on
// each of the trailing `days` calendar days in loc, oldest first. Every day
// of the window is present, with 0 for idle days.
//
// When relative is set the Date label is replaced by the day number 1..days.
func ActiveUserTrend(ctx context.Context, db *gorm.DB, now time.Time, loc *time.Location, days int, relative bool) ([]domain.DayCount, error) {
	start, end, labels := TrailingDays(now, loc, days)
	day := dayExpr(db, "created_at")
	rows, err := selectRows[domain.DayCount](ctx, db, "active_user_trend", `
		SELECT `+day+` AS date, COUNT(DISTINCT user_id) AS count
		FROM conversations
		WHERE message_role = ? AND created_at >= ? AND created_at < ?
		GROUP BY 1`, shiftArg(loc, now), domain.RoleUser, start, end)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]int64, len(rows))
	for _, r := range rows {
		byDate[r.Date] = r.Count
	}
	out := make([]domain.DayCount, 0, len(labels))
	for i, d := range labels {
		row := domain.DayCount{Date: d, Count: byDate[d]}
		if relative {
			row = domain.DayCount{Day: i + 1, Count: row.Count}
		}
		out = append(out, row)
	}
	return out, nil
}

// Retention returns the share of users active on the day n days before now
// (in loc) who are also active today. Base is floored at 1 for the division,
// so an empty cohort yields 0%.
func Retention(ctx context.Context, db *gorm.DB, now time.Time, loc *time.Location, n int) (domain.Retention, error) {
	todayStart, todayEnd := DayRange(now, loc, 0)
	thenStart, thenEnd := DayRange(now, loc, n)
	type counts struct {
		Base     int64
		Retained int64
	}
	c, err := selectOne[counts](ctx, db, "retention", `
		SELECT
			(SELECT COUNT(DISTINCT user_id)
				FROM conversations
				WHERE message_role = ? AND created_at >= ? AND created_at < ?) AS base,
			(SELECT COUNT(DISTINCT t.user_id)
				FROM conversations t
				WHERE t.message_role = ? AND t.created_at >= ? AND t.created_at < ?
					AND t.user_id IN (
						SELECT p.user_id
						FROM conversations p
						WHERE p.message_role = ? AND p.created_at >= ? AND p.created_at < ?
					)) AS retained`,
		domain.RoleUser, thenStart, thenEnd,
		domain.RoleUser, todayStart, todayEnd,
		domain.RoleUser, thenStart, thenEnd)
	if err != nil {
		return domain.Retention{}, err
	}
	return domain.Retention{
		Days:     n,
		Retained: c.Retained,
		Base:     c.Base,
		Percent:  percent(c.Retained, max(c.Base, 1)),
	}, nil
}

// RetentionTrend returns Retention for each of RetentionWindows.
func RetentionTrend(ctx context.Context, db *gorm.DB, now time.Time, loc *time.Location) ([]domain.Retention, error) {
	out := make([]domain.Retention, 0, len(RetentionWindows))
	for _, n := range RetentionWindows {
		r, err := Retention(ctx, db, now, loc, n)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// TokenUsageByCharacter returns the summed token_count per character.
func TokenUsageByCharacter(ctx context.Context, db *gorm.DB) ([]domain.CharacterCount, error) {
	return selectRows[domain.CharacterCount](ctx, db, "token_usage_by_character", `
		SELECT character_name, CAST(COALESCE(SUM(token_count), 0) AS BIGINT) AS count
		FROM conversations
		GROUP BY character_name
		ORDER BY count DESC, character_name ASC`)
}

// StreakDistribution returns the number of users per current streak length.
func StreakDistribution(ctx context.Context, db *gorm.DB) ([]domain.StreakCount, error) {
	return selectRows[domain.StreakCount](ctx, db, "streak_distribution", `
		SELECT current_streak AS streak, COUNT(*) AS users
		FROM user_login_streaks
		GROUP BY current_streak
		ORDER BY current_streak ASC`)
}
