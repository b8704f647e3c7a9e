package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/companion-insights/internal/domain"
)

// QuestCompletionRate reports how many of the users known to the affinity
// table claimed questID on the calendar day of now in loc.
//
// Only claimants that also appear in affinity count as completed, so
// Completed never exceeds Total. Percent is 0 when Total is 0.
func QuestCompletionRate(ctx context.Context, db *gorm.DB, now time.Time, loc *time.Location, questID string) (domain.QuestCompletion, error) {
	start, end := DayRange(now, loc, 0)
	type counts struct {
		Completed int64
		Total     int64
	}
	c, err := selectOne[counts](ctx, db, "quest_completion", `
		SELECT
			(SELECT COUNT(DISTINCT q.user_id)
				FROM quest_claims q
				WHERE q.quest_id = ?
					AND q.claimed_at >= ? AND q.claimed_at < ?
					AND q.user_id IN (SELECT user_id FROM affinity)) AS completed,
			(SELECT COUNT(DISTINCT user_id) FROM affinity) AS total`,
		questID, start, end)
	if err != nil {
		return domain.QuestCompletion{}, err
	}
	return domain.QuestCompletion{
		QuestID:   questID,
		Completed: c.Completed,
		Total:     c.Total,
		Percent:   percent(c.Completed, c.Total),
	}, nil
}

// QuestClaimTrend returns the number of claims of questID per calendar day in
// loc over the trailing `days` days, oldest first.
func QuestClaimTrend(ctx context.Context, db *gorm.DB, now time.Time, loc *time.Location, questID string, days int) ([]domain.DayCount, error) {
	start, end, _ := TrailingDays(now, loc, days)
	day := dayExpr(db, "claimed_at")
	return selectRows[domain.DayCount](ctx, db, "quest_claim_trend", `
		SELECT `+day+` AS date, COUNT(*) AS count
		FROM quest_claims
		WHERE quest_id = ? AND claimed_at >= ? AND claimed_at < ?
		GROUP BY 1
		ORDER BY 1`, shiftArg(loc, now), questID, start, end)
}

// StoryChapterProgress returns completions per (character, chapter),
// optionally for one character.
func StoryChapterProgress(ctx context.Context, db *gorm.DB, character string) ([]domain.ChapterCount, error) {
	return selectRows[domain.ChapterCount](ctx, db, "story_chapter_progress", `
		SELECT character_name, chapter_number, COUNT(*) AS count
		FROM story_progress
		WHERE completed_at IS NOT NULL AND (? = '' OR character_name = ?)
		GROUP BY character_name, chapter_number
		ORDER BY character_name ASC, chapter_number ASC`, character, character)
}

// StoryEndingDistribution returns the number of completions per ending type,
// optionally for one character.
func StoryEndingDistribution(ctx context.Context, db *gorm.DB, character string) ([]domain.TypeCount, error) {
	return selectRows[domain.TypeCount](ctx, db, "story_ending_distribution", `
		SELECT ending_type AS label, COUNT(*) AS count
		FROM story_progress
		WHERE ending_type IS NOT NULL AND ending_type <> ''
			AND (? = '' OR character_name = ?)
		GROUP BY ending_type
		ORDER BY count DESC, label ASC`, character, character)
}

// StoryChoiceDistribution returns how often each choice was selected in one
// chapter of character's story.
func StoryChoiceDistribution(ctx context.Context, db *gorm.DB, character string, chapter int) ([]domain.TypeCount, error) {
	return selectRows[domain.TypeCount](ctx, db, "story_choice_distribution", `
		SELECT selected_choice AS label, COUNT(*) AS count
		FROM story_progress
		WHERE character_name = ? AND chapter_number = ?
			AND selected_choice IS NOT NULL AND selected_choice <> ''
		GROUP BY selected_choice
		ORDER BY count DESC, label ASC`, character, chapter)
}

// GiftTotals returns the granted quantity and number of distinct recipients
// per gift.
func GiftTotals(ctx context.Context, db *gorm.DB) ([]domain.GiftTotal, error) {
	return selectRows[domain.GiftTotal](ctx, db, "gift_totals", `
		SELECT gift_id,
			CAST(COALESCE(SUM(quantity), 0) AS BIGINT) AS quantity,
			COUNT(DISTINCT user_id) AS recipients
		FROM user_gifts
		GROUP BY gift_id
		ORDER BY quantity DESC, gift_id ASC`)
}

// CardTierByCharacter returns the card count per (character, tier) in the
// cross-character view: card ids are "<character_name><tier><serial>", so the
// tier is the character right after the name.
//
// The per-user view (UserCardTiers) uses the first character of card_id
// instead.
func CardTierByCharacter(ctx context.Context, db *gorm.DB) ([]domain.CharacterTierCount, error) {
	return selectRows[domain.CharacterTierCount](ctx, db, "card_tier_by_character", `
		SELECT character_name,
			UPPER(SUBSTR(card_id, LENGTH(character_name) + 1, 1)) AS tier,
			COUNT(*) AS count
		FROM user_cards
		GROUP BY character_name, UPPER(SUBSTR(card_id, LENGTH(character_name) + 1, 1))
		ORDER BY character_name ASC, tier ASC`)
}
