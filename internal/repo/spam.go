package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/companion-insights/internal/domain"
)

// SpamMessages returns the most recent flagged messages, optionally for one
// user.
func SpamMessages(ctx context.Context, db *gorm.DB, userID string, limit int) ([]domain.SpamMessage, error) {
	return selectRows[domain.SpamMessage](ctx, db, "spam_messages", `
		SELECT id, user_id, character_name, message, reason, created_at
		FROM spam_messages
		WHERE (? = '' OR user_id = ?)
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, userID, userID, limit)
}

// SpamByReason returns the number of flagged messages per reason.
func SpamByReason(ctx context.Context, db *gorm.DB) ([]domain.TypeCount, error) {
	return selectRows[domain.TypeCount](ctx, db, "spam_by_reason", `
		SELECT reason AS label, COUNT(*) AS count
		FROM spam_messages
		GROUP BY reason
		ORDER BY count DESC, label ASC`)
}

// SpamByUser returns the users with the most flagged messages.
func SpamByUser(ctx context.Context, db *gorm.DB, limit int) ([]domain.UserScore, error) {
	return selectRows[domain.UserScore](ctx, db, "spam_by_user", `
		SELECT user_id, COUNT(*) AS score
		FROM spam_messages
		GROUP BY user_id
		ORDER BY score DESC, user_id ASC
		LIMIT ?`, limit)
}
