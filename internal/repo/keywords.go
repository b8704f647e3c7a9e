package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/companion-insights/internal/domain"
)

// TopKeywords returns the most frequent keyword values, optionally restricted
// to one keyword type.
func TopKeywords(ctx context.Context, db *gorm.DB, keywordType string, limit int) ([]domain.KeywordCount, error) {
	return selectRows[domain.KeywordCount](ctx, db, "top_keywords", `
		SELECT keyword_type, keyword_value, COUNT(*) AS count
		FROM user_keywords
		WHERE (? = '' OR keyword_type = ?)
		GROUP BY keyword_type, keyword_value
		ORDER BY count DESC, keyword_value ASC
		LIMIT ?`, keywordType, keywordType, limit)
}

// KeywordTypeCounts returns the number of keyword observations per type.
func KeywordTypeCounts(ctx context.Context, db *gorm.DB) ([]domain.TypeCount, error) {
	return selectRows[domain.TypeCount](ctx, db, "keyword_type_counts", `
		SELECT keyword_type AS label, COUNT(*) AS count
		FROM user_keywords
		GROUP BY keyword_type
		ORDER BY count DESC, label ASC`)
}

// MemorySummaries returns the most recently updated memory summaries,
// optionally for one user.
func MemorySummaries(ctx context.Context, db *gorm.DB, userID string, limit int) ([]domain.MemorySummary, error) {
	return selectRows[domain.MemorySummary](ctx, db, "memory_summaries", `
		SELECT id, user_id, character_name, summary, updated_at
		FROM memory_summaries
		WHERE (? = '' OR user_id = ?)
		ORDER BY updated_at DESC, id DESC
		LIMIT ?`, userID, userID, limit)
}

// NicknameList returns nicknames characters use for users, optionally for one
// character.
func NicknameList(ctx context.Context, db *gorm.DB, character string, limit int) ([]domain.UserNickname, error) {
	return selectRows[domain.UserNickname](ctx, db, "nickname_list", `
		SELECT id, user_id, character_name, nickname
		FROM user_nicknames
		WHERE (? = '' OR character_name = ?)
		ORDER BY character_name ASC, user_id ASC, id ASC
		LIMIT ?`, character, character, limit)
}
