// Package services – QueryService
//
// QueryService is the boundary in front of the repo query catalogue. It
// validates and normalizes parameters, resolves the time-zone policy of each
// time-dependent report, bounds every call with the configured query timeout,
// and then delegates to the matching repo function.
package services

import (
	"context"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"

	"github.com/tbourn/companion-insights/internal/domain"
	"github.com/tbourn/companion-insights/internal/repo"
)

// Parameter bounds.
const (
	MaxDays      = 365
	MaxLimit     = 1000
	DefaultLimit = 20
)

// QueryService runs single reports against the analytics store.
type QueryService struct {
	// DB is the GORM handle used for every query.
	DB *gorm.DB
	// Zones maps operations to their time-zone policy.
	Zones *Zones
	// Now is the clock; tests pin it.
	Now func() time.Time
	// Timeout bounds each call. Zero means no extra deadline.
	Timeout time.Duration
}

// NewQueryService constructs a QueryService on the wall clock.
func NewQueryService(db *gorm.DB, zones *Zones, timeout time.Duration) *QueryService {
	return &QueryService{DB: db, Zones: zones, Now: time.Now, Timeout: timeout}
}

func (s *QueryService) ctx(parent context.Context) (context.Context, context.CancelFunc) {
	if s.Timeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, s.Timeout)
}

func (s *QueryService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// name trims and NFC-normalizes a free-text identifier such as a character
// name, so composed and decomposed Hangul or accented input match the store.
func name(v string) string {
	return norm.NFC.String(strings.TrimSpace(v))
}

func checkDays(days int) error {
	if days < 1 || days > MaxDays {
		return ErrInvalidDays
	}
	return nil
}

func checkLimit(limit int) error {
	if limit < 1 || limit > MaxLimit {
		return ErrInvalidLimit
	}
	return nil
}

func checkUser(userID string) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", ErrEmptyUserID
	}
	return userID, nil
}

// ---- overview ----

// TotalMessages returns the size of the conversation log.
func (s *QueryService) TotalMessages(ctx context.Context) (int64, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()
	return repo.TotalMessages(ctx, s.DB)
}

// TotalUserMessages returns the number of user-sent messages.
func (s *QueryService) TotalUserMessages(ctx context.Context) (int64, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()
	return repo.TotalUserMessages(ctx, s.DB)
}

// TotalAffinity returns the sum of all affinity scores.
func (s *QueryService) TotalAffinity(ctx context.Context) (int64, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()
	return repo.TotalAffinity(ctx, s.DB)
}

// TotalTokens returns the token total, or 0 when it cannot be computed.
func (s *QueryService) TotalTokens(ctx context.Context) int64 {
	ctx, cancel := s.ctx(ctx)
	defer cancel()
	return repo.TotalTokens(ctx, s.DB)
}

// TotalUsers returns the number of distinct users with an affinity row.
func (s *QueryService) TotalUsers(ctx context.Context) (int64, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()
	return repo.TotalUsers(ctx, s.DB)
}

// CardTierDistribution returns the global card count and share per tier.
func (s *QueryService) CardTierDistribution(ctx context.Context) ([]domain.TierCount, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()
	return repo.CardTierDistribution(ctx, s.DB)
}

// LevelStatistics returns the level buckets with TotalUsers as denominator.
func (s *QueryService) LevelStatistics(ctx context.Context) ([]domain.LevelStat, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()
	total, err := repo.TotalUsers(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	return repo.LevelStatistics(ctx, s.DB, total)
}

// CharacterMessageCounts returns user messages per character.
func (s *QueryService) CharacterMessageCounts(ctx context.Context) ([]domain.CharacterCount, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()
	return repo.CharacterMessageCounts(ctx, s.DB)
}

// CharacterAffinityTotals returns summed affinity per character.
func (s *QueryService) CharacterAffinityTotals(ctx context.Context) ([]domain.CharacterAffinity, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()
	return repo.CharacterAffinityTotals(ctx, s.DB)
}

// DailyMessageCounts returns messages per day over the trailing window.
func (s *QueryService) DailyMessageCounts(ctx context.Context, days int) ([]domain.DayCount, error) {
	if err := checkDays(days); err != nil {
		return nil, err
	}
	ctx, cancel := s.ctx(ctx)
	defer cancel()
	return repo.DailyMessageCounts(ctx, s.DB, s.now(), s.Zones.For(OpDailyMessageCounts), days)
}

// ---- rankings ----

// AffinityRanking returns the top users by affinity, for one character or
// all of them when character is empty.
func (s *QueryService) AffinityRanking(ctx context.Context, character string, limit int) ([]domain.UserScore, error) {
	if err := checkLimit(limit); err != nil {
		return nil, err
	}
	ctx, cancel := s.ctx(ctx)
	defer cancel()
	return repo.AffinityRanking(ctx, s.DB, name(character), limit)
}

// MessageRanking returns the top users by message count.
func (s *QueryService) MessageRanking(ctx context.Context, limit int) ([]domain.UserScore, error) {
	if err := checkLimit(limit); err != nil {
		return nil, err
	}
	ctx, cancel := s.ctx(ctx)
	defer cancel()
	return repo.MessageRanking(ctx, s.DB, limit)
}

// CardRanking returns the top card collectors.
func (s *QueryService) CardRanking(ctx context.Context, limit int) ([]domain.UserScore, error) {
	if err := checkLimit(limit); err != nil {
		return nil, err
	}
	ctx, cancel := s.ctx(ctx)
	defer cancel()
	return repo.CardRanking(ctx, s.DB, limit)
}

// StreakRanking returns the longest login streaks.
func (s *QueryService) StreakRanking(ctx context.Context, limit int) ([]domain.UserScore, error) {
	if err := checkLimit(limit); err != nil {
		return nil, err
	}
	ctx, cancel := s.ctx(ctx)
	defer cancel()
	return repo.StreakRanking(ctx, s.DB, limit)
}

// CharacterRankingFull returns the complete ranking of one character.
func (s *QueryService) CharacterRankingFull(ctx context.Context, character string) ([]domain.RankingEntry, error) {
	character = name(character)
	if character == "" {
		return nil, ErrEmptyCharacter
	}
	ctx, cancel := s.ctx(ctx)
	defer cancel()
	return repo.CharacterRankingFull(ctx, s.DB, character)
}

// TotalRankingFull returns the complete cross-character ranking.
func (s *QueryService) TotalRankingFull(ctx context.Context) ([]domain.RankingEntry, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()
	return repo.TotalRankingFull(ctx, s.DB)
}

// DailyAffinityGain returns today's affinity gains.
func (s *QueryService) DailyAffinityGain(ctx context.Context, character string) ([]domain.AffinityGain, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()
	return repo.DailyAffinityGain(ctx, s.DB, s.now(), s.Zones.For(OpDailyAffinityGain), name(character))
}

// ---- keywords / AI summaries ----

// TopKeywords returns the most frequent keyword values.
func (s *QueryService) TopKeywords(ctx context.Context, keywordType string, limit int) ([]domain.KeywordCount, error) {
	if err := checkLimit(limit); err != nil {
		return nil, err
	}
	ctx, cancel := s.ctx(ctx)
	defer cancel()
	return repo.TopKeywords(ctx, s.DB, strings.TrimSpace(keywordType), limit)
}

// KeywordTypeCounts returns observations per keyword type.
func (s *QueryService) KeywordTypeCounts(ctx context.Context) ([]domain.TypeCount, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()
	return repo.KeywordTypeCounts(ctx, s.DB)
}

// MemorySummaries returns the latest memory summaries.
func (s *QueryService) MemorySummaries(ctx context.Context, userID string, limit int) ([]domain.MemorySummary, error) {
	if err := checkLimit(limit); err != nil {
		return nil, err
	}
	ctx, cancel := s.ctx(ctx)
	defer cancel()
	return repo.MemorySummaries(ctx, s.DB, strings.TrimSpace(userID), limit)
}

// NicknameList returns nicknames, optionally for one character.
func (s *QueryService) NicknameList(ctx context.Context, character string, limit int) ([]domain.UserNickname, error) {
	if err := checkLimit(limit); err != nil {
		return nil, err
	}
	ctx, cancel := s.ctx(ctx)
	defer cancel()
	return repo.NicknameList(ctx, s.DB, name(character), limit)
}

// ---- quests / story / gifts / cards ----

// QuestCompletionRate returns today's completion rate of one quest.
func (s *QueryService) QuestCompletionRate(ctx context.Context, questID string) (domain.QuestCompletion, error) {
	questID = strings.TrimSpace(questID)
	if questID == "" {
		return domain.QuestCompletion{}, ErrEmptyQuestID
	}
	ctx, cancel := s.ctx(ctx)
	defer cancel()
	return repo.QuestCompletionRate(ctx, s.DB, s.now(), s.Zones.For(OpQuestCompletion), questID)
}

// QuestClaimTrend returns claims per day for one quest.
func (s *QueryService) QuestClaimTrend(ctx context.Context, questID string, days int) ([]domain.DayCount, error) {
	questID = strings.TrimSpace(questID)
	if questID == "" {
		return nil, ErrEmptyQuestID
	}
	if err := checkDays(days); err != nil {
		return nil, err
	}
	ctx, cancel := s.ctx(ctx)
	defer cancel()
	return repo.QuestClaimTrend(ctx, s.DB, s.now(), s.Zones.For(OpQuestClaimTrend), questID, days)
}

// StoryChapterProgress returns completions per chapter.
func (s *QueryService) StoryChapterProgress(ctx context.Context, character string) ([]domain.ChapterCount, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()
	return repo.StoryChapterProgress(ctx, s.DB, name(character))
}

// StoryEndingDistribution returns completions per ending type.
func (s *QueryService) StoryEndingDistribution(ctx context.Context, character string) ([]domain.TypeCount, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()
	return repo.StoryEndingDistribution(ctx, s.DB, name(character))
}

// StoryChoiceDistribution returns choice counts for one chapter.
func (s *QueryService) StoryChoiceDistribution(ctx context.Context, character string, chapter int) ([]domain.TypeCount, error) {
	character = name(character)
	if character == "" {
		return nil, ErrEmptyCharacter
	}
	if chapter < 1 {
		return nil, ErrInvalidChapter
	}
	ctx, cancel := s.ctx(ctx)
	defer cancel()
	return repo.StoryChoiceDistribution(ctx, s.DB, character, chapter)
}

// GiftTotals returns granted quantities per gift.
func (s *QueryService) GiftTotals(ctx context.Context) ([]domain.GiftTotal, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()
	return repo.GiftTotals(ctx, s.DB)
}

// CardTierByCharacter returns the cross-character tier breakdown.
func (s *QueryService) CardTierByCharacter(ctx context.Context) ([]domain.CharacterTierCount, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()
	return repo.CardTierByCharacter(ctx, s.DB)
}

// ---- operations ----

// ActiveUserTrend returns daily active users over the trailing window.
func (s *QueryService) ActiveUserTrend(ctx context.Context, days int, relative bool) ([]domain.DayCount, error) {
	if err := checkDays(days); err != nil {
		return nil, err
	}
	ctx, cancel := s.ctx(ctx)
	defer cancel()
	return repo.ActiveUserTrend(ctx, s.DB, s.now(), s.Zones.For(OpActiveUserTrend), days, relative)
}

// Retention returns the n-day retention.
func (s *QueryService) Retention(ctx context.Context, n int) (domain.Retention, error) {
	if err := checkDays(n); err != nil {
		return domain.Retention{}, err
	}
	ctx, cancel := s.ctx(ctx)
	defer cancel()
	return repo.Retention(ctx, s.DB, s.now(), s.Zones.For(OpRetention), n)
}

// RetentionTrend returns 1-, 7- and 30-day retention.
func (s *QueryService) RetentionTrend(ctx context.Context) ([]domain.Retention, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()
	return repo.RetentionTrend(ctx, s.DB, s.now(), s.Zones.For(OpRetention))
}

// TokenUsageByCharacter returns token consumption per character.
func (s *QueryService) TokenUsageByCharacter(ctx context.Context) ([]domain.CharacterCount, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()
	return repo.TokenUsageByCharacter(ctx, s.DB)
}

// StreakDistribution returns users per streak length.
func (s *QueryService) StreakDistribution(ctx context.Context) ([]domain.StreakCount, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()
	return repo.StreakDistribution(ctx, s.DB)
}

// ---- spam ----

// SpamMessages returns the most recent flagged messages.
func (s *QueryService) SpamMessages(ctx context.Context, userID string, limit int) ([]domain.SpamMessage, error) {
	if err := checkLimit(limit); err != nil {
		return nil, err
	}
	ctx, cancel := s.ctx(ctx)
	defer cancel()
	return repo.SpamMessages(ctx, s.DB, strings.TrimSpace(userID), limit)
}

// SpamByReason returns flagged messages per reason.
func (s *QueryService) SpamByReason(ctx context.Context) ([]domain.TypeCount, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()
	return repo.SpamByReason(ctx, s.DB)
}

// SpamByUser returns the users with the most flagged messages.
func (s *QueryService) SpamByUser(ctx context.Context, limit int) ([]domain.UserScore, error) {
	if err := checkLimit(limit); err != nil {
		return nil, err
	}
	ctx, cancel := s.ctx(ctx)
	defer cancel()
	return repo.SpamByUser(ctx, s.DB, limit)
}
