// Dashboard HTTP handlers.
//
// Handlers are transport-thin: they parse query and path parameters, call the
// query or report service, and translate results into JSON envelopes. All
// range checks live in the services; handlers only reject values that are
// not numbers at all.
package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/companion-insights/internal/domain"
	"github.com/tbourn/companion-insights/internal/services"
	"github.com/tbourn/companion-insights/internal/utils"
)

//
// Service contracts (context-aware)
//

// QueryService runs single dashboard reports.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type QueryService interface {
	TotalMessages(ctx context.Context) (int64, error)
	TotalUserMessages(ctx context.Context) (int64, error)
	TotalAffinity(ctx context.Context) (int64, error)
	// TotalTokens never fails; store errors read as 0.
	TotalTokens(ctx context.Context) int64
	TotalUsers(ctx context.Context) (int64, error)
	CardTierDistribution(ctx context.Context) ([]domain.TierCount, error)
	LevelStatistics(ctx context.Context) ([]domain.LevelStat, error)
	CharacterMessageCounts(ctx context.Context) ([]domain.CharacterCount, error)
	CharacterAffinityTotals(ctx context.Context) ([]domain.CharacterAffinity, error)
	DailyMessageCounts(ctx context.Context, days int) ([]domain.DayCount, error)

	AffinityRanking(ctx context.Context, character string, limit int) ([]domain.UserScore, error)
	MessageRanking(ctx context.Context, limit int) ([]domain.UserScore, error)
	CardRanking(ctx context.Context, limit int) ([]domain.UserScore, error)
	StreakRanking(ctx context.Context, limit int) ([]domain.UserScore, error)
	CharacterRankingFull(ctx context.Context, character string) ([]domain.RankingEntry, error)
	TotalRankingFull(ctx context.Context) ([]domain.RankingEntry, error)
	DailyAffinityGain(ctx context.Context, character string) ([]domain.AffinityGain, error)

	TopKeywords(ctx context.Context, keywordType string, limit int) ([]domain.KeywordCount, error)
	KeywordTypeCounts(ctx context.Context) ([]domain.TypeCount, error)
	MemorySummaries(ctx context.Context, userID string, limit int) ([]domain.MemorySummary, error)
	NicknameList(ctx context.Context, character string, limit int) ([]domain.UserNickname, error)

	QuestCompletionRate(ctx context.Context, questID string) (domain.QuestCompletion, error)
	QuestClaimTrend(ctx context.Context, questID string, days int) ([]domain.DayCount, error)
	StoryChapterProgress(ctx context.Context, character string) ([]domain.ChapterCount, error)
	StoryEndingDistribution(ctx context.Context, character string) ([]domain.TypeCount, error)
	StoryChoiceDistribution(ctx context.Context, character string, chapter int) ([]domain.TypeCount, error)
	GiftTotals(ctx context.Context) ([]domain.GiftTotal, error)
	CardTierByCharacter(ctx context.Context) ([]domain.CharacterTierCount, error)

	ActiveUserTrend(ctx context.Context, days int, relative bool) ([]domain.DayCount, error)
	Retention(ctx context.Context, n int) (domain.Retention, error)
	RetentionTrend(ctx context.Context) ([]domain.Retention, error)
	TokenUsageByCharacter(ctx context.Context) ([]domain.CharacterCount, error)
	StreakDistribution(ctx context.Context) ([]domain.StreakCount, error)

	SpamMessages(ctx context.Context, userID string, limit int) ([]domain.SpamMessage, error)
	SpamByReason(ctx context.Context) ([]domain.TypeCount, error)
	SpamByUser(ctx context.Context, limit int) ([]domain.UserScore, error)
}

// ReportService assembles multi-query bundles.
type ReportService interface {
	UserSummary(ctx context.Context, userID string) (*domain.UserSummary, error)
	DashboardStats(ctx context.Context) (*domain.DashboardStats, error)
	QuestCompletionAll(ctx context.Context) ([]domain.QuestCompletion, error)
}

//
// Handler wiring
//

// Handlers groups the dashboard endpoints.
type Handlers struct {
	q QueryService
	r ReportService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(q QueryService, r ReportService) *Handlers {
	return &Handlers{q: q, r: r}
}

//
// Parameter helpers
//

// Defaults applied when a window or limit parameter is omitted.
const (
	defaultDays      = 7
	defaultRetention = 7
)

// intQuery reads an integer query parameter, answering 400 when the value
// is present but not a number. The bool is false once a response was sent.
func intQuery(c *gin.Context, key string, def int) (int, bool) {
	n, err := utils.IntParam(c.Query(key), def)
	if err != nil {
		badParam(c, key)
		return 0, false
	}
	return n, true
}

func limitQuery(c *gin.Context) (int, bool) {
	return intQuery(c, "limit", services.DefaultLimit)
}

func daysQuery(c *gin.Context, def int) (int, bool) {
	return intQuery(c, "days", def)
}
