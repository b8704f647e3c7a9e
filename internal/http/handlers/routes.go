package handlers

import "github.com/gin-gonic/gin"

// Register mounts every dashboard endpoint on g, grouped by dashboard tab.
func (h *Handlers) Register(g *gin.RouterGroup) {
	ov := g.Group("/overview")
	{
		ov.GET("/stats", h.DashboardStats)
		ov.GET("/totals/messages", h.TotalMessages)
		ov.GET("/totals/user-messages", h.TotalUserMessages)
		ov.GET("/totals/affinity", h.TotalAffinity)
		ov.GET("/totals/tokens", h.TotalTokens)
		ov.GET("/totals/users", h.TotalUsers)
		ov.GET("/card-tiers", h.CardTierDistribution)
		ov.GET("/levels", h.LevelStatistics)
		ov.GET("/characters/messages", h.CharacterMessageCounts)
		ov.GET("/characters/affinity", h.CharacterAffinityTotals)
		ov.GET("/daily-messages", h.DailyMessageCounts)
	}

	rk := g.Group("/rankings")
	{
		rk.GET("/affinity", h.AffinityRanking)
		rk.GET("/messages", h.MessageRanking)
		rk.GET("/cards", h.CardRanking)
		rk.GET("/streaks", h.StreakRanking)
		rk.GET("/characters/:character", h.CharacterRankingFull)
		rk.GET("/total", h.TotalRankingFull)
		rk.GET("/daily-gain", h.DailyAffinityGain)
	}

	kw := g.Group("/keywords")
	{
		kw.GET("/top", h.TopKeywords)
		kw.GET("/types", h.KeywordTypeCounts)
		kw.GET("/memories", h.MemorySummaries)
		kw.GET("/nicknames", h.NicknameList)
	}

	qs := g.Group("/quests")
	{
		qs.GET("/completion", h.QuestCompletionAll)
		qs.GET("/:id/completion", h.QuestCompletionRate)
		qs.GET("/:id/trend", h.QuestClaimTrend)
	}

	st := g.Group("/story")
	{
		st.GET("/chapters", h.StoryChapterProgress)
		st.GET("/endings", h.StoryEndingDistribution)
		st.GET("/choices", h.StoryChoiceDistribution)
	}

	g.GET("/gifts", h.GiftTotals)
	g.GET("/cards/tiers", h.CardTierByCharacter)

	ops := g.Group("/ops")
	{
		ops.GET("/active-users", h.ActiveUserTrend)
		ops.GET("/retention", h.Retention)
		ops.GET("/retention/trend", h.RetentionTrend)
		ops.GET("/tokens", h.TokenUsageByCharacter)
		ops.GET("/streaks", h.StreakDistribution)
	}

	g.GET("/users/:id/summary", h.UserSummary)

	sp := g.Group("/spam")
	{
		sp.GET("/messages", h.SpamMessages)
		sp.GET("/reasons", h.SpamByReason)
		sp.GET("/users", h.SpamByUser)
	}
}
