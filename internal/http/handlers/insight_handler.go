// Content tabs: keywords and AI summaries, quests, story, gifts, cards.
package handlers

import (
	"github.com/gin-gonic/gin"
)

// TopKeywords godoc
// @ID          getTopKeywords
// @Summary     Most frequent keyword values
// @Tags        Keywords
// @Produce     json
// @Param       type   query  string  false  "Keyword type filter"
// @Param       limit  query  int     false  "Rows"  minimum(1) maximum(1000) default(20)
// @Success     200  {object}  handlers.RowsResponse[domain.KeywordCount]
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Query failed"
// @Router      /keywords/top [get]
func (h *Handlers) TopKeywords(c *gin.Context) {
	limit, good := limitQuery(c)
	if !good {
		return
	}
	out, err := h.q.TopKeywords(c.Request.Context(), c.Query("type"), limit)
	if err != nil {
		serviceError(c, "top_keywords", err)
		return
	}
	rows(c, out)
}

// KeywordTypeCounts godoc
// @ID          getKeywordTypeCounts
// @Summary     Observations per keyword type
// @Tags        Keywords
// @Produce     json
// @Success     200  {object}  handlers.RowsResponse[domain.TypeCount]
// @Failure     500  {object}  handlers.ErrorResponse  "Query failed"
// @Router      /keywords/types [get]
func (h *Handlers) KeywordTypeCounts(c *gin.Context) {
	out, err := h.q.KeywordTypeCounts(c.Request.Context())
	if err != nil {
		serviceError(c, "keyword_type_counts", err)
		return
	}
	rows(c, out)
}

// MemorySummaries godoc
// @ID          getMemorySummaries
// @Summary     Latest AI memory summaries
// @Tags        Keywords
// @Produce     json
// @Param       user_id  query  string  false  "Restrict to one user"
// @Param       limit    query  int     false  "Rows"  minimum(1) maximum(1000) default(20)
// @Success     200  {object}  handlers.RowsResponse[domain.MemorySummary]
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Query failed"
// @Router      /keywords/memories [get]
func (h *Handlers) MemorySummaries(c *gin.Context) {
	limit, good := limitQuery(c)
	if !good {
		return
	}
	out, err := h.q.MemorySummaries(c.Request.Context(), c.Query("user_id"), limit)
	if err != nil {
		serviceError(c, "memory_summaries", err)
		return
	}
	rows(c, out)
}

// NicknameList godoc
// @ID          getNicknames
// @Summary     Nicknames users gave the characters
// @Tags        Keywords
// @Produce     json
// @Param       character  query  string  false  "Restrict to one character"
// @Param       limit      query  int     false  "Rows"  minimum(1) maximum(1000) default(20)
// @Success     200  {object}  handlers.RowsResponse[domain.UserNickname]
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Query failed"
// @Router      /keywords/nicknames [get]
func (h *Handlers) NicknameList(c *gin.Context) {
	limit, good := limitQuery(c)
	if !good {
		return
	}
	out, err := h.q.NicknameList(c.Request.Context(), c.Query("character"), limit)
	if err != nil {
		serviceError(c, "nickname_list", err)
		return
	}
	rows(c, out)
}

// QuestCompletionAll godoc
// @ID          getQuestCompletionAll
// @Summary     Today's completion rate of every configured quest
// @Tags        Quests
// @Produce     json
// @Success     200  {object}  handlers.RowsResponse[domain.QuestCompletion]
// @Failure     500  {object}  handlers.ErrorResponse  "Query failed"
// @Router      /quests/completion [get]
func (h *Handlers) QuestCompletionAll(c *gin.Context) {
	out, err := h.r.QuestCompletionAll(c.Request.Context())
	if err != nil {
		serviceError(c, "quest_completion_all", err)
		return
	}
	rows(c, out)
}

// QuestCompletionRate godoc
// @ID          getQuestCompletion
// @Summary     Today's completion rate of one quest
// @Tags        Quests
// @Produce     json
// @Param       id  path  string  true  "Quest ID"  example(daily_login)
// @Success     200  {object}  domain.QuestCompletion
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Query failed"
// @Router      /quests/{id}/completion [get]
func (h *Handlers) QuestCompletionRate(c *gin.Context) {
	out, err := h.q.QuestCompletionRate(c.Request.Context(), c.Param("id"))
	if err != nil {
		serviceError(c, "quest_completion_rate", err)
		return
	}
	ok(c, out)
}

// QuestClaimTrend godoc
// @ID          getQuestClaimTrend
// @Summary     Claims per day for one quest
// @Tags        Quests
// @Produce     json
// @Param       id    path   string  true   "Quest ID"  example(daily_login)
// @Param       days  query  int     false  "Trailing window in days"  minimum(1) maximum(365) default(7)
// @Success     200  {object}  handlers.RowsResponse[domain.DayCount]
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Query failed"
// @Router      /quests/{id}/trend [get]
func (h *Handlers) QuestClaimTrend(c *gin.Context) {
	days, good := daysQuery(c, defaultDays)
	if !good {
		return
	}
	out, err := h.q.QuestClaimTrend(c.Request.Context(), c.Param("id"), days)
	if err != nil {
		serviceError(c, "quest_claim_trend", err)
		return
	}
	rows(c, out)
}

// StoryChapterProgress godoc
// @ID          getStoryChapters
// @Summary     Completions per story chapter
// @Tags        Story
// @Produce     json
// @Param       character  query  string  false  "Restrict to one character"
// @Success     200  {object}  handlers.RowsResponse[domain.ChapterCount]
// @Failure     500  {object}  handlers.ErrorResponse  "Query failed"
// @Router      /story/chapters [get]
func (h *Handlers) StoryChapterProgress(c *gin.Context) {
	out, err := h.q.StoryChapterProgress(c.Request.Context(), c.Query("character"))
	if err != nil {
		serviceError(c, "story_chapter_progress", err)
		return
	}
	rows(c, out)
}

// StoryEndingDistribution godoc
// @ID          getStoryEndings
// @Summary     Completions per ending type
// @Tags        Story
// @Produce     json
// @Param       character  query  string  false  "Restrict to one character"
// @Success     200  {object}  handlers.RowsResponse[domain.TypeCount]
// @Failure     500  {object}  handlers.ErrorResponse  "Query failed"
// @Router      /story/endings [get]
func (h *Handlers) StoryEndingDistribution(c *gin.Context) {
	out, err := h.q.StoryEndingDistribution(c.Request.Context(), c.Query("character"))
	if err != nil {
		serviceError(c, "story_ending_distribution", err)
		return
	}
	rows(c, out)
}

// StoryChoiceDistribution godoc
// @ID          getStoryChoices
// @Summary     Choice counts for one chapter
// @Tags        Story
// @Produce     json
// @Param       character  query  string  true  "Character name"
// @Param       chapter    query  int     true  "Chapter number"  minimum(1)
// @Success     200  {object}  handlers.RowsResponse[domain.TypeCount]
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Query failed"
// @Router      /story/choices [get]
func (h *Handlers) StoryChoiceDistribution(c *gin.Context) {
	chapter, good := intQuery(c, "chapter", 0)
	if !good {
		return
	}
	out, err := h.q.StoryChoiceDistribution(c.Request.Context(), c.Query("character"), chapter)
	if err != nil {
		serviceError(c, "story_choice_distribution", err)
		return
	}
	rows(c, out)
}

// GiftTotals godoc
// @ID          getGiftTotals
// @Summary     Granted quantity and recipients per gift
// @Tags        Gifts
// @Produce     json
// @Success     200  {object}  handlers.RowsResponse[domain.GiftTotal]
// @Failure     500  {object}  handlers.ErrorResponse  "Query failed"
// @Router      /gifts [get]
func (h *Handlers) GiftTotals(c *gin.Context) {
	out, err := h.q.GiftTotals(c.Request.Context())
	if err != nil {
		serviceError(c, "gift_totals", err)
		return
	}
	rows(c, out)
}

// CardTierByCharacter godoc
// @ID          getCardTierByCharacter
// @Summary     Owned cards per character and tier
// @Tags        Cards
// @Produce     json
// @Success     200  {object}  handlers.RowsResponse[domain.CharacterTierCount]
// @Failure     500  {object}  handlers.ErrorResponse  "Query failed"
// @Router      /cards/tiers [get]
func (h *Handlers) CardTierByCharacter(c *gin.Context) {
	out, err := h.q.CardTierByCharacter(c.Request.Context())
	if err != nil {
		serviceError(c, "card_tier_by_character", err)
		return
	}
	rows(c, out)
}
