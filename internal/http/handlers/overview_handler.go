// Overview tab.
//
//   - GET /overview/stats
//   - GET /overview/totals/{messages,user-messages,affinity,tokens,users}
//   - GET /overview/card-tiers
//   - GET /overview/levels
//   - GET /overview/characters/{messages,affinity}
//   - GET /overview/daily-messages?days=
package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
)

// DashboardStats godoc
// @ID          getDashboardStats
// @Summary     Headline numbers
// @Description Totals, card tier distribution and level statistics in one response.
// @Tags        Overview
// @Produce     json
// @Success     200  {object}  domain.DashboardStats
// @Failure     500  {object}  handlers.ErrorResponse  "Query failed"
// @Failure     504  {object}  handlers.ErrorResponse  "Query timed out"
// @Router      /overview/stats [get]
func (h *Handlers) DashboardStats(c *gin.Context) {
	st, err := h.r.DashboardStats(c.Request.Context())
	if err != nil {
		serviceError(c, "dashboard_stats", err)
		return
	}
	ok(c, st)
}

// totalHandler adapts a counting query to a {"value": n} endpoint.
func (h *Handlers) totalHandler(op string, fn func(context.Context) (int64, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		n, err := fn(c.Request.Context())
		if err != nil {
			serviceError(c, op, err)
			return
		}
		scalar(c, n)
	}
}

// TotalMessages godoc
// @ID          getTotalMessages
// @Summary     Conversation log size
// @Tags        Overview
// @Produce     json
// @Success     200  {object}  handlers.ScalarResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Query failed"
// @Router      /overview/totals/messages [get]
func (h *Handlers) TotalMessages(c *gin.Context) {
	h.totalHandler("total_messages", h.q.TotalMessages)(c)
}

// TotalUserMessages godoc
// @ID          getTotalUserMessages
// @Summary     Messages sent by users
// @Tags        Overview
// @Produce     json
// @Success     200  {object}  handlers.ScalarResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Query failed"
// @Router      /overview/totals/user-messages [get]
func (h *Handlers) TotalUserMessages(c *gin.Context) {
	h.totalHandler("total_user_messages", h.q.TotalUserMessages)(c)
}

// TotalAffinity godoc
// @ID          getTotalAffinity
// @Summary     Sum of all affinity scores
// @Tags        Overview
// @Produce     json
// @Success     200  {object}  handlers.ScalarResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Query failed"
// @Router      /overview/totals/affinity [get]
func (h *Handlers) TotalAffinity(c *gin.Context) {
	h.totalHandler("total_affinity", h.q.TotalAffinity)(c)
}

// TotalTokens godoc
// @ID          getTotalTokens
// @Summary     Tokens consumed
// @Description Never fails; a store error is logged and reported as 0.
// @Tags        Overview
// @Produce     json
// @Success     200  {object}  handlers.ScalarResponse
// @Router      /overview/totals/tokens [get]
func (h *Handlers) TotalTokens(c *gin.Context) {
	scalar(c, h.q.TotalTokens(c.Request.Context()))
}

// TotalUsers godoc
// @ID          getTotalUsers
// @Summary     Users with at least one affinity row
// @Tags        Overview
// @Produce     json
// @Success     200  {object}  handlers.ScalarResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Query failed"
// @Router      /overview/totals/users [get]
func (h *Handlers) TotalUsers(c *gin.Context) {
	h.totalHandler("total_users", h.q.TotalUsers)(c)
}

// CardTierDistribution godoc
// @ID          getCardTierDistribution
// @Summary     Owned cards per rarity tier
// @Tags        Overview
// @Produce     json
// @Success     200  {object}  handlers.RowsResponse[domain.TierCount]
// @Failure     500  {object}  handlers.ErrorResponse  "Query failed"
// @Router      /overview/card-tiers [get]
func (h *Handlers) CardTierDistribution(c *gin.Context) {
	out, err := h.q.CardTierDistribution(c.Request.Context())
	if err != nil {
		serviceError(c, "card_tier_distribution", err)
		return
	}
	rows(c, out)
}

// LevelStatistics godoc
// @ID          getLevelStatistics
// @Summary     Users per affinity level
// @Description Always five rows, Rookie to Gold, including empty levels.
// @Tags        Overview
// @Produce     json
// @Success     200  {object}  handlers.RowsResponse[domain.LevelStat]
// @Failure     500  {object}  handlers.ErrorResponse  "Query failed"
// @Router      /overview/levels [get]
func (h *Handlers) LevelStatistics(c *gin.Context) {
	out, err := h.q.LevelStatistics(c.Request.Context())
	if err != nil {
		serviceError(c, "level_statistics", err)
		return
	}
	rows(c, out)
}

// CharacterMessageCounts godoc
// @ID          getCharacterMessageCounts
// @Summary     User messages per character
// @Tags        Overview
// @Produce     json
// @Success     200  {object}  handlers.RowsResponse[domain.CharacterCount]
// @Failure     500  {object}  handlers.ErrorResponse  "Query failed"
// @Router      /overview/characters/messages [get]
func (h *Handlers) CharacterMessageCounts(c *gin.Context) {
	out, err := h.q.CharacterMessageCounts(c.Request.Context())
	if err != nil {
		serviceError(c, "character_message_counts", err)
		return
	}
	rows(c, out)
}

// CharacterAffinityTotals godoc
// @ID          getCharacterAffinityTotals
// @Summary     Affinity totals per character
// @Tags        Overview
// @Produce     json
// @Success     200  {object}  handlers.RowsResponse[domain.CharacterAffinity]
// @Failure     500  {object}  handlers.ErrorResponse  "Query failed"
// @Router      /overview/characters/affinity [get]
func (h *Handlers) CharacterAffinityTotals(c *gin.Context) {
	out, err := h.q.CharacterAffinityTotals(c.Request.Context())
	if err != nil {
		serviceError(c, "character_affinity_totals", err)
		return
	}
	rows(c, out)
}

// DailyMessageCounts godoc
// @ID          getDailyMessageCounts
// @Summary     User messages per day
// @Tags        Overview
// @Produce     json
// @Param       days  query  int  false  "Trailing window in days"  minimum(1) maximum(365) default(7)
// @Success     200  {object}  handlers.RowsResponse[domain.DayCount]
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Query failed"
// @Router      /overview/daily-messages [get]
func (h *Handlers) DailyMessageCounts(c *gin.Context) {
	days, good := daysQuery(c, defaultDays)
	if !good {
		return
	}
	out, err := h.q.DailyMessageCounts(c.Request.Context(), days)
	if err != nil {
		serviceError(c, "daily_message_counts", err)
		return
	}
	rows(c, out)
}
