// Rankings tab.
//
//   - GET /rankings/{affinity,messages,cards,streaks}?limit=
//   - GET /rankings/characters/:character
//   - GET /rankings/total
//   - GET /rankings/daily-gain?character=
package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/companion-insights/internal/domain"
)

// topHandler adapts a limited leaderboard query.
func (h *Handlers) topHandler(op string, fn func(context.Context, int) ([]domain.UserScore, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, good := limitQuery(c)
		if !good {
			return
		}
		out, err := fn(c.Request.Context(), limit)
		if err != nil {
			serviceError(c, op, err)
			return
		}
		rows(c, out)
	}
}

// AffinityRanking godoc
// @ID          getAffinityRanking
// @Summary     Top users by affinity
// @Description Sums across characters unless character is given.
// @Tags        Rankings
// @Produce     json
// @Param       character  query  string  false  "Restrict to one character"
// @Param       limit      query  int     false  "Rows"  minimum(1) maximum(1000) default(20)
// @Success     200  {object}  handlers.RowsResponse[domain.UserScore]
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Query failed"
// @Router      /rankings/affinity [get]
func (h *Handlers) AffinityRanking(c *gin.Context) {
	character := c.Query("character")
	h.topHandler("affinity_ranking", func(ctx context.Context, limit int) ([]domain.UserScore, error) {
		return h.q.AffinityRanking(ctx, character, limit)
	})(c)
}

// MessageRanking godoc
// @ID          getMessageRanking
// @Summary     Top users by messages sent
// @Tags        Rankings
// @Produce     json
// @Param       limit  query  int  false  "Rows"  minimum(1) maximum(1000) default(20)
// @Success     200  {object}  handlers.RowsResponse[domain.UserScore]
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Query failed"
// @Router      /rankings/messages [get]
func (h *Handlers) MessageRanking(c *gin.Context) {
	h.topHandler("message_ranking", h.q.MessageRanking)(c)
}

// CardRanking godoc
// @ID          getCardRanking
// @Summary     Top users by cards owned
// @Tags        Rankings
// @Produce     json
// @Param       limit  query  int  false  "Rows"  minimum(1) maximum(1000) default(20)
// @Success     200  {object}  handlers.RowsResponse[domain.UserScore]
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Query failed"
// @Router      /rankings/cards [get]
func (h *Handlers) CardRanking(c *gin.Context) {
	h.topHandler("card_ranking", h.q.CardRanking)(c)
}

// StreakRanking godoc
// @ID          getStreakRanking
// @Summary     Top users by current login streak
// @Tags        Rankings
// @Produce     json
// @Param       limit  query  int  false  "Rows"  minimum(1) maximum(1000) default(20)
// @Success     200  {object}  handlers.RowsResponse[domain.UserScore]
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Query failed"
// @Router      /rankings/streaks [get]
func (h *Handlers) StreakRanking(c *gin.Context) {
	h.topHandler("streak_ranking", h.q.StreakRanking)(c)
}

// CharacterRankingFull godoc
// @ID          getCharacterRanking
// @Summary     Full ranking for one character
// @Description Every user with affinity for the character, with their message count to it.
// @Tags        Rankings
// @Produce     json
// @Param       character  path  string  true  "Character name"
// @Success     200  {object}  handlers.RowsResponse[domain.RankingEntry]
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Query failed"
// @Router      /rankings/characters/{character} [get]
func (h *Handlers) CharacterRankingFull(c *gin.Context) {
	out, err := h.q.CharacterRankingFull(c.Request.Context(), c.Param("character"))
	if err != nil {
		serviceError(c, "character_ranking_full", err)
		return
	}
	rows(c, out)
}

// TotalRankingFull godoc
// @ID          getTotalRanking
// @Summary     Full ranking across characters
// @Description Users with affinity or messages; either side may be zero.
// @Tags        Rankings
// @Produce     json
// @Success     200  {object}  handlers.RowsResponse[domain.RankingEntry]
// @Failure     500  {object}  handlers.ErrorResponse  "Query failed"
// @Router      /rankings/total [get]
func (h *Handlers) TotalRankingFull(c *gin.Context) {
	out, err := h.q.TotalRankingFull(c.Request.Context())
	if err != nil {
		serviceError(c, "total_ranking_full", err)
		return
	}
	rows(c, out)
}

// DailyAffinityGain godoc
// @ID          getDailyAffinityGain
// @Summary     Today's affinity gain per user
// @Tags        Rankings
// @Produce     json
// @Param       character  query  string  false  "Restrict to one character"
// @Success     200  {object}  handlers.RowsResponse[domain.AffinityGain]
// @Failure     500  {object}  handlers.ErrorResponse  "Query failed"
// @Router      /rankings/daily-gain [get]
func (h *Handlers) DailyAffinityGain(c *gin.Context) {
	out, err := h.q.DailyAffinityGain(c.Request.Context(), c.Query("character"))
	if err != nil {
		serviceError(c, "daily_affinity_gain", err)
		return
	}
	rows(c, out)
}
