// Operations, per-user and spam review tabs.
//
//   - GET /ops/active-users?days=&relative=
//   - GET /ops/retention?days=
//   - GET /ops/retention/trend
//   - GET /ops/tokens
//   - GET /ops/streaks
//   - GET /users/:id/summary
//   - GET /spam/messages?user_id=&limit=
//   - GET /spam/reasons
//   - GET /spam/users?limit=
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/tbourn/companion-insights/internal/sysutil"
)

// ActiveUserTrend godoc
// @ID          getActiveUserTrend
// @Summary     Daily active users
// @Description Every day of the window is present. With relative=true rows carry day 1..N instead of dates.
// @Tags        Operations
// @Produce     json
// @Param       days      query  int   false  "Trailing window in days"  minimum(1) maximum(365) default(7)
// @Param       relative  query  bool  false  "Number days 1..N instead of dates"
// @Success     200  {object}  handlers.RowsResponse[domain.DayCount]
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Query failed"
// @Router      /ops/active-users [get]
func (h *Handlers) ActiveUserTrend(c *gin.Context) {
	days, good := daysQuery(c, defaultDays)
	if !good {
		return
	}
	relative := sysutil.IsTruthy(c.Query("relative"))
	out, err := h.q.ActiveUserTrend(c.Request.Context(), days, relative)
	if err != nil {
		serviceError(c, "active_user_trend", err)
		return
	}
	rows(c, out)
}

// Retention godoc
// @ID          getRetention
// @Summary     N-day retention
// @Description Share of users active N days ago who are also active today.
// @Tags        Operations
// @Produce     json
// @Param       days  query  int  false  "N"  minimum(1) maximum(365) default(7)
// @Success     200  {object}  domain.Retention
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Query failed"
// @Router      /ops/retention [get]
func (h *Handlers) Retention(c *gin.Context) {
	n, good := daysQuery(c, defaultRetention)
	if !good {
		return
	}
	out, err := h.q.Retention(c.Request.Context(), n)
	if err != nil {
		serviceError(c, "retention", err)
		return
	}
	ok(c, out)
}

// RetentionTrend godoc
// @ID          getRetentionTrend
// @Summary     1-, 7- and 30-day retention
// @Tags        Operations
// @Produce     json
// @Success     200  {object}  handlers.RowsResponse[domain.Retention]
// @Failure     500  {object}  handlers.ErrorResponse  "Query failed"
// @Router      /ops/retention/trend [get]
func (h *Handlers) RetentionTrend(c *gin.Context) {
	out, err := h.q.RetentionTrend(c.Request.Context())
	if err != nil {
		serviceError(c, "retention_trend", err)
		return
	}
	rows(c, out)
}

// TokenUsageByCharacter godoc
// @ID          getTokenUsage
// @Summary     Tokens consumed per character
// @Tags        Operations
// @Produce     json
// @Success     200  {object}  handlers.RowsResponse[domain.CharacterCount]
// @Failure     500  {object}  handlers.ErrorResponse  "Query failed"
// @Router      /ops/tokens [get]
func (h *Handlers) TokenUsageByCharacter(c *gin.Context) {
	out, err := h.q.TokenUsageByCharacter(c.Request.Context())
	if err != nil {
		serviceError(c, "token_usage_by_character", err)
		return
	}
	rows(c, out)
}

// StreakDistribution godoc
// @ID          getStreakDistribution
// @Summary     Users per login streak length
// @Tags        Operations
// @Produce     json
// @Success     200  {object}  handlers.RowsResponse[domain.StreakCount]
// @Failure     500  {object}  handlers.ErrorResponse  "Query failed"
// @Router      /ops/streaks [get]
func (h *Handlers) StreakDistribution(c *gin.Context) {
	out, err := h.q.StreakDistribution(c.Request.Context())
	if err != nil {
		serviceError(c, "streak_distribution", err)
		return
	}
	rows(c, out)
}

// UserSummary godoc
// @ID          getUserSummary
// @Summary     Everything the dashboard knows about one user
// @Description Sections are read one after another; the first failure aborts the bundle.
// @Tags        Users
// @Produce     json
// @Param       id  path  string  true  "User ID"
// @Success     200  {object}  domain.UserSummary
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Query failed"
// @Failure     504  {object}  handlers.ErrorResponse  "Query timed out"
// @Router      /users/{id}/summary [get]
func (h *Handlers) UserSummary(c *gin.Context) {
	out, err := h.r.UserSummary(c.Request.Context(), c.Param("id"))
	if err != nil {
		serviceError(c, "user_summary", err)
		return
	}
	ok(c, out)
}

// SpamMessages godoc
// @ID          getSpamMessages
// @Summary     Most recent flagged messages
// @Tags        Spam
// @Produce     json
// @Param       user_id  query  string  false  "Restrict to one user"
// @Param       limit    query  int     false  "Rows"  minimum(1) maximum(1000) default(20)
// @Success     200  {object}  handlers.RowsResponse[domain.SpamMessage]
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Query failed"
// @Router      /spam/messages [get]
func (h *Handlers) SpamMessages(c *gin.Context) {
	limit, good := limitQuery(c)
	if !good {
		return
	}
	out, err := h.q.SpamMessages(c.Request.Context(), c.Query("user_id"), limit)
	if err != nil {
		serviceError(c, "spam_messages", err)
		return
	}
	rows(c, out)
}

// SpamByReason godoc
// @ID          getSpamReasons
// @Summary     Flagged messages per reason
// @Tags        Spam
// @Produce     json
// @Success     200  {object}  handlers.RowsResponse[domain.TypeCount]
// @Failure     500  {object}  handlers.ErrorResponse  "Query failed"
// @Router      /spam/reasons [get]
func (h *Handlers) SpamByReason(c *gin.Context) {
	out, err := h.q.SpamByReason(c.Request.Context())
	if err != nil {
		serviceError(c, "spam_by_reason", err)
		return
	}
	rows(c, out)
}

// SpamByUser godoc
// @ID          getSpamUsers
// @Summary     Users with the most flagged messages
// @Tags        Spam
// @Produce     json
// @Param       limit  query  int  false  "Rows"  minimum(1) maximum(1000) default(20)
// @Success     200  {object}  handlers.RowsResponse[domain.UserScore]
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Query failed"
// @Router      /spam/users [get]
func (h *Handlers) SpamByUser(c *gin.Context) {
	h.topHandler("spam_by_user", h.q.SpamByUser)(c)
}
