package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tbourn/companion-insights/internal/domain"
	"github.com/tbourn/companion-insights/internal/services"
)

func newRetentionCmd(a *app) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "retention",
		Short: "N-day retention (1, 7 and 30 days unless --days is set)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var rows []domain.Retention
			if days > 0 {
				r, err := a.query.Retention(ctx, days)
				if err != nil {
					return err
				}
				rows = []domain.Retention{r}
			} else {
				var err error
				if rows, err = a.query.RetentionTrend(ctx); err != nil {
					return err
				}
			}
			s := section{title: "Retention", headers: []string{"Days", "Cohort", "Retained", "Rate"}}
			for _, r := range rows {
				s.rows = append(s.rows, []string{strconv.Itoa(r.Days), num(r.Base), num(r.Retained), pct(r.Percent)})
			}
			return a.emit(rows, s)
		},
	}
	cmd.Flags().IntVar(&days, "days", 0, "single retention window")
	return cmd
}

func newSpamCmd(a *app) *cobra.Command {
	var (
		userID string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "spam",
		Short: "Flagged messages by reason, plus the latest ones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			reasons, err := a.query.SpamByReason(ctx)
			if err != nil {
				return err
			}
			latest, err := a.query.SpamMessages(ctx, userID, limit)
			if err != nil {
				return err
			}

			out := struct {
				Reasons []domain.TypeCount   `json:"reasons"`
				Latest  []domain.SpamMessage `json:"latest"`
			}{reasons, latest}

			byReason := section{title: "By reason", headers: []string{"Reason", "Messages"}}
			for _, r := range reasons {
				byReason.rows = append(byReason.rows, []string{r.Label, num(r.Count)})
			}
			recent := section{title: "Latest", headers: []string{"When", "User", "Character", "Reason", "Message"}}
			for _, m := range latest {
				recent.rows = append(recent.rows, []string{
					m.CreatedAt.Format("2006-01-02 15:04"), m.UserID, m.CharacterName, m.Reason, clip(m.Message, 60),
				})
			}
			return a.emit(out, byReason, recent)
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "only this user's messages")
	cmd.Flags().IntVar(&limit, "limit", services.DefaultLimit, "latest messages to print")
	return cmd
}

// clip shortens s to max runes for table cells.
func clip(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
