package main

import (
	"github.com/spf13/cobra"

	"github.com/tbourn/companion-insights/internal/domain"
)

func newQuestsCmd(a *app) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "quests [quest-id]",
		Short: "Today's completion of the tracked quests, or one quest's claim trend",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if len(args) == 1 {
				trend, err := a.query.QuestClaimTrend(ctx, args[0], days)
				if err != nil {
					return err
				}
				s := section{title: "Claims of " + args[0], headers: []string{"Date", "Claims"}}
				for _, d := range trend {
					s.rows = append(s.rows, []string{d.Date, num(d.Count)})
				}
				return a.emit(trend, s)
			}

			rows, err := a.report.QuestCompletionAll(ctx)
			if err != nil {
				return err
			}
			return a.emit(rows, completionSection(rows))
		},
	}
	cmd.Flags().IntVar(&days, "days", 7, "trend window when a quest id is given")
	return cmd
}

func completionSection(rows []domain.QuestCompletion) section {
	s := section{title: "Quest completion today", headers: []string{"Quest", "Completed", "Users", "Rate"}}
	for _, q := range rows {
		s.rows = append(s.rows, []string{q.QuestID, num(q.Completed), num(q.Total), pct(q.Percent)})
	}
	return s
}
