package main

import (
	"strconv"

	"github.com/spf13/cobra"
)

func newUserCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "user <user-id>",
		Short: "Everything the dashboard knows about one user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sum, err := a.report.UserSummary(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			streak := "-"
			if sum.Streak.Found {
				streak = strconv.Itoa(sum.Streak.CurrentStreak) + " (last " + sum.Streak.LastLoginDate.Format("2006-01-02") + ")"
			}
			head := section{
				title:   "User " + sum.UserID,
				headers: []string{"Field", "Value"},
				rows: [][]string{
					{"Level", sum.Level},
					{"Total affinity", num(sum.TotalAffinity)},
					{"Cards", num(sum.CardCount)},
					{"Login streak", streak},
				},
			}

			sent := map[string]int64{}
			for _, m := range sum.Messages {
				sent[m.CharacterName] = m.Count
			}
			chars := section{title: "Characters", headers: []string{"Character", "Affinity", "Messages", "Today"}}
			for _, af := range sum.Affinity {
				chars.rows = append(chars.rows, []string{
					af.CharacterName, strconv.Itoa(af.EmotionScore), num(sent[af.CharacterName]), strconv.Itoa(af.DailyMessageCount),
				})
			}

			cards := section{title: "Cards", headers: []string{"Card", "Character", "Tier"}}
			for _, c := range sum.Cards {
				cards.rows = append(cards.rows, []string{c.CardID, c.CharacterName, c.Tier})
			}

			week := section{title: "Last 7 days", headers: []string{"Date", "Messages"}}
			for _, d := range sum.WeekDaily {
				week.rows = append(week.rows, []string{d.Date, num(d.Count)})
			}
			return a.emit(sum, head, chars, cards, week)
		},
	}
}
