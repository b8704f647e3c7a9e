package main

import (
	"github.com/spf13/cobra"

	"github.com/tbourn/companion-insights/internal/domain"
)

func newOverviewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Headline totals, card tiers and level distribution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			stats, err := a.report.DashboardStats(ctx)
			if err != nil {
				return err
			}
			chars, err := a.query.CharacterMessageCounts(ctx)
			if err != nil {
				return err
			}

			out := struct {
				*domain.DashboardStats
				Characters []domain.CharacterCount `json:"characters"`
			}{stats, chars}

			totals := section{
				title:   "Totals",
				headers: []string{"Metric", "Value"},
				rows: [][]string{
					{"Users", num(stats.TotalUsers)},
					{"Messages", num(stats.TotalMessages)},
					{"Affinity", num(stats.TotalAffinity)},
					{"Tokens", num(stats.TotalTokens)},
				},
			}
			tiers := section{title: "Card tiers", headers: []string{"Tier", "Cards", "Share"}}
			for _, t := range stats.CardTiers {
				tiers.rows = append(tiers.rows, []string{t.Tier, num(t.Count), pct(t.Percent)})
			}
			levels := section{title: "Levels", headers: []string{"Level", "Users", "Share"}}
			for _, l := range stats.Levels {
				levels.rows = append(levels.rows, []string{l.Level, num(l.Count), pct(l.Percent)})
			}
			perChar := section{title: "Messages per character", headers: []string{"Character", "Messages"}}
			for _, c := range chars {
				perChar.rows = append(perChar.rows, []string{c.CharacterName, num(c.Count)})
			}
			return a.emit(out, totals, tiers, levels, perChar)
		},
	}
}
