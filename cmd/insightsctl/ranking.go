package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tbourn/companion-insights/internal/domain"
	"github.com/tbourn/companion-insights/internal/services"
)

func newRankingCmd(a *app) *cobra.Command {
	var (
		by        string
		character string
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "ranking",
		Short: "User leaderboards",
		Long: `Print a leaderboard. --by selects it:

  affinity   affinity score (for one --character, or all characters summed)
  messages   user messages sent
  cards      cards collected
  streaks    current login streak
  total      summed affinity with message counts, every user`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if by == "total" {
				var (
					rows []domain.RankingEntry
					err  error
				)
				if character != "" {
					rows, err = a.query.CharacterRankingFull(ctx, character)
				} else {
					rows, err = a.query.TotalRankingFull(ctx)
				}
				if err != nil {
					return err
				}
				s := section{title: "Ranking", headers: []string{"#", "User", "Affinity", "Messages"}}
				for i, r := range rows {
					s.rows = append(s.rows, []string{strconv.Itoa(i + 1), r.UserID, num(r.TotalAffinity), num(r.MessageCount)})
				}
				return a.emit(rows, s)
			}

			fetch, err := scoreBoard(a.query, by, character)
			if err != nil {
				return err
			}
			rows, err := fetch(ctx, limit)
			if err != nil {
				return err
			}
			s := section{title: "Top by " + by, headers: []string{"#", "User", "Score"}}
			for i, r := range rows {
				s.rows = append(s.rows, []string{strconv.Itoa(i + 1), r.UserID, num(r.Score)})
			}
			return a.emit(rows, s)
		},
	}

	cmd.Flags().StringVar(&by, "by", "affinity", "affinity|messages|cards|streaks|total")
	cmd.Flags().StringVar(&character, "character", "", "restrict to one character")
	cmd.Flags().IntVar(&limit, "limit", services.DefaultLimit, "rows to print")
	return cmd
}

// scoreBoard resolves --by to a limited ranking query.
func scoreBoard(q *services.QueryService, by, character string) (func(context.Context, int) ([]domain.UserScore, error), error) {
	switch by {
	case "affinity":
		return func(ctx context.Context, limit int) ([]domain.UserScore, error) {
			return q.AffinityRanking(ctx, character, limit)
		}, nil
	case "messages":
		return q.MessageRanking, nil
	case "cards":
		return q.CardRanking, nil
	case "streaks":
		return q.StreakRanking, nil
	default:
		return nil, fmt.Errorf("unknown ranking %q", by)
	}
}
