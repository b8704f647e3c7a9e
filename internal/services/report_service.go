// Package services – ReportService
//
// ReportService assembles named bundles out of several repo queries. It adds
// no computation of its own beyond sequencing and packaging. Bundles are not
// snapshot-consistent: each section is read by its own query.
package services

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tbourn/companion-insights/internal/domain"
	"github.com/tbourn/companion-insights/internal/repo"
)

// ReportService builds the composite dashboard reports.
type ReportService struct {
	// DB is the GORM handle used for every query.
	DB *gorm.DB
	// Zones maps operations to their time-zone policy.
	Zones *Zones
	// QuestIDs are the quests of the completion panel, in display order.
	QuestIDs []string
	// Now is the clock; tests pin it.
	Now func() time.Time
	// Timeout bounds each bundle as a whole.
	Timeout time.Duration
}

// NewReportService constructs a ReportService on the wall clock.
func NewReportService(db *gorm.DB, zones *Zones, questIDs []string, timeout time.Duration) *ReportService {
	return &ReportService{DB: db, Zones: zones, QuestIDs: questIDs, Now: time.Now, Timeout: timeout}
}

func (s *ReportService) ctx(parent context.Context) (context.Context, context.CancelFunc) {
	if s.Timeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, s.Timeout)
}

func (s *ReportService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// UserSummary runs the per-user lookups for userID in a fixed order. The
// first failing section aborts the bundle with an error naming it.
func (s *ReportService) UserSummary(ctx context.Context, userID string) (*domain.UserSummary, error) {
	userID, err := checkUser(userID)
	if err != nil {
		return nil, err
	}
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	tr := otel.Tracer("services/ReportService")
	ctx, span := tr.Start(ctx, "UserSummary",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	now := s.now()
	week := s.Zones.For(OpUserWeekWindow)
	out := &domain.UserSummary{UserID: userID}

	steps := []struct {
		section string
		run     func() error
	}{
		{"messages", func() (err error) {
			out.Messages, err = repo.UserMessageCounts(ctx, s.DB, userID)
			return
		}},
		{"affinity", func() (err error) {
			out.Affinity, err = repo.UserAffinity(ctx, s.DB, userID)
			return
		}},
		{"total_affinity", func() (err error) {
			out.TotalAffinity, err = repo.UserTotalAffinity(ctx, s.DB, userID)
			out.Level = repo.LevelOf(out.TotalAffinity)
			return
		}},
		{"card_count", func() (err error) {
			out.CardCount, err = repo.UserCardCount(ctx, s.DB, userID)
			return
		}},
		{"card_tiers", func() (err error) {
			out.CardTiers, err = repo.UserCardTiers(ctx, s.DB, userID)
			return
		}},
		{"cards", func() (err error) {
			out.Cards, err = repo.UserCards(ctx, s.DB, userID)
			return
		}},
		{"streak", func() (err error) {
			out.Streak, err = repo.UserStreak(ctx, s.DB, userID)
			return
		}},
		{"gifts", func() (err error) {
			out.Gifts, err = repo.UserGifts(ctx, s.DB, userID)
			return
		}},
		{"keywords", func() (err error) {
			out.Keywords, err = repo.UserKeywords(ctx, s.DB, userID)
			return
		}},
		{"nicknames", func() (err error) {
			out.Nicknames, err = repo.UserNicknames(ctx, s.DB, userID)
			return
		}},
		{"episodes", func() (err error) {
			out.Episodes, err = repo.UserEpisodes(ctx, s.DB, userID)
			return
		}},
		{"story", func() (err error) {
			out.Story, err = repo.UserStoryProgress(ctx, s.DB, userID)
			return
		}},
		{"week_messages", func() (err error) {
			out.WeekMessages, err = repo.UserWeekMessages(ctx, s.DB, now, week, userID)
			return
		}},
		{"week_daily", func() (err error) {
			out.WeekDaily, err = repo.UserWeekDaily(ctx, s.DB, now, week, userID)
			return
		}},
	}
	for _, st := range steps {
		if err := st.run(); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, st.section)
			return nil, fmt.Errorf("user summary %s: %w", st.section, err)
		}
		span.AddEvent(st.section)
	}
	return out, nil
}

// DashboardStats returns the overview headline numbers. Level percentages
// use the number of users with an affinity row as denominator.
func (s *ReportService) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	ctx, span := otel.Tracer("services/ReportService").Start(ctx, "DashboardStats")
	defer span.End()

	var (
		out domain.DashboardStats
		err error
	)
	if out.TotalMessages, err = repo.TotalMessages(ctx, s.DB); err != nil {
		return nil, err
	}
	if out.TotalAffinity, err = repo.TotalAffinity(ctx, s.DB); err != nil {
		return nil, err
	}
	out.TotalTokens = repo.TotalTokens(ctx, s.DB)
	if out.CardTiers, err = repo.CardTierDistribution(ctx, s.DB); err != nil {
		return nil, err
	}
	if out.TotalUsers, err = repo.TotalUsers(ctx, s.DB); err != nil {
		return nil, err
	}
	if out.Levels, err = repo.LevelStatistics(ctx, s.DB, out.TotalUsers); err != nil {
		return nil, err
	}
	return &out, nil
}

// QuestCompletionAll returns today's completion rate for each configured
// quest, in configured order.
func (s *ReportService) QuestCompletionAll(ctx context.Context) ([]domain.QuestCompletion, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	ctx, span := otel.Tracer("services/ReportService").Start(ctx, "QuestCompletionAll",
		trace.WithAttributes(attribute.Int("quests", len(s.QuestIDs))),
	)
	defer span.End()

	now := s.now()
	loc := s.Zones.For(OpQuestCompletion)
	out := make([]domain.QuestCompletion, 0, len(s.QuestIDs))
	for _, id := range s.QuestIDs {
		qc, err := repo.QuestCompletionRate(ctx, s.DB, now, loc, id)
		if err != nil {
			return nil, err
		}
		out = append(out, qc)
	}
	return out, nil
}
