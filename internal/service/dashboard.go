package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/Priyank118/fdanalytics/internal/analytics"
	"github.com/Priyank118/fdanalytics/internal/model"
	"github.com/Priyank118/fdanalytics/internal/repository"
)

// dashboardService recomputes the aggregate view from the full match history
// on every call. Nothing here is cached or persisted.
type dashboardService struct {
	matches repository.MatchRepository
	teams   repository.TeamRepository
	log     zerolog.Logger
}

func NewDashboardService(matches repository.MatchRepository, teams repository.TeamRepository, logger zerolog.Logger) DashboardService {
	l := logger.With().Str("module", "service").Str("component", "dashboard").Logger()
	return &dashboardService{matches: matches, teams: teams, log: l}
}

func (s *dashboardService) GetDashboardStats(ctx context.Context, teamID string) (model.DashboardStats, error) {
	start := time.Now()
	if teamID == "" {
		return model.DashboardStats{}, newInvalidInput([]FieldError{{Field: "team_id", Message: "must not be empty"}})
	}

	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return model.DashboardStats{}, err
	}

	history, err := s.matches.ListAllByTeam(ctx, teamID)
	if err != nil {
		s.log.Error().Err(err).Str("team_id", teamID).Msg("load match history failed")
		return model.DashboardStats{}, err
	}

	stats, ok := analytics.BuildDashboardStats(history, &team)
	if !ok {
		return model.DashboardStats{}, ErrNoStats
	}

	s.log.Debug().
		Dur("took", time.Since(start)).
		Str("team_id", teamID).
		Int("matches", stats.TotalMatches).
		Msg("dashboard computed")
	return stats, nil
}
