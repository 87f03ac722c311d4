package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Priyank118/fdanalytics/internal/analytics"
	"github.com/Priyank118/fdanalytics/internal/model"
	"github.com/Priyank118/fdanalytics/internal/repository"
)

// matchService records matches. Insight generation happens exactly once, at
// save time; a stored match is immutable afterwards.
type matchService struct {
	matches repository.MatchRepository
	teams   repository.TeamRepository
	log     zerolog.Logger
}

func NewMatchService(matches repository.MatchRepository, teams repository.TeamRepository, logger zerolog.Logger) MatchService {
	l := logger.With().Str("module", "service").Str("component", "match").Logger()
	return &matchService{matches: matches, teams: teams, log: l}
}

func (s *matchService) SaveMatch(ctx context.Context, teamID string, in model.MatchSummary) (model.MatchSummary, error) {
	start := time.Now()

	var ferrs []FieldError
	if teamID == "" {
		ferrs = append(ferrs, FieldError{Field: "team_id", Message: "must not be empty"})
	}
	ferrs = append(ferrs, validateMatchInput(in)...)
	if err := newInvalidInput(ferrs); err != nil {
		s.log.Debug().Interface("field_errors", ferrs).Msg("match validation failed")
		return model.MatchSummary{}, err
	}

	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		s.log.Error().Err(err).Str("team_id", teamID).Msg("resolve team failed")
		return model.MatchSummary{}, err
	}

	m := in
	m.ID = uuid.NewString()
	m.TeamID = team.ID
	m.TeamName = team.Name
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}

	// Scoreboard extraction sometimes misses the team totals; the player
	// lines are the source of truth then.
	if m.TotalTeamKills == 0 && m.TotalTeamDamage == 0 {
		for _, p := range m.Players {
			m.TotalTeamKills += p.Kills
			m.TotalTeamDamage += p.Damage
		}
	}

	for i := range m.Players {
		role := rosterRole(team, m.Players[i].Name)
		m.Players[i].Name = strings.TrimSpace(m.Players[i].Name)
		m.Players[i].Role = role
		m.Players[i].Analysis = analytics.PlayerInsights(m.Players[i], role, m.Placement)
	}
	m.Insights = analytics.MatchInsights(m)

	out, err := s.matches.Create(ctx, m)
	if err != nil {
		s.log.Error().Err(err).Str("team_id", teamID).Msg("save match failed")
		return model.MatchSummary{}, err
	}
	s.log.Info().
		Dur("took", time.Since(start)).
		Str("match_id", out.ID).
		Int("placement", out.Placement).
		Int("insights", len(out.Insights)).
		Msg("match saved")
	return out, nil
}

func (s *matchService) GetMatch(ctx context.Context, id string) (model.MatchSummary, error) {
	if id == "" {
		return model.MatchSummary{}, newInvalidInput([]FieldError{{Field: "id", Message: "must not be empty"}})
	}
	return s.matches.GetByID(ctx, id)
}

func (s *matchService) ListMatches(ctx context.Context, teamID string, page repository.Page) (repository.PageResult[model.MatchSummary], error) {
	if teamID == "" {
		return repository.PageResult[model.MatchSummary]{}, newInvalidInput([]FieldError{{Field: "team_id", Message: "must not be empty"}})
	}
	p := normalizePage(page)
	res, err := s.matches.ListByTeam(ctx, teamID, p)
	if err != nil {
		s.log.Error().Err(err).Str("team_id", teamID).Int("limit", p.Limit).Int("offset", p.Offset).Msg("list matches failed")
		return repository.PageResult[model.MatchSummary]{}, err
	}
	return res, nil
}

func (s *matchService) DeleteMatch(ctx context.Context, id string) error {
	if id == "" {
		return newInvalidInput([]FieldError{{Field: "id", Message: "must not be empty"}})
	}
	if err := s.matches.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Str("match_id", id).Msg("delete match failed")
		return err
	}
	s.log.Info().Str("match_id", id).Msg("match deleted")
	return nil
}

// rosterRole resolves a stat line to its roster role by case-insensitive
// name. Players not on the roster play as Flex.
func rosterRole(team model.Team, name string) model.Role {
	for _, p := range team.Players {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p.Role
		}
	}
	return model.RoleFlex
}
