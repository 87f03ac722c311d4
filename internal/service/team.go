package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Priyank118/fdanalytics/internal/model"
	"github.com/Priyank118/fdanalytics/internal/repository"
)

// teamService holds squad use-case logic: validation + orchestration, no transport / SQL details.
// Roster writes span teams and players, so they run inside a transaction.
type teamService struct {
	repo repository.TeamRepository
	tx   repository.TxManager
	log  zerolog.Logger
}

func NewTeamService(repo repository.TeamRepository, tx repository.TxManager, logger zerolog.Logger) TeamService {
	l := logger.With().Str("module", "service").Str("component", "team").Logger()
	return &teamService{repo: repo, tx: tx, log: l}
}

func (s *teamService) CreateTeam(ctx context.Context, name string, players []model.Player) (model.Team, error) {
	start := time.Now()

	name, ferrs := validateTeamName(name)
	roster, rosterErrs := validateRoster(players)
	ferrs = append(ferrs, rosterErrs...)
	if err := newInvalidInput(ferrs); err != nil {
		s.log.Debug().Str("name_raw", name).Interface("field_errors", ferrs).Msg("team validation failed")
		return model.Team{}, err
	}

	for i := range roster {
		if roster[i].ID == "" {
			roster[i].ID = uuid.NewString()
		}
	}

	var out model.Team
	err := s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		var txErr error
		out, txErr = s.repo.Create(txCtx, model.Team{
			ID:      uuid.NewString(),
			Name:    name,
			Players: roster,
		})
		return txErr
	})
	if err != nil {
		// Repository surfaces domain-level errors already, do not wrap.
		s.log.Error().Err(err).Str("name", name).Msg("create team failed")
		return model.Team{}, err
	}
	s.log.Info().Dur("took", time.Since(start)).Str("team_id", out.ID).Int("roster_size", len(out.Players)).Msg("team created")
	return out, nil
}

func (s *teamService) GetTeam(ctx context.Context, id string) (model.Team, error) {
	if id == "" {
		return model.Team{}, newInvalidInput([]FieldError{{Field: "id", Message: "must not be empty"}})
	}
	return s.repo.GetByID(ctx, id)
}

func (s *teamService) ReplaceRoster(ctx context.Context, teamID string, players []model.Player) (model.Team, error) {
	var ferrs []FieldError
	if teamID == "" {
		ferrs = append(ferrs, FieldError{Field: "team_id", Message: "must not be empty"})
	}
	roster, rosterErrs := validateRoster(players)
	ferrs = append(ferrs, rosterErrs...)
	if err := newInvalidInput(ferrs); err != nil {
		return model.Team{}, err
	}

	for i := range roster {
		if roster[i].ID == "" {
			roster[i].ID = uuid.NewString()
		}
	}

	var out model.Team
	err := s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		var txErr error
		out, txErr = s.repo.ReplaceRoster(txCtx, teamID, roster)
		return txErr
	})
	if err != nil {
		s.log.Error().Err(err).Str("team_id", teamID).Msg("replace roster failed")
		return model.Team{}, err
	}
	s.log.Info().Str("team_id", teamID).Int("roster_size", len(out.Players)).Msg("roster replaced")
	return out, nil
}
