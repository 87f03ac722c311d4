// Package service holds business logic orchestration across repositories and
// handlers. Kept intentionally lean: use-case coordination, validation,
// insight generation and domain error shaping.
package service

import (
	"context"
	"errors"

	"github.com/Priyank118/fdanalytics/internal/model"
	"github.com/Priyank118/fdanalytics/internal/repository"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// ErrNoStats signals that a dashboard cannot be built because the team has no
// recorded matches yet.
var ErrNoStats = errors.New("no stats recorded")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// newInvalidInput builds an aggregated validation error if any field errors are present.
func newInvalidInput(fe []FieldError) error {
	if len(fe) == 0 { // protective case
		return nil
	}
	return &invalidInputError{fields: fe}
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	if v, ok := err.(feIface); ok && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// TeamService defines squad roster use cases.
type TeamService interface {
	CreateTeam(ctx context.Context, name string, players []model.Player) (model.Team, error)
	GetTeam(ctx context.Context, id string) (model.Team, error)
	ReplaceRoster(ctx context.Context, teamID string, players []model.Player) (model.Team, error)
}

// MatchService defines match recording and retrieval use cases. SaveMatch is
// the single write path; insights are attached there and never recomputed for
// a saved match.
type MatchService interface {
	SaveMatch(ctx context.Context, teamID string, in model.MatchSummary) (model.MatchSummary, error)
	GetMatch(ctx context.Context, id string) (model.MatchSummary, error)
	ListMatches(ctx context.Context, teamID string, page repository.Page) (repository.PageResult[model.MatchSummary], error)
	DeleteMatch(ctx context.Context, id string) error
}

// DashboardService derives the aggregate dashboard view from match history.
type DashboardService interface {
	GetDashboardStats(ctx context.Context, teamID string) (model.DashboardStats, error)
}
