package repository

import (
	"context"

	"github.com/Priyank118/fdanalytics/internal/model"
)

// Pinger represents a minimal readiness probe capability, decoupling health
// checks from storage implementation details.
type Pinger interface {
	Ping(ctx context.Context) error
}

// TxFunc is the unit of work executed within a transaction boundary.
type TxFunc func(ctx context.Context) error

// TxManager abstracts transactional execution for repositories that support
// it. A single entry point keeps transaction boundaries explicit and testable.
type TxManager interface {
	WithinTx(ctx context.Context, fn TxFunc) error
}

// TeamRepository declares persistence operations for teams and their
// rosters. Implementations return domain models and surface the domain
// errors from errors.go rather than driver codes.
type TeamRepository interface {
	// Create persists the team together with its roster.
	Create(ctx context.Context, t model.Team) (model.Team, error)
	GetByID(ctx context.Context, id string) (model.Team, error)
	// ReplaceRoster swaps the full player list; roster edits are whole-list
	// operations in this product, never per-player patches.
	ReplaceRoster(ctx context.Context, teamID string, players []model.Player) (model.Team, error)
	Exists(ctx context.Context, id string) (bool, error)
}

// MatchRepository declares persistence operations for saved matches.
// Listings are newest-first; all trend math downstream depends on that.
type MatchRepository interface {
	Create(ctx context.Context, m model.MatchSummary) (model.MatchSummary, error)
	GetByID(ctx context.Context, id string) (model.MatchSummary, error)
	ListByTeam(ctx context.Context, teamID string, p Page) (PageResult[model.MatchSummary], error)
	// ListAllByTeam returns the complete history for rollups and insight
	// generation, which always consume the full window.
	ListAllByTeam(ctx context.Context, teamID string) ([]model.MatchSummary, error)
	Delete(ctx context.Context, id string) error
}
