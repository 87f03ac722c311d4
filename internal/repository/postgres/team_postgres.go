package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Priyank118/fdanalytics/internal/model"
	"github.com/Priyank118/fdanalytics/internal/repository"
)

type teamRepository struct{ pool *pgxpool.Pool }

func NewTeamRepository(pool *pgxpool.Pool) repository.TeamRepository {
	return &teamRepository{pool: pool}
}

func (r *teamRepository) Create(ctx context.Context, t model.Team) (model.Team, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Team{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`INSERT INTO teams (id, name) VALUES ($1, $2)
		 RETURNING id, name, created_at, updated_at`,
		t.ID, t.Name,
	)
	var out model.Team
	if err := row.Scan(&out.ID, &out.Name, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return model.Team{}, repository.MapPgError(err)
	}
	if err := r.insertPlayers(ctx, exec, out.ID, t.Players); err != nil {
		return model.Team{}, err
	}
	out.Players = t.Players
	return out, nil
}

func (r *teamRepository) GetByID(ctx context.Context, id string) (model.Team, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Team{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`SELECT id, name, created_at, updated_at FROM teams WHERE id = $1`, id,
	)
	var out model.Team
	if err := row.Scan(&out.ID, &out.Name, &out.CreatedAt, &out.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Team{}, repository.ErrNotFound
		}
		return model.Team{}, repository.MapPgError(err)
	}

	rows, err := exec.Query(ctx,
		`SELECT id, name, role FROM players WHERE team_id = $1 ORDER BY slot`, id,
	)
	if err != nil {
		return model.Team{}, repository.MapPgError(err)
	}
	defer rows.Close()
	for rows.Next() {
		var p model.Player
		var role string
		if err := rows.Scan(&p.ID, &p.Name, &role); err != nil {
			return model.Team{}, repository.MapPgError(err)
		}
		p.Role = model.ParseRole(role)
		out.Players = append(out.Players, p)
	}
	return out, nil
}

// ReplaceRoster swaps the full player list atomically when called inside a
// transaction; roster order is preserved via the slot column.
func (r *teamRepository) ReplaceRoster(ctx context.Context, teamID string, players []model.Player) (model.Team, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Team{}, err
	}
	exec := getQ(ctx, r.pool)

	tag, err := exec.Exec(ctx, `UPDATE teams SET updated_at = NOW() WHERE id = $1`, teamID)
	if err != nil {
		return model.Team{}, repository.MapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return model.Team{}, repository.ErrNotFound
	}

	if _, err := exec.Exec(ctx, `DELETE FROM players WHERE team_id = $1`, teamID); err != nil {
		return model.Team{}, repository.MapPgError(err)
	}
	if err := r.insertPlayers(ctx, exec, teamID, players); err != nil {
		return model.Team{}, err
	}
	return r.GetByID(ctx, teamID)
}

func (r *teamRepository) Exists(ctx context.Context, id string) (bool, error) {
	if err := ensurePool(r.pool); err != nil {
		return false, err
	}
	var exists bool
	exec := getQ(ctx, r.pool)
	err := exec.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM teams WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, repository.MapPgError(err)
	}
	return exists, nil
}

func (r *teamRepository) insertPlayers(ctx context.Context, exec q, teamID string, players []model.Player) error {
	for i, p := range players {
		if _, err := exec.Exec(ctx,
			`INSERT INTO players (id, team_id, name, role, slot) VALUES ($1, $2, $3, $4, $5)`,
			p.ID, teamID, p.Name, string(p.Role), i,
		); err != nil {
			return repository.MapPgError(err)
		}
	}
	return nil
}

var _ repository.TeamRepository = (*teamRepository)(nil)
