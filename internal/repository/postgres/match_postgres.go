package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Priyank118/fdanalytics/internal/model"
	"github.com/Priyank118/fdanalytics/internal/repository"
)

// matchRepository persists match summaries. Player stat lines and insight
// lists are stored as JSONB: they are roster-sized value objects read and
// written as a unit, never queried row by row.
type matchRepository struct{ pool *pgxpool.Pool }

func NewMatchRepository(pool *pgxpool.Pool) repository.MatchRepository {
	return &matchRepository{pool: pool}
}

const matchColumns = `id, team_id, created_at, map, placement, total_kills, total_damage, players, insights`

func (r *matchRepository) Create(ctx context.Context, m model.MatchSummary) (model.MatchSummary, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.MatchSummary{}, err
	}
	players, err := json.Marshal(m.Players)
	if err != nil {
		return model.MatchSummary{}, fmt.Errorf("marshal players: %w", err)
	}
	insights, err := json.Marshal(m.Insights)
	if err != nil {
		return model.MatchSummary{}, fmt.Errorf("marshal insights: %w", err)
	}

	// Zero CreatedAt means "stamp at insert"; an explicit value is kept so
	// callers can backfill history.
	var createdAt any
	if !m.CreatedAt.IsZero() {
		createdAt = m.CreatedAt
	}

	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`INSERT INTO matches (id, team_id, created_at, map, placement, total_kills, total_damage, players, insights)
		 VALUES ($1, $2, COALESCE($3, NOW()), $4, $5, $6, $7, $8, $9)
		 RETURNING `+matchColumns,
		m.ID, m.TeamID, createdAt, m.Map, m.Placement, m.TotalTeamKills, m.TotalTeamDamage, players, insights,
	)
	return scanMatch(row)
}

func (r *matchRepository) GetByID(ctx context.Context, id string) (model.MatchSummary, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.MatchSummary{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`SELECT `+matchColumns+` FROM matches WHERE id = $1`, id,
	)
	out, err := scanMatch(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.MatchSummary{}, repository.ErrNotFound
		}
		return model.MatchSummary{}, err
	}
	return out, nil
}

func (r *matchRepository) ListByTeam(ctx context.Context, teamID string, p repository.Page) (repository.PageResult[model.MatchSummary], error) {
	if err := ensurePool(r.pool); err != nil {
		return repository.PageResult[model.MatchSummary]{}, err
	}
	limit, offset := sanitizeLimitOffset(p.Limit, p.Offset)
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT `+matchColumns+`, COUNT(*) OVER() AS total
		 FROM matches
		 WHERE team_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`,
		teamID, limit, offset,
	)
	if err != nil {
		return repository.PageResult[model.MatchSummary]{}, repository.MapPgError(err)
	}
	defer rows.Close()

	res := repository.PageResult[model.MatchSummary]{Items: make([]model.MatchSummary, 0, limit)}
	for rows.Next() {
		var (
			m                 model.MatchSummary
			players, insights []byte
			total             int
		)
		if err := rows.Scan(&m.ID, &m.TeamID, &m.CreatedAt, &m.Map, &m.Placement, &m.TotalTeamKills, &m.TotalTeamDamage, &players, &insights, &total); err != nil {
			return repository.PageResult[model.MatchSummary]{}, repository.MapPgError(err)
		}
		if err := unmarshalMatchBlobs(&m, players, insights); err != nil {
			return repository.PageResult[model.MatchSummary]{}, err
		}
		res.Items = append(res.Items, m)
		res.Total = total
	}
	return res, nil
}

func (r *matchRepository) ListAllByTeam(ctx context.Context, teamID string) ([]model.MatchSummary, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT `+matchColumns+` FROM matches WHERE team_id = $1 ORDER BY created_at DESC`,
		teamID,
	)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()

	res := make([]model.MatchSummary, 0, 16)
	for rows.Next() {
		var (
			m                 model.MatchSummary
			players, insights []byte
		)
		if err := rows.Scan(&m.ID, &m.TeamID, &m.CreatedAt, &m.Map, &m.Placement, &m.TotalTeamKills, &m.TotalTeamDamage, &players, &insights); err != nil {
			return nil, repository.MapPgError(err)
		}
		if err := unmarshalMatchBlobs(&m, players, insights); err != nil {
			return nil, err
		}
		res = append(res, m)
	}
	return res, nil
}

func (r *matchRepository) Delete(ctx context.Context, id string) error {
	if err := ensurePool(r.pool); err != nil {
		return err
	}
	exec := getQ(ctx, r.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM matches WHERE id = $1`, id)
	if err != nil {
		return repository.MapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanMatch(row pgx.Row) (model.MatchSummary, error) {
	var (
		m                 model.MatchSummary
		players, insights []byte
	)
	if err := row.Scan(&m.ID, &m.TeamID, &m.CreatedAt, &m.Map, &m.Placement, &m.TotalTeamKills, &m.TotalTeamDamage, &players, &insights); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.MatchSummary{}, err
		}
		return model.MatchSummary{}, repository.MapPgError(err)
	}
	if err := unmarshalMatchBlobs(&m, players, insights); err != nil {
		return model.MatchSummary{}, err
	}
	return m, nil
}

func unmarshalMatchBlobs(m *model.MatchSummary, players, insights []byte) error {
	if len(players) > 0 {
		if err := json.Unmarshal(players, &m.Players); err != nil {
			return fmt.Errorf("unmarshal players: %w", err)
		}
	}
	if len(insights) > 0 {
		if err := json.Unmarshal(insights, &m.Insights); err != nil {
			return fmt.Errorf("unmarshal insights: %w", err)
		}
	}
	return nil
}

var _ repository.MatchRepository = (*matchRepository)(nil)
