// Package contract holds reusable behavioral suites for repository
// implementations. Any backend claiming to implement the contracts can be
// plugged into these suites and must pass them unchanged.
package contract

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Priyank118/fdanalytics/internal/model"
	"github.com/Priyank118/fdanalytics/internal/repository"
)

type TeamFactory func(t *testing.T) (repository.TeamRepository, func())

type MatchFactory func(t *testing.T) (repo repository.MatchRepository, mkTeam func(ctx context.Context, name string) (string, error), cleanup func())

type TxFactory func(t *testing.T) (tx repository.TxManager, teams repository.TeamRepository, cleanup func())

type PingerFactory func(t *testing.T) (repository.Pinger, func())

func newTeam(name string) model.Team {
	return model.Team{
		ID:   uuid.NewString(),
		Name: name,
		Players: []model.Player{
			{ID: uuid.NewString(), Name: "Viper", Role: model.RoleIGL},
			{ID: uuid.NewString(), Name: "Blaze", Role: model.RoleFragger},
		},
	}
}

func newMatch(teamID string) model.MatchSummary {
	return model.MatchSummary{
		ID:              uuid.NewString(),
		TeamID:          teamID,
		Map:             "Erangel",
		Placement:       4,
		TotalTeamKills:  7,
		TotalTeamDamage: 1450,
		Players: []model.PlayerStat{
			{Name: "Viper", Kills: 3, Assists: 2, Damage: 700, SurvivalTime: "21:30", Revives: 1, Role: model.RoleIGL},
			{Name: "Blaze", Kills: 4, Assists: 1, Damage: 750, SurvivalTime: "19:05", Role: model.RoleFragger},
		},
		Insights: []model.Insight{{Category: model.CategorySuccess, Message: "solid round"}},
	}
}

func RunTeamRepositoryContract(t *testing.T, makeRepo TeamFactory) {
	t.Helper()

	t.Run("create_and_get_with_roster", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		created, err := repo.Create(ctx, newTeam("Nightfall"))
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		got, err := repo.GetByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got.ID != created.ID || got.Name != created.Name {
			t.Fatalf("mismatch: %+v", got)
		}
		if len(got.Players) != 2 || got.Players[0].Name != "Viper" {
			t.Fatalf("roster not preserved in order: %+v", got.Players)
		}
	})

	t.Run("get_not_found", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.GetByID(context.Background(), uuid.NewString())
		if err == nil || err != repository.ErrNotFound {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("replace_roster", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		created, err := repo.Create(ctx, newTeam("Roster Swap"))
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
		next := []model.Player{
			{ID: uuid.NewString(), Name: "Shade", Role: model.RoleSupport},
		}
		got, err := repo.ReplaceRoster(ctx, created.ID, next)
		if err != nil {
			t.Fatalf("replace roster: %v", err)
		}
		if len(got.Players) != 1 || got.Players[0].Name != "Shade" {
			t.Fatalf("roster not replaced: %+v", got.Players)
		}
	})

	t.Run("replace_roster_missing_team", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.ReplaceRoster(context.Background(), uuid.NewString(), nil)
		if err == nil || err != repository.ErrNotFound {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func RunMatchRepositoryContract(t *testing.T, makeRepo MatchFactory) {
	t.Helper()

	t.Run("create_get_roundtrip", func(t *testing.T) {
		repo, mkTeam, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		teamID, err := mkTeam(ctx, "Roundtrip")
		if err != nil {
			t.Fatalf("seed team: %v", err)
		}
		created, err := repo.Create(ctx, newMatch(teamID))
		if err != nil {
			t.Fatalf("create match: %v", err)
		}
		got, err := repo.GetByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.ID != created.ID || len(got.Players) != 2 || got.Players[0].SurvivalTime != "21:30" {
			t.Fatalf("stat lines not preserved: %+v", got)
		}
		if len(got.Insights) != 1 {
			t.Fatalf("insights not preserved: %+v", got.Insights)
		}
	})

	t.Run("list_newest_first", func(t *testing.T) {
		repo, mkTeam, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		teamID, err := mkTeam(ctx, "Ordering")
		if err != nil {
			t.Fatalf("seed team: %v", err)
		}
		var last string
		base := time.Now().UTC().Add(-time.Hour)
		for i := 0; i < 3; i++ {
			in := newMatch(teamID)
			in.CreatedAt = base.Add(time.Duration(i) * time.Minute)
			m, err := repo.Create(ctx, in)
			if err != nil {
				t.Fatalf("seed match %d: %v", i, err)
			}
			last = m.ID
		}
		all, err := repo.ListAllByTeam(ctx, teamID)
		if err != nil {
			t.Fatalf("list all: %v", err)
		}
		if len(all) != 3 {
			t.Fatalf("expected 3 matches, got %d", len(all))
		}
		if all[0].ID != last {
			t.Fatalf("expected newest first, got %s", all[0].ID)
		}
		page, err := repo.ListByTeam(ctx, teamID, repository.Page{Limit: 2, Offset: 0})
		if err != nil {
			t.Fatalf("list page: %v", err)
		}
		if len(page.Items) != 2 || page.Total != 3 {
			t.Fatalf("unexpected page: len=%d total=%d", len(page.Items), page.Total)
		}
	})

	t.Run("delete", func(t *testing.T) {
		repo, mkTeam, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		teamID, err := mkTeam(ctx, "Deleting")
		if err != nil {
			t.Fatalf("seed team: %v", err)
		}
		m, err := repo.Create(ctx, newMatch(teamID))
		if err != nil {
			t.Fatalf("seed match: %v", err)
		}
		if err := repo.Delete(ctx, m.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if err := repo.Delete(ctx, m.ID); err == nil || err != repository.ErrNotFound {
			t.Fatalf("expected ErrNotFound on double delete, got %v", err)
		}
	})
}

func RunTxManagerContract(t *testing.T, makeTx TxFactory) {
	t.Helper()

	t.Run("commit_on_nil_error", func(t *testing.T) {
		tx, teams, cleanup := makeTx(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		var createdID string
		err := tx.WithinTx(ctx, func(ctx context.Context) error {
			out, err := teams.Create(ctx, newTeam("TxCommit"))
			if err != nil {
				return err
			}
			createdID = out.ID
			return nil
		})
		if err != nil {
			t.Fatalf("WithinTx: %v", err)
		}
		if _, err := teams.GetByID(ctx, createdID); err != nil {
			t.Fatalf("expected committed row visible, got err=%v", err)
		}
	})

	t.Run("rollback_on_error", func(t *testing.T) {
		tx, teams, cleanup := makeTx(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		var createdID string
		errMarker := &sentinel{"boom"}
		err := tx.WithinTx(ctx, func(ctx context.Context) error {
			out, err := teams.Create(ctx, newTeam("TxRollback"))
			if err != nil {
				return err
			}
			createdID = out.ID
			return errMarker
		})
		if err == nil || err.Error() != errMarker.Error() {
			t.Fatalf("expected marker error, got %v", err)
		}
		if _, err := teams.GetByID(ctx, createdID); err == nil || err != repository.ErrNotFound {
			t.Fatalf("expected ErrNotFound after rollback, got %v", err)
		}
	})
}

func RunPingerContract(t *testing.T, makePinger PingerFactory) {
	t.Helper()
	t.Run("ping_ok", func(t *testing.T) {
		p, cleanup := makePinger(t)
		t.Cleanup(cleanup)
		if err := p.Ping(context.Background()); err != nil {
			t.Fatalf("expected ping ok, got %v", err)
		}
	})
}

type sentinel struct{ s string }

func (e *sentinel) Error() string { return e.s }
