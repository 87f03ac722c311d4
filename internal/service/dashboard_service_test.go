package service_test

import (
	"context"
	"testing"

	"github.com/Priyank118/fdanalytics/internal/model"
	"github.com/Priyank118/fdanalytics/internal/repository"
	"github.com/Priyank118/fdanalytics/internal/service"
)

func TestDashboardService_NoMatches(t *testing.T) {
	teams := newFakeTeamRepo()
	team := seedTeam(t, teams)
	svc := service.NewDashboardService(newFakeMatchRepo(), teams, discardLogger())

	_, err := svc.GetDashboardStats(context.Background(), team.ID)
	if err != service.ErrNoStats {
		t.Fatalf("expected ErrNoStats, got %v", err)
	}
}

func TestDashboardService_UnknownTeam(t *testing.T) {
	svc := service.NewDashboardService(newFakeMatchRepo(), newFakeTeamRepo(), discardLogger())
	_, err := svc.GetDashboardStats(context.Background(), "missing")
	if err != repository.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDashboardService_ComputesFromHistory(t *testing.T) {
	teams := newFakeTeamRepo()
	team := seedTeam(t, teams)
	matches := newFakeMatchRepo()
	matchSvc := service.NewMatchService(matches, teams, discardLogger())
	svc := service.NewDashboardService(matches, teams, discardLogger())

	seeds := []model.MatchSummary{
		{Placement: 2, Players: []model.PlayerStat{{Name: "Alex", Kills: 6, Damage: 900, SurvivalTime: "20:00"}}},
		{Placement: 4, Players: []model.PlayerStat{{Name: "Alex", Kills: 4, Damage: 700, SurvivalTime: "18:00"}}},
	}
	for _, m := range seeds {
		if _, err := matchSvc.SaveMatch(context.Background(), team.ID, m); err != nil {
			t.Fatalf("seed match: %v", err)
		}
	}

	stats, err := svc.GetDashboardStats(context.Background(), team.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalMatches != 2 {
		t.Fatalf("expected 2 matches, got %d", stats.TotalMatches)
	}
	if stats.AvgPlacement != 3 {
		t.Fatalf("expected avg placement 3, got %d", stats.AvgPlacement)
	}
	if stats.AvgKills != "5.0" {
		t.Fatalf("expected avg kills 5.0, got %s", stats.AvgKills)
	}
	if len(stats.RecentMatches) != 2 {
		t.Fatalf("expected 2 recent matches, got %d", len(stats.RecentMatches))
	}
	if len(stats.PlayerPerformance) != len(team.Players) {
		t.Fatalf("expected one rollup row per roster player, got %d", len(stats.PlayerPerformance))
	}
	// Two good matches trip no trend rule, but the training plan always
	// produces at least one suggestion.
	if len(stats.SquadSuggestions) == 0 {
		t.Fatalf("expected training plan to be attached")
	}
	if stats.KDRatio != "5.00" {
		t.Fatalf("expected kd ratio 5.00, got %s", stats.KDRatio)
	}
}
