package analytics_test

import (
	"math"
	"strconv"
	"testing"
	"time"

	"github.com/Priyank118/fdanalytics/internal/analytics"
	"github.com/Priyank118/fdanalytics/internal/model"
)

func TestBuildDashboardStats_EmptyHistory(t *testing.T) {
	_, ok := analytics.BuildDashboardStats(nil, &model.Team{Name: "Squad"})
	if ok {
		t.Fatalf("expected no rollup for empty history")
	}
}

func TestBuildDashboardStats_Averages(t *testing.T) {
	matches := []model.MatchSummary{
		{Placement: 2, TotalTeamKills: 8, TotalTeamDamage: 1600},
		{Placement: 5, TotalTeamKills: 5, TotalTeamDamage: 1100},
		{Placement: 11, TotalTeamKills: 2, TotalTeamDamage: 700},
	}
	stats, ok := analytics.BuildDashboardStats(matches, nil)
	if !ok {
		t.Fatalf("expected rollup")
	}
	if stats.TotalMatches != 3 {
		t.Fatalf("totalMatches = %d", stats.TotalMatches)
	}
	if stats.AvgDamage != 1133 {
		t.Fatalf("avgDamage = %d, want 1133", stats.AvgDamage)
	}
	if stats.AvgPlacement != 6 {
		t.Fatalf("avgPlacement = %d, want 6", stats.AvgPlacement)
	}
	if stats.AvgKills != "5.0" {
		t.Fatalf("avgKills = %q, want 5.0", stats.AvgKills)
	}
	if stats.KDRatio != "5.00" {
		t.Fatalf("kdRatio = %q, want 5.00", stats.KDRatio)
	}

	// avgKills x N recovers the total within rounding.
	avg, err := strconv.ParseFloat(stats.AvgKills, 64)
	if err != nil {
		t.Fatalf("avgKills not numeric: %v", err)
	}
	if math.Abs(avg*float64(len(matches))-15) > 0.15 {
		t.Fatalf("avgKills x N = %v, want ~15", avg*float64(len(matches)))
	}
}

func TestBuildDashboardStats_RecentWindow(t *testing.T) {
	now := time.Now()
	for _, n := range []int{1, 3, 5, 8} {
		matches := make([]model.MatchSummary, n)
		for i := range matches {
			matches[i] = model.MatchSummary{
				ID:        strconv.Itoa(i),
				CreatedAt: now.Add(-time.Duration(i) * time.Hour),
				Placement: 5, TotalTeamKills: 5, TotalTeamDamage: 1000,
			}
		}
		stats, ok := analytics.BuildDashboardStats(matches, nil)
		if !ok {
			t.Fatalf("expected rollup for n=%d", n)
		}
		want := n
		if want > 5 {
			want = 5
		}
		if len(stats.RecentMatches) != want {
			t.Fatalf("n=%d: recent window = %d, want %d", n, len(stats.RecentMatches), want)
		}
		// Newest-first ordering of the input is preserved.
		if stats.RecentMatches[0].ID != "0" {
			t.Fatalf("n=%d: recent[0] = %s, want newest", n, stats.RecentMatches[0].ID)
		}
	}
}

func TestBuildDashboardStats_PlayerPerformance(t *testing.T) {
	team := &model.Team{
		Name: "Squad",
		Players: []model.Player{
			{Name: "Alex", Role: model.RoleSupport},
			{Name: "Ghost", Role: model.RoleFragger},
		},
	}
	matches := []model.MatchSummary{
		{
			Placement: 4, TotalTeamKills: 6, TotalTeamDamage: 1200,
			Players: []model.PlayerStat{
				// Differing case still matches the roster entry.
				{Name: "alex", Kills: 3, Damage: 450, Revives: 3, SurvivalTime: "20:30"},
			},
		},
		{
			Placement: 8, TotalTeamKills: 4, TotalTeamDamage: 900,
			Players: []model.PlayerStat{
				{Name: "someone else", Kills: 4, Damage: 900, SurvivalTime: "15:00"},
			},
		},
	}
	stats, ok := analytics.BuildDashboardStats(matches, team)
	if !ok {
		t.Fatalf("expected rollup")
	}
	if len(stats.PlayerPerformance) != 2 {
		t.Fatalf("expected entry per roster player, got %d", len(stats.PlayerPerformance))
	}

	alex := stats.PlayerPerformance[0]
	if alex.Name != "Alex" || alex.Matches != 1 {
		t.Fatalf("alex rollup wrong: %+v", alex)
	}
	if alex.AvgKills != 3 || alex.AvgDamage != 450 {
		t.Fatalf("alex averages reflect only the matching match: %+v", alex)
	}
	if alex.AvgSurvival != "20:30" {
		t.Fatalf("alex avgSurvival = %q, want 20:30", alex.AvgSurvival)
	}

	// A roster player never appearing reports zeros, not absence.
	ghost := stats.PlayerPerformance[1]
	if ghost.Matches != 0 || ghost.AvgKills != 0 || ghost.AvgDamage != 0 {
		t.Fatalf("ghost should be all zero: %+v", ghost)
	}
	if ghost.AvgSurvival != "0:00" {
		t.Fatalf("ghost avgSurvival = %q, want 0:00", ghost.AvgSurvival)
	}
}

func TestBuildDashboardStats_InsightsAttached(t *testing.T) {
	matches := []model.MatchSummary{
		{Placement: 5, TotalTeamKills: 5, TotalTeamDamage: 1000},
	}
	stats, ok := analytics.BuildDashboardStats(matches, nil)
	if !ok {
		t.Fatalf("expected rollup")
	}
	// Squad suggestions always carry at least one entry and at most four.
	if len(stats.SquadSuggestions) == 0 || len(stats.SquadSuggestions) > 4 {
		t.Fatalf("squad suggestions out of bounds: %+v", stats.SquadSuggestions)
	}
}
