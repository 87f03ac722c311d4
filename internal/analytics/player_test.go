package analytics_test

import (
	"strings"
	"testing"

	"github.com/Priyank118/fdanalytics/internal/analytics"
	"github.com/Priyank118/fdanalytics/internal/model"
)

func containsMessage(tips []model.Insight, fragment string) bool {
	for _, tip := range tips {
		if strings.Contains(tip.Message, fragment) {
			return true
		}
	}
	return false
}

func TestPlayerInsights_NeverEmpty(t *testing.T) {
	cases := []struct {
		name      string
		stat      model.PlayerStat
		role      model.Role
		placement int
	}{
		{"all zeros", model.PlayerStat{SurvivalTime: "0:00"}, model.RoleFlex, 1},
		{"unremarkable flex", model.PlayerStat{Kills: 2, Assists: 1, Damage: 500, SurvivalTime: "15:00"}, model.RoleFlex, 8},
		{"solid flex", model.PlayerStat{Kills: 4, Assists: 1, Damage: 600, SurvivalTime: "18:00"}, model.RoleFlex, 6},
		{"malformed survival", model.PlayerStat{Kills: 1, SurvivalTime: "??"}, model.RoleFlex, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tips := analytics.PlayerInsights(tc.stat, tc.role, tc.placement)
			if len(tips) == 0 {
				t.Fatalf("expected at least one tip, got none")
			}
		})
	}
}

func TestPlayerInsights_Fallback(t *testing.T) {
	// No rule fires: the fallback depends on kill count.
	solid := analytics.PlayerInsights(model.PlayerStat{Kills: 4, Assists: 1, Damage: 600, SurvivalTime: "18:00"}, model.RoleFlex, 6)
	if len(solid) != 1 || solid[0].Category != model.CategorySuccess {
		t.Fatalf("expected single success fallback, got %+v", solid)
	}
	quiet := analytics.PlayerInsights(model.PlayerStat{Kills: 1, Assists: 1, Damage: 300, SurvivalTime: "15:00"}, model.RoleFlex, 6)
	if len(quiet) != 1 || quiet[0].Category != model.CategorySuggestion {
		t.Fatalf("expected single suggestion fallback, got %+v", quiet)
	}
}

func TestPlayerInsights_GlassCannonFraggerScenario(t *testing.T) {
	// Four independent rules co-occur (1100 damage also trips the Fragger
	// damage praise); no fallback.
	stat := model.PlayerStat{Kills: 1, Damage: 1100, Assists: 0, SurvivalTime: "3:00"}
	tips := analytics.PlayerInsights(stat, model.RoleFragger, 5)
	if len(tips) != 4 {
		t.Fatalf("expected 4 tips, got %d: %+v", len(tips), tips)
	}
	if !containsMessage(tips, "Glass cannon") {
		t.Fatalf("missing glass cannon tip: %+v", tips)
	}
	if !containsMessage(tips, "Kill conversion") {
		t.Fatalf("missing kill conversion tip: %+v", tips)
	}
	if !containsMessage(tips, "Fragger target") {
		t.Fatalf("missing fragger underperformance tip: %+v", tips)
	}
	if !containsMessage(tips, "Entry fragger") {
		t.Fatalf("missing fragger damage praise: %+v", tips)
	}
}

func TestPlayerInsights_RoleRules(t *testing.T) {
	cases := []struct {
		name      string
		stat      model.PlayerStat
		role      model.Role
		placement int
		fragment  string
		category  model.Category
	}{
		{"fragger praise", model.PlayerStat{Kills: 5, Damage: 900, SurvivalTime: "20:00"}, model.RoleFragger, 5, "Entry fragger", model.CategorySuccess},
		{"support medic", model.PlayerStat{Kills: 1, Revives: 2, SurvivalTime: "20:00"}, model.RoleSupport, 5, "Medic", model.CategorySuccess},
		{"support utility", model.PlayerStat{Kills: 2, Assists: 3, SurvivalTime: "20:00"}, model.RoleSupport, 5, "Utility god", model.CategorySuccess},
		{"support anchor", model.PlayerStat{Kills: 2, SurvivalTime: "8:00"}, model.RoleSupport, 5, "Anchor down", model.CategoryWarning},
		{"igl leader down", model.PlayerStat{Kills: 1, SurvivalTime: "6:00"}, model.RoleIGL, 14, "Leader down", model.CategoryWarning},
		{"igl macro genius", model.PlayerStat{Kills: 1, SurvivalTime: "25:00"}, model.RoleIGL, 2, "Macro genius", model.CategorySuccess},
		{"assaulter duel loss", model.PlayerStat{Kills: 1, SurvivalTime: "15:00"}, model.RoleAssaulter, 6, "Aim duel loss", model.CategoryWarning},
		{"assaulter terminator", model.PlayerStat{Kills: 6, Damage: 700, SurvivalTime: "15:00"}, model.RoleAssaulter, 6, "Terminator", model.CategorySuccess},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tips := analytics.PlayerInsights(tc.stat, tc.role, tc.placement)
			found := false
			for _, tip := range tips {
				if strings.Contains(tip.Message, tc.fragment) {
					found = true
					if tip.Category != tc.category {
						t.Fatalf("tip %q category = %s, want %s", tip.Message, tip.Category, tc.category)
					}
				}
			}
			if !found {
				t.Fatalf("missing tip containing %q in %+v", tc.fragment, tips)
			}
		})
	}
}

func TestPlayerInsights_PassiveAndSurvivalThresholds(t *testing.T) {
	passive := analytics.PlayerInsights(model.PlayerStat{Kills: 3, Damage: 200, SurvivalTime: "23:00"}, model.RoleFlex, 6)
	if !containsMessage(passive, "Passive play") {
		t.Fatalf("expected passive play warning, got %+v", passive)
	}
	// Role rules are gated on the matching role only.
	notFragger := analytics.PlayerInsights(model.PlayerStat{Kills: 0, Damage: 300, SurvivalTime: "15:00"}, model.RoleFlex, 6)
	if containsMessage(notFragger, "Fragger target") {
		t.Fatalf("fragger rule fired for flex role: %+v", notFragger)
	}
}
