package analytics

import (
	"math"
	"strconv"
	"strings"

	"github.com/Priyank118/fdanalytics/internal/model"
)

const recentWindow = 5

// BuildDashboardStats aggregates the match history and roster into the
// dashboard payload. Matches must already be sorted newest-first; the rollup
// slices, it does not sort.
//
// The second return value is false when the history is empty: an absent
// rollup is a distinct state from a zero-valued one and callers must treat
// it as such.
func BuildDashboardStats(matches []model.MatchSummary, team *model.Team) (model.DashboardStats, bool) {
	if len(matches) == 0 {
		return model.DashboardStats{}, false
	}

	total := len(matches)
	var totalDamage, totalKills, placementSum int
	for _, m := range matches {
		totalDamage += m.TotalTeamDamage
		totalKills += m.TotalTeamKills
		placementSum += m.Placement
	}

	recent := matches
	if len(recent) > recentWindow {
		recent = recent[:recentWindow]
	}

	var performance []model.PlayerPerformance
	if team != nil {
		performance = make([]model.PlayerPerformance, 0, len(team.Players))
		for _, rosterP := range team.Players {
			performance = append(performance, rollupPlayer(rosterP, matches))
		}
	}

	killsPerMatch := float64(totalKills) / float64(total)

	return model.DashboardStats{
		TotalMatches: total,
		AvgDamage:    int(math.Round(float64(totalDamage) / float64(total))),
		AvgKills:     strconv.FormatFloat(killsPerMatch, 'f', 1, 64),
		AvgPlacement: int(math.Round(float64(placementSum) / float64(total))),
		// Deaths are not tracked; this preserves the product's historical
		// "K/D" field as kills per match.
		KDRatio:           strconv.FormatFloat(killsPerMatch, 'f', 2, 64),
		RecentMatches:     recent,
		PlayerPerformance: performance,
		StrategicInsights: TrendInsights(matches, team),
		SquadSuggestions:  TrainingPlan(matches),
	}, true
}

// rollupPlayer scans every match for a stat line matching the roster entry
// by case-insensitive name. A player with no appearances reports all-zero
// averages rather than being omitted.
func rollupPlayer(rosterP model.Player, matches []model.MatchSummary) model.PlayerPerformance {
	var kills, damage, count int
	var survivalMinutes float64

	for _, m := range matches {
		for _, stat := range m.Players {
			if strings.EqualFold(stat.Name, rosterP.Name) {
				kills += stat.Kills
				damage += stat.Damage
				survivalMinutes += ParseSurvivalMinutes(stat.SurvivalTime)
				count++
				break
			}
		}
	}

	perf := model.PlayerPerformance{
		Name:        rosterP.Name,
		Role:        rosterP.Role,
		Matches:     count,
		AvgSurvival: "0:00",
	}
	if count == 0 {
		return perf
	}

	perf.AvgKills = math.Round(float64(kills)/float64(count)*10) / 10
	perf.AvgDamage = int(math.Round(float64(damage) / float64(count)))
	perf.AvgSurvival = FormatSurvivalMinutes(survivalMinutes / float64(count))
	return perf
}
