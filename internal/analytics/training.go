package analytics

import (
	"github.com/Priyank118/fdanalytics/internal/model"
)

// maxSuggestions caps the plan length for display: rule order decides which
// suggestions survive truncation.
const maxSuggestions = 4

// TrainingPlan derives a ranked, length-capped list of drills and strategies
// from the match history (newest-first). Empty history yields a single
// onboarding prompt.
func TrainingPlan(matches []model.MatchSummary) []model.Insight {
	if len(matches) == 0 {
		return []model.Insight{{Category: model.CategorySuggestion, Message: "Upload your first match to get training suggestions."}}
	}

	avgPlacement := avgOf(matches, func(m model.MatchSummary) float64 { return float64(m.Placement) })

	var totalKills, totalDamage int
	for _, m := range matches {
		totalKills += m.TotalTeamKills
		totalDamage += m.TotalTeamDamage
	}
	avgKills := float64(totalKills) / float64(len(matches))

	var damagePerKill float64
	if totalKills > 0 {
		damagePerKill = float64(totalDamage) / float64(totalKills)
	}

	var suggestions []model.Insight

	// Gunpower: the weak-aim pair and the conversion drill are exclusive.
	if avgKills < 4 {
		suggestions = append(suggestions,
			model.Insight{Category: model.CategorySuggestion, Message: "Drill: 30 minutes of Team Deathmatch (M416 only) before scrims."},
			model.Insight{Category: model.CategorySuggestion, Message: "Strategy: force hot-drops in unranked for 5 games to build confidence."},
		)
	} else if damagePerKill > 200 {
		suggestions = append(suggestions, model.Insight{Category: model.CategorySuggestion, Message: "Drill: practice team-firing counts (3-2-1 fire) to finish knocks instantly."})
	}

	// Survival: early-death pair vs advanced macro, likewise exclusive.
	if avgPlacement > 10 {
		suggestions = append(suggestions,
			model.Insight{Category: model.CategorySuggestion, Message: "Macro: record your last 3 deaths. Was it a rotation error or a lost fight?"},
			model.Insight{Category: model.CategorySuggestion, Message: "Drill: play an edge-of-zone strategy for the next 5 matches. Do not crash center."},
		)
	} else if avgPlacement < 5 {
		suggestions = append(suggestions, model.Insight{Category: model.CategorySuggestion, Message: "Macro: you are surviving well. Now try to control a center compound in zone 3."})
	}

	if len(matches) > 5 {
		suggestions = append(suggestions, model.Insight{Category: model.CategorySuggestion, Message: "Routine: establish a fixed IGL review session 15 minutes after every match block."})
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, model.Insight{Category: model.CategorySuccess, Message: "Maintenance: keep doing what you're doing. Consistency is key."})
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}
