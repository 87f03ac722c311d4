package analytics

import (
	"fmt"
	"math"

	"github.com/Priyank118/fdanalytics/internal/model"
)

const trendWindow = 3

// TrendInsights derives cross-match observations from the full history,
// assumed sorted newest-first. The roster is accepted for signature parity
// with the other generators and reserved for role-aware global trends; it is
// not used in any computation yet.
//
// Empty history is a defined terminal output, not an error. Non-empty
// history may legitimately yield zero insights when no threshold trips.
func TrendInsights(matches []model.MatchSummary, team *model.Team) []model.Insight {
	if len(matches) == 0 {
		return []model.Insight{{Category: model.CategorySuggestion, Message: "Upload more matches to unlock squad insights."}}
	}

	avgPlacement := avgOf(matches, func(m model.MatchSummary) float64 { return float64(m.Placement) })
	avgKills := avgOf(matches, func(m model.MatchSummary) float64 { return float64(m.TotalTeamKills) })

	var insights []model.Insight

	if len(matches) >= trendWindow {
		recentAvg := avgOf(matches[:trendWindow], func(m model.MatchSummary) float64 { return float64(m.Placement) })
		// Lower placement is better; the two margins make these checks
		// mutually exclusive against the same average.
		if recentAvg < avgPlacement-2 {
			insights = append(insights, model.Insight{Category: model.CategorySuccess, Message: "Upward trend: your placement in the last 3 matches is significantly better than your average."})
		}
		if recentAvg > avgPlacement+3 {
			insights = append(insights, model.Insight{Category: model.CategoryWarning, Message: "Slump alert: recent placements are below average. Take a break or review VODs."})
		}
	}

	if avgPlacement > 12 {
		insights = append(insights, model.Insight{Category: model.CategoryWarning, Message: fmt.Sprintf("Rotation crisis: average placement is low (#%d). Stop taking early fights.", int(math.Round(avgPlacement)))})
	}
	if avgKills > 8 {
		insights = append(insights, model.Insight{Category: model.CategorySuccess, Message: "Aggressive squad: averaging 8+ kills. Your gunpower is tier-1 ready."})
	}

	return insights
}

func avgOf(matches []model.MatchSummary, pick func(model.MatchSummary) float64) float64 {
	if len(matches) == 0 {
		return 0
	}
	var sum float64
	for _, m := range matches {
		sum += pick(m)
	}
	return sum / float64(len(matches))
}
