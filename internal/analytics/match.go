package analytics

import (
	"fmt"

	"github.com/Priyank118/fdanalytics/internal/model"
)

// matchTotals are the team-wide sums the match rules compare against.
type matchTotals struct {
	revives int
	assists int
}

// matchRule pairs a predicate with a message builder. Unlike player rules,
// no fallback exists here: a match can legitimately produce zero insights.
type matchRule struct {
	applies func(model.MatchSummary, matchTotals) bool
	build   func(model.MatchSummary, matchTotals) model.Insight
}

var matchRules = []matchRule{
	{
		applies: func(m model.MatchSummary, _ matchTotals) bool {
			return m.Placement <= 3 && m.TotalTeamKills < 4
		},
		build: func(model.MatchSummary, matchTotals) model.Insight {
			return model.Insight{Category: model.CategoryWarning, Message: "Snake strategy: high placement but very low kills. Good for points, bad for practice."}
		},
	},
	{
		applies: func(m model.MatchSummary, _ matchTotals) bool {
			return m.Placement > 10 && m.TotalTeamDamage > 1500
		},
		build: func(model.MatchSummary, matchTotals) model.Insight {
			return model.Insight{Category: model.CategoryWarning, Message: "Unlucky wipe: team dealt massive damage (1.5k+) but wiped early. Third-partied?"}
		},
	},
	{
		applies: func(m model.MatchSummary, _ matchTotals) bool { return m.TotalTeamKills > 12 },
		build: func(model.MatchSummary, matchTotals) model.Insight {
			return model.Insight{Category: model.CategorySuccess, Message: "Lobby domination: 12+ team kills. Aggressive rotations paid off."}
		},
	},
	{
		applies: func(_ model.MatchSummary, t matchTotals) bool { return t.revives > 4 },
		build: func(_ model.MatchSummary, t matchTotals) model.Insight {
			return model.Insight{Category: model.CategorySuccess, Message: fmt.Sprintf("Resilient squad: %d total revives. Great resetting capability under pressure.", t.revives)}
		},
	},
	{
		applies: func(m model.MatchSummary, t matchTotals) bool { return t.assists > m.TotalTeamKills },
		build: func(model.MatchSummary, matchTotals) model.Insight {
			return model.Insight{Category: model.CategorySuccess, Message: "Teamwork peak: more assists than kills implies excellent team-firing."}
		},
	},
}

// MatchInsights derives team-level observations for one completed match.
// Output length is 0..len(matchRules); an unremarkable match yields nothing.
func MatchInsights(m model.MatchSummary) []model.Insight {
	var t matchTotals
	for _, p := range m.Players {
		t.revives += p.Revives
		t.assists += p.Assists
	}

	var insights []model.Insight
	for _, r := range matchRules {
		if r.applies(m, t) {
			insights = append(insights, r.build(m, t))
		}
	}
	return insights
}
