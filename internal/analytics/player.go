package analytics

import (
	"github.com/Priyank118/fdanalytics/internal/model"
)

// playerContext bundles everything a player rule predicate can look at.
type playerContext struct {
	stat      model.PlayerStat
	role      model.Role
	placement int
	survival  float64 // minutes, parsed once
}

// playerRule pairs a predicate with the insight it emits. Rules are
// independent: several may fire for the same stat line.
type playerRule struct {
	applies func(playerContext) bool
	insight model.Insight
}

// playerRules is evaluated in order; output order follows this list.
var playerRules = []playerRule{
	// Survival vs impact.
	{
		applies: func(c playerContext) bool { return c.survival >= 22 && c.stat.Damage < 250 },
		insight: model.Insight{Category: model.CategoryWarning, Message: "Passive play detected: high survival time (22m+) with low damage. You might be playing too safe or avoiding necessary team fights."},
	},
	{
		applies: func(c playerContext) bool { return c.survival < 5 && c.stat.Damage > 400 },
		insight: model.Insight{Category: model.CategoryWarning, Message: "Glass cannon: massive early game damage but died too fast. Wait for your Support to trade you."},
	},
	// Efficiency.
	{
		applies: func(c playerContext) bool { return c.stat.Assists >= 3 && c.stat.Kills <= 1 },
		insight: model.Insight{Category: model.CategorySuggestion, Message: "Setup master: you're dealing damage but not securing kills. Communicate 'one HP' calls more clearly to teammates."},
	},
	{
		applies: func(c playerContext) bool { return c.stat.Damage > 1000 && c.stat.Kills < 3 },
		insight: model.Insight{Category: model.CategoryWarning, Message: "Kill conversion issue: 1000+ damage but low kills. Work on spray transfers and finishing knocks."},
	},
	// Role specific.
	{
		applies: func(c playerContext) bool { return c.role == model.RoleFragger && c.stat.Kills < 3 },
		insight: model.Insight{Category: model.CategoryWarning, Message: "Underperformance: Fragger target is 3+ kills. Review your entry pathing."},
	},
	{
		applies: func(c playerContext) bool { return c.role == model.RoleFragger && c.stat.Damage > 800 },
		insight: model.Insight{Category: model.CategorySuccess, Message: "Entry fragger god: excellent damage output, creating space for the team."},
	},
	{
		applies: func(c playerContext) bool { return c.role == model.RoleSupport && c.stat.Revives >= 2 },
		insight: model.Insight{Category: model.CategorySuccess, Message: "Medic: 2+ revives secured. You kept the squad alive in critical moments."},
	},
	{
		applies: func(c playerContext) bool { return c.role == model.RoleSupport && c.stat.Assists > 2 },
		insight: model.Insight{Category: model.CategorySuccess, Message: "Utility god: high assist count indicates great grenade and cover usage."},
	},
	{
		applies: func(c playerContext) bool { return c.role == model.RoleSupport && c.survival < 12 },
		insight: model.Insight{Category: model.CategoryWarning, Message: "Anchor down: Support died too early. You need to be the last one alive to hold rotations."},
	},
	{
		applies: func(c playerContext) bool { return c.role == model.RoleIGL && c.placement > 10 && c.survival < 10 },
		insight: model.Insight{Category: model.CategoryWarning, Message: "Leader down: IGL died early. Prioritize your life to make mid-game calls."},
	},
	{
		applies: func(c playerContext) bool { return c.role == model.RoleIGL && c.placement <= 3 },
		insight: model.Insight{Category: model.CategorySuccess, Message: "Macro genius: top 3 placement. Your rotations were on point."},
	},
	{
		applies: func(c playerContext) bool { return c.role == model.RoleAssaulter && c.stat.Kills < 2 },
		insight: model.Insight{Category: model.CategoryWarning, Message: "Aim duel loss: Assaulter needs to win 1v1s. Hop into TDM to warm up."},
	},
	{
		applies: func(c playerContext) bool { return c.role == model.RoleAssaulter && c.stat.Kills >= 5 },
		insight: model.Insight{Category: model.CategorySuccess, Message: "Terminator: 5+ kills. You dominated the lobby."},
	},
}

// PlayerInsights derives tactical tips for one player's stat line in one
// match. The result is never empty: when no rule fires a fallback tip is
// emitted so every stat line carries at least one piece of feedback.
func PlayerInsights(stat model.PlayerStat, role model.Role, placement int) []model.Insight {
	c := playerContext{
		stat:      stat,
		role:      role,
		placement: placement,
		survival:  ParseSurvivalMinutes(stat.SurvivalTime),
	}

	var tips []model.Insight
	for _, r := range playerRules {
		if r.applies(c) {
			tips = append(tips, r.insight)
		}
	}

	if len(tips) == 0 {
		if stat.Kills > 2 {
			tips = append(tips, model.Insight{Category: model.CategorySuccess, Message: "Solid performance. Good contribution."})
		} else {
			tips = append(tips, model.Insight{Category: model.CategorySuggestion, Message: "Review replay: identify one mistake in your last engagement."})
		}
	}
	return tips
}
