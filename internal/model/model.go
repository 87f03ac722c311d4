// Package model contains domain entities and DTOs used across layers.
// I keep it lean and focused on data shapes without behavior.
package model

import (
	"strings"
	"time"
)

// Role is a player's tactical assignment within the squad.
type Role string

const (
	RoleIGL       Role = "IGL"
	RoleFragger   Role = "Fragger"
	RoleSupport   Role = "Support"
	RoleAssaulter Role = "Assaulter"
	RoleFlex      Role = "Flex"
)

// ParseRole normalizes a free-form role string to the closed enumeration.
// Anything unrecognized falls back to Flex; role resolution never fails.
func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "igl":
		return RoleIGL
	case "fragger":
		return RoleFragger
	case "support":
		return RoleSupport
	case "assaulter":
		return RoleAssaulter
	default:
		return RoleFlex
	}
}

// Category classifies an insight so the display layer can pick presentation.
type Category string

const (
	CategoryWarning    Category = "warning"
	CategorySuccess    Category = "success"
	CategorySuggestion Category = "suggestion"
)

// Insight is one generated observation or recommendation.
type Insight struct {
	Category Category `json:"category"`
	Message  string   `json:"message"`
}

// Player is a roster entry. Name is the case-insensitive key that links
// roster entries to per-match stat lines.
type Player struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// Team is the squad roster owned by a single user.
type Team struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Players   []Player  `json:"players"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PlayerStat is one player's performance in one match, as extracted from the
// scoreboard screenshot. SurvivalTime stays in its "M:SS" wire form; parsing
// is lenient and lives in the analytics package.
type PlayerStat struct {
	Name         string    `json:"name"`
	Kills        int       `json:"kills"`
	Assists      int       `json:"assists"`
	Damage       int       `json:"damage"`
	SurvivalTime string    `json:"survivalTime"`
	Revives      int       `json:"revives"`
	Role         Role      `json:"role,omitempty"`
	Analysis     []Insight `json:"analysis,omitempty"`
}

// MatchSummary is one completed match. Read-only once saved.
type MatchSummary struct {
	ID              string       `json:"id"`
	TeamID          string       `json:"team_id,omitempty"`
	CreatedAt       time.Time    `json:"createdAt"`
	Map             string       `json:"map"`
	Placement       int          `json:"placement"`
	TotalTeamKills  int          `json:"totalTeamKills"`
	TotalTeamDamage int          `json:"totalTeamDamage"`
	TeamName        string       `json:"teamName,omitempty"`
	Players         []PlayerStat `json:"players"`
	Insights        []Insight    `json:"insights,omitempty"`
}

// PlayerPerformance is a per-roster-player rollup over the match history.
type PlayerPerformance struct {
	Name        string  `json:"name"`
	Role        Role    `json:"role"`
	Matches     int     `json:"matches"`
	AvgKills    float64 `json:"avgKills"`
	AvgDamage   int     `json:"avgDamage"`
	AvgSurvival string  `json:"avgSurvival"`
}

// DashboardStats is the derived dashboard payload. Recomputed on every
// request, never persisted. AvgKills and KDRatio are preformatted text
// (one and two decimals respectively). KDRatio preserves the product's
// historical computation: average kills per match, since deaths are not
// tracked anywhere in the data model.
type DashboardStats struct {
	TotalMatches      int                 `json:"totalMatches"`
	AvgDamage         int                 `json:"avgDamage"`
	AvgKills          string              `json:"avgKills"`
	AvgPlacement      int                 `json:"avgPlacement"`
	KDRatio           string              `json:"kdRatio"`
	RecentMatches     []MatchSummary      `json:"recentMatches"`
	PlayerPerformance []PlayerPerformance `json:"playerPerformance"`
	StrategicInsights []Insight           `json:"strategicInsights"`
	SquadSuggestions  []Insight           `json:"squadSuggestions"`
}
