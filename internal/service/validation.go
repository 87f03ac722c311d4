package service

import (
	"strings"

	"github.com/Priyank118/fdanalytics/internal/model"
	"github.com/Priyank118/fdanalytics/internal/repository"
)

const maxRosterSize = 6

// validateTeamName checks the squad name and returns the trimmed value.
func validateTeamName(name string) (string, []FieldError) {
	name = strings.TrimSpace(name)
	if name == "" {
		return name, []FieldError{{Field: "name", Message: "must not be empty"}}
	}
	if ln := len([]rune(name)); ln < 2 || ln > 50 {
		return name, []FieldError{{Field: "name", Message: "length must be between 2 and 50"}}
	}
	return name, nil
}

// validateRoster trims names, normalizes roles and enforces size and
// uniqueness. Player names are the join key to match stat lines, so
// duplicates are rejected case-insensitively.
func validateRoster(players []model.Player) ([]model.Player, []FieldError) {
	var ferrs []FieldError
	if len(players) == 0 {
		return nil, []FieldError{{Field: "players", Message: "roster must not be empty"}}
	}
	if len(players) > maxRosterSize {
		return nil, []FieldError{{Field: "players", Message: "roster must not exceed 6 players"}}
	}

	seen := make(map[string]struct{}, len(players))
	out := make([]model.Player, 0, len(players))
	for _, p := range players {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			ferrs = append(ferrs, FieldError{Field: "players.name", Message: "must not be empty"})
			continue
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			ferrs = append(ferrs, FieldError{Field: "players.name", Message: "duplicate player name: " + name})
			continue
		}
		seen[key] = struct{}{}
		out = append(out, model.Player{
			ID:   p.ID,
			Name: name,
			Role: model.ParseRole(string(p.Role)),
		})
	}
	if len(ferrs) > 0 {
		return nil, ferrs
	}
	return out, nil
}

// validateMatchInput checks the scoreboard payload before insight generation.
func validateMatchInput(in model.MatchSummary) []FieldError {
	var ferrs []FieldError
	if in.Placement < 1 {
		ferrs = append(ferrs, FieldError{Field: "placement", Message: "must be >= 1"})
	}
	if len(in.Players) == 0 {
		ferrs = append(ferrs, FieldError{Field: "players", Message: "must contain at least one stat line"})
	}
	for _, p := range in.Players {
		if strings.TrimSpace(p.Name) == "" {
			ferrs = append(ferrs, FieldError{Field: "players.name", Message: "must not be empty"})
		}
		if p.Kills < 0 || p.Assists < 0 || p.Damage < 0 || p.Revives < 0 {
			ferrs = append(ferrs, FieldError{Field: "players", Message: "counters must not be negative"})
		}
	}
	return ferrs
}

// normalizePage clamps paging parameters to sane bounds.
func normalizePage(p repository.Page) repository.Page {
	if p.Limit <= 0 || p.Limit > 100 {
		p.Limit = 50
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}
