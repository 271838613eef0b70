package filter

import (
	"strings"

	"github.com/mcdev12/auctioneer/go/internal/models"
	"github.com/mcdev12/auctioneer/go/internal/valuation"
)

// FilterAll is the wildcard accepted for the position and team criteria
const FilterAll = "all"

// Criteria are the search controls the presentation layer feeds into the
// player list: a free-text name search plus position and team dropdowns.
type Criteria struct {
	Search   string `json:"search"`
	Position string `json:"position"`
	Team     string `json:"team"`
}

// Matches reports whether a player passes all three criteria. The name
// search is a case-insensitive substring match; the position criterion
// matches any eligible position with outfield sub-positions collapsed to
// OF; the team criterion is an exact match on the team abbreviation.
func Matches(p *models.Player, c Criteria) bool {
	if c.Search != "" {
		if !strings.Contains(strings.ToLower(p.Name), strings.ToLower(c.Search)) {
			return false
		}
	}

	if c.Position != "" && c.Position != FilterAll {
		if !matchesPosition(p, c.Position) {
			return false
		}
	}

	if c.Team != "" && c.Team != FilterAll {
		if p.Team != c.Team {
			return false
		}
	}

	return true
}

// Apply returns the players passing the criteria, preserving input order
func Apply(players []*models.Player, c Criteria) []*models.Player {
	out := make([]*models.Player, 0, len(players))
	for _, p := range players {
		if Matches(p, c) {
			out = append(out, p)
		}
	}
	return out
}

func matchesPosition(p *models.Player, want string) bool {
	positions := valuation.ParsePositions(p.Positions)
	if p.Valuation != nil && len(p.Valuation.PositionList) > 0 {
		positions = p.Valuation.PositionList
	}
	for _, pos := range positions {
		if pos == want || valuation.CollapseOutfield(pos) == want {
			return true
		}
	}
	return false
}
