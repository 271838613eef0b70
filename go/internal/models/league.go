package models

import "fmt"

// LeagueConfig holds the static session parameters for an auction draft.
// Values are fixed at session start; the valuation pipeline runs once
// against them and never re-runs mid-draft.
type LeagueConfig struct {
	Teams             int     `json:"teams" yaml:"teams"`
	Budget            int     `json:"budget" yaml:"budget"`
	HitterBudgetShare float64 `json:"hitter_budget_share" yaml:"hitter_budget_share"`

	HitterCategories  []Category `json:"hitter_categories" yaml:"hitter_categories"`
	PitcherCategories []Category `json:"pitcher_categories" yaml:"pitcher_categories"`
}

// PitcherBudgetShare is the complement of the hitter share; the split
// always sums to 1.0 for a valid config.
func (c LeagueConfig) PitcherBudgetShare() float64 {
	return 1.0 - c.HitterBudgetShare
}

// TotalLeagueBudget is the auction money in play across all teams
func (c LeagueConfig) TotalLeagueBudget() float64 {
	return float64(c.Teams) * float64(c.Budget)
}

// CategoriesForRole returns the category list feeding a role's z-score sum
func (c LeagueConfig) CategoriesForRole(role Role) []Category {
	if role == RolePitcher {
		return c.PitcherCategories
	}
	return c.HitterCategories
}

// Validate checks the config invariants
func (c LeagueConfig) Validate() error {
	if c.Teams <= 0 {
		return fmt.Errorf("teams must be positive, got %d", c.Teams)
	}
	if c.Budget <= 0 {
		return fmt.Errorf("budget must be positive, got %d", c.Budget)
	}
	if c.HitterBudgetShare <= 0 || c.HitterBudgetShare >= 1 {
		return fmt.Errorf("hitter budget share must be in (0, 1), got %g", c.HitterBudgetShare)
	}
	if len(c.HitterCategories) == 0 {
		return fmt.Errorf("hitter categories must not be empty")
	}
	if len(c.PitcherCategories) == 0 {
		return fmt.Errorf("pitcher categories must not be empty")
	}
	return nil
}

// DefaultLeagueConfig returns the standard 12-team $260 league with a
// 68% hitter / 32% pitcher budget split.
func DefaultLeagueConfig() LeagueConfig {
	return LeagueConfig{
		Teams:             12,
		Budget:            260,
		HitterBudgetShare: 0.68,
		HitterCategories: []Category{
			CategoryRunsProduced,
			CategoryHomeRuns,
			CategoryStolenBases,
			CategoryBattingAvg,
			CategoryOnBasePct,
			CategorySluggingPct,
		},
		PitcherCategories: []Category{
			CategoryStrikeouts,
			CategoryWins,
			CategorySaves,
			CategoryERA,
			CategoryWHIP,
		},
	}
}
