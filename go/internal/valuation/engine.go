package valuation

import (
	"fmt"
	"math"
	"sort"

	"github.com/mcdev12/auctioneer/go/internal/models"
	"github.com/rs/zerolog/log"
)

// The engine converts raw season stat lines into auction dollar values.
// It runs once per session: z-score each category, sum per-role category
// z-scores, rank against a replacement pool sized by the league's roster
// structure, and allocate the league's budget across value above
// replacement. Every step degrades numerically on bad input rather than
// failing; the only error path is an invalid league config.

// ComputeZScores attaches a z-score for one category to every player in
// the list. Players missing the stat are excluded from the mean/stddev
// computation but stay in the output with a zero z-score. Standard
// deviation is population stddev (divide by N). When invert is set the
// z-score is negated, used for ERA and WHIP where lower is better. A
// zero-spread category contributes z = 0 for every player rather than
// propagating NaN.
func ComputeZScores(players []*models.Player, cat models.Category, invert bool) {
	var sum float64
	var n int
	for _, p := range players {
		if v, ok := p.Stat(cat); ok {
			sum += v
			n++
		}
	}

	if n == 0 {
		for _, p := range players {
			setZScore(p, cat, 0)
		}
		return
	}

	mean := sum / float64(n)

	var sqDiff float64
	for _, p := range players {
		if v, ok := p.Stat(cat); ok {
			d := v - mean
			sqDiff += d * d
		}
	}
	stddev := math.Sqrt(sqDiff / float64(n))

	for _, p := range players {
		v, ok := p.Stat(cat)
		if !ok || stddev == 0 {
			setZScore(p, cat, 0)
			continue
		}
		z := (v - mean) / stddev
		if invert {
			z = -z
		}
		setZScore(p, cat, z)
	}
}

// ComputeTotalZ sums the named category z-scores into each player's
// TotalZ. Categories never scored contribute 0.
func ComputeTotalZ(players []*models.Player, categories []models.Category) {
	for _, p := range players {
		val := ensureValuation(p)
		var total float64
		for _, cat := range categories {
			total += val.ZScores[cat]
		}
		val.TotalZ = total
	}
}

// ComputeDollarValues converts summed z-scores into integer auction
// dollar values for one role's player pool. The replacement pool is the
// top teams x slotsForRole players by TotalZ; its weakest member sets the
// replacement baseline. The role's share of the total league budget is
// spread across value above replacement within the pool. Every player in
// the full list gets a value, floored at $1.
//
// Ties on TotalZ keep their original input order (stable sort), so
// valuation output is reproducible run to run.
func ComputeDollarValues(players []*models.Player, cfg models.LeagueConfig, slotsForRole int, budgetShare float64) {
	if len(players) == 0 {
		return
	}
	for _, p := range players {
		ensureValuation(p)
	}

	ranked := make([]*models.Player, len(players))
	copy(ranked, players)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Valuation.TotalZ > ranked[j].Valuation.TotalZ
	})

	poolSize := cfg.Teams * slotsForRole
	if poolSize > len(ranked) {
		poolSize = len(ranked)
	}
	pool := ranked[:poolSize]
	replacementZ := pool[poolSize-1].Valuation.TotalZ

	var varSum float64
	for _, p := range pool {
		varSum += p.Valuation.TotalZ - replacementZ
	}

	categoryBudget := cfg.TotalLeagueBudget() * budgetShare

	// All replacement-pool players tied on TotalZ leaves nothing to
	// allocate; clamp to 0 instead of dividing by it.
	var dollarPerZ float64
	if varSum > 0 {
		dollarPerZ = categoryBudget / varSum
	}

	for _, p := range ranked {
		val := p.Valuation
		raw := val.TotalZ - replacementZ
		if raw > 0 {
			val.ValueAboveReplacement = raw
			val.DollarValue = int(math.Round(raw * dollarPerZ))
			if val.DollarValue < 1 {
				val.DollarValue = 1
			}
		} else {
			val.ValueAboveReplacement = 0
			val.DollarValue = 1
		}
		val.PositionList = ParsePositions(p.Positions)
		val.PrimaryPosition = PrimaryPosition(val.PositionList)
	}

	log.Debug().
		Int("players", len(players)).
		Int("pool_size", poolSize).
		Float64("replacement_z", replacementZ).
		Float64("dollar_per_z", dollarPerZ).
		Msg("computed dollar values")
}

// ValuePlayers is the full valuation pipeline: split the raw pool by
// role, z-score every configured category, sum, and allocate dollars.
// The input slice is returned with valuation fields attached in place.
func ValuePlayers(players []*models.Player, cfg models.LeagueConfig) ([]*models.Player, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid league config: %w", err)
	}

	byRole := map[models.Role][]*models.Player{}
	for _, p := range players {
		byRole[p.Role()] = append(byRole[p.Role()], p)
	}

	for role, pool := range byRole {
		for _, cat := range cfg.CategoriesForRole(role) {
			ComputeZScores(pool, cat, CategoryInverted(cat))
		}
		ComputeTotalZ(pool, cfg.CategoriesForRole(role))

		share := cfg.HitterBudgetShare
		if role == models.RolePitcher {
			share = cfg.PitcherBudgetShare()
		}
		ComputeDollarValues(pool, cfg, models.SlotsForRole(role), share)

		log.Info().
			Str("role", string(role)).
			Int("players", len(pool)).
			Msg("valued player pool")
	}

	return players, nil
}

// CategoryInverted reports whether lower raw values are better for a
// category (ERA and WHIP).
func CategoryInverted(cat models.Category) bool {
	return cat == models.CategoryERA || cat == models.CategoryWHIP
}

func setZScore(p *models.Player, cat models.Category, z float64) {
	val := ensureValuation(p)
	val.ZScores[cat] = z
}

func ensureValuation(p *models.Player) *models.Valuation {
	if p.Valuation == nil {
		p.Valuation = &models.Valuation{ZScores: make(map[models.Category]float64)}
	}
	if p.Valuation.ZScores == nil {
		p.Valuation.ZScores = make(map[models.Category]float64)
	}
	return p.Valuation
}
