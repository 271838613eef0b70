package models

// Role identifies which half of the player pool a stat line belongs to.
// A two-way player appears as two independent stat lines, one per role.
type Role string

const (
	RoleHitter  Role = "HITTER"
	RolePitcher Role = "PITCHER"
)

// Category names a single valuation category. Each category maps onto one
// numeric stat field for its role.
type Category string

const (
	// Hitter categories
	CategoryRunsProduced Category = "runs_produced" // R + RBI - HR
	CategoryHomeRuns     Category = "hr"
	CategoryStolenBases  Category = "sb"
	CategoryBattingAvg   Category = "avg"
	CategoryOnBasePct    Category = "obp"
	CategorySluggingPct  Category = "slg"

	// Pitcher categories
	CategoryStrikeouts Category = "k"
	CategoryWins       Category = "w"
	CategorySaves      Category = "sv"
	CategoryERA        Category = "era"  // lower is better
	CategoryWHIP       Category = "whip" // lower is better
)

// StatLine is a marker interface for role-specific season stats
type StatLine interface {
	Role() Role
}

// Player represents one season stat line for one real-world player in one role
type Player struct {
	Name      string `json:"name"`
	Team      string `json:"team"`
	Positions string `json:"positions"` // raw comma-separated eligibility, first = primary

	Hitting  *HitterStats  `json:"hitting,omitempty"`
	Pitching *PitcherStats `json:"pitching,omitempty"`

	// Valuation output, attached in place by the valuation pipeline
	Valuation *Valuation `json:"valuation,omitempty"`
}

// Role returns which half of the pool this stat line belongs to
func (p *Player) Role() Role {
	if p.Pitching != nil {
		return RolePitcher
	}
	return RoleHitter
}

// HitterStats holds a hitter's season line. Optional fields may be absent
// from the upstream dataset; absent values are excluded from category
// statistics but never drop the player from the pool.
type HitterStats struct {
	AtBats      *float64 `json:"at_bats,omitempty"`
	BattingAvg  *float64 `json:"avg,omitempty"`
	Runs        *float64 `json:"runs,omitempty"`
	HomeRuns    *float64 `json:"hr,omitempty"`
	RBI         *float64 `json:"rbi,omitempty"`
	StolenBases *float64 `json:"sb,omitempty"`
	OnBasePct   *float64 `json:"obp,omitempty"`
	SluggingPct *float64 `json:"slg,omitempty"`
}

// Role returns RoleHitter
func (s *HitterStats) Role() Role {
	return RoleHitter
}

// RunsProduced is the composite counting stat R + RBI - HR. Subtracting
// home runs avoids counting the same run-producing event twice. Absent
// when none of the inputs are present.
func (s *HitterStats) RunsProduced() (float64, bool) {
	if s.Runs == nil && s.RBI == nil && s.HomeRuns == nil {
		return 0, false
	}
	var total float64
	if s.Runs != nil {
		total += *s.Runs
	}
	if s.RBI != nil {
		total += *s.RBI
	}
	if s.HomeRuns != nil {
		total -= *s.HomeRuns
	}
	return total, true
}

// Stat returns the value backing a hitter category. The second return is
// false when the field is absent from the stat line.
func (s *HitterStats) Stat(cat Category) (float64, bool) {
	switch cat {
	case CategoryRunsProduced:
		return s.RunsProduced()
	case CategoryHomeRuns:
		return deref(s.HomeRuns)
	case CategoryStolenBases:
		return deref(s.StolenBases)
	case CategoryBattingAvg:
		return deref(s.BattingAvg)
	case CategoryOnBasePct:
		return deref(s.OnBasePct)
	case CategorySluggingPct:
		return deref(s.SluggingPct)
	default:
		return 0, false
	}
}

// PitcherStats holds a pitcher's season line
type PitcherStats struct {
	InningsPitched *float64 `json:"ip,omitempty"`
	Strikeouts     *float64 `json:"k,omitempty"`
	Wins           *float64 `json:"w,omitempty"`
	Saves          *float64 `json:"sv,omitempty"`
	ERA            *float64 `json:"era,omitempty"`
	WHIP           *float64 `json:"whip,omitempty"`
}

// Role returns RolePitcher
func (s *PitcherStats) Role() Role {
	return RolePitcher
}

// Stat returns the value backing a pitcher category
func (s *PitcherStats) Stat(cat Category) (float64, bool) {
	switch cat {
	case CategoryStrikeouts:
		return deref(s.Strikeouts)
	case CategoryWins:
		return deref(s.Wins)
	case CategorySaves:
		return deref(s.Saves)
	case CategoryERA:
		return deref(s.ERA)
	case CategoryWHIP:
		return deref(s.WHIP)
	default:
		return 0, false
	}
}

// Stat dispatches to the role-specific stat line
func (p *Player) Stat(cat Category) (float64, bool) {
	switch {
	case p.Hitting != nil:
		return p.Hitting.Stat(cat)
	case p.Pitching != nil:
		return p.Pitching.Stat(cat)
	default:
		return 0, false
	}
}

func deref(v *float64) (float64, bool) {
	if v == nil {
		return 0, false
	}
	return *v, true
}

// Valuation holds the fields attached to a player by the valuation pipeline
type Valuation struct {
	ZScores               map[Category]float64 `json:"z_scores"`
	TotalZ                float64              `json:"total_z"`
	ValueAboveReplacement float64              `json:"value_above_replacement"`
	DollarValue           int                  `json:"dollar_value"`
	PositionList          []string             `json:"position_list"`
	PrimaryPosition       string               `json:"primary_position"`
}
