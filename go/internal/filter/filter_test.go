package filter

import (
	"testing"

	"github.com/mcdev12/auctioneer/go/internal/models"
	"github.com/stretchr/testify/assert"
)

func player(name, team, positions string) *models.Player {
	return &models.Player{
		Name:      name,
		Team:      team,
		Positions: positions,
		Hitting:   &models.HitterStats{},
	}
}

func TestMatches_SearchCaseInsensitive(t *testing.T) {
	p := player("Bobby Witt Jr.", "KC", "SS")

	assert.True(t, Matches(p, Criteria{Search: "witt"}))
	assert.True(t, Matches(p, Criteria{Search: "BOBBY"}))
	assert.False(t, Matches(p, Criteria{Search: "judge"}))
}

func TestMatches_PositionAnyEligible(t *testing.T) {
	p := player("Mookie Betts", "LAD", "2B, SS, RF")

	assert.True(t, Matches(p, Criteria{Position: "SS"}))
	assert.True(t, Matches(p, Criteria{Position: "OF"}), "RF eligibility satisfies the OF filter")
	assert.False(t, Matches(p, Criteria{Position: "C"}))
}

func TestMatches_TeamExact(t *testing.T) {
	p := player("Julio Rodriguez", "SEA", "CF")

	assert.True(t, Matches(p, Criteria{Team: "SEA"}))
	assert.False(t, Matches(p, Criteria{Team: "SF"}))
}

func TestMatches_AllWildcard(t *testing.T) {
	p := player("Julio Rodriguez", "SEA", "CF")

	assert.True(t, Matches(p, Criteria{Position: FilterAll, Team: FilterAll}))
	assert.True(t, Matches(p, Criteria{}))
}

func TestApply_PreservesOrder(t *testing.T) {
	players := []*models.Player{
		player("Aaron Judge", "NYY", "RF"),
		player("Juan Soto", "NYM", "RF"),
		player("Anthony Volpe", "NYY", "SS"),
	}

	got := Apply(players, Criteria{Team: "NYY"})
	assert.Len(t, got, 2)
	assert.Equal(t, "Aaron Judge", got[0].Name)
	assert.Equal(t, "Anthony Volpe", got[1].Name)
}
