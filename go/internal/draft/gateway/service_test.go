package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/auctioneer/go/internal/ledger"
	"github.com/mcdev12/auctioneer/go/internal/models"
	"github.com/mcdev12/auctioneer/go/internal/valuation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fp(v float64) *float64 {
	return &v
}

func testPool(t *testing.T) []*models.Player {
	t.Helper()
	players := []*models.Player{
		{
			Name: "Aaron Judge", Team: "NYY", Positions: "RF",
			Hitting: &models.HitterStats{Runs: fp(120), HomeRuns: fp(52), RBI: fp(110), StolenBases: fp(8), BattingAvg: fp(0.310), OnBasePct: fp(0.420), SluggingPct: fp(0.650)},
		},
		{
			Name: "Bobby Witt Jr.", Team: "KC", Positions: "SS, CF",
			Hitting: &models.HitterStats{Runs: fp(115), HomeRuns: fp(30), RBI: fp(95), StolenBases: fp(35), BattingAvg: fp(0.320), OnBasePct: fp(0.380), SluggingPct: fp(0.550)},
		},
		{
			Name: "Jose Caballero", Team: "NYY", Positions: "SS",
			Hitting: &models.HitterStats{Runs: fp(40), HomeRuns: fp(4), RBI: fp(25), StolenBases: fp(30), BattingAvg: fp(0.230), OnBasePct: fp(0.290), SluggingPct: fp(0.320)},
		},
		{
			Name: "Tarik Skubal", Team: "DET", Positions: "SP",
			Pitching: &models.PitcherStats{InningsPitched: fp(192), Strikeouts: fp(228), Wins: fp(18), Saves: fp(0), ERA: fp(2.39), WHIP: fp(0.92)},
		},
		{
			Name: "Kyle Gibson", Team: "BAL", Positions: "SP",
			Pitching: &models.PitcherStats{InningsPitched: fp(170), Strikeouts: fp(140), Wins: fp(8), Saves: fp(0), ERA: fp(4.90), WHIP: fp(1.35)},
		},
	}
	valued, err := valuation.ValuePlayers(players, models.DefaultLeagueConfig())
	require.NoError(t, err)
	return valued
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	app := ledger.NewApp(ledger.NewMemorySessionRepository(), clockwork.NewFakeClock())
	session, err := app.CreateSession(context.Background(), models.DefaultLeagueConfig())
	require.NoError(t, err)

	svc := NewService(app, session.ID, testPool(t), NewConnectionManager(DefaultConnectionConfig()))

	mux := http.NewServeMux()
	svc.RegisterRoutes(mux)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, out interface{}) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp.StatusCode
}

func postJSON(t *testing.T, url string, body interface{}, out interface{}) int {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestListPlayers_SortedByDollarValue(t *testing.T) {
	srv := newTestServer(t)

	var players []*models.Player
	status := getJSON(t, srv.URL+"/api/players?role=hitters", &players)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, players, 3)

	for i := 1; i < len(players); i++ {
		assert.GreaterOrEqual(t, players[i-1].Valuation.DollarValue, players[i].Valuation.DollarValue)
	}
}

func TestListPlayers_Filtered(t *testing.T) {
	srv := newTestServer(t)

	var players []*models.Player
	getJSON(t, srv.URL+"/api/players?role=hitters&team=NYY", &players)
	require.Len(t, players, 2)

	getJSON(t, srv.URL+"/api/players?role=hitters&position=OF", &players)
	require.Len(t, players, 2, "RF and CF eligibility both satisfy OF")

	getJSON(t, srv.URL+"/api/players?role=pitchers&search=skubal", &players)
	require.Len(t, players, 1)
	assert.Equal(t, "Tarik Skubal", players[0].Name)
}

func TestAssignFlow(t *testing.T) {
	srv := newTestServer(t)

	var team models.Team
	status := postJSON(t, srv.URL+"/api/teams/1/assign", map[string]interface{}{
		"slot": "OF_1", "player_name": "Aaron Judge", "role": "hitters", "cost": 55,
	}, &team)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, team.Slots["OF_1"].Player)
	assert.Equal(t, "Aaron Judge", team.Slots["OF_1"].Player.Name)
	assert.Equal(t, 55, team.Slots["OF_1"].Cost)

	var metrics models.TeamMetrics
	status = getJSON(t, srv.URL+"/api/teams/1/metrics", &metrics)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, metrics.FilledSpots)
	assert.Equal(t, 205, metrics.RemainingBudget)

	var holders []*models.Team
	status = getJSON(t, srv.URL+"/api/drafted?name=Aaron+Judge", &holders)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, holders, 1)
	assert.Equal(t, 1, holders[0].ID)
}

func TestAssign_ValidationErrors(t *testing.T) {
	srv := newTestServer(t)

	var errResp errorResponse
	status := postJSON(t, srv.URL+"/api/teams/1/assign", map[string]interface{}{
		"slot": "OF_1", "player_name": "Nobody Real", "role": "hitters", "cost": 10,
	}, &errResp)
	assert.Equal(t, http.StatusBadRequest, status, "unknown player surfaces as a validation error")

	status = postJSON(t, srv.URL+"/api/teams/1/assign", map[string]interface{}{
		"slot": "OF_1", "player_name": "Aaron Judge", "role": "hitters", "cost": 0,
	}, &errResp)
	assert.Equal(t, http.StatusBadRequest, status)

	status = postJSON(t, srv.URL+"/api/teams/99/assign", map[string]interface{}{
		"slot": "OF_1", "player_name": "Aaron Judge", "role": "hitters", "cost": 10,
	}, &errResp)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestClearAndRename(t *testing.T) {
	srv := newTestServer(t)

	status := postJSON(t, srv.URL+"/api/teams/2/assign", map[string]interface{}{
		"slot": "SS", "player_name": "Bobby Witt Jr.", "role": "hitters", "cost": 48,
	}, nil)
	require.Equal(t, http.StatusOK, status)

	var team models.Team
	status = postJSON(t, srv.URL+"/api/teams/2/clear", map[string]interface{}{"slot": "SS"}, &team)
	require.Equal(t, http.StatusOK, status)
	assert.Nil(t, team.Slots["SS"].Player)

	// Clearing again is a no-op, not an error
	status = postJSON(t, srv.URL+"/api/teams/2/clear", map[string]interface{}{"slot": "SS"}, &team)
	require.Equal(t, http.StatusOK, status)

	status = postJSON(t, srv.URL+"/api/teams/2/rename", map[string]interface{}{"name": "Salvy's Crew"}, &team)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Salvy's Crew", team.Name)

	var errResp errorResponse
	status = postJSON(t, srv.URL+"/api/teams/2/rename", map[string]interface{}{"name": ""}, &errResp)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestGetSession(t *testing.T) {
	srv := newTestServer(t)

	var session models.DraftSession
	status := getJSON(t, srv.URL+"/api/session", &session)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, session.Teams, 12)
}
