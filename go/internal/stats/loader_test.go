package stats

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadHitters(t *testing.T) {
	path := writeCSV(t, "hitters.csv", `name,team,positions,ab,avg,r,hr,rbi,sb,obp,slg
Aaron Judge,NYY,RF,550,0.310,120,52,110,8,0.420,0.650
Bobby Witt Jr.,KC,"SS, CF",600,0.320,115,30,95,35,0.380,0.550
`)

	players, err := LoadHitters(path)
	require.NoError(t, err)
	require.Len(t, players, 2)

	judge := players[0]
	assert.Equal(t, "Aaron Judge", judge.Name)
	assert.Equal(t, "NYY", judge.Team)
	require.NotNil(t, judge.Hitting.HomeRuns)
	assert.Equal(t, 52.0, *judge.Hitting.HomeRuns)
	assert.Nil(t, judge.Pitching)

	witt := players[1]
	assert.Equal(t, "SS, CF", witt.Positions)
}

func TestLoadHitters_MalformedNumericCoalescesToAbsent(t *testing.T) {
	path := writeCSV(t, "hitters.csv", `name,team,positions,ab,avg,r,hr,rbi,sb,obp,slg
Broken Row,BAL,1B,not-a-number,0.280,,25,80,2,0.340,0.480
`)

	players, err := LoadHitters(path)
	require.NoError(t, err, "malformed cells degrade, they never fail the load")
	require.Len(t, players, 1)

	p := players[0]
	assert.Nil(t, p.Hitting.AtBats)
	assert.Nil(t, p.Hitting.Runs)
	require.NotNil(t, p.Hitting.HomeRuns)
	assert.Equal(t, 25.0, *p.Hitting.HomeRuns)
}

func TestLoadPitchers(t *testing.T) {
	path := writeCSV(t, "pitchers.csv", `name,team,positions,ip,k,w,sv,era,whip
Tarik Skubal,DET,SP,192,228,18,0,2.39,0.92
Emmanuel Clase,CLE,RP,74,66,5,47,0.61,0.66
`)

	players, err := LoadPitchers(path)
	require.NoError(t, err)
	require.Len(t, players, 2)

	clase := players[1]
	require.NotNil(t, clase.Pitching.Saves)
	assert.Equal(t, 47.0, *clase.Pitching.Saves)
	assert.Nil(t, clase.Hitting)
}

func TestLoadHitters_MissingFile(t *testing.T) {
	_, err := LoadHitters(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}

func TestLoadHitters_SkipsNamelessRows(t *testing.T) {
	path := writeCSV(t, "hitters.csv", `name,team,positions,ab,avg,r,hr,rbi,sb,obp,slg
,NYY,RF,550,0.310,120,52,110,8,0.420,0.650
Juan Soto,NYM,RF,580,0.290,105,41,102,9,0.410,0.570
`)

	players, err := LoadHitters(path)
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, "Juan Soto", players[0].Name)
}
