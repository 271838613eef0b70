package stats

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mcdev12/auctioneer/go/internal/models"
	"github.com/rs/zerolog/log"
)

// Loader reads the season stat exports the draft tool ships as static
// data, one CSV per role. Malformed or empty numeric cells are loaded as
// absent rather than failing the row; the valuation engine treats absent
// values as contributing nothing.

// LoadHitters reads a hitter stat CSV. Expected columns: name, team,
// positions, ab, avg, r, hr, rbi, sb, obp, slg. Column order is taken
// from the header row.
func LoadHitters(path string) ([]*models.Player, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	players := make([]*models.Player, 0, len(rows.records))
	for _, rec := range rows.records {
		p := &models.Player{
			Name:      rows.field(rec, "name"),
			Team:      rows.field(rec, "team"),
			Positions: rows.field(rec, "positions"),
			Hitting: &models.HitterStats{
				AtBats:      rows.number(rec, "ab"),
				BattingAvg:  rows.number(rec, "avg"),
				Runs:        rows.number(rec, "r"),
				HomeRuns:    rows.number(rec, "hr"),
				RBI:         rows.number(rec, "rbi"),
				StolenBases: rows.number(rec, "sb"),
				OnBasePct:   rows.number(rec, "obp"),
				SluggingPct: rows.number(rec, "slg"),
			},
		}
		if p.Name == "" {
			continue
		}
		players = append(players, p)
	}

	log.Info().Str("path", path).Int("players", len(players)).Msg("loaded hitter pool")
	return players, nil
}

// LoadPitchers reads a pitcher stat CSV. Expected columns: name, team,
// positions, ip, k, w, sv, era, whip.
func LoadPitchers(path string) ([]*models.Player, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	players := make([]*models.Player, 0, len(rows.records))
	for _, rec := range rows.records {
		p := &models.Player{
			Name:      rows.field(rec, "name"),
			Team:      rows.field(rec, "team"),
			Positions: rows.field(rec, "positions"),
			Pitching: &models.PitcherStats{
				InningsPitched: rows.number(rec, "ip"),
				Strikeouts:     rows.number(rec, "k"),
				Wins:           rows.number(rec, "w"),
				Saves:          rows.number(rec, "sv"),
				ERA:            rows.number(rec, "era"),
				WHIP:           rows.number(rec, "whip"),
			},
		}
		if p.Name == "" {
			continue
		}
		players = append(players, p)
	}

	log.Info().Str("path", path).Int("players", len(players)).Msg("loaded pitcher pool")
	return players, nil
}

type table struct {
	columns map[string]int
	records [][]string
}

func readCSV(path string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open stat file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var records [][]string
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}
		records = append(records, rec)
	}

	return &table{columns: columns, records: records}, nil
}

func (t *table) field(rec []string, column string) string {
	idx, ok := t.columns[column]
	if !ok || idx >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[idx])
}

// number parses a numeric cell, returning nil for empty or malformed
// values so they read as absent downstream.
func (t *table) number(rec []string, column string) *float64 {
	raw := t.field(rec, column)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Debug().Str("column", column).Str("value", raw).Msg("skipping malformed stat value")
		return nil
	}
	return &v
}
