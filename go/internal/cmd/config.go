package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mcdev12/auctioneer/go/internal/models"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Data struct {
		HittersCSV  string `yaml:"hitters_csv"`
		PitchersCSV string `yaml:"pitchers_csv"`
	} `yaml:"data"`
	League models.LeagueConfig `yaml:"league"`
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// loadConfig reads the YAML config file and applies env overrides.
// A missing file falls back to the default league setup.
func loadConfig(path string) (*Config, error) {
	var config Config

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		config.League = models.DefaultLeagueConfig()
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
		if config.League.Teams == 0 {
			config.League = models.DefaultLeagueConfig()
		}
	}

	config.Server.Port = getEnv("PORT", defaultString(config.Server.Port, "8080"))
	config.Data.HittersCSV = getEnv("HITTERS_CSV", defaultString(config.Data.HittersCSV, "data/hitters.csv"))
	config.Data.PitchersCSV = getEnv("PITCHERS_CSV", defaultString(config.Data.PitchersCSV, "data/pitchers.csv"))
	config.League.Teams = getEnvAsInt("LEAGUE_TEAMS", config.League.Teams)
	config.League.Budget = getEnvAsInt("LEAGUE_BUDGET", config.League.Budget)

	if err := config.League.Validate(); err != nil {
		return nil, fmt.Errorf("invalid league config: %w", err)
	}
	return &config, nil
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
