package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/auctioneer/go/internal/draft/gateway"
	"github.com/mcdev12/auctioneer/go/internal/ledger"
	"github.com/mcdev12/auctioneer/go/internal/stats"
	"github.com/mcdev12/auctioneer/go/internal/valuation"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	// Setup logging
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	config, err := loadConfig(getEnv("CONFIG_PATH", "config.yaml"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Load the player pool and value it once; dollar values are static
	// for the whole session.
	hitters, err := stats.LoadHitters(config.Data.HittersCSV)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load hitter stats")
	}
	pitchers, err := stats.LoadPitchers(config.Data.PitchersCSV)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load pitcher stats")
	}

	players := append(hitters, pitchers...)
	valued, err := valuation.ValuePlayers(players, config.League)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to value player pool")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ledgerApp := ledger.NewApp(ledger.NewMemorySessionRepository(), clockwork.NewRealClock())
	session, err := ledgerApp.CreateSession(ctx, config.League)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create draft session")
	}

	connectionManager := gateway.NewConnectionManager(gateway.DefaultConnectionConfig())
	go connectionManager.Start(ctx)

	svc := gateway.NewService(ledgerApp, session.ID, valued, connectionManager)
	wsHandler := gateway.NewWebSocketHandler(connectionManager, session)

	server := setupServer(config.Server.Port, svc, wsHandler)

	go func() {
		log.Info().
			Str("addr", server.Addr).
			Str("session_id", session.ID.String()).
			Int("players", len(valued)).
			Int("teams", config.League.Teams).
			Msg("auction draft tool listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
