package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lucbrn/memory/go-server/internal/faces"
	"github.com/lucbrn/memory/go-server/internal/httpserver"
	"github.com/lucbrn/memory/go-server/internal/store"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	// Config-time check: a short catalog must stop the server here so deck
	// building can never fail mid-game.
	if err := faces.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load face catalog")
	}

	db, err := openDB(getEnv("DB_PATH", "./data/memory.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()
	if err := migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	sessions := store.NewMemoryStore()
	srv := httpserver.New(sessions, db)
	port := getEnv("PORT", "5176")
	log.Info().Str("port", port).Int("faces", faces.Count()).Msg("starting memory go-server")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
