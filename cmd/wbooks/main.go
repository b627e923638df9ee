package main

import (
	"context"
	"log"
	"os"

	"wbooks/internal/adapters/web"
	"wbooks/internal/application"
	"wbooks/internal/config"
	"wbooks/internal/infrastructure/i18n"
	"wbooks/internal/infrastructure/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Erreur de configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, os.Stderr)
	if err != nil {
		log.Fatalf("❌ Erreur lors de l'initialisation des logs: %v", err)
	}

	registry, err := i18n.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("loading translation catalogs")
	}
	logger.Info().Strs("locales", registry.Tags()).Msg("catalogs loaded")

	greeter := application.NewGreetingService(application.NewNegotiator(registry))
	srv := web.NewServer(cfg, greeter, logger)

	if err := srv.Start(context.Background()); err != nil {
		logger.Error().Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
}
