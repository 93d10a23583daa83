// Command mockapi serves the development stand-in for the FoodDash REST API
// on localhost, seeded with demo accounts and restaurants.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"

	"github.com/fooddash/client-go/internal/mockapi"
	"github.com/fooddash/client-go/pkg/logger"
)

type serverConfig struct {
	Port      int    `env:"MOCKAPI_PORT,       default=8080"`
	JWTSecret string `env:"MOCKAPI_JWT_SECRET, default=fooddash-dev-secret"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=true"`
}

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	var cfg serverConfig
	if err := envconfig.Process(ctx, &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	e := mockapi.NewRouter(mockapi.NewStore(), cfg.JWTSecret, log)

	go func() {
		log.Info().Int("port", cfg.Port).Msg("mock API listening")
		if err := e.Start(fmt.Sprintf(":%d", cfg.Port)); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
