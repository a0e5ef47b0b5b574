package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/xpmourad/cutout/internal/http/handlers"
	httpapi "github.com/xpmourad/cutout/internal/http/httpapi"
	"github.com/xpmourad/cutout/internal/infra"
	"github.com/xpmourad/cutout/internal/infra/geoip"
	"github.com/xpmourad/cutout/internal/providers/genai"
	"github.com/xpmourad/cutout/internal/providers/image"
	"github.com/xpmourad/cutout/internal/removal"
)

func main() {
	// .env is optional.
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
		logger.Warn().
			Str("model", cfg.GeminiModel).
			Msg("GEMINI_API_KEY is not set; background removal calls will fail until it is configured")
	}

	client := genai.NewClient(genai.Options{
		APIKey:  cfg.GeminiAPIKey,
		BaseURL: cfg.GeminiBaseURL,
		Model:   cfg.GeminiModel,
		Logger:  &logger,
	})
	editor := image.NewGeminiEditor(client)
	service := removal.NewService(editor, &logger)

	var countries geoip.CountryResolver
	if resolver, err := geoip.Open(cfg.GeoIPDBPath); err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	} else if resolver != nil {
		countries = resolver
		defer resolver.Close()
	}

	app := handlers.NewApp(cfg, logger, service)
	router := httpapi.NewRouter(app, countries)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
