package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"NutriViet_V1.0/internal/config"
	"NutriViet_V1.0/internal/database"
	"NutriViet_V1.0/internal/geminiservice"
	"NutriViet_V1.0/internal/mealplan"
	"NutriViet_V1.0/internal/models"
	"NutriViet_V1.0/internal/nutrition"
	"NutriViet_V1.0/internal/recipepool"
	"NutriViet_V1.0/internal/server"
	"NutriViet_V1.0/internal/usda"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func gracefulShutdown(apiServer *http.Server, done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	log.Info().Msg("shutting down gracefully, press Ctrl+C again to force")
	stop() // Allow Ctrl+C to force shutdown

	// Give in-flight generations 30 seconds to finish.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
	done <- true
}

// openStore opens the plan store selected by STORE_DRIVER.
func openStore(ctx context.Context, cfg *config.Config) (database.Service, error) {
	switch cfg.StoreDriver {
	case config.StorePostgres:
		dsn := database.PostgresDSN(cfg.DBUsername, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBDatabase, cfg.DBSchema)
		pg, err := database.NewPostgres(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return pg, nil
	default:
		lite, err := database.NewSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return lite, nil
	}
}

// newCompleter returns the model client selected by LLM_PROVIDER, or nil
// when the model is disabled. The returned cleanup is never nil.
func newCompleter(ctx context.Context, cfg *config.Config) (geminiservice.ChatCompleter, func(), error) {
	noop := func() {}
	switch cfg.LLMProvider {
	case config.ProviderGemini:
		return geminiservice.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel), noop, nil
	case config.ProviderGeminiSDK:
		c, err := geminiservice.NewSDKClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, noop, err
		}
		return c, func() {
			if err := c.Close(); err != nil {
				log.Warn().Err(err).Msg("Failed to close Gemini SDK client")
			}
		}, nil
	case config.ProviderGroq:
		return geminiservice.NewGroqClient(cfg.GroqAPIKey, cfg.GroqModel), noop, nil
	}
	return nil, noop, nil
}

func main() {
	cfg, err := config.NewFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	zerolog.SetGlobalLevel(cfg.LogLevel)
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Str("service", "nutriviet").Logger()

	ctx := context.Background()

	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StoreDriver).Msg("Could not open plan store")
	}
	defer store.Close()

	client, closeClient, err := newCompleter(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("provider", cfg.LLMProvider).Msg("Could not create LLM client")
	}
	defer closeClient()

	driver, err := geminiservice.NewDriver(client, cfg.LLMCacheSize,
		geminiservice.WithLimiter(geminiservice.NewLimiter(cfg.LLMRequestsPerMinute, cfg.LLMRequestsPerDay)),
		geminiservice.WithLogger(log.With().Str("component", "llm").Logger()),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not create LLM driver")
	}

	opts := []mealplan.Option{
		mealplan.WithSuggester(driver),
		mealplan.WithStore(store),
		mealplan.WithEnhancedInfo(cfg.EnhancedInfo),
		mealplan.WithLogger(log.With().Str("component", "planner").Logger()),
	}
	if cfg.USDAAPIKey != "" {
		foods, err := usda.NewClient(cfg.USDAAPIKey)
		if err != nil {
			log.Fatal().Err(err).Msg("Could not create USDA client")
		}
		opts = append(opts, mealplan.WithFoodLookup(foods.WithLogger(log.With().Str("component", "usda").Logger())))
	}
	pool := recipepool.Default()
	log.Info().
		Int("breakfast", pool.Size(models.SlotBreakfast)).
		Int("lunch", pool.Size(models.SlotLunch)).
		Int("dinner", pool.Size(models.SlotDinner)).
		Msg("Recipe pool loaded")
	planner := mealplan.NewPlanner(pool, nutrition.NewTable(), opts...)

	apiServer := server.New(cfg.Port, store, planner, []byte(cfg.JWTSecret)).HTTPServer()

	// Create a done channel to signal when the shutdown is complete
	done := make(chan bool, 1)

	go gracefulShutdown(apiServer, done)

	log.Info().
		Int("port", cfg.Port).
		Str("store", cfg.StoreDriver).
		Str("llm", cfg.LLMProvider).
		Bool("model_enabled", driver.Enabled()).
		Msg("Starting meal plan API")
	err = apiServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server error")
	}

	// Wait for the graceful shutdown to complete
	<-done
	log.Info().Msg("Graceful shutdown complete.")
}
