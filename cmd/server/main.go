package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"departly/internal/domain/repository"
	"departly/internal/infrastructure/config"
	"departly/internal/infrastructure/credentials"
	"departly/internal/infrastructure/persistence"
	adapter "departly/internal/interface/repository"
	"departly/internal/interface/rest"
	"departly/internal/usecase"
	"departly/pkg/logger"
	"departly/pkg/metrics"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/oauth2"
)

func main() {
	// Create logger
	log := logger.NewLogger(os.Getenv("LOG_LEVEL"))
	log.Info("Starting Departly service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("Configuration invalid", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	met := metrics.NewMetrics("departly")

	// Outbound API clients. Generation gets a longer budget than the
	// schedule and traffic lookups.
	apiClient := &http.Client{Timeout: 15 * time.Second}
	genClient := &http.Client{Timeout: 60 * time.Second}

	flightRepo := adapter.NewAviationStackRepository(apiClient, adapter.AviationStackBaseURL, cfg.FlightAPIKey, log)
	trafficRepo := adapter.NewGoogleMapsRepository(apiClient, adapter.GoogleMapsBaseURL, cfg.MapsAPIKey, log)
	geminiRepo := adapter.NewGeminiRepository(genClient, adapter.GeminiBaseURL, cfg.GeminiAPIKey, cfg.GeminiModel, log)

	// Set up the knowledge backend
	var attractionRepo repository.AttractionRepository
	var mongoClient *mongo.Client

	switch cfg.KBBackend {
	case config.KBBackendFirestore:
		blob, err := credentials.Load(cfg.GoogleCredentialsJSON, cfg.GoogleCredentialsFile)
		if err != nil {
			log.Fatal("Failed to read service credentials", "error", err)
		}
		cred, err := credentials.NewNormalizer(log).Normalize(blob)
		if err != nil {
			log.Fatal("Credential normalization failed", "error", err)
		}
		log.Info("Service credentials ready", "project", cred.ProjectID, "issuer", cred.ClientEmail)

		tokenSource, err := cred.TokenSource(ctx)
		if err != nil {
			log.Fatal("Failed to build token source", "error", err)
		}
		attractionRepo = adapter.NewFirestoreAttractionRepository(
			oauth2.NewClient(ctx, tokenSource),
			adapter.FirestoreBaseURL,
			cred.ProjectID,
			cfg.KBCollection,
			log,
		)
	case config.KBBackendMongo:
		log.Info("Connecting to MongoDB")
		mongoClient, err = persistence.NewMongoClient(ctx, cfg.MongoURI)
		if err != nil {
			log.Fatal("Failed to connect to MongoDB", "error", err)
		}
		attractionRepo = adapter.NewMongoAttractionRepository(persistence.GetDatabase(mongoClient, cfg.MongoDB), cfg.KBCollection)
	}

	// Set up the airport directory
	var airportRepo repository.AirportRepository
	if cfg.PostgresDSN != "" {
		gormDB, err := persistence.NewPostgresDB(cfg.PostgresDSN)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", "error", err)
		}
		airportRepo = adapter.NewGormAirportRepository(gormDB)
		log.Info("Airport directory: postgres")
	} else {
		airportRepo = adapter.NewStaticAirportRepository()
		log.Info("Airport directory: built-in table")
	}

	// Set up the journey store
	var journeyRepo repository.JourneyRepository
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient, err = persistence.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatal("Failed to connect to Redis", "error", err)
		}
		journeyRepo = adapter.NewRedisJourneyRepository(redisClient, cfg.JourneyTTL)
		log.Info("Journey store: redis", "ttl", cfg.JourneyTTL)
	} else {
		journeyRepo = adapter.NewMemoryJourneyRepository(cfg.JourneyTTL)
		log.Info("Journey store: in-memory", "ttl", cfg.JourneyTTL)
	}

	// Set up usecases
	calculator := usecase.NewDepartureCalculator(trafficRepo, usecase.PolicyFromConfig(cfg), met, log)
	resolver := usecase.NewCityResolver(airportRepo, flightRepo, log)
	retriever := usecase.NewKnowledgeRetriever(attractionRepo, cfg.KBBackend, cfg.KBQueryLimit, cfg.KBTimeout, met, log)
	retry := usecase.RetryPolicy{MaxAttempts: cfg.GenMaxAttempts, BaseDelay: cfg.GenBaseDelay, Jitter: true}
	generator := usecase.NewItineraryGenerator(geminiRepo, retry, cfg.GroundingPolicy, met, log)
	planner := usecase.NewJourneyPlanner(flightRepo, journeyRepo, calculator, resolver, retriever, generator, met, log)

	// One bounded probe before serving, so a credential hang surfaces as a
	// startup diagnostic instead of the first request stalling.
	log.Info("Probing knowledge backend", "backend", cfg.KBBackend, "timeout", cfg.ProbeTimeout)
	if err := retriever.Probe(ctx, cfg.ProbeTimeout); err != nil {
		log.Fatal("Knowledge backend probe failed", "backend", cfg.KBBackend, "error", err)
	}
	log.Info("Knowledge backend reachable", "backend", cfg.KBBackend)

	// Set up HTTP server
	handler := rest.NewJourneyHandler(planner, log)
	server := rest.NewRouter(cfg, handler, log)

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel() // Cancel the context to stop all goroutines

	if mongoClient != nil {
		if err := mongoClient.Disconnect(shutdownCtx); err != nil {
			log.Error("MongoDB disconnect error", "error", err)
		}
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Redis close error", "error", err)
		}
	}

	log.Info("Departly service stopped")
}
