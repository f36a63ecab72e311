package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/workwork/workwork-order-service/internal/config"
	"github.com/workwork/workwork-order-service/internal/delivery/http/handlers"
	"github.com/workwork/workwork-order-service/internal/infrastructure/escrow"
	publisher "github.com/workwork/workwork-order-service/internal/infrastructure/kafka"
	"github.com/workwork/workwork-order-service/internal/infrastructure/metrics"
	"github.com/workwork/workwork-order-service/internal/infrastructure/migrate"
	"github.com/workwork/workwork-order-service/internal/infrastructure/postgres"
	"github.com/workwork/workwork-order-service/internal/infrastructure/postgres/repository"
	"github.com/workwork/workwork-order-service/internal/usecase/eligibility"
	usecase "github.com/workwork/workwork-order-service/internal/usecase/order"
	"github.com/workwork/workwork-order-service/internal/usecase/seller"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()

	setupLogger(cfg)

	// Init database
	db := postgres.MustInitDB(cfg)
	if err := migrate.RunMigrations(db, cfg.Migrations.Path); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	// Init kafka publisher
	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	pub, err := publisher.NewDefaultKafkaPublisher(brokers, cfg.KafkaService.Topic)
	if err != nil {
		log.Fatalf("failed to init kafka publisher: %v", err)
	}
	defer pub.Close()

	// Init metrics
	orderMetrics := metrics.NewOrderMetrics()

	// Init escrow client
	escrowClient, err := escrow.NewHTTPEscrowClient(
		cfg.EscrowService.BaseURL,
		time.Duration(cfg.EscrowService.TimeoutSeconds)*time.Second,
		orderMetrics,
	)
	if err != nil {
		log.Fatalf("failed to init escrow client: %v", err)
	}

	// Init repositories
	orderRepo := repository.NewDefaultOrderRepository(db)
	catalogRepo := repository.NewDefaultCatalogRepository(db)
	userDirectory := repository.NewDefaultUserDirectory(db)

	// Init eligibility validator
	eligibilityValidator := eligibility.NewDefaultValidator(userDirectory)
	// Init seller onboarding usecase
	sellerOnboarding := seller.NewDefaultOnboardingUsecase(orderRepo, userDirectory, escrowClient)
	// Init order usecase
	uc := usecase.NewDefaultOrderUsecase(
		orderRepo,
		catalogRepo,
		userDirectory,
		escrowClient,
		eligibilityValidator,
		sellerOnboarding,
		pub,
		orderMetrics,
		cfg.EscrowService.TokenMint,
	)

	mux := http.NewServeMux()
	handlers.NewOrderHandler(uc).Register(mux)
	mux.Handle("GET /metrics", promhttp.Handler())

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	slog.Info("order service listening", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("http server stopped: %v", err)
	}
}

func setupLogger(cfg *config.OrderConfig) {
	var level slog.Level
	switch cfg.LogConfig.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var handler slog.Handler
	if cfg.LogConfig.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	slog.SetDefault(slog.New(handler))
}
