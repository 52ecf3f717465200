package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-baas-api/internal/application/gateway"
	"github.com/go-baas-api/internal/config"
	"github.com/go-baas-api/internal/domain"
	"github.com/go-baas-api/internal/infrastructure/dynamo"
	"github.com/go-baas-api/internal/infrastructure/memstore"
	"github.com/go-baas-api/internal/infrastructure/simulator"
	"github.com/go-baas-api/internal/infrastructure/sns"
	transporthttp "github.com/go-baas-api/internal/transport/http"
	"github.com/joho/godotenv"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	logger := newLogger(cfg)
	slog.SetDefault(logger)
	if envErr != nil {
		logger.Info("no .env file found, reading from environment")
	}

	ctx := context.Background()
	deps, err := buildDeps(ctx, cfg, logger)
	if err != nil {
		logger.Error("could not initialise backing stores", "err", err)
		os.Exit(1)
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "port", cfg.AppPort, "env", cfg.AppEnv,
			"customers", cfg.CustomerBackend, "clients", cfg.ClientBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", "err", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if strings.EqualFold(cfg.LogFormat, "json") {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(h).With("app", cfg.AppName)
}

func buildDeps(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*transporthttp.Deps, error) {
	var dynamoAPI dynamo.API
	if cfg.UsesDynamo() {
		c, err := dynamo.NewClient(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("dynamodb client: %w", err)
		}
		var tables []string
		if cfg.CustomerBackend == config.BackendDynamo {
			tables = append(tables, cfg.DynamoTables.Customers)
		}
		if cfg.ClientBackend == config.BackendDynamo {
			tables = append(tables, cfg.DynamoTables.Clients)
		}
		dynamo.Bootstrap(ctx, c, tables...)
		dynamoAPI = c
	}
	httpClient := simulator.NewHTTPClient(cfg)

	customers, err := pickStore[domain.Customer](cfg.CustomerBackend, "Customer", "/customers",
		cfg, httpClient, dynamoAPI, cfg.DynamoTables.Customers)
	if err != nil {
		return nil, err
	}
	clients, err := pickStore[domain.Client](cfg.ClientBackend, "Client", "/clients",
		cfg, httpClient, dynamoAPI, cfg.DynamoTables.Clients)
	if err != nil {
		return nil, err
	}

	deps := &transporthttp.Deps{
		CustomerStore: customers,
		ClientStore:   clients,
		AddressStore:  memstore.New[domain.Address]("Address"),
		Logger:        logger,
	}
	if cfg.SNSTopicARN != "" {
		pub, err := sns.NewPublisher(ctx, cfg)
		if err != nil {
			logger.Warn("SNS publisher not available, events are logged only", "err", err)
		} else {
			deps.Publisher = pub
		}
	}
	return deps, nil
}

func pickStore[T domain.Keyed](backend, noun, path string, cfg *config.Config,
	httpClient *http.Client, dynamoAPI dynamo.API, table string) (gateway.Store[T], error) {
	switch backend {
	case config.BackendMemory:
		return memstore.New[T](noun), nil
	case config.BackendSimulator:
		return simulator.NewCollection[T](httpClient, cfg.SimulatorURL, path), nil
	case config.BackendDynamo:
		return dynamo.NewRepo[T](dynamoAPI, table, noun), nil
	}
	return nil, fmt.Errorf("unknown backend %q for %s", backend, strings.ToLower(noun))
}
