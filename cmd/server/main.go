// @title           EV Charging Business Intelligence API
// @version         1.0
// @description     REST API для анализа рынка зарядных станций для электромобилей. Система хранит исследования рынка, площадки, финансовые сценарии, конкурентов, поставщиков, партнерства и регуляторные требования и рассчитывает по ним бизнес-показатели.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.email  akozadaev@inbox.ru
// @contact.url    https://github.com/akozadaev/go_ev_charging_platform

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api

// @schemes   http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/akozadaev/go_ev_charging_platform/docs" // swagger docs
	"github.com/akozadaev/go_ev_charging_platform/internal/config"
	"github.com/akozadaev/go_ev_charging_platform/internal/handlers"
	"github.com/akozadaev/go_ev_charging_platform/internal/logging"
	"github.com/akozadaev/go_ev_charging_platform/internal/middleware"
	"github.com/akozadaev/go_ev_charging_platform/internal/storage"
)

const startupTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.Environment)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	startCtx, cancelStart := context.WithTimeout(context.Background(), startupTimeout)
	defer cancelStart()

	store, err := openStore(startCtx, cfg, logger)
	if err != nil {
		logger.Fatal("Error creating document store", zap.String("backend", cfg.StoreBackend), zap.Error(err))
	}

	reference, closeReference := openReference(startCtx, cfg, logger)
	defer closeReference()

	h := handlers.NewHandlers(storage.NewRepository(store), reference, logger)

	// Настройка роутера
	router := mux.NewRouter()
	h.RegisterRoutes(router, cfg.APIPrefix)

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("none"),
		httpSwagger.DomID("swagger-ui"),
	))

	// Preflight OPTIONS обрабатывается до роутера
	handler := middleware.CORS(cfg.AllowedOrigins())(middleware.RequestLogger(logger)(router))

	srv := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server starting",
			zap.String("port", cfg.AppPort),
			zap.String("prefix", cfg.APIPrefix),
			zap.String("backend", cfg.StoreBackend),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Ожидание сигнала для graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := store.Close(ctx); err != nil {
		logger.Warn("Error closing document store", zap.Error(err))
	}

	logger.Info("Server exited")
}

// openStore создает документное хранилище выбранного типа
func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (storage.DocumentStore, error) {
	switch cfg.StoreBackend {
	case config.BackendMongo:
		ms, err := storage.NewMongoStorage(ctx, cfg.MongoURL, cfg.DBName)
		if err != nil {
			return nil, err
		}
		logger.Info("Connected to MongoDB", zap.String("db", cfg.DBName))
		return ms, nil

	case config.BackendMemory:
		logger.Warn("Using in-memory document store, data is lost on restart")
		return storage.NewMemoryStorage(), nil
	}

	esClient, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses:         []string{cfg.ElasticsearchURL},
		DisableMetaHeader: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create elasticsearch client: %w", err)
	}
	logger.Info("Elasticsearch/OpenSearch client initialized", zap.String("url", cfg.ElasticsearchURL))

	esStorage := storage.NewElasticsearchStorageWithURL(esClient, cfg.ElasticsearchIndexPrefix, cfg.ElasticsearchURL)

	mapping := readMapping(logger)
	if err := esStorage.EnsureIndices(ctx, mapping); err != nil {
		logger.Warn("Could not create indices", zap.Error(err))
	} else {
		logger.Info("Elasticsearch indices created/verified", zap.String("prefix", cfg.ElasticsearchIndexPrefix))
	}

	return esStorage, nil
}

// readMapping ищет файл маппинга в нескольких местах, иначе возвращает маппинг по умолчанию
func readMapping(logger *zap.Logger) string {
	mappingPaths := []string{
		"migrations/elasticsearch_mapping.json",
		"../migrations/elasticsearch_mapping.json",
		filepath.Join(filepath.Dir(os.Args[0]), "../migrations/elasticsearch_mapping.json"),
	}

	for _, path := range mappingPaths {
		data, err := os.ReadFile(path)
		if err == nil && len(data) > 0 {
			logger.Debug("Loaded index mapping", zap.String("path", path))
			return string(data)
		}
	}

	logger.Info("Mapping file not found, using default mapping")
	return storage.DefaultIndexMapping
}

// openReference подключает справочники из PostgreSQL.
// Если PostgreSQL отключен или недоступен, используются статические справочники.
func openReference(ctx context.Context, cfg *config.Config, logger *zap.Logger) (storage.ReferenceStore, func()) {
	if !cfg.Postgres.Enabled {
		logger.Info("PostgreSQL disabled, using static reference data")
		return storage.NewStaticReference(), func() {}
	}

	pgStorage, err := storage.NewPostgresStorage(ctx, cfg.PostgresDSN())
	if err != nil {
		logger.Warn("PostgreSQL unavailable, using static reference data", zap.Error(err))
		return storage.NewStaticReference(), func() {}
	}

	if err := pgStorage.EnsureSchema(ctx); err != nil {
		logger.Warn("Could not create reference schema, using static reference data", zap.Error(err))
		pgStorage.Close()
		return storage.NewStaticReference(), func() {}
	}

	logger.Info("Connected to PostgreSQL", zap.String("db", cfg.Postgres.DB))
	return pgStorage, func() {
		if err := pgStorage.Close(); err != nil {
			logger.Warn("Error closing PostgreSQL", zap.Error(err))
		}
	}
}
