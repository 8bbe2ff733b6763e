package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"go.uber.org/zap"

	"github.com/akozadaev/go_ev_charging_platform/internal/config"
	"github.com/akozadaev/go_ev_charging_platform/internal/logging"
	"github.com/akozadaev/go_ev_charging_platform/internal/models"
	"github.com/akozadaev/go_ev_charging_platform/internal/seed"
	"github.com/akozadaev/go_ev_charging_platform/internal/storage"
)

func main() {
	synthetic := flag.Int("synthetic", 0, "number of synthetic locations to generate in addition to the sample data")
	file := flag.String("file", "", "JSON file with locations to load in addition to the sample data")
	skipSamples := flag.Bool("skip-samples", false, "do not replace sample collections")
	flag.Parse()

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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	store, err := openStore(ctx, cfg)
	if err != nil {
		logger.Fatal("Error creating document store", zap.String("backend", cfg.StoreBackend), zap.Error(err))
	}
	defer store.Close(context.Background()) //nolint:errcheck

	now := time.Now().UTC()

	if !*skipSamples {
		result, err := seed.Initialize(ctx, store, now)
		if err != nil {
			logger.Fatal("Error initializing sample data", zap.Error(err))
		}
		logger.Info(result.Message, zap.Any("inserted", result.DataInserted))
	}

	var locations []models.LocationAnalysis
	if *synthetic > 0 {
		rng := rand.New(rand.NewSource(now.UnixNano()))
		locations = append(locations, seed.GenerateLocations(*synthetic, rng, now)...)
	}
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			logger.Fatal("Error opening locations file", zap.String("file", *file), zap.Error(err))
		}
		loaded, err := seed.LoadLocations(f)
		f.Close()
		if err != nil {
			logger.Fatal("Error loading locations file", zap.String("file", *file), zap.Error(err))
		}
		locations = append(locations, loaded...)
	}

	logger.Info("Indexing locations...", zap.Int("count", len(locations)))
	if err := seed.AppendLocations(ctx, store, locations); err != nil {
		logger.Fatal("Error indexing locations", zap.Error(err))
	}

	logger.Info("Seeding completed successfully")
}

// openStore подключает постоянное хранилище. Хранилище в памяти для сидера бессмысленно.
func openStore(ctx context.Context, cfg *config.Config) (storage.DocumentStore, error) {
	switch cfg.StoreBackend {
	case config.BackendMongo:
		return storage.NewMongoStorage(ctx, cfg.MongoURL, cfg.DBName)
	case config.BackendMemory:
		return nil, fmt.Errorf("STORE_BACKEND=%s is not supported by the seeder", cfg.StoreBackend)
	}

	esClient, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses:         []string{cfg.ElasticsearchURL},
		DisableMetaHeader: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create elasticsearch client: %w", err)
	}

	esStorage := storage.NewElasticsearchStorageWithURL(esClient, cfg.ElasticsearchIndexPrefix, cfg.ElasticsearchURL)
	if err := esStorage.EnsureIndices(ctx, storage.DefaultIndexMapping); err != nil {
		return nil, err
	}
	return esStorage, nil
}
