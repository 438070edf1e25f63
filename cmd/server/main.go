// Package main is the entry point for the financial distress analysis
// service. It loads the trained model artifacts, seeds the MENA company
// catalog, and serves risk analyses over HTTP while background jobs keep the
// snapshot cache and artifacts fresh.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/RawdaYassin/financial-distress-app/internal/analyzer"
	"github.com/RawdaYassin/financial-distress-app/internal/artifacts"
	"github.com/RawdaYassin/financial-distress-app/internal/clientdata"
	"github.com/RawdaYassin/financial-distress-app/internal/clients/yahoo"
	"github.com/RawdaYassin/financial-distress-app/internal/companies"
	"github.com/RawdaYassin/financial-distress-app/internal/config"
	"github.com/RawdaYassin/financial-distress-app/internal/database"
	"github.com/RawdaYassin/financial-distress-app/internal/domain"
	"github.com/RawdaYassin/financial-distress-app/internal/prediction"
	"github.com/RawdaYassin/financial-distress-app/internal/scheduler"
	"github.com/RawdaYassin/financial-distress-app/internal/server"
	"github.com/RawdaYassin/financial-distress-app/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallbackLog := logger.New(logger.Config{Level: "info", Pretty: true})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})
	log.Info().Str("data_dir", cfg.DataDir).Bool("dev_mode", cfg.DevMode).Msg("Starting distress analysis service")

	ctx := context.Background()

	// Databases
	catalogDB, err := database.New(database.Config{
		Path:    filepath.Join(cfg.DataDir, "catalog.db"),
		Profile: database.ProfileStandard,
		Name:    "catalog",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open catalog database")
	}
	defer catalogDB.Close()

	cacheDB, err := database.New(database.Config{
		Path:    filepath.Join(cfg.DataDir, "cache.db"),
		Profile: database.ProfileCache,
		Name:    "cache",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open cache database")
	}
	defer cacheDB.Close()

	if err := catalogDB.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate catalog database")
	}
	if err := cacheDB.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate cache database")
	}

	// Company catalog
	catalog := companies.NewRepository(catalogDB.Conn(), log)
	if err := catalog.Seed(companies.Catalog()); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed company catalog")
	}
	if count, err := catalog.Count(); err == nil {
		log.Info().Int("companies", count).Msg("Company catalog ready")
	}

	// Model artifacts: local override, then cache, then S3
	store, err := artifacts.NewStore(ctx, artifacts.StoreConfig{
		Bucket:   cfg.ArtifactBucket,
		Prefix:   cfg.ArtifactPrefix,
		Region:   cfg.AWSRegion,
		LocalDir: cfg.ArtifactDir,
		CacheDir: cfg.ArtifactCacheDir(),
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize artifact store")
	}

	scalerPath, err := store.Resolve(ctx, artifacts.ScalerFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Scaler artifact unavailable")
	}
	modelPath, err := store.Resolve(ctx, artifacts.ModelFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Model artifact unavailable")
	}

	bundle, err := artifacts.LoadBundle(scalerPath, modelPath, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load inference artifacts")
	}

	// The fairness report is optional; the endpoint degrades without it.
	var fairness *artifacts.FairnessReport
	if fairnessPath, err := store.Resolve(ctx, artifacts.FairnessFile); err != nil {
		log.Warn().Err(err).Msg("Fairness report unavailable")
	} else if fairness, err = artifacts.LoadFairnessReport(fairnessPath); err != nil {
		log.Warn().Err(err).Msg("Failed to parse fairness report")
		fairness = nil
	}

	classifier, err := prediction.NewClassifier(bundle.Scaler, bundle.Model, log)
	if err != nil {
		if errors.Is(err, domain.ErrProbabilityUnavailable) {
			log.Fatal().Err(err).Str("model_type", bundle.ModelType).Msg("Model artifact cannot produce probabilities")
		}
		log.Fatal().Err(err).Msg("Failed to build classifier")
	}

	// Market data: Yahoo Finance behind the snapshot cache
	yahooClient := yahoo.NewClient(log)
	if cfg.MarketDataURL != "" {
		yahooClient.SetBaseURL(cfg.MarketDataURL)
	}
	snapshotRepo := clientdata.NewRepository(cacheDB.Conn())
	source := clientdata.NewCachedSource(yahooClient, snapshotRepo, clientdata.TTLSnapshot, log)

	svc := analyzer.NewService(source, catalog, classifier, bundle.Explainer, log)

	// Background jobs
	sched := scheduler.New(log)
	if err := sched.AddJob("0 3 * * *", clientdata.NewCleanupJob(snapshotRepo, log)); err != nil {
		log.Fatal().Err(err).Msg("Failed to register cache cleanup job")
	}
	if cfg.ArtifactBucket != "" {
		refresh := artifacts.NewRefreshJob(store,
			[]string{artifacts.ScalerFile, artifacts.ModelFile, artifacts.FairnessFile}, log)
		if err := sched.AddJob("@every 6h", refresh); err != nil {
			log.Fatal().Err(err).Msg("Failed to register artifact refresh job")
		}
	}
	sched.Start()
	defer sched.Stop()

	// HTTP server
	srv := server.New(server.Config{
		Log:       log,
		CatalogDB: catalogDB,
		CacheDB:   cacheDB,
		Analyzer:  svc,
		Companies: catalog,
		Fairness:  fairness,
		Port:      cfg.Port,
		DevMode:   cfg.DevMode,
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	}

	log.Info().Msg("Service stopped")
}
