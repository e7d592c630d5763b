package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"tolet-api/internal/config"
	"tolet-api/internal/database"
	httpapi "tolet-api/internal/http"
	"tolet-api/internal/logger"
	"tolet-api/internal/repository"
	"tolet-api/internal/service"
)

func main() {
	// Optional .env for local development; the environment wins when both set.
	_ = godotenv.Load()

	cfg := config.Load()

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, "tolet-api")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if cfg.Database.URL == "" {
		log.Fatal("DATABASE_URL must be set")
	}

	db, err := database.NewPostgresDB(cfg.Database.URL, cfg.Database.MaxConns, cfg.Database.MaxIdleConns)
	if err != nil {
		log.Fatal("Failed to connect to the database", zap.Error(err))
	}
	defer db.Close()
	log.Info("Connection to the database is successful")

	collectionsRepo := repository.NewPostgresCollectionsRepository(db)
	collections := service.NewCollectionService(collectionsRepo, log)

	router := httpapi.NewRouter(log)
	router.RegisterCollectionRoutes(httpapi.NewCollectionHandler(collections, log))

	srv := service.NewServer(cfg.HTTP.Addr, router, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("Received terminate, graceful shutdown", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("Server stopped unexpectedly", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Stop(shutdownCtx)
}
