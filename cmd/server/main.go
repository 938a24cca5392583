package main

import (
	"context"
	"log"
	"net/http"

	"github.com/syndtr/goleveldb/leveldb"
	"go.uber.org/zap"

	adminapi "gallery-be/internal/api/admin"
	"gallery-be/internal/api/artworks"
	"gallery-be/internal/api/inquiries"
	routes "gallery-be/internal/app/http"
	"gallery-be/internal/artwork"
	"gallery-be/internal/config"
	"gallery-be/internal/db"
	"gallery-be/internal/logger"
	"gallery-be/internal/media"
	"gallery-be/internal/middleware"
	"gallery-be/internal/offer"
	"gallery-be/internal/order"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	var (
		artworkRepo artwork.Repository
		offerRepo   offer.Repository
		orderRepo   order.Repository
	)

	switch cfg.StorageDriver {
	case config.DriverLocal:
		store, err := leveldb.OpenFile(cfg.LocalStorePath, nil)
		if err != nil {
			log.Fatalf("failed to open local store at %s: %v", cfg.LocalStorePath, err)
		}
		defer store.Close()

		artworkRepo = artwork.NewLocalRepository(store)
		offerRepo = offer.NewLocalRepository(store)
		orderRepo = order.NewLocalRepository(store)
	default:
		database := db.InitDB(cfg)
		defer database.Close()

		artworkRepo = artwork.NewRepository(database)
		offerRepo = offer.NewRepository(database)
		orderRepo = order.NewRepository(database)
	}

	artworkSvc := artwork.NewService(artworkRepo)
	offerSvc := offer.NewService(offerRepo)
	orderSvc := order.NewService(orderRepo)

	// A failed initial load leaves an empty catalog; the store is retried
	// on the next restart, never silently reseeded.
	if err := artworkSvc.Load(context.Background()); err != nil {
		logger.L().Error("initial catalog load failed", zap.Error(err))
	}

	var uploader media.Uploader
	if cfg.S3Bucket != "" {
		up, err := media.NewS3Uploader(context.Background(), cfg.AWSRegion, cfg.S3Bucket, cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey)
		if err != nil {
			log.Fatalf("failed to configure image hosting: %v", err)
		}
		uploader = up
	}

	mux := http.NewServeMux()
	routes.RegisterRoutes(mux, routes.Deps{
		Artworks:  artworks.NewHandler(artworkSvc),
		Inquiries: inquiries.NewHandler(offerSvc, orderSvc),
		Admin:     adminapi.NewHandler(cfg, uploader),
		JWTSecret: cfg.JWTSecret,
	})

	handler := logger.RequestIDMiddleware(
		logger.LoggingMiddleware(
			middleware.RateLimitMiddleware(mux),
		),
	)

	log.Printf("gallery server running at http://localhost:%s/ (storage driver: %s)", cfg.AppPort, cfg.StorageDriver)
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, handler))
}
