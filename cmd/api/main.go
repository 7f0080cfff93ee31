package main

import (
	"context"
	"log"

	"github.com/cedricplans/houseplans-backend/internal/config"
	"github.com/cedricplans/houseplans-backend/internal/db"
	"github.com/cedricplans/houseplans-backend/internal/logger"
	"github.com/cedricplans/houseplans-backend/internal/model"
	"github.com/cedricplans/houseplans-backend/internal/server"
	"github.com/cedricplans/houseplans-backend/internal/storage"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger init error: %v", err)
	}
	defer zlog.Sync()

	ctx := context.Background()

	var imageStore storage.ImageStore
	if cfg.StorageBucket != "" {
		imageStore, err = storage.NewGCSImageStore(ctx, cfg.StorageBucket)
		if err != nil {
			zlog.Warn("image store unavailable; upload route disabled", zap.Error(err))
			imageStore = nil
		}
	}

	srv := server.New(nil, cfg, zlog, imageStore)

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)

	go func() {
		zlog.Info("starting server", zap.String("addr", addr))
		errCh <- srv.Start(addr)
	}()

	go func() {
		conn, err := db.Connect(cfg)
		if err != nil {
			zlog.Error("db connect error", zap.Error(err))
			return
		}
		if err := conn.AutoMigrate(
			&model.HousePlan{},
			&model.HousePlanImage{},
			&model.Floor{},
			&model.Room{},
			&model.Feature{},
			&model.Amenity{},
			&model.QuoteRequest{},
			&model.ContactMessage{},
			&model.SiteSettings{},
			&model.Purchase{},
		); err != nil {
			zlog.Error("auto migrate error", zap.Error(err))
		}
		srv.SetDB(conn)
		zlog.Info("database connected")
	}()

	if err := <-errCh; err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
