package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"podosite/internal/assets"
	"podosite/internal/auth"
	"podosite/internal/cache"
	"podosite/internal/config"
	"podosite/internal/content"
	"podosite/internal/database"
	"podosite/internal/email"
	"podosite/internal/logging"
	redisx "podosite/internal/redis"
	"podosite/internal/server"
)

const logMaxSizeBytes = 10 << 20

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logOutput := io.Writer(os.Stdout)
	if cfg.LogFile != "" {
		fileWriter, err := logging.NewRotatingFileWriter(cfg.LogFile, logMaxSizeBytes, 3)
		if err != nil {
			log.Fatalf("log setup error: %v", err)
		}
		defer fileWriter.Close()
		logOutput = io.MultiWriter(os.Stdout, fileWriter)
	}
	log.SetOutput(logOutput)
	log.SetFlags(log.LstdFlags | log.LUTC | log.Lshortfile)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database error: %v", err)
	}
	defer db.Close()

	// The cache degrades to a no-op when redis is unreachable, so a missing
	// redis only costs extra queries.
	var contentCache *cache.Cache
	if redisClient, err := redisx.New(cfg.RedisURL); err != nil {
		log.Printf("redis unavailable, running without content cache: %v", err)
	} else {
		defer redisClient.Close()
		contentCache = cache.New(redisClient)
	}

	var assetStorage assets.Storage
	if cfg.Assets.Enabled() {
		assetStorage, err = assets.NewS3Storage(context.Background(), cfg.Assets)
		if err != nil {
			log.Fatalf("asset storage error: %v", err)
		}
	} else {
		log.Printf("asset storage not configured, uploads disabled")
	}

	api := &server.Server{
		Admins:   auth.NewAdminRepository(db),
		Services: content.NewServiceRepository(db),
		Site:     content.NewSiteConfigRepository(db),
		Cases:    content.NewSuccessCaseRepository(db),
		Cards:    content.NewAboutCardRepository(db),
		Contacts: content.NewContactRepository(db),
		Mailer:   email.NewSender(cfg.Email),
		Tokens:   auth.NewTokenService(cfg.JWTSecret),
		Hasher:   auth.NewBcryptHasher(),
		Cache:    contentCache,
		Assets:   assetStorage,
		Config:   cfg,
	}

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      api.Router(),
		ReadTimeout:  1 * time.Minute,
		WriteTimeout: 1 * time.Minute,
	}

	log.Printf("Listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
