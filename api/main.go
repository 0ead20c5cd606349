package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cratestats/cratestats/internal/config"
	"github.com/cratestats/cratestats/internal/db"
	api "github.com/cratestats/cratestats/internal/http"
	"github.com/cratestats/cratestats/internal/http/handlers"
	rl "github.com/cratestats/cratestats/internal/http/rate_limiter"
	"github.com/cratestats/cratestats/internal/redissvc"
	"github.com/cratestats/cratestats/internal/repo"
	"github.com/cratestats/cratestats/internal/view"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Could not load configuration: %v", err)
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("❌ Could not connect to database: ", err)
	}
	defer database.Close()

	// The category table is loaded exactly once. If the query fails there is
	// nothing to render, so bail out instead of serving an empty dashboard.
	categoryRepo := repo.NewPostgresCategoryRepository(database)
	counts, err := categoryRepo.GetCategoryCounts()
	if err != nil {
		log.Fatal("❌ Could not load category counts: ", err)
	}
	table := view.NewCategoryTable(counts)
	log.Printf("Loaded %d categories", table.Len())

	var downloadRepo repo.DownloadRepository = repo.NewPostgresDownloadRepository(database)
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		ctx := context.Background()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Printf("Redis not available (%v), serving downloads uncached", err)
		} else {
			defer rdb.Close()
			downloadRepo = repo.NewCachedDownloadRepository(downloadRepo, redissvc.NewRedisService(rdb, ctx))
		}
	}

	handlers.SetCategoryTable(table)
	handlers.SetDownloadRepo(downloadRepo)

	go rl.StartVisitorCleanupLoop()

	r := api.NewRouter()
	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	log.Println("✅ Server running on", addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
