// Stagedoor is a booking-site backend managing venues, artists, and the
// shows that connect them.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/stagedoor/stagedoor/app/handlers"
	"github.com/stagedoor/stagedoor/app/router"
	"github.com/stagedoor/stagedoor/app/services"
	businessflow "github.com/stagedoor/stagedoor/business_flow"
	"github.com/stagedoor/stagedoor/config"
	"github.com/stagedoor/stagedoor/models"
	"github.com/stagedoor/stagedoor/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := initializeDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	flash := initializeFlashService(cfg)
	businessflow.SetDefaultImageLinks(cfg.App.DefaultArtistImageLink, cfg.App.DefaultVenueImageLink)

	// Repositories
	venueRepo := repository.NewVenueRepository(db)
	artistRepo := repository.NewArtistRepository(db)
	showRepo := repository.NewShowRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	// Business flows
	venueFlow := businessflow.NewVenueFlow(db, venueRepo, showRepo, auditRepo)
	artistFlow := businessflow.NewArtistFlow(db, artistRepo, showRepo, auditRepo)
	showFlow := businessflow.NewShowFlow(db, showRepo, artistRepo, venueRepo, auditRepo)

	// Handlers
	venueHandler := handlers.NewVenueHandler(venueFlow, flash)
	artistHandler := handlers.NewArtistHandler(artistFlow, flash)
	showHandler := handlers.NewShowHandler(showFlow, flash)

	r := router.NewFiberRouter(db, venueHandler, artistHandler, showHandler)
	r.SetupRoutes()

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	go func() {
		if err := r.Start(address); err != nil {
			log.Fatalf("Server stopped: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := r.GetApp().ShutdownWithContext(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Println("Server stopped")
}

// initializeDatabase opens the Postgres connection, configures the pool,
// and optionally migrates the schema
func initializeDatabase(cfg *config.Config) (*gorm.DB, error) {
	logLevel := gormlogger.Warn
	if cfg.App.Environment == "development" || cfg.App.Environment == "local" {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access underlying connection: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(
			&models.Venue{},
			&models.Artist{},
			&models.Show{},
			&models.AuditLog{},
		); err != nil {
			return nil, fmt.Errorf("failed to migrate schema: %w", err)
		}
	}

	return db, nil
}

// initializeFlashService selects the flash message backend. A failed
// Redis ping falls back to the in-memory store rather than aborting
// startup; confirmation messages are not worth refusing to serve.
func initializeFlashService(cfg *config.Config) services.FlashService {
	if cfg.Cache.Provider != "redis" {
		return services.NewMemoryFlashService()
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Cache.RedisAddr,
		DB:   cfg.Cache.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis unavailable (%v), using in-memory flash store", err)
		return services.NewMemoryFlashService()
	}

	return services.NewRedisFlashService(client, cfg.Cache.RedisPrefix)
}
