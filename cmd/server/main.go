package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/storage/redis/v3"

	"giftrequests/internal/config"
	"giftrequests/internal/db"
	"giftrequests/internal/drafts"
	"giftrequests/internal/email"
	"giftrequests/internal/events"
	"giftrequests/internal/jobs"
	"giftrequests/internal/metrics"
	"giftrequests/internal/server"
	"giftrequests/internal/workflow"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if cfg.AdminToken == "" {
		log.Println("ADMIN_TOKEN is not set; admin authentication is disabled")
	}

	// Initialize database
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	metrics.Init(database)

	// Sessions and drafts share Redis when configured, otherwise they stay
	// in process memory.
	var sessionStorage fiber.Storage
	var draftStorage drafts.Storage
	if cfg.RedisURL != "" {
		rdb := redis.New(redis.Config{URL: cfg.RedisURL})
		defer rdb.Close()
		sessionStorage = rdb
		draftStorage = rdb
		log.Println("Sessions and drafts stored in Redis")
	} else {
		mem := drafts.NewMemoryStore()
		draftStorage = mem
		go jobs.NewDraftSweeper(mem, cfg.DraftSweepInterval).Start(ctx)
		log.Println("Sessions and drafts stored in memory (set REDIS_URL to persist)")
	}

	// Listeners for submission events
	notifier := email.NewNotifier(cfg)
	onCreate := []workflow.Listener{notifier}
	onReview := []workflow.StatusListener{notifier}

	if cfg.IsEventsEnabled() {
		publisher, err := events.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
		onCreate = append(onCreate, publisher)
		onReview = append(onReview, publisher)
		log.Printf("Publishing submission events to exchange %q", cfg.AMQPExchange)
	}

	srv := server.New(cfg, sessionStorage)
	srv.RegisterRoutes(server.Deps{
		Store:    database,
		Drafts:   drafts.NewHolder(draftStorage, cfg.DraftTTL),
		Health:   database,
		OnCreate: onCreate,
		OnReview: onReview,
	})

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancel()
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
