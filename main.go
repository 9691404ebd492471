// main.go
package main

import (
	"context"
	"log"

	"venue-booking/cmd"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/notify"
	"venue-booking/internal/wire"
	"venue-booking/internal/worker"
	"venue-booking/pkg/database"
	"venue-booking/pkg/utils"

	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Notification sink: always log, publish to redis as well
	redisClient := redis.NewClient(&redis.Options{
		Addr:     config.Redis.Addr,
		Password: config.Redis.Password,
		DB:       config.Redis.DB,
	})
	defer redisClient.Close()

	notifier := notify.NewFanout(
		notify.NewLogNotifier(logger),
		notify.NewRedisNotifier(redisClient, config.Redis.NotifyChannel, logger),
	)

	clock := clockwork.NewRealClock()

	// Background workers: no-show sweep + per-venue booking monitors
	manager, err := worker.NewManager(repos, notifier, clock, config, logger)
	if err != nil {
		logger.Fatal("Failed to create worker manager", zap.Error(err))
	}
	if err := manager.Start(context.Background()); err != nil {
		logger.Fatal("Failed to start background workers", zap.Error(err))
	}
	defer manager.Shutdown()

	// Wire all dependencies
	app := wire.Wiring(repos, manager, config, clock, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
