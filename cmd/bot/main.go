package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KirkDiggler/zanzibar/internal/catalog"
	"github.com/KirkDiggler/zanzibar/internal/common/clock"
	"github.com/KirkDiggler/zanzibar/internal/common/uuid"
	"github.com/KirkDiggler/zanzibar/internal/dice"
	"github.com/KirkDiggler/zanzibar/internal/handlers/discord"
	"github.com/KirkDiggler/zanzibar/internal/repositories/history"
	"github.com/KirkDiggler/zanzibar/internal/resolver"
	gameService "github.com/KirkDiggler/zanzibar/internal/services/game"
)

func main() {
	// Load .env if present; environment variables win
	_ = godotenv.Load()

	logger, err := newLogger(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal("failed to connect to Redis", zap.Error(err))
	}

	// Load the item catalog; falls back to the built-in items when no
	// file is configured
	itemCatalog := catalog.Default()
	if itemsFile := getEnv("ITEMS_FILE", ""); itemsFile != "" {
		itemCatalog, err = catalog.LoadFile(itemsFile)
		if err != nil {
			logger.Fatal("failed to load item catalog", zap.String("file", itemsFile), zap.Error(err))
		}
	}

	historyRepo, err := history.NewRedis(&history.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal("failed to create history repository", zap.Error(err))
	}

	// Initialize dice roller and roll resolver
	diceRoller := dice.New(&dice.Config{})

	rollResolver, err := resolver.New(&resolver.Config{}, diceRoller)
	if err != nil {
		logger.Fatal("failed to create roll resolver", zap.Error(err))
	}

	// Initialize game service
	gameSvc, err := gameService.New(&gameService.Config{
		Catalog:       itemCatalog,
		Resolver:      rollResolver,
		HistoryRepo:   historyRepo,
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
		Logger:        logger,
	})
	if err != nil {
		logger.Fatal("failed to create game service", zap.Error(err))
	}

	// Get Discord token from environment
	discordToken := getEnv("DISCORD_TOKEN", "")
	if discordToken == "" {
		logger.Fatal("DISCORD_TOKEN environment variable is required")
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:         discordToken,
		ApplicationID: getEnv("APPLICATION_ID", ""),
		GuildID:       getEnv("GUILD_ID", ""),
		GameService:   gameSvc,
		Logger:        logger,
	})
	if err != nil {
		logger.Fatal("failed to create Discord bot", zap.Error(err))
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		logger.Fatal("failed to start Discord bot", zap.Error(err))
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		logger.Error("error stopping bot", zap.Error(err))
	}

	logger.Info("bot has been shut down")
}

// newLogger builds the process logger for the configured level
func newLogger(level string) (*zap.Logger, error) {
	if level == "debug" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
