package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/prajalbasnet/Authority-Accesss/internal/app"
	"github.com/prajalbasnet/Authority-Accesss/internal/config"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	if err := app.Run(context.Background(), cfg, logger); err != nil {
		logger.Fatal("app", zap.Error(err))
	}
}
