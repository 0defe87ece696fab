package main

import (
	"log"

	"lechemin_backend/internal/app"
	"lechemin_backend/internal/config"
	"lechemin_backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
