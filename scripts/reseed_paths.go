// Manually reseed the static learning path content.
//
// First boot seeds the paths automatically; run this after changing the
// seed data to replace what is already in the database.
//
// Usage: go run scripts/reseed_paths.go

package main

import (
	"log"
	"os"

	"lechemin_backend/internal/config"
	"lechemin_backend/pkg/database"
	"lechemin_backend/pkg/logger"

	"gopkg.in/yaml.v3"
)

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("failed to parse config file: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	if err := database.ReseedPathModules(db); err != nil {
		log.Fatalf("reseed failed: %v", err)
	}

	log.Println("path modules reseeded")
}
