package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"
	"github.com/quangtran-dev/storefront-api/internal/config"
	"github.com/quangtran-dev/storefront-api/pkg/database"
)

func main() {
	var (
		source = flag.String("source", "file://migrations", "migration source URL")
		down   = flag.Bool("down", false, "roll back all migrations instead of applying them")
	)
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(context.Background())
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if *down {
		if err := database.MigrateDown(*source, cfg.Postgres.URL()); err != nil {
			log.Fatalf("Failed to roll back migrations: %v", err)
		}
		log.Println("Migrations rolled back")
		return
	}

	if err := database.MigrateUp(*source, cfg.Postgres.URL()); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}
	log.Println("Migrations applied")
}
