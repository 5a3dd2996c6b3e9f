package main

import (
	"context"
	"flag"
	"log"

	"github.com/willythepapi/FITART-v1/config"
	"github.com/willythepapi/FITART-v1/internal/database"
)

func main() {
	// Parse command line flags
	dryRun := flag.Bool("dry-run", false, "List pending migrations without applying them")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	kv, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("failed to open %s storage: %v", cfg.StorageDriver, err)
	}
	defer kv.Close()

	pending, err := database.MigrateStored(context.Background(), kv, cfg.StorageKey, *dryRun)
	if err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	if len(pending) == 0 {
		log.Printf("Schema is up to date (version %d)", database.CurrentSchemaVersion)
		return
	}

	for _, m := range pending {
		if *dryRun {
			log.Printf("Pending migration %d: %s", m.Version, m.Name)
		} else {
			log.Printf("Applied migration %d: %s", m.Version, m.Name)
		}
	}
}
