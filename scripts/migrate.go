// Applies the SQL migrations in migrations/ to the configured
// database. Meant for CI/CD and local setup; the API server itself
// only migrates when DB_AUTO_MIGRATE is set.
package main

import (
	"log"
	"os"

	migrate "github.com/rubenv/sql-migrate"

	"github.com/aura-ai/aura-backend/internal/infrastructure/database"
	"github.com/aura-ai/aura-backend/pkg/config"
)

func mainn() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database connection: %v", err)
	}

	log.Println("🔄 Applying migrations from migrations/ directory...")

	source := &migrate.FileMigrationSource{Dir: "migrations"}
	n, err := migrate.Exec(sqlDB, "postgres", source, migrate.Up)
	if err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	log.Printf("✅ Successfully applied %d migration(s)!\n", n)
	os.Exit(0)
}
