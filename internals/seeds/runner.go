package seeds

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"tuning_backend/internals/seeds/catalog"
)

// RunAllSeeds loads the catalog file when one is configured.
func RunAllSeeds(db *gorm.DB, catalogFile string) {
	if catalogFile == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := catalog.SeedCatalogFromJSON(ctx, db, catalogFile); err != nil {
		log.Fatalf("[ERROR] catalog seed failed: %v", err)
	}
}
