package main

import (
	"log"

	"campus-events/app/config"
	"campus-events/app/store"
)

// Pushes the local JSON snapshot into the Postgres snapshot table so a
// deployment can switch from file storage to DATABASE_URL without losing data.
func main() {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL must be set")
	}

	st, err := store.Load(cfg.DataFile, store.NopSaver{})
	if err != nil {
		log.Fatal("Failed to load snapshot file:", err)
	}

	saver, err := store.OpenPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to Postgres:", err)
	}
	defer saver.Close()

	if err := st.Snapshot(saver); err != nil {
		log.Fatal("Failed to write snapshot:", err)
	}

	log.Printf("Snapshot from %s migrated to Postgres", cfg.DataFile)
}
