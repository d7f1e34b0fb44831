package services

import (
	"log"
	"time"

	"campus-events/app/store"
)

// StartSnapshotScheduler periodically flushes the store snapshot in the
// background. Every mutating operation already saves on commit; this is a
// safety net for long idle stretches after a restore or manual edit.
func StartSnapshotScheduler(st *store.Store, interval time.Duration) {
	go func() {
		log.Printf("Snapshot scheduler started (every %s)", interval)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			if err := st.Flush(); err != nil {
				log.Printf("Error flushing snapshot: %v", err)
			}
		}
	}()
}
