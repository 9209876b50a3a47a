package tasks

import (
	"context"
	"time"
)

// newStorageMaintenanceTask creates a scheduled task that runs upkeep on the
// registration store, such as compacting the SQLite database file.
func newStorageMaintenanceTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "storage_maintenance")

	return func(ctx context.Context) error {
		timeoutCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
		defer cancel()

		if err := deps.Store.Maintenance(timeoutCtx); err != nil {
			log.ErrorContext(ctx, "Storage maintenance failed", "error", err)
			return err
		}

		log.InfoContext(ctx, "Storage maintenance completed")
		return nil
	}
}
