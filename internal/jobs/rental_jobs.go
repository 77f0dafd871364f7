package jobs

import (
	"context"
	"time"

	"equiprent-backend/internal/logger"
)

// ExpirePendingRentals cancels pending rentals whose pickup deadline has
// passed. The in-process timers handle the common case; this sweep recovers
// deadlines that were armed before a restart.
func (jr *JobRunner) ExpirePendingRentals() {
	jr.runWithRecovery("ExpirePendingRentals", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		count, err := jr.expiry.Sweep(ctx)
		if err != nil {
			logger.Error("Failed to sweep expired rentals", "error", err)
			return
		}
		if count > 0 {
			logger.Info("Cancelled expired rentals", "count", count)
		}
	})
}
