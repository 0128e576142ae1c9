// Command cleanup removes Completed and Cancelled enquiries older than the
// configured retention period (desk.retention_days). It is intended to be
// invoked by an external cron job.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/printmax/enquiry-desk/internal/app"
	"github.com/printmax/enquiry-desk/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	svc, closeDesk, err := app.OpenDesk(ctx, cfg, logger)
	if err != nil {
		logger.Error("open storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeDesk()

	threshold := svc.Now().AddDate(0, 0, -cfg.Desk.RetentionDays)

	deleted, err := svc.PurgeClosed(ctx, threshold)
	if err != nil {
		logger.Error("purge failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		closeDesk()
		os.Exit(1)
	}

	logger.Info("purge completed",
		slog.Int("deleted", deleted),
		slog.Time("threshold", threshold),
	)
}
