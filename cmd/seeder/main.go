// Command seeder imports enquiries from a CSV spreadsheet kept before the
// desk was in use. Rows are validated like hand-typed enquiries; rejected
// rows are reported by line number and the rest are imported.
//
// Flags:
//
//	--phase          comma-separated phases to run: categories, enquiries (default: all)
//	--dry-run        parse and validate the sheet without writing
//	--csv            path to the CSV file (overrides csv_path)
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error or rejected rows.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/printmax/enquiry-desk/internal/app"
	"github.com/printmax/enquiry-desk/internal/app/seeder"
	"github.com/printmax/enquiry-desk/internal/config"
)

func main() {
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: all)")
	dryRunFlag := flag.Bool("dry-run", false, "parse and validate the sheet without writing")
	csvFlag := flag.String("csv", "", "path to the CSV file")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	// Load app config (for storage).
	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log, nil)

	// Load seeder config.
	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *dryRunFlag {
		seederCfg.DryRun = true
	}
	if *csvFlag != "" {
		seederCfg.CSVPath = *csvFlag
	}

	if *phaseFlag != "" {
		seederCfg.Phases = strings.Split(*phaseFlag, ",")
		if err := seederCfg.Validate(); err != nil {
			logger.Error("invalid --phase", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, 10*time.Minute)
	defer cancel()

	svc, closeDesk, err := app.OpenDesk(ctx, appCfg, logger)
	if err != nil {
		logger.Error("open storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeDesk()

	pipeline := seeder.NewPipeline(logger, svc, *seederCfg)
	if err := pipeline.Run(ctx, seederCfg.Phases); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		closeDesk()
		os.Exit(1)
	}

	for _, re := range pipeline.RowErrors() {
		logger.Warn("rejected row", slog.Int("line", re.Line), slog.String("error", re.Err.Error()))
	}
	if pipeline.HasErrors() {
		logger.Warn("pipeline completed with errors")
		closeDesk()
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully")
}
