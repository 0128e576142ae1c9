package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/printmax/enquiry-desk/internal/cli"
	"github.com/printmax/enquiry-desk/internal/config"
	"github.com/printmax/enquiry-desk/internal/persistence"
	"github.com/printmax/enquiry-desk/internal/service/desk"
)

// Run is the application entry point. It parses the global flags, loads
// configuration, initializes the logger, opens the configured storage,
// builds the desk service and hands the remaining arguments to the CLI.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("printmax", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to YAML config file (overrides CONFIG_PATH)")
	actor := fs.String("actor", "", "user id recorded in logs (default: the logged-in user)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	rest := fs.Args()

	if len(rest) > 0 && rest[0] == "version" {
		fmt.Fprintln(stdout, BuildVersion())
		return nil
	}

	if *configPath != "" {
		if err := os.Setenv("CONFIG_PATH", *configPath); err != nil {
			return fmt.Errorf("set CONFIG_PATH: %w", err)
		}
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log, stderr)
	logger.DebugContext(ctx, "starting application",
		slog.String("version", BuildVersion()),
		slog.String("storage_driver", cfg.Storage.Driver),
		slog.String("log_level", cfg.Log.Level),
	)

	svc, closeDesk, err := OpenDesk(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeDesk()

	c := cli.New(svc, logger, stdout, stderr,
		cli.WithStdin(stdin),
		cli.WithActor(*actor),
	)
	return c.Run(ctx, rest)
}

// OpenDesk opens the configured storage and loads the desk service over it.
// The returned function releases the storage.
func OpenDesk(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*desk.Service, func(), error) {
	st, err := OpenStorage(ctx, cfg.Storage)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := st.Close(); err != nil {
			logger.Warn("close storage", slog.String("error", err.Error()))
		}
	}

	repo := persistence.New(st.KV, cfg.Storage.Key, logger)
	svc := desk.NewService(ctx, logger, repo, desk.WithLocation(cfg.Desk.Location))
	return svc, closeFn, nil
}
