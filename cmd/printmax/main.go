// Command printmax is the PrintMax enquiry desk: it records customer
// enquiries for the print shop and keeps them in the configured storage.
//
// Global flags:
//
//	-config   path to YAML config file (overrides CONFIG_PATH)
//	-actor    user id recorded in logs (default: the logged-in user)
//
// Run "printmax help" for the command list.
//
// Exit codes: 0 = success, 1 = error, 2 = usage error.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/printmax/enquiry-desk/internal/app"
	"github.com/printmax/enquiry-desk/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := app.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if err == nil {
		return
	}

	cli.PrintError(os.Stderr, err)
	stop()
	if errors.Is(err, cli.ErrUsage) {
		os.Exit(2)
	}
	os.Exit(1)
}
