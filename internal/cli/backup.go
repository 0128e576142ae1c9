package cli

import (
	"context"
	"fmt"
	"io"
	"os"
)

func (c *CLI) export(ctx context.Context, args []string) error {
	fs := c.newFlagSet("export")
	out := fs.String("o", "", `output file (default printmax_backup_<date>.json, "-" for stdout)`)
	if done, err := parse(fs, args); done {
		return err
	}

	data, name, err := c.svc.Export(ctx)
	if err != nil {
		return err
	}

	if *out == "-" {
		_, err := c.stdout.Write(data)
		return err
	}
	path := *out
	if path == "" {
		path = name
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	fmt.Fprintf(c.stdout, "exported to %s\n", path)
	return nil
}

func (c *CLI) importBackup(ctx context.Context, args []string) error {
	path, rest := leadingArg(args)
	if len(args) == 1 && args[0] == "-" {
		path, rest = "-", nil
	}
	if path == "" || len(rest) > 0 {
		return usageErr(`import: expected a backup file path or "-" for stdin`)
	}

	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(c.stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("import: read %s: %w", path, err)
	}

	if err := c.svc.Import(ctx, data); err != nil {
		return err
	}
	fmt.Fprintf(c.stdout, "imported %s\n", path)
	return nil
}
