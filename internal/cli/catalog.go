package cli

import (
	"context"
	"fmt"
	"strings"
)

func (c *CLI) category(ctx context.Context, args []string) error {
	sub, rest, err := subcommand(args, "list", "add", "remove")
	if err != nil {
		return fmt.Errorf("category: %w", err)
	}

	switch sub {
	case "list":
		if len(rest) > 0 {
			return usageErr("category list: takes no arguments")
		}
		cats := c.svc.Categories()
		if len(cats) == 0 {
			fmt.Fprintln(c.stdout, "no categories")
		}
		for _, name := range cats {
			fmt.Fprintln(c.stdout, name)
		}
		return nil

	case "add":
		name, err := categoryName("category add", rest)
		if err != nil {
			return err
		}
		stored, err := c.svc.AddCategory(ctx, name)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.stdout, "category %q\n", stored)
		return nil

	default:
		name, err := categoryName("category remove", rest)
		if err != nil {
			return err
		}
		if err := c.svc.RemoveCategory(ctx, name); err != nil {
			return err
		}
		fmt.Fprintf(c.stdout, "removed category %q\n", name)
		return nil
	}
}

// categoryName joins the words so "category add Banner Stands" works unquoted.
func categoryName(cmd string, args []string) (string, error) {
	if len(args) == 0 {
		return "", usageErr("%s: expected a category name", cmd)
	}
	return strings.Join(args, " "), nil
}
