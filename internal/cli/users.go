package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/printmax/enquiry-desk/internal/domain"
	"github.com/printmax/enquiry-desk/internal/service/desk"
)

func (c *CLI) user(ctx context.Context, args []string) error {
	sub, rest, err := subcommand(args, "list", "add", "remove")
	if err != nil {
		return fmt.Errorf("user: %w", err)
	}

	switch sub {
	case "list":
		if len(rest) > 0 {
			return usageErr("user list: takes no arguments")
		}
		current := ""
		if u, ok := c.svc.CurrentUser(); ok {
			current = u.ID
		}
		printUsers(c.stdout, c.svc.Users(), current)
		return nil

	case "add":
		fs := c.newFlagSet("user add")
		name := fs.String("name", "", "display name")
		role := fs.String("role", "", "admin or staff (default staff)")
		if done, err := parse(fs, rest); done {
			return err
		}
		u, err := c.svc.AddUser(ctx, desk.AddUserInput{
			Name: *name,
			Role: domain.UserRole(strings.ToLower(strings.TrimSpace(*role))),
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(c.stdout, "added user %s (%s)\n", u.ID, u.Name)
		return nil

	default:
		id, rest := leadingArg(rest)
		if id == "" || len(rest) > 0 {
			return usageErr("user remove: expected exactly one user id")
		}
		if err := c.svc.RemoveUser(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(c.stdout, "removed user %s\n", id)
		return nil
	}
}

func (c *CLI) login(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageErr("login: expected exactly one user id")
	}
	u, err := c.svc.Login(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(c.stdout, "logged in as %s (%s)\n", u.Name, u.Role)
	return nil
}

func (c *CLI) logout(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return usageErr("logout: takes no arguments")
	}
	if err := c.svc.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(c.stdout, "logged out")
	return nil
}

func (c *CLI) whoami(_ context.Context, args []string) error {
	if len(args) > 0 {
		return usageErr("whoami: takes no arguments")
	}
	u, ok := c.svc.CurrentUser()
	if !ok {
		fmt.Fprintln(c.stdout, "not logged in")
		return nil
	}
	fmt.Fprintf(c.stdout, "%s (%s, %s)\n", u.Name, u.Role, u.ID)
	return nil
}
