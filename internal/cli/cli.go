// Package cli is the command-line front end of the enquiry desk. Each
// command parses its own flags, calls the desk service and prints a plain
// text result.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/printmax/enquiry-desk/internal/domain"
	"github.com/printmax/enquiry-desk/internal/query"
	"github.com/printmax/enquiry-desk/internal/service/desk"
)

// ErrUsage is returned for unknown commands and bad arguments.
var ErrUsage = errors.New("usage error")

type deskService interface {
	Now() time.Time

	CreateEnquiry(ctx context.Context, input desk.CreateEnquiryInput) (domain.Enquiry, error)
	Enquiry(id string) (domain.Enquiry, error)
	UpdateEnquiry(ctx context.Context, input desk.UpdateEnquiryInput) (domain.Enquiry, error)
	SetStatus(ctx context.Context, id string, status domain.Status) (domain.Enquiry, error)
	DeleteEnquiry(ctx context.Context, id string) error
	ListEnquiries(f domain.EnquiryFilter) []domain.Enquiry
	DueSoon() []domain.Enquiry
	Dashboard() query.DashboardCounts
	AssigneeName(e domain.Enquiry) string
	ReminderLink(id string) (string, error)

	Categories() []string
	AddCategory(ctx context.Context, name string) (string, error)
	RemoveCategory(ctx context.Context, name string) error

	Users() []domain.User
	AddUser(ctx context.Context, input desk.AddUserInput) (domain.User, error)
	RemoveUser(ctx context.Context, id string) error
	CurrentUser() (domain.User, bool)
	Login(ctx context.Context, userID string) (domain.User, error)
	Logout(ctx context.Context) error

	Export(ctx context.Context) ([]byte, string, error)
	Import(ctx context.Context, data []byte) error
}

var _ deskService = (*desk.Service)(nil)

// CLI dispatches commands to the desk service.
type CLI struct {
	svc    deskService
	log    *slog.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	actor  string
}

// Option configures a CLI.
type Option func(*CLI)

// WithStdin sets the reader used by "import -".
func WithStdin(r io.Reader) Option {
	return func(c *CLI) { c.stdin = r }
}

// WithActor records userID as the acting user in log records.
func WithActor(userID string) Option {
	return func(c *CLI) { c.actor = strings.TrimSpace(userID) }
}

// New creates a CLI over svc.
func New(svc deskService, logger *slog.Logger, stdout, stderr io.Writer, opts ...Option) *CLI {
	c := &CLI{
		svc:    svc,
		log:    logger.With("component", "cli"),
		stdin:  strings.NewReader(""),
		stdout: stdout,
		stderr: stderr,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type command struct {
	name    string
	summary string
	run     Handler
}

func (c *CLI) commands() []command {
	return []command{
		{"enquiry", "add, list, show, update, status or delete enquiries", c.enquiry},
		{"due", "list open enquiries due by the end of today", c.due},
		{"dashboard", "show status counts", c.dashboard},
		{"category", "list, add or remove categories", c.category},
		{"user", "list, add or remove users", c.user},
		{"login", "log in as a user", c.login},
		{"logout", "log out", c.logout},
		{"whoami", "show the logged-in user", c.whoami},
		{"walink", "print a WhatsApp reminder link for an enquiry", c.walink},
		{"export", "write a JSON backup of the store", c.export},
		{"import", "replace the store with a JSON backup", c.importBackup},
	}
}

// Run executes the command named by args[0].
func (c *CLI) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		c.Usage(c.stderr)
		return ErrUsage
	}
	name := args[0]
	if name == "help" || name == "-h" || name == "--help" {
		c.Usage(c.stdout)
		return nil
	}

	for _, cmd := range c.commands() {
		if cmd.name != name {
			continue
		}
		h := Chain(
			RunID,
			Actor(c.actor),
			Logger(c.log, commandName(args)),
			Recovery(c.log),
		)(cmd.run)
		return h(ctx, args[1:])
	}

	fmt.Fprintf(c.stderr, "unknown command %q\n\n", name)
	c.Usage(c.stderr)
	return ErrUsage
}

// Usage prints the command list.
func (c *CLI) Usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: printmax [-config path] [-actor user-id] <command> [arguments]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range c.commands() {
		fmt.Fprintf(w, "  %-10s %s\n", cmd.name, cmd.summary)
	}
	fmt.Fprintf(w, "  %-10s %s\n", "version", "print the build version")
}

// commandName is the command plus its subcommand, if any.
func commandName(args []string) string {
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		switch args[0] {
		case "enquiry", "category", "user":
			return args[0] + " " + args[1]
		}
	}
	return args[0]
}

// PrintError writes err for a human. Validation failures list every field.
func PrintError(w io.Writer, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		fmt.Fprintln(w, "invalid input:")
		for _, fe := range ve.Errors {
			fmt.Fprintf(w, "  %s\n", fe)
		}
		return
	}
	fmt.Fprintf(w, "error: %v\n", err)
}

// newFlagSet returns a flag set that reports errors instead of exiting.
func (c *CLI) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	return fs
}

// parse parses args into fs. -h prints the flags and succeeds with done set.
func parse(fs *flag.FlagSet, args []string) (done bool, err error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return true, nil
		}
		return true, fmt.Errorf("%s: %w: %v", fs.Name(), ErrUsage, err)
	}
	return false, nil
}

// leadingArg splits off a positional argument given before any flag.
func leadingArg(args []string) (string, []string) {
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		return args[0], args[1:]
	}
	return "", args
}

func usageErr(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, a...))
}

func subcommand(args []string, known ...string) (string, []string, error) {
	if len(args) == 0 {
		return "", nil, usageErr("expected one of: %s", strings.Join(known, ", "))
	}
	for _, k := range known {
		if args[0] == k {
			return k, args[1:], nil
		}
	}
	return "", nil, usageErr("unknown subcommand %q, expected one of: %s", args[0], strings.Join(known, ", "))
}
