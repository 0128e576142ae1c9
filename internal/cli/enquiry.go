package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/printmax/enquiry-desk/internal/domain"
	"github.com/printmax/enquiry-desk/internal/query"
	"github.com/printmax/enquiry-desk/internal/service/desk"
)

func (c *CLI) enquiry(ctx context.Context, args []string) error {
	sub, rest, err := subcommand(args, "add", "list", "show", "update", "status", "delete")
	if err != nil {
		return fmt.Errorf("enquiry: %w", err)
	}

	switch sub {
	case "add":
		return c.enquiryAdd(ctx, rest)
	case "list":
		return c.enquiryList(rest)
	case "show":
		return c.enquiryShow(rest)
	case "update":
		return c.enquiryUpdate(ctx, rest)
	case "status":
		return c.enquiryStatus(ctx, rest)
	default:
		return c.enquiryDelete(ctx, rest)
	}
}

// enquiryFlags are the editable fields shared by add and update.
type enquiryFlags struct {
	title, category, customer, phone string
	channel, status, due, notes      string
	assign                           string
}

func (f *enquiryFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.title, "title", "", "short description of the job")
	fs.StringVar(&f.category, "category", "", "service category")
	fs.StringVar(&f.customer, "customer", "", "customer name")
	fs.StringVar(&f.phone, "phone", "", "customer phone number")
	fs.StringVar(&f.channel, "channel", "", "In-shop, WhatsApp, Call or Online")
	fs.StringVar(&f.status, "status", "", "Pending, In Progress, Completed or Cancelled")
	fs.StringVar(&f.due, "due", "", "due date: 2006-01-02 or 2006-01-02 15:04")
	fs.StringVar(&f.notes, "notes", "", "free-form notes")
	fs.StringVar(&f.assign, "assign", "", "id of the assigned user")
}

// setFlags returns the names of the flags given on the command line.
func setFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

func optional(set map[string]bool, name, value string) *string {
	if !set[name] {
		return nil
	}
	return &value
}

func (c *CLI) dueFlag(set map[string]bool, value string) (*time.Time, error) {
	if !set["due"] || value == "" {
		return nil, nil
	}
	t, err := query.ParseDue(value, c.svc.Now().Location())
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *CLI) enquiryAdd(ctx context.Context, args []string) error {
	fs := c.newFlagSet("enquiry add")
	var f enquiryFlags
	f.register(fs)
	if done, err := parse(fs, args); done {
		return err
	}
	set := setFlags(fs)

	due, err := c.dueFlag(set, f.due)
	if err != nil {
		return err
	}
	input := desk.CreateEnquiryInput{
		Title:        f.title,
		Category:     f.category,
		CustomerName: f.customer,
		Phone:        optional(set, "phone", f.phone),
		Channel:      domain.ParseChannel(f.channel),
		DueAt:        due,
		Notes:        optional(set, "notes", f.notes),
		AssignedTo:   optional(set, "assign", f.assign),
	}
	if f.status != "" {
		input.Status = domain.ParseStatus(f.status)
	}

	e, err := c.svc.CreateEnquiry(ctx, input)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.stdout, "created enquiry %s\n", e.ID)
	return nil
}

func (c *CLI) enquiryList(args []string) error {
	fs := c.newFlagSet("enquiry list")
	status := fs.String("status", "", "only this status")
	category := fs.String("category", "", "only this category")
	channel := fs.String("channel", "", "only this channel")
	assignee := fs.String("assignee", "", "only enquiries assigned to this user id")
	text := fs.String("q", "", "search title, customer, notes and phone")
	if done, err := parse(fs, args); done {
		return err
	}

	var filter domain.EnquiryFilter
	if *status != "" {
		st := domain.ParseStatus(*status)
		filter.Status = &st
	}
	if *category != "" {
		filter.Category = category
	}
	if *channel != "" {
		ch := domain.ParseChannel(*channel)
		filter.Channel = &ch
	}
	if *assignee != "" {
		filter.AssigneeID = assignee
	}
	if *text != "" {
		filter.Text = text
	}

	c.printEnquiries(c.stdout, c.svc.ListEnquiries(filter))
	return nil
}

func enquiryID(name string, args []string) (string, error) {
	id, rest := leadingArg(args)
	if id == "" || len(rest) > 0 {
		return "", usageErr("%s: expected exactly one enquiry id", name)
	}
	return id, nil
}

func (c *CLI) enquiryShow(args []string) error {
	id, err := enquiryID("enquiry show", args)
	if err != nil {
		return err
	}
	e, err := c.svc.Enquiry(id)
	if err != nil {
		return err
	}
	c.printEnquiry(c.stdout, e)
	return nil
}

func (c *CLI) enquiryUpdate(ctx context.Context, args []string) error {
	id, rest := leadingArg(args)
	if id == "" {
		return usageErr("enquiry update: expected an enquiry id")
	}

	fs := c.newFlagSet("enquiry update")
	var f enquiryFlags
	f.register(fs)
	clearDue := fs.Bool("clear-due", false, "remove the due date")
	if done, err := parse(fs, rest); done {
		return err
	}
	set := setFlags(fs)
	if len(set) == 0 {
		return usageErr("enquiry update: nothing to change")
	}

	due, err := c.dueFlag(set, f.due)
	if err != nil {
		return err
	}
	input := desk.UpdateEnquiryInput{
		ID:           id,
		Title:        optional(set, "title", f.title),
		Category:     optional(set, "category", f.category),
		CustomerName: optional(set, "customer", f.customer),
		Phone:        optional(set, "phone", f.phone),
		DueAt:        due,
		ClearDueAt:   *clearDue || (set["due"] && f.due == ""),
		Notes:        optional(set, "notes", f.notes),
		AssignedTo:   optional(set, "assign", f.assign),
	}
	if set["channel"] {
		ch := domain.ParseChannel(f.channel)
		input.Channel = &ch
	}
	if set["status"] {
		st := domain.ParseStatus(f.status)
		input.Status = &st
	}

	e, err := c.svc.UpdateEnquiry(ctx, input)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.stdout, "updated enquiry %s\n", e.ID)
	return nil
}

func (c *CLI) enquiryStatus(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return usageErr("enquiry status: expected <id> <status>")
	}
	// "in progress" may arrive as two words.
	status := domain.ParseStatus(strings.Join(args[1:], " "))
	e, err := c.svc.SetStatus(ctx, args[0], status)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.stdout, "enquiry %s is now %s\n", e.ID, e.Status)
	return nil
}

func (c *CLI) enquiryDelete(ctx context.Context, args []string) error {
	id, err := enquiryID("enquiry delete", args)
	if err != nil {
		return err
	}
	if err := c.svc.DeleteEnquiry(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(c.stdout, "deleted enquiry %s\n", id)
	return nil
}
