package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
)

func (c *CLI) due(_ context.Context, args []string) error {
	if len(args) > 0 {
		return usageErr("due: takes no arguments")
	}
	c.printEnquiries(c.stdout, c.svc.DueSoon())
	return nil
}

func (c *CLI) dashboard(_ context.Context, args []string) error {
	if len(args) > 0 {
		return usageErr("dashboard: takes no arguments")
	}
	d := c.svc.Dashboard()

	tw := tabwriter.NewWriter(c.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Pending:\t%d\n", d.Pending)
	fmt.Fprintf(tw, "In Progress:\t%d\n", d.InProgress)
	fmt.Fprintf(tw, "Completed:\t%d\n", d.Completed)
	fmt.Fprintf(tw, "Cancelled:\t%d\n", d.Cancelled)
	fmt.Fprintf(tw, "Total:\t%d\n", d.Total)
	fmt.Fprintf(tw, "Due today:\t%d\n", d.DueSoon)
	fmt.Fprintf(tw, "Overdue:\t%d\n", d.Overdue)
	return tw.Flush()
}

func (c *CLI) walink(_ context.Context, args []string) error {
	id, err := enquiryID("walink", args)
	if err != nil {
		return err
	}
	link, err := c.svc.ReminderLink(id)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.stdout, link)
	return nil
}
