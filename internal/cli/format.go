package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/printmax/enquiry-desk/internal/domain"
	"github.com/printmax/enquiry-desk/internal/query"
)

const timeLayout = query.DueTimeLayout

func formatTime(t *time.Time, loc *time.Location) string {
	if t == nil {
		return "-"
	}
	return t.In(loc).Format(timeLayout)
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func (c *CLI) printEnquiries(w io.Writer, enquiries []domain.Enquiry) {
	if len(enquiries) == 0 {
		fmt.Fprintln(w, "no enquiries")
		return
	}

	now := c.svc.Now()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCREATED\tDUE\tSTATUS\tCHANNEL\tCATEGORY\tCUSTOMER\tTITLE\tASSIGNEE")
	for _, e := range enquiries {
		due := formatTime(e.DueAt, now.Location())
		if e.IsOverdue(now) {
			due += " !"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			e.ID,
			formatTime(&e.CreatedAt, now.Location()),
			due,
			e.Status,
			e.Channel,
			e.Category,
			e.CustomerName,
			e.Title,
			c.svc.AssigneeName(e),
		)
	}
	tw.Flush()
}

func (c *CLI) printEnquiry(w io.Writer, e domain.Enquiry) {
	loc := c.svc.Now().Location()
	due := formatTime(e.DueAt, loc)
	if e.IsOverdue(c.svc.Now()) {
		due += " (overdue)"
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := [][2]string{
		{"ID", e.ID},
		{"Title", e.Title},
		{"Category", e.Category},
		{"Customer", e.CustomerName},
		{"Phone", orDash(e.Phone)},
		{"Channel", e.Channel.String()},
		{"Status", e.Status.String()},
		{"Created", formatTime(&e.CreatedAt, loc)},
		{"Due", due},
		{"Assignee", c.svc.AssigneeName(e)},
		{"Notes", orDash(e.Notes)},
	}
	for _, r := range rows {
		fmt.Fprintf(tw, "%s:\t%s\n", r[0], r[1])
	}
	tw.Flush()
}

func printUsers(w io.Writer, users []domain.User, current string) {
	if len(users) == 0 {
		fmt.Fprintln(w, "no users")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tROLE\t")
	for _, u := range users {
		marker := ""
		if u.ID == current {
			marker = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Role, marker)
	}
	tw.Flush()
}
