package query

import (
	"time"

	"github.com/printmax/enquiry-desk/internal/domain"
)

// UnassignedLabel is shown for an enquiry with no assignee or a removed one.
const UnassignedLabel = "Unassigned"

// DashboardCounts holds the headline counts over the full enquiry set.
type DashboardCounts struct {
	Pending    int
	InProgress int
	Completed  int
	Cancelled  int
	Total      int
	DueSoon    int
	Overdue    int
}

// Dashboard counts enquiries by exact status, ignoring any list filter.
// DueSoon and Overdue are evaluated at now.
func Dashboard(s domain.Store, now time.Time) DashboardCounts {
	d := DashboardCounts{Total: len(s.Enquiries)}

	for _, e := range s.Enquiries {
		switch e.Status {
		case domain.StatusPending:
			d.Pending++
		case domain.StatusInProgress:
			d.InProgress++
		case domain.StatusCompleted:
			d.Completed++
		case domain.StatusCancelled:
			d.Cancelled++
		}
		if e.IsOverdue(now) {
			d.Overdue++
		}
	}
	d.DueSoon = len(DueSoon(s.Enquiries, now))

	return d
}

// AssigneeName resolves e.AssignedTo against the store's users.
func AssigneeName(s domain.Store, e domain.Enquiry) string {
	if e.AssignedTo == nil {
		return UnassignedLabel
	}
	u, ok := s.FindUser(*e.AssignedTo)
	if !ok {
		return UnassignedLabel
	}
	return u.Name
}
