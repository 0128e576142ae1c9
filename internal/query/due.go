package query

import (
	"slices"
	"strings"
	"time"

	"github.com/printmax/enquiry-desk/internal/domain"
)

// EndOfDay returns the last millisecond of t's calendar day in t's location.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// DueSoon returns the open enquiries due by the end of now's day, earliest
// first. Past-due enquiries stay in the set until they are closed.
func DueSoon(enquiries []domain.Enquiry, now time.Time) []domain.Enquiry {
	cutoff := EndOfDay(now)

	out := make([]domain.Enquiry, 0)
	for _, e := range enquiries {
		if e.DueAt == nil || e.Status.IsClosed() {
			continue
		}
		if e.DueAt.After(cutoff) {
			continue
		}
		out = append(out, e)
	}

	slices.SortStableFunc(out, func(a, b domain.Enquiry) int {
		return a.DueAt.Compare(*b.DueAt)
	})
	return out
}

// Overdue returns the enquiries whose due time is before now, regardless of
// status, in input order.
func Overdue(enquiries []domain.Enquiry, now time.Time) []domain.Enquiry {
	out := make([]domain.Enquiry, 0)
	for _, e := range enquiries {
		if e.IsOverdue(now) {
			out = append(out, e)
		}
	}
	return out
}

// Accepted due date layouts besides RFC 3339.
const (
	DueTimeLayout = "2006-01-02 15:04"
	DueDateLayout = "2006-01-02"
)

// ParseDue reads a due date in loc. A bare date means the end of that day.
func ParseDue(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, layout := range []string{DueTimeLayout, "2006-01-02T15:04"} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	if t, err := time.ParseInLocation(DueDateLayout, s, loc); err == nil {
		return EndOfDay(t), nil
	}
	return time.Time{}, domain.NewValidationError("dueAt",
		"dueAt must be a date (2006-01-02), a date and time (2006-01-02 15:04) or RFC 3339")
}
