package desk

import (
	"fmt"

	"github.com/printmax/enquiry-desk/internal/domain"
	"github.com/printmax/enquiry-desk/internal/messaging"
	"github.com/printmax/enquiry-desk/internal/query"
)

// ListEnquiries returns the enquiries matching f, newest first.
func (s *Service) ListEnquiries(f domain.EnquiryFilter) []domain.Enquiry {
	return query.FilterEnquiries(s.current.Enquiries, f)
}

// DueSoon returns open enquiries due by the end of today, earliest first.
func (s *Service) DueSoon() []domain.Enquiry {
	return query.DueSoon(s.current.Enquiries, s.Now())
}

// Dashboard returns the status counts.
func (s *Service) Dashboard() query.DashboardCounts {
	return query.Dashboard(s.current, s.Now())
}

// AssigneeName returns the assignee's name or "Unassigned".
func (s *Service) AssigneeName(e domain.Enquiry) string {
	return query.AssigneeName(s.current, e)
}

// ReminderLink returns the wa.me link with a reminder message for an enquiry.
func (s *Service) ReminderLink(id string) (string, error) {
	e, err := s.Enquiry(id)
	if err != nil {
		return "", fmt.Errorf("reminder link: %w", err)
	}
	return messaging.EnquiryLink(e, s.Now()), nil
}
