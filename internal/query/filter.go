// Package query derives read-only views from a domain.Store: filtered lists,
// the due-soon reminder set and dashboard counts. Nothing here is cached;
// every call recomputes from the slice it is given.
package query

import (
	"slices"
	"strings"

	"github.com/printmax/enquiry-desk/internal/domain"
)

// searchSeparator joins the searchable fields so a match cannot span two of them.
const searchSeparator = "\x1f"

// FilterEnquiries returns the enquiries matching every set field of f,
// newest first. Enquiries with equal createdAt keep their input order.
// The input slice is not modified.
func FilterEnquiries(enquiries []domain.Enquiry, f domain.EnquiryFilter) []domain.Enquiry {
	m := newMatcher(f)

	out := make([]domain.Enquiry, 0, len(enquiries))
	for _, e := range enquiries {
		if m.match(e) {
			out = append(out, e)
		}
	}

	SortByCreatedDesc(out)
	return out
}

// SortByCreatedDesc sorts enquiries in place by createdAt, newest first.
func SortByCreatedDesc(enquiries []domain.Enquiry) {
	slices.SortStableFunc(enquiries, func(a, b domain.Enquiry) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}

type matcher struct {
	status     domain.Status
	category   string
	channel    domain.Channel
	assigneeID string
	text       string
	folded     string
}

func newMatcher(f domain.EnquiryFilter) matcher {
	var m matcher
	if f.Status != nil {
		m.status = *f.Status
	}
	if f.Category != nil {
		m.category = *f.Category
	}
	if f.Channel != nil {
		m.channel = *f.Channel
	}
	if f.AssigneeID != nil {
		m.assigneeID = *f.AssigneeID
	}
	if f.Text != nil {
		m.text = domain.NormalizeText(*f.Text)
		m.folded = domain.FoldPunctuation(*f.Text)
	}
	return m
}

func (m matcher) match(e domain.Enquiry) bool {
	if m.status != "" && e.Status != m.status {
		return false
	}
	if m.category != "" && e.Category != m.category {
		return false
	}
	if m.channel != "" && e.Channel != m.channel {
		return false
	}
	if m.assigneeID != "" && (e.AssignedTo == nil || *e.AssignedTo != m.assigneeID) {
		return false
	}
	if m.text != "" && !m.matchText(e) {
		return false
	}
	return true
}

// matchText compares case-insensitively, then retries with punctuation and
// spacing removed so "tshirt" finds "T-shirt printing".
func (m matcher) matchText(e domain.Enquiry) bool {
	fields := searchFields(e)

	haystack := domain.NormalizeText(strings.Join(fields, searchSeparator))
	if strings.Contains(haystack, m.text) {
		return true
	}

	if m.folded == "" {
		return false
	}
	for _, field := range fields {
		if strings.Contains(domain.FoldPunctuation(field), m.folded) {
			return true
		}
	}
	return false
}

func searchFields(e domain.Enquiry) []string {
	fields := make([]string, 0, 4)
	fields = append(fields, e.Title, e.CustomerName)
	if e.Notes != nil {
		fields = append(fields, *e.Notes)
	}
	if e.Phone != nil {
		fields = append(fields, *e.Phone)
	}
	return fields
}
