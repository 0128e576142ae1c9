package domain

// EnquiryFilter contains the optional list filters. Nil or empty fields are
// ignored; the rest are combined with AND.
type EnquiryFilter struct {
	Status     *Status
	Category   *string
	Channel    *Channel
	AssigneeID *string
	Text       *string
}
