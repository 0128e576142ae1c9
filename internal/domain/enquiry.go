package domain

import (
	"encoding/json"
	"reflect"
	"time"
)

// Enquiry is a customer print-job lead tracked through statuses to completion.
type Enquiry struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Category     string     `json:"category"`
	CustomerName string     `json:"customerName"`
	Phone        *string    `json:"phone,omitempty"`
	Channel      Channel    `json:"channel"`
	Status       Status     `json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
	DueAt        *time.Time `json:"dueAt,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
	AssignedTo   *string    `json:"assignedTo,omitempty"` // user id, may dangle

	Extra Extra `json:"-"`
}

// IsOverdue returns true if the enquiry has a due time strictly before now.
// Status is not considered.
func (e *Enquiry) IsOverdue(now time.Time) bool {
	return e.DueAt != nil && e.DueAt.Before(now)
}

// IsOpen returns true while the enquiry is neither completed nor cancelled.
func (e *Enquiry) IsOpen() bool {
	return !e.Status.IsClosed()
}

type enquiryJSON Enquiry

var enquiryFields = jsonFieldNames(reflect.TypeOf(enquiryJSON{}))

func (e Enquiry) MarshalJSON() ([]byte, error) {
	return marshalWithExtra(enquiryJSON(e), e.Extra)
}

func (e *Enquiry) UnmarshalJSON(data []byte) error {
	var plain enquiryJSON
	if err := json.Unmarshal(data, &plain); err != nil {
		return err
	}
	extra, err := unknownMembers(data, enquiryFields)
	if err != nil {
		return err
	}
	*e = Enquiry(plain)
	e.Extra = extra
	return nil
}
