// Package messaging builds the outbound WhatsApp link and reminder text for
// an enquiry.
package messaging

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/printmax/enquiry-desk/internal/domain"
)

const waBase = "https://wa.me"

// ReminderTimeLayout formats the due time inside ReminderText.
const ReminderTimeLayout = "Jan 2, 15:04"

// WaLink returns a wa.me link for phone with text as the prefilled message.
// Non-digit characters are stripped from phone. An empty text omits the
// query; an empty phone links to the bare wa.me host.
func WaLink(phone, text string) string {
	digits := domain.DigitsOnly(phone)

	var b strings.Builder
	b.WriteString(waBase)
	if digits != "" || text != "" {
		b.WriteByte('/')
		b.WriteString(digits)
	}
	if text != "" {
		b.WriteString("?text=")
		b.WriteString(encodeText(text))
	}
	return b.String()
}

// EnquiryLink builds the link for an enquiry's phone with a reminder message.
func EnquiryLink(e domain.Enquiry, now time.Time) string {
	phone := ""
	if e.Phone != nil {
		phone = *e.Phone
	}
	return WaLink(phone, ReminderText(e, now))
}

// ReminderText is the message sent to a customer about an enquiry. The due
// time is rendered in now's location; without a due date the sentence ends
// after the title.
func ReminderText(e domain.Enquiry, now time.Time) string {
	if e.DueAt == nil {
		return fmt.Sprintf("Hello %s, this is a reminder about your %s enquiry.", e.CustomerName, e.Title)
	}
	due := e.DueAt.In(now.Location()).Format(ReminderTimeLayout)
	return fmt.Sprintf("Hello %s, this is a reminder about your %s enquiry due %s.", e.CustomerName, e.Title, due)
}

// encodeText percent-encodes text for a query value with spaces as %20.
func encodeText(text string) string {
	return strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}
