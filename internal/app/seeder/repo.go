// Package seeder imports enquiries kept in a spreadsheet before the desk
// was in use. Rows go through the desk service, so every row is validated
// and saved the same way as an enquiry typed in by hand.
package seeder

import (
	"context"
	"time"

	"github.com/printmax/enquiry-desk/internal/domain"
	"github.com/printmax/enquiry-desk/internal/service/desk"
)

// EnquiryDesk is the part of the desk service the pipeline writes through.
// Implemented by desk.Service.
type EnquiryDesk interface {
	Now() time.Time
	Categories() []string
	Users() []domain.User
	AddCategory(ctx context.Context, name string) (string, error)
	CreateEnquiry(ctx context.Context, input desk.CreateEnquiryInput) (domain.Enquiry, error)
}
