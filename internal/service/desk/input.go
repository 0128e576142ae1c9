package desk

import (
	"time"

	"github.com/printmax/enquiry-desk/internal/domain"
)

// CreateEnquiryInput holds the fields of a new enquiry.
// Status defaults to Pending.
type CreateEnquiryInput struct {
	Title        string         `json:"title" validate:"required"`
	Category     string         `json:"category" validate:"required"`
	CustomerName string         `json:"customerName" validate:"required"`
	Phone        *string        `json:"phone"`
	Channel      domain.Channel `json:"channel" validate:"required,channel"`
	Status       domain.Status  `json:"status" validate:"omitempty,status"`
	DueAt        *time.Time     `json:"dueAt"`
	Notes        *string        `json:"notes"`
	AssignedTo   *string        `json:"assignedTo"`
}

func (i CreateEnquiryInput) normalize() CreateEnquiryInput {
	i.Title = domain.CollapseSpaces(i.Title)
	i.Category = domain.CollapseSpaces(i.Category)
	i.CustomerName = domain.TitleCase(i.CustomerName)
	i.Phone = trimOrNil(i.Phone)
	i.Notes = trimOrNil(i.Notes)
	i.AssignedTo = trimOrNil(i.AssignedTo)
	if i.Status == "" {
		i.Status = domain.StatusPending
	}
	return i
}

// Validate checks all fields and collects all errors. Surrounding
// whitespace does not count as content.
func (i CreateEnquiryInput) Validate() error {
	return inputs.Struct(i.normalize())
}

// UpdateEnquiryInput is a partial update: nil fields are left unchanged.
// An empty Phone, Notes or AssignedTo clears that field; ClearDueAt removes
// the due date.
type UpdateEnquiryInput struct {
	ID           string          `json:"id" validate:"required"`
	Title        *string         `json:"title" validate:"omitnil,min=1"`
	Category     *string         `json:"category" validate:"omitnil,min=1"`
	CustomerName *string         `json:"customerName" validate:"omitnil,min=1"`
	Phone        *string         `json:"phone"`
	Channel      *domain.Channel `json:"channel" validate:"omitnil,channel"`
	Status       *domain.Status  `json:"status" validate:"omitnil,status"`
	DueAt        *time.Time      `json:"dueAt"`
	ClearDueAt   bool            `json:"-"`
	Notes        *string         `json:"notes"`
	AssignedTo   *string         `json:"assignedTo"`
}

func (i UpdateEnquiryInput) normalize() UpdateEnquiryInput {
	i.ID = domain.CollapseSpaces(i.ID)
	i.Title = collapseOrNil(i.Title)
	i.Category = collapseOrNil(i.Category)
	if i.CustomerName != nil {
		name := domain.TitleCase(*i.CustomerName)
		i.CustomerName = &name
	}
	return i
}

// Validate checks all fields and collects all errors. A title, category or
// customer name that is present must not be blank.
func (i UpdateEnquiryInput) Validate() error {
	if err := inputs.Struct(i.normalize()); err != nil {
		return err
	}
	if i.DueAt != nil && i.ClearDueAt {
		return domain.NewValidationError("dueAt", "dueAt cannot be set and cleared at once")
	}
	return nil
}

// AddUserInput holds the fields of a new user. Role defaults to staff.
type AddUserInput struct {
	Name string          `json:"name" validate:"required"`
	Role domain.UserRole `json:"role" validate:"omitempty,role"`
}

func (i AddUserInput) normalize() AddUserInput {
	i.Name = domain.TitleCase(i.Name)
	if i.Role == "" {
		i.Role = domain.UserRoleStaff
	}
	return i
}

// Validate checks all fields and collects all errors.
func (i AddUserInput) Validate() error {
	return inputs.Struct(i.normalize())
}

func collapseOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := domain.CollapseSpaces(*s)
	return &v
}
