package domain

import (
	"encoding/json"
	"fmt"
	"maps"
	"reflect"
	"slices"
)

// Seed user ids written into a fresh store.
const (
	SeedAdminID = "user-admin"
	SeedStaffID = "user-staff"
)

// DefaultCategories is the category set of a fresh store.
var DefaultCategories = []string{
	"Signage",
	"Plotting",
	"Flex Printing",
	"T-Shirt Printing",
	"Visiting Cards",
	"Stickers",
}

// Store is the aggregate root and the unit of persistence. Every mutation
// produces a new Store value; slices are never shared between values that
// are mutated independently.
type Store struct {
	Users         []User    `json:"users"`
	Categories    []string  `json:"categories"`
	Enquiries     []Enquiry `json:"enquiries"`
	CurrentUserID *string   `json:"currentUserId,omitempty"`

	Extra Extra `json:"-"`
}

// DefaultStore returns the store used on first run: an admin and a staff
// user, the default categories, no enquiries and nobody logged in.
func DefaultStore() Store {
	categories := make([]string, len(DefaultCategories))
	copy(categories, DefaultCategories)

	return Store{
		Users: []User{
			{ID: SeedAdminID, Name: "Admin", Role: UserRoleAdmin},
			{ID: SeedStaffID, Name: "Staff", Role: UserRoleStaff},
		},
		Categories: categories,
		Enquiries:  []Enquiry{},
	}
}

// Clone returns a copy whose slices, maps and current user id share no
// storage with s, so writes to the copy never reach s. Optional entity
// fields still point at the same strings; the mutators replace those
// pointers rather than writing through them.
func (s Store) Clone() Store {
	out := Store{
		Users:      slices.Clone(s.Users),
		Categories: slices.Clone(s.Categories),
		Enquiries:  slices.Clone(s.Enquiries),
		Extra:      maps.Clone(s.Extra),
	}
	if s.CurrentUserID != nil {
		id := *s.CurrentUserID
		out.CurrentUserID = &id
	}
	for i := range out.Users {
		out.Users[i].Extra = maps.Clone(out.Users[i].Extra)
	}
	for i := range out.Enquiries {
		out.Enquiries[i].Extra = maps.Clone(out.Enquiries[i].Extra)
	}
	return out
}

// FindUser looks a user up by id. A missing user is not an error.
func (s *Store) FindUser(id string) (*User, bool) {
	for i := range s.Users {
		if s.Users[i].ID == id {
			return &s.Users[i], true
		}
	}
	return nil, false
}

// FindEnquiry looks an enquiry up by id. A missing enquiry is not an error.
func (s *Store) FindEnquiry(id string) (*Enquiry, bool) {
	for i := range s.Enquiries {
		if s.Enquiries[i].ID == id {
			return &s.Enquiries[i], true
		}
	}
	return nil, false
}

// CurrentUser resolves CurrentUserID. A dangling id means nobody is logged in.
func (s *Store) CurrentUser() (*User, bool) {
	if s.CurrentUserID == nil {
		return nil, false
	}
	return s.FindUser(*s.CurrentUserID)
}

// HasCategory reports exact membership in the category set.
func (s *Store) HasCategory(name string) bool {
	for _, c := range s.Categories {
		if c == name {
			return true
		}
	}
	return false
}

// Validate checks the invariants a decoded document must hold before it may
// replace the current store: unique non-empty ids and known enum values.
// Dangling references are allowed.
func (s *Store) Validate() error {
	var errs []FieldError

	userIDs := make(map[string]struct{}, len(s.Users))
	for i, u := range s.Users {
		field := fmt.Sprintf("users[%d]", i)
		if u.ID == "" {
			errs = append(errs, FieldError{Field: field + ".id", Message: "required"})
		} else if _, dup := userIDs[u.ID]; dup {
			errs = append(errs, FieldError{Field: field + ".id", Message: "duplicate"})
		}
		userIDs[u.ID] = struct{}{}
		if !u.Role.IsValid() {
			errs = append(errs, FieldError{Field: field + ".role", Message: fmt.Sprintf("unknown role %q", u.Role)})
		}
	}

	enquiryIDs := make(map[string]struct{}, len(s.Enquiries))
	for i, e := range s.Enquiries {
		field := fmt.Sprintf("enquiries[%d]", i)
		if e.ID == "" {
			errs = append(errs, FieldError{Field: field + ".id", Message: "required"})
		} else if _, dup := enquiryIDs[e.ID]; dup {
			errs = append(errs, FieldError{Field: field + ".id", Message: "duplicate"})
		}
		enquiryIDs[e.ID] = struct{}{}
		if !e.Status.IsValid() {
			errs = append(errs, FieldError{Field: field + ".status", Message: fmt.Sprintf("unknown status %q", e.Status)})
		}
		if !e.Channel.IsValid() {
			errs = append(errs, FieldError{Field: field + ".channel", Message: fmt.Sprintf("unknown channel %q", e.Channel)})
		}
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

type storeJSON Store

var storeFields = jsonFieldNames(reflect.TypeOf(storeJSON{}))

// MarshalJSON always writes the three collections as arrays, never null.
func (s Store) MarshalJSON() ([]byte, error) {
	out := storeJSON(s)
	if out.Users == nil {
		out.Users = []User{}
	}
	if out.Categories == nil {
		out.Categories = []string{}
	}
	if out.Enquiries == nil {
		out.Enquiries = []Enquiry{}
	}
	return marshalWithExtra(out, s.Extra)
}

// UnmarshalJSON treats missing collections as empty.
func (s *Store) UnmarshalJSON(data []byte) error {
	var plain storeJSON
	if err := json.Unmarshal(data, &plain); err != nil {
		return err
	}
	extra, err := unknownMembers(data, storeFields)
	if err != nil {
		return err
	}
	if plain.Users == nil {
		plain.Users = []User{}
	}
	if plain.Categories == nil {
		plain.Categories = []string{}
	}
	if plain.Enquiries == nil {
		plain.Enquiries = []Enquiry{}
	}
	*s = Store(plain)
	s.Extra = extra
	return nil
}
