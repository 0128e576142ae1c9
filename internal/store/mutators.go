// Package store holds the pure mutation functions over domain.Store.
//
// Every function takes a Store value and returns a new one. The input's
// slices are never written to, so a caller holding the old value keeps an
// unchanged snapshot. Operations that reference a missing id are no-ops.
package store

import (
	"time"

	"github.com/printmax/enquiry-desk/internal/domain"
)

// UpsertEnquiry replaces the enquiry with the same id in place, keeping its
// position. An enquiry with a new id is prepended.
func UpsertEnquiry(s domain.Store, e domain.Enquiry) domain.Store {
	for i := range s.Enquiries {
		if s.Enquiries[i].ID == e.ID {
			enquiries := make([]domain.Enquiry, len(s.Enquiries))
			copy(enquiries, s.Enquiries)
			enquiries[i] = e
			s.Enquiries = enquiries
			return s
		}
	}

	enquiries := make([]domain.Enquiry, 0, len(s.Enquiries)+1)
	enquiries = append(enquiries, e)
	enquiries = append(enquiries, s.Enquiries...)
	s.Enquiries = enquiries
	return s
}

// DeleteEnquiry removes the enquiry with the given id.
func DeleteEnquiry(s domain.Store, id string) domain.Store {
	s.Enquiries = without(s.Enquiries, func(e domain.Enquiry) bool { return e.ID == id })
	return s
}

// PurgeClosed removes the Completed and Cancelled enquiries created before
// cutoff and reports how many were removed.
func PurgeClosed(s domain.Store, cutoff time.Time) (domain.Store, int) {
	before := len(s.Enquiries)
	s.Enquiries = without(s.Enquiries, func(e domain.Enquiry) bool {
		return e.Status.IsClosed() && e.CreatedAt.Before(cutoff)
	})
	return s, before - len(s.Enquiries)
}

// AddCategory title-cases name and appends it unless the normalized name is
// already present. A blank name is ignored.
func AddCategory(s domain.Store, name string) domain.Store {
	name = domain.TitleCase(name)
	if name == "" || s.HasCategory(name) {
		return s
	}

	categories := make([]string, 0, len(s.Categories)+1)
	categories = append(categories, s.Categories...)
	s.Categories = append(categories, name)
	return s
}

// RemoveCategory removes the exact category string. Enquiries keep whatever
// category they carry.
func RemoveCategory(s domain.Store, name string) domain.Store {
	s.Categories = without(s.Categories, func(c string) bool { return c == name })
	return s
}

// AddUser appends a user with the given id and a title-cased name.
// The caller generates id.
func AddUser(s domain.Store, id, name string, role domain.UserRole) domain.Store {
	users := make([]domain.User, 0, len(s.Users)+1)
	users = append(users, s.Users...)
	s.Users = append(users, domain.User{
		ID:   id,
		Name: domain.TitleCase(name),
		Role: role,
	})
	return s
}

// RemoveUser removes the user with the given id. Enquiries assigned to the
// user keep the now-dangling reference.
func RemoveUser(s domain.Store, id string) domain.Store {
	s.Users = without(s.Users, func(u domain.User) bool { return u.ID == id })
	return s
}

// Login sets the current user id. The id is not checked against the user set;
// an unknown id reads back as nobody logged in.
func Login(s domain.Store, userID string) domain.Store {
	s.CurrentUserID = &userID
	return s
}

// Logout clears the current user id.
func Logout(s domain.Store) domain.Store {
	s.CurrentUserID = nil
	return s
}

// without returns a fresh slice holding the items for which drop is false.
// The result is never nil.
func without[T any](items []T, drop func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if !drop(item) {
			out = append(out, item)
		}
	}
	return out
}
