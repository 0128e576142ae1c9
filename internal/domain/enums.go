package domain

import "strings"

// Status is the lifecycle state of an enquiry.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
	StatusCancelled  Status = "Cancelled"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsClosed reports whether no further work is expected on an enquiry in this state.
func (s Status) IsClosed() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// AllStatuses returns every status in display order.
func AllStatuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusCompleted, StatusCancelled}
}

// Channel is how the customer reached the shop.
type Channel string

const (
	ChannelInShop   Channel = "In-shop"
	ChannelWhatsApp Channel = "WhatsApp"
	ChannelCall     Channel = "Call"
	ChannelOnline   Channel = "Online"
)

func (c Channel) String() string { return string(c) }

func (c Channel) IsValid() bool {
	switch c {
	case ChannelInShop, ChannelWhatsApp, ChannelCall, ChannelOnline:
		return true
	}
	return false
}

// AllChannels returns every channel in display order.
func AllChannels() []Channel {
	return []Channel{ChannelInShop, ChannelWhatsApp, ChannelCall, ChannelOnline}
}

// UserRole is a cosmetic label shown next to a user's name.
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleStaff UserRole = "staff"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleStaff:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// ParseStatus matches s against the known statuses ignoring case, spaces,
// dashes and underscores. Unmatched input is returned trimmed so that
// validation can reject it.
func ParseStatus(s string) Status {
	key := enumKey(s)
	for _, st := range AllStatuses() {
		if enumKey(string(st)) == key {
			return st
		}
	}
	return Status(strings.TrimSpace(s))
}

// ParseChannel is ParseStatus for channels.
func ParseChannel(s string) Channel {
	key := enumKey(s)
	for _, ch := range AllChannels() {
		if enumKey(string(ch)) == key {
			return ch
		}
	}
	return Channel(strings.TrimSpace(s))
}

func enumKey(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}
