package domain

import (
	"encoding/json"
	"reflect"
)

// User is a member of the shop team. Role is a display label only.
type User struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Role UserRole `json:"role"`

	Extra Extra `json:"-"`
}

type userJSON User

var userFields = jsonFieldNames(reflect.TypeOf(userJSON{}))

func (u User) MarshalJSON() ([]byte, error) {
	return marshalWithExtra(userJSON(u), u.Extra)
}

func (u *User) UnmarshalJSON(data []byte) error {
	var plain userJSON
	if err := json.Unmarshal(data, &plain); err != nil {
		return err
	}
	extra, err := unknownMembers(data, userFields)
	if err != nil {
		return err
	}
	*u = User(plain)
	u.Extra = extra
	return nil
}
