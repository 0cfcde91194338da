package domain

import (
	"errors"
	"strings"
)

var ErrEmptyName = errors.New("member name is required")

// Address is the member's postal address. Carried verbatim, never validated
// beyond presence of the member name.
type Address struct {
	City    string
	Street  string
	Zipcode string
}

// Member is a registered buyer. The order workflow treats members as
// read-only.
type Member struct {
	ID      int64
	Name    string
	Address Address
}

// NewMember validates and constructs a member.
func NewMember(name string, address Address) (*Member, error) {
	member := &Member{Address: address}
	if err := member.Rename(name); err != nil {
		return nil, err
	}
	return member, nil
}

// Rename trims and sets the member name.
func (m *Member) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	m.Name = name
	return nil
}

// Validate re-applies invariants for persistence.
func (m *Member) Validate() error {
	return m.Rename(m.Name)
}
