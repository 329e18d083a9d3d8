package domain

import "strings"

// Role names are free-form; Admin is the only one with system meaning.
const (
	RoleAdmin   = "Admin"
	RoleStudent = "Student"
)

// roleSeparator joins roles in storage. Role names must not contain it.
const roleSeparator = ","

// RoleSet is an ordered, duplicate-free set of role names. It is the
// in-process representation of the comma-joined role column; the delimited
// string only exists at the storage edge.
type RoleSet struct {
	roles []string
}

// NewRoleSet builds a set from the given names, preserving first-seen order
// and dropping duplicates and empty entries.
func NewRoleSet(names ...string) RoleSet {
	var rs RoleSet
	for _, n := range names {
		rs.Add(n)
	}
	return rs
}

// ParseRoleSet parses a comma-joined role string as stored.
func ParseRoleSet(s string) RoleSet {
	return NewRoleSet(strings.Split(s, roleSeparator)...)
}

// Has reports membership. Role names are case-sensitive.
func (rs RoleSet) Has(role string) bool {
	for _, r := range rs.roles {
		if r == role {
			return true
		}
	}
	return false
}

// Add appends role if absent. Empty names are ignored.
func (rs *RoleSet) Add(role string) {
	role = strings.TrimSpace(role)
	if role == "" || rs.Has(role) {
		return
	}
	rs.roles = append(rs.roles, role)
}

// Remove deletes role if present, keeping order of the rest.
func (rs *RoleSet) Remove(role string) {
	for i, r := range rs.roles {
		if r == role {
			rs.roles = append(rs.roles[:i], rs.roles[i+1:]...)
			return
		}
	}
}

// Len returns the number of roles in the set.
func (rs RoleSet) Len() int { return len(rs.roles) }

// IsEmpty reports whether the set has no roles.
func (rs RoleSet) IsEmpty() bool { return len(rs.roles) == 0 }

// Names returns a copy of the role names in order.
func (rs RoleSet) Names() []string {
	out := make([]string, len(rs.roles))
	copy(out, rs.roles)
	return out
}

// String serializes the set to the stored comma-joined form.
func (rs RoleSet) String() string {
	return strings.Join(rs.roles, roleSeparator)
}
