package auth

import "slices"

const (
	RoleAdmin     = "admin"
	RoleDoctor    = "doctor"
	RoleSecretary = "secretary"
	RoleUser      = "user"
)

// RoleSet is an immutable allow-list. Matching is exact, there is no hierarchy.
type RoleSet struct {
	roles []string
}

func NewRoleSet(roles ...string) RoleSet {
	cp := slices.Clone(roles)
	slices.Sort(cp)
	return RoleSet{roles: slices.Compact(cp)}
}

func (s RoleSet) Allows(role string) bool {
	if role == "" {
		return false
	}
	_, ok := slices.BinarySearch(s.roles, role)
	return ok
}

func (s RoleSet) Roles() []string {
	return slices.Clone(s.roles)
}

var (
	Admin          = NewRoleSet(RoleAdmin)
	AdminSecretary = NewRoleSet(RoleAdmin, RoleSecretary)
	AdminDoctor    = NewRoleSet(RoleAdmin, RoleDoctor)
	Staff          = NewRoleSet(RoleAdmin, RoleDoctor, RoleSecretary)
)

type Guard func(p *Principal) (*Principal, error)

func RequireRoles(set RoleSet) Guard {
	return func(p *Principal) (*Principal, error) {
		if p == nil {
			return nil, ErrUnauthenticated
		}
		if !set.Allows(p.Role) {
			return nil, ErrForbidden
		}
		return p, nil
	}
}
