package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleGuest     Role = "guest"
	RoleHost      Role = "host"
	RoleTourGuide Role = "tour_guide"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleGuest, RoleHost, RoleTourGuide:
		return true
	default:
		return false
	}
}

// IsStaff reports whether the role confirms arrivals and departures.
func (r Role) IsStaff() bool {
	return r == RoleHost || r == RoleTourGuide
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
