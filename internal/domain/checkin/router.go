package checkin

import "guest-conversion/internal/domain/user"

type CheckoutEndpoint string

const (
	CheckoutHost      CheckoutEndpoint = "host"
	CheckoutTourGuide CheckoutEndpoint = "tour_guide"
)

func (e CheckoutEndpoint) String() string { return string(e) }

type CheckoutRouter interface {
	Resolve(role user.Role) (CheckoutEndpoint, error)
}

type RoleCheckoutRouter struct{}

func NewRoleCheckoutRouter() *RoleCheckoutRouter {
	return &RoleCheckoutRouter{}
}

func (RoleCheckoutRouter) Resolve(role user.Role) (CheckoutEndpoint, error) {
	switch role {
	case "":
		return "", ErrRoleRequired
	case user.RoleHost:
		return CheckoutHost, nil
	case user.RoleTourGuide:
		return CheckoutTourGuide, nil
	default:
		return "", ErrRoleCannotCheckout
	}
}
