package models

import "fmt"

// Role is the closed set of user categories on the platform. A Role is
// immutable once assigned to a user and drives navigation and dashboard
// view selection. Anything outside the six constants below is rejected
// at the boundary by ParseRole; inside the service a Role value is
// trusted to be a member of the set.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleDoctor   Role = "doctor"
	RoleCoach    Role = "coach"
	RoleKitchen  Role = "kitchen"
	RoleDelivery Role = "delivery"
	RoleAdmin    Role = "admin"
)

// AllRoles lists every Role variant. Tests iterate this slice to prove
// role-keyed mappings are total; keep it in sync with the constants.
var AllRoles = []Role{
	RoleCustomer,
	RoleDoctor,
	RoleCoach,
	RoleKitchen,
	RoleDelivery,
	RoleAdmin,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleDoctor, RoleCoach, RoleKitchen, RoleDelivery, RoleAdmin:
		return true
	}
	return false
}

// ParseRole converts untrusted input into a Role.
func ParseRole(raw string) (Role, error) {
	role := Role(raw)
	if !role.Valid() {
		return "", fmt.Errorf("unknown role %q", raw)
	}
	return role, nil
}
