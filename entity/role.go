package entity

// Role is the closed set of authorization roles. SuperUser is a flag on
// the user row, the others are group memberships.
type Role string

const (
	RoleSuperUser    Role = "SuperUser"
	RoleManager      Role = "Manager"
	RoleDeliveryCrew Role = "Delivery crew"
	RoleCustomer     Role = "Customer"
)

// GroupRoles are the roles backed by a groups table row.
var GroupRoles = []Role{RoleManager, RoleDeliveryCrew, RoleCustomer}

func (u *User) HasRole(r Role) bool {
	for _, g := range u.Groups {
		if g.Name == string(r) {
			return true
		}
	}
	return false
}

// Satisfies is the single role-resolution predicate used by every
// allow-list. There is no hierarchy: a superuser passes only the
// SuperUser role.
func (u *User) Satisfies(r Role) bool {
	if r == RoleSuperUser {
		return u.Superuser
	}
	return u.HasRole(r)
}
