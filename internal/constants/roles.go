package constants

// Role is the access level carried by a user account and by the session
// issued at login. The zero value is deliberately unassigned so that
// partial user updates can treat 0 as "field not supplied".
type Role int

const (
	RoleUnset Role = iota
	RoleAdmin
	RoleManager
	RoleDirector
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "Admin"
	case RoleManager:
		return "Manager"
	case RoleDirector:
		return "Director"
	default:
		return "Unset"
	}
}
