package domain

// Role is the authorization level derived from a verified credential.
// It replaces the old "token equals a magic string" check with an explicit
// sum of the three levels the service distinguishes.
type Role int

const (
	RoleGuest Role = iota
	RoleUser
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleUser:
		return "user"
	default:
		return "guest"
	}
}

// ParseRole maps a stored role claim back to a Role. Unknown values
// degrade to guest rather than failing.
func ParseRole(s string) Role {
	switch s {
	case "admin":
		return RoleAdmin
	case "user":
		return RoleUser
	default:
		return RoleGuest
	}
}

func (r Role) IsAdmin() bool { return r == RoleAdmin }

// LoggedIn reports whether the role carries any authenticated identity.
func (r Role) LoggedIn() bool { return r != RoleGuest }
