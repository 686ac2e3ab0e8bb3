package authkit

// Role is the closed set of staff roles recognized by the UI. Any role string
// outside the set decodes to [RoleUnknown], and every authorization query
// fails closed on it.
type Role uint8

const (
	// RoleUnknown tags an absent or unrecognized role. It never satisfies an
	// authorization check.
	RoleUnknown Role = iota
	// RoleAdmin manages users and wards.
	RoleAdmin
	// RoleDoctor views and treats patients.
	RoleDoctor
	// RoleReceptionist registers, searches, and discharges patients.
	RoleReceptionist
)

// ParseRole maps a decoded role string to its Role. Unrecognized strings map
// to RoleUnknown, never an error: downstream tables and guards handle the
// unknown case explicitly instead of failing mid-dispatch.
func ParseRole(s string) Role {
	switch s {
	case "admin":
		return RoleAdmin
	case "doctor":
		return RoleDoctor
	case "receptionist":
		return RoleReceptionist
	default:
		return RoleUnknown
	}
}

// String returns the wire form of the role, or "unknown".
func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleDoctor:
		return "doctor"
	case RoleReceptionist:
		return "receptionist"
	default:
		return "unknown"
	}
}

// Recognized reports whether r is a member of the closed role set.
func (r Role) Recognized() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RoleReceptionist:
		return true
	default:
		return false
	}
}
