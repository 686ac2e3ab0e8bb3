// Package route maps an authenticated role to its default landing view and to
// the navigation entries it may see.
//
// The mapping is pure data: fixed tables over the closed role set with one
// default case. Every input, including an unrecognized role, yields a defined
// output; there is no partial case to fall through.
package route

import authkit "github.com/masakahms/authkit"

// Route paths used by the UI shell.
const (
	LoginRoute            = "/login"
	RegisterRoute         = "/register"
	AdminDashboard        = "/admin/dashboard"
	AdminUsers            = "/admin/users"
	DoctorDashboard       = "/doctor/dashboard"
	ReceptionistDashboard = "/receptionist/dashboard"
)

// NavEntry is one navigation menu item. Entry order within a role's list is
// the intended menu order and carries no other meaning.
type NavEntry struct {
	Label string
	Path  string
}

var navTable = map[authkit.Role][]NavEntry{
	authkit.RoleAdmin: {
		{Label: "Dashboard", Path: AdminDashboard},
		{Label: "User Management", Path: AdminUsers},
	},
	authkit.RoleDoctor: {
		{Label: "Dashboard", Path: DoctorDashboard},
		{Label: "Patients", Path: DoctorDashboard},
	},
	authkit.RoleReceptionist: {
		{Label: "Dashboard", Path: ReceptionistDashboard},
		{Label: "Patients", Path: ReceptionistDashboard},
	},
}

// LandingRouteFor returns the post-login destination for a role. Unrecognized
// roles land on the login route.
func LandingRouteFor(role authkit.Role) string {
	switch role {
	case authkit.RoleAdmin:
		return AdminDashboard
	case authkit.RoleDoctor:
		return DoctorDashboard
	case authkit.RoleReceptionist:
		return ReceptionistDashboard
	default:
		return LoginRoute
	}
}

// NavigationEntriesFor returns the ordered menu entries visible to a role.
// Unrecognized roles see an empty menu. The returned slice is a copy; callers
// may reorder or trim it freely.
func NavigationEntriesFor(role authkit.Role) []NavEntry {
	entries, ok := navTable[role]
	if !ok {
		return []NavEntry{}
	}
	out := make([]NavEntry, len(entries))
	copy(out, entries)
	return out
}
