package guard

import authkit "github.com/masakahms/authkit"

// Decision is the outcome of one guard evaluation. Redirects are normal
// control flow, not errors.
type Decision uint8

const (
	// Render allows the protected view.
	Render Decision = iota
	// RedirectLogin sends the visitor to the login entry point.
	RedirectLogin
	// RedirectHome sends an authenticated visitor with the wrong role home.
	RedirectHome
)

// String names the decision for logs and tests.
func (d Decision) String() string {
	switch d {
	case Render:
		return "render"
	case RedirectLogin:
		return "redirect_login"
	case RedirectHome:
		return "redirect_home"
	default:
		return "unknown"
	}
}

// Session is the slice of session state guarding needs. *authkit.Session
// satisfies it.
type Session interface {
	IsAuthenticated() bool
	HasRole(authkit.Role) bool
}

// Evaluate decides whether a route may render for the current session.
//
// With no roles given the route only requires authentication. With one or
// more, the session must hold one of them exactly; role matching has no
// hierarchy, and an unrecognized role never matches.
func Evaluate(s Session, required ...authkit.Role) Decision {
	if s == nil || !s.IsAuthenticated() {
		return RedirectLogin
	}

	if len(required) == 0 {
		return Render
	}
	for _, role := range required {
		if s.HasRole(role) {
			return Render
		}
	}
	return RedirectHome
}
