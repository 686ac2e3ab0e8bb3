package guard

import (
	"context"
	"net/http"

	authkit "github.com/masakahms/authkit"
)

type identityContextKey struct{}

// IdentityFromContext returns the identity injected by [Protect] for the
// current request.
func IdentityFromContext(ctx context.Context) (authkit.Identity, bool) {
	id, ok := ctx.Value(identityContextKey{}).(authkit.Identity)
	return id, ok
}

// Protect wraps a protected view handler. Every request re-evaluates the
// session: RedirectLogin becomes a redirect to loginPath, RedirectHome to
// homePath, and Render passes through with the identity in the request
// context.
func Protect(session *authkit.Session, loginPath, homePath string, required ...authkit.Role) func(http.Handler) http.Handler {
	if loginPath == "" {
		loginPath = "/login"
	}
	if homePath == "" {
		homePath = "/"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch Evaluate(session, required...) {
			case RedirectLogin:
				session.Metrics().Inc(authkit.MetricGuardRedirectLogin)
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			case RedirectHome:
				session.Metrics().Inc(authkit.MetricGuardRedirectHome)
				http.Redirect(w, r, homePath, http.StatusSeeOther)
				return
			}

			session.Metrics().Inc(authkit.MetricGuardRender)

			ctx := r.Context()
			if identity, ok := session.CurrentIdentity(); ok {
				ctx = context.WithValue(ctx, identityContextKey{}, identity)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
