package authkit

import "time"

// Identity is the decoded view of the current credential: who is signed in,
// what they may see, and when the credential lapses.
//
// Identities are derived, never constructed independently: one exists exactly
// as long as a decodable credential does, and consumers receive value copies
// valid for the duration of a render.
type Identity struct {
	Username  string
	Role      Role
	ExpiresAt time.Time
}

// Expired reports whether the credential behind this identity was past its
// expiry at the given instant. Expiry is surfaced for callers to interpret;
// the session itself does not enforce it.
func (id Identity) Expired(now time.Time) bool {
	if id.ExpiresAt.IsZero() {
		return false
	}
	return now.After(id.ExpiresAt)
}
