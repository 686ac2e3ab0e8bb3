// Package token decodes bearer credentials issued by the hospital backend into
// their embedded claims (username, role, expiry).
//
// Decoding is structural only: the JWT is parsed WITHOUT verifying its signature.
// A successful decode is a routing hint for the UI layer, never proof of
// authenticity; the backend re-checks authorization on every request it serves.
//
// # Architecture boundaries
//
// This package is pure: no I/O, no persistence, no clock-based enforcement.
// Expiry is surfaced in the decoded claims for callers to interpret.
//
// # What this package must NOT do
//
//   - Verify signatures or hold signing keys.
//   - Reject credentials on expiry (that is the caller's policy).
//   - Interpret the role string (the root package owns the closed role set).
package token
