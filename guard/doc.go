// Package guard decides, per navigation, whether a protected view may render.
//
// # Decisions
//
//   - [Render]: the session satisfies the route's requirement.
//   - [RedirectLogin]: no authenticated session; go to the login entry point.
//   - [RedirectHome]: authenticated but the wrong role; go home.
//
// [Evaluate] is a pure function over the current session state. Nothing is
// cached: every navigation re-evaluates, because a login or logout elsewhere
// in the UI can change the answer between two navigations.
//
// # Architecture boundaries
//
// This package translates session state into routing decisions. It does NOT
// mutate the session, and [Protect] does nothing beyond issuing the redirect
// its decision names.
package guard
