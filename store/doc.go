// Package store persists a single bearer credential across process restarts.
//
// The session layer holds exactly one credential at a time; the store is the
// durable slot it lives in between runs. Three backends are provided: [Memory]
// for tests and ephemeral sessions, [File] for single-user desktop deployments,
// and [Redis] for shared kiosk fleets where the credential slot lives server-side.
//
// # Failure contract
//
// Store failures are never fatal to the caller. A backend that cannot be reached
// behaves like an empty slot: the session simply will not be restored on the
// next start. [Store.Clear] is idempotent.
//
// # What this package must NOT do
//
//   - Inspect, decode, or validate the credential it stores.
//   - Persist anything beyond the one raw credential string.
package store
