// Package authkit provides the client-side authentication session, role model,
// and authorization queries for the hospital bed management UI.
//
// The package owns the session state machine (anonymous ⇄ authenticated), the
// persisted credential slot, and the decoded identity. Route guarding lives in
// the guard sub-package, role-to-view dispatch in route, credential decoding in
// token, and persistence backends in store.
//
// A [Session] is constructed once through [Builder.Build], initialized at
// application start with [Session.Initialize], and then consulted synchronously
// by guards and routers on every navigation. Mutations (login, logout) are
// serialized; reads are safe from any goroutine.
//
// # Architecture boundaries
//
// authkit is the public surface. Internal coordination (event dispatch and
// metric storage) lives under internal/ and is never exported directly.
//
// # What this package must NOT do
//
//   - Verify credential signatures. Decode success is a routing hint only;
//     the backend re-authorizes every request it serves.
//   - Contact the backend. Network flows live in the restapi sub-package and
//     hand an already-issued credential to [Session.Login].
//   - Persist anything beyond the single raw credential string.
package authkit
