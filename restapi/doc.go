// Package restapi is the typed client for the hospital backend REST API:
// authentication, beds, wards, and patients.
//
// The client attaches the current session's bearer credential to every
// request and tags each call with a request ID. It never decides
// authorization itself: a 401 or 403 from the backend means the session is no
// longer valid server-side, and the client reports it through
// [ErrUnauthorized] plus the configured unauthorized handler so the UI can
// drop the session and return to login.
package restapi
