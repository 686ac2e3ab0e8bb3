// Package event carries session lifecycle notifications (login, logout,
// restore, purge) from the session state machine to pluggable sinks.
//
// Dispatch is asynchronous through a buffered channel so a slow sink can never
// stall a login or a navigation. The dispatcher drains its buffer on Close.
package event
