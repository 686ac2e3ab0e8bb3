package authkit

import (
	"io"

	"github.com/masakahms/authkit/internal/event"
)

// SessionEvent is a structured session lifecycle record emitted by the
// session's event dispatcher.
type SessionEvent = event.Event

// Session lifecycle event types carried in [SessionEvent].
const (
	EventLogin       = event.TypeLogin
	EventLoginFailed = event.TypeLoginFailed
	EventLogout      = event.TypeLogout
	EventRestore     = event.TypeRestore
	EventPurge       = event.TypePurge
)

// EventSink receives [SessionEvent] values from the session's dispatcher.
type EventSink = event.Sink

// NoOpSink is an [EventSink] that silently discards all events.
type NoOpSink = event.NoOpSink

// ChannelSink is a buffered channel-based [EventSink].
type ChannelSink = event.ChannelSink

// JSONWriterSink is an [EventSink] that writes JSON-encoded events to an
// [io.Writer].
type JSONWriterSink = event.JSONWriterSink

// NewChannelSink creates a [ChannelSink] with the given buffer capacity.
func NewChannelSink(buffer int) *ChannelSink {
	return event.NewChannelSink(buffer)
}

// NewJSONWriterSink creates a [JSONWriterSink] that writes to w.
func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return event.NewJSONWriterSink(w)
}
