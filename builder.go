package authkit

import (
	"log/slog"

	"github.com/masakahms/authkit/internal/event"
	internalmetrics "github.com/masakahms/authkit/internal/metrics"
	"github.com/masakahms/authkit/store"
	"github.com/masakahms/authkit/token"
)

// Builder assembles a [Session] from its dependencies. The credential store is
// the one required dependency; everything else has a working default.
//
// A Builder is single-use: Build consumes it.
type Builder struct {
	config    Config
	store     store.Store
	decoder   *token.Decoder
	logger    *slog.Logger
	eventSink EventSink
	onLogout  func()

	built bool
}

// New creates a Builder with default configuration.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig replaces the whole configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// WithStore sets the credential store. Required.
func (b *Builder) WithStore(st store.Store) *Builder {
	b.store = st
	return b
}

// WithDecoder replaces the default credential decoder.
func (b *Builder) WithDecoder(d *token.Decoder) *Builder {
	b.decoder = d
	return b
}

// WithLogger sets the logger used for degraded-store warnings. Defaults to
// [slog.Default].
func (b *Builder) WithLogger(l *slog.Logger) *Builder {
	b.logger = l
	return b
}

// WithEventSink sets the sink for session lifecycle events and enables
// dispatching.
func (b *Builder) WithEventSink(sink EventSink) *Builder {
	b.eventSink = sink
	b.config.Events.Enabled = true
	return b
}

// WithLogoutObserver registers a callback invoked after every logout, once
// the session is anonymous. The UI layer uses it to navigate to the login
// entry point.
func (b *Builder) WithLogoutObserver(fn func()) *Builder {
	b.onLogout = fn
	return b
}

// WithMetricsEnabled toggles counter collection.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// Build validates the configuration and assembles the Session. The caller
// must run [Session.Initialize] before the first guard evaluation; until
// then the session reports anonymous and protected routes redirect to login.
func (b *Builder) Build() (*Session, error) {
	if b.built {
		return nil, ErrBuilderUsed
	}
	if b.store == nil {
		return nil, ErrStoreRequired
	}
	if err := b.config.Validate(); err != nil {
		return nil, err
	}
	b.built = true

	decoder := b.decoder
	if decoder == nil {
		decoder = token.NewDecoder()
	}
	logger := b.logger
	if logger == nil {
		logger = slog.Default()
	}

	dispatcher := event.NewDispatcher(event.Config{
		Enabled:    b.config.Events.Enabled,
		BufferSize: b.config.Events.BufferSize,
		DropIfFull: b.config.Events.DropIfFull,
	}, b.eventSink)

	return &Session{
		store:    b.store,
		decoder:  decoder,
		logger:   logger,
		events:   dispatcher,
		metrics:  internalmetrics.New(internalmetrics.Config{Enabled: b.config.Metrics.Enabled}),
		onLogout: b.onLogout,
	}, nil
}
