package authkit

import "errors"

// Config carries session behavior knobs.
//
// Config instances are set once through [Builder.WithConfig] and treated as
// immutable afterwards.
type Config struct {
	Events  EventConfig
	Metrics MetricsConfig
}

// EventConfig controls the async session-event dispatcher.
type EventConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

// MetricsConfig controls counter collection.
type MetricsConfig struct {
	Enabled bool
}

func defaultConfig() Config {
	return Config{
		Events: EventConfig{
			Enabled:    false,
			BufferSize: 64,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled: false,
		},
	}
}

// Validate rejects configurations the session cannot honor.
func (c Config) Validate() error {
	if c.Events.Enabled && c.Events.BufferSize < 0 {
		return errors.New("event buffer size must not be negative")
	}
	return nil
}
