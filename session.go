package authkit

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/masakahms/authkit/internal/event"
	internalmetrics "github.com/masakahms/authkit/internal/metrics"
	"github.com/masakahms/authkit/store"
	"github.com/masakahms/authkit/token"
)

// State is the session's lifecycle state. Role is a queryable attribute of an
// authenticated session, not a state of its own.
type State uint8

const (
	// StateAnonymous means no credential is held.
	StateAnonymous State = iota
	// StateAuthenticated means a credential is held and was decodable.
	StateAuthenticated
)

// Session is the process-wide authentication state: the persisted credential
// and its memoized decoded identity.
//
// The credential and identity move together: either both are absent
// (anonymous) or both are present (authenticated). There is no partially
// valid state. The identity is decoded once per credential change, on
// Initialize and Login, never per read.
//
// Construct through [Builder.Build], call [Session.Initialize] once before
// any guard evaluation, and share the one instance with every consumer.
type Session struct {
	store    store.Store
	decoder  *token.Decoder
	logger   *slog.Logger
	events   *event.Dispatcher
	metrics  *internalmetrics.Metrics
	onLogout func()

	mu         sync.RWMutex
	credential string
	identity   *Identity
}

// Initialize restores any persisted session. It runs once at application
// start, before the first navigation.
//
// A missing or unreachable store resolves to the anonymous state, never an
// error. A persisted credential that fails to decode is purged from the store
// and likewise resolves to anonymous, the one place a credential is cleared
// without an explicit user action. The returned error is non-nil only when
// ctx is done.
func (s *Session) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	credential, err := s.store.Load(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if !errors.Is(err, store.ErrNoCredential) {
			s.logger.Warn("credential store unavailable, starting anonymous", "error", err)
			s.metrics.Inc(internalmetrics.MetricStoreDegraded)
		}
		return nil
	}

	claims, err := s.decoder.Decode(credential)
	if err != nil {
		// A corrupt credential must not silently persist.
		s.metrics.Inc(internalmetrics.MetricDecodeFailure)
		s.metrics.Inc(internalmetrics.MetricSessionPurged)
		s.logger.Warn("purging undecodable persisted credential", "error", err)
		if clearErr := s.store.Clear(ctx); clearErr != nil {
			s.logger.Warn("purge failed", "error", clearErr)
			s.metrics.Inc(internalmetrics.MetricStoreDegraded)
		}
		s.emit(ctx, event.Event{EventType: event.TypePurge, Error: err.Error()})
		return nil
	}

	identity := identityFromClaims(claims)
	s.credential = credential
	s.identity = &identity

	s.metrics.Inc(internalmetrics.MetricSessionRestored)
	s.emit(ctx, event.Event{
		EventType: event.TypeRestore,
		Username:  identity.Username,
		Role:      identity.Role.String(),
		Success:   true,
	})

	return nil
}

// Login installs an already-issued credential as the current session and
// returns the decoded identity for post-login routing.
//
// The credential is decoded before anything is persisted, so a failed login
// leaves both the in-memory state and the store exactly as they were. An
// empty credential fails validation before decode with [ErrCredentialEmpty];
// an undecodable one fails with an error matching [ErrCredentialMalformed].
// A store that cannot persist degrades to an in-memory-only session.
func (s *Session) Login(ctx context.Context, credential string) (Identity, error) {
	if credential == "" {
		s.metrics.Inc(internalmetrics.MetricLoginFailure)
		return Identity{}, ErrCredentialEmpty
	}

	claims, err := s.decoder.Decode(credential)
	if err != nil {
		s.metrics.Inc(internalmetrics.MetricLoginFailure)
		s.metrics.Inc(internalmetrics.MetricDecodeFailure)
		s.emit(ctx, event.Event{EventType: event.TypeLoginFailed, Error: err.Error()})
		return Identity{}, err
	}

	identity := identityFromClaims(claims)

	s.mu.Lock()
	if err := s.store.Save(ctx, credential); err != nil {
		s.logger.Warn("credential not persisted, session will not survive restart", "error", err)
		s.metrics.Inc(internalmetrics.MetricStoreDegraded)
	}
	s.credential = credential
	s.identity = &identity
	s.mu.Unlock()

	s.metrics.Inc(internalmetrics.MetricLoginSuccess)
	s.emit(ctx, event.Event{
		EventType: event.TypeLogin,
		Username:  identity.Username,
		Role:      identity.Role.String(),
		Success:   true,
	})

	return identity, nil
}

// Logout clears the persisted credential and returns the session to the
// anonymous state unconditionally. Logging out twice is the same as once.
// The logout observer, when configured, runs after the state change so it
// observes the anonymous session.
func (s *Session) Logout(ctx context.Context) {
	s.mu.Lock()
	wasAuthenticated := s.identity != nil
	username := ""
	if s.identity != nil {
		username = s.identity.Username
	}
	if err := s.store.Clear(ctx); err != nil {
		s.logger.Warn("credential store clear failed", "error", err)
		s.metrics.Inc(internalmetrics.MetricStoreDegraded)
	}
	s.credential = ""
	s.identity = nil
	s.mu.Unlock()

	if wasAuthenticated {
		s.metrics.Inc(internalmetrics.MetricLogout)
		s.emit(ctx, event.Event{EventType: event.TypeLogout, Username: username, Success: true})
	}

	if s.onLogout != nil {
		s.onLogout()
	}
}

// IsAuthenticated reports whether a decodable credential is currently held.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity != nil
}

// HasRole reports whether the session is authenticated as exactly the
// required role. There is no role hierarchy: admin is not doctor. Both an
// anonymous session and an unrecognized role fail closed.
func (s *Session) HasRole(required Role) bool {
	if !required.Recognized() {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity != nil && s.identity.Role == required
}

// CurrentIdentity returns a copy of the decoded identity, or false when
// anonymous.
func (s *Session) CurrentIdentity() (Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return Identity{}, false
	}
	return *s.identity, true
}

// Credential returns the raw bearer credential for Authorization headers, or
// false when anonymous.
func (s *Session) Credential() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return "", false
	}
	return s.credential, true
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	if s.IsAuthenticated() {
		return StateAuthenticated
	}
	return StateAnonymous
}

// Metrics returns the session's counter set. Guards increment their decision
// counters through it; a disabled set is a no-op.
func (s *Session) Metrics() *Metrics {
	if s == nil {
		return nil
	}
	return s.metrics
}

// MetricsSnapshot deep-copies every counter.
func (s *Session) MetricsSnapshot() MetricsSnapshot {
	if s == nil {
		return MetricsSnapshot{Counters: map[MetricID]uint64{}}
	}
	return s.metrics.Snapshot()
}

// EventsDropped reports how many session events were dropped by a full
// dispatcher buffer.
func (s *Session) EventsDropped() uint64 {
	if s == nil {
		return 0
	}
	return s.events.Dropped()
}

// Close drains and stops the event dispatcher. The session remains usable for
// state queries afterwards; further events are discarded.
func (s *Session) Close() {
	if s == nil {
		return
	}
	s.events.Close()
}

func (s *Session) emit(ctx context.Context, ev event.Event) {
	if s.events == nil {
		return
	}
	ev.Timestamp = time.Now()
	s.events.Emit(ctx, ev)
}

func identityFromClaims(claims *token.Claims) Identity {
	return Identity{
		Username:  claims.Username,
		Role:      ParseRole(claims.Role),
		ExpiresAt: claims.ExpiresAt,
	}
}
