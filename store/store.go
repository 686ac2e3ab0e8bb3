package store

import (
	"context"
	"errors"
)

// ErrNoCredential is returned by [Store.Load] when no credential is persisted.
var ErrNoCredential = errors.New("no credential stored")

// ErrUnavailable wraps backend failures (unreachable redis, unreadable file).
// Callers treat it like an empty slot.
var ErrUnavailable = errors.New("credential store unavailable")

// Store is the durable slot for the current bearer credential.
//
// Implementations hold at most one credential; Save overwrites unconditionally
// and Clear is a no-op when the slot is already empty.
type Store interface {
	Save(ctx context.Context, credential string) error
	Load(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}
