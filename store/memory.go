package store

import (
	"context"
	"sync"
)

// Memory is an in-process [Store]. Credentials do not survive a restart, which
// makes it the right backend for tests and for "do not remember me" sessions.
type Memory struct {
	mu         sync.Mutex
	credential string
	present    bool
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Save stores credential, overwriting any previous value.
func (m *Memory) Save(_ context.Context, credential string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.credential = credential
	m.present = true
	return nil
}

// Load returns the stored credential or [ErrNoCredential].
func (m *Memory) Load(_ context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.present {
		return "", ErrNoCredential
	}
	return m.credential, nil
}

// Clear empties the slot. Clearing an empty slot is a no-op.
func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.credential = ""
	m.present = false
	return nil
}
