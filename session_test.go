package authkit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/masakahms/authkit/store"
)

func mintCredential(t *testing.T, username, role string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"username": username,
		"role":     role,
	}
	if !exp.IsZero() {
		claims["exp"] = exp.Unix()
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte("session-test-key"))
	if err != nil {
		t.Fatalf("sign credential: %v", err)
	}
	return signed
}

func newTestSession(t *testing.T, st store.Store) *Session {
	t.Helper()
	sess, err := New().
		WithStore(st).
		WithMetricsEnabled(true).
		Build()
	if err != nil {
		t.Fatalf("build session: %v", err)
	}
	return sess
}

// failingStore simulates an unavailable persistence layer.
type failingStore struct{}

func (failingStore) Save(context.Context, string) error { return store.ErrUnavailable }
func (failingStore) Load(context.Context) (string, error) {
	return "", store.ErrUnavailable
}
func (failingStore) Clear(context.Context) error { return store.ErrUnavailable }

func TestFreshStartIsAnonymous(t *testing.T) {
	sess := newTestSession(t, store.NewMemory())
	ctx := context.Background()

	if err := sess.Initialize(ctx); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if sess.IsAuthenticated() {
		t.Fatal("fresh session must be anonymous")
	}
	if sess.State() != StateAnonymous {
		t.Fatalf("state = %v, want anonymous", sess.State())
	}
	if _, ok := sess.CurrentIdentity(); ok {
		t.Fatal("anonymous session must not expose an identity")
	}
}

func TestLoginValidCredential(t *testing.T) {
	sess := newTestSession(t, store.NewMemory())
	ctx := context.Background()

	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	identity, err := sess.Login(ctx, mintCredential(t, "amina", "admin", exp))
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if identity.Username != "amina" || identity.Role != RoleAdmin {
		t.Fatalf("identity = %+v", identity)
	}
	if !identity.ExpiresAt.Equal(exp) {
		t.Fatalf("expiresAt = %v, want %v", identity.ExpiresAt, exp)
	}
	if !sess.IsAuthenticated() {
		t.Fatal("session must be authenticated after login")
	}
	if !sess.HasRole(RoleAdmin) {
		t.Fatal("HasRole(admin) must be true")
	}
	if sess.HasRole(RoleDoctor) {
		t.Fatal("HasRole(doctor) must be false, no hierarchy")
	}
	if cred, ok := sess.Credential(); !ok || cred == "" {
		t.Fatal("credential must be exposed while authenticated")
	}
}

func TestLoginEmptyCredential(t *testing.T) {
	st := store.NewMemory()
	sess := newTestSession(t, st)
	ctx := context.Background()

	_, err := sess.Login(ctx, "")
	if !errors.Is(err, ErrCredentialEmpty) {
		t.Fatalf("login(\"\"): %v, want ErrCredentialEmpty", err)
	}
	if sess.IsAuthenticated() {
		t.Fatal("state must be unchanged after rejected login")
	}
	if _, loadErr := st.Load(ctx); !errors.Is(loadErr, store.ErrNoCredential) {
		t.Fatalf("store must stay empty, load: %v", loadErr)
	}
}

func TestLoginMalformedLeavesStateAndStoreUntouched(t *testing.T) {
	st := store.NewMemory()
	sess := newTestSession(t, st)
	ctx := context.Background()

	// Establish a valid session first.
	valid := mintCredential(t, "amina", "admin", time.Time{})
	if _, err := sess.Login(ctx, valid); err != nil {
		t.Fatalf("login: %v", err)
	}

	_, err := sess.Login(ctx, "garbage-not-a-token")
	if !errors.Is(err, ErrCredentialMalformed) {
		t.Fatalf("login(garbage): %v, want ErrCredentialMalformed", err)
	}

	// Prior session survives, and the store still holds the prior credential.
	if !sess.HasRole(RoleAdmin) {
		t.Fatal("prior session must survive a failed login")
	}
	stored, loadErr := st.Load(ctx)
	if loadErr != nil {
		t.Fatalf("load: %v", loadErr)
	}
	if stored != valid {
		t.Fatalf("store = %q, want the pre-call credential", stored)
	}
}

func TestLoginRoundTripSurvivesRestart(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()

	first := newTestSession(t, st)
	want, err := first.Login(ctx, mintCredential(t, "joseph", "receptionist", time.Time{}))
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	// Simulated reload: a fresh session over the same store.
	second := newTestSession(t, st)
	if err := second.Initialize(ctx); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	got, ok := second.CurrentIdentity()
	if !ok {
		t.Fatal("restored session must be authenticated")
	}
	if got != want {
		t.Fatalf("restored identity = %+v, want %+v", got, want)
	}
}

func TestInitializePurgesCorruptCredential(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()
	if err := st.Save(ctx, "truncated.credential"); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	sess := newTestSession(t, st)
	if err := sess.Initialize(ctx); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	if sess.IsAuthenticated() {
		t.Fatal("corrupt credential must resolve to anonymous")
	}
	if _, err := st.Load(ctx); !errors.Is(err, store.ErrNoCredential) {
		t.Fatalf("corrupt credential must be purged, load: %v", err)
	}
	if got := sess.Metrics().Value(MetricSessionPurged); got != 1 {
		t.Fatalf("purge counter = %d, want 1", got)
	}
}

func TestStorageUnavailableDegradesToAnonymous(t *testing.T) {
	sess := newTestSession(t, failingStore{})
	ctx := context.Background()

	if err := sess.Initialize(ctx); err != nil {
		t.Fatalf("initialize with unavailable store: %v", err)
	}
	if sess.IsAuthenticated() {
		t.Fatal("unavailable store must resolve to anonymous")
	}

	// Login still works in-memory even when persistence is down.
	if _, err := sess.Login(ctx, mintCredential(t, "amina", "admin", time.Time{})); err != nil {
		t.Fatalf("login with unavailable store: %v", err)
	}
	if !sess.IsAuthenticated() {
		t.Fatal("session must authenticate in-memory despite store failure")
	}
}

func TestLogoutIdempotent(t *testing.T) {
	st := store.NewMemory()
	sess := newTestSession(t, st)
	ctx := context.Background()

	if _, err := sess.Login(ctx, mintCredential(t, "amina", "admin", time.Time{})); err != nil {
		t.Fatalf("login: %v", err)
	}

	sess.Logout(ctx)
	sess.Logout(ctx)

	if sess.IsAuthenticated() {
		t.Fatal("session must be anonymous after logout")
	}
	if _, err := st.Load(ctx); !errors.Is(err, store.ErrNoCredential) {
		t.Fatalf("store must be empty after logout, load: %v", err)
	}
	if got := sess.Metrics().Value(MetricLogout); got != 1 {
		t.Fatalf("logout counter = %d after double logout, want 1", got)
	}
}

func TestLogoutObserverRunsAfterStateChange(t *testing.T) {
	var observedAnonymous bool
	var sess *Session

	sess, err := New().
		WithStore(store.NewMemory()).
		WithLogoutObserver(func() {
			observedAnonymous = !sess.IsAuthenticated()
		}).
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	ctx := context.Background()
	if _, err := sess.Login(ctx, mintCredential(t, "amina", "admin", time.Time{})); err != nil {
		t.Fatalf("login: %v", err)
	}

	sess.Logout(ctx)
	if !observedAnonymous {
		t.Fatal("observer must see the anonymous session")
	}
}

func TestUnrecognizedRoleFailsClosed(t *testing.T) {
	sess := newTestSession(t, store.NewMemory())
	ctx := context.Background()

	identity, err := sess.Login(ctx, mintCredential(t, "eve", "superuser", time.Time{}))
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if identity.Role != RoleUnknown {
		t.Fatalf("role = %v, want RoleUnknown", identity.Role)
	}

	for _, r := range []Role{RoleAdmin, RoleDoctor, RoleReceptionist, RoleUnknown} {
		if sess.HasRole(r) {
			t.Fatalf("HasRole(%v) must fail closed for an unrecognized role", r)
		}
	}
}

func TestSessionEventsEmitted(t *testing.T) {
	sink := NewChannelSink(16)
	sess, err := New().
		WithStore(store.NewMemory()).
		WithEventSink(sink).
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer sess.Close()

	ctx := context.Background()
	if _, err := sess.Login(ctx, mintCredential(t, "amina", "admin", time.Time{})); err != nil {
		t.Fatalf("login: %v", err)
	}
	sess.Logout(ctx)

	want := []string{EventLogin, EventLogout}
	for _, wantType := range want {
		select {
		case ev := <-sink.Events():
			if ev.EventType != wantType {
				t.Fatalf("event = %q, want %q", ev.EventType, wantType)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for %q event", wantType)
		}
	}
}

func TestBuilderValidation(t *testing.T) {
	if _, err := New().Build(); !errors.Is(err, ErrStoreRequired) {
		t.Fatalf("build without store: %v, want ErrStoreRequired", err)
	}

	b := New().WithStore(store.NewMemory())
	if _, err := b.Build(); err != nil {
		t.Fatalf("first build: %v", err)
	}
	if _, err := b.Build(); !errors.Is(err, ErrBuilderUsed) {
		t.Fatalf("second build: %v, want ErrBuilderUsed", err)
	}
}

func TestParseRole(t *testing.T) {
	cases := []struct {
		in   string
		want Role
	}{
		{"admin", RoleAdmin},
		{"doctor", RoleDoctor},
		{"receptionist", RoleReceptionist},
		{"", RoleUnknown},
		{"Admin", RoleUnknown},
		{"nurse", RoleUnknown},
	}
	for _, tc := range cases {
		if got := ParseRole(tc.in); got != tc.want {
			t.Fatalf("ParseRole(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	for _, r := range []Role{RoleAdmin, RoleDoctor, RoleReceptionist} {
		if ParseRole(r.String()) != r {
			t.Fatalf("round trip failed for %v", r)
		}
		if !r.Recognized() {
			t.Fatalf("%v must be recognized", r)
		}
	}
	if RoleUnknown.Recognized() {
		t.Fatal("RoleUnknown must not be recognized")
	}
}

func TestIdentityExpired(t *testing.T) {
	now := time.Now()
	id := Identity{Username: "amina", Role: RoleAdmin, ExpiresAt: now.Add(-time.Minute)}
	if !id.Expired(now) {
		t.Fatal("identity past exp must report expired")
	}
	id.ExpiresAt = time.Time{}
	if id.Expired(now) {
		t.Fatal("identity without exp must not expire client-side")
	}
}
