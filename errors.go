package authkit

import (
	"errors"

	"github.com/masakahms/authkit/token"
)

var (
	// ErrCredentialEmpty is returned by [Session.Login] when the supplied
	// credential is empty; validation rejects it before decode or persistence.
	ErrCredentialEmpty = errors.New("credential is empty")

	// ErrCredentialMalformed matches decode failures surfaced by
	// [Session.Login]. It is the token package's sentinel re-exported so
	// callers can errors.Is against the root package alone.
	ErrCredentialMalformed = token.ErrMalformed

	// ErrBuilderUsed is returned when Build is called twice on one Builder.
	ErrBuilderUsed = errors.New("builder already used")

	// ErrStoreRequired is returned by Build when no credential store was set.
	ErrStoreRequired = errors.New("credential store required")
)
