package token

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformed is returned when a credential is not a well-formed token:
// wrong structure, undecodable segments, or unusable claims.
var ErrMalformed = errors.New("malformed credential")

// Claims is the decoded view of a backend-issued credential.
//
// Claims instances are value snapshots; decoding the same credential twice
// yields equal results.
type Claims struct {
	Username  string
	Role      string
	ExpiresAt time.Time
}

// ExpiredAt reports whether the credential was past its expiry at the given
// instant. A credential without an exp claim never expires client-side.
func (c Claims) ExpiredAt(now time.Time) bool {
	if c.ExpiresAt.IsZero() {
		return false
	}
	return now.After(c.ExpiresAt)
}

type wireClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Decoder transforms raw credential strings into [Claims].
//
// Decoder instances are immutable and safe for concurrent use.
type Decoder struct {
	parser *jwt.Parser
}

// NewDecoder creates a Decoder. The decoder accepts any signing algorithm the
// token declares, since the signature is never checked here.
func NewDecoder() *Decoder {
	return &Decoder{parser: jwt.NewParser()}
}

// Decode parses credential without verifying its signature and returns the
// embedded claims. It fails with an error wrapping [ErrMalformed] when the
// string is not a structurally valid token or the username claim is empty.
func (d *Decoder) Decode(credential string) (*Claims, error) {
	if strings.TrimSpace(credential) == "" {
		return nil, fmt.Errorf("%w: empty string", ErrMalformed)
	}

	var wc wireClaims
	if _, _, err := d.parser.ParseUnverified(credential, &wc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if wc.Username == "" {
		// Fall back to the registered subject claim before rejecting.
		wc.Username = wc.Subject
	}
	if wc.Username == "" {
		return nil, fmt.Errorf("%w: missing username claim", ErrMalformed)
	}

	claims := &Claims{
		Username: wc.Username,
		Role:     wc.Role,
	}
	if wc.ExpiresAt != nil {
		claims.ExpiresAt = wc.ExpiresAt.Time
	}

	return claims, nil
}
