package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the claim set carried inside a session token.
// Email is the authenticated identity; authentication itself happens at an
// external identity provider, so the claims are accepted as submitted and
// only converted into the server's own signed token.
type SessionClaims struct {
	// Email is the authenticated user's email address and the identity
	// every ownership check compares against.
	Email string `json:"email"`

	// Name is the optional display name of the user.
	Name string `json:"name,omitempty"`

	jwt.RegisteredClaims
}

// Token wraps a session JWT with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be carried in the session cookie.
//
// Email is a cached copy of the email claim extracted during parsing, so
// downstream code does not need to touch the raw claims again.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// Email is the owner identity extracted from the claims.
	Email string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
