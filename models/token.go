package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// PurposeAuth is the only token purpose recognized by the service.
// Tokens carrying any other purpose are rejected by the authentication guard.
const PurposeAuth = "auth"

// TokenClaims is the JWT claim set embedded in every issued token.
//
// It extends the standard claim set (RFC 7519) with a "purpose" tag that
// distinguishes the token's intended use. The user identifier travels in the
// "sub" claim.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Purpose is the intended use of the token ("auth" is the only value
	// the service issues or accepts).
	Purpose string `json:"purpose"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in the x-auth header or
// stored in the user's token list.
//
// UserID and Purpose are parsed copies of the corresponding claims, populated
// during token construction or after successful validation, so callers do not
// need to re-parse the claim set.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID string `json:"-"`

	// Purpose is the purpose tag extracted from the "purpose" claim.
	Purpose string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
