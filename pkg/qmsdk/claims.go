package qmsdk

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/IRONalways17/Quiz-Master-APP/pkg/qroute"
)

// TokenClaims is the subset of access-token claims the client cares about.
// Tokens are never verified locally; the server is the authority and the
// client only reads the payload segment for expiry and role hints.
type TokenClaims struct {
	Subject string
	Role    qroute.Role
	Iat     int64
	Exp     int64
}

// ParseTokenClaims decodes the claims segment of a JWT without verifying
// the signature.
func ParseTokenClaims(tokenStr string) (jwt.MapClaims, error) {
	var claims jwt.MapClaims
	parser := new(jwt.Parser)
	_, _, err := parser.ParseUnverified(tokenStr, &claims)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// ClaimsFromToken extracts the typed claims from a token string.
func ClaimsFromToken(tokenStr string) (*TokenClaims, error) {
	mc, err := ParseTokenClaims(tokenStr)
	if err != nil {
		return nil, err
	}

	tc := &TokenClaims{}

	if sub, ok := mc["sub"].(string); ok {
		tc.Subject = sub
	}
	if role, ok := mc["role"].(string); ok {
		tc.Role = qroute.Role(role)
	}
	tc.Iat = numericClaim(mc, "iat")
	tc.Exp = numericClaim(mc, "exp")

	return tc, nil
}

// Expired reports whether the token's exp claim is in the past. Tokens
// without an exp claim are treated as expired: the server always issues
// one, so its absence means a malformed token.
func (c *TokenClaims) Expired(now time.Time) bool {
	if c.Exp == 0 {
		return true
	}
	return now.Unix() >= c.Exp
}

func numericClaim(mc jwt.MapClaims, key string) int64 {
	switch v := mc[key].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	}
	return 0
}
