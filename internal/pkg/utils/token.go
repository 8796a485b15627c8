package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenClaims is the subset of a session token the client cares about.
type TokenClaims struct {
	Subject   string
	ExpiresAt *time.Time
}

// ParseTokenClaims reads the claims of a session token without verifying
// its signature. The booking service verifies tokens; the client only uses
// the claims to label logs and to report expiry in the session view.
func ParseTokenClaims(token string) (TokenClaims, error) {
	var tokenClaims TokenClaims
	if token == "" {
		return tokenClaims, nil
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return tokenClaims, err
	}

	for _, key := range []string{"id", "sub", "userId"} {
		if value, ok := claims[key].(string); ok && value != "" {
			tokenClaims.Subject = value
			break
		}
	}
	if exp, ok := claims["exp"].(float64); ok {
		expiresAt := time.Unix(int64(exp), 0)
		tokenClaims.ExpiresAt = &expiresAt
	}
	return tokenClaims, nil
}

// TokenSubject is ParseTokenClaims(token).Subject, empty on any parse error.
func TokenSubject(token string) string {
	claims, err := ParseTokenClaims(token)
	if err != nil {
		return ""
	}
	return claims.Subject
}
