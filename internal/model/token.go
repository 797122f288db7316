package model

import "time"

// ScopeAuthenticated is granted to every token issued by login.
const ScopeAuthenticated = "user:authenticated"

// TokenManager issues and validates signed access tokens.
type TokenManager interface {
	Issue(subject string, scopes []string, now time.Time) (string, error)
	Validate(token string, now time.Time) (TokenClaims, error)
}

// TokenClaims is the verified content of an access token.
type TokenClaims struct {
	Subject   string
	Scopes    []string
	ExpiresAt time.Time
}

// Hasher hashes and verifies passwords.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}
