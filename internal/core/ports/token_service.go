package ports

import "time"

// TokenClaims is the verified payload of a bearer token. Fields are trusted
// only after signature verification.
type TokenClaims struct {
	Username  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and verifies self-contained signed tokens. Tokens are
// never stored server-side; a minted token stays valid until expiry.
type TokenService interface {
	Issue(username string) (string, error)
	Verify(token string) (*TokenClaims, error)
}
