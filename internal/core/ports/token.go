package ports

import (
	"orders/internal/core/domain/model/auth"
)

// TokenIssuer exchanges credentials for a signed access token.
// Unknown usernames and wrong passwords both surface as an
// AuthenticationFailedError without distinguishing which one failed.
type TokenIssuer interface {
	// IssueToken returns a signed token for the given credentials.
	IssueToken(username string, password string) (string, error)
}

// TokenVerifier validates a presented access token and extracts the caller
// identity from its claims. Expired, malformed, and badly signed tokens all
// surface as an AuthenticationFailedError.
type TokenVerifier interface {
	// VerifyToken parses and validates the token, returning the actor it
	// authenticates.
	VerifyToken(token string) (auth.Actor, error)
}
