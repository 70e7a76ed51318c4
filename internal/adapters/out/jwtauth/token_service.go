// Package jwtauth provides HS256 token issuing and verification backed by
// golang-jwt. Credentials are checked against a fixed account table, and
// verified tokens are mapped back to domain actors.
package jwtauth

import (
	"fmt"
	"time"

	"orders/internal/core/domain/model/auth"
	"orders/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// account holds a static credential entry with its assigned role.
type account struct {
	password string
	role     auth.Role
}

// accounts is the fixed credential table.
var accounts = map[string]account{
	"admin": {password: "admin123", role: auth.RoleAdmin},
	"user":  {password: "user123", role: auth.RoleUser},
}

// TokenService issues and verifies signed bearer tokens.
// Implements ports.TokenIssuer and ports.TokenVerifier.
type TokenService struct {
	secret   []byte
	issuer   string
	audience string
	expiry   time.Duration
}

// NewTokenService creates a token service with the given signing parameters.
func NewTokenService(secret string, issuer string, audience string, expiry time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("secret")
	}
	if expiry <= 0 {
		return nil, errs.NewValueIsInvalidError("expiry")
	}

	return &TokenService{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		expiry:   expiry,
	}, nil
}

// IssueToken checks the credentials against the account table and returns
// a signed token carrying the subject and role claims.
func (s *TokenService) IssueToken(username string, password string) (string, error) {
	acc, ok := accounts[username]
	if !ok || acc.password != password {
		return "", errs.NewAuthenticationFailedError("invalid username or password")
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  username,
		"role": acc.role.String(),
		"iss":  s.issuer,
		"aud":  s.audience,
		"iat":  now.Unix(),
		"exp":  now.Add(s.expiry).Unix(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// VerifyToken parses and validates a signed token and reconstructs the actor
// from its claims. Expired, malformed, or tampered tokens fail verification.
func (s *TokenService) VerifyToken(tokenString string) (auth.Actor, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return auth.Actor{}, errs.NewAuthenticationFailedErrorWithCause("invalid token", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return auth.Actor{}, errs.NewAuthenticationFailedError("invalid token claims")
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return auth.Actor{}, errs.NewAuthenticationFailedError("token subject is missing")
	}

	roleClaim, ok := claims["role"].(string)
	if !ok {
		return auth.Actor{}, errs.NewAuthenticationFailedError("token role is missing")
	}

	role, err := auth.RoleFromString(roleClaim)
	if err != nil {
		return auth.Actor{}, errs.NewAuthenticationFailedErrorWithCause("token role is invalid", err)
	}

	actor, err := auth.NewActor(subject, role)
	if err != nil {
		return auth.Actor{}, errs.NewAuthenticationFailedErrorWithCause("token subject is invalid", err)
	}

	return actor, nil
}
