// Package auth provides the caller identity model for the API.
//
// The package includes:
//   - Role: The authorization level carried in token claims (User or Admin)
//   - Actor: The authenticated caller, combining identity and role
//
// Actors are produced by token verification in the adapters and consumed by
// the access policy in the domain services. The domain never sees raw tokens.
package auth
