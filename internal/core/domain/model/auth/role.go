package auth

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// Role represents the authorization level of an API caller.
//
// Role is a value object that validates role values and provides the string
// representation used in token claims.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleUser is a regular customer. Users can create orders and work with
	// their own orders only.
	RoleUser

	// RoleAdmin is an operator with full access to every order.
	RoleAdmin
)

// getRoleStrings returns a map of Role values to their string representations.
// All roles are included for string conversion.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "Unknown",
		RoleUser:    "User",
		RoleAdmin:   "Admin",
	}
}

// getValidRoleStrings returns a map of only valid Role values.
// Only valid roles are included to support validation and parsing.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleUser:  "User",
		RoleAdmin: "Admin",
	}
}

// RoleFromString parses a role from its claim representation.
// Accepted values are "User" and "Admin"; anything else is rejected.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role is invalid",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
// Valid roles are RoleUser and RoleAdmin.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the claim name of the role.
// Returns "User" or "Admin" for valid roles, "Unknown" otherwise.
// Implements fmt.Stringer and is safe to call on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}
