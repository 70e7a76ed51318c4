package order

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──┬──> Confirmed ──┐
//	          │        │       │
//	          └──> Cancelled   │
//	          │        │       │
//	          └────────┴───────┴──> Deleted
//
// Any valid status may be set explicitly through an update, and any order
// may be soft-deleted. Deleted orders keep their row but disappear from
// listings.
//
// Status is a value object that validates state values and provides the
// wire/persistence string representation.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	Pending

	// Confirmed indicates the order has been accepted for fulfilment.
	Confirmed

	// Cancelled indicates the order was called off.
	Cancelled

	// Deleted marks a soft-deleted order. The record stays addressable by
	// its identifier but is excluded from listings.
	Deleted
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Confirmed: "confirmed",
		Cancelled: "cancelled",
		Deleted:   "deleted",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Confirmed: "confirmed",
		Cancelled: "cancelled",
		Deleted:   "deleted",
	}
}

// StatusFromString parses a status from its string representation.
// Accepted values are "pending", "confirmed", "cancelled" and "deleted".
// Returns an error for anything else, including "unknown" and the empty
// string. Used when accepting a status from the API or restoring one from
// persistence.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Confirmed, Cancelled, Deleted.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase name of the status.
//
// Returns "pending", "confirmed", "cancelled" or "deleted" for valid
// statuses, "unknown" otherwise. Implements fmt.Stringer and is safe to call
// on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsDeleted reports whether the status marks a soft-deleted order.
func (s Status) IsDeleted() bool {
	return s == Deleted
}
