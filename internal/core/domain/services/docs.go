// Package services provides domain services that implement business rules
// spanning multiple domain concepts.
//
// The package includes:
//   - OrderAccessPolicy: A pure domain service deciding whether an actor may
//     perform an action on an order
//
// Domain services hold no state and no infrastructure references, which
// keeps the rules they encode independently testable.
package services
