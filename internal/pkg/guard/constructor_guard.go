// Package guard provides a defensive-construction helper shared by commands,
// queries, and domain objects. Embedding a ConstructorGuard in a struct makes
// zero-value instances detectable, so operations can refuse objects that
// bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by Validate when a
// nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and entities are only created through
// their designated constructor functions. The guard works by maintaining an
// internal flag that is only set to true when the object is created through
// the proper constructor function. Any zero-value struct will fail validation.
//
// Example usage:
//
//	type CreateOrderCommand struct {
//	    customerName string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewCreateOrderCommand(customerName string) (CreateOrderCommand, error) {
//	    if customerName == "" {
//	        return CreateOrderCommand{}, errors.New("customer name is required")
//	    }
//	    return CreateOrderCommand{
//	        customerName: customerName,
//	        guard:        guard.NewConstructorGuard(),
//	    }, nil
//	}
//
//	func (c CreateOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it in the constructor of commands, queries, and domain
// objects so they can be distinguished from zero-value instances.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guarded object was created through its
// constructor. For a zero-value guard it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
