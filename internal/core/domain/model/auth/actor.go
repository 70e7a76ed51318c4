package auth

import (
	"errors"

	"orders/internal/pkg/errs"
)

// ErrActorIsNotConstructed is returned when an Actor instance was not created
// through the NewActor factory method.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is the authenticated caller of an operation, carrying the identity
// and role extracted from a verified token. For users the name doubles as
// the ownership key: orders whose customer name matches the actor name
// belong to the actor.
//
// Actor is an immutable value object.
type Actor struct {
	name string
	role Role

	isConstructed bool
}

// NewActor creates an Actor from a verified identity.
// The name must be non-empty and the role must be valid.
func NewActor(name string, role Role) (Actor, error) {
	actor := Actor{
		isConstructed: true,
	}

	if err := errors.Join(
		actor.setName(name),
		actor.setRole(role),
	); err != nil {
		return Actor{}, err
	}

	return actor, nil
}

// Validate ensures the Actor instance was properly constructed through NewActor.
func (a Actor) Validate() error {
	if !a.isConstructed {
		return ErrActorIsNotConstructed
	}

	return nil
}

// Name returns the actor's identity (the username from the token subject).
func (a Actor) Name() string {
	return a.name
}

// Role returns the actor's authorization level.
func (a Actor) Role() Role {
	return a.role
}

// IsAdmin reports whether the actor holds the Admin role.
func (a Actor) IsAdmin() bool {
	return a.role == RoleAdmin
}

func (a *Actor) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("actor name")
	}
	a.name = name
	return nil
}

func (a *Actor) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}
