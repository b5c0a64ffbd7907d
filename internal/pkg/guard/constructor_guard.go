// Package guard provides a lightweight mechanism for enforcing constructor usage
// on value objects, commands, and queries.
//
// A ConstructorGuard embedded in a struct distinguishes instances created through
// the type's constructor from zero-value instances. Validate returns the supplied
// error (or a default one) when the guard was never armed by a constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object
// was not created through its constructor and no custom error was provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks whether the enclosing object went through its constructor.
// The zero value is intentionally invalid.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard returns an armed guard. Constructors store it in the
// object they build; zero-value objects carry an unarmed guard.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil when the guard was armed by a constructor.
// For zero-value guards it returns notConstructedErr, falling back to
// ErrDefaultConstructorGuard when notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.constructed {
		return nil
	}

	if notConstructedErr == nil {
		return ErrDefaultConstructorGuard
	}

	return notConstructedErr
}
