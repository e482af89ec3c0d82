// Package guard provides the ConstructorGuard defensive programming pattern,
// ensuring value objects, commands, and queries are only created through their
// designated constructor functions rather than as zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by Validate when a
// nil error is passed, so validation always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether a struct was created through its proper
// constructor or as a zero value. Embed it as a private field and set it with
// NewConstructorGuard inside the constructor.
//
// Example usage:
//
//	type StartProcessCommand struct {
//	    processID kernel.UUID
//	    guard     guard.ConstructorGuard
//	}
//
//	func NewStartProcessCommand(processID kernel.UUID) (StartProcessCommand, error) {
//	    return StartProcessCommand{
//	        processID: processID,
//	        guard:     guard.NewConstructorGuard(),
//	    }, nil
//	}
//
//	func (c StartProcessCommand) Validate() error {
//	    return c.guard.Validate(ErrStartProcessCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guarded object was created through its
// constructor, otherwise the provided validation error (or
// ErrDefaultConstructorGuard if validationError is nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
