// Package guard provides a defensive construction pattern for domain objects.
// Embedding a ConstructorGuard in a value object makes zero-value instances
// detectable, so code can reject objects that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error
// is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks whether its enclosing object went through a
// designated constructor. The zero value fails validation.
//
// Example:
//
//	type Earning struct {
//	    amount float64
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewEarning(amount float64) (Earning, error) {
//	    if amount < 0 {
//	        return Earning{}, errors.New("amount cannot be negative")
//	    }
//	    return Earning{amount: amount, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (e Earning) Validate() error {
//	    return e.guard.Validate(errEarningNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that passes validation.
// Call it only from inside a constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a properly constructed guard. For a zero-value
// guard it returns notConstructedErr, or ErrDefaultConstructorGuard when
// notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.isConstructed {
		return nil
	}

	if notConstructedErr == nil {
		return ErrDefaultConstructorGuard
	}

	return notConstructedErr
}
