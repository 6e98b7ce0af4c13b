package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object
// was not constructed and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks value objects and entities as having been created
// through their designated constructor. A zero-value struct carries a
// zero-value guard, so Validate can detect objects that bypassed
// construction and would otherwise silently violate their invariants.
//
// Embed a ConstructorGuard as a private field and set it with
// NewConstructorGuard inside the constructor:
//
//	type Tariff struct {
//	    unitPrice Money
//	    guard     guard.ConstructorGuard
//	}
//
//	func NewTariff(unitPrice Money) (Tariff, error) {
//	    // validation...
//	    return Tariff{unitPrice: unitPrice, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (t Tariff) Validate() error {
//	    return t.guard.Validate(ErrTariffIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that marks its holder as properly
// constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the holder was built through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
