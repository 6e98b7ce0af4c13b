// Package kernel contains the shared value objects of the checkout domain:
// identifiers, money, and the clock abstraction.
//
// Everything in this package is immutable after construction and safe for
// concurrent use. Value objects are created through constructor functions
// that validate their invariants; zero values are invalid and are rejected
// by the Validate methods.
package kernel
