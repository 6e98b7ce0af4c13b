// Package errs provides the standardized error types used across the
// checkout application.
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g. ErrValueIsInvalid)
//   - A struct type carrying the error details
//   - Constructor functions with and without an underlying cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// Two families cover everything the order-configuration domain needs:
// ValueIsRequiredError for missing values (unconstructed value objects,
// absent currency units) and ValueIsInvalidError for values that are present
// but violate a rule (negative quantity, mismatched currency arithmetic).
package errs
