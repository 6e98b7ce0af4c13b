package errs_test

import (
	"errors"
	"testing"

	"checkout/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("flavor")

		assert.Equal(t, "flavor", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: flavor", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("currency unit is not set")
		err := errs.NewValueIsRequiredErrorWithCause("currency", cause)

		assert.Equal(t, "currency", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: currency (cause: currency unit is not set)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("quantity")

		assert.Equal(t, "quantity", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: quantity", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("-3 is less than 0")
		err := errs.NewValueIsInvalidErrorWithCause("quantity", cause)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: quantity (cause: -3 is less than 0)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("newlines are flattened", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("multi\nline")
		assert.Contains(t, err.Error(), "multi line")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestErrorsIsClassification(t *testing.T) {
	t.Run("required error matches sentinel", func(t *testing.T) {
		var err error = errs.NewValueIsRequiredError("pickup date")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.NotErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("invalid error matches sentinel", func(t *testing.T) {
		var err error = errs.NewValueIsInvalidErrorWithCause("quantity", errors.New("boom"))
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.NotErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
