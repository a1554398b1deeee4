package errs_test

import (
	"errors"
	"testing"

	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("partnerId", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: partnerId, ID is: 123 (cause: database connection failed)",
			err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("invalid transition")
		err := errs.NewValueIsInvalidErrorWithCause("status", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: status (cause: invalid transition)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("currentLoad", 4, 0, 3)

		assert.Equal(t, "currentLoad", err.ParamName)
		assert.Equal(t, 4, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 3, err.Max)
		assert.Equal(t, "value is invalid: 4 is currentLoad, min value is 0, max value is 3", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("quantity", -5, 0, 100, cause)

		assert.Equal(t,
			"value is invalid: -5 is quantity, min value is 0, max value is 100 (cause: validation failed)",
			err.Error())
	})

	t.Run("newlines are sanitized", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("orderNumber")

		assert.Equal(t, "orderNumber", err.ParamName)
		assert.Equal(t, "value is required: orderNumber", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("area", cause)

		assert.Equal(t, "value is required: area (cause: missing required field)", err.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "123"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("status"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("load", 4, 0, 3), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("name"), errs.ErrValueIsRequired)
}
