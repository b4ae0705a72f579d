package errs_test

import (
	"errors"
	"testing"

	"deliveryconnect/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("deliveryId", "DEL-1700000000000")

		assert.Equal(t, "deliveryId", err.ParamName)
		assert.Equal(t, "DEL-1700000000000", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: DEL-1700000000000", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("courierId", "c-123", cause)

		assert.Equal(t, "courierId", err.ParamName)
		assert.Equal(t, "c-123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: courierId, ID is: c-123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("matches sentinel via errors.Is", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("deliveryId", "DEL-1")
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("value")

		assert.Equal(t, "value", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: value", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("must be greater than 0")
		err := errs.NewValueIsInvalidErrorWithCause("value", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: value (cause: must be greater than 0)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("lat", 95.0, -90.0, 90.0)

		assert.Equal(t, "lat", err.ParamName)
		assert.Equal(t, 95.0, err.Value)
		assert.Equal(t, -90.0, err.Min)
		assert.Equal(t, 90.0, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 95 is lat, min value is -90, max value is 90", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("lng", -200.0, -180.0, 180.0, cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -200 is lng, min value is -180, max value is 180 (cause: validation failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("address")

		assert.Equal(t, "address", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: address", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("address", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: address (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestInvalidStateError(t *testing.T) {
	t.Run("NewInvalidStateError", func(t *testing.T) {
		err := errs.NewInvalidStateError("collect delivery", "collected")

		assert.Equal(t, "collect delivery", err.Operation)
		assert.Equal(t, "collected", err.State)
		require.NoError(t, err.Cause)
		assert.Equal(t, "invalid state: cannot collect delivery in status collected", err.Error())
		assert.Equal(t, errs.ErrInvalidState, err.Unwrap())
	})

	t.Run("NewInvalidStateErrorWithCause", func(t *testing.T) {
		cause := errors.New("already claimed by another courier")
		err := errs.NewInvalidStateErrorWithCause("complete delivery", "pending", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"invalid state: cannot complete delivery in status pending (cause: already claimed by another courier)",
			err.Error())
		assert.Equal(t, errs.ErrInvalidState, err.Unwrap())
	})

	t.Run("matches sentinel via errors.Is", func(t *testing.T) {
		err := errs.NewInvalidStateError("start transit", "pending")
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestMalformedPayloadError(t *testing.T) {
	t.Run("NewMalformedPayloadError", func(t *testing.T) {
		err := errs.NewMalformedPayloadError("deliveryId is empty")

		assert.Equal(t, "deliveryId is empty", err.Reason)
		require.NoError(t, err.Cause)
		assert.Equal(t, "malformed payload: deliveryId is empty", err.Error())
		assert.Equal(t, errs.ErrMalformedPayload, err.Unwrap())
	})

	t.Run("NewMalformedPayloadErrorWithCause", func(t *testing.T) {
		cause := errors.New("unexpected end of JSON input")
		err := errs.NewMalformedPayloadErrorWithCause("not valid JSON", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"malformed payload: not valid JSON (cause: unexpected end of JSON input)",
			err.Error())
		assert.Equal(t, errs.ErrMalformedPayload, err.Unwrap())
	})
}
