package delivery_test

import (
	"testing"
	"time"

	"deliveryconnect/internal/core/domain/model/delivery"
	"deliveryconnect/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	t.Run("derives wire form from timestamp", func(t *testing.T) {
		createdAt := time.UnixMilli(1700000000000)

		id := delivery.NewID(createdAt)

		assert.Equal(t, "DEL-1700000000000", id.String())
		require.NoError(t, id.Validate())
	})
}

func TestParseID(t *testing.T) {
	t.Run("accepts well formed identifiers", func(t *testing.T) {
		id, err := delivery.ParseID("DEL-1700000000000")

		require.NoError(t, err)
		assert.Equal(t, "DEL-1700000000000", id.String())
	})

	t.Run("round trips NewID output", func(t *testing.T) {
		original := delivery.NewID(time.Now())

		parsed, err := delivery.ParseID(original.String())

		require.NoError(t, err)
		assert.True(t, original.IsEqual(parsed))
	})

	t.Run("rejects malformed identifiers", func(t *testing.T) {
		for _, raw := range []string{
			"",
			"DEL-",
			"DEL-abc",
			"1700000000000",
			"ORD-1700000000000",
			"del-1700000000000",
		} {
			_, err := delivery.ParseID(raw)
			require.Error(t, err, raw)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestID_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var id delivery.ID

		err := id.Validate()

		require.Error(t, err)
		assert.Equal(t, delivery.ErrIDIsNotConstructed, err)
	})
}
