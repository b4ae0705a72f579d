package courier_test

import (
	"testing"

	"deliveryconnect/internal/core/domain/model/courier"
	"deliveryconnect/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCourier(t *testing.T) {
	t.Run("creates offline courier without position", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := courier.NewCourier(id, "João Silva", "(11) 99999-1111", "Honda CG 160", "ABC-1234")

		require.NoError(t, err)
		assert.True(t, id.IsEqual(c.ID()))
		assert.Equal(t, "João Silva", c.Name())
		assert.Equal(t, "(11) 99999-1111", c.Phone())
		assert.Equal(t, "Honda CG 160", c.VehicleModel())
		assert.Equal(t, "ABC-1234", c.LicensePlate())
		assert.False(t, c.IsOnline())
		assert.Nil(t, c.Position())
		assert.Zero(t, c.TotalDeliveries())
	})

	t.Run("rejects missing name", func(t *testing.T) {
		_, err := courier.NewCourier(kernel.NewUUID(), "", "(11) 99999-1111", "", "")
		require.Error(t, err)
	})

	t.Run("rejects missing phone", func(t *testing.T) {
		_, err := courier.NewCourier(kernel.NewUUID(), "João Silva", "", "", "")
		require.Error(t, err)
	})

	t.Run("rejects unconstructed id", func(t *testing.T) {
		_, err := courier.NewCourier(kernel.UUID{}, "João Silva", "(11) 99999-1111", "", "")
		require.Error(t, err)
	})
}

func TestCourier_SetOnline(t *testing.T) {
	c, err := courier.NewCourier(kernel.NewUUID(), "João Silva", "(11) 99999-1111", "", "")
	require.NoError(t, err)

	c.SetOnline(true)
	assert.True(t, c.IsOnline())

	c.SetOnline(false)
	assert.False(t, c.IsOnline())
}

func TestCourier_UpdatePosition(t *testing.T) {
	t.Run("last write wins", func(t *testing.T) {
		c, err := courier.NewCourier(kernel.NewUUID(), "João Silva", "(11) 99999-1111", "", "")
		require.NoError(t, err)

		first, _ := kernel.NewGeoPoint(-23.5505, -46.6333)
		second, _ := kernel.NewGeoPoint(-23.5600, -46.6400)

		require.NoError(t, c.UpdatePosition(first))
		require.NoError(t, c.UpdatePosition(second))

		require.NotNil(t, c.Position())
		equal, err := c.Position().IsEqual(second)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("rejects unconstructed point", func(t *testing.T) {
		c, err := courier.NewCourier(kernel.NewUUID(), "João Silva", "(11) 99999-1111", "", "")
		require.NoError(t, err)

		var zero kernel.GeoPoint
		require.Error(t, c.UpdatePosition(zero))
		assert.Nil(t, c.Position())
	})

	t.Run("going offline keeps last position", func(t *testing.T) {
		c, err := courier.NewCourier(kernel.NewUUID(), "João Silva", "(11) 99999-1111", "", "")
		require.NoError(t, err)

		p, _ := kernel.NewGeoPoint(-23.5505, -46.6333)
		c.SetOnline(true)
		require.NoError(t, c.UpdatePosition(p))
		c.SetOnline(false)

		assert.NotNil(t, c.Position())
	})
}

func TestCourier_RecordDelivery(t *testing.T) {
	c, err := courier.NewCourier(kernel.NewUUID(), "João Silva", "(11) 99999-1111", "", "")
	require.NoError(t, err)

	c.RecordDelivery()
	c.RecordDelivery()

	assert.Equal(t, 2, c.TotalDeliveries())
}

func TestRestoreCourier(t *testing.T) {
	t.Run("restores persisted state", func(t *testing.T) {
		id := kernel.NewUUID()
		p, _ := kernel.NewGeoPoint(-23.5505, -46.6333)

		c, err := courier.RestoreCourier(id, "Maria Santos", "(11) 98888-2222", "Yamaha Factor", "XYZ-9876", true, &p, 25)

		require.NoError(t, err)
		assert.True(t, c.IsOnline())
		assert.Equal(t, 25, c.TotalDeliveries())
		require.NotNil(t, c.Position())
	})

	t.Run("rejects negative delivery counter", func(t *testing.T) {
		_, err := courier.RestoreCourier(
			kernel.NewUUID(), "Maria Santos", "(11) 98888-2222", "", "", false, nil, -1)
		require.Error(t, err)
	})
}

func TestCourier_Validate(t *testing.T) {
	var nilCourier *courier.Courier
	require.Error(t, nilCourier.Validate())

	var zero courier.Courier
	require.Error(t, zero.Validate())

	c, err := courier.NewCourier(kernel.NewUUID(), "João Silva", "(11) 99999-1111", "", "")
	require.NoError(t, err)
	require.NoError(t, c.Validate())
}
