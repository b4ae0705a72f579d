package commands_test

import (
	"testing"
	"time"

	"deliveryconnect/internal/core/application/usecases/commands"
	"deliveryconnect/internal/core/domain/model/delivery"
	"deliveryconnect/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCollectDeliveryCommand_Success(t *testing.T) {
	deliveryID := delivery.NewID(time.Now())
	courierID := kernel.NewUUID()

	cmd, err := commands.NewCollectDeliveryCommand(deliveryID, courierID, "John Doe", "+5511999990000")

	require.NoError(t, err)
	assert.True(t, cmd.DeliveryID().IsEqual(deliveryID))
	assert.True(t, cmd.CourierID().IsEqual(courierID))
	assert.Equal(t, "John Doe", cmd.CourierName())
	assert.Equal(t, "+5511999990000", cmd.CourierPhone())
	require.NoError(t, cmd.Validate())
}

func TestNewCollectDeliveryCommand_ValidationErrors(t *testing.T) {
	deliveryID := delivery.NewID(time.Now())
	courierID := kernel.NewUUID()

	tests := []struct {
		name        string
		deliveryID  delivery.ID
		courierID   kernel.UUID
		courierName string
	}{
		{"empty delivery id", delivery.ID{}, courierID, "John Doe"},
		{"empty courier id", deliveryID, kernel.UUID{}, "John Doe"},
		{"empty courier name", deliveryID, courierID, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewCollectDeliveryCommand(tt.deliveryID, tt.courierID, tt.courierName, "+5511999990000")
			require.Error(t, err)
		})
	}
}

func TestCollectDeliveryCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CollectDeliveryCommand{}

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCollectDeliveryCommandIsNotConstructed)
}
