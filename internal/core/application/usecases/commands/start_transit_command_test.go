package commands_test

import (
	"testing"
	"time"

	"deliveryconnect/internal/core/application/usecases/commands"
	"deliveryconnect/internal/core/domain/model/delivery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStartTransitCommand_Success(t *testing.T) {
	deliveryID := delivery.NewID(time.Now())

	cmd, err := commands.NewStartTransitCommand(deliveryID)

	require.NoError(t, err)
	assert.True(t, cmd.DeliveryID().IsEqual(deliveryID))
	require.NoError(t, cmd.Validate())
}

func TestNewStartTransitCommand_EmptyDeliveryID(t *testing.T) {
	_, err := commands.NewStartTransitCommand(delivery.ID{})

	require.Error(t, err)
}

func TestStartTransitCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.StartTransitCommand{}

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrStartTransitCommandIsNotConstructed)
}
