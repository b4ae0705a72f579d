package commands_test

import (
	"testing"

	"deliveryconnect/internal/core/application/usecases/commands"
	"deliveryconnect/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterCourierCommand_Success(t *testing.T) {
	cmd, err := commands.NewRegisterCourierCommand("John Doe", "+5511999990000", "Honda CG 160", "ABC-1234")

	require.NoError(t, err)
	assert.Equal(t, "John Doe", cmd.Name())
	assert.Equal(t, "+5511999990000", cmd.Phone())
	assert.Equal(t, "Honda CG 160", cmd.VehicleModel())
	assert.Equal(t, "ABC-1234", cmd.LicensePlate())
	require.NoError(t, cmd.Validate())
}

func TestNewRegisterCourierCommand_VehicleIsOptional(t *testing.T) {
	cmd, err := commands.NewRegisterCourierCommand("John Doe", "+5511999990000", "", "")

	require.NoError(t, err)
	assert.Empty(t, cmd.VehicleModel())
	assert.Empty(t, cmd.LicensePlate())
}

func TestNewRegisterCourierCommand_ValidationErrors(t *testing.T) {
	tests := []struct {
		name        string
		courierName string
		phone       string
	}{
		{"empty name", "", "+5511999990000"},
		{"empty phone", "John Doe", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewRegisterCourierCommand(tt.courierName, tt.phone, "", "")
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsRequired)
		})
	}
}

func TestRegisterCourierCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.RegisterCourierCommand{}

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRegisterCourierCommandIsNotConstructed)
}
