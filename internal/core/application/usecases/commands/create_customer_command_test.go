package commands_test

import (
	"testing"

	"coffeeshop/internal/core/application/usecases/commands"
	"coffeeshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type customerName string

func TestNewCreateCustomerCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCreateCustomerCommand("Alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", cmd.Name())
	assert.NoError(t, cmd.Validate())
}

func TestNewCreateCustomerCommand_NamedStringType(t *testing.T) {
	cmd, err := commands.NewCreateCustomerCommand(customerName("Bob"))
	require.NoError(t, err)
	assert.Equal(t, "Bob", cmd.Name())
}

func TestNewCreateCustomerCommand_WrongType(t *testing.T) {
	for _, name := range []any{nil, 42, 3.14, true, []byte("Alice")} {
		_, err := commands.NewCreateCustomerCommand(name)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueHasWrongType)
		assert.True(t, errs.IsTypeKind(err))
	}
}

func TestNewCreateCustomerCommand_LengthIsNotChecked(t *testing.T) {
	// Length bounds belong to the domain.
	cmd, err := commands.NewCreateCustomerCommand("")
	require.NoError(t, err)
	assert.Empty(t, cmd.Name())
}

func TestCreateCustomerCommand_ZeroValueIsNotConstructed(t *testing.T) {
	var cmd commands.CreateCustomerCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateCustomerCommandIsNotConstructed)
}
