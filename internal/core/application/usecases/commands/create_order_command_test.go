package commands_test

import (
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	lines := []commands.ProductLine{
		{Name: "Vinyl Record", Price: 10.0, Quantity: 2},
	}

	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(userActor(t, "alice"), "alice", lines)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "alice", cmd.CustomerName())
		assert.Len(t, cmd.Products(), 1)
	})

	t.Run("should allow empty product list", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(userActor(t, "alice"), "alice", nil)

		require.NoError(t, err)
		assert.Empty(t, cmd.Products())
	})

	t.Run("should fail with empty customer name", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(userActor(t, "alice"), "", lines)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "customerName")
	})

	t.Run("should fail with non-constructed actor", func(t *testing.T) {
		var zero auth.Actor

		_, err := commands.NewCreateOrderCommand(zero, "alice", lines)

		require.Error(t, err)
	})

	t.Run("should fail validation for zero-value command", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		assert.Equal(t, commands.ErrCreateOrderCommandIsNotConstructed, cmd.Validate())
	})
}
