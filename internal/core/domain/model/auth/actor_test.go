package auth_test

import (
	"testing"

	"orders/internal/core/domain/model/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActor(t *testing.T) {
	t.Run("should create valid user actor", func(t *testing.T) {
		actor, err := auth.NewActor("alice", auth.RoleUser)

		require.NoError(t, err)
		require.NoError(t, actor.Validate())
		assert.Equal(t, "alice", actor.Name())
		assert.Equal(t, auth.RoleUser, actor.Role())
		assert.False(t, actor.IsAdmin())
	})

	t.Run("should create valid admin actor", func(t *testing.T) {
		actor, err := auth.NewActor("admin", auth.RoleAdmin)

		require.NoError(t, err)
		assert.True(t, actor.IsAdmin())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := auth.NewActor("", auth.RoleUser)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "actor name")
	})

	t.Run("should fail with invalid role", func(t *testing.T) {
		_, err := auth.NewActor("alice", auth.RoleUnknown)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "role is invalid")
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		_, err := auth.NewActor("", auth.Role(99))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "actor name")
		assert.Contains(t, err.Error(), "role is invalid")
	})
}

func TestActor_Validate(t *testing.T) {
	t.Run("should fail for zero-value actor", func(t *testing.T) {
		var actor auth.Actor

		assert.Equal(t, auth.ErrActorIsNotConstructed, actor.Validate())
	})
}

func TestRoleFromString(t *testing.T) {
	t.Run("should parse valid roles", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected auth.Role
		}{
			{"User", auth.RoleUser},
			{"Admin", auth.RoleAdmin},
		}

		for _, tc := range testCases {
			role, err := auth.RoleFromString(tc.input)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, role)
		}
	})

	t.Run("should reject invalid roles", func(t *testing.T) {
		invalidInputs := []string{"", "user", "ADMIN", "Unknown", "root"}

		for _, input := range invalidInputs {
			role, err := auth.RoleFromString(input)

			require.Error(t, err, "input %q should be rejected", input)
			assert.Equal(t, auth.RoleUnknown, role)
		}
	})
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "User", auth.RoleUser.String())
	assert.Equal(t, "Admin", auth.RoleAdmin.String())
	assert.Equal(t, "Unknown", auth.RoleUnknown.String())
	assert.Equal(t, "Unknown", auth.Role(99).String())
}
