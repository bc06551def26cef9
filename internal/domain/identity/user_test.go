package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("creates customer with hashed password", func(t *testing.T) {
		user, err := NewUser("Alice", "alice@example.com", "secret123", RoleCustomer)
		require.NoError(t, err)

		assert.Equal(t, "Alice", user.Name)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, RoleCustomer, user.Role)
		assert.NotEmpty(t, user.ID)
		assert.NotEqual(t, "secret123", user.PasswordHash)
		assert.True(t, user.CheckPassword("secret123"))
		assert.False(t, user.CheckPassword("wrong"))
	})

	t.Run("defaults to customer role", func(t *testing.T) {
		user, err := NewUser("Bob", "bob@example.com", "secret123", "")
		require.NoError(t, err)
		assert.Equal(t, RoleCustomer, user.Role)
		assert.False(t, user.IsAdmin())
	})

	t.Run("normalizes email to lowercase", func(t *testing.T) {
		user, err := NewUser("Carol", "  Carol@Example.COM ", "secret123", RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, "carol@example.com", user.Email)
		assert.True(t, user.IsAdmin())
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewUser("   ", "a@example.com", "secret123", RoleCustomer)
		require.Error(t, err)
	})

	t.Run("fails with malformed email", func(t *testing.T) {
		_, err := NewUser("Dave", "not-an-email", "secret123", RoleCustomer)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "email")
	})

	t.Run("fails with short password", func(t *testing.T) {
		_, err := NewUser("Eve", "eve@example.com", "123", RoleCustomer)
		require.Error(t, err)
	})

	t.Run("fails with unknown role", func(t *testing.T) {
		_, err := NewUser("Frank", "frank@example.com", "secret123", Role("superuser"))
		require.Error(t, err)
	})
}

func TestChangePassword(t *testing.T) {
	user, err := NewUser("Alice", "alice@example.com", "secret123", RoleCustomer)
	require.NoError(t, err)

	require.NoError(t, user.ChangePassword("newsecret"))
	assert.True(t, user.CheckPassword("newsecret"))
	assert.False(t, user.CheckPassword("secret123"))

	require.Error(t, user.ChangePassword("short"))
}
