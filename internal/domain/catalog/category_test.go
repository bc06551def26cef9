package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	t.Run("creates category with valid inputs", func(t *testing.T) {
		category, err := NewCategory("Electronics", "gadgets and devices")
		require.NoError(t, err)

		assert.Equal(t, "Electronics", category.Name)
		assert.Equal(t, "gadgets and devices", category.Description)
		assert.NotEmpty(t, category.ID)
	})

	t.Run("trims whitespace", func(t *testing.T) {
		category, err := NewCategory("  Electronics  ", "  desc  ")
		require.NoError(t, err)
		assert.Equal(t, "Electronics", category.Name)
		assert.Equal(t, "desc", category.Description)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewCategory("   ", "desc")
		require.Error(t, err)
	})

	t.Run("fails with name too long", func(t *testing.T) {
		_, err := NewCategory(strings.Repeat("x", 101), "")
		require.Error(t, err)
	})
}

func TestCategoryUpdate(t *testing.T) {
	category, err := NewCategory("Electronics", "old")
	require.NoError(t, err)

	require.NoError(t, category.Update("Appliances", "new"))
	assert.Equal(t, "Appliances", category.Name)
	assert.Equal(t, "new", category.Description)

	require.Error(t, category.Update("", "new"))
	assert.Equal(t, "Appliances", category.Name)
}
