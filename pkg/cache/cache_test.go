package cache

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache(t *testing.T) {
	t.Run("set and get", func(t *testing.T) {
		c := New[string, int]()
		c.Set("one", 1)
		c.Set("two", 2)

		v, ok := c.Get("one")
		require.True(t, ok)
		assert.Equal(t, 1, v)

		v, ok = c.Get("two")
		require.True(t, ok)
		assert.Equal(t, 2, v)
	})

	t.Run("get missing", func(t *testing.T) {
		c := New[string, int]()
		v, ok := c.Get("nope")
		assert.False(t, ok)
		assert.Zero(t, v)
	})

	t.Run("overwrite", func(t *testing.T) {
		c := New[string, int]()
		c.Set("key", 1)
		c.Set("key", 2)

		v, ok := c.Get("key")
		require.True(t, ok)
		assert.Equal(t, 2, v)
		assert.Equal(t, 1, c.Size())
	})

	t.Run("delete", func(t *testing.T) {
		c := New[string, int]()
		c.Set("key", 1)
		c.Delete("key")

		_, ok := c.Get("key")
		assert.False(t, ok)
		assert.Equal(t, 0, c.Size())
	})

	t.Run("keys and values", func(t *testing.T) {
		c := New[string, int]()
		c.Set("a", 1)
		c.Set("b", 2)
		c.Set("c", 3)

		keys := c.Keys()
		sort.Strings(keys)
		assert.Equal(t, []string{"a", "b", "c"}, keys)

		values := c.Values()
		sort.Ints(values)
		assert.Equal(t, []int{1, 2, 3}, values)
	})
}
