package tokencount

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCache(t *testing.T) {
	t.Run("miss then hit", func(t *testing.T) {
		c := NewCache(4)
		_, ok := c.Get("x")
		assert.False(t, ok)

		c.Put("x", 7)
		v, ok := c.Get("x")
		assert.True(t, ok)
		assert.Equal(t, 7, v)
	})

	t.Run("bulk flush on overflow", func(t *testing.T) {
		c := NewCache(2)
		c.Put("a", 1)
		c.Put("b", 2)
		c.Put("c", 3)
		assert.Equal(t, 1, c.Len())
		_, ok := c.Get("a")
		assert.False(t, ok)
	})

	t.Run("non-positive capacity uses the default", func(t *testing.T) {
		c := NewCache(0)
		assert.Equal(t, DefaultCacheCapacity, c.capacity)
	})
}
