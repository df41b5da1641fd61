package compress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractEntities(t *testing.T) {
	t.Run("finds currency percentage and camelCase", func(t *testing.T) {
		entities := extractEntities("The price is $1,204.56, up 12.5% thanks to getUserName.")
		assert.Contains(t, entities, "$1,204.56")
		assert.Contains(t, entities, "12.5%")
		assert.Contains(t, entities, "getUserName")
	})

	t.Run("finds ALL_CAPS and snake_case tokens", func(t *testing.T) {
		entities := extractEntities("The HTTP_SERVER reads max_retry_count on boot.")
		assert.Contains(t, entities, "HTTP_SERVER")
		assert.Contains(t, entities, "max_retry_count")
	})
}

func TestCaseDetection(t *testing.T) {
	t.Run("camelCase", func(t *testing.T) {
		assert.True(t, isCamelCase("getUserName"))
		assert.False(t, isCamelCase("username"))
	})

	t.Run("ALL_CAPS requires at least two uppercase letters", func(t *testing.T) {
		assert.True(t, isAllCaps("NASA"))
		assert.True(t, isAllCaps("HTTP_SERVER"))
		assert.False(t, isAllCaps("A"))
	})

	t.Run("snake_case excludes ALL_CAPS constants", func(t *testing.T) {
		assert.True(t, isSnakeCase("max_retry_count"))
		assert.False(t, isSnakeCase("HTTP_SERVER"))
	})
}

func TestIsProtectedWord(t *testing.T) {
	t.Run("protects urls dates and versions", func(t *testing.T) {
		assert.True(t, isProtectedWord("https://example.com/docs"))
		assert.True(t, isProtectedWord("2026-09-01"))
		assert.True(t, isProtectedWord("v1.2.3"))
	})

	t.Run("protects identifier case tokens", func(t *testing.T) {
		assert.True(t, isProtectedWord("getUserName"))
		assert.True(t, isProtectedWord("MAX_RETRY"))
		assert.True(t, isProtectedWord("42"))
	})

	t.Run("does not protect ordinary words", func(t *testing.T) {
		assert.False(t, isProtectedWord("the"))
		assert.False(t, isProtectedWord("quickly"))
	})
}
