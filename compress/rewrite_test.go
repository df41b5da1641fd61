package compress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTelegraphicRewrite(t *testing.T) {
	t.Run("applies phrase table", func(t *testing.T) {
		out := telegraphicRewrite("We did this in order to save time.")
		assert.Contains(t, out, "to save time")
		assert.NotContains(t, out, "in order to")
	})

	t.Run("strips closed-class filler words but keeps connectives", func(t *testing.T) {
		out := telegraphicRewrite("The result is because the test was slow.")
		assert.Contains(t, out, "because")
		assert.NotContains(t, out, " the ")
	})

	t.Run("protects camelCase and urls from stripping", func(t *testing.T) {
		out := telegraphicRewrite("Check getUserName at https://example.com/docs.")
		assert.Contains(t, out, "getUserName")
		assert.Contains(t, out, "https://example.com/docs")
	})

	t.Run("leaves markdown headers untouched", func(t *testing.T) {
		out := telegraphicRewrite("## The Section Title")
		assert.Equal(t, "## The Section Title", out)
	})
}

func TestCollapseSpaces(t *testing.T) {
	t.Run("removes space before punctuation and double spaces", func(t *testing.T) {
		out := collapseSpaces("hello  world ,  done .")
		assert.Equal(t, "hello world, done.", out)
	})
}
