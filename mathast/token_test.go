package mathast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize_Basics(t *testing.T) {
	t.Run("simple arithmetic", func(t *testing.T) {
		tokens, errs := Tokenize("2 + 3 * 4")
		require.Empty(t, errs)
		kinds := kindsOf(tokens)
		assert.Equal(t, []Kind{KindNumber, KindOp, KindNumber, KindOp, KindNumber}, kinds)
	})

	t.Run("implicit multiplication is inserted", func(t *testing.T) {
		tokens, errs := Tokenize("2x")
		require.Empty(t, errs)
		assert.Equal(t, []Kind{KindNumber, KindImplicitMul, KindIdent}, kindsOf(tokens))
	})

	t.Run("parenthesized juxtaposition", func(t *testing.T) {
		tokens, errs := Tokenize("(x+1)(x-1)")
		require.Empty(t, errs)
		assert.Contains(t, kindsOf(tokens), KindImplicitMul)
	})

	t.Run("unicode operators normalize to ascii", func(t *testing.T) {
		tokens, errs := Tokenize("2 × 3 − 1")
		require.Empty(t, errs)
		assert.Equal(t, "*", tokens[1].Text)
		assert.Equal(t, "-", tokens[3].Text)
	})

	t.Run("superscript digits become pow plus number", func(t *testing.T) {
		tokens, errs := Tokenize("x²")
		require.Empty(t, errs)
		require.Len(t, tokens, 3)
		assert.Equal(t, KindIdent, tokens[0].Kind)
		assert.Equal(t, KindOp, tokens[1].Kind)
		assert.Equal(t, "^", tokens[1].Text)
		assert.Equal(t, "2", tokens[2].Text)
	})

	t.Run("named symbols become identifiers", func(t *testing.T) {
		tokens, errs := Tokenize("√2 + π")
		require.Empty(t, errs)
		assert.Equal(t, "sqrt", tokens[0].Text)
	})

	t.Run("unrecognized rune is reported but non-fatal", func(t *testing.T) {
		tokens, errs := Tokenize("2 @ 3")
		assert.NotEmpty(t, errs)
		assert.NotEmpty(t, tokens)
	})

	t.Run("decimal with leading dot", func(t *testing.T) {
		tokens, errs := Tokenize(".5 + 1")
		require.Empty(t, errs)
		assert.Equal(t, ".5", tokens[0].Text)
	})
}

func kindsOf(tokens []Token) []Kind {
	out := make([]Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}
