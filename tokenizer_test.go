package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeuristicTokenizer(t *testing.T) {
	tk := HeuristicTokenizer{}

	assert.Equal(t, 0, tk.CountTokens(""))
	assert.Equal(t, 2, tk.CountTokens("abcdefgh"))
	assert.Equal(t, 0, tk.CountTokens("abc"))
	// Counts runes, not bytes.
	assert.Equal(t, 1, tk.CountTokens("ééééééé"))
}

func TestNewTokenizer(t *testing.T) {
	tk, err := newTokenizer("heuristic", "", "")
	require.NoError(t, err)
	assert.IsType(t, HeuristicTokenizer{}, tk)

	tk, err = newTokenizer("", "", "")
	require.NoError(t, err)
	assert.IsType(t, HeuristicTokenizer{}, tk)

	_, err = newTokenizer("word2vec", "", "")
	assert.Error(t, err)
}
