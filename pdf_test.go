package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")
	gitInfo := GitInfo{IsRepo: true, TotalCommits: 42, ContributorsCount: 2, TopContributors: []string{"Alice (30)", "Bob (12)"}}

	require.NoError(t, generatePDF(sampleModel(), gitInfo, 5, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")), "output must be a PDF document")
	assert.Greater(t, len(raw), 500, "report sections should produce real content")
}

func TestGeneratePDF_BadPath(t *testing.T) {
	err := generatePDF(sampleModel(), GitInfo{}, 5, filepath.Join(t.TempDir(), "no-such-dir", "report.pdf"))
	assert.Error(t, err)
}
