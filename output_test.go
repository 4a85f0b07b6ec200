package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", formatNumber(0))
	assert.Equal(t, "999", formatNumber(999))
	assert.Equal(t, "1,000", formatNumber(1000))
	assert.Equal(t, "1,234,567", formatNumber(1234567))
	assert.Equal(t, "-12,345", formatNumber(-12345))
}

func TestLanguagesByLines(t *testing.T) {
	model := sampleModel()
	assert.Equal(t, []string{"Go", "Markdown"}, languagesByLines(model))
}

func TestMarkersByCount(t *testing.T) {
	counts := map[string]int{"TODO": 2, "FIXME": 5, "BUG": 2, "NOTE": 0}
	assert.Equal(t, []string{"FIXME", "BUG", "TODO", "NOTE"}, markersByCount(counts))
}

func TestRenderReport_Plain(t *testing.T) {
	model := sampleModel()
	gitInfo := GitInfo{IsRepo: true, TotalCommits: 42, ContributorsCount: 3, TopContributors: []string{"Alice (30)"}}

	out := renderReport(model, gitInfo, 5, false)

	assert.Contains(t, out, "Project Pulse: project")
	assert.Contains(t, out, "--- Git Pulse ---")
	assert.Contains(t, out, "Total Commits")
	assert.Contains(t, out, "--- Overview ---")
	assert.Contains(t, out, "Binary Files (Skipped)")
	assert.Contains(t, out, "--- Language Composition ---")
	assert.Contains(t, out, "Go")
	assert.Contains(t, out, "83.3%") // 50 of 60 lines
	assert.Contains(t, out, "--- Top 5 Largest Files ---")
	assert.Contains(t, out, "main.go")
	assert.Contains(t, out, "--- Technical Debt Indicators ---")
	assert.Contains(t, out, "TODO")
	assert.NotContains(t, out, "\x1b[", "plain output must have no ANSI escapes")
}

func TestRenderReport_NoGit(t *testing.T) {
	out := renderReport(sampleModel(), GitInfo{}, 5, false)
	assert.NotContains(t, out, "Git Pulse")
}

func TestRootName(t *testing.T) {
	assert.Equal(t, "project", rootName("/tmp/project"))
	assert.Equal(t, "project", rootName("/tmp/project/"))
	assert.Equal(t, ".", rootName("."))
	assert.Equal(t, "src", rootName("src"))
}

func TestRenderReport_LanguageOrder(t *testing.T) {
	out := renderReport(sampleModel(), GitInfo{}, 5, false)
	goIdx := strings.Index(out, "Go ")
	mdIdx := strings.Index(out, "Markdown")
	assert.Greater(t, mdIdx, goIdx, "largest language renders first")
}
