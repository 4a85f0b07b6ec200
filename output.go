package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Style definitions for the terminal report.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder())
	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#0087AF", Dark: "#00AFD7"})
	metricStyle = lipgloss.NewStyle().Faint(true).Width(24)
	langStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#005F00", Dark: "#87D787"})
	debtStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#AF0000", Dark: "#FF5F5F"})
)

// renderReport builds the terminal report. styled=false produces the
// plain-text variant used for files, the clipboard, and dumb terminals.
func renderReport(model *ReportModel, gitInfo GitInfo, topN int, styled bool) string {
	var b strings.Builder

	title := fmt.Sprintf("Project Pulse: %s", rootName(model.RootDir))
	if styled {
		b.WriteString(titleStyle.Render(title))
		b.WriteString("\n\n")
	} else {
		b.WriteString(strings.Repeat("=", 40) + "\n")
		b.WriteString(title + "\n")
		b.WriteString(strings.Repeat("=", 40) + "\n\n")
	}

	// Git pulse
	if gitInfo.IsRepo {
		writeSection(&b, "Git Pulse", styled)
		writeMetric(&b, "Total Commits", formatNumber(gitInfo.TotalCommits), styled)
		writeMetric(&b, "Contributors", formatNumber(gitInfo.ContributorsCount), styled)
		for i, c := range gitInfo.TopContributors {
			writeMetric(&b, fmt.Sprintf("  #%d", i+1), c, styled)
		}
		b.WriteString("\n")
	}

	// Overview
	writeSection(&b, "Overview", styled)
	writeMetric(&b, "Total Files", formatNumber(model.Totals.Files), styled)
	writeMetric(&b, "Total Lines", formatNumber(model.Totals.Lines), styled)
	writeMetric(&b, "Total Characters", formatNumber(model.Totals.Chars), styled)
	writeMetric(&b, "Estimated Tokens", formatNumber(model.Totals.Tokens), styled)
	writeMetric(&b, "Binary Files (Skipped)", formatNumber(model.Totals.BinaryFiles), styled)
	writeMetric(&b, "Scan Time", fmt.Sprintf("%.2fs", model.Elapsed.Seconds()), styled)
	b.WriteString("\n")

	// Language composition, largest first
	writeSection(&b, "Language Composition", styled)
	b.WriteString(fmt.Sprintf("    %-22s %8s %10s %12s %8s\n", "Language", "Files", "Lines", "Tokens", "% Lines"))
	totalLines := model.Totals.Lines
	if totalLines == 0 {
		totalLines = 1
	}
	for _, lang := range languagesByLines(model) {
		tally := model.ByLang[lang]
		pct := float64(tally.Lines) / float64(totalLines) * 100
		name := lang
		if styled {
			name = langStyle.Render(fmt.Sprintf("%-22s", lang))
		} else {
			name = fmt.Sprintf("%-22s", lang)
		}
		b.WriteString(fmt.Sprintf("    %s %8s %10s %12s %7.1f%%\n",
			name, formatNumber(tally.Files), formatNumber(tally.Lines), formatNumber(tally.Tokens), pct))
	}
	b.WriteString("\n")

	// Top files
	writeSection(&b, fmt.Sprintf("Top %d Largest Files", topN), styled)
	for _, f := range model.TopFiles("lines", topN) {
		b.WriteString(fmt.Sprintf("    %8s  %s\n", formatNumber(f.Lines), f.Path))
	}
	b.WriteString("\n")

	// Technical debt indicators
	writeSection(&b, "Technical Debt Indicators", styled)
	for _, marker := range markersByCount(model.TodoCounts) {
		tag := marker
		if styled {
			tag = debtStyle.Render(fmt.Sprintf("%-8s", marker))
		} else {
			tag = fmt.Sprintf("%-8s", marker)
		}
		b.WriteString(fmt.Sprintf("    %s %6s\n", tag, formatNumber(model.TodoCounts[marker])))
	}

	return b.String()
}

// writeSection writes a section heading.
func writeSection(b *strings.Builder, name string, styled bool) {
	if styled {
		b.WriteString(sectionStyle.Render(name))
		b.WriteString("\n")
	} else {
		b.WriteString("--- " + name + " ---\n")
	}
}

// writeMetric writes one key/value line.
func writeMetric(b *strings.Builder, key, value string, styled bool) {
	if styled {
		b.WriteString("  " + metricStyle.Render(key) + value + "\n")
	} else {
		b.WriteString(fmt.Sprintf("  %-24s%s\n", key, value))
	}
}

// languagesByLines orders labels descending by line count, ties by name
// so the report is stable between runs.
func languagesByLines(model *ReportModel) []string {
	langs := make([]string, 0, len(model.ByLang))
	for lang := range model.ByLang {
		langs = append(langs, lang)
	}
	sort.Slice(langs, func(i, j int) bool {
		li, lj := model.ByLang[langs[i]].Lines, model.ByLang[langs[j]].Lines
		if li != lj {
			return li > lj
		}
		return langs[i] < langs[j]
	})
	return langs
}

// markersByCount orders markers descending by count, ties by name.
func markersByCount(counts map[string]int) []string {
	markers := make([]string, 0, len(counts))
	for m := range counts {
		markers = append(markers, m)
	}
	sort.Slice(markers, func(i, j int) bool {
		if counts[markers[i]] != counts[markers[j]] {
			return counts[markers[i]] > counts[markers[j]]
		}
		return markers[i] < markers[j]
	})
	return markers
}

// formatNumber renders n with thousands separators.
func formatNumber(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}

// rootName is the display name of the scanned directory.
func rootName(root string) string {
	name := strings.TrimRight(root, "/\\")
	if idx := strings.LastIndexAny(name, "/\\"); idx >= 0 {
		name = name[idx+1:]
	}
	if name == "" || name == "." {
		return root
	}
	return name
}
