package main

import (
	"sort"
	"time"
)

// FileRecord holds the measured statistics for a single accepted file.
// Records are created once and never mutated afterwards.
type FileRecord struct {
	Path   string `json:"path"`
	Lang   string `json:"lang"`
	Lines  int    `json:"lines"`
	Chars  int    `json:"chars"`
	Tokens int    `json:"tokens"`
}

// CategoryTally accumulates statistics for one language label.
type CategoryTally struct {
	Files  int `json:"files"`
	Lines  int `json:"lines"`
	Chars  int `json:"chars"`
	Tokens int `json:"tokens"`
}

// add folds one file record into the tally. Counts only ever grow.
func (t *CategoryTally) add(r FileRecord) {
	t.Files++
	t.Lines += r.Lines
	t.Chars += r.Chars
	t.Tokens += r.Tokens
}

// ScanTotals mirrors CategoryTally across every language, plus the number
// of binary files that were recognized and skipped. Binary files never
// produce a FileRecord, so they are counted here and nowhere else.
type ScanTotals struct {
	Files       int `json:"files"`
	Lines       int `json:"lines"`
	Chars       int `json:"chars"`
	Tokens      int `json:"tokens"`
	BinaryFiles int `json:"binary_files"`
}

// ReportModel is the snapshot produced at the end of a scan. It is built
// once and treated as read-only by the rendering and export layers.
type ReportModel struct {
	RootDir    string
	Totals     ScanTotals
	ByLang     map[string]CategoryTally
	Files      []FileRecord // discovery order
	TodoCounts map[string]int
	Elapsed    time.Duration
	AnalyzedAt time.Time
}

// TopFiles returns at most limit records sorted descending by the given
// key ("lines" or "tokens", anything else falls back to lines). The sort
// is stable, so ties keep discovery order. The model's own file list is
// left untouched.
func (m *ReportModel) TopFiles(key string, limit int) []FileRecord {
	out := make([]FileRecord, len(m.Files))
	copy(out, m.Files)
	sort.SliceStable(out, func(i, j int) bool {
		if key == "tokens" {
			return out[i].Tokens > out[j].Tokens
		}
		return out[i].Lines > out[j].Lines
	})
	if limit >= 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}

// GitInfo carries repository metadata for display. It is purely additive
// and never feeds back into the file statistics.
type GitInfo struct {
	IsRepo            bool
	TotalCommits      int
	ContributorsCount int
	TopContributors   []string
}
