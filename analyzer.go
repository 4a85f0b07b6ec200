package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

// defaultTodoMarkers are the technical-debt tags counted across all text
// content, in display order.
var defaultTodoMarkers = []string{"TODO", "FIXME", "BUG", "HACK", "XXX", "NOTE"}

// Config holds the immutable inputs of one scan. Separate scans with
// different configs can run concurrently; nothing here is process-global.
type Config struct {
	ExcludeDirs  map[string]struct{}
	Languages    *LanguageTable
	TodoMarkers  []string
	Tokenizer    Tokenizer
	Workers      int // measuring workers, 0 means NumCPU
	UseGitignore bool
}

// DefaultConfig returns a config with the built-in language table,
// exclusion set and marker list, and the chars/4 token heuristic.
func DefaultConfig() *Config {
	return &Config{
		ExcludeDirs:  excludeSet(defaultExcludeDirs),
		Languages:    DefaultLanguages(),
		TodoMarkers:  defaultTodoMarkers,
		Tokenizer:    HeuristicTokenizer{},
		UseGitignore: true,
	}
}

// classify maps a path to a language label. ok is false when the file is
// not of interest (binary). An extension match always wins over content
// sniffing, so a recognized extension is never re-checked for binary
// content.
func (c *Config) classify(path string) (lang string, ok bool) {
	if lang, ok := c.Languages.Lookup(path); ok {
		return lang, true
	}
	if isBinaryFile(path) {
		return "", false
	}
	return otherTextLabel, true
}

// measureJob is one accepted file headed for a measuring worker. index is
// the discovery position, used to restore walk order after the pool.
type measureJob struct {
	index int
	path  string
	lang  string
}

// measurement is the per-file result coming back from a worker. ok is
// false when the content could not be read; such files stay invisible in
// the report.
type measurement struct {
	index  int
	record FileRecord
	todos  []int // parallel to Config.TodoMarkers
	ok     bool
}

// Scan walks root, classifies and measures every accepted file, and
// returns the assembled report. A missing or non-directory root fails
// immediately; per-file problems never do.
func Scan(root string, cfg *Config) (*ReportModel, error) {
	start := time.Now()

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("cannot access root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %s is not a directory", root)
	}

	paths, err := walkTree(root, cfg)
	if err != nil {
		return nil, err
	}

	// Classification stays serial so the binary tally and discovery
	// indices are deterministic.
	var jobs []measureJob
	binaryFiles := 0
	for _, p := range paths {
		lang, ok := cfg.classify(p)
		if !ok {
			binaryFiles++
			continue
		}
		jobs = append(jobs, measureJob{index: len(jobs), path: p, lang: lang})
	}

	results := measureAll(root, jobs, cfg)

	model := &ReportModel{
		RootDir:    root,
		ByLang:     make(map[string]CategoryTally),
		TodoCounts: make(map[string]int, len(cfg.TodoMarkers)),
		AnalyzedAt: time.Now(),
	}
	for _, marker := range cfg.TodoMarkers {
		model.TodoCounts[marker] = 0
	}
	model.Totals.BinaryFiles = binaryFiles

	for _, m := range results {
		if !m.ok {
			continue
		}
		tally := model.ByLang[m.record.Lang]
		tally.add(m.record)
		model.ByLang[m.record.Lang] = tally

		model.Totals.Files++
		model.Totals.Lines += m.record.Lines
		model.Totals.Chars += m.record.Chars
		model.Totals.Tokens += m.record.Tokens

		for i, marker := range cfg.TodoMarkers {
			model.TodoCounts[marker] += m.todos[i]
		}
		model.Files = append(model.Files, m.record)
	}

	model.Elapsed = time.Since(start)
	return model, nil
}

// measureAll fans the read/measure step out over a worker pool, then
// re-serializes the results into discovery order. Each file's measuring
// is independent; all tally mutation happens later in a single loop.
func measureAll(root string, jobs []measureJob, cfg *Config) []measurement {
	if len(jobs) == 0 {
		return nil
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}

	jobCh := make(chan measureJob, len(jobs))
	resCh := make(chan measurement, len(jobs))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobCh {
				resCh <- measureFile(root, job, cfg)
			}
		}()
	}
	for _, job := range jobs {
		jobCh <- job
	}
	close(jobCh)
	wg.Wait()
	close(resCh)

	results := make([]measurement, 0, len(jobs))
	for m := range resCh {
		results = append(results, m)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].index < results[j].index })
	return results
}

// measureFile reads one file and computes its statistics. Read failures
// produce a result with ok=false; the scan carries on without it.
func measureFile(root string, job measureJob, cfg *Config) measurement {
	raw, err := os.ReadFile(job.path)
	if err != nil {
		return measurement{index: job.index}
	}

	// Invalid byte sequences are replaced, never fatal.
	content := strings.ToValidUTF8(string(raw), "�")

	chars := utf8.RuneCountInString(content)
	tokens := chars / 4
	if cfg.Tokenizer != nil {
		tokens = cfg.Tokenizer.CountTokens(content)
	}

	rel, err := filepath.Rel(root, job.path)
	if err != nil {
		rel = job.path
	}

	todos := make([]int, len(cfg.TodoMarkers))
	for i, marker := range cfg.TodoMarkers {
		todos[i] = strings.Count(content, marker)
	}

	return measurement{
		index: job.index,
		record: FileRecord{
			Path:   rel,
			Lang:   job.lang,
			Lines:  countLines(content),
			Chars:  chars,
			Tokens: tokens,
		},
		todos: todos,
		ok:    true,
	}
}

// countLines counts newline characters, plus one for a final line that
// lacks its trailing newline. Empty content has zero lines.
func countLines(content string) int {
	if content == "" {
		return 0
	}
	n := strings.Count(content, "\n")
	if !strings.HasSuffix(content, "\n") {
		n++
	}
	return n
}
